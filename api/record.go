package api

import (
	"context"
	"net/url"
	"strconv"
)

//GetOne returns the fully formatted record with the given id in table.
//If the API reports the record missing, an Error with ErrorTypeNotFound is returned.
func (c *Client) GetOne(ctx context.Context, table string, id int64) (*Result, error) {
	if err := ValidateString("table", table); err != nil {
		return nil, err
	}
	if err := ValidateID("id", id); err != nil {
		return nil, err
	}

	return c.getData(ctx, url.Values{
		"verb": {verbRead},
		"tb":   {table},
		"id":   {strconv.FormatInt(id, 10)},
	})
}
