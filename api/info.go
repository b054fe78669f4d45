package api

import (
	"context"
	"net/url"
	"strconv"
)

//APIVersion returns the API version information, e.g. {"version": "4.0.0"}
func (c *Client) APIVersion(ctx context.Context) (*Result, error) {
	return c.getData(ctx, url.Values{"verb": {verbAPIVersion}})
}

//Chart returns the saved chart with the given id
func (c *Client) Chart(ctx context.Context, id int64) (*Result, error) {
	if err := ValidateID("id", id); err != nil {
		return nil, err
	}
	return c.getData(ctx, url.Values{
		"verb": {verbChart},
		"id":   {strconv.FormatInt(id, 10)},
	})
}

//Inspect returns the configuration of table, or of the whole application if table is empty
func (c *Client) Inspect(ctx context.Context, table string) (*Result, error) {
	v := url.Values{"verb": {verbInspect}}
	if table != "" {
		v.Set("tb", table)
	}
	return c.getData(ctx, v)
}
