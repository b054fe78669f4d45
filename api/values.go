package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
)

//UniqueValues returns the distinct values of field in table. If suggestion is not empty
//only values containing it are returned. If filter is not empty it is used as a
//ShortSQL where statement to narrow the searched records.
func (c *Client) UniqueValues(ctx context.Context, table, field, suggestion, filter string) ([]string, error) {
	if err := ValidateString("table", table); err != nil {
		return nil, err
	}
	if err := ValidateString("field", field); err != nil {
		return nil, err
	}

	v := url.Values{
		"verb": {verbUniqueValue},
		"tb":   {table},
		"fld":  {field},
	}
	if suggestion != "" {
		v.Set("s", suggestion)
	}
	if filter != "" {
		v.Set("w", filter)
	}

	res, err := c.getData(ctx, v)
	if err != nil {
		return nil, err
	}

	return stringValues(res.Slice()), nil
}

func stringValues(vals []interface{}) []string {
	if len(vals) == 0 {
		return []string{}
	}

	strs := make([]string, 0, len(vals))
	for _, val := range vals {
		switch v := val.(type) {
		case string:
			strs = append(strs, v)
		case json.Number:
			strs = append(strs, v.String())
		case bool:
			strs = append(strs, strconv.FormatBool(v))
		case nil:
			strs = append(strs, "")
		default:
			strs = append(strs, fmt.Sprint(v))
		}
	}
	return strs
}
