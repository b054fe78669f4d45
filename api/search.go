package api

import (
	"context"
	"net/url"

	"github.com/korylprince/bdus-client/query"
)

//SearchDescription compiles d to ShortSQL and runs it with SearchShortSQL.
//params may be nil to use the API defaults.
func (c *Client) SearchDescription(ctx context.Context, d *query.Description, params *Params) (*Result, error) {
	shortsql, err := query.Compile(d)
	if err != nil {
		return nil, &Error{Description: "Could not compile query", Type: ErrorTypeValidation, Err: err}
	}
	return c.SearchShortSQL(ctx, shortsql, params)
}

//SearchShortSQL runs the ShortSQL query. params may be nil to use the API defaults.
func (c *Client) SearchShortSQL(ctx context.Context, shortsql string, params *Params) (*Result, error) {
	if err := ValidateString("shortsql", shortsql); err != nil {
		return nil, err
	}

	v := url.Values{}
	if params != nil {
		if err := params.Validate(); err != nil {
			return nil, err
		}
		params.encode(v)
	}
	v.Set("verb", verbSearch)
	v.Set("shortsql", shortsql)

	return c.getData(ctx, v)
}
