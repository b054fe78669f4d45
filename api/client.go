//Package api is a client for the BraDypUS database API
package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
)

//Verbs understood by the API
const (
	verbAPIVersion  = "getApiVersion"
	verbChart       = "getChart"
	verbUniqueValue = "getUniqueVal"
	verbInspect     = "inspect"
	verbSearch      = "search"
	verbRead        = "read"
)

//Client is a client for a single BraDypUS application. A Client is immutable
//and safe for concurrent use.
type Client struct {
	baseURL string
	appID   string
	fetcher Fetcher
}

//Option configures a Client
type Option func(*Client)

//WithFetcher sets the Fetcher used for requests
func WithFetcher(f Fetcher) Option {
	return func(c *Client) {
		c.fetcher = f
	}
}

//WithHTTPClient uses an HTTPFetcher with the given *http.Client for requests
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		c.fetcher = NewHTTPFetcher(client)
	}
}

//NewClient returns a new Client for the application appID on the API at baseURL,
//e.g. https://bdus.cloud/db/api/
func NewClient(baseURL, appID string, opts ...Option) (*Client, error) {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if err := ValidateString("base_url", baseURL); err != nil {
		return nil, err
	}
	if _, err := url.Parse(baseURL); err != nil {
		return nil, &Error{Description: "Invalid base URL", Type: ErrorTypeValidation, Err: err}
	}
	if err := ValidateString("app_id", appID); err != nil {
		return nil, err
	}

	c := &Client{
		baseURL: baseURL + "/",
		appID:   appID,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.fetcher == nil {
		c.fetcher = NewHTTPFetcher(nil)
	}

	return c, nil
}

//BaseURL returns the normalized base URL, always ending with a single /
func (c *Client) BaseURL() string {
	return c.baseURL
}

//AppID returns the application ID
func (c *Client) AppID() string {
	return c.appID
}

//URL returns the request URL for the given query parameters
func (c *Client) URL(v url.Values) string {
	return c.baseURL + "v2/" + url.PathEscape(c.appID) + "?" + v.Encode()
}

//getData requests the given parameters and decodes the response
func (c *Client) getData(ctx context.Context, v url.Values) (*Result, error) {
	body, err := c.fetcher.Get(ctx, c.URL(v))
	if err != nil {
		var sErr *StatusError
		if errors.As(err, &sErr) && sErr.Code == http.StatusNotFound {
			return nil, &Error{Description: fmt.Sprintf("Could not find %s", v.Get("verb")), Type: ErrorTypeNotFound, Err: err}
		}
		return nil, &Error{Description: fmt.Sprintf("Could not request %s", v.Get("verb")), Type: ErrorTypeTransport, Err: err}
	}

	if len(body) == 0 {
		return nil, &Error{Description: fmt.Sprintf("Could not request %s", v.Get("verb")), Type: ErrorTypeTransport, Err: errors.New("empty response")}
	}

	return NewResult(body), nil
}
