package api

import (
	"context"
	"fmt"
	"io"
	"net/http"
)

//Fetcher performs GET requests for the Client. Any error returned is treated as a
//transport failure, except a *StatusError with a 404 code which is treated as not found.
type Fetcher interface {
	Get(ctx context.Context, url string) ([]byte, error)
}

//StatusError is returned by HTTPFetcher for non-2xx responses
type StatusError struct {
	Code int
	Body []byte
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("API error (status %d): %s", e.Code, string(e.Body))
}

//HTTPFetcher is a Fetcher using an *http.Client
type HTTPFetcher struct {
	httpClient *http.Client
}

//NewHTTPFetcher returns a new HTTPFetcher. If client is nil, http.DefaultClient is used
func NewHTTPFetcher(client *http.Client) *HTTPFetcher {
	if client == nil {
		client = http.DefaultClient
	}
	return &HTTPFetcher{httpClient: client}
}

//Get returns the body of the response for url
func (f *HTTPFetcher) Get(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to make request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{Code: resp.StatusCode, Body: body}
	}

	return body, nil
}
