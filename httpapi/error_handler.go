package httpapi

import (
	"errors"
	"net/http"

	"github.com/korylprince/bdus-client/api"
)

//ErrorResponse represents an HTTP error
type ErrorResponse struct {
	Code        int    `json:"code"`
	Error       string `json:"error"`
	Description string `json:"description,omitempty"`
}

//handleError returns a handlerResponse response for the given code
func handleError(code int, err error) *handlerResponse {
	return &handlerResponse{Code: code, Body: &ErrorResponse{Code: code, Error: http.StatusText(code)}, Err: err}
}

//handleUserError returns a handlerResponse that includes err's text in the body
func handleUserError(code int, err error) *handlerResponse {
	resp := handleError(code, err)
	resp.Body.(*ErrorResponse).Description = err.Error()
	return resp
}

//notFoundHandler returns a 404 handlerResponse
func notFoundHandler(w http.ResponseWriter, r *http.Request) *handlerResponse {
	return handleError(http.StatusNotFound, errors.New("Could not find handler"))
}

//checkAPIError checks an api.Error and returns a handlerResponse for it, or nil if there was no error
func checkAPIError(err error) *handlerResponse {
	if err == nil {
		return nil
	}

	var e *api.Error
	if !errors.As(err, &e) {
		return handleError(http.StatusInternalServerError, err)
	}

	switch e.Type {
	case api.ErrorTypeValidation:
		return handleUserError(http.StatusBadRequest, err)
	case api.ErrorTypeNotFound:
		return handleError(http.StatusNotFound, err)
	case api.ErrorTypeTransport:
		return handleError(http.StatusBadGateway, err)
	}
	return handleError(http.StatusInternalServerError, err)
}
