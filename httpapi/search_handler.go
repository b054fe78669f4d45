package httpapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/korylprince/bdus-client/api"
	"github.com/korylprince/bdus-client/query"
)

//GET /search?shortsql=...&page=...
func handleSearchShortSQL(w http.ResponseWriter, r *http.Request) *handlerResponse {
	q := r.URL.Query()

	params, err := api.ParseParams(q, "shortsql")
	if resp := checkAPIError(err); resp != nil {
		return resp
	}

	res, err := client(r).SearchShortSQL(r.Context(), q.Get("shortsql"), params)
	if resp := checkAPIError(err); resp != nil {
		return resp
	}

	return &handlerResponse{Code: http.StatusOK, Body: res}
}

//POST /search
func handleSearchDescription(w http.ResponseWriter, r *http.Request) *handlerResponse {
	var req *SearchRequest
	d := json.NewDecoder(r.Body)
	d.DisallowUnknownFields()

	err := d.Decode(&req)
	if err != nil || req == nil || req.Query == nil {
		return handleUserError(http.StatusBadRequest, fmt.Errorf("Could not decode JSON: %v", err))
	}

	res, err := client(r).SearchDescription(r.Context(), req.Query, req.Params)
	if resp := checkAPIError(err); resp != nil {
		return resp
	}

	return &handlerResponse{Code: http.StatusOK, Body: res}
}

//POST /compile
func handleCompile(w http.ResponseWriter, r *http.Request) *handlerResponse {
	var req *CompileRequest
	d := json.NewDecoder(r.Body)
	d.DisallowUnknownFields()

	err := d.Decode(&req)
	if err != nil || req == nil || req.Query == nil {
		return handleUserError(http.StatusBadRequest, fmt.Errorf("Could not decode JSON: %v", err))
	}

	shortsql, err := query.Compile(req.Query)
	if err != nil {
		var vErr *query.ValidationError
		if errors.As(err, &vErr) {
			return handleUserError(http.StatusBadRequest, err)
		}
		return handleError(http.StatusInternalServerError, err)
	}

	return &handlerResponse{Code: http.StatusOK, Body: &CompileResponse{ShortSQL: shortsql}}
}
