package httpapi

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
)

//GET /tables/:table/fields/:field/values?s=suggestion&w=filter
func handleUniqueValues(w http.ResponseWriter, r *http.Request) *handlerResponse {
	vars := mux.Vars(r)
	q := r.URL.Query()

	for k := range q {
		if k != "s" && k != "w" {
			return handleUserError(http.StatusBadRequest, fmt.Errorf("unknown parameter %q", k))
		}
	}

	vals, err := client(r).UniqueValues(r.Context(), vars["table"], vars["field"], q.Get("s"), q.Get("w"))
	if resp := checkAPIError(err); resp != nil {
		return resp
	}

	return &handlerResponse{Code: http.StatusOK, Body: &UniqueValuesResponse{Values: vals}}
}

//GET /tables/:table/records/:id
func handleGetOne(w http.ResponseWriter, r *http.Request) *handlerResponse {
	vars := mux.Vars(r)
	id, err := strconv.ParseInt(vars["id"], 10, 64)
	if err != nil {
		return handleError(http.StatusBadRequest, fmt.Errorf("Could not decode id: %v", err))
	}

	res, err := client(r).GetOne(r.Context(), vars["table"], id)
	if resp := checkAPIError(err); resp != nil {
		return resp
	}

	return &handlerResponse{Code: http.StatusOK, Body: res}
}
