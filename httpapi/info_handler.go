package httpapi

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
)

//GET /version
func handleAPIVersion(w http.ResponseWriter, r *http.Request) *handlerResponse {
	res, err := client(r).APIVersion(r.Context())
	if resp := checkAPIError(err); resp != nil {
		return resp
	}

	return &handlerResponse{Code: http.StatusOK, Body: res}
}

//GET /charts/:id
func handleChart(w http.ResponseWriter, r *http.Request) *handlerResponse {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		return handleError(http.StatusBadRequest, fmt.Errorf("Could not decode id: %v", err))
	}

	res, err := client(r).Chart(r.Context(), id)
	if resp := checkAPIError(err); resp != nil {
		return resp
	}

	return &handlerResponse{Code: http.StatusOK, Body: res}
}

//GET /inspect, /inspect/:table
func handleInspect(w http.ResponseWriter, r *http.Request) *handlerResponse {
	res, err := client(r).Inspect(r.Context(), mux.Vars(r)["table"])
	if resp := checkAPIError(err); resp != nil {
		return resp
	}

	return &handlerResponse{Code: http.StatusOK, Body: res}
}
