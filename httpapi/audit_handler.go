package httpapi

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/korylprince/bdus-client/audit"
)

const defaultAuditLimit = 50

//GET /audit?limit=n
func handleReadAudit(reader audit.Reader) returnHandler {
	return func(w http.ResponseWriter, r *http.Request) *handlerResponse {
		limit := defaultAuditLimit
		if v := r.URL.Query().Get("limit"); v != "" {
			l, err := strconv.Atoi(v)
			if err != nil || l < 1 {
				return handleUserError(http.StatusBadRequest, fmt.Errorf("limit (%s) must be a positive integer", v))
			}
			limit = l
		}

		entries, err := reader.Recent(r.Context(), limit)
		if err != nil {
			return handleError(http.StatusInternalServerError, err)
		}

		return &handlerResponse{Code: http.StatusOK, Body: &AuditResponse{Entries: entries}}
	}
}
