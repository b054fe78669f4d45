package httpapi

import (
	"io"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/korylprince/bdus-client/api"
	"github.com/korylprince/bdus-client/audit"
)

//Config holds optional configuration for the router
type Config struct {
	//APIKeyHash is a bcrypt hash of the key required in the X-API-Key header. If empty, no key is required
	APIKeyHash string
	//Audit records every request if not nil
	Audit audit.Store
}

//NewRouter returns an HTTP router for the HTTP API, proxying requests with c
func NewRouter(w io.Writer, c *api.Client, cfg *Config) http.Handler {
	if cfg == nil {
		cfg = new(Config)
	}

	//construct middleware
	var m = func(h returnHandler) http.Handler {
		return logMiddleware(jsonMiddleware(auditMiddleware(authMiddleware(clientMiddleware(h, c), cfg.APIKeyHash), cfg.Audit)), w)
	}

	r := mux.NewRouter()

	r.Path("/version").Methods("GET").Handler(m(handleAPIVersion))
	r.Path("/charts/{id:[0-9]+}").Methods("GET").Handler(m(handleChart))

	r.Path("/inspect").Methods("GET").Handler(m(handleInspect))
	r.Path("/inspect/{table}").Methods("GET").Handler(m(handleInspect))

	r.Path("/tables/{table}/fields/{field}/values").Methods("GET").Handler(m(handleUniqueValues))
	r.Path("/tables/{table}/records/{id:[0-9]+}").Methods("GET").Handler(m(handleGetOne))

	r.Path("/search").Methods("GET").Handler(m(handleSearchShortSQL))
	r.Path("/search").Methods("POST").Handler(m(handleSearchDescription))
	r.Path("/compile").Methods("POST").Handler(m(handleCompile))

	if reader, ok := cfg.Audit.(audit.Reader); ok {
		r.Path("/audit").Methods("GET").Handler(m(handleReadAudit(reader)))
	}

	r.NotFoundHandler = m(notFoundHandler)

	return http.StripPrefix("/api/1.0", r)
}
