package httpapi

import (
	"github.com/korylprince/bdus-client/api"
	"github.com/korylprince/bdus-client/query"
)

//SearchRequest is a query description with optional pagination options
type SearchRequest struct {
	Query  *query.Description `json:"query"`
	Params *api.Params        `json:"params,omitempty"`
}

//CompileRequest is a query description to compile to ShortSQL
type CompileRequest struct {
	Query *query.Description `json:"query"`
}
