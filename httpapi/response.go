package httpapi

import "github.com/korylprince/bdus-client/audit"

//UniqueValuesResponse contains a list of distinct field values
type UniqueValuesResponse struct {
	Values []string `json:"values"`
}

//CompileResponse contains compiled ShortSQL
type CompileResponse struct {
	ShortSQL string `json:"shortsql"`
}

//AuditResponse contains recent audit log entries
type AuditResponse struct {
	Entries []*audit.Entry `json:"entries"`
}
