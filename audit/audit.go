//Package audit records requests made through the gateway
package audit

import (
	"context"
	"time"
)

//Entry is a single recorded request
type Entry struct {
	Time   time.Time `json:"time"`
	Method string    `json:"method"`
	Path   string    `json:"path"`
	Query  string    `json:"query,omitempty"`
	Code   int       `json:"code"`
	Error  string    `json:"error,omitempty"`
}

//Store is an interface to an arbitrary audit backend
type Store interface {
	//Record saves entry. If the backend malfunctions, err will be non-nil.
	Record(ctx context.Context, entry *Entry) error
}

//Reader is a Store that can return recorded entries
type Reader interface {
	Store
	//Recent returns the most recent limit entries, newest first
	Recent(ctx context.Context, limit int) ([]*Entry, error)
}
