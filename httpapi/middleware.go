package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"text/template"
	"time"

	"github.com/korylprince/bdus-client/api"
	"github.com/korylprince/bdus-client/audit"
)

type handlerResponse struct {
	Code int
	Body interface{}
	Err  error
}

type returnHandler func(http.ResponseWriter, *http.Request) *handlerResponse

const logTemplate = "{{.Date}} {{.Method}} {{.Path}}{{if .Query}}?{{.Query}}{{end}} {{.Code}} ({{.Status}}){{if .Err}}, Error: {{.Err}}{{end}}\n"

var logTmpl = template.Must(template.New("log").Parse(logTemplate))

type logData struct {
	Date   string
	Status string
	Code   int
	Method string
	Path   string
	Query  string
	Err    error
}

func logMiddleware(next returnHandler, writer io.Writer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		resp := next(w, r)

		err := logTmpl.Execute(writer, &logData{
			Date:   time.Now().Format("2006-01-02:15:04:05 -0700"),
			Status: http.StatusText(resp.Code),
			Code:   resp.Code,
			Method: r.Method,
			Path:   r.URL.Path,
			Query:  r.URL.RawQuery,
			Err:    resp.Err,
		})

		if err != nil {
			panic(err)
		}
	})
}

func jsonMiddleware(next returnHandler) returnHandler {
	return func(w http.ResponseWriter, r *http.Request) *handlerResponse {
		var resp *handlerResponse

		if r.Method != "GET" {
			mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
			if err != nil {
				resp = handleError(http.StatusBadRequest, errors.New("Could not parse Content-Type"))
				goto serve
			}
			if mediaType != "application/json" {
				resp = handleError(http.StatusBadRequest, errors.New("Content-Type not application/json"))
				goto serve
			}
		}

		resp = next(w, r)

	serve:
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(resp.Code)
		e := json.NewEncoder(w)
		err := e.Encode(resp.Body)
		if err != nil {
			return handleError(http.StatusInternalServerError, fmt.Errorf("Could encode json: %v", err))
		}
		return resp
	}
}

//authMiddleware checks the X-API-Key header against the bcrypt hash. If hash is empty, all requests are allowed
func authMiddleware(next returnHandler, hash string) returnHandler {
	if hash == "" {
		return next
	}
	return func(w http.ResponseWriter, r *http.Request) *handlerResponse {
		key := r.Header.Get("X-API-Key")
		if key == "" {
			return handleError(http.StatusUnauthorized, errors.New("X-API-Key header empty"))
		}

		if !checkAPIKey(hash, key) {
			return handleError(http.StatusUnauthorized, errors.New("Invalid API key"))
		}

		return next(w, r)
	}
}

//auditMiddleware records every request to store. If store is nil, nothing is recorded
func auditMiddleware(next returnHandler, store audit.Store) returnHandler {
	if store == nil {
		return next
	}
	return func(w http.ResponseWriter, r *http.Request) *handlerResponse {
		resp := next(w, r)

		entry := &audit.Entry{
			Time:   time.Now(),
			Method: r.Method,
			Path:   r.URL.Path,
			Query:  r.URL.RawQuery,
			Code:   resp.Code,
		}
		if resp.Err != nil {
			entry.Error = resp.Err.Error()
		}

		if err := store.Record(r.Context(), entry); err != nil {
			return handleError(http.StatusInternalServerError, fmt.Errorf("Could not record request: %w", err))
		}

		return resp
	}
}

func clientMiddleware(next returnHandler, c *api.Client) returnHandler {
	return func(w http.ResponseWriter, r *http.Request) *handlerResponse {
		ctx := context.WithValue(r.Context(), ClientKey, c)
		return next(w, r.WithContext(ctx))
	}
}

func client(r *http.Request) *api.Client {
	return r.Context().Value(ClientKey).(*api.Client)
}
