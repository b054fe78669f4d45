package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type upstream struct {
	*httptest.Server
	mu      sync.Mutex
	queries []url.Values
}

func newUpstream(t *testing.T, body string) *upstream {
	t.Helper()
	u := new(upstream)
	u.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		u.mu.Lock()
		u.queries = append(u.queries, r.URL.Query())
		u.mu.Unlock()
		w.Write([]byte(body))
	}))
	t.Cleanup(u.Close)
	return u
}

func (u *upstream) last(t *testing.T) url.Values {
	t.Helper()
	u.mu.Lock()
	defer u.mu.Unlock()
	require.NotEmpty(t, u.queries)
	return u.queries[len(u.queries)-1]
}

func (u *upstream) calls() int {
	u.mu.Lock()
	defer u.mu.Unlock()
	return len(u.queries)
}

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	out := new(bytes.Buffer)
	cmd := newRootCmd(strings.NewReader(stdin), out)
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestCompileCommand(t *testing.T) {
	out, err := run(t, `{"table":"finds","where":[{"field":"a","operator":"=","value":"Buddhist"},{"connector":"and","field":"b","operator":"like","value":"Tapa Sardar"}]}`, "compile")
	require.NoError(t, err)
	assert.Equal(t, "@finds~?a|=|Buddhist||and|b|like|Tapa Sardar\n", out)

	_, err = run(t, `{"table":""}`, "compile")
	assert.Error(t, err)

	_, err = run(t, `{"table":"finds","bogus":1}`, "compile")
	assert.Error(t, err)
}

func TestGetCommand(t *testing.T) {
	u := newUpstream(t, `{"inv_no":"1"}`)

	out, err := run(t, "", "--url", u.URL, "--app", "ghazni", "get", "finds", "1")
	require.NoError(t, err)
	assert.JSONEq(t, `{"inv_no":"1"}`, out)
	assert.Equal(t, url.Values{"verb": {"read"}, "tb": {"finds"}, "id": {"1"}}, u.last(t))

	_, err = run(t, "", "--url", u.URL, "--app", "ghazni", "get", "finds", "one")
	assert.Error(t, err)
}

func TestValuesCommand(t *testing.T) {
	u := newUpstream(t, `["Tapa Sardar"]`)

	out, err := run(t, "", "--url", u.URL, "--app", "ghazni", "values", "finds", "provenance", "-s", "Tapa")
	require.NoError(t, err)

	var vals []string
	require.NoError(t, json.Unmarshal([]byte(out), &vals))
	assert.Equal(t, []string{"Tapa Sardar"}, vals)
	assert.Equal(t, "Tapa", u.last(t).Get("s"))
	assert.Empty(t, u.last(t).Get("w"))
}

func TestInspectCommand(t *testing.T) {
	u := newUpstream(t, `{"finds":{}}`)

	_, err := run(t, "", "--url", u.URL, "--app", "ghazni", "inspect")
	require.NoError(t, err)
	assert.Equal(t, url.Values{"verb": {"inspect"}}, u.last(t))

	_, err = run(t, "", "--url", u.URL, "--app", "ghazni", "inspect", "finds")
	require.NoError(t, err)
	assert.Equal(t, "finds", u.last(t).Get("tb"))
}

func TestSearchCommand(t *testing.T) {
	u := newUpstream(t, `{"records":[{"id":"1"}]}`)

	_, err := run(t, "", "--url", u.URL, "--app", "ghazni", "search", "--shortsql", "@finds")
	require.NoError(t, err)
	assert.Equal(t, url.Values{"verb": {"search"}, "shortsql": {"@finds"}}, u.last(t))

	_, err = run(t, "", "--url", u.URL, "--app", "ghazni", "search", "--shortsql", "@finds", "--page", "2")
	require.NoError(t, err)
	assert.Equal(t, "2", u.last(t).Get("page"))
	assert.Equal(t, "30", u.last(t).Get("records_per_page"))

	path := filepath.Join(t.TempDir(), "query.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"table":"finds","sort":"inv_no:asc"}`), 0o600))

	out, err := run(t, "", "--url", u.URL, "--app", "ghazni", "search", "--query", path)
	require.NoError(t, err)
	assert.JSONEq(t, `{"records":[{"id":"1"}]}`, out)
	assert.Equal(t, "@finds~>inv_no:asc", u.last(t).Get("shortsql"))

	calls := u.calls()
	_, err = run(t, "", "--url", u.URL, "--app", "ghazni", "search")
	assert.Error(t, err)
	_, err = run(t, `{"table":"finds","where":[{"field":"a","operator":"="}]}`, "--url", u.URL, "--app", "ghazni", "search", "--query", "-")
	assert.Error(t, err)
	assert.Equal(t, calls, u.calls())
}

func TestMissingConfig(t *testing.T) {
	_, err := run(t, "", "--url", "", "--app", "", "version")
	assert.Error(t, err)
}

func TestKeygenCommand(t *testing.T) {
	out, err := run(t, "", "keygen")
	require.NoError(t, err)

	var keys map[string]string
	require.NoError(t, json.Unmarshal([]byte(out), &keys))
	assert.NotEmpty(t, keys["key"])
	assert.True(t, strings.HasPrefix(keys["hash"], "$2a$"))
}
