package main

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/korylprince/bdus-client/api"
	"github.com/korylprince/bdus-client/httpapi"
	"github.com/korylprince/bdus-client/query"
	"github.com/spf13/cobra"
)

type options struct {
	url     string
	app     string
	timeout int

	stdin  io.Reader
	stdout io.Writer
}

func newRootCmd(stdin io.Reader, stdout io.Writer) *cobra.Command {
	opts := &options{stdin: stdin, stdout: stdout}

	root := &cobra.Command{
		Use:           "bdus",
		Short:         "Query a BraDypUS database through its API",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	root.SetOut(stdout)

	root.PersistentFlags().StringVar(&opts.url, "url", os.Getenv("BDUS_URL"), "API base URL, e.g. https://bdus.cloud/db/api/ (env BDUS_URL)")
	root.PersistentFlags().StringVar(&opts.app, "app", os.Getenv("BDUS_APP"), "application ID (env BDUS_APP)")
	root.PersistentFlags().IntVar(&opts.timeout, "timeout", 30, "request timeout in seconds")

	root.AddCommand(
		newVersionCmd(opts),
		newChartCmd(opts),
		newValuesCmd(opts),
		newInspectCmd(opts),
		newSearchCmd(opts),
		newCompileCmd(opts),
		newGetCmd(opts),
		newKeygenCmd(opts),
	)

	return root
}

func (o *options) client() (*api.Client, error) {
	return api.NewClient(o.url, o.app, api.WithHTTPClient(&http.Client{Timeout: time.Duration(o.timeout) * time.Second}))
}

func (o *options) print(v interface{}) error {
	e := json.NewEncoder(o.stdout)
	e.SetIndent("", "  ")
	return e.Encode(v)
}

//readDescription reads a JSON query description from path, or stdin if path is -
func (o *options) readDescription(path string) (*query.Description, error) {
	var r io.Reader = o.stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("Could not open query file: %w", err)
		}
		defer f.Close()
		r = f
	}

	var d *query.Description
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&d); err != nil {
		return nil, fmt.Errorf("Could not decode query: %w", err)
	}
	if d == nil {
		return nil, fmt.Errorf("Could not decode query: empty description")
	}
	return d, nil
}

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("Could not parse id %q: %w", s, err)
	}
	return id, nil
}

func newKeygenCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "keygen",
		Short: "Generate a gateway API key and its bcrypt hash for BDUS_APIKEYHASH",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			key, hash, err := httpapi.GenerateAPIKey()
			if err != nil {
				return err
			}
			return opts.print(map[string]string{"key": key, "hash": hash})
		},
	}
}
