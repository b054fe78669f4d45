package main

import (
	"errors"
	"fmt"

	"github.com/korylprince/bdus-client/api"
	"github.com/korylprince/bdus-client/query"
	"github.com/spf13/cobra"
)

func newVersionCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the API version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := opts.client()
			if err != nil {
				return err
			}
			res, err := c.APIVersion(cmd.Context())
			if err != nil {
				return err
			}
			return opts.print(res)
		},
	}
}

func newChartCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "chart ID",
		Short: "Print a saved chart",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			c, err := opts.client()
			if err != nil {
				return err
			}
			res, err := c.Chart(cmd.Context(), id)
			if err != nil {
				return err
			}
			return opts.print(res)
		},
	}
}

func newValuesCmd(opts *options) *cobra.Command {
	var suggestion, filter string

	cmd := &cobra.Command{
		Use:   "values TABLE FIELD",
		Short: "Print the distinct values of a field",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := opts.client()
			if err != nil {
				return err
			}
			vals, err := c.UniqueValues(cmd.Context(), args[0], args[1], suggestion, filter)
			if err != nil {
				return err
			}
			return opts.print(vals)
		},
	}

	cmd.Flags().StringVarP(&suggestion, "suggest", "s", "", "only return values containing this text")
	cmd.Flags().StringVarP(&filter, "filter", "w", "", "ShortSQL where statement limiting the searched records")

	return cmd
}

func newInspectCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect [TABLE]",
		Short: "Print the configuration of a table, or the whole application",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var table string
			if len(args) == 1 {
				table = args[0]
			}
			c, err := opts.client()
			if err != nil {
				return err
			}
			res, err := c.Inspect(cmd.Context(), table)
			if err != nil {
				return err
			}
			return opts.print(res)
		},
	}
}

func newSearchCmd(opts *options) *cobra.Command {
	var shortsql, queryPath string
	params := new(api.Params)

	cmd := &cobra.Command{
		Use:   "search",
		Short: "Run a search from ShortSQL or a JSON query description",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if (shortsql == "") == (queryPath == "") {
				return errors.New("exactly one of --shortsql or --query is required")
			}

			var p *api.Params
			for _, name := range []string{"page", "per-page", "total-rows", "geojson", "full-records"} {
				if cmd.Flags().Changed(name) {
					p = params
				}
			}

			c, err := opts.client()
			if err != nil {
				return err
			}

			var res *api.Result
			if shortsql != "" {
				res, err = c.SearchShortSQL(cmd.Context(), shortsql, p)
			} else {
				var d *query.Description
				if d, err = opts.readDescription(queryPath); err != nil {
					return err
				}
				res, err = c.SearchDescription(cmd.Context(), d, p)
			}
			if err != nil {
				return err
			}
			return opts.print(res)
		},
	}

	cmd.Flags().StringVar(&shortsql, "shortsql", "", "ShortSQL query")
	cmd.Flags().StringVarP(&queryPath, "query", "q", "", "JSON query description file, or - for stdin")
	cmd.Flags().IntVar(&params.Page, "page", api.DefaultPage, "page number")
	cmd.Flags().IntVar(&params.RecordsPerPage, "per-page", api.DefaultRecordsPerPage, "records per page")
	cmd.Flags().BoolVar(&params.TotalRows, "total-rows", false, "return the total row count")
	cmd.Flags().BoolVar(&params.GeoJSON, "geojson", false, "return records as GeoJSON")
	cmd.Flags().BoolVar(&params.FullRecords, "full-records", false, "return full records")

	return cmd
}

func newCompileCmd(opts *options) *cobra.Command {
	var queryPath string

	cmd := &cobra.Command{
		Use:   "compile",
		Short: "Print the ShortSQL for a JSON query description without running it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := opts.readDescription(queryPath)
			if err != nil {
				return err
			}
			shortsql, err := query.Compile(d)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(opts.stdout, shortsql)
			return err
		},
	}

	cmd.Flags().StringVarP(&queryPath, "query", "q", "-", "JSON query description file, or - for stdin")

	return cmd
}

func newGetCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "get TABLE ID",
		Short: "Print a single formatted record",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[1])
			if err != nil {
				return err
			}
			c, err := opts.client()
			if err != nil {
				return err
			}
			res, err := c.GetOne(cmd.Context(), args[0], id)
			if err != nil {
				return err
			}
			return opts.print(res)
		},
	}
}
