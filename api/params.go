package api

import (
	"fmt"
	"net/url"
	"sort"
	"strconv"
)

//Defaults for Params
const (
	DefaultPage           = 1
	DefaultRecordsPerPage = 30
)

//Query string keys for Params
const (
	paramTotalRows      = "total_rows"
	paramPage           = "page"
	paramGeoJSON        = "geojson"
	paramRecordsPerPage = "records_per_page"
	paramFullRecords    = "full_records"
)

//Params are pagination and output options for a search.
//A zero Page or RecordsPerPage means the default.
type Params struct {
	TotalRows      bool `json:"total_rows"`
	Page           int  `json:"page"`
	GeoJSON        bool `json:"geojson"`
	RecordsPerPage int  `json:"records_per_page"`
	FullRecords    bool `json:"full_records"`
}

//DefaultParams returns Params with every option set to its default
func DefaultParams() *Params {
	return &Params{Page: DefaultPage, RecordsPerPage: DefaultRecordsPerPage}
}

//Validate returns an error if Page or RecordsPerPage are negative
func (p *Params) Validate() error {
	if p.Page < 0 {
		return &Error{Description: "Invalid params", Type: ErrorTypeValidation, Err: fmt.Errorf("page (%d) must be at least 1", p.Page)}
	}
	if p.RecordsPerPage < 0 {
		return &Error{Description: "Invalid params", Type: ErrorTypeValidation, Err: fmt.Errorf("records_per_page (%d) must be greater than 0", p.RecordsPerPage)}
	}
	return nil
}

//encode adds every option to v, filling in defaults
func (p *Params) encode(v url.Values) {
	page := p.Page
	if page == 0 {
		page = DefaultPage
	}
	perPage := p.RecordsPerPage
	if perPage == 0 {
		perPage = DefaultRecordsPerPage
	}

	v.Set(paramTotalRows, formatBool(p.TotalRows))
	v.Set(paramPage, strconv.Itoa(page))
	v.Set(paramGeoJSON, formatBool(p.GeoJSON))
	v.Set(paramRecordsPerPage, strconv.Itoa(perPage))
	v.Set(paramFullRecords, formatBool(p.FullRecords))
}

func formatBool(b bool) string {
	if b {
		return "1"
	}
	return "0"
}

//ParseParams parses Params from a query string. Keys listed in allowed are skipped;
//any other unknown key is an error. If v contains no Params keys, nil is returned.
func ParseParams(v url.Values, allowed ...string) (*Params, error) {
	skip := make(map[string]struct{}, len(allowed))
	for _, k := range allowed {
		skip[k] = struct{}{}
	}

	keys := make([]string, 0, len(v))
	for k := range v {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var p *Params
	for _, k := range keys {
		if _, ok := skip[k]; ok {
			continue
		}
		if p == nil {
			p = new(Params)
		}

		val := v.Get(k)
		var err error
		switch k {
		case paramTotalRows:
			p.TotalRows, err = strconv.ParseBool(val)
		case paramPage:
			p.Page, err = strconv.Atoi(val)
		case paramGeoJSON:
			p.GeoJSON, err = strconv.ParseBool(val)
		case paramRecordsPerPage:
			p.RecordsPerPage, err = strconv.Atoi(val)
		case paramFullRecords:
			p.FullRecords, err = strconv.ParseBool(val)
		default:
			return nil, &Error{Description: "Invalid params", Type: ErrorTypeValidation, Err: fmt.Errorf("unknown parameter %q", k)}
		}
		if err != nil {
			return nil, &Error{Description: "Invalid params", Type: ErrorTypeValidation, Err: fmt.Errorf("could not parse %s: %w", k, err)}
		}
	}

	if p != nil {
		if err := p.Validate(); err != nil {
			return nil, err
		}
	}

	return p, nil
}
