package query

import (
	"fmt"
	"strings"
)

//Segment sigils and separators
const (
	sigilTable   = "@"
	sigilColumns = "["
	sigilWhere   = "?"
	sigilSort    = ">"
	sigilLimit   = "-"
	sigilGroupBy = "*"
	sigilJoin    = "]"

	segmentSeparator = "~"
	whereSeparator   = "||"
	//joinSeparator differs from the legacy PHP client, which joined join where-parts with ||
	joinSeparator = "|"
)

//Compile returns the ShortSQL for d. Segments are always emitted in the order
//table, columns, where, sort, limit, group by, joins. If d is invalid a
//*ValidationError (or *InvalidClauseError) is returned and no ShortSQL is produced.
func Compile(d *Description) (string, error) {
	if d == nil {
		return "", &ValidationError{Field: "query", Reason: "must not be nil"}
	}

	if err := validateToken("table", d.Table); err != nil {
		return "", err
	}
	segments := []string{sigilTable + d.Table}

	if len(d.Columns) > 0 {
		if err := validateList("columns", d.Columns); err != nil {
			return "", err
		}
		segments = append(segments, sigilColumns+strings.Join(d.Columns, ","))
	}

	if len(d.Where) > 0 {
		where, err := compileClauses(d.Where, whereSeparator)
		if err != nil {
			return "", err
		}
		segments = append(segments, sigilWhere+where)
	}

	if d.Sort != "" {
		if err := validateReserved("sort", d.Sort, reservedSegment); err != nil {
			return "", err
		}
		segments = append(segments, sigilSort+d.Sort)
	}

	if d.Limit != "" {
		if err := validateReserved("limit", d.Limit, reservedSegment); err != nil {
			return "", err
		}
		segments = append(segments, sigilLimit+d.Limit)
	}

	if len(d.GroupBy) > 0 {
		if err := validateList("group", d.GroupBy); err != nil {
			return "", err
		}
		segments = append(segments, sigilGroupBy+strings.Join(d.GroupBy, ","))
	}

	for i, j := range d.Joins {
		seg, err := compileJoin(i, j)
		if err != nil {
			return "", err
		}
		segments = append(segments, seg)
	}

	return strings.Join(segments, segmentSeparator), nil
}

func compileJoin(idx int, j *Join) (string, error) {
	field := fmt.Sprintf("join[%d]", idx)
	if j == nil {
		return "", &ValidationError{Field: field, Reason: "must not be nil"}
	}
	if err := validateToken(field+".table", j.Table); err != nil {
		return "", err
	}
	if len(j.Where) == 0 {
		return "", &ValidationError{Field: field + ".where", Reason: "must not be empty"}
	}

	where, err := compileClauses(j.Where, joinSeparator)
	if err != nil {
		return "", err
	}

	return sigilJoin + j.Table + where, nil
}

func validateList(field string, values []string) error {
	for i, v := range values {
		if err := validateToken(fmt.Sprintf("%s[%d]", field, i), v); err != nil {
			return err
		}
		if strings.Contains(v, ",") {
			return &ValidationError{Field: fmt.Sprintf("%s[%d]", field, i), Reason: "must not contain ,"}
		}
	}
	return nil
}
