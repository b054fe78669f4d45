package query_test

import (
	"errors"
	"testing"

	"github.com/korylprince/bdus-client/query"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClauseShortSQL(t *testing.T) {
	tests := []struct {
		clause *query.Clause
		want   string
	}{
		{&query.Clause{Field: "a", Operator: "=", Value: "1"}, "a|=|1"},
		{&query.Clause{Connector: "and", Field: "a", Operator: "like", Value: "x"}, "and|a|like|x"},
		{&query.Clause{Connector: "or", OpenBracket: "(", Field: "a", Operator: ">", Value: "2"}, "or|(|a|>|2"},
		{&query.Clause{Field: "a", Operator: "<", Value: "2", CloseBracket: ")"}, "a|<|2|)"},
		{&query.Clause{OpenBracket: "[", Field: "a", Operator: "=", Value: "1", CloseBracket: "]"}, "a|=|1"},
		{&query.Clause{OpenBracket: " (", Field: "a", Operator: "=", Value: "1", CloseBracket: ") "}, "a|=|1"},
	}

	for _, test := range tests {
		s, err := test.clause.ShortSQL()
		require.NoError(t, err)
		assert.Equal(t, test.want, s)
	}
}

func TestClauseShortSQLInvalid(t *testing.T) {
	tests := []struct {
		clause *query.Clause
		field  string
	}{
		{nil, "clause"},
		{&query.Clause{Operator: "=", Value: "1"}, "field"},
		{&query.Clause{Field: "a", Value: "1"}, "operator"},
		{&query.Clause{Field: "a", Operator: "="}, "value"},
		{&query.Clause{Field: "a|b", Operator: "=", Value: "1"}, "field"},
		{&query.Clause{Field: "a", Operator: "=", Value: "x~y"}, "value"},
		{&query.Clause{Connector: "and|or", Field: "a", Operator: "=", Value: "1"}, "connector"},
		{&query.Clause{Connector: "(", Field: "a", Operator: "=", Value: "1"}, "connector"},
		{&query.Clause{Field: "a", Operator: "=", Value: ")"}, "value"},
	}

	for _, test := range tests {
		s, err := test.clause.ShortSQL()
		assert.Empty(t, s)

		var vErr *query.ValidationError
		require.True(t, errors.As(err, &vErr))
		assert.Equal(t, test.field, vErr.Field)
	}
}

//distinct clauses must never serialize to the same string
func TestClauseShortSQLInjective(t *testing.T) {
	clauses := []*query.Clause{
		{Field: "a", Operator: "=", Value: "1"},
		{Field: "a", Operator: "=", Value: "2"},
		{Field: "a", Operator: "like", Value: "1"},
		{Field: "b", Operator: "=", Value: "1"},
		{Connector: "and", Field: "a", Operator: "=", Value: "1"},
		{Connector: "or", Field: "a", Operator: "=", Value: "1"},
		{OpenBracket: "(", Field: "a", Operator: "=", Value: "1"},
		{Field: "a", Operator: "=", Value: "1", CloseBracket: ")"},
		{Connector: "and", OpenBracket: "(", Field: "a", Operator: "=", Value: "1", CloseBracket: ")"},
		{Field: "a=", Operator: "=", Value: "1"},
	}

	seen := make(map[string]int)
	for i, c := range clauses {
		s, err := c.ShortSQL()
		require.NoError(t, err)
		if j, ok := seen[s]; ok {
			t.Errorf("clauses %d and %d both serialize to %q", j, i, s)
		}
		seen[s] = i
	}
}
