package query

import "strings"

//Validate returns a *ValidationError if Field, Operator or Value are missing, or if any
//token contains a reserved character
func (c *Clause) Validate() error {
	if c == nil {
		return &ValidationError{Field: "clause", Reason: "must not be nil"}
	}
	if err := validateClauseToken("field", c.Field); err != nil {
		return err
	}
	if err := validateClauseToken("operator", c.Operator); err != nil {
		return err
	}
	if err := validateClauseToken("value", c.Value); err != nil {
		return err
	}
	if c.Connector != "" {
		if err := validateClauseToken("connector", c.Connector); err != nil {
			return err
		}
	}
	return nil
}

//validateClauseToken also rejects bare brackets so they can't be confused with group tokens
func validateClauseToken(field, value string) *ValidationError {
	if err := validateToken(field, value); err != nil {
		return err
	}
	if value == "(" || value == ")" {
		return &ValidationError{Field: field, Reason: "must not be a bare bracket"}
	}
	return nil
}

//ShortSQL serializes the Clause as [connector|][(|]field|operator|value[|)]
func (c *Clause) ShortSQL() (string, error) {
	if err := c.Validate(); err != nil {
		return "", err
	}

	tokens := make([]string, 0, 6)
	if c.Connector != "" {
		tokens = append(tokens, c.Connector)
	}
	if c.OpenBracket == "(" {
		tokens = append(tokens, "(")
	}
	tokens = append(tokens, c.Field, c.Operator, c.Value)
	if c.CloseBracket == ")" {
		tokens = append(tokens, ")")
	}

	return strings.Join(tokens, reservedToken), nil
}

//compileClauses serializes every clause, joined by sep. Nothing is returned unless
//every clause is valid.
func compileClauses(clauses []*Clause, sep string) (string, error) {
	parts := make([]string, 0, len(clauses))
	for i, c := range clauses {
		part, err := c.ShortSQL()
		if err != nil {
			return "", &InvalidClauseError{Index: i, Err: err.(*ValidationError)}
		}
		if i > 0 && c.Connector == "" {
			return "", &InvalidClauseError{Index: i, Err: &ValidationError{Field: "connector", Reason: "must not be empty after the first where part"}}
		}
		parts = append(parts, part)
	}
	return strings.Join(parts, sep), nil
}

