//Package query compiles declarative table queries into ShortSQL, the sigil-delimited
//query language accepted by the BraDypUS API.
package query

//Clause is a single where-part in a filter chain. Connector is required for every
//Clause except the first one in a chain. OpenBracket and CloseBracket are only
//honored when they are exactly "(" and ")".
type Clause struct {
	Connector    string `json:"connector,omitempty"`
	OpenBracket  string `json:"open_bracket,omitempty"`
	Field        string `json:"field"`
	Operator     string `json:"operator"`
	Value        string `json:"value"`
	CloseBracket string `json:"close_bracket,omitempty"`
}

//Join is a table joined to the main table, filtered by Where
type Join struct {
	Table string    `json:"table"`
	Where []*Clause `json:"where"`
}

//Description is a declarative table query.
//Empty strings and empty slices are treated as absent.
type Description struct {
	Table   string    `json:"table"`
	Columns []string  `json:"columns,omitempty"`
	Where   []*Clause `json:"where,omitempty"`
	//Sort is in the form field:direction
	Sort string `json:"sort,omitempty"`
	//Limit is in the form count:offset
	Limit   string   `json:"limit,omitempty"`
	GroupBy []string `json:"group,omitempty"`
	Joins   []*Join  `json:"join,omitempty"`
}
