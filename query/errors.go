package query

import "fmt"

//ValidationError is returned when a Description or Clause is malformed
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s %s", e.Field, e.Reason)
}

//InvalidClauseError is returned when a where-part can't be serialized.
//Index is the position of the Clause in its chain.
type InvalidClauseError struct {
	Index int
	Err   *ValidationError
}

func (e *InvalidClauseError) Error() string {
	return fmt.Sprintf("Invalid where part %d: %v", e.Index, e.Err)
}

//Unwrap returns the underlying *ValidationError
func (e *InvalidClauseError) Unwrap() error {
	return e.Err
}
