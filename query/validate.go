package query

import "strings"

//Reserved characters in ShortSQL
const (
	reservedSegment = "~"
	reservedToken   = "|"
)

//validateToken returns an error if value is empty or contains a reserved character
func validateToken(field, value string) *ValidationError {
	if value == "" {
		return &ValidationError{Field: field, Reason: "must not be empty"}
	}
	return validateReserved(field, value, reservedSegment+reservedToken)
}

func validateReserved(field, value, reserved string) *ValidationError {
	if strings.ContainsAny(value, reserved) {
		return &ValidationError{Field: field, Reason: "must not contain any of " + strings.Join(strings.Split(reserved, ""), " ")}
	}
	return nil
}
