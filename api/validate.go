package api

import "fmt"

//ValidateString returns an error if the given value is empty
func ValidateString(field, value string) error {
	if value == "" {
		return &Error{Description: "Invalid input", Type: ErrorTypeValidation, Err: fmt.Errorf("%s must not be empty", field)}
	}
	return nil
}

//ValidateID returns an error if the given id is not positive
func ValidateID(field string, id int64) error {
	if id < 1 {
		return &Error{Description: "Invalid input", Type: ErrorTypeValidation, Err: fmt.Errorf("%s (%d) must be a positive integer", field, id)}
	}
	return nil
}
