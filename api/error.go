package api

import (
	"errors"
	"fmt"
)

//ErrorType are Error types
type ErrorType int

//ErrorTypes
const (
	//ErrorTypeValidation is malformed input, detected before any request is made
	ErrorTypeValidation ErrorType = iota
	//ErrorTypeTransport is a request that could not get a response
	ErrorTypeTransport
	//ErrorTypeNotFound is a resource the API reported as missing
	ErrorTypeNotFound
)

func (t ErrorType) String() string {
	switch t {
	case ErrorTypeValidation:
		return "Validation Error"
	case ErrorTypeTransport:
		return "Transport Error"
	case ErrorTypeNotFound:
		return "Not Found Error"
	}
	return "Unknown Error"
}

//Error wraps errors in the API
type Error struct {
	Description string
	Type        ErrorType
	Err         error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%v: %s", e.Type, e.Description)
	}
	return fmt.Sprintf("%v: %s: %v", e.Type, e.Description, e.Err)
}

//Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Err
}

func isType(err error, typ ErrorType) bool {
	var e *Error
	return errors.As(err, &e) && e.Type == typ
}

//IsValidation returns true if err is a validation Error
func IsValidation(err error) bool {
	return isType(err, ErrorTypeValidation)
}

//IsTransport returns true if err is a transport Error
func IsTransport(err error) bool {
	return isType(err, ErrorTypeTransport)
}

//IsNotFound returns true if err is a not found Error
func IsNotFound(err error) bool {
	return isType(err, ErrorTypeNotFound)
}
