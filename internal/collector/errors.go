package collector

import "fmt"

// FieldError reports a response payload missing an expected field. A ticker
// whose payload raises one is disqualified, never recommended by accident.
type FieldError struct {
	Symbol string
	Field  string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: field %q missing from response", e.Symbol, e.Field)
}

// ParseError reports a field value that could not be converted to a number.
type ParseError struct {
	Field string
	Value string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %s value %q: %v", e.Field, e.Value, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// APIError reports an error payload returned by the data source itself,
// e.g. an invalid symbol or a rate-limit note.
type APIError struct {
	Source  string
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s api error: %s", e.Source, e.Message)
}
