package core

import "github.com/pkg/errors"

// FieldError is used to indicate an error with a specific struct field, keyed by its JSON name.
type FieldError struct {
	Field string
	Error string
}

// ValidationError is a client error the API answers with 400, e.g. an unknown activity ordering
// or a draft submitted without its required fields. Fields, when set, become the response body.
type ValidationError struct {
	Err    error
	Fields []FieldError
}

func NewValidationError(err error, flds ...FieldError) error {
	return &ValidationError{err, flds}
}

func (err ValidationError) Error() string {
	if err.Err == nil {
		return ""
	}
	return err.Err.Error()
}

func (err ValidationError) Unwrap() error { return err.Err }

type shutdown struct {
	message string
}

func NewShutdownError(msg string) error {
	return &shutdown{message: msg}
}

func (s shutdown) Error() string {
	return s.message
}

func IsShutdown(err error) bool {
	_, ok := errors.Cause(err).(*shutdown)
	return ok
}
