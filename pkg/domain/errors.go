package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when a resource does not exist or is not
	// owned by the caller. The two cases are not distinguished.
	ErrNotFound = errors.New("resource not found")
	// ErrAlreadyExists is returned on unique constraint violations.
	ErrAlreadyExists = errors.New("resource already exists")
	// ErrInvalidReference is returned when a row points at a missing parent.
	ErrInvalidReference = errors.New("invalid reference")
	// ErrUnauthorized is returned when no valid session is present.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrValidation marks input that failed schema validation.
	ErrValidation = errors.New("validation failed")
)

// FieldError ties an error to the input field that caused it.
type FieldError struct {
	Field string
	Err   error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %v", e.Field, e.Err)
}

func (e *FieldError) Unwrap() error {
	return e.Err
}

// WithField scopes err to the given input field.
func WithField(err error, field string) error {
	if err == nil {
		return nil
	}
	return &FieldError{Field: field, Err: err}
}
