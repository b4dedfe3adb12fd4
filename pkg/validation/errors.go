package validation

import (
	"errors"
	"strings"

	"github.com/Enryuk3/kash-app/pkg/domain"
)

// ErrMalformedBody is returned when the request body is not a JSON object.
var ErrMalformedBody = errors.New("request body must be a JSON object")

// FieldError is a single offending input field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Errors lists every field that failed validation, in declaration order.
type Errors struct {
	Fields []FieldError
}

func (e *Errors) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Field+": "+f.Message)
	}
	return strings.Join(parts, "; ")
}

// Unwrap lets callers match validation failures with errors.Is.
func (e *Errors) Unwrap() error {
	return domain.ErrValidation
}

// Map returns the failures keyed by field path.
func (e *Errors) Map() map[string]string {
	m := make(map[string]string, len(e.Fields))
	for _, f := range e.Fields {
		m[f.Field] = f.Message
	}
	return m
}

// Has reports whether field already failed.
func (e *Errors) Has(field string) bool {
	for _, f := range e.Fields {
		if f.Field == field {
			return true
		}
	}
	return false
}

func (e *Errors) add(field, message string) {
	if e.Has(field) {
		return
	}
	e.Fields = append(e.Fields, FieldError{Field: field, Message: message})
}

func (e *Errors) orNil() error {
	if e == nil || len(e.Fields) == 0 {
		return nil
	}
	return e
}
