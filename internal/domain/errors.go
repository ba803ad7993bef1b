package domain

import (
	"errors"
	"strings"
)

// Sentinel errors shared by repositories, services and transport. Callers
// match them with errors.Is.
var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
	ErrValidation    = errors.New("validation error")
	ErrUnauthorized  = errors.New("unauthorized")
)

// FieldError is a problem with one input field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError reports rejected input. It matches ErrValidation.
type ValidationError struct {
	Errors []FieldError
}

// Error lists every field problem: "validation: code: required; state: too long".
func (e *ValidationError) Error() string {
	var b strings.Builder
	b.WriteString("validation")
	for i, fe := range e.Errors {
		if i == 0 {
			b.WriteString(": ")
		} else {
			b.WriteString("; ")
		}
		b.WriteString(fe.Field)
		b.WriteString(": ")
		b.WriteString(fe.Message)
	}
	return b.String()
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// NewValidationError creates a ValidationError for a single field.
func NewValidationError(field, message string) *ValidationError {
	return NewValidationErrors([]FieldError{{Field: field, Message: message}})
}

// NewValidationErrors creates a ValidationError from several field errors.
func NewValidationErrors(errs []FieldError) *ValidationError {
	return &ValidationError{Errors: errs}
}
