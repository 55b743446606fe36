package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors used across all layers.
var (
	ErrValidation    = errors.New("validation error")
	ErrUnknownMode   = errors.New("unknown mode")
	ErrUnknownTarget = errors.New("unknown target")
	ErrSourceSchema  = errors.New("source schema mismatch")
)

// ErrNoEntries is returned when filtering leaves nothing to pad: the maximum
// group size of an empty table is undefined.
var ErrNoEntries = fmt.Errorf("%w: no entries survived filtering", ErrValidation)

// ErrInvalidUTF8 is returned when an input record is not valid UTF-8.
var ErrInvalidUTF8 = fmt.Errorf("%w: invalid UTF-8", ErrValidation)

// FieldError describes a validation error for a specific field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError contains a list of field-level validation errors.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 1 {
		return fmt.Sprintf("validation: %s: %s", e.Errors[0].Field, e.Errors[0].Message)
	}
	return fmt.Sprintf("validation: %d errors", len(e.Errors))
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// NewValidationError creates a ValidationError for a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Errors: []FieldError{{Field: field, Message: message}},
	}
}

// NewValidationErrors creates a ValidationError from multiple field errors.
func NewValidationErrors(errs []FieldError) *ValidationError {
	return &ValidationError{Errors: errs}
}
