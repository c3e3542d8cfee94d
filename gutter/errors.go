package gutter

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig indicates a configuration value failed validation.
// All *ValidationError values unwrap to it.
var ErrInvalidConfig = errors.New("invalid gutter configuration")

// ValidationError describes a single invalid configuration field.
type ValidationError struct {
	// Field is the configuration field that failed, e.g. "folds.width".
	Field string
	// Message describes why the value is invalid.
	Message string
	// Value is the offending value.
	Value any
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s (value: %v)", e.Field, e.Message, e.Value)
}

// Unwrap returns ErrInvalidConfig so callers can use errors.Is.
func (e *ValidationError) Unwrap() error {
	return ErrInvalidConfig
}

func invalidf(field string, value any, format string, args ...any) error {
	return &ValidationError{
		Field:   field,
		Message: fmt.Sprintf(format, args...),
		Value:   value,
	}
}
