package domain

import (
	"errors"
	"fmt"
)

// ErrInvalidInput is the sentinel every ValidationError unwraps to.
var ErrInvalidInput = errors.New("invalid input")

// ValidationError reports which input field was rejected and why.
type ValidationError struct {
	Field  string
	Value  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Value != "" {
		return fmt.Sprintf("invalid %s (%s): %s", e.Field, e.Value, e.Reason)
	}
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidInput
}

// NewValidationError creates a ValidationError for field.
func NewValidationError(field string, value any, reason string) error {
	v := ""
	if value != nil {
		v = fmt.Sprint(value)
	}
	return &ValidationError{Field: field, Value: v, Reason: reason}
}

// InvalidField extracts the offending field name from err, if it carries one.
func InvalidField(err error) (string, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve.Field, true
	}
	return "", false
}
