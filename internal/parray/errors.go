package parray

import (
	"errors"
	"fmt"
)

// Domain errors for particle-array access.
var (
	// ErrMissingField indicates an equation or engine referenced a field the
	// array does not carry.
	ErrMissingField = errors.New("parray: missing field")

	// ErrSizeMismatch indicates a field slice whose length does not match the
	// particle count.
	ErrSizeMismatch = errors.New("parray: field size mismatch")
)

// FieldError wraps a field lookup failure with the array and field names.
type FieldError struct {
	Array   string
	Field   string
	Wrapped error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%v: %q on array %q", e.Wrapped, e.Field, e.Array)
}

func (e *FieldError) Unwrap() error {
	return e.Wrapped
}
