// Package records implements the struct-based record keeping exercises:
// runners, students, employees, athletes, stage times, people and the
// enrollee roster searched by number.
package records

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidRecord = errors.New("records: invalid record")
	ErrNoRecords     = errors.New("records: no records")
)

// FieldError describes one field that failed validation.
type FieldError struct {
	Field  string
	Value  any
	Reason string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("records: %s=%v: %s", e.Field, e.Value, e.Reason)
}

func (e *FieldError) Unwrap() error { return ErrInvalidRecord }

func checkRange[T int | float64](field string, v, min, max T) error {
	if v < min || v > max {
		return &FieldError{Field: field, Value: v, Reason: fmt.Sprintf("must be between %v and %v", min, max)}
	}
	return nil
}
