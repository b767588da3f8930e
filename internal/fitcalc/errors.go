package fitcalc

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidInput is the only failure class the engine produces. Every error
// returned by this package unwraps to it.
var ErrInvalidInput = errors.New("invalid input")

// FieldError names one offending input field and why it was rejected.
type FieldError struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

// ValidationError lists every problem found with a ProfileInput, along with
// the stage that rejected it (validating for up-front checks, computing for
// component-level checks).
type ValidationError struct {
	Stage  Stage
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Field+": "+f.Reason)
	}
	return fmt.Sprintf("%s while %s: %s", ErrInvalidInput, e.Stage, strings.Join(parts, "; "))
}

func (e *ValidationError) Unwrap() error { return ErrInvalidInput }

// FieldNames returns the offending field names in the order they were found.
func (e *ValidationError) FieldNames() []string {
	names := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		names = append(names, f.Field)
	}
	return names
}

// invalidInput builds the single-field error raised by individual components.
func invalidInput(field, format string, args ...any) error {
	return &ValidationError{
		Stage:  StageComputing,
		Fields: []FieldError{{Field: field, Reason: fmt.Sprintf(format, args...)}},
	}
}
