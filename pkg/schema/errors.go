package schema

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalid is matched by every error produced by this package.
var ErrInvalid = errors.New("invalid field value")

// ValidationError represents a single field validation failure.
type ValidationError struct {
	Key    string // Field id
	Label  string // Human-readable field label, if known
	Reason string // Human-readable reason for failure
	Value  any    // The value that failed validation
}

func (e *ValidationError) Error() string {
	name := e.Key
	if e.Label != "" {
		name = e.Label
	}
	if e.Value == nil {
		return fmt.Sprintf("field %q: %s", name, e.Reason)
	}
	return fmt.Sprintf("field %q: %s (got %v)", name, e.Reason, e.Value)
}

func (e *ValidationError) Is(target error) bool { return target == ErrInvalid }

// AggregateError represents multiple validation failures.
type AggregateError struct {
	Errors []error
}

func (e *AggregateError) Error() string {
	if len(e.Errors) == 1 {
		return e.Errors[0].Error()
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%d validation errors:\n", len(e.Errors))
	for i, err := range e.Errors {
		fmt.Fprintf(&b, "  %d. %s\n", i+1, err.Error())
	}
	return b.String()
}

func (e *AggregateError) Unwrap() []error { return e.Errors }

// ValidationErrors returns all validation errors if err is (or wraps) an AggregateError.
// Otherwise returns nil.
func ValidationErrors(err error) []error {
	var aggr *AggregateError
	if errors.As(err, &aggr) {
		return aggr.Errors
	}
	return nil
}
