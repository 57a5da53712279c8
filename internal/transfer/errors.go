// Package transfer defines the validated wire shapes of the public API:
// the bounded representations of menu items, orders, and user-profile
// updates that cross the HTTP and bot boundaries. Every payload carries a
// Validate method that rejects malformed input before it can reach the
// persistence layer.
package transfer

import "fmt"

// ValidationError describes a single field failing its constraint. The
// message is human-readable and names both the offending field and the
// expected format, so it can be surfaced to API clients directly.
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// errLength builds a ValidationError for a string field outside its
// rune-length bounds.
func errLength(field string, min, max int) *ValidationError {
	return &ValidationError{
		Field:   field,
		Message: fmt.Sprintf("length must be between %d and %d characters", min, max),
	}
}

// errPositive builds a ValidationError for a numeric field that must be > 0.
func errPositive(field string) *ValidationError {
	return &ValidationError{Field: field, Message: "must be greater than zero"}
}

// runeLenBetween reports whether s has a rune count within [min, max].
// Bounds are always compared numerically, by rune rather than byte count.
func runeLenBetween(s string, min, max int) bool {
	n := len([]rune(s))
	return n >= min && n <= max
}
