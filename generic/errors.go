/*
errors.go - Centralized error types for the generic engine

PURPOSE:
  All error types in one place for consistency and discoverability.
  Domain packages wrap these errors with additional context.

ERROR CATEGORIES:
  1. Input errors - Malformed or out-of-range user input
  2. Store errors - Missing records, persistence failures

USAGE:
  if errors.Is(err, generic.ErrInvalidSelector) {
      // 400 to the client
  }

SEE ALSO:
  - factory/request.go: Produces ValidationErrors and SelectorError
  - api/handlers.go: Maps errors to HTTP status codes
*/
package generic

import (
	"errors"
	"fmt"
	"strings"
)

// =============================================================================
// SENTINEL ERRORS - Use with errors.Is()
// =============================================================================

var (
	// ErrInvalidRange is returned when a window's end is not after its start.
	// The calculation engine itself never returns it; it clamps instead.
	ErrInvalidRange = errors.New("invalid range: end not after start")

	// ErrInvalidSelector is returned when a selector value is not one of the
	// allowed options (unknown tier, level out of range).
	ErrInvalidSelector = errors.New("invalid selector")

	// ErrInvalidInput is returned when request fields fail validation.
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidCatalog is returned when a reward catalog is malformed.
	ErrInvalidCatalog = errors.New("invalid reward catalog")

	// ErrRecordNotFound is returned when a stored record doesn't exist.
	ErrRecordNotFound = errors.New("record not found")
)

// =============================================================================
// STRUCTURED ERRORS - Carry additional context
// =============================================================================

// SelectorError names the selector and the rejected raw value.
type SelectorError struct {
	Field string
	Value string
	Max   int
}

func (e *SelectorError) Error() string {
	return fmt.Sprintf("%s: %q is not an option (0-%d)", e.Field, e.Value, e.Max)
}

func (e *SelectorError) Unwrap() error {
	return ErrInvalidSelector
}

// FieldError is a single validation failure.
type FieldError struct {
	Field   string `json:"field"`
	Code    string `json:"code"` // e.g., "negative", "too_long", "not_future"
	Message string `json:"message"`
}

func (e FieldError) Error() string {
	return e.Field + ": " + e.Message
}

// ValidationErrors collects every failing field of a request.
type ValidationErrors []FieldError

func (v ValidationErrors) Error() string {
	msgs := make([]string, len(v))
	for i, e := range v {
		msgs[i] = e.Error()
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}

func (v ValidationErrors) Unwrap() error {
	return ErrInvalidInput
}

// =============================================================================
// ERROR HELPERS
// =============================================================================

// IsClientError returns true if the error is due to invalid client input.
func IsClientError(err error) bool {
	return errors.Is(err, ErrInvalidInput) ||
		errors.Is(err, ErrInvalidSelector) ||
		errors.Is(err, ErrInvalidRange)
}

// IsNotFound returns true if the error indicates a missing resource.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrRecordNotFound)
}
