package typid

import (
	"errors"
	"fmt"
)

// ErrInvalidLength indicates that a binary identifier payload has an
// incorrect length (expected 16 bytes).
var ErrInvalidLength = errors.New("typid: invalid identifier length (expected 16 bytes)")

// ParseError is returned when text input is not a valid identifier.
// Input preserves the rejected string so callers can log or report exactly
// what was supplied.
type ParseError struct {
	Input string
	cause error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("typid: invalid identifier %q: %v", e.Input, e.cause)
}

// Unwrap returns the underlying UUID parse error.
func (e *ParseError) Unwrap() error {
	return e.cause
}
