// internal/instruction/errors.go
package instruction

import (
	"errors"
	"fmt"
)

// ErrInvalidInstruction is the sentinel every parse failure wraps.
var ErrInvalidInstruction = errors.New("invalid instruction")

// ParseError reports a token that does not match the instruction grammar.
type ParseError struct {
	Token  string
	Reason string
	Err    error // underlying cause, if any (e.g. a number conversion)
}

// Error implements the error interface for ParseError.
func (e *ParseError) Error() string {
	msg := fmt.Sprintf("invalid instruction %q: %s", e.Token, e.Reason)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Is makes every ParseError match ErrInvalidInstruction.
func (e *ParseError) Is(target error) bool {
	return target == ErrInvalidInstruction
}

// Unwrap exposes the underlying cause.
func (e *ParseError) Unwrap() error {
	return e.Err
}
