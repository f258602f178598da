package puzzlekit

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownPuzzle is returned when no solver is registered for a day.
	ErrUnknownPuzzle = errors.New("unknown puzzle")

	// ErrMalformedInput is returned when puzzle input cannot be parsed.
	ErrMalformedInput = errors.New("malformed input")

	// ErrInputNotFound is returned when no input file exists for a day.
	ErrInputNotFound = errors.New("input not found")
)

// ParseError describes a malformed input position. It matches
// ErrMalformedInput with errors.Is.
//
// The cause, if any, is reachable with errors.Is and errors.As.
type ParseError struct {
	Line   int
	Column int
	cause  error
}

// NewParseError creates a ParseError at the given 1-based line and column.
func NewParseError(line, column int, cause error) *ParseError {
	return &ParseError{Line: line, Column: column, cause: cause}
}

func (e *ParseError) Error() string {
	if e.cause == nil {
		return fmt.Sprintf("malformed input at %d:%d", e.Line, e.Column)
	}
	return fmt.Sprintf("malformed input at %d:%d: %v", e.Line, e.Column, e.cause)
}

func (e *ParseError) Unwrap() []error {
	if e.cause == nil {
		return []error{ErrMalformedInput}
	}
	return []error{ErrMalformedInput, e.cause}
}

// Malformed wraps a message as ErrMalformedInput when there is no single
// position to blame.
func Malformed(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrMalformedInput, fmt.Sprintf(format, args...))
}
