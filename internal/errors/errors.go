// Package errors provides sentinel errors and error types for the chess
// board core. It defines the failure conditions of the notation layer as
// structured errors that preserve context while allowing inspection with
// errors.Is() and errors.As().
package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for common failure conditions.
// Use these with errors.Is() to check for specific error types.
var (
	// ErrInvalidFEN indicates a malformed FEN string.
	ErrInvalidFEN = errors.New("invalid FEN string")

	// ErrInvalidSquare indicates a malformed algebraic square name.
	ErrInvalidSquare = errors.New("invalid square name")
)

// FENError wraps a FEN decode failure with the field that caused it and
// the offending text. It implements the error interface and supports
// unwrapping via errors.Is() and errors.As().
type FENError struct {
	Err   error  // The underlying error (usually ErrInvalidFEN)
	Field string // Which FEN field failed, e.g. "placement"
	Value string // The offending text, if useful
	Msg   string // Human-readable description of the failure
}

// Error returns a formatted message including all available context.
func (e *FENError) Error() string {
	msg := e.Msg
	if msg == "" && e.Err != nil {
		msg = e.Err.Error()
	}
	if e.Value != "" {
		return fmt.Sprintf("FEN field %s: %s: %q", e.Field, msg, e.Value)
	}
	return fmt.Sprintf("FEN field %s: %s", e.Field, msg)
}

// Unwrap returns the underlying error, enabling errors.Is() and
// errors.As() to work through the FENError wrapper.
func (e *FENError) Unwrap() error {
	return e.Err
}

// Wrap adds context to an error while preserving the underlying error
// for inspection with errors.Is() and errors.As().
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf adds formatted context to an error while preserving the
// underlying error for inspection with errors.Is() and errors.As().
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}
