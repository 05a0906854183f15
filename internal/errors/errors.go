// Package errors provides sentinel errors and error types for the rule engine.
// It defines common error conditions and structured error types that preserve
// context while allowing error inspection with errors.Is() and errors.As().
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure conditions.
// Use these with errors.Is() to check for specific error types.
var (
	// ErrPositioning indicates a piece could not be placed on a cell because
	// the cell is unusable or occupied. Initial-layout construction recovers
	// from it.
	ErrPositioning = errors.New("positioning error")

	// ErrAttached indicates a piece that is already on a board was added again.
	ErrAttached = errors.New("piece already attached")

	// ErrNotAttached indicates a piece that is not on the board was removed.
	ErrNotAttached = errors.New("piece not attached")

	// ErrForeignPiece indicates a piece belonging to another board was used.
	ErrForeignPiece = errors.New("piece belongs to another board")

	// ErrInvalidCoord indicates a malformed or negative coordinate.
	ErrInvalidCoord = errors.New("invalid coordinate")

	// ErrInvalidPly indicates a malformed canonical ply string.
	ErrInvalidPly = errors.New("invalid ply")

	// ErrUnknownPiece indicates a piece type name the rule set does not know.
	ErrUnknownPiece = errors.New("unknown piece type")

	// ErrInvalidLayout indicates a malformed declarative board configuration.
	ErrInvalidLayout = errors.New("invalid board layout")

	// ErrInvalidHistory indicates a turn history the rule set cannot replay.
	ErrInvalidHistory = errors.New("invalid turn history")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrUnknownRuleSet indicates a rule set name that is not registered.
	ErrUnknownRuleSet = errors.New("unknown rule set")
)

// CellError wraps errors with board context: the cell that was addressed
// and the piece involved. It implements the error interface and supports
// unwrapping via errors.Is() and errors.As().
type CellError struct {
	Err   error  // The underlying error
	Cell  string // Encoded cell, e.g. "e4" (if applicable)
	Piece string // Description of the piece involved (if applicable)
	Op    string // Operation being performed, e.g. "add" or "remove"
}

// Error returns a formatted error message including all available context.
func (e *CellError) Error() string {
	var parts []string

	if e.Op != "" {
		parts = append(parts, e.Op)
	}
	if e.Piece != "" {
		parts = append(parts, e.Piece)
	}
	if e.Cell != "" {
		parts = append(parts, fmt.Sprintf("at %s", e.Cell))
	}

	context := strings.Join(parts, " ")
	if context == "" {
		if e.Err != nil {
			return e.Err.Error()
		}
		return "cell error"
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", context, e.Err)
	}
	return context
}

// Unwrap returns the underlying error, enabling errors.Is() and errors.As()
// to work through the CellError wrapper.
func (e *CellError) Unwrap() error {
	return e.Err
}

// ParseError represents a decoding error for one of the engine's textual
// forms (coordinates, canonical plies, layout records).
type ParseError struct {
	Err      error  // The underlying error
	Input    string // The text being parsed
	Index    int    // Record index for multi-record inputs (-1 if not applicable)
	Expected string // What was expected
	Got      string // What was found instead
}

// Error returns a formatted error message with location and context.
func (e *ParseError) Error() string {
	var parts []string

	if e.Index >= 0 {
		parts = append(parts, fmt.Sprintf("record %d", e.Index))
	}
	if e.Input != "" {
		parts = append(parts, fmt.Sprintf("%q", e.Input))
	}

	if e.Expected != "" && e.Got != "" {
		parts = append(parts, fmt.Sprintf("expected %s, got %s", e.Expected, e.Got))
	} else if e.Expected != "" {
		parts = append(parts, fmt.Sprintf("expected %s", e.Expected))
	} else if e.Got != "" {
		parts = append(parts, fmt.Sprintf("unexpected %s", e.Got))
	}

	if e.Err != nil {
		if len(parts) > 0 {
			return fmt.Sprintf("%s: %v", strings.Join(parts, ": "), e.Err)
		}
		return e.Err.Error()
	}

	if len(parts) > 0 {
		return strings.Join(parts, ": ")
	}
	return "parse error"
}

// Unwrap returns the underlying error.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// NewParseError builds a ParseError for a single-value input.
func NewParseError(err error, input, expected string) *ParseError {
	return &ParseError{Err: err, Input: input, Index: -1, Expected: expected}
}

// Wrap adds context to an error while preserving the underlying error
// for inspection with errors.Is() and errors.As().
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf adds formatted context to an error while preserving the underlying
// error for inspection with errors.Is() and errors.As().
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}
