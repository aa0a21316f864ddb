// Package errors provides sentinel errors and error types for ShallowRed.
// Sentinels are compared with errors.Is(); the structured types keep the
// context of a failed move or parse while still unwrapping to a sentinel.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure conditions.
var (
	// ErrNoPiece indicates a move whose origin is empty or holds an enemy piece.
	ErrNoPiece = errors.New("no piece of the side to move on that square")

	// ErrIllegalMove indicates a move that violates chess rules.
	ErrIllegalMove = errors.New("illegal move")

	// ErrAmbiguousMove indicates several pieces could make the requested move.
	ErrAmbiguousMove = errors.New("ambiguous move")

	// ErrMissingKing indicates a position without a king for a side.
	ErrMissingKing = errors.New("missing king")

	// ErrInvalidPosition indicates a placement no legal game can reach.
	ErrInvalidPosition = errors.New("invalid position")

	// ErrInvalidFEN indicates a malformed FEN string.
	ErrInvalidFEN = errors.New("invalid FEN string")

	// ErrParseFailure indicates move text that could not be read.
	ErrParseFailure = errors.New("parse failure")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrNoLegalMoves indicates a search was asked to move in a stuck position.
	ErrNoLegalMoves = errors.New("no legal moves")

	// ErrGameOver indicates a move was submitted after the game ended.
	ErrGameOver = errors.New("game is over")
)

// MoveError wraps a failed move attempt with where it happened.
type MoveError struct {
	Err      error  // The underlying error
	Ply      int    // 1-based ply the move was attempted at (0 if unknown)
	MoveText string // Move text as entered (if applicable)
	Side     string // Side that attempted the move (if known)
	Detail   string // Extra diagnostic, e.g. "Double check. Must move King."
}

// Error returns a formatted error message including all available context.
func (e *MoveError) Error() string {
	var parts []string

	if e.Side != "" {
		parts = append(parts, e.Side)
	}
	if e.Ply > 0 {
		parts = append(parts, fmt.Sprintf("ply %d", e.Ply))
	}
	if e.MoveText != "" {
		parts = append(parts, fmt.Sprintf("move %q", e.MoveText))
	}

	context := strings.Join(parts, ", ")
	msg := "move failed"
	if e.Err != nil {
		msg = e.Err.Error()
	}
	if e.Detail != "" {
		msg += " (" + e.Detail + ")"
	}
	if context == "" {
		return msg
	}
	return fmt.Sprintf("%s: %s", context, msg)
}

// Unwrap returns the underlying error.
func (e *MoveError) Unwrap() error {
	return e.Err
}

// AmbiguityError reports how many pieces could satisfy a move request.
type AmbiguityError struct {
	MoveText   string
	Candidates int
}

// Error returns the ambiguity with its candidate count.
func (e *AmbiguityError) Error() string {
	return fmt.Sprintf("%v: %d pieces can play %q", ErrAmbiguousMove, e.Candidates, e.MoveText)
}

// Unwrap returns ErrAmbiguousMove.
func (e *AmbiguityError) Unwrap() error {
	return ErrAmbiguousMove
}

// ParseError represents a FEN or move text error with its location.
type ParseError struct {
	Err      error  // The underlying error
	Input    string // The text being parsed
	Column   int    // Column number (1-based, 0 if unknown)
	Expected string // What was expected
	Got      string // What was found instead
}

// Error returns a formatted error message with location and context.
func (e *ParseError) Error() string {
	var parts []string
	if e.Input != "" {
		loc := fmt.Sprintf("%q", e.Input)
		if e.Column > 0 {
			loc += fmt.Sprintf(" at column %d", e.Column)
		}
		parts = append(parts, loc)
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

// Wrap adds context to an error while preserving the underlying error
// for inspection with errors.Is() and errors.As().
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf adds formatted context to an error.
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}

// Is reports whether any error in err's chain matches target.
// It forwards to the standard library so callers need a single import.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}
