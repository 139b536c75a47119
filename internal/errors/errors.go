// Package errors provides sentinel errors and error types for the chessrules tool.
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
	// ErrInvalidFEN indicates a malformed FEN string.
	ErrInvalidFEN = errors.New("invalid FEN string")

	// ErrInvalidSquare indicates a square name that is not on the board.
	ErrInvalidSquare = errors.New("invalid square")

	// ErrIllegalMove indicates a move that violates chess rules.
	ErrIllegalMove = errors.New("illegal move")

	// ErrIllegalCastle indicates a castling request that is not allowed.
	ErrIllegalCastle = errors.New("illegal castle")

	// ErrGameOver indicates a move attempted after checkmate or stalemate.
	ErrGameOver = errors.New("game is over")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrMissingKing indicates a board without a King for a colour.
	ErrMissingKing = errors.New("missing king")

	// ErrCorruptBoard indicates two pieces on one square.
	ErrCorruptBoard = errors.New("corrupt board")

	// ErrUnknownCommand indicates an unrecognised interactive command.
	ErrUnknownCommand = errors.New("unknown command")
)

// CommandError wraps errors with interactive-session context: which input
// line, which command and its arguments.
// It implements the error interface and supports unwrapping via errors.Is()
// and errors.As().
type CommandError struct {
	Err     error    // The underlying error
	Line    int      // 1-based input line number (0 if not applicable)
	Command string   // The command word
	Args    []string // Command arguments
}

// Error returns a formatted error message including all available context.
func (e *CommandError) Error() string {
	var parts []string

	if e.Line > 0 {
		parts = append(parts, fmt.Sprintf("line %d", e.Line))
	}

	if e.Command != "" {
		cmd := e.Command
		if len(e.Args) > 0 {
			cmd += " " + strings.Join(e.Args, " ")
		}
		parts = append(parts, fmt.Sprintf("command %q", cmd))
	}

	context := strings.Join(parts, ", ")

	if e.Err != nil {
		if context == "" {
			return e.Err.Error()
		}
		return fmt.Sprintf("%s: %v", context, e.Err)
	}
	if context == "" {
		return "command error"
	}
	return context
}

// Unwrap returns the underlying error, enabling errors.Is() and errors.As()
// to work through the CommandError wrapper.
func (e *CommandError) Unwrap() error {
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

// Wrapf adds formatted context to an error while preserving the underlying
// error for inspection with errors.Is() and errors.As().
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}
