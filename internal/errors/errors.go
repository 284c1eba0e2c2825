// Package errors provides sentinel errors and error types for pawnrace-go.
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
	// ErrInvalidColour indicates a colour code other than "W" or "B".
	ErrInvalidColour = errors.New("invalid colour")

	// ErrInvalidCoordinate indicates a file or rank outside the board.
	ErrInvalidCoordinate = errors.New("invalid coordinate")

	// ErrInvalidLayout indicates a malformed board layout string.
	ErrInvalidLayout = errors.New("invalid board layout")

	// ErrIllegalMove indicates a move the board's generator does not produce.
	ErrIllegalMove = errors.New("illegal move")

	// ErrGameOver indicates a move submitted after the game was decided.
	ErrGameOver = errors.New("game over")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrProtocol indicates an unexpected line on the driver channel.
	ErrProtocol = errors.New("protocol error")

	// ErrStore indicates a failure in the position store.
	ErrStore = errors.New("position store error")
)

// CoordinateError records which axis rejected which input.
// It unwraps to ErrInvalidCoordinate unless Err is set.
type CoordinateError struct {
	Axis  string // "file", "rank" or "square"
	Input string // The rejected input, formatted for display
	Err   error  // The underlying error
}

// Error returns a message naming the axis and the rejected input.
func (e *CoordinateError) Error() string {
	msg := fmt.Sprintf("%s %s", e.Axis, e.Input)
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return fmt.Sprintf("%s: %v", msg, ErrInvalidCoordinate)
}

// Unwrap returns the underlying error.
func (e *CoordinateError) Unwrap() error {
	if e.Err == nil {
		return ErrInvalidCoordinate
	}
	return e.Err
}

// GameError wraps errors with game context, including the ply number and
// move text. It implements the error interface and supports unwrapping via
// errors.Is() and errors.As().
type GameError struct {
	Err      error  // The underlying error
	PlyNum   int    // Ply number where error occurred (0 if not applicable)
	MoveText string // The move text that caused the error (if applicable)
	Colour   string // Side to move when the error occurred (if known)
}

// Error returns a formatted error message including all available context.
func (e *GameError) Error() string {
	var parts []string

	if e.PlyNum > 0 {
		parts = append(parts, fmt.Sprintf("ply %d", e.PlyNum))
	}
	if e.Colour != "" {
		parts = append(parts, e.Colour+" to move")
	}
	if e.MoveText != "" {
		parts = append(parts, fmt.Sprintf("move %q", e.MoveText))
	}

	context := strings.Join(parts, ", ")
	if e.Err != nil {
		if context == "" {
			return e.Err.Error()
		}
		return fmt.Sprintf("%s: %v", context, e.Err)
	}
	if context == "" {
		return "game error"
	}
	return context
}

// Unwrap returns the underlying error, enabling errors.Is() and errors.As()
// to work through the GameError wrapper.
func (e *GameError) Unwrap() error {
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
