// Package chess provides the Pawn Race board, coordinates and move generation.
package chess

import (
	"fmt"
	"strconv"

	"github.com/lgbarn/pawnrace-go/internal/errors"
)

// Colour represents the colour of a side.
type Colour int

const (
	White Colour = iota
	Black
)

// ParseColour converts the driver's single-letter colour code.
// Only "W" and "B" are accepted.
func ParseColour(s string) (Colour, error) {
	switch s {
	case "W":
		return White, nil
	case "B":
		return Black, nil
	default:
		return White, fmt.Errorf("%q: %w", s, errors.ErrInvalidColour)
	}
}

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Letter returns the single letter code accepted by ParseColour.
func (c Colour) Letter() string {
	if c == White {
		return "W"
	}
	return "B"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// Square is the decoded content of one board square, relative to the mover.
type Square int

const (
	Empty Square = iota
	MoverPawn
	OpponentPawn
)

// String returns the string representation of a square.
func (s Square) String() string {
	switch s {
	case MoverPawn:
		return "MoverPawn"
	case OpponentPawn:
		return "OpponentPawn"
	default:
		return "Empty"
	}
}

// Flip swaps the roles of mover and opponent.
func (s Square) Flip() Square {
	switch s {
	case MoverPawn:
		return OpponentPawn
	case OpponentPawn:
		return MoverPawn
	default:
		return Empty
	}
}

// BoardSize is the number of files and ranks.
const BoardSize = 8

// File is a board column, 0 (A) to 7 (H).
type File int8

// Rank is a board row, 0 (rank 1) to 7 (rank 8).
type Rank int8

const (
	FileA File = iota
	FileB
	FileC
	FileD
	FileE
	FileF
	FileG
	FileH
)

const (
	Rank1 Rank = iota
	Rank2
	Rank3
	Rank4
	Rank5
	Rank6
	Rank7
	Rank8
)

// NewFile builds a file from its 1-based number. Out-of-range numbers are
// rejected rather than wrapped.
func NewFile(n int) (File, error) {
	if n < 1 || n > BoardSize {
		return 0, &errors.CoordinateError{Axis: "file", Input: strconv.Itoa(n)}
	}
	return File(n - 1), nil
}

// ParseFile converts a file letter, either case.
func ParseFile(c byte) (File, error) {
	switch {
	case c >= 'a' && c <= 'h':
		return File(c - 'a'), nil
	case c >= 'A' && c <= 'H':
		return File(c - 'A'), nil
	}
	return 0, &errors.CoordinateError{Axis: "file", Input: strconv.QuoteRune(rune(c))}
}

// Index returns the 0-based column.
func (f File) Index() int { return int(f) }

// Number returns the 1-based column.
func (f File) Number() int { return int(f) + 1 }

// IsStart reports whether f is the A file.
func (f File) IsStart() bool { return f == FileA }

// IsEnd reports whether f is the H file.
func (f File) IsEnd() bool { return f == FileH }

// Incr returns the next file towards H, or false on the H file.
func (f File) Incr() (File, bool) {
	if f.IsEnd() {
		return f, false
	}
	return f + 1, true
}

// Decr returns the next file towards A, or false on the A file.
func (f File) Decr() (File, bool) {
	if f.IsStart() {
		return f, false
	}
	return f - 1, true
}

// Flip mirrors the file across the board's vertical centre line.
func (f File) Flip() File { return FileH - f }

// String returns the upper-case file letter.
func (f File) String() string {
	return string(rune('A' + int(f)))
}

// NewRank builds a rank from its 1-based number. Out-of-range numbers are
// rejected rather than wrapped.
func NewRank(n int) (Rank, error) {
	if n < 1 || n > BoardSize {
		return 0, &errors.CoordinateError{Axis: "rank", Input: strconv.Itoa(n)}
	}
	return Rank(n - 1), nil
}

// ParseRank converts a rank digit '1'-'8'.
func ParseRank(c byte) (Rank, error) {
	if c < '1' || c > '8' {
		return 0, &errors.CoordinateError{Axis: "rank", Input: strconv.QuoteRune(rune(c))}
	}
	return Rank(c - '1'), nil
}

// Index returns the 0-based row.
func (r Rank) Index() int { return int(r) }

// Number returns the 1-based row.
func (r Rank) Number() int { return int(r) + 1 }

// IsStart reports whether r is rank 1.
func (r Rank) IsStart() bool { return r == Rank1 }

// IsEnd reports whether r is rank 8.
func (r Rank) IsEnd() bool { return r == Rank8 }

// Incr returns the next rank towards 8, or false on rank 8.
func (r Rank) Incr() (Rank, bool) {
	if r.IsEnd() {
		return r, false
	}
	return r + 1, true
}

// Decr returns the next rank towards 1, or false on rank 1.
func (r Rank) Decr() (Rank, bool) {
	if r.IsStart() {
		return r, false
	}
	return r - 1, true
}

// Flip mirrors the rank across the board's horizontal centre line.
func (r Rank) Flip() Rank { return Rank8 - r }

// String returns the rank digit.
func (r Rank) String() string {
	return strconv.Itoa(r.Number())
}
