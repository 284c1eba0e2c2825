package chess

import (
	"strconv"

	"github.com/lgbarn/pawnrace-go/internal/errors"
)

// Move is a pawn move relative to the board it was generated from.
type Move struct {
	From Position
	To   Position

	// EnPassant marks a capture of the pawn beside From rather than on To.
	EnPassant bool
}

// ParseMove reads a move in long algebraic form, e.g. "e2e4". The
// en-passant flag cannot be recovered from text; use Board.FindMove to
// resolve it.
func ParseMove(s string) (Move, error) {
	if len(s) != 4 {
		return Move{}, &errors.CoordinateError{Axis: "move", Input: strconv.Quote(s)}
	}
	from, err := ParsePosition(s[:2])
	if err != nil {
		return Move{}, err
	}
	to, err := ParsePosition(s[2:])
	if err != nil {
		return Move{}, err
	}
	return Move{From: from, To: to}, nil
}

// IsDoubleStep reports whether the move advances two ranks.
func (m Move) IsDoubleStep() bool {
	return m.To.Rank-m.From.Rank == 2
}

// IsDiagonal reports whether the move changes file, i.e. is a capture.
func (m Move) IsDiagonal() bool {
	return m.From.File != m.To.File
}

// Flip rotates both squares, converting a move between the two sides'
// points of view.
func (m Move) Flip() Move {
	return Move{From: m.From.Flip(), To: m.To.Flip(), EnPassant: m.EnPassant}
}

// String returns the long algebraic form, e.g. "e2e4".
func (m Move) String() string {
	return m.From.String() + m.To.String()
}
