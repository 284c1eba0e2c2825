package chess

import (
	"strconv"
	"strings"

	"github.com/lgbarn/pawnrace-go/internal/errors"
)

// Position is a square on the board.
// The zero value is A1.
type Position struct {
	File File
	Rank Rank
}

// NewPosition builds a position from 1-based file and rank numbers.
func NewPosition(file, rank int) (Position, error) {
	f, err := NewFile(file)
	if err != nil {
		return Position{}, err
	}
	r, err := NewRank(rank)
	if err != nil {
		return Position{}, err
	}
	return Position{File: f, Rank: r}, nil
}

// PositionFromAlgebraic builds a position from a file letter and rank digit.
func PositionFromAlgebraic(letter, digit byte) (Position, error) {
	f, err := ParseFile(letter)
	if err != nil {
		return Position{}, err
	}
	r, err := ParseRank(digit)
	if err != nil {
		return Position{}, err
	}
	return Position{File: f, Rank: r}, nil
}

// ParsePosition parses a two-character square such as "e4".
func ParsePosition(s string) (Position, error) {
	if len(s) != 2 {
		return Position{}, &errors.CoordinateError{Axis: "square", Input: strconv.Quote(s)}
	}
	return PositionFromAlgebraic(s[0], s[1])
}

// MustParsePosition is like ParsePosition but panics on error.
// Intended for constants and tests.
func MustParsePosition(s string) Position {
	p, err := ParsePosition(s)
	if err != nil {
		panic(err)
	}
	return p
}

// positionAt converts a square index (8*rank + file) into a position.
func positionAt(index int) Position {
	return Position{File: File(index % BoardSize), Rank: Rank(index / BoardSize)}
}

// Positions returns all 64 squares in scan order, A1 first and file fastest.
func Positions() []Position {
	out := make([]Position, BoardSize*BoardSize)
	for i := range out {
		out[i] = positionAt(i)
	}
	return out
}

// Index returns the square index, 8*rank + file.
func (p Position) Index() int {
	return p.Rank.Index()*BoardSize + p.File.Index()
}

// Left returns the square towards the A file.
func (p Position) Left() (Position, bool) {
	f, ok := p.File.Decr()
	return Position{File: f, Rank: p.Rank}, ok
}

// Right returns the square towards the H file.
func (p Position) Right() (Position, bool) {
	f, ok := p.File.Incr()
	return Position{File: f, Rank: p.Rank}, ok
}

// Front returns the square one rank ahead of the mover.
func (p Position) Front() (Position, bool) {
	r, ok := p.Rank.Incr()
	return Position{File: p.File, Rank: r}, ok
}

// Back returns the square one rank behind the mover.
func (p Position) Back() (Position, bool) {
	r, ok := p.Rank.Decr()
	return Position{File: p.File, Rank: r}, ok
}

// DiagLeft returns Front().Left().
func (p Position) DiagLeft() (Position, bool) {
	front, ok := p.Front()
	if !ok {
		return p, false
	}
	return front.Left()
}

// DiagRight returns Front().Right().
func (p Position) DiagRight() (Position, bool) {
	front, ok := p.Front()
	if !ok {
		return p, false
	}
	return front.Right()
}

// Flip rotates the position 180 degrees, matching Board.Flip.
func (p Position) Flip() Position {
	return Position{File: p.File.Flip(), Rank: p.Rank.Flip()}
}

// String returns the lower-case algebraic name, e.g. "e4".
func (p Position) String() string {
	return strings.ToLower(p.File.String()) + p.Rank.String()
}
