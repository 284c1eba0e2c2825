// Package game tracks a Pawn Race between White and Black: whose turn it
// is, the moves played and whether someone has won.
package game

import (
	"fmt"

	"github.com/lgbarn/pawnrace-go/internal/chess"
	"github.com/lgbarn/pawnrace-go/internal/errors"
)

// Result is the state of a game.
type Result int

const (
	Ongoing Result = iota
	WhiteWins
	BlackWins
	Draw
)

// String returns the result in PGN notation.
func (r Result) String() string {
	switch r {
	case WhiteWins:
		return "1-0"
	case BlackWins:
		return "0-1"
	case Draw:
		return "1/2-1/2"
	default:
		return "*"
	}
}

// IsOver reports whether the game has been decided.
func (r Result) IsOver() bool {
	return r != Ongoing
}

// Game is a Pawn Race in progress. The board is kept in White's
// orientation; moves are generated on the mover's view and flipped back.
type Game struct {
	start   chess.Board
	board   chess.Board
	first   chess.Colour
	toMove  chess.Colour
	history []chess.Move
}

// New starts a game from the initial position with toMove to play first.
func New(toMove chess.Colour) *Game {
	return FromBoard(chess.Initial(), toMove)
}

// FromBoard starts a game from b, given in White's orientation. An
// en-passant target on b belongs to the side not to move.
func FromBoard(b chess.Board, toMove chess.Colour) *Game {
	return &Game{start: b, board: b, first: toMove, toMove: toMove}
}

// Board returns the current position in White's orientation.
func (g *Game) Board() chess.Board {
	return g.board
}

// ToMove returns the side to move.
func (g *Game) ToMove() chess.Colour {
	return g.toMove
}

// Ply returns the number of moves played.
func (g *Game) Ply() int {
	return len(g.history)
}

// History returns the moves played so far in White's coordinates.
func (g *Game) History() []chess.Move {
	out := make([]chess.Move, len(g.history))
	copy(out, g.history)
	return out
}

// View returns the board from the side to move's perspective, the
// orientation move generation and tree exploration work in.
func (g *Game) View() chess.Board {
	if g.toMove == chess.Black {
		return g.board.Flip()
	}
	return g.board
}

// orient converts between White's coordinates and the mover's.
func (g *Game) orient(m chess.Move) chess.Move {
	if g.toMove == chess.Black {
		return m.Flip()
	}
	return m
}

// Moves returns the legal moves for the side to move in White's coordinates.
// It is empty once the game is over.
func (g *Game) Moves() []chess.Move {
	if g.Result().IsOver() {
		return nil
	}
	moves := g.View().MoveList()
	for i, m := range moves {
		moves[i] = g.orient(m)
	}
	return moves
}

// Play applies m, given in White's coordinates. Only From and To are
// consulted; the move is resolved against the generated moves, so an
// en-passant capture need not be flagged by the caller.
func (g *Game) Play(m chess.Move) error {
	if r := g.Result(); r.IsOver() {
		return g.moveError(m, fmt.Errorf("%s: %w", r, errors.ErrGameOver))
	}
	view := g.View()
	local := g.orient(m)
	legal, ok := view.FindMove(local.From, local.To)
	if !ok {
		return g.moveError(m, errors.ErrIllegalMove)
	}

	next := view.Apply(legal)
	if g.toMove == chess.Black {
		next = next.Flip()
	}
	g.board = next
	g.history = append(g.history, g.orient(legal))
	g.toMove = g.toMove.Opposite()
	return nil
}

// PlayString parses and plays a move written as "e2e4".
func (g *Game) PlayString(s string) error {
	m, err := chess.ParseMove(s)
	if err != nil {
		return g.moveError(chess.Move{}, err)
	}
	return g.Play(m)
}

func (g *Game) moveError(m chess.Move, err error) error {
	text := ""
	if m != (chess.Move{}) {
		text = m.String()
	}
	return &errors.GameError{
		Err:      err,
		PlyNum:   g.Ply() + 1,
		MoveText: text,
		Colour:   g.toMove.String(),
	}
}

// Result decides the game. A side wins once one of its pawns reaches the far
// rank or the opponent has no pawns left; the side that moved last is checked
// first. If neither has won and the side to move is stuck, it is a draw.
func (g *Game) Result() Result {
	last := g.toMove.Opposite()
	for _, c := range []chess.Colour{last, g.toMove} {
		if g.hasWon(c) {
			if c == chess.White {
				return WhiteWins
			}
			return BlackWins
		}
	}
	if len(g.View().MoveList()) == 0 {
		return Draw
	}
	return Ongoing
}

// hasWon checks c's victory conditions on White's-orientation board.
func (g *Game) hasWon(c chess.Colour) bool {
	b := g.board
	if c == chess.Black {
		b = b.Flip()
	}
	if b.Count(chess.MoverPawn) == 0 {
		return false
	}
	if b.Count(chess.OpponentPawn) == 0 {
		return true
	}
	for f := chess.FileA; f <= chess.FileH; f++ {
		if b.At(chess.Position{File: f, Rank: chess.Rank8}) == chess.MoverPawn {
			return true
		}
	}
	return false
}

// Replay returns a fresh game from the same start with the first n moves
// of g played again.
func (g *Game) Replay(n int) (*Game, error) {
	if n < 0 || n > len(g.history) {
		return nil, fmt.Errorf("replay %d of %d moves: %w", n, len(g.history), errors.ErrIllegalMove)
	}
	r := FromBoard(g.start, g.first)
	for _, m := range g.history[:n] {
		if err := r.Play(m); err != nil {
			return nil, err
		}
	}
	return r, nil
}
