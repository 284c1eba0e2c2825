package bridge

import (
	"fmt"

	"github.com/lgbarn/pawnrace-go/internal/chess"
	"github.com/lgbarn/pawnrace-go/internal/errors"
	"github.com/lgbarn/pawnrace-go/internal/game"
)

// Agent picks our move. It is only asked while the game is ongoing and it
// is our turn.
type Agent interface {
	Choose(g *game.Game) (chess.Move, error)
}

// FirstMoveAgent plays the first generated move.
type FirstMoveAgent struct{}

// Choose returns the first legal move.
func (FirstMoveAgent) Choose(g *game.Game) (chess.Move, error) {
	moves := g.Moves()
	if len(moves) == 0 {
		return chess.Move{}, fmt.Errorf("%s has no moves: %w", g.ToMove(), errors.ErrGameOver)
	}
	return moves[0], nil
}

// RaceAgent plays a winning move when one exists, otherwise a capture,
// otherwise it pushes its most advanced pawn. Ties go to generation order.
type RaceAgent struct{}

// Choose returns the highest scoring legal move.
func (RaceAgent) Choose(g *game.Game) (chess.Move, error) {
	moves := g.Moves()
	if len(moves) == 0 {
		return chess.Move{}, fmt.Errorf("%s has no moves: %w", g.ToMove(), errors.ErrGameOver)
	}

	best, bestScore := moves[0], -1
	for _, m := range moves {
		if s := raceScore(g, m); s > bestScore {
			best, bestScore = m, s
		}
	}
	return best, nil
}

func raceScore(g *game.Game, m chess.Move) int {
	// Progress measured from the mover's own back rank.
	progress := m.To.Rank.Index()
	if g.ToMove() == chess.Black {
		progress = m.To.Rank.Flip().Index()
	}
	switch {
	case progress == chess.Rank8.Index():
		return 100
	case m.IsDiagonal():
		return 50 + progress
	default:
		return progress
	}
}
