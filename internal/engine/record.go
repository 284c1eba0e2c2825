package engine

import (
	"context"

	"github.com/lgbarn/pawnrace-go/internal/chess"
)

// Recorder persists explored positions and the moves between them.
// Boards are passed from the perspective of the side to move.
type Recorder interface {
	SavePosition(ctx context.Context, b chess.Board, ply int) (int64, error)
	SaveEdge(ctx context.Context, parent, child int64, m chess.Move) error
}

// Record walks the tree below b breadth first, depth plies deep, saving every
// distinct position and every edge. limit caps the number of positions
// saved, the root included (0 = unlimited); the walk stops at the first new
// position past the cap. It returns the number of positions saved.
func Record(ctx context.Context, b chess.Board, depth, limit int, rec Recorder) (int, error) {
	type node struct {
		board chess.Board
		id    int64
	}

	rootID, err := rec.SavePosition(ctx, b, 0)
	if err != nil {
		return 0, err
	}
	saved := 1
	frontier := []node{{board: b, id: rootID}}

	for ply := 1; ply <= depth && len(frontier) > 0; ply++ {
		ids := make(map[chess.Board]int64)
		var next []node

		for _, parent := range frontier {
			if err := ctx.Err(); err != nil {
				return saved, err
			}
			it := parent.board.Moves()
			for m, ok := it.Next(); ok; m, ok = it.Next() {
				child := parent.board.Apply(m).Flip()
				id, known := ids[child]
				if !known {
					if limit > 0 && saved >= limit {
						return saved, nil
					}
					id, err = rec.SavePosition(ctx, child, ply)
					if err != nil {
						return saved, err
					}
					saved++
					ids[child] = id
					next = append(next, node{board: child, id: id})
				}
				if err := rec.SaveEdge(ctx, parent.id, id, m); err != nil {
					return saved, err
				}
			}
		}
		frontier = next
	}
	return saved, nil
}
