package engine

import (
	"github.com/lgbarn/pawnrace-go/internal/chess"
	"github.com/lgbarn/pawnrace-go/internal/hashing"
)

// UniquePositions returns, for each ply from 1 to depth, the number of
// distinct positions reachable from b. Transpositions are expanded once.
func UniquePositions(b chess.Board, depth int) []int {
	counts := make([]int, 0, depth)
	frontier := []chess.Board{b}

	for ply := 1; ply <= depth; ply++ {
		seen := hashing.NewPositionSet(0)
		var next []chess.Board
		for _, parent := range frontier {
			it := parent.Moves()
			for m, ok := it.Next(); ok; m, ok = it.Next() {
				child := parent.Apply(m).Flip()
				if seen.Add(child) {
					next = append(next, child)
				}
			}
		}
		counts = append(counts, seen.UniqueCount())
		frontier = next
	}
	return counts
}
