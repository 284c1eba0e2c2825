package engine

import "github.com/lgbarn/pawnrace-go/internal/chess"

// Perft counts the leaf nodes of the move tree below b, depth plies deep.
// Each ply applies a move and flips the board to the other side. Game end is
// not detected: a position without moves simply contributes nothing unless
// depth is already 0.
func Perft(b chess.Board, depth int) uint64 {
	if depth <= 0 {
		return 1
	}
	it := b.Moves()
	if depth == 1 {
		var n uint64
		for _, ok := it.Next(); ok; _, ok = it.Next() {
			n++
		}
		return n
	}

	var nodes uint64
	for m, ok := it.Next(); ok; m, ok = it.Next() {
		nodes += Perft(b.Apply(m).Flip(), depth-1)
	}
	return nodes
}
