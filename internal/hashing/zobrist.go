package hashing

import "github.com/lgbarn/pawnrace-go/internal/chess"

const squares = chess.BoardSize * chess.BoardSize

// Zobrist keys, fixed for the life of the process so hashes are stable
// across runs and can be stored.
var (
	moverKeys    [squares]uint64
	opponentKeys [squares]uint64
	passantKeys  [chess.BoardSize]uint64
)

func init() {
	state := uint64(0x5eed0f9a3c1b2d47)
	for i := 0; i < squares; i++ {
		moverKeys[i] = splitmix64(&state)
		opponentKeys[i] = splitmix64(&state)
	}
	for i := range passantKeys {
		passantKeys[i] = splitmix64(&state)
	}
}

// splitmix64 advances state and returns the next pseudo-random value.
func splitmix64(state *uint64) uint64 {
	*state += 0x9e3779b97f4a7c15
	z := *state
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	return z ^ (z >> 31)
}

// Hash returns the Zobrist hash of a board. Two boards that compare equal
// always hash equal; the en-passant target contributes by file.
func Hash(b chess.Board) uint64 {
	var h uint64
	for _, pos := range chess.Positions() {
		switch b.At(pos) {
		case chess.MoverPawn:
			h ^= moverKeys[pos.Index()]
		case chess.OpponentPawn:
			h ^= opponentKeys[pos.Index()]
		}
	}
	if ep, ok := b.EnPassantTarget(); ok {
		h ^= passantKeys[ep.File.Index()]
	}
	return h
}

// WeakHash is a cheap secondary check: the pawn counts and the target file
// packed into one word.
func WeakHash(b chess.Board) uint32 {
	h := uint32(b.Count(chess.MoverPawn))<<8 | uint32(b.Count(chess.OpponentPawn))
	if ep, ok := b.EnPassantTarget(); ok {
		h |= uint32(ep.File.Number()) << 16
	}
	return h
}
