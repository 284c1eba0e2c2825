package chess

// Board is a Pawn Race position seen from the side to move ("the mover").
//
// The 64 squares are packed 2 bits each into a 128-bit field, square
// 8*rank+file at bit 2*(8*rank+file):
//
//	00, 11  empty
//	01      mover pawn
//	10      opponent pawn
//
// Reversing all 128 bits maps square k to 63-k and swaps 01 with 10, so
// Flip hands the move to the other side without any colour-specific code.
//
// Board is a small comparable value. Every operation returns a new Board;
// nothing is shared between copies.
type Board struct {
	raw   Uint128
	ep    Position
	hasEP bool
}

// Square codes in the packed field.
const (
	codeEmpty    uint64 = 0b00
	codeMover    uint64 = 0b01
	codeOpponent uint64 = 0b10
)

// initialRaw has mover pawns on rank 2 and opponent pawns on rank 7.
var initialRaw = Uint128{
	Hi: 0x0000AAAA00000000,
	Lo: 0x0000000055550000,
}

// Initial returns the starting position: each side's pawns on its own
// second rank and no en-passant target.
func Initial() Board {
	return Board{raw: initialRaw}
}

// EmptyBoard returns a board with no pawns.
func EmptyBoard() Board {
	return Board{}
}

func bitsAt(pos Position) uint {
	return uint(2 * pos.Index())
}

// At decodes the square at pos.
func (b Board) At(pos Position) Square {
	switch b.raw.Field(bitsAt(pos)) {
	case codeMover:
		return MoverPawn
	case codeOpponent:
		return OpponentPawn
	default:
		return Empty
	}
}

// Set returns a copy of b with pos holding sq. No other square changes.
func (b Board) Set(pos Position, sq Square) Board {
	code := codeEmpty
	switch sq {
	case MoverPawn:
		code = codeMover
	case OpponentPawn:
		code = codeOpponent
	}
	b.raw = b.raw.SetField(bitsAt(pos), code)
	return b
}

// EnPassantTarget returns the square of the pawn that just double-stepped,
// if any. That pawn may be captured en passant this ply.
func (b Board) EnPassantTarget() (Position, bool) {
	return b.ep, b.hasEP
}

// WithEnPassantTarget returns a copy of b with pos registered as the
// en-passant target.
func (b Board) WithEnPassantTarget(pos Position) Board {
	b.ep, b.hasEP = pos, true
	return b
}

// WithoutEnPassantTarget returns a copy of b with no en-passant target.
func (b Board) WithoutEnPassantTarget() Board {
	b.ep, b.hasEP = Position{}, false
	return b
}

// Flip returns the board from the opponent's point of view: the packed
// field is bit-reversed and the en-passant target rotated with it.
func (b Board) Flip() Board {
	f := Board{raw: b.raw.Reverse()}
	if b.hasEP {
		f.ep, f.hasEP = b.ep.Flip(), true
	}
	return f
}

// Apply returns the board after the mover plays m. The result is still
// expressed from the same side's point of view; call Flip to hand the move
// over.
//
// m must have been produced by b's own generator (Moves or Piece.Moves).
// Applying any other move is a caller error and the result is unspecified.
func (b Board) Apply(m Move) Board {
	next := b.Set(m.From, Empty).Set(m.To, MoverPawn)
	if m.EnPassant && b.hasEP {
		// The captured pawn sits beside the source, not on the destination.
		next = next.Set(b.ep, Empty)
	}
	next = next.WithoutEnPassantTarget()
	if m.IsDoubleStep() {
		next = next.WithEnPassantTarget(m.To)
	}
	return next
}

// Count returns the number of squares holding sq.
func (b Board) Count(sq Square) int {
	n := 0
	for i := 0; i < BoardSize*BoardSize; i++ {
		if b.At(positionAt(i)) == sq {
			n++
		}
	}
	return n
}

// Pieces returns an iterator over the mover's pawns.
func (b Board) Pieces() *PieceIterator {
	return &PieceIterator{board: b}
}

// Moves returns an iterator over every pseudo-legal move of the mover.
// Moves are grouped by piece in Pieces order; each piece's moves follow
// the order documented on PieceMoves.
func (b Board) Moves() *MoveIterator {
	return &MoveIterator{pieces: b.Pieces()}
}

// MoveList collects Moves into a slice.
func (b Board) MoveList() []Move {
	var moves []Move
	it := b.Moves()
	for m, ok := it.Next(); ok; m, ok = it.Next() {
		moves = append(moves, m)
	}
	return moves
}

// FindMove returns the generated move from one square to another, with its
// en-passant flag filled in.
func (b Board) FindMove(from, to Position) (Move, bool) {
	it := b.Moves()
	for m, ok := it.Next(); ok; m, ok = it.Next() {
		if m.From == from && m.To == to {
			return m, true
		}
	}
	return Move{}, false
}

// String returns the board's layout string.
func (b Board) String() string {
	return Layout(b)
}
