package chess

// Piece is a mover pawn found by PieceIterator, bound to the board snapshot
// it was read from.
type Piece struct {
	Pos   Position
	board Board
}

// Board returns the snapshot the piece was enumerated from.
func (p Piece) Board() Board {
	return p.board
}

// Moves returns an iterator over the piece's pseudo-legal moves.
func (p Piece) Moves() *PieceMoves {
	return &PieceMoves{piece: p}
}

// PieceIterator scans the board from A1 to H8, file fastest, and yields
// every square holding a mover pawn. It is single-pass.
type PieceIterator struct {
	board Board
	next  int
}

// Next returns the next mover pawn, or false when the scan is done.
func (it *PieceIterator) Next() (Piece, bool) {
	for it.next < BoardSize*BoardSize {
		pos := positionAt(it.next)
		it.next++
		if it.board.At(pos) == MoverPawn {
			return Piece{Pos: pos, board: it.board}, true
		}
	}
	return Piece{}, false
}

// moveStage is a PieceMoves cursor. Stages run in declaration order and
// each is evaluated at most once.
type moveStage int

const (
	stageForward moveStage = iota
	stageDoubleForward
	stageDiagLeft
	stageDiagRight
	stagePassantLeft
	stagePassantRight
	stageDone
)

// PieceMoves enumerates one pawn's moves in a fixed order:
//
//  1. one square forward
//  2. two squares forward, from rank 2 only and only if 1 was open
//  3. capture diagonally left
//  4. capture diagonally right
//  5. en passant to the left
//  6. en passant to the right
//
// It is single-pass and never modifies the board.
type PieceMoves struct {
	piece       Piece
	stage       moveStage
	noDoubleFwd bool
}

// Next returns the next move, or false when all stages are exhausted.
func (it *PieceMoves) Next() (Move, bool) {
	for it.stage < stageDone {
		stage := it.stage
		it.stage++
		if to, passant, ok := it.eval(stage); ok {
			return Move{From: it.piece.Pos, To: to, EnPassant: passant}, true
		}
	}
	return Move{}, false
}

func (it *PieceMoves) eval(stage moveStage) (Position, bool, bool) {
	b := it.piece.board
	from := it.piece.Pos

	switch stage {
	case stageForward:
		if to, ok := from.Front(); ok && b.At(to) == Empty {
			return to, false, true
		}
		// A pawn never jumps an occupied square.
		it.noDoubleFwd = true

	case stageDoubleForward:
		if it.noDoubleFwd || from.Rank != Rank2 {
			return from, false, false
		}
		front, _ := from.Front()
		if to, ok := front.Front(); ok && b.At(to) == Empty {
			return to, false, true
		}

	case stageDiagLeft:
		if to, ok := from.DiagLeft(); ok && b.At(to) == OpponentPawn {
			return to, false, true
		}

	case stageDiagRight:
		if to, ok := from.DiagRight(); ok && b.At(to) == OpponentPawn {
			return to, false, true
		}

	case stagePassantLeft:
		if side, ok := from.Left(); ok && b.isPassantTarget(side) {
			if to, ok := from.DiagLeft(); ok && b.At(to) == Empty {
				return to, true, true
			}
		}

	case stagePassantRight:
		if side, ok := from.Right(); ok && b.isPassantTarget(side) {
			if to, ok := from.DiagRight(); ok && b.At(to) == Empty {
				return to, true, true
			}
		}
	}
	return from, false, false
}

func (b Board) isPassantTarget(pos Position) bool {
	return b.hasEP && b.ep == pos
}

// MoveIterator chains the PieceMoves of every piece in scan order.
type MoveIterator struct {
	pieces  *PieceIterator
	current *PieceMoves
}

// Next returns the next move on the board, or false when every piece is
// exhausted.
func (it *MoveIterator) Next() (Move, bool) {
	for {
		if it.current != nil {
			if m, ok := it.current.Next(); ok {
				return m, true
			}
		}
		p, ok := it.pieces.Next()
		if !ok {
			it.current = nil
			return Move{}, false
		}
		it.current = p.Moves()
	}
}
