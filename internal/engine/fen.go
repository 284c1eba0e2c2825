// Package engine explores Pawn Race move trees and converts boards to and
// from FEN for interoperation with standard chess tools.
package engine

import (
	"fmt"
	"strings"

	"github.com/lgbarn/pawnrace-go/internal/chess"
	"github.com/lgbarn/pawnrace-go/internal/errors"
)

// Kings are parked on e1 and e8 so that standard move generators accept the
// position. Pawn Race has no kings.
const (
	whiteKingSquare = "e1"
	blackKingSquare = "e8"
)

// InitialFEN is the FEN string for the Pawn Race starting position.
const InitialFEN = "4k3/pppppppp/8/8/8/8/PPPPPPPP/4K3 w - - 0 1"

// canonical returns b in White's orientation: mover pawns are White when
// White is to move, and the board is flipped back otherwise.
func canonical(b chess.Board, toMove chess.Colour) chess.Board {
	if toMove == chess.Black {
		return b.Flip()
	}
	return b
}

// BoardToFEN converts a board, seen from toMove's side, to a FEN string.
func BoardToFEN(b chess.Board, toMove chess.Colour) string {
	var sb strings.Builder

	c := canonical(b, toMove)
	writePiecePositions(&sb, c)
	sb.WriteByte(' ')
	writeSideToMove(&sb, toMove)
	sb.WriteString(" - ")
	writeEnPassant(&sb, c, toMove)
	sb.WriteString(" 0 1")

	return sb.String()
}

func writePiecePositions(sb *strings.Builder, b chess.Board) {
	whiteKing := chess.MustParsePosition(whiteKingSquare)
	blackKing := chess.MustParsePosition(blackKingSquare)

	for rank := chess.Rank8; rank >= chess.Rank1; rank-- {
		emptyCount := 0
		for file := chess.FileA; file <= chess.FileH; file++ {
			pos := chess.Position{File: file, Rank: rank}
			var letter byte
			switch {
			case b.At(pos) == chess.MoverPawn:
				letter = 'P'
			case b.At(pos) == chess.OpponentPawn:
				letter = 'p'
			case pos == whiteKing:
				letter = 'K'
			case pos == blackKing:
				letter = 'k'
			default:
				emptyCount++
				continue
			}
			if emptyCount > 0 {
				sb.WriteByte(byte('0' + emptyCount))
				emptyCount = 0
			}
			sb.WriteByte(letter)
		}
		if emptyCount > 0 {
			sb.WriteByte(byte('0' + emptyCount))
		}
		if rank > chess.Rank1 {
			sb.WriteByte('/')
		}
	}
}

func writeSideToMove(sb *strings.Builder, toMove chess.Colour) {
	if toMove == chess.White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}
}

// writeEnPassant writes the square the capturing pawn lands on, which is
// behind the double-stepped pawn from its owner's point of view.
func writeEnPassant(sb *strings.Builder, c chess.Board, toMove chess.Colour) {
	ep, ok := c.EnPassantTarget()
	if ok {
		behind, inside := ep.Back()
		if toMove == chess.White {
			behind, inside = ep.Front()
		}
		if inside {
			sb.WriteString(behind.String())
			return
		}
	}
	sb.WriteByte('-')
}

// BoardFromFEN parses a FEN string holding only pawns and, optionally, kings.
// It returns the board from the perspective of the side to move.
func BoardFromFEN(fen string) (chess.Board, chess.Colour, error) {
	parts := strings.Fields(fen)
	if len(parts) < 2 {
		return chess.Board{}, chess.White, fmt.Errorf("FEN %q: need placement and side to move: %w", fen, errors.ErrInvalidLayout)
	}

	var toMove chess.Colour
	switch parts[1] {
	case "w":
		toMove = chess.White
	case "b":
		toMove = chess.Black
	default:
		return chess.Board{}, chess.White, fmt.Errorf("FEN side to move %q: %w", parts[1], errors.ErrInvalidLayout)
	}

	placement, err := pawnPlacement(parts[0])
	if err != nil {
		return chess.Board{}, chess.White, err
	}

	layout := placement
	if len(parts) >= 4 && parts[3] != "-" {
		ep, err := chess.ParsePosition(parts[3])
		if err != nil {
			return chess.Board{}, chess.White, fmt.Errorf("FEN en passant %q: %w", parts[3], errors.ErrInvalidLayout)
		}
		// Convert the landing square to the pawn that double-stepped.
		pawn, ok := ep.Back()
		if toMove == chess.Black {
			pawn, ok = ep.Front()
		}
		if !ok {
			return chess.Board{}, chess.White, fmt.Errorf("FEN en passant %q: %w", parts[3], errors.ErrInvalidLayout)
		}
		layout += " " + pawn.String()
	}

	b, err := chess.ParseLayoutFor(layout, toMove)
	if err != nil {
		return chess.Board{}, chess.White, err
	}
	return canonical(b, toMove), toMove, nil
}

// pawnPlacement drops kings from a FEN placement, merging the empty runs
// around them, and rejects any other piece.
func pawnPlacement(placement string) (string, error) {
	var sb strings.Builder
	empty := 0
	flush := func() {
		if empty > 0 {
			sb.WriteByte(byte('0' + empty))
			empty = 0
		}
	}
	for i := 0; i < len(placement); i++ {
		c := placement[i]
		switch {
		case c >= '1' && c <= '8':
			empty += int(c - '0')
		case c == 'K' || c == 'k':
			empty++
		case c == 'P' || c == 'p' || c == '/':
			flush()
			sb.WriteByte(c)
		default:
			return "", fmt.Errorf("FEN piece %q: %w", c, errors.ErrInvalidLayout)
		}
	}
	flush()
	return sb.String(), nil
}
