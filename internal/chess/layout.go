package chess

import (
	"fmt"
	"strings"

	"github.com/lgbarn/pawnrace-go/internal/errors"
)

// InitialLayout is the layout string of Initial().
const InitialLayout = "8/pppppppp/8/8/8/8/PPPPPPPP/8 -"

// Layout writes b in a FEN-like form from the mover's point of view: ranks
// 8 to 1 separated by '/', 'P' for a mover pawn, 'p' for an opponent pawn,
// digits for runs of empty squares, then a space and the en-passant target
// square or '-'.
func Layout(b Board) string {
	var sb strings.Builder

	writePlacement(&sb, b)
	sb.WriteByte(' ')
	if ep, ok := b.EnPassantTarget(); ok {
		sb.WriteString(ep.String())
	} else {
		sb.WriteByte('-')
	}

	return sb.String()
}

// writePlacement writes the pawn placement field to the builder.
func writePlacement(sb *strings.Builder, b Board) {
	for rank := Rank8; rank >= Rank1; rank-- {
		emptyCount := 0
		for file := FileA; file <= FileH; file++ {
			var c byte
			switch b.At(Position{File: file, Rank: rank}) {
			case MoverPawn:
				c = 'P'
			case OpponentPawn:
				c = 'p'
			default:
				emptyCount++
				continue
			}
			if emptyCount > 0 {
				sb.WriteByte(byte('0' + emptyCount))
				emptyCount = 0
			}
			sb.WriteByte(c)
		}
		if emptyCount > 0 {
			sb.WriteByte(byte('0' + emptyCount))
		}
		if rank > Rank1 {
			sb.WriteByte('/')
		}
	}
}

// ParseLayout reads a string written by Layout. The en-passant field is
// optional; when present it must name an opponent pawn on the fifth rank,
// the only square a double step can have landed on.
func ParseLayout(s string) (Board, error) {
	return ParseLayoutFor(s, White)
}

// ParseLayoutFor reads a layout written in White's orientation for a
// position with toMove to play, as stored by a game. With Black to move the
// en-passant target is a White pawn on the fourth rank. The board is
// returned in the same orientation as the layout.
func ParseLayoutFor(s string, toMove Colour) (Board, error) {
	parts := strings.Fields(s)
	if len(parts) < 1 || len(parts) > 2 {
		return Board{}, fmt.Errorf("expected 1 or 2 fields, got %d: %w", len(parts), errors.ErrInvalidLayout)
	}

	b, err := parsePlacement(parts[0])
	if err != nil {
		return Board{}, err
	}

	if len(parts) == 2 && parts[1] != "-" {
		ep, err := ParsePosition(parts[1])
		if err != nil {
			return Board{}, fmt.Errorf("en-passant field %q: %w", parts[1], errors.ErrInvalidLayout)
		}
		view, target := b, ep
		if toMove == Black {
			view, target = b.Flip(), ep.Flip()
		}
		if view.At(target) != OpponentPawn || target.Rank != Rank5 {
			return Board{}, fmt.Errorf("en-passant target %s is not a double-stepped %s pawn: %w",
				ep, toMove.Opposite(), errors.ErrInvalidLayout)
		}
		b = b.WithEnPassantTarget(ep)
	}

	return b, nil
}

// MustParseLayout is like ParseLayout but panics on error.
// Intended for tests and fixed positions.
func MustParseLayout(s string) Board {
	return MustParseLayoutFor(s, White)
}

// MustParseLayoutFor is like ParseLayoutFor but panics on error.
func MustParseLayoutFor(s string, toMove Colour) Board {
	b, err := ParseLayoutFor(s, toMove)
	if err != nil {
		panic(err)
	}
	return b
}

// parsePlacement parses the pawn placement field.
func parsePlacement(placement string) (Board, error) {
	ranks := strings.Split(placement, "/")
	if len(ranks) != BoardSize {
		return Board{}, fmt.Errorf("expected %d ranks, got %d: %w", BoardSize, len(ranks), errors.ErrInvalidLayout)
	}

	b := EmptyBoard()
	for i, row := range ranks {
		rank := Rank8 - Rank(i)
		file := 0
		for _, c := range row {
			switch {
			case c >= '1' && c <= '8':
				file += int(c - '0')
				continue
			case c != 'P' && c != 'p':
				return Board{}, fmt.Errorf("invalid pawn character %q: %w", c, errors.ErrInvalidLayout)
			}
			if file >= BoardSize {
				return Board{}, fmt.Errorf("rank %s overflows: %w", rank, errors.ErrInvalidLayout)
			}
			sq := MoverPawn
			if c == 'p' {
				sq = OpponentPawn
			}
			b = b.Set(Position{File: File(file), Rank: rank}, sq)
			file++
		}
		if file != BoardSize {
			return Board{}, fmt.Errorf("rank %s has %d squares: %w", rank, file, errors.ErrInvalidLayout)
		}
	}
	return b, nil
}
