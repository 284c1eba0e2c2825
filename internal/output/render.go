// Package output provides board rendering and snapshot writers.
package output

import (
	"strings"

	"github.com/lgbarn/pawnrace-go/internal/chess"
)

// Pawn glyphs.
const (
	WhiteGlyph = '♙'
	BlackGlyph = '♟'
)

const (
	borderLine = "    -----------------"
	filesLine  = "     A B C D E F G H"
)

// RenderOptions controls text rendering.
type RenderOptions struct {
	// SwapGlyphs draws White with the filled glyph and Black with the
	// outline glyph. Filled glyphs read better on dark terminals.
	SwapGlyphs bool
}

func (o RenderOptions) glyphs() (white, black rune) {
	if o.SwapGlyphs {
		return BlackGlyph, WhiteGlyph
	}
	return WhiteGlyph, BlackGlyph
}

// RenderLines draws b as an 8x8 grid framed by dashed borders, ranks 8 to 1
// labelled on the left and files A to H along the bottom. b must be in
// White's orientation: mover pawns are drawn as White.
func RenderLines(b chess.Board, opts RenderOptions) []string {
	white, black := opts.glyphs()
	lines := make([]string, 0, chess.BoardSize+3)
	lines = append(lines, borderLine)

	for rank := chess.Rank8; rank >= chess.Rank1; rank-- {
		var sb strings.Builder
		sb.WriteByte(' ')
		sb.WriteString(rank.String())
		sb.WriteString(" |")
		for file := chess.FileA; file <= chess.FileH; file++ {
			sb.WriteByte(' ')
			switch b.At(chess.Position{File: file, Rank: rank}) {
			case chess.MoverPawn:
				sb.WriteRune(white)
			case chess.OpponentPawn:
				sb.WriteRune(black)
			default:
				sb.WriteByte(' ')
			}
		}
		sb.WriteString(" |")
		lines = append(lines, sb.String())
	}

	lines = append(lines, borderLine, filesLine)
	return lines
}

// Render is RenderLines joined with newlines, ending in a newline.
func Render(b chess.Board, opts RenderOptions) string {
	return strings.Join(RenderLines(b, opts), "\n") + "\n"
}
