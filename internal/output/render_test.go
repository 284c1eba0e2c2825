package output

import (
	"strings"
	"testing"

	"github.com/lgbarn/pawnrace-go/internal/chess"
	"github.com/lgbarn/pawnrace-go/internal/testutil"
)

var emptyRank = " |" + strings.Repeat("  ", 8) + " |"

func TestRenderInitial(t *testing.T) {
	want := []string{
		"    -----------------",
		" 8" + emptyRank,
		" 7 | ♟ ♟ ♟ ♟ ♟ ♟ ♟ ♟ |",
		" 6" + emptyRank,
		" 5" + emptyRank,
		" 4" + emptyRank,
		" 3" + emptyRank,
		" 2 | ♙ ♙ ♙ ♙ ♙ ♙ ♙ ♙ |",
		" 1" + emptyRank,
		"    -----------------",
		"     A B C D E F G H",
	}
	testutil.AssertEqual(t, RenderLines(chess.Initial(), RenderOptions{}), want)
}

func TestRenderSwapGlyphs(t *testing.T) {
	lines := RenderLines(chess.Initial(), RenderOptions{SwapGlyphs: true})
	testutil.AssertEqual(t, lines[2], " 7 | ♙ ♙ ♙ ♙ ♙ ♙ ♙ ♙ |")
	testutil.AssertEqual(t, lines[7], " 2 | ♟ ♟ ♟ ♟ ♟ ♟ ♟ ♟ |")
}

func TestRenderSparse(t *testing.T) {
	b := chess.MustParseLayout("8/8/8/3pP3/8/8/8/P7 d5")
	lines := RenderLines(b, RenderOptions{})

	testutil.AssertEqual(t, len(lines), 11)
	testutil.AssertEqual(t, lines[4], " 5 |       ♟ ♙       |")
	testutil.AssertEqual(t, lines[8], " 1 | ♙               |")
}

func TestRender(t *testing.T) {
	s := Render(chess.EmptyBoard(), RenderOptions{})
	if !strings.HasSuffix(s, "A B C D E F G H\n") {
		t.Errorf("Render() should end with the file labels and a newline, got %q", s)
	}
	if got := strings.Count(s, "\n"); got != 11 {
		t.Errorf("Render() has %d lines; want 11", got)
	}
	testutil.AssertNotContains(t, s, string(WhiteGlyph))
}
