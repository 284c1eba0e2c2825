package chess

import (
	"testing"

	"github.com/lgbarn/pawnrace-go/internal/testutil"
)

func moveStrings(b Board) []string {
	return testutil.Strings(b.MoveList())
}

func TestPiecesScanOrder(t *testing.T) {
	b := MustParseLayout("7P/8/8/2p5/8/1P6/8/P6P -")
	it := b.Pieces()

	var got []string
	for p, ok := it.Next(); ok; p, ok = it.Next() {
		got = append(got, p.Pos.String())
		if p.Board() != b {
			t.Errorf("piece %v is bound to a different board", p.Pos)
		}
	}
	testutil.AssertEqual(t, got, []string{"a1", "h1", "b3", "h8"})

	if _, ok := it.Next(); ok {
		t.Error("exhausted PieceIterator yielded another piece")
	}
}

func TestInitialMoves(t *testing.T) {
	want := []string{
		"a2a3", "a2a4", "b2b3", "b2b4", "c2c3", "c2c4", "d2d3", "d2d4",
		"e2e3", "e2e4", "f2f3", "f2f4", "g2g3", "g2g4", "h2h3", "h2h4",
	}
	testutil.AssertEqual(t, moveStrings(Initial()), want)

	for _, m := range Initial().MoveList() {
		if m.EnPassant || m.IsDiagonal() {
			t.Errorf("initial move %v is a capture", m)
		}
	}
}

func TestPieceMovesOrder(t *testing.T) {
	tests := []struct {
		name   string
		layout string
		want   []string
	}{
		{
			name:   "forward capture and en passant",
			layout: "8/8/3p4/4Pp2/8/8/8/8 f5",
			want:   []string{"e5e6", "e5d6", "e5f6"},
		},
		{
			name:   "both diagonals",
			layout: "8/8/8/3ppp2/4P3/8/8/8 -",
			want:   []string{"e4d5", "e4f5"},
		},
		{
			name:   "double step then captures",
			layout: "8/8/8/8/8/3p1p2/4P3/8 -",
			want:   []string{"e2e3", "e2e4", "e2d3", "e2f3"},
		},
		{
			name:   "en passant left",
			layout: "8/8/8/3pP3/8/8/8/8 d5",
			want:   []string{"e5e6", "e5d6"},
		},
		{
			name:   "no double step off the start rank",
			layout: "8/8/8/8/8/4P3/8/8 -",
			want:   []string{"e3e4"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			testutil.AssertEqual(t, moveStrings(MustParseLayout(tt.layout)), tt.want)
		})
	}
}

func TestEdgeSafety(t *testing.T) {
	tests := []struct {
		name   string
		layout string
		want   []string
	}{
		{"a file capture", "8/8/1p6/P7/8/8/8/8 -", []string{"a5a6", "a5b6"}},
		{"a file en passant", "8/8/8/Pp6/8/8/8/8 b5", []string{"a5a6", "a5b6"}},
		{"h file capture", "8/8/6p1/7P/8/8/8/8 -", []string{"h5h6", "h5g6"}},
		{"h file en passant", "8/8/8/6pP/8/8/8/8 g5", []string{"h5h6", "h5g6"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			moves := MustParseLayout(tt.layout).MoveList()
			testutil.AssertEqual(t, testutil.Strings(moves), tt.want)
			for _, m := range moves {
				if m.To.File < FileA || m.To.File > FileH {
					t.Errorf("move %v leaves the board", m)
				}
			}
		})
	}
}

func TestBlockedDoubleStep(t *testing.T) {
	t.Run("blocked directly ahead", func(t *testing.T) {
		b := MustParseLayout("8/8/8/8/8/4p3/4P3/8 -")
		if got := moveStrings(b); len(got) != 0 {
			t.Errorf("moves = %v; want none", got)
		}
	})
	t.Run("blocked by own pawn", func(t *testing.T) {
		b := MustParseLayout("8/8/8/8/8/4P3/4P3/8 -")
		testutil.AssertEqual(t, moveStrings(b), []string{"e3e4"})
	})
	t.Run("second square occupied", func(t *testing.T) {
		b := MustParseLayout("8/8/8/8/4p3/8/4P3/8 -")
		testutil.AssertEqual(t, moveStrings(b), []string{"e2e3"})
	})
}

func TestEnPassantNeedsTarget(t *testing.T) {
	// Same placement as an en-passant position but without the target.
	b := MustParseLayout("8/8/8/3pP3/8/8/8/8 -")
	testutil.AssertEqual(t, moveStrings(b), []string{"e5e6"})

	// The target is on the wrong side.
	b = MustParseLayout("8/8/8/3pPp2/8/8/8/8 f5")
	testutil.AssertEqual(t, moveStrings(b), []string{"e5e6", "e5f6"})
}

func TestEnPassantRoundTrip(t *testing.T) {
	// Mover pawn on e5, opponent pawn on d7.
	b := MustParseLayout("8/3p4/8/4P3/8/8/8/8 -")

	// Opponent's turn: d7-d5 is e2-e4 from their side.
	opp := b.Flip()
	double, ok := opp.FindMove(MustParsePosition("e2"), MustParsePosition("e4"))
	if !ok {
		t.Fatalf("opponent moves %v lack e2e4", moveStrings(opp))
	}
	b = opp.Apply(double).Flip()

	ep, ok := b.EnPassantTarget()
	if !ok || ep.String() != "d5" {
		t.Fatalf("en-passant target = %v, %v; want d5", ep, ok)
	}

	var passant []Move
	for _, m := range b.MoveList() {
		if m.EnPassant {
			passant = append(passant, m)
		}
	}
	if len(passant) != 1 {
		t.Fatalf("en-passant moves = %v; want exactly one", passant)
	}
	m := passant[0]
	if m.String() != "e5d6" {
		t.Fatalf("en-passant move = %v; want e5d6", m)
	}

	after := b.Apply(m)
	if got := after.At(MustParsePosition("d5")); got != Empty {
		t.Errorf("captured square d5 = %v; want Empty", got)
	}
	if got := after.At(MustParsePosition("e5")); got != Empty {
		t.Errorf("source e5 = %v; want Empty", got)
	}
	if got := after.At(MustParsePosition("d6")); got != MoverPawn {
		t.Errorf("destination d6 = %v; want MoverPawn", got)
	}
	if after.Count(OpponentPawn) != 0 {
		t.Errorf("opponent pawns left = %d; want 0", after.Count(OpponentPawn))
	}
}

// Pawns on the last rank have nowhere to go. There is no promotion.
func TestLastRankStall(t *testing.T) {
	b := MustParseLayout("3P4/2p1p3/8/8/8/8/8/8 -")
	if got := moveStrings(b); len(got) != 0 {
		t.Errorf("moves from d8 = %v; want none", got)
	}

	b = MustParseLayout("P6P/8/8/8/8/8/8/8 -").WithEnPassantTarget(MustParsePosition("h8"))
	if got := moveStrings(b); len(got) != 0 {
		t.Errorf("moves from a8/h8 = %v; want none", got)
	}
}

func TestIteratorsAreSinglePass(t *testing.T) {
	it := Initial().Moves()
	n := 0
	for _, ok := it.Next(); ok; _, ok = it.Next() {
		n++
	}
	if n != 16 {
		t.Errorf("moves = %d; want 16", n)
	}
	if _, ok := it.Next(); ok {
		t.Error("exhausted MoveIterator yielded another move")
	}

	p, ok := Initial().Pieces().Next()
	if !ok {
		t.Fatal("no pieces on the initial board")
	}
	pm := p.Moves()
	pm.Next()
	pm.Next()
	if _, ok := pm.Next(); ok {
		t.Error("a2 yielded a third move")
	}
	if _, ok := pm.Next(); ok {
		t.Error("exhausted PieceMoves yielded another move")
	}
}

func TestConcurrentMovesOnOneBoard(t *testing.T) {
	b := Initial()
	done := make(chan int)
	for i := 0; i < 8; i++ {
		go func() { done <- len(b.MoveList()) }()
	}
	for i := 0; i < 8; i++ {
		if n := <-done; n != 16 {
			t.Errorf("concurrent MoveList length = %d; want 16", n)
		}
	}
}

func TestBlackMovesViaFlip(t *testing.T) {
	var got []string
	for _, m := range Initial().Flip().MoveList() {
		got = append(got, m.Flip().String())
	}
	want := []string{
		"h7h6", "h7h5", "g7g6", "g7g5", "f7f6", "f7f5", "e7e6", "e7e5",
		"d7d6", "d7d5", "c7c6", "c7c5", "b7b6", "b7b5", "a7a6", "a7a5",
	}
	testutil.AssertEqual(t, got, want)
}

// The worked example: flip twice, count moves, apply a single and a double
// step.
func TestScenario(t *testing.T) {
	b := Initial()
	if b.Flip().Flip() != b {
		t.Fatal("Initial().Flip().Flip() != Initial()")
	}

	moves := b.MoveList()
	if want := b.Count(MoverPawn) * 2; len(moves) != want {
		t.Fatalf("len(moves) = %d; want %d", len(moves), want)
	}

	var single, double Move
	for _, m := range moves {
		if m.IsDoubleStep() {
			double = m
		} else {
			single = m
		}
	}

	after := b.Apply(single)
	if after.At(single.From) != Empty || after.At(single.To) != MoverPawn {
		t.Errorf("after %v: source %v, destination %v", single, after.At(single.From), after.At(single.To))
	}
	if _, ok := after.EnPassantTarget(); ok {
		t.Errorf("after %v: en-passant target set", single)
	}

	after = b.Apply(double)
	if ep, ok := after.EnPassantTarget(); !ok || ep != double.To {
		t.Errorf("after %v: en-passant target = %v, %v; want %v", double, ep, ok, double.To)
	}
}

func TestParseMove(t *testing.T) {
	m, err := ParseMove("e2e4")
	if err != nil {
		t.Fatalf("ParseMove(e2e4) error: %v", err)
	}
	if m.From.String() != "e2" || m.To.String() != "e4" || m.EnPassant {
		t.Errorf("ParseMove(e2e4) = %+v", m)
	}
	if !m.IsDoubleStep() {
		t.Error("e2e4 should be a double step")
	}
	if m.Flip().String() != "d7d5" {
		t.Errorf("e2e4.Flip() = %v; want d7d5", m.Flip())
	}

	for _, bad := range []string{"", "e2", "e2e", "e2e9", "x2e4", "e2e4e"} {
		if _, err := ParseMove(bad); err == nil {
			t.Errorf("ParseMove(%q) succeeded; want error", bad)
		}
	}
}

func TestFindMove(t *testing.T) {
	b := Initial()
	if _, ok := b.FindMove(MustParsePosition("e2"), MustParsePosition("e5")); ok {
		t.Error("FindMove(e2, e5) found a move")
	}
	m, ok := b.FindMove(MustParsePosition("e2"), MustParsePosition("e4"))
	if !ok || m.String() != "e2e4" {
		t.Errorf("FindMove(e2, e4) = %v, %v", m, ok)
	}
}
