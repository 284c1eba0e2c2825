package hashing

import (
	"testing"

	"github.com/lgbarn/pawnrace-go/internal/chess"
)

// play applies moves written from the mover's perspective, flipping after each.
func play(t *testing.T, b chess.Board, moves ...string) chess.Board {
	t.Helper()
	for _, s := range moves {
		m, err := chess.ParseMove(s)
		if err != nil {
			t.Fatal(err)
		}
		legal, ok := b.FindMove(m.From, m.To)
		if !ok {
			t.Fatalf("%s is not legal in %s", s, chess.Layout(b))
		}
		b = b.Apply(legal).Flip()
	}
	return b
}

func TestHashConsistency(t *testing.T) {
	if Hash(chess.Initial()) != Hash(chess.MustParseLayout(chess.InitialLayout)) {
		t.Error("identical boards produced different hashes")
	}
	if WeakHash(chess.Initial()) != WeakHash(chess.MustParseLayout(chess.InitialLayout)) {
		t.Error("identical boards produced different weak hashes")
	}
}

func TestHashDifferentPositions(t *testing.T) {
	boards := []chess.Board{
		chess.Initial(),
		chess.EmptyBoard(),
		chess.Initial().Set(chess.MustParsePosition("e2"), chess.Empty),
		chess.MustParseLayout("8/8/8/3Pp3/8/8/8/8 -"),
		chess.MustParseLayout("8/8/8/3Pp3/8/8/8/8 e5"),
		chess.MustParseLayout("8/8/8/3pP3/8/8/8/8 -"),
	}

	seen := make(map[uint64]int)
	for i, b := range boards {
		h := Hash(b)
		if j, ok := seen[h]; ok {
			t.Errorf("boards %d and %d share hash %x", j, i, h)
		}
		seen[h] = i
	}
}

func TestHashTransposition(t *testing.T) {
	a := play(t, chess.Initial(), "a2a3", "a2a3", "b2b3")
	b := play(t, chess.Initial(), "b2b3", "a2a3", "a2a3")
	if a != b {
		t.Fatalf("move orders reached %q and %q", chess.Layout(a), chess.Layout(b))
	}
	if Hash(a) != Hash(b) {
		t.Error("transposed boards hash differently")
	}
}

func TestPositionSet(t *testing.T) {
	set := NewPositionSet(0)

	if !set.Add(chess.Initial()) {
		t.Error("first board was reported as seen")
	}
	if set.Add(chess.Initial()) {
		t.Error("duplicate board was reported as new")
	}
	if !set.Contains(chess.Initial()) {
		t.Error("Contains(Initial()) = false after Add")
	}
	if set.Contains(chess.EmptyBoard()) {
		t.Error("Contains(EmptyBoard()) = true before Add")
	}
	if !set.Add(chess.EmptyBoard()) {
		t.Error("second distinct board was reported as seen")
	}

	if set.UniqueCount() != 2 {
		t.Errorf("UniqueCount() = %d; want 2", set.UniqueCount())
	}
	if set.DuplicateCount() != 1 {
		t.Errorf("DuplicateCount() = %d; want 1", set.DuplicateCount())
	}
	if len(set.Boards()) != 2 {
		t.Errorf("len(Boards()) = %d; want 2", len(set.Boards()))
	}

	set.Reset()
	if set.UniqueCount() != 0 || set.DuplicateCount() != 0 || set.Contains(chess.Initial()) {
		t.Error("Reset() left state behind")
	}
}

func TestPositionSetCapacity(t *testing.T) {
	set := NewPositionSet(2)
	boards := chess.Initial().MoveList()

	added := 0
	for _, m := range boards {
		if set.Add(chess.Initial().Apply(m)) {
			added++
		}
	}
	if added != 2 {
		t.Errorf("added = %d; want 2", added)
	}
	if !set.IsFull() {
		t.Error("IsFull() = false at capacity")
	}
	// Known boards are still recognised once full.
	if set.Add(chess.Initial().Apply(boards[0])) {
		t.Error("known board reported as new")
	}
	if set.DuplicateCount() != 1 {
		t.Errorf("DuplicateCount() = %d; want 1", set.DuplicateCount())
	}
}
