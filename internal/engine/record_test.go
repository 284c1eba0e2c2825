package engine

import (
	"context"
	"errors"
	"testing"

	"github.com/lgbarn/pawnrace-go/internal/chess"
)

type memRecorder struct {
	positions map[chess.Board]int64
	plies     []int
	edges     int
	failAt    int
}

func newMemRecorder() *memRecorder {
	return &memRecorder{positions: make(map[chess.Board]int64)}
}

var errRecorder = errors.New("recorder full")

func (r *memRecorder) SavePosition(_ context.Context, b chess.Board, ply int) (int64, error) {
	if r.failAt > 0 && len(r.plies) >= r.failAt {
		return 0, errRecorder
	}
	if id, ok := r.positions[b]; ok {
		return id, nil
	}
	id := int64(len(r.plies) + 1)
	r.positions[b] = id
	r.plies = append(r.plies, ply)
	return id, nil
}

func (r *memRecorder) SaveEdge(_ context.Context, parent, child int64, _ chess.Move) error {
	if parent == 0 || child == 0 {
		return errors.New("edge to unsaved position")
	}
	r.edges++
	return nil
}

func TestRecord(t *testing.T) {
	rec := newMemRecorder()
	n, err := Record(context.Background(), chess.Initial(), 3, 0, rec)
	if err != nil {
		t.Fatalf("Record error: %v", err)
	}
	if want := 1 + 16 + 256 + 3398; n != want {
		t.Errorf("positions = %d; want %d", n, want)
	}
	if want := 16 + 256 + 3846; rec.edges != want {
		t.Errorf("edges = %d; want %d", rec.edges, want)
	}
	if rec.plies[0] != 0 || rec.plies[1] != 1 || rec.plies[len(rec.plies)-1] != 3 {
		t.Errorf("plies start %v and end %d", rec.plies[:2], rec.plies[len(rec.plies)-1])
	}
}

func TestRecordLimit(t *testing.T) {
	rec := newMemRecorder()
	n, err := Record(context.Background(), chess.Initial(), 3, 10, rec)
	if err != nil {
		t.Fatalf("Record error: %v", err)
	}
	if n != 10 || len(rec.plies) != 10 {
		t.Errorf("positions = %d, stored %d; want 10", n, len(rec.plies))
	}
	// The root and nine of its children fill the cap before ply 2 is reached.
	if rec.plies[len(rec.plies)-1] != 1 || rec.edges != 9 {
		t.Errorf("last ply = %d, edges = %d; want 1 and 9", rec.plies[len(rec.plies)-1], rec.edges)
	}

	rootOnly := newMemRecorder()
	n, err = Record(context.Background(), chess.Initial(), 3, 1, rootOnly)
	if err != nil {
		t.Fatalf("Record error: %v", err)
	}
	if n != 1 || rootOnly.edges != 0 {
		t.Errorf("positions = %d, edges = %d; want 1 and 0", n, rootOnly.edges)
	}
}

func TestRecordPropagatesErrors(t *testing.T) {
	rec := newMemRecorder()
	rec.failAt = 5
	if _, err := Record(context.Background(), chess.Initial(), 2, 0, rec); !errors.Is(err, errRecorder) {
		t.Errorf("Record error = %v; want errRecorder", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := Record(ctx, chess.Initial(), 2, 0, newMemRecorder()); !errors.Is(err, context.Canceled) {
		t.Errorf("Record error = %v; want context.Canceled", err)
	}
}
