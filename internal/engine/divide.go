package engine

import (
	"context"
	"sort"

	"github.com/lgbarn/pawnrace-go/internal/chess"
	"github.com/lgbarn/pawnrace-go/internal/worker"
)

// DivideEntry is the node count below one root move.
type DivideEntry struct {
	Move  chess.Move
	Nodes uint64
}

// Total sums the node counts of entries.
func Total(entries []DivideEntry) uint64 {
	var n uint64
	for _, e := range entries {
		n += e.Nodes
	}
	return n
}

// Divide splits Perft(b, depth) by root move, in generation order.
func Divide(b chess.Board, depth int) []DivideEntry {
	if depth <= 0 {
		return nil
	}
	moves := b.MoveList()
	entries := make([]DivideEntry, len(moves))
	for i, m := range moves {
		entries[i] = DivideEntry{Move: m, Nodes: Perft(b.Apply(m).Flip(), depth-1)}
	}
	return entries
}

// ParallelDivide computes the same entries as Divide with one work item per
// root move spread over workers goroutines. Results keep generation order.
func ParallelDivide(ctx context.Context, b chess.Board, depth, workers int) ([]DivideEntry, error) {
	if depth <= 0 {
		return nil, nil
	}
	moves := b.MoveList()

	pool := worker.NewPoolWithOptions(perftWorker,
		worker.WithWorkers(workers),
		worker.WithBufferSize(len(moves)+1))
	pool.Start(ctx)

	go func() {
		for i, m := range moves {
			pool.Submit(worker.WorkItem{Index: i, Board: b.Apply(m).Flip(), Root: m, Depth: depth - 1})
		}
		pool.Close()
	}()

	entries := make([]DivideEntry, 0, len(moves))
	index := make(map[chess.Move]int, len(moves))
	var firstErr error
	for r := range pool.Results() {
		if r.Error != nil {
			if firstErr == nil {
				firstErr = r.Error
				pool.Stop()
			}
			continue
		}
		index[r.Root] = r.Index
		entries = append(entries, DivideEntry{Move: r.Root, Nodes: r.Nodes})
	}
	if firstErr != nil {
		return nil, firstErr
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	sort.Slice(entries, func(i, j int) bool {
		return index[entries[i].Move] < index[entries[j].Move]
	})
	return entries, nil
}

// perftWorker counts one subtree, checking for cancellation between the
// subtree's own root moves.
func perftWorker(ctx context.Context, item worker.WorkItem) worker.ProcessResult {
	result := worker.ProcessResult{Index: item.Index, Root: item.Root}
	if item.Depth <= 1 {
		result.Nodes = Perft(item.Board, item.Depth)
		return result
	}
	it := item.Board.Moves()
	for m, ok := it.Next(); ok; m, ok = it.Next() {
		if err := ctx.Err(); err != nil {
			result.Error = err
			return result
		}
		result.Nodes += Perft(item.Board.Apply(m).Flip(), item.Depth-1)
	}
	return result
}
