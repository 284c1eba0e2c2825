package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/lgbarn/pawnrace-go/internal/chess"
)

// Snapshot is a position to be written out. Board is in White's
// orientation and Moves in White's coordinates.
type Snapshot struct {
	Board  chess.Board
	ToMove chess.Colour
	Moves  []chess.Move
	Result string
}

// BoardWriter is the interface for writing snapshots to output.
// Different implementations handle different output formats (text, JSON).
type BoardWriter interface {
	// WriteSnapshot writes a single snapshot to the output.
	WriteSnapshot(s Snapshot) error

	// Flush flushes any buffered data to the underlying writer.
	Flush() error

	// Close closes the writer and releases any resources.
	// For batch writers (like JSON), this also writes any pending output.
	Close() error
}

// TextWriter writes snapshots as rendered grids followed by the move list.
type TextWriter struct {
	w    io.Writer
	opts RenderOptions
}

// NewTextWriter creates a new text writer.
func NewTextWriter(w io.Writer, opts RenderOptions) *TextWriter {
	return &TextWriter{w: w, opts: opts}
}

// WriteSnapshot writes the grid, the side to move and the moves.
func (tw *TextWriter) WriteSnapshot(s Snapshot) error {
	if _, err := io.WriteString(tw.w, Render(s.Board, tw.opts)); err != nil {
		return err
	}
	moves := make([]string, 0, len(s.Moves))
	for _, m := range s.Moves {
		moves = append(moves, m.String())
	}
	if _, err := fmt.Fprintf(tw.w, "%s to move: %s\n", s.ToMove, strings.Join(moves, " ")); err != nil {
		return err
	}
	if s.Result != "" {
		_, err := fmt.Fprintf(tw.w, "Result: %s\n", s.Result)
		return err
	}
	return nil
}

// Flush is a no-op; text is written immediately.
func (tw *TextWriter) Flush() error {
	return nil
}

// Close is a no-op.
func (tw *TextWriter) Close() error {
	return nil
}

// JSONSnapshot is the JSON form of a Snapshot.
type JSONSnapshot struct {
	Layout string   `json:"layout"`
	ToMove string   `json:"toMove"`
	Moves  []string `json:"moves"`
	Result string   `json:"result,omitempty"`
}

// JSONOutput holds multiple snapshots for array output.
type JSONOutput struct {
	Positions []*JSONSnapshot `json:"positions"`
}

// SnapshotToJSON converts a snapshot to its JSON form.
func SnapshotToJSON(s Snapshot) *JSONSnapshot {
	js := &JSONSnapshot{
		Layout: chess.Layout(s.Board),
		ToMove: s.ToMove.Letter(),
		Moves:  make([]string, 0, len(s.Moves)),
		Result: s.Result,
	}
	for _, m := range s.Moves {
		js.Moves = append(js.Moves, m.String())
	}
	return js
}

// JSONWriter writes snapshots in JSON format.
// It buffers snapshots and writes them as a JSON array on Close or Flush.
type JSONWriter struct {
	w         io.Writer
	snapshots []Snapshot
	single    bool // If true, write each snapshot immediately instead of batching
}

// NewJSONWriter creates a new JSON writer.
// By default, it batches snapshots and writes them as an array on Close().
func NewJSONWriter(w io.Writer) *JSONWriter {
	return &JSONWriter{w: w}
}

// NewJSONWriterSingle creates a JSON writer that writes each snapshot immediately.
func NewJSONWriterSingle(w io.Writer) *JSONWriter {
	return &JSONWriter{w: w, single: true}
}

// WriteSnapshot buffers a snapshot (or writes it immediately in single mode).
func (jw *JSONWriter) WriteSnapshot(s Snapshot) error {
	if jw.single {
		enc := json.NewEncoder(jw.w)
		enc.SetIndent("", "  ")
		return enc.Encode(SnapshotToJSON(s))
	}

	jw.snapshots = append(jw.snapshots, s)
	return nil
}

// Flush writes all buffered snapshots as a JSON array.
func (jw *JSONWriter) Flush() error {
	if jw.single || len(jw.snapshots) == 0 {
		return nil
	}

	out := &JSONOutput{
		Positions: make([]*JSONSnapshot, 0, len(jw.snapshots)),
	}
	for _, s := range jw.snapshots {
		out.Positions = append(out.Positions, SnapshotToJSON(s))
	}

	enc := json.NewEncoder(jw.w)
	enc.SetIndent("", "  ")
	err := enc.Encode(out)

	// Clear buffer after writing
	jw.snapshots = jw.snapshots[:0]

	return err
}

// Close flushes and closes the JSON writer.
func (jw *JSONWriter) Close() error {
	return jw.Flush()
}

var (
	_ BoardWriter = (*TextWriter)(nil)
	_ BoardWriter = (*JSONWriter)(nil)
)
