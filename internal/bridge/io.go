// Package bridge connects a game to a line-oriented driver: the driver
// sends our colour and the opponent's moves, we answer with our own.
package bridge

import (
	"bufio"
	"io"
	"strings"
)

// LineIO is a line channel to the driver. Lines carry no terminator.
type LineIO interface {
	// ReceiveLine blocks for the next line. It returns io.EOF once the
	// channel is closed.
	ReceiveLine() (string, error)
	SendLine(line string) error
}

// StreamIO adapts a reader and writer to LineIO.
type StreamIO struct {
	scanner *bufio.Scanner
	w       *bufio.Writer
}

// NewStreamIO creates a LineIO reading lines from r and writing them to w.
func NewStreamIO(r io.Reader, w io.Writer) *StreamIO {
	return &StreamIO{scanner: bufio.NewScanner(r), w: bufio.NewWriter(w)}
}

// ReceiveLine returns the next line with surrounding whitespace removed.
func (s *StreamIO) ReceiveLine() (string, error) {
	if !s.scanner.Scan() {
		if err := s.scanner.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimSpace(s.scanner.Text()), nil
}

// SendLine writes line and flushes it.
func (s *StreamIO) SendLine(line string) error {
	if _, err := s.w.WriteString(line); err != nil {
		return err
	}
	if err := s.w.WriteByte('\n'); err != nil {
		return err
	}
	return s.w.Flush()
}
