package config

import (
	"fmt"
	"runtime"

	"github.com/lgbarn/pawnrace-go/internal/errors"
)

// MaxDepth bounds exploration depth. Pawn Race trees are shallow but wide.
const MaxDepth = 16

// SearchConfig holds settings for move-tree exploration.
type SearchConfig struct {
	// Depth is the number of plies to explore (0 = just the root)
	Depth int

	// Workers is the number of goroutines used by parallel divide
	Workers int

	// Divide reports node counts per root move
	Divide bool

	// Unique counts distinct positions per ply
	Unique bool
}

// NewSearchConfig creates a SearchConfig with default values.
func NewSearchConfig() *SearchConfig {
	return &SearchConfig{
		Workers: runtime.NumCPU(),
	}
}

// Validate checks that the search configuration is valid.
func (s *SearchConfig) Validate() error {
	if s.Depth < 0 || s.Depth > MaxDepth {
		return fmt.Errorf("depth %d outside [0, %d]: %w", s.Depth, MaxDepth, errors.ErrInvalidConfig)
	}
	if s.Workers < 1 {
		return fmt.Errorf("workers (%d) must be at least 1: %w", s.Workers, errors.ErrInvalidConfig)
	}
	return nil
}
