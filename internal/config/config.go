// Package config provides configuration for pawnrace.
package config

import (
	"fmt"
	"io"
	"os"

	"github.com/lgbarn/pawnrace-go/internal/chess"
	"github.com/lgbarn/pawnrace-go/internal/errors"
)

// Config holds all program configuration.
type Config struct {
	// Side to move in the starting position.
	Colour chess.Colour

	// Verbosity: 0=nothing, 1=summaries, 2=running commentary.
	Verbosity int

	// Starting position in layout form, White's orientation; empty means
	// the initial board.
	Layout string

	// Moves played from the starting position before anything else, "e2e4" form.
	Moves []string

	// Agent names the move chooser for bridge sessions: "first" or "race".
	Agent string

	Output *OutputConfig
	Search *SearchConfig
	Store  *StoreConfig

	// Output streams
	OutputFile io.Writer
	LogFile    io.Writer
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Colour:     chess.White,
		Verbosity:  1,
		Agent:      AgentFirst,
		Output:     NewOutputConfig(),
		Search:     NewSearchConfig(),
		Store:      NewStoreConfig(),
		OutputFile: os.Stdout,
		LogFile:    os.Stderr,
	}
}

// SetOutput sets the primary output stream.
func (c *Config) SetOutput(w io.Writer) {
	c.OutputFile = w
}

// Agent names.
const (
	AgentFirst = "first"
	AgentRace  = "race"
)

// Validate checks every section of the configuration.
func (c *Config) Validate() error {
	if c.Agent != AgentFirst && c.Agent != AgentRace {
		return fmt.Errorf("unknown agent %q: %w", c.Agent, errors.ErrInvalidConfig)
	}
	if err := c.Search.Validate(); err != nil {
		return err
	}
	return c.Store.Validate()
}

// Logf writes a diagnostic line to LogFile when Verbosity is at least level.
func (c *Config) Logf(level int, format string, args ...interface{}) {
	if c.LogFile == nil || c.Verbosity < level {
		return
	}
	fmt.Fprintf(c.LogFile, format+"\n", args...)
}
