package config

import (
	"io"

	"github.com/lgbarn/pawnrace-go/internal/chess"
)

// ConfigBuilder provides a fluent API for building Config instances.
type ConfigBuilder struct {
	cfg *Config
}

// NewConfigBuilder creates a new ConfigBuilder with default values.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{
		cfg: NewConfig(),
	}
}

// Build returns the built Config.
func (b *ConfigBuilder) Build() *Config {
	return b.cfg
}

// WithColour sets the side to move in the starting position.
func (b *ConfigBuilder) WithColour(c chess.Colour) *ConfigBuilder {
	b.cfg.Colour = c
	return b
}

// WithLayout sets the starting position.
func (b *ConfigBuilder) WithLayout(layout string) *ConfigBuilder {
	b.cfg.Layout = layout
	return b
}

// WithMoves sets the moves played before anything else.
func (b *ConfigBuilder) WithMoves(moves ...string) *ConfigBuilder {
	b.cfg.Moves = moves
	return b
}

// WithAgent sets the bridge move chooser.
func (b *ConfigBuilder) WithAgent(name string) *ConfigBuilder {
	b.cfg.Agent = name
	return b
}

// WithSwapGlyphs sets the glyph swap rendering option.
func (b *ConfigBuilder) WithSwapGlyphs(swap bool) *ConfigBuilder {
	b.cfg.Output.SwapGlyphs = swap
	return b
}

// WithJSONOutput enables JSON output.
func (b *ConfigBuilder) WithJSONOutput(enabled bool) *ConfigBuilder {
	b.cfg.Output.JSONFormat = enabled
	return b
}

// WithDepth sets the exploration depth.
func (b *ConfigBuilder) WithDepth(depth int) *ConfigBuilder {
	b.cfg.Search.Depth = depth
	return b
}

// WithWorkers sets the number of exploration workers.
func (b *ConfigBuilder) WithWorkers(n int) *ConfigBuilder {
	b.cfg.Search.Workers = n
	return b
}

// WithDB enables recording to the given SQLite file.
func (b *ConfigBuilder) WithDB(path string) *ConfigBuilder {
	b.cfg.Store.DBPath = path
	return b
}

// WithOutput sets the output writer.
func (b *ConfigBuilder) WithOutput(w io.Writer) *ConfigBuilder {
	b.cfg.OutputFile = w
	return b
}

// WithLog sets the diagnostics writer.
func (b *ConfigBuilder) WithLog(w io.Writer) *ConfigBuilder {
	b.cfg.LogFile = w
	return b
}

// WithVerbosity sets the verbosity level.
func (b *ConfigBuilder) WithVerbosity(level int) *ConfigBuilder {
	b.cfg.Verbosity = level
	return b
}
