package config

import "github.com/lgbarn/pawnrace-go/internal/output"

// OutputConfig holds settings related to output formatting.
type OutputConfig struct {
	// SwapGlyphs swaps the White and Black pawn glyphs when rendering.
	SwapGlyphs bool

	// JSONFormat enables JSON snapshots instead of rendered grids
	JSONFormat bool

	// SendBoard makes bridge sessions send the rendered board after each ply
	SendBoard bool
}

// NewOutputConfig creates an OutputConfig with default values.
func NewOutputConfig() *OutputConfig {
	return &OutputConfig{
		SwapGlyphs: true,
	}
}

// RenderOptions returns the renderer settings.
func (o *OutputConfig) RenderOptions() output.RenderOptions {
	return output.RenderOptions{SwapGlyphs: o.SwapGlyphs}
}
