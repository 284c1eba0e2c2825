package config

import (
	"bytes"
	stderrors "errors"
	"testing"

	"github.com/lgbarn/pawnrace-go/internal/chess"
	"github.com/lgbarn/pawnrace-go/internal/errors"
)

// TestOutputConfig_Defaults verifies OutputConfig has sensible defaults
func TestOutputConfig_Defaults(t *testing.T) {
	cfg := NewOutputConfig()

	if !cfg.SwapGlyphs {
		t.Error("SwapGlyphs should be true by default")
	}
	if cfg.JSONFormat {
		t.Error("JSONFormat should be false by default")
	}
	if cfg.SendBoard {
		t.Error("SendBoard should be false by default")
	}
	if !cfg.RenderOptions().SwapGlyphs {
		t.Error("RenderOptions() did not carry SwapGlyphs")
	}
}

// TestSearchConfig_Validate verifies search config validation
func TestSearchConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     SearchConfig
		wantErr bool
	}{
		{"defaults", *NewSearchConfig(), false},
		{"depth at limit", SearchConfig{Depth: MaxDepth, Workers: 1}, false},
		{"negative depth", SearchConfig{Depth: -1, Workers: 1}, true},
		{"depth past limit", SearchConfig{Depth: MaxDepth + 1, Workers: 1}, true},
		{"no workers", SearchConfig{Depth: 3}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !stderrors.Is(err, errors.ErrInvalidConfig) {
				t.Errorf("Validate() error = %v, want ErrInvalidConfig", err)
			}
		})
	}
}

// TestStoreConfig verifies store defaults and validation
func TestStoreConfig(t *testing.T) {
	cfg := NewStoreConfig()
	if cfg.Enabled() {
		t.Error("store should be disabled by default")
	}
	cfg.DBPath = "positions.db"
	if !cfg.Enabled() {
		t.Error("store with DBPath should be enabled")
	}
	cfg.MaxPositions = -5
	if err := cfg.Validate(); !stderrors.Is(err, errors.ErrInvalidConfig) {
		t.Errorf("Validate() error = %v, want ErrInvalidConfig", err)
	}
}

// TestConfig_Defaults verifies top-level defaults
func TestConfig_Defaults(t *testing.T) {
	cfg := NewConfig()

	if cfg.Colour != chess.White {
		t.Errorf("Colour = %v, want White", cfg.Colour)
	}
	if cfg.Verbosity != 1 {
		t.Errorf("Verbosity = %d, want 1", cfg.Verbosity)
	}
	if cfg.Layout != "" {
		t.Errorf("Layout = %q, want empty", cfg.Layout)
	}
	if cfg.Agent != AgentFirst {
		t.Errorf("Agent = %q, want %q", cfg.Agent, AgentFirst)
	}
	if cfg.Search.Depth != 0 {
		t.Errorf("Search.Depth = %d, want 0", cfg.Search.Depth)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
}

// TestConfig_ValidateAgent verifies agent names are checked
func TestConfig_ValidateAgent(t *testing.T) {
	for _, name := range []string{AgentFirst, AgentRace} {
		if err := NewConfigBuilder().WithAgent(name).Build().Validate(); err != nil {
			t.Errorf("agent %q rejected: %v", name, err)
		}
	}
	err := NewConfigBuilder().WithAgent("minimax").Build().Validate()
	if !stderrors.Is(err, errors.ErrInvalidConfig) {
		t.Errorf("Validate() error = %v, want ErrInvalidConfig", err)
	}
}

// TestConfig_SetOutput verifies output stream setting
func TestConfig_SetOutput(t *testing.T) {
	cfg := NewConfig()
	buf := &bytes.Buffer{}

	cfg.SetOutput(buf)

	if cfg.OutputFile != buf {
		t.Error("SetOutput did not set OutputFile")
	}
}

// TestConfig_Logf verifies verbosity gating
func TestConfig_Logf(t *testing.T) {
	buf := &bytes.Buffer{}
	cfg := NewConfigBuilder().WithLog(buf).WithVerbosity(1).Build()

	cfg.Logf(1, "depth %d", 3)
	cfg.Logf(2, "hidden")

	if got := buf.String(); got != "depth 3\n" {
		t.Errorf("log = %q, want %q", got, "depth 3\n")
	}

	cfg.LogFile = nil
	cfg.Logf(0, "no writer") // must not panic
}

// TestConfigBuilder verifies the builder pattern works correctly
func TestConfigBuilder(t *testing.T) {
	out := &bytes.Buffer{}
	cfg := NewConfigBuilder().
		WithColour(chess.Black).
		WithLayout(chess.InitialLayout).
		WithMoves("e2e4", "d7d5").
		WithSwapGlyphs(false).
		WithJSONOutput(true).
		WithDepth(4).
		WithWorkers(2).
		WithDB("race.db").
		WithOutput(out).
		WithVerbosity(2).
		Build()

	if cfg.Colour != chess.Black {
		t.Errorf("Colour = %v, want Black", cfg.Colour)
	}
	if cfg.Layout != chess.InitialLayout {
		t.Errorf("Layout = %q", cfg.Layout)
	}
	if len(cfg.Moves) != 2 || cfg.Moves[1] != "d7d5" {
		t.Errorf("Moves = %v", cfg.Moves)
	}
	if cfg.Output.SwapGlyphs {
		t.Error("Output.SwapGlyphs should be false")
	}
	if !cfg.Output.JSONFormat {
		t.Error("Output.JSONFormat should be true")
	}
	if cfg.Search.Depth != 4 || cfg.Search.Workers != 2 {
		t.Errorf("Search = %+v, want depth 4 workers 2", *cfg.Search)
	}
	if cfg.Store.DBPath != "race.db" {
		t.Errorf("Store.DBPath = %q, want race.db", cfg.Store.DBPath)
	}
	if cfg.OutputFile != out {
		t.Error("WithOutput did not set OutputFile")
	}
	if cfg.Verbosity != 2 {
		t.Errorf("Verbosity = %d, want 2", cfg.Verbosity)
	}
}
