// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"
	"fmt"
	"strings"

	"github.com/lgbarn/pawnrace-go/internal/chess"
	"github.com/lgbarn/pawnrace-go/internal/config"
	"github.com/lgbarn/pawnrace-go/internal/engine"
)

var (
	// Output options
	outputFile   = flag.String("o", "", "Output file (default: stdout)")
	appendOutput = flag.Bool("a", false, "Append to output file instead of overwrite")
	jsonOutput   = flag.Bool("J", false, "Output in JSON format")
	noSwap       = flag.Bool("noswap", false, "Draw White pawns as ♙ and Black pawns as ♟")

	// Starting position
	colourFlag = flag.String("colour", "W", "Side to move in the starting position: W or B")
	layoutFlag = flag.String("layout", "", "Starting layout, White's orientation (default: initial board)")
	fenFlag    = flag.String("fen", "", "Starting position as FEN (pawns and kings only)")
	movesFlag  = flag.String("moves", "", "Comma-separated moves to play first, e.g. e2e4,d7d5")

	// Tree exploration
	perftDepth = flag.Int("perft", 0, "Count leaf nodes N plies deep")
	divide     = flag.Bool("divide", false, "With -perft, print the count below each root move")
	workers    = flag.Int("workers", 0, "Workers for -divide (default: number of CPUs)")
	unique     = flag.Bool("unique", false, "With -perft, count distinct positions at each ply")

	// Position store
	dbPath       = flag.String("db", "", "Record the tree explored by -perft into this SQLite file")
	maxPositions = flag.Int("max-positions", 0, "Maximum positions recorded (0 = unlimited)")

	// Bridge play
	play      = flag.Bool("play", false, "Play one game over stdin/stdout")
	agentName = flag.String("agent", config.AgentFirst, "Move chooser for -play: first or race")
	sendBoard = flag.Bool("sendboard", false, "With -play, send the board after every ply")

	// Logging and help
	logFile   = flag.String("l", "", "Write diagnostics to log file")
	appendLog = flag.String("L", "", "Append diagnostics to log file")
	quiet     = flag.Bool("s", false, "Silent mode (no diagnostics)")
	verbosity = flag.Int("v", 1, "Diagnostic verbosity")
	help      = flag.Bool("h", false, "Show help")
	version   = flag.Bool("version", false, "Show version")
)

// applyFlags applies command-line flags to the configuration.
func applyFlags(cfg *config.Config) error {
	if err := applyPositionFlags(cfg); err != nil {
		return err
	}
	applyOutputFlags(cfg)
	applySearchFlags(cfg)
	applyStoreFlags(cfg)
	cfg.Agent = *agentName

	cfg.Verbosity = *verbosity
	if *quiet {
		cfg.Verbosity = 0
	}
	return nil
}

// applyPositionFlags configures the starting position.
func applyPositionFlags(cfg *config.Config) error {
	colour, err := chess.ParseColour(strings.ToUpper(*colourFlag))
	if err != nil {
		return fmt.Errorf("-colour: %w", err)
	}
	cfg.Colour = colour
	cfg.Layout = *layoutFlag
	cfg.Moves = splitMoves(*movesFlag)

	if *fenFlag != "" {
		b, toMove, err := engine.BoardFromFEN(*fenFlag)
		if err != nil {
			return fmt.Errorf("-fen: %w", err)
		}
		if toMove == chess.Black {
			b = b.Flip()
		}
		cfg.Colour = toMove
		cfg.Layout = chess.Layout(b)
	}
	return nil
}

// applyOutputFlags configures output formatting.
func applyOutputFlags(cfg *config.Config) {
	cfg.Output.JSONFormat = *jsonOutput
	cfg.Output.SwapGlyphs = !*noSwap
	cfg.Output.SendBoard = *sendBoard
}

// applySearchFlags configures tree exploration.
func applySearchFlags(cfg *config.Config) {
	cfg.Search.Depth = *perftDepth
	cfg.Search.Divide = *divide
	cfg.Search.Unique = *unique
	if *workers > 0 {
		cfg.Search.Workers = *workers
	}
}

// applyStoreFlags configures the position store.
func applyStoreFlags(cfg *config.Config) {
	cfg.Store.DBPath = *dbPath
	cfg.Store.MaxPositions = *maxPositions
}

// splitMoves splits a comma or space separated move list.
func splitMoves(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' '
	})
}
