// commands.go - The actions the command line can run
package main

import (
	"context"
	"fmt"
	"io"

	"github.com/lgbarn/pawnrace-go/internal/bridge"
	"github.com/lgbarn/pawnrace-go/internal/chess"
	"github.com/lgbarn/pawnrace-go/internal/config"
	"github.com/lgbarn/pawnrace-go/internal/engine"
	"github.com/lgbarn/pawnrace-go/internal/errors"
	"github.com/lgbarn/pawnrace-go/internal/game"
	"github.com/lgbarn/pawnrace-go/internal/output"
	"github.com/lgbarn/pawnrace-go/internal/store"
)

// startingGame builds the game described by the position settings and plays
// any opening moves.
func startingGame(cfg *config.Config) (*game.Game, error) {
	var g *game.Game
	if cfg.Layout == "" {
		g = game.New(cfg.Colour)
	} else {
		b, err := chess.ParseLayoutFor(cfg.Layout, cfg.Colour)
		if err != nil {
			return nil, errors.Wrap(err, "starting layout")
		}
		g = game.FromBoard(b, cfg.Colour)
	}

	for _, mv := range cfg.Moves {
		if err := g.PlayString(mv); err != nil {
			return nil, errors.Wrap(err, "opening moves")
		}
		cfg.Logf(2, "played %s", mv)
	}
	return g, nil
}

// newBoardWriter returns the snapshot writer selected by the output settings.
func newBoardWriter(cfg *config.Config) output.BoardWriter {
	if cfg.Output.JSONFormat {
		return output.NewJSONWriterSingle(cfg.OutputFile)
	}
	return output.NewTextWriter(cfg.OutputFile, cfg.Output.RenderOptions())
}

// showPosition writes the current position, its legal moves and its result.
func showPosition(cfg *config.Config, g *game.Game) error {
	w := newBoardWriter(cfg)
	s := output.Snapshot{
		Board:  g.Board(),
		ToMove: g.ToMove(),
		Moves:  g.Moves(),
	}
	if r := g.Result(); r.IsOver() {
		s.Result = r.String()
	}
	cfg.Logf(2, "fen %s", engine.BoardToFEN(g.View(), g.ToMove()))
	if err := w.WriteSnapshot(s); err != nil {
		_ = w.Close()
		return err
	}
	return w.Close()
}

// runPerft counts the tree below the current position. Divide and unique
// counts are printed when requested.
func runPerft(ctx context.Context, cfg *config.Config, g *game.Game) error {
	b := g.View()
	depth := cfg.Search.Depth

	if cfg.Search.Divide {
		entries, err := engine.ParallelDivide(ctx, b, depth, cfg.Search.Workers)
		if err != nil {
			return errors.Wrapf(err, "divide to depth %d", depth)
		}
		for _, e := range entries {
			if g.ToMove() == chess.Black {
				e.Move = e.Move.Flip()
			}
			fmt.Fprintf(cfg.OutputFile, "%s: %d\n", e.Move, e.Nodes)
		}
		fmt.Fprintf(cfg.OutputFile, "\nNodes searched: %d\n", engine.Total(entries))
	} else {
		fmt.Fprintf(cfg.OutputFile, "perft(%d) = %d\n", depth, engine.Perft(b, depth))
	}

	if cfg.Search.Unique {
		for i, n := range engine.UniquePositions(b, depth) {
			fmt.Fprintf(cfg.OutputFile, "unique(%d) = %d\n", i+1, n)
		}
	}
	return nil
}

// runRecord writes the tree below the current position to the store.
func runRecord(ctx context.Context, cfg *config.Config, g *game.Game) (err error) {
	st, err := store.Open(cfg.Store.DBPath)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := st.Close(); cerr != nil && err == nil {
			err = errors.Wrapf(cerr, "close %s", cfg.Store.DBPath)
		}
	}()

	n, err := engine.Record(ctx, g.View(), cfg.Search.Depth, cfg.Store.MaxPositions, st)
	if err != nil {
		return errors.Wrapf(err, "record to %s", cfg.Store.DBPath)
	}
	cfg.Logf(1, "recorded %d positions to %s", n, cfg.Store.DBPath)

	if size, err := st.Size(ctx); err == nil {
		cfg.Logf(2, "database size %d bytes", size)
	}
	return nil
}

// newAgent returns the move chooser named in the configuration.
func newAgent(cfg *config.Config) bridge.Agent {
	if cfg.Agent == config.AgentRace {
		return bridge.RaceAgent{}
	}
	return bridge.FirstMoveAgent{}
}

// runPlay plays one bridge game reading from r and writing to cfg.OutputFile.
func runPlay(ctx context.Context, cfg *config.Config, r io.Reader) error {
	s := bridge.NewSession(bridge.NewStreamIO(r, cfg.OutputFile), newAgent(cfg))
	s.SendBoard = cfg.Output.SendBoard
	s.RenderOpts = cfg.Output.RenderOptions()
	if cfg.Verbosity >= 2 {
		s.Log = cfg.LogFile
	}

	result, err := s.Run(ctx)
	if err != nil {
		return err
	}
	cfg.Logf(1, "game over: %s", result)
	return nil
}

// run dispatches to the action selected by the configuration.
func run(ctx context.Context, cfg *config.Config, stdin io.Reader) error {
	if *play {
		return runPlay(ctx, cfg, stdin)
	}

	g, err := startingGame(cfg)
	if err != nil {
		return err
	}

	switch {
	case cfg.Store.Enabled():
		return runRecord(ctx, cfg, g)
	case cfg.Search.Depth > 0:
		return runPerft(ctx, cfg, g)
	default:
		return showPosition(cfg, g)
	}
}
