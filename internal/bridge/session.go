package bridge

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"

	"github.com/lgbarn/pawnrace-go/internal/chess"
	"github.com/lgbarn/pawnrace-go/internal/errors"
	"github.com/lgbarn/pawnrace-go/internal/game"
	"github.com/lgbarn/pawnrace-go/internal/output"
)

// Session plays one game over a LineIO.
//
// The driver first sends our colour, "W" or "B". White moves first. After
// that we send each of our moves and receive each of the opponent's, one per
// line, written as "e2e4" in White's coordinates. When the game ends we send
// the result in PGN notation ("1-0", "0-1" or "1/2-1/2") and return.
type Session struct {
	IO    LineIO
	Agent Agent

	// SendBoard sends the rendered board after every ply.
	SendBoard  bool
	RenderOpts output.RenderOptions

	// Log receives one line per ply when set.
	Log io.Writer

	game   *game.Game
	colour chess.Colour
}

// NewSession creates a session playing agent's moves over lio.
func NewSession(lio LineIO, agent Agent) *Session {
	return &Session{IO: lio, Agent: agent}
}

// Game returns the game being played, or nil before the colour is known.
func (s *Session) Game() *game.Game {
	return s.game
}

// Colour returns the side we play.
func (s *Session) Colour() chess.Colour {
	return s.colour
}

func protocolError(format string, args ...interface{}) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), errors.ErrProtocol)
}

func (s *Session) logf(format string, args ...interface{}) {
	if s.Log != nil {
		fmt.Fprintf(s.Log, format+"\n", args...)
	}
}

// Run plays until the game ends, the channel fails or ctx is done.
func (s *Session) Run(ctx context.Context) (game.Result, error) {
	line, err := s.IO.ReceiveLine()
	if err != nil {
		return game.Ongoing, s.receiveError("colour", err)
	}
	colour, err := chess.ParseColour(line)
	if err != nil {
		return game.Ongoing, fmt.Errorf("%w: %w", errors.ErrProtocol, err)
	}
	s.colour = colour
	s.game = game.New(chess.White)
	s.logf("playing %s", colour)

	for {
		if err := ctx.Err(); err != nil {
			return game.Ongoing, err
		}
		if r := s.game.Result(); r.IsOver() {
			s.logf("result %s after %d plies", r, s.game.Ply())
			if err := s.IO.SendLine(r.String()); err != nil {
				return r, err
			}
			return r, nil
		}

		if s.game.ToMove() == s.colour {
			err = s.playOwn()
		} else {
			err = s.playOpponent()
		}
		if err != nil {
			return game.Ongoing, err
		}

		if s.SendBoard {
			for _, l := range output.RenderLines(s.game.Board(), s.RenderOpts) {
				if err := s.IO.SendLine(l); err != nil {
					return game.Ongoing, err
				}
			}
		}
	}
}

func (s *Session) playOwn() error {
	m, err := s.Agent.Choose(s.game)
	if err != nil {
		return err
	}
	if err := s.game.Play(m); err != nil {
		return err
	}
	s.logf("ply %d: %s plays %s", s.game.Ply(), s.colour, m)
	return s.IO.SendLine(m.String())
}

func (s *Session) playOpponent() error {
	line, err := s.IO.ReceiveLine()
	if err != nil {
		return s.receiveError("move", err)
	}
	if err := s.game.PlayString(line); err != nil {
		return fmt.Errorf("opponent: %w: %w", errors.ErrProtocol, err)
	}
	s.logf("ply %d: %s plays %s", s.game.Ply(), s.colour.Opposite(), line)
	return nil
}

func (s *Session) receiveError(want string, err error) error {
	if stderrors.Is(err, io.EOF) {
		return protocolError("channel closed while waiting for %s", want)
	}
	return err
}
