// Package tournament runs repeated rounds of a game until a competitor's
// score reaches the configured threshold, then offers a replay.
//
// The Controller owns the Scoreboard and the loop; a Game supplies the round
// logic; a Port renders snapshots and collects the yes/no and threshold
// answers from the user. Everything runs on the caller's goroutine.
package tournament

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/lox/parlour/internal/config"
	"github.com/lox/parlour/internal/gameid"
)

// Round tells a game which round it is playing and the scores going into it.
type Round struct {
	TournamentID string
	Number       int
	Threshold    config.Threshold
	Standings    []Standing
}

// RoundOutcome is what a game reports after a round. Winner is empty when the
// round credits nobody (a tie, or everyone bust). View is rendered with the
// updated standings.
type RoundOutcome struct {
	Winner string
	View   any
}

// Game is the per-game round logic driven by the Controller.
type Game interface {
	// Name identifies the game in snapshots and logs.
	Name() string
	// Competitors lists competitor ids in seat order.
	Competitors() []string
	// ResetTournament prepares a fresh tournament: new deck, rules chosen again.
	ResetTournament() error
	// PlayRound plays one round to completion.
	PlayRound(ctx context.Context, round Round) (RoundOutcome, error)
	// ResetRound clears hands, moves and visibility between rounds.
	ResetRound()
}

// Options configures a Controller.
type Options struct {
	// Threshold is used as is unless AskThreshold is set.
	Threshold config.Threshold
	// AskThreshold prompts the port for the threshold before each tournament.
	AskThreshold bool
	// IDs generates tournament ids; nil uses time-ordered UUIDv7 ids.
	IDs *gameid.Generator
	// Observers receive every snapshot after the port renders it.
	Observers []Renderer
	Logger    *log.Logger
}

// Summary records how a tournament ended.
type Summary struct {
	TournamentID string
	// Winner is empty when an unlimited tournament was stopped by the user.
	Winner    string
	Rounds    int
	Standings []Standing
}

// Controller runs tournaments of one Game.
type Controller struct {
	game         Game
	port         Port
	render       Renderer
	board        *Scoreboard
	askThreshold bool
	ids          *gameid.Generator
	logger       *log.Logger
}

// NewController validates the options and builds a controller with all scores at zero.
func NewController(game Game, port Port, opts Options) (*Controller, error) {
	threshold := opts.Threshold
	if opts.AskThreshold && threshold == 0 {
		threshold = 1
	}
	board, err := NewScoreboard(threshold, game.Competitors()...)
	if err != nil {
		return nil, err
	}

	ids := opts.IDs
	if ids == nil {
		ids = gameid.NewGenerator(nil)
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	return &Controller{
		game:         game,
		port:         port,
		render:       Tee(append([]Renderer{port}, opts.Observers...)...),
		board:        board,
		askThreshold: opts.AskThreshold,
		ids:          ids,
		logger:       logger.WithPrefix("tournament").With("game", game.Name()),
	}, nil
}

// Scoreboard exposes the live scores.
func (c *Controller) Scoreboard() *Scoreboard {
	return c.board
}

// Run plays tournaments until the user declines another one.
func (c *Controller) Run(ctx context.Context) ([]Summary, error) {
	var summaries []Summary
	for {
		summary, err := c.PlayTournament(ctx)
		if err != nil {
			return summaries, err
		}
		summaries = append(summaries, summary)

		again, err := c.port.PromptYesNo("Would you like to play another tournament?")
		if err != nil {
			return summaries, fmt.Errorf("replay prompt: %w", err)
		}
		if !again {
			c.logger.Info("Session over", "tournaments", len(summaries))
			return summaries, nil
		}
	}
}

// PlayTournament resets scores to zero and plays rounds until the threshold is reached.
func (c *Controller) PlayTournament(ctx context.Context) (Summary, error) {
	if c.askThreshold {
		t, err := c.port.PromptWinThreshold()
		if err != nil {
			return Summary{}, fmt.Errorf("threshold prompt: %w", err)
		}
		if err := c.board.SetThreshold(t); err != nil {
			return Summary{}, err
		}
	}
	c.board.Reset()

	if err := c.game.ResetTournament(); err != nil {
		return Summary{}, fmt.Errorf("reset tournament: %w", err)
	}

	id := c.ids.Generate()
	logger := c.logger.With("tournament", id)
	logger.Info("Tournament started", "threshold", c.board.Threshold())
	c.render.Render(c.snapshot(id, 0, PhaseTournamentStart, "", nil))

	for number := 1; ; number++ {
		if err := ctx.Err(); err != nil {
			return Summary{}, err
		}

		outcome, err := c.game.PlayRound(ctx, Round{
			TournamentID: id,
			Number:       number,
			Threshold:    c.board.Threshold(),
			Standings:    c.board.Standings(),
		})
		if err != nil {
			return Summary{}, fmt.Errorf("round %d: %w", number, err)
		}

		if outcome.Winner != "" {
			if err := c.board.Credit(outcome.Winner); err != nil {
				return Summary{}, fmt.Errorf("round %d: %w", number, err)
			}
		}
		logger.Info("Round complete", "round", number, "winner", outcome.Winner, "standings", c.board.Standings())
		c.render.Render(c.snapshot(id, number, PhaseRoundOver, "", outcome.View))
		c.game.ResetRound()

		if winner, ok := c.board.Winner(); ok {
			logger.Info("Tournament won", "winner", winner, "rounds", number)
			c.render.Render(c.snapshot(id, number, PhaseTournamentOver, winner, nil))
			return c.summary(id, winner, number), nil
		}

		if c.board.Threshold().IsUnlimited() {
			more, err := c.port.PromptYesNo("Play another round?")
			if err != nil {
				return Summary{}, fmt.Errorf("continue prompt: %w", err)
			}
			if !more {
				logger.Info("Endless tournament stopped", "rounds", number)
				c.render.Render(c.snapshot(id, number, PhaseTournamentOver, "", nil))
				return c.summary(id, "", number), nil
			}
		}
	}
}

func (c *Controller) snapshot(id string, round int, phase Phase, winner string, view any) Snapshot {
	return Snapshot{
		Game:         c.game.Name(),
		TournamentID: id,
		Round:        round,
		Phase:        phase,
		Threshold:    c.board.Threshold(),
		Standings:    c.board.Standings(),
		Winner:       winner,
		View:         view,
	}
}

func (c *Controller) summary(id, winner string, rounds int) Summary {
	return Summary{
		TournamentID: id,
		Winner:       winner,
		Rounds:       rounds,
		Standings:    c.board.Standings(),
	}
}
