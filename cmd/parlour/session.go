package main

import (
	"context"
	"fmt"
	rand "math/rand/v2"

	"github.com/charmbracelet/log"

	"github.com/lox/parlour/cmd/parlour/shared"
	"github.com/lox/parlour/internal/config"
	"github.com/lox/parlour/internal/console"
	"github.com/lox/parlour/internal/gameid"
	"github.com/lox/parlour/internal/journal"
	"github.com/lox/parlour/internal/pace"
	"github.com/lox/parlour/internal/randutil"
	"github.com/lox/parlour/internal/tournament"
)

// GameFlags are shared by every interactive game command.
type GameFlags struct {
	Config  string `kong:"help='HCL or TOML settings file'"`
	Seed    *int64 `kong:"help='Deterministic RNG seed (optional)'"`
	NoDelay bool   `kong:"help='Skip the pauses between game steps'"`
	NoColor bool   `kong:"help='Disable coloured output'"`
	Journal string `kong:"help='Append a JSON-lines record of play to this file'"`
	LogFile string `kong:"help='Write logs to this file instead of stderr'"`
	Debug   bool   `kong:"help='Enable debug logging'"`
}

// load reads the settings file, or the defaults when none is given.
func (f GameFlags) load() (config.Config, error) {
	if f.Config == "" {
		return config.Default(), nil
	}
	return config.Load(f.Config)
}

// apply overlays the flags every game shares.
func (f GameFlags) apply(cfg config.Config) config.Config {
	if f.NoDelay {
		cfg.Pacing.Enabled = false
	}
	return cfg
}

// session holds everything an interactive game needs besides the game itself.
type session struct {
	cfg       config.Config
	logger    *log.Logger
	console   *console.Console
	pacer     *pace.Pacer
	rng       *rand.Rand
	ids       *gameid.Generator
	observers []tournament.Renderer
	ctx       context.Context
	closers   []func() error
}

func (f GameFlags) open(cfg config.Config) (*session, error) {
	logger, closeLog, err := shared.SetupLogger(f.LogFile, f.Debug)
	if err != nil {
		return nil, err
	}
	s := &session{cfg: cfg, logger: logger, closers: []func() error{closeLog}}

	rng, seed := randutil.Resolve(f.Seed)
	logger.Info("Session starting", "seed", seed, "pacing", cfg.Pacing.Enabled)
	s.rng = rng
	// Seeded sessions also replay their tournament ids.
	if f.Seed != nil {
		s.ids = gameid.NewGenerator(rng)
	}

	if f.Journal != "" {
		j, err := journal.Open(f.Journal)
		if err != nil {
			s.Close()
			return nil, err
		}
		s.observers = append(s.observers, j)
		s.closers = append(s.closers, j.Close)
	}

	s.console = console.New(console.Options{NoColor: f.NoColor, Logger: logger})
	s.pacer = pace.New(nil, cfg.Pacing.Enabled)

	ctx, cancel := shared.SetupSignalHandler(logger)
	s.ctx = ctx
	s.closers = append(s.closers, func() error { cancel(); return nil })
	return s, nil
}

// run drives game through tournaments until the user stops.
func (s *session) run(game tournament.Game, threshold config.Threshold, ask bool) error {
	c, err := tournament.NewController(game, s.console, tournament.Options{
		Threshold:    threshold,
		AskThreshold: ask,
		IDs:          s.ids,
		Observers:    s.observers,
		Logger:       s.logger,
	})
	if err != nil {
		return err
	}

	summaries, err := c.Run(s.ctx)
	for _, sum := range summaries {
		s.logger.Info("Tournament summary", "tournament", sum.TournamentID, "winner", sum.Winner, "rounds", sum.Rounds)
	}
	if err != nil {
		return fmt.Errorf("%s: %w", game.Name(), err)
	}
	return nil
}

// Close releases the session's files, newest first.
func (s *session) Close() {
	for i := len(s.closers) - 1; i >= 0; i-- {
		if err := s.closers[i](); err != nil {
			s.logger.Error("Failed to close", "error", err)
		}
	}
}
