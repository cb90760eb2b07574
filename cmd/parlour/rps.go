package main

import (
	"github.com/lox/parlour/internal/config"
	"github.com/lox/parlour/internal/rps"
)

// RPSCmd plays Rock-Paper-Scissors between two competitors.
type RPSCmd struct {
	GameFlags `kong:"embed"`

	Threshold   string `kong:"help='Wins needed to take a tournament (a number or u); prompts when unset'"`
	LizardSpock string `kong:"name='lizard-spock',help='Extended rules: ask, on or off'"`
}

// settings loads the configuration and applies the flags over it.
func (c *RPSCmd) settings() (config.Config, error) {
	cfg, err := c.load()
	if err != nil {
		return cfg, err
	}
	cfg = c.GameFlags.apply(cfg)

	if c.Threshold != "" {
		t, err := config.ParseThreshold(c.Threshold)
		if err != nil {
			return cfg, err
		}
		cfg.RPS.Threshold = t
		cfg.RPS.AskThreshold = false
	}
	if c.LizardSpock != "" {
		mode, err := config.ParseLizardSpock(c.LizardSpock)
		if err != nil {
			return cfg, err
		}
		cfg.RPS.LizardSpock = mode
	}
	return cfg, cfg.Validate()
}

func (c *RPSCmd) Run() error {
	cfg, err := c.settings()
	if err != nil {
		return err
	}

	s, err := c.open(cfg)
	if err != nil {
		return err
	}
	defer s.Close()

	players := cfg.RPS.Players
	if len(players) == 0 {
		players, err = s.console.PromptPlayers(2)
		if err != nil {
			return err
		}
	}

	match, err := rps.NewMatch(cfg.RPS, rps.NewCompetitors(players, s.console, s.rng), s.console, rps.MatchOptions{
		Pacer:  s.pacer,
		Pacing: cfg.Pacing,
		Logger: s.logger,
	})
	if err != nil {
		return err
	}
	return s.run(match, cfg.RPS.Threshold, cfg.RPS.AskThreshold)
}
