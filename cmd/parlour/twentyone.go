package main

import (
	"github.com/lox/parlour/internal/config"
	"github.com/lox/parlour/internal/twentyone"
)

// TwentyOneCmd plays Twenty-One for a table of humans and robots.
type TwentyOneCmd struct {
	GameFlags `kong:"embed"`

	Humans    *int   `kong:"help='Number of human players'"`
	CPUs      *int   `kong:"name='cpus',help='Number of robot players'"`
	Threshold string `kong:"help='Round wins needed to take a tournament (a number or u)'"`
}

func (c *TwentyOneCmd) settings() (config.Config, error) {
	cfg, err := c.load()
	if err != nil {
		return cfg, err
	}
	cfg = c.GameFlags.apply(cfg)

	if c.Humans != nil {
		cfg.TwentyOne.Humans = *c.Humans
	}
	if c.CPUs != nil {
		cfg.TwentyOne.CPUs = *c.CPUs
	}
	if c.Threshold != "" {
		t, err := config.ParseThreshold(c.Threshold)
		if err != nil {
			return cfg, err
		}
		cfg.TwentyOne.Threshold = t
	}
	return cfg, cfg.Validate()
}

func (c *TwentyOneCmd) Run() error {
	cfg, err := c.settings()
	if err != nil {
		return err
	}

	s, err := c.open(cfg)
	if err != nil {
		return err
	}
	defer s.Close()

	seats := twentyone.NewSeats(cfg.TwentyOne, s.console)
	table, err := twentyone.NewTable(cfg.TwentyOne, seats, s.console, s.rng, twentyone.TableOptions{
		Pacer:  s.pacer,
		Pacing: cfg.Pacing,
		Logger: s.logger,
	})
	if err != nil {
		return err
	}
	return s.run(table, cfg.TwentyOne.Threshold, false)
}
