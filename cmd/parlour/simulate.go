package main

import (
	"fmt"
	"os"
	"time"

	"github.com/lox/parlour/cmd/parlour/shared"
	"github.com/lox/parlour/internal/config"
	"github.com/lox/parlour/internal/randutil"
	"github.com/lox/parlour/internal/rps"
	"github.com/lox/parlour/internal/simulator"
)

// SimulateCmd plays CPU-only tournaments in bulk.
type SimulateCmd struct {
	Game        string        `kong:"arg,enum='rps,twentyone',help='Game to simulate (rps or twentyone)'"`
	Config      string        `kong:"help='HCL or TOML settings file'"`
	Tournaments int           `kong:"default='1000',help='Number of tournaments to play'"`
	Workers     int           `kong:"default='0',help='Parallel workers (0 uses min(NumCPU, 8))'"`
	Seed        *int64        `kong:"help='Base seed; tournament i uses seed+i (optional)'"`
	Threshold   string        `kong:"help='Wins needed to take each tournament'"`
	Timeout     time.Duration `kong:"default='0s',help='Per-tournament timeout (0 for none)'"`
	Output      string        `kong:"help='Also write a JSON report to this file'"`
	Debug       bool          `kong:"help='Enable debug logging'"`
}

func (c *SimulateCmd) settings() (config.Config, error) {
	cfg := config.Default()
	if c.Config != "" {
		loaded, err := config.Load(c.Config)
		if err != nil {
			return cfg, err
		}
		cfg = loaded
	}
	cfg.Pacing.Enabled = false

	if c.Threshold != "" {
		t, err := config.ParseThreshold(c.Threshold)
		if err != nil {
			return cfg, err
		}
		if c.Game == rps.GameName {
			cfg.RPS.Threshold = t
		} else {
			cfg.TwentyOne.Threshold = t
		}
	}
	return cfg, cfg.Validate()
}

func (c *SimulateCmd) Run() error {
	cfg, err := c.settings()
	if err != nil {
		return err
	}

	logger, closeLog, err := shared.SetupLogger("", c.Debug)
	if err != nil {
		return err
	}
	defer closeLog()

	_, seed := randutil.Resolve(c.Seed)
	fmt.Printf("Simulating %d %s tournaments (seed: %d)\n", c.Tournaments, c.Game, seed)

	ctx, cancel := shared.SetupSignalHandler(logger)
	defer cancel()

	start := time.Now()
	stats, err := simulator.New(simulator.Config{
		Game:        c.Game,
		Tournaments: c.Tournaments,
		Workers:     c.Workers,
		Seed:        seed,
		Timeout:     c.Timeout,
		Settings:    cfg,
		Logger:      logger,
	}).Run(ctx)
	if err != nil {
		return err
	}

	simulator.WriteSummary(os.Stdout, stats, c.Game)
	if c.Output != "" {
		if err := simulator.WriteReport(c.Output, simulator.NewReport(stats, c.Game, seed)); err != nil {
			return err
		}
		fmt.Printf("Report written to %s\n", c.Output)
	}
	fmt.Printf("\nCompleted in %v\n", time.Since(start).Round(time.Millisecond))
	return nil
}
