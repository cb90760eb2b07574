// Package simulator plays CPU-only tournaments in bulk, in parallel, and
// aggregates how they went.
package simulator

import (
	"context"
	"errors"
	"fmt"
	"io"
	"runtime"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/lox/parlour/internal/config"
	"github.com/lox/parlour/internal/gameid"
	"github.com/lox/parlour/internal/randutil"
	"github.com/lox/parlour/internal/rps"
	"github.com/lox/parlour/internal/statistics"
	"github.com/lox/parlour/internal/tournament"
	"github.com/lox/parlour/internal/twentyone"
)

// Config holds configuration for running simulations
type Config struct {
	Game        string // rps or twentyone
	Tournaments int
	Workers     int
	Seed        int64
	Timeout     time.Duration // per tournament, zero for none
	Settings    config.Config
	Logger      *log.Logger
}

// Simulator runs CPU-only tournaments
type Simulator struct {
	config Config
}

// New creates a new simulator with the given configuration
func New(config Config) *Simulator {
	if config.Logger == nil {
		config.Logger = log.New(io.Discard)
	}
	if config.Workers <= 0 {
		config.Workers = min(runtime.NumCPU(), 8)
	}
	return &Simulator{config: config}
}

// Run plays every tournament and aggregates the results. Tournament i is
// seeded from Seed+i and results are added in index order, so the outcome
// depends only on the seed, never on the number of workers.
func (s *Simulator) Run(ctx context.Context) (*statistics.Statistics, error) {
	if s.config.Tournaments <= 0 {
		return nil, fmt.Errorf("invalid tournament count: %d", s.config.Tournaments)
	}
	ids, err := s.competitors()
	if err != nil {
		return nil, err
	}

	results := make([]statistics.TournamentResult, s.config.Tournaments)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.config.Workers)
	for i := range results {
		seed := s.config.Seed + int64(i)
		g.Go(func() error {
			result, err := s.playTournament(ctx, seed)
			if err != nil {
				return fmt.Errorf("tournament %d (seed %d): %w", i+1, seed, err)
			}
			results[i] = result
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	stats := &statistics.Statistics{}
	stats.Register(ids...)
	for _, r := range results {
		stats.Add(r)
	}
	if err := stats.Validate(); err != nil {
		return nil, fmt.Errorf("statistics validation failed: %w", err)
	}

	s.config.Logger.Info("Simulation complete",
		"game", s.config.Game,
		"tournaments", stats.Tournaments,
		"workers", s.config.Workers,
		"mean_rounds", stats.Mean())
	return stats, nil
}

func (s *Simulator) competitors() ([]string, error) {
	switch s.config.Game {
	case rps.GameName:
		if s.config.Settings.RPS.Threshold.IsUnlimited() {
			return nil, errors.New("simulated tournaments need a finite threshold")
		}
		var ids []string
		for _, p := range rpsPlayers(s.config.Settings.RPS) {
			ids = append(ids, p.Name)
		}
		return ids, nil
	case twentyone.GameName:
		cfg := tableConfig(s.config.Settings.TwentyOne)
		if cfg.Threshold.IsUnlimited() {
			return nil, errors.New("simulated tournaments need a finite threshold")
		}
		if err := cfg.Validate(); err != nil {
			return nil, err
		}
		var ids []string
		for _, p := range cfg.Seats() {
			ids = append(ids, p.Name)
		}
		return ids, nil
	default:
		return nil, fmt.Errorf("unknown game %q", s.config.Game)
	}
}

// playTournament builds a fresh engine with its own rng and plays one tournament
func (s *Simulator) playTournament(ctx context.Context, seed int64) (statistics.TournamentResult, error) {
	if s.config.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.config.Timeout)
		defer cancel()
	}

	rng := randutil.New(seed)
	logger := s.config.Logger.With("seed", seed)
	port := autoPort{}

	var (
		game      tournament.Game
		threshold config.Threshold
	)
	switch s.config.Game {
	case rps.GameName:
		cfg := s.config.Settings.RPS
		m, err := rps.NewMatch(cfg, rps.NewCompetitors(rpsPlayers(cfg), port, rng), port, rps.MatchOptions{Logger: logger})
		if err != nil {
			return statistics.TournamentResult{}, err
		}
		game, threshold = m, cfg.Threshold
	case twentyone.GameName:
		cfg := tableConfig(s.config.Settings.TwentyOne)
		t, err := twentyone.NewTable(cfg, twentyone.NewSeats(cfg, port), port, rng, twentyone.TableOptions{Logger: logger})
		if err != nil {
			return statistics.TournamentResult{}, err
		}
		game, threshold = t, cfg.Threshold
	default:
		return statistics.TournamentResult{}, fmt.Errorf("unknown game %q", s.config.Game)
	}

	c, err := tournament.NewController(game, port, tournament.Options{
		Threshold: threshold,
		IDs:       gameid.NewGenerator(rng),
		Logger:    logger,
	})
	if err != nil {
		return statistics.TournamentResult{}, err
	}

	summary, err := c.PlayTournament(ctx)
	if err != nil {
		return statistics.TournamentResult{}, err
	}

	credited := 0
	for _, st := range summary.Standings {
		credited += st.Score
	}
	return statistics.TournamentResult{
		Seed:      seed,
		Winner:    summary.Winner,
		Rounds:    summary.Rounds,
		Undecided: summary.Rounds - credited,
	}, nil
}

// rpsPlayers keeps configured players when they are all automated, otherwise two robots.
func rpsPlayers(cfg config.RPS) []config.Player {
	if len(cfg.Players) == 2 && cfg.Players[0].Kind == config.Automated && cfg.Players[1].Kind == config.Automated {
		return cfg.Players
	}
	return []config.Player{
		{Name: "Robot 1", Kind: config.Automated},
		{Name: "Robot 2", Kind: config.Automated},
	}
}

// tableConfig turns every seat automated.
func tableConfig(cfg config.TwentyOne) config.TwentyOne {
	cfg.CPUs += cfg.Humans
	cfg.Humans = 0
	return cfg
}

// autoPort stands in for the console: nothing is shown and no human is ever asked.
type autoPort struct{}

var errNoHuman = errors.New("simulated tournaments have no human players")

func (autoPort) Render(tournament.Snapshot) {}

// PromptYesNo declines, which turns Lizard/Spock off when it is set to ask.
func (autoPort) PromptYesNo(string) (bool, error) { return false, nil }

func (autoPort) PromptWinThreshold() (config.Threshold, error) { return 0, errNoHuman }

func (autoPort) PromptMove(string, []rps.Choice) (rps.Move, error) { return "", errNoHuman }

func (autoPort) PromptHitOrStay(string) (bool, error) { return false, errNoHuman }

// WriteSummary prints a summary of simulation results
func WriteSummary(w io.Writer, stats *statistics.Statistics, game string) {
	low, high := stats.ConfidenceInterval95()

	fmt.Fprintf(w, "\n=== FINAL RESULTS: %s ===\n", game)
	fmt.Fprintf(w, "Tournaments played: %d\n", stats.Tournaments)

	fmt.Fprintf(w, "\n=== ROUNDS PER TOURNAMENT ===\n")
	fmt.Fprintf(w, "Mean: %.3f\n", stats.Mean())
	fmt.Fprintf(w, "Median: %.1f\n", stats.Median())
	fmt.Fprintf(w, "Std Dev: %.3f\n", stats.StdDev())
	fmt.Fprintf(w, "95%% CI: [%.3f, %.3f]\n", low, high)
	fmt.Fprintf(w, "Percentiles: P5=%.1f, P25=%.1f, P75=%.1f, P95=%.1f\n",
		stats.Percentile(0.05), stats.Percentile(0.25), stats.Percentile(0.75), stats.Percentile(0.95))
	fmt.Fprintf(w, "Longest: %d rounds\n", stats.MaxRounds)
	if stats.AllRounds > 0 {
		fmt.Fprintf(w, "Undecided rounds: %d (%.1f%%)\n",
			stats.Undecided, float64(stats.Undecided)/float64(stats.AllRounds)*100)
	}

	fmt.Fprintf(w, "\n=== WINS ===\n")
	for _, id := range stats.Order() {
		c := stats.Competitors[id]
		fmt.Fprintf(w, "%s: %d (%.1f%%)\n", id, c.Wins, stats.WinRate(id)*100)
	}
}
