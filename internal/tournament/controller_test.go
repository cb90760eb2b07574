package tournament

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/parlour/internal/config"
	"github.com/lox/parlour/internal/gameid"
	"github.com/lox/parlour/internal/randutil"
)

// scriptedGame credits winners from a fixed script, one per round.
type scriptedGame struct {
	ids        []string
	winners    []string
	next       int
	err        error
	rounds     []Round
	resets     int
	roundReset int
}

func (g *scriptedGame) Name() string          { return "scripted" }
func (g *scriptedGame) Competitors() []string { return g.ids }
func (g *scriptedGame) ResetRound()           { g.roundReset++ }

func (g *scriptedGame) ResetTournament() error {
	g.resets++
	return nil
}

func (g *scriptedGame) PlayRound(_ context.Context, round Round) (RoundOutcome, error) {
	g.rounds = append(g.rounds, round)
	if g.err != nil {
		return RoundOutcome{}, g.err
	}
	if g.next >= len(g.winners) {
		return RoundOutcome{}, errors.New("script exhausted")
	}
	w := g.winners[g.next]
	g.next++
	return RoundOutcome{Winner: w, View: w}, nil
}

// scriptedPort answers prompts from queues and records every snapshot.
type scriptedPort struct {
	answers    []bool
	prompts    []string
	thresholds []config.Threshold
	snapshots  []Snapshot
}

func (p *scriptedPort) Render(s Snapshot) { p.snapshots = append(p.snapshots, s) }

func (p *scriptedPort) PromptYesNo(prompt string) (bool, error) {
	p.prompts = append(p.prompts, prompt)
	if len(p.answers) == 0 {
		return false, errors.New("no scripted answer")
	}
	a := p.answers[0]
	p.answers = p.answers[1:]
	return a, nil
}

func (p *scriptedPort) PromptWinThreshold() (config.Threshold, error) {
	if len(p.thresholds) == 0 {
		return 0, errors.New("no scripted threshold")
	}
	t := p.thresholds[0]
	p.thresholds = p.thresholds[1:]
	return t, nil
}

func (p *scriptedPort) phases() []Phase {
	var out []Phase
	for _, s := range p.snapshots {
		out = append(out, s.Phase)
	}
	return out
}

type recorder struct{ snapshots []Snapshot }

func (r *recorder) Render(s Snapshot) { r.snapshots = append(r.snapshots, s) }

func newController(t *testing.T, game Game, port Port, opts Options) *Controller {
	t.Helper()
	opts.Logger = log.New(io.Discard)
	opts.IDs = gameid.NewGenerator(randutil.New(1))
	c, err := NewController(game, port, opts)
	require.NoError(t, err)
	return c
}

func TestTournamentEndsWhenThresholdReached(t *testing.T) {
	game := &scriptedGame{ids: []string{"alice", "bob"}, winners: []string{"alice", "", "bob", "alice"}}
	port := &scriptedPort{answers: []bool{false}}
	c := newController(t, game, port, Options{Threshold: 2})

	summaries, err := c.Run(context.Background())
	require.NoError(t, err)
	require.Len(t, summaries, 1)

	s := summaries[0]
	assert.Equal(t, "alice", s.Winner)
	assert.Equal(t, 4, s.Rounds)
	assert.Equal(t, []Standing{{ID: "alice", Score: 2}, {ID: "bob", Score: 1}}, s.Standings)
	require.NoError(t, gameid.Validate(s.TournamentID))

	assert.Equal(t, 4, game.roundReset)
	assert.Equal(t, []Phase{
		PhaseTournamentStart,
		PhaseRoundOver, PhaseRoundOver, PhaseRoundOver, PhaseRoundOver,
		PhaseTournamentOver,
	}, port.phases())

	last := port.snapshots[len(port.snapshots)-1]
	assert.Equal(t, "alice", last.Winner)
	assert.Equal(t, []string{"Would you like to play another tournament?"}, port.prompts)
}

func TestRoundSeesStandingsGoingIn(t *testing.T) {
	game := &scriptedGame{ids: []string{"a", "b"}, winners: []string{"a", "b", "b"}}
	port := &scriptedPort{answers: []bool{false}}
	c := newController(t, game, port, Options{Threshold: 2})

	_, err := c.Run(context.Background())
	require.NoError(t, err)

	require.Len(t, game.rounds, 3)
	assert.Equal(t, 1, game.rounds[0].Number)
	assert.Equal(t, []Standing{{ID: "a", Score: 1}, {ID: "b", Score: 1}}, game.rounds[2].Standings)
	assert.Equal(t, game.rounds[0].TournamentID, game.rounds[2].TournamentID)
}

func TestReplayResetsScores(t *testing.T) {
	game := &scriptedGame{ids: []string{"a", "b"}, winners: []string{"a", "a", "b", "b"}}
	port := &scriptedPort{answers: []bool{true, false}}
	c := newController(t, game, port, Options{Threshold: 2})

	summaries, err := c.Run(context.Background())
	require.NoError(t, err)
	require.Len(t, summaries, 2)

	assert.Equal(t, "a", summaries[0].Winner)
	assert.Equal(t, "b", summaries[1].Winner)
	assert.Equal(t, []Standing{{ID: "a", Score: 0}, {ID: "b", Score: 2}}, summaries[1].Standings)
	assert.Equal(t, 2, game.resets)
	assert.NotEqual(t, summaries[0].TournamentID, summaries[1].TournamentID)

	var starts []Snapshot
	for _, s := range port.snapshots {
		if s.Phase == PhaseTournamentStart {
			starts = append(starts, s)
		}
	}
	require.Len(t, starts, 2)
	assert.Equal(t, []Standing{{ID: "a", Score: 0}, {ID: "b", Score: 0}}, starts[1].Standings)
}

func TestAskThresholdEachTournament(t *testing.T) {
	game := &scriptedGame{ids: []string{"a", "b"}, winners: []string{"b", "a", "a", "a"}}
	port := &scriptedPort{
		answers:    []bool{true, false},
		thresholds: []config.Threshold{1, 3},
	}
	c := newController(t, game, port, Options{AskThreshold: true})

	summaries, err := c.Run(context.Background())
	require.NoError(t, err)
	require.Len(t, summaries, 2)
	assert.Equal(t, "b", summaries[0].Winner)
	assert.Equal(t, 1, summaries[0].Rounds)
	assert.Equal(t, "a", summaries[1].Winner)
	assert.Equal(t, 3, summaries[1].Rounds)
	assert.Equal(t, config.Threshold(3), c.Scoreboard().Threshold())
}

func TestUnlimitedTournamentStopsOnRequest(t *testing.T) {
	game := &scriptedGame{ids: []string{"a", "b"}, winners: []string{"a", "a", "a"}}
	port := &scriptedPort{answers: []bool{true, true, false, false}}
	c := newController(t, game, port, Options{Threshold: config.Unlimited})

	summaries, err := c.Run(context.Background())
	require.NoError(t, err)
	require.Len(t, summaries, 1)
	assert.Empty(t, summaries[0].Winner)
	assert.Equal(t, 3, summaries[0].Rounds)
	assert.Equal(t, 3, c.Scoreboard().Score("a"))
}

func TestObserversSeeEverySnapshot(t *testing.T) {
	game := &scriptedGame{ids: []string{"a", "b"}, winners: []string{"a"}}
	port := &scriptedPort{answers: []bool{false}}
	rec := &recorder{}
	c := newController(t, game, port, Options{Threshold: 1, Observers: []Renderer{rec}})

	_, err := c.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, port.snapshots, rec.snapshots)
}

func TestRoundErrorStopsTournament(t *testing.T) {
	boom := errors.New("boom")
	game := &scriptedGame{ids: []string{"a", "b"}, err: boom}
	c := newController(t, game, &scriptedPort{}, Options{Threshold: 1})

	_, err := c.Run(context.Background())
	require.ErrorIs(t, err, boom)
}

func TestUnknownWinnerIsAnError(t *testing.T) {
	game := &scriptedGame{ids: []string{"a", "b"}, winners: []string{"zed"}}
	c := newController(t, game, &scriptedPort{}, Options{Threshold: 1})

	_, err := c.Run(context.Background())
	assert.ErrorContains(t, err, "unknown competitor")
}

func TestCancelledContextStopsBeforeNextRound(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	game := &scriptedGame{ids: []string{"a", "b"}, winners: []string{"a"}}
	c := newController(t, game, &scriptedPort{}, Options{Threshold: 1})

	_, err := c.Run(ctx)
	require.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, game.rounds)
}

func TestNewControllerRejectsBadThreshold(t *testing.T) {
	game := &scriptedGame{ids: []string{"a", "b"}}
	_, err := NewController(game, &scriptedPort{}, Options{Threshold: 0})
	var cfgErr *config.ConfigurationError
	assert.ErrorAs(t, err, &cfgErr)
}
