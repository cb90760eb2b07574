package rps

import (
	"context"
	"errors"
	"fmt"
	"io"
	rand "math/rand/v2"

	"github.com/charmbracelet/log"

	"github.com/lox/parlour/internal/config"
	"github.com/lox/parlour/internal/pace"
	"github.com/lox/parlour/internal/randutil"
	"github.com/lox/parlour/internal/tournament"
)

// GameName identifies Rock-Paper-Scissors in snapshots and journals.
const GameName = "rps"

// Port is the presentation side of a match.
type Port interface {
	tournament.Port
	// PromptMove asks a human for one of choices.
	PromptMove(player string, choices []Choice) (Move, error)
}

// HumanChooser asks the port for a move.
type HumanChooser struct {
	Port Port
}

func (h HumanChooser) ChooseMove(mc MoveContext) (Decision, error) {
	m, err := h.Port.PromptMove(mc.Self, mc.Rules.Choices())
	if err != nil {
		return Decision{}, err
	}
	return Decision{Move: m, Reason: ReasonHuman}, nil
}

// Competitor is one side of a match.
type Competitor struct {
	ID      string
	Kind    config.Kind
	Chooser Chooser
}

// NewCompetitors seats players: humans choose through port, automated players
// each get a Strategy with its own stream derived from rng.
func NewCompetitors(players []config.Player, port Port, rng *rand.Rand) []Competitor {
	out := make([]Competitor, 0, len(players))
	for _, p := range players {
		c := Competitor{ID: p.Name, Kind: p.Kind}
		if p.Kind == config.Automated {
			c.Chooser = NewStrategy(randutil.New(randutil.Derive(rng)))
		} else {
			c.Chooser = HumanChooser{Port: port}
		}
		out = append(out, c)
	}
	return out
}

// TurnView is rendered while an automated competitor is thinking.
type TurnView struct {
	Player string
}

// RoundView is the game-specific part of an RPS snapshot.
type RoundView struct {
	Players [2]string
	Rules   *Rules
	// Resolved is false on round start, before anyone has moved.
	Resolved  bool
	Result    RoundResult
	Decisions [2]Decision
	// History lists earlier rounds newest first, including this one once resolved.
	History []RoundResult
}

// MatchOptions configures the parts of a match that do not affect outcomes.
type MatchOptions struct {
	Pacer     *pace.Pacer
	Pacing    config.Pacing
	Observers []tournament.Renderer
	Logger    *log.Logger
}

// Match plays Rock-Paper-Scissors rounds between exactly two competitors.
type Match struct {
	cfg         config.RPS
	competitors [2]Competitor
	port        Port
	render      tournament.Renderer
	rules       *Rules
	history     *History
	decisions   [2]Decision
	pacer       *pace.Pacer
	pacing      config.Pacing
	logger      *log.Logger
}

var _ tournament.Game = (*Match)(nil)

// NewMatch checks the competitors and builds a match with the classic rules.
// The rule set is chosen again by ResetTournament.
func NewMatch(cfg config.RPS, competitors []Competitor, port Port, opts MatchOptions) (*Match, error) {
	if len(competitors) != 2 {
		return nil, fmt.Errorf("a match needs exactly two competitors, got %d", len(competitors))
	}
	a, b := competitors[0], competitors[1]
	if a.ID == "" || b.ID == "" {
		return nil, errors.New("competitor ids cannot be empty")
	}
	if a.ID == b.ID {
		return nil, fmt.Errorf("duplicate competitor %q", a.ID)
	}
	for _, c := range competitors {
		if c.Chooser == nil {
			return nil, fmt.Errorf("competitor %q has no chooser", c.ID)
		}
	}

	pacer := opts.Pacer
	if pacer == nil {
		pacer = pace.Disabled()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	rules := Classic()
	if cfg.LizardSpock == config.LizardSpockOn {
		rules = rules.WithLizardSpock()
	}

	return &Match{
		cfg:         cfg,
		competitors: [2]Competitor{a, b},
		port:        port,
		render:      tournament.Tee(append([]tournament.Renderer{port}, opts.Observers...)...),
		rules:       rules,
		history:     NewHistory(a.ID, b.ID),
		pacer:       pacer,
		pacing:      opts.Pacing,
		logger:      logger.WithPrefix(GameName),
	}, nil
}

func (m *Match) Name() string { return GameName }

func (m *Match) Competitors() []string {
	return []string{m.competitors[0].ID, m.competitors[1].ID}
}

// Rules returns the rule set in play.
func (m *Match) Rules() *Rules { return m.rules }

// History returns the moves of the current tournament.
func (m *Match) History() *History { return m.history }

// ResetTournament clears the move history and picks the rule set, asking the
// port when Lizard/Spock is set to ask.
func (m *Match) ResetTournament() error {
	m.history.Reset()

	extended := m.cfg.LizardSpock == config.LizardSpockOn
	if m.cfg.LizardSpock == config.LizardSpockAsk {
		yes, err := m.port.PromptYesNo("Would you like to add Lizard/Spock rules?")
		if err != nil {
			return fmt.Errorf("lizard/spock prompt: %w", err)
		}
		extended = yes
	}

	m.rules = Classic()
	if extended {
		m.rules = m.rules.WithLizardSpock()
	}
	m.logger.Debug("Rules chosen", "moves", m.rules.Moves())
	return nil
}

// PlayRound collects a move from each competitor, resolves them and records
// the result. An invalid move fails the round before history changes.
func (m *Match) PlayRound(ctx context.Context, round tournament.Round) (tournament.RoundOutcome, error) {
	m.render.Render(m.snapshot(round, tournament.PhaseRoundStart, m.view()))

	var plays [2]Play
	for i, c := range m.competitors {
		if c.Kind == config.Automated {
			m.render.Render(m.snapshot(round, tournament.PhaseTurn, TurnView{Player: c.ID}))
			if err := m.pacer.Pause(ctx, m.pacing.CPUThink, "cpu_think"); err != nil {
				return tournament.RoundOutcome{}, err
			}
		}

		d, err := c.Chooser.ChooseMove(MoveContext{
			Self:     c.ID,
			Opponent: m.competitors[1-i].ID,
			Rules:    m.rules,
			History:  m.history,
		})
		if err != nil {
			return tournament.RoundOutcome{}, fmt.Errorf("%s: choose move: %w", c.ID, err)
		}
		m.logger.Debug("Move chosen", "player", c.ID, "move", d.Move, "reason", d.Reason)
		m.decisions[i] = d
		plays[i] = Play{ID: c.ID, Move: d.Move}
	}

	if err := m.pacer.Pause(ctx, m.pacing.Reveal, "reveal"); err != nil {
		return tournament.RoundOutcome{}, err
	}

	result := m.rules.Resolve(plays[0], plays[1])
	var winner string
	switch result.Outcome {
	case OutcomeInvalid:
		return tournament.RoundOutcome{}, fmt.Errorf("%w: %s played %q, %s played %q",
			ErrInvalidMove, plays[0].ID, plays[0].Move, plays[1].ID, plays[1].Move)
	case OutcomeTie:
	case OutcomeAWins, OutcomeBWins:
		winner, _ = result.Winner()
	}

	if err := m.history.Record(result); err != nil {
		return tournament.RoundOutcome{}, err
	}
	m.logger.Info("Round resolved",
		"round", round.Number,
		"a", plays[0].ID, "a_move", plays[0].Move,
		"b", plays[1].ID, "b_move", plays[1].Move,
		"outcome", result.Outcome)

	view := m.view()
	view.Resolved = true
	view.Result = result
	return tournament.RoundOutcome{Winner: winner, View: view}, nil
}

// ResetRound forgets the decisions of the round just played.
func (m *Match) ResetRound() {
	m.decisions = [2]Decision{}
}

func (m *Match) view() RoundView {
	return RoundView{
		Players:   [2]string{m.competitors[0].ID, m.competitors[1].ID},
		Rules:     m.rules,
		Decisions: m.decisions,
		History:   m.history.Rounds(),
	}
}

func (m *Match) snapshot(round tournament.Round, phase tournament.Phase, view any) tournament.Snapshot {
	return tournament.Snapshot{
		Game:         GameName,
		TournamentID: round.TournamentID,
		Round:        round.Number,
		Phase:        phase,
		Threshold:    round.Threshold,
		Standings:    round.Standings,
		View:         view,
	}
}
