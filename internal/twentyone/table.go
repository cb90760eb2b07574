package twentyone

import (
	"context"
	"errors"
	"fmt"
	"io"
	rand "math/rand/v2"
	"time"

	"github.com/charmbracelet/log"

	"github.com/lox/parlour/internal/config"
	"github.com/lox/parlour/internal/deck"
	"github.com/lox/parlour/internal/pace"
	"github.com/lox/parlour/internal/tournament"
)

// GameName identifies Twenty-One in snapshots and journals.
const GameName = "twentyone"

// Port is the presentation side of a table.
type Port interface {
	tournament.Port
	// PromptHitOrStay returns true for hit.
	PromptHitOrStay(player string) (bool, error)
}

// SeatView is one seat as the table shows it.
type SeatView struct {
	ID    string
	Kind  config.Kind
	Cards []deck.Card
	// HiddenLast is set while an automated seat's newest card is face down.
	HiddenLast bool
	// Value is only meaningful when HiddenLast is false.
	Value int
	Bust  bool
	State TurnState
}

// TableView is the game-specific part of a Twenty-One snapshot.
type TableView struct {
	HandLimit int
	Seats     []SeatView
	// Active is the seat whose turn it is, empty outside turns.
	Active string
	// Verdict is set on the round-over view.
	Verdict *Verdict
	// CardsRemaining in the current deck; DeckGenerations counts rebuilt decks.
	CardsRemaining  int
	DeckGenerations int
}

// TableOptions configures the parts of a table that do not affect outcomes.
type TableOptions struct {
	Pacer     *pace.Pacer
	Pacing    config.Pacing
	Observers []tournament.Renderer
	Logger    *log.Logger
}

// Table plays Twenty-One rounds for a fixed set of seats.
type Table struct {
	cfg    config.TwentyOne
	seats  []*Seat
	deck   *deck.Deck
	rng    *rand.Rand
	port   Port
	render tournament.Renderer
	pacer  *pace.Pacer
	pacing config.Pacing
	logger *log.Logger
}

var _ tournament.Game = (*Table)(nil)

// NewSeats builds the configured seats: humans decide through port, automated
// seats stay at the configured target.
func NewSeats(cfg config.TwentyOne, port Port) []*Seat {
	var seats []*Seat
	for _, p := range cfg.Seats() {
		var d Decider = ThresholdDecider{StayTarget: cfg.CPUStayTarget}
		if p.Kind == config.Human {
			d = HumanDecider{Port: port}
		}
		seats = append(seats, NewSeat(p, cfg.HandLimit, d))
	}
	return seats
}

// NewTable checks the seats and builds a table drawing from a deck shuffled with rng.
func NewTable(cfg config.TwentyOne, seats []*Seat, port Port, rng *rand.Rand, opts TableOptions) (*Table, error) {
	if len(seats) == 0 {
		return nil, errors.New("a table needs at least one seat")
	}
	seen := make(map[string]bool, len(seats))
	for _, s := range seats {
		if s.ID == "" {
			return nil, errors.New("seat ids cannot be empty")
		}
		if seen[s.ID] {
			return nil, fmt.Errorf("duplicate seat %q", s.ID)
		}
		if s.Decider == nil {
			return nil, fmt.Errorf("seat %q has no decider", s.ID)
		}
		seen[s.ID] = true
	}

	pacer := opts.Pacer
	if pacer == nil {
		pacer = pace.Disabled()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	return &Table{
		cfg:    cfg,
		seats:  seats,
		deck:   deck.NewDeck(rng),
		rng:    rng,
		port:   port,
		render: tournament.Tee(append([]tournament.Renderer{port}, opts.Observers...)...),
		pacer:  pacer,
		pacing: opts.Pacing,
		logger: logger.WithPrefix(GameName),
	}, nil
}

func (t *Table) Name() string { return GameName }

func (t *Table) Competitors() []string {
	ids := make([]string, len(t.seats))
	for i, s := range t.seats {
		ids[i] = s.ID
	}
	return ids
}

// Seats exposes the seats in turn order.
func (t *Table) Seats() []*Seat { return t.seats }

// Deck is the deck cards are currently drawn from.
func (t *Table) Deck() *deck.Deck { return t.deck }

// ResetTournament brings in a freshly shuffled deck and clears every hand.
func (t *Table) ResetTournament() error {
	t.deck = deck.NewDeck(t.rng)
	t.ResetRound()
	t.logger.Debug("New deck shuffled", "cards", t.deck.CardsRemaining())
	return nil
}

// PlayRound deals the opening cards round-robin, plays every seat's turn in
// order and resolves the round.
func (t *Table) PlayRound(ctx context.Context, round tournament.Round) (tournament.RoundOutcome, error) {
	t.render.Render(t.snapshot(round, tournament.PhaseRoundStart, t.view("", nil)))
	if err := t.pacer.Pause(ctx, t.pacing.Shuffle, "shuffle"); err != nil {
		return tournament.RoundOutcome{}, err
	}

	for range t.cfg.InitialDraw() {
		for _, s := range t.seats {
			if err := t.dealTo(ctx, round, s, "", t.pacing.Deal); err != nil {
				return tournament.RoundOutcome{}, err
			}
		}
	}

	for _, s := range t.seats {
		s.Reveal()
		t.render.Render(t.snapshot(round, tournament.PhaseTurn, t.view(s.ID, nil)))

		deal := func(ctx context.Context, seat *Seat) error {
			if err := t.pacer.Pause(ctx, t.pacing.Hit, "hit"); err != nil {
				return err
			}
			return t.dealTo(ctx, round, seat, seat.ID, t.pacing.Hit)
		}
		state, err := PlayTurn(ctx, s, deal, s.Decider)
		if err != nil {
			return tournament.RoundOutcome{}, fmt.Errorf("%s: turn: %w", s.ID, err)
		}
		t.logger.Debug("Turn over", "seat", s.ID, "state", state, "value", s.Hand.Value(), "cards", s.Hand.String())

		t.render.Render(t.snapshot(round, tournament.PhaseTurn, t.view(s.ID, nil)))
		pause, tag := t.pacing.Stay, "stay"
		if state == Bust {
			pause, tag = t.pacing.Bust, "bust"
		}
		if err := t.pacer.Pause(ctx, pause, tag); err != nil {
			return tournament.RoundOutcome{}, err
		}
	}

	verdict := ResolveRound(t.seats)
	t.logger.Info("Round resolved",
		"round", round.Number,
		"verdict", verdict.Kind,
		"winner", verdict.Winner,
		"value", verdict.Value,
		"generations", t.deck.Generations())

	var winner string
	switch verdict.Kind {
	case VerdictWinner:
		winner = verdict.Winner
	case VerdictTie, VerdictNoWinner:
	}
	return tournament.RoundOutcome{Winner: winner, View: t.view("", &verdict)}, nil
}

// ResetRound empties every hand and hides automated cards again.
func (t *Table) ResetRound() {
	for _, s := range t.seats {
		s.Reset()
	}
}

func (t *Table) dealTo(ctx context.Context, round tournament.Round, s *Seat, active string, pause time.Duration) error {
	s.Hand.Add(t.deck.Draw())
	t.render.Render(t.snapshot(round, tournament.PhaseTurn, t.view(active, nil)))
	return t.pacer.Pause(ctx, pause, "deal")
}

func (t *Table) view(active string, verdict *Verdict) TableView {
	v := TableView{
		HandLimit:       t.cfg.HandLimit,
		Active:          active,
		Verdict:         verdict,
		CardsRemaining:  t.deck.CardsRemaining(),
		DeckGenerations: t.deck.Generations(),
		Seats:           make([]SeatView, len(t.seats)),
	}
	for i, s := range t.seats {
		v.Seats[i] = SeatView{
			ID:         s.ID,
			Kind:       s.Kind,
			Cards:      s.Hand.Cards(),
			HiddenLast: !s.Revealed() && s.Hand.Len() >= t.cfg.InitialDraw(),
			Value:      s.Hand.Value(),
			Bust:       s.Hand.IsBust(),
			State:      s.State,
		}
	}
	return v
}

func (t *Table) snapshot(round tournament.Round, phase tournament.Phase, view TableView) tournament.Snapshot {
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
