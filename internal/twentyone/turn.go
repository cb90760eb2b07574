package twentyone

import (
	"context"
	"errors"

	"github.com/lox/parlour/internal/config"
)

// TurnState is where a seat's turn stands.
type TurnState int

const (
	AwaitingDecision TurnState = iota
	Standing
	Bust
)

func (s TurnState) String() string {
	switch s {
	case Standing:
		return "standing"
	case Bust:
		return "bust"
	default:
		return "awaiting_decision"
	}
}

// Seat is one competitor at the table.
type Seat struct {
	ID      string
	Kind    config.Kind
	Hand    *Hand
	Decider Decider
	State   TurnState
	// revealed is set once the seat's turn starts; automated seats keep their
	// newest card face down until then.
	revealed bool
}

// NewSeat returns a seat with an empty hand.
func NewSeat(p config.Player, limit int, decider Decider) *Seat {
	return &Seat{
		ID:      p.Name,
		Kind:    p.Kind,
		Hand:    NewHand(limit),
		Decider: decider,
	}
}

// Revealed reports whether every card of this seat is face up.
func (s *Seat) Revealed() bool {
	return s.revealed || s.Kind == config.Human
}

// Reveal turns the seat's newest card face up.
func (s *Seat) Reveal() {
	s.revealed = true
}

// Reset clears the hand and hides the newest card again.
func (s *Seat) Reset() {
	s.Hand.Reset()
	s.State = AwaitingDecision
	s.revealed = false
}

// Decider chooses between hitting (true) and staying (false).
type Decider interface {
	Hit(seat *Seat) (bool, error)
}

// HumanDecider asks the port.
type HumanDecider struct {
	Port Port
}

func (d HumanDecider) Hit(seat *Seat) (bool, error) {
	return d.Port.PromptHitOrStay(seat.ID)
}

// ThresholdDecider hits while the hand is below StayTarget.
type ThresholdDecider struct {
	StayTarget int
}

func (d ThresholdDecider) Hit(seat *Seat) (bool, error) {
	return seat.Hand.Value() < d.StayTarget, nil
}

// DealFunc gives seat one more card.
type DealFunc func(ctx context.Context, seat *Seat) error

// PlayTurn reveals the seat's cards and loops hit-or-stay until the seat
// stands or goes bust. A bust hand never reaches the decider.
func PlayTurn(ctx context.Context, seat *Seat, deal DealFunc, decider Decider) (TurnState, error) {
	if decider == nil {
		return AwaitingDecision, errors.New("seat has no decider")
	}
	seat.Reveal()
	seat.State = AwaitingDecision

	for seat.State == AwaitingDecision {
		if seat.Hand.IsBust() {
			seat.State = Bust
			break
		}

		hit, err := decider.Hit(seat)
		if err != nil {
			return seat.State, err
		}
		if !hit {
			seat.State = Standing
			break
		}

		if err := deal(ctx, seat); err != nil {
			return seat.State, err
		}
	}
	return seat.State, nil
}
