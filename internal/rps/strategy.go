package rps

import (
	"errors"
	"fmt"
	rand "math/rand/v2"
)

// Reason records which branch of the policy produced a move.
type Reason int

const (
	ReasonRandom Reason = iota
	// ReasonCounterOpponent: the opponent just won, so play something that beats their move.
	ReasonCounterOpponent
	// ReasonDoubleCounter: we won the last two rounds, so expect the opponent
	// to counter our move and counter that instead.
	ReasonDoubleCounter
	ReasonHuman
)

func (r Reason) String() string {
	switch r {
	case ReasonCounterOpponent:
		return "counter_opponent"
	case ReasonDoubleCounter:
		return "double_counter"
	case ReasonHuman:
		return "human"
	default:
		return "random"
	}
}

// Decision is a chosen move and why it was chosen.
type Decision struct {
	Move   Move
	Reason Reason
}

// MoveContext is everything a chooser may look at.
type MoveContext struct {
	Self     string
	Opponent string
	Rules    *Rules
	History  *History
}

// Chooser picks a move for one competitor.
type Chooser interface {
	ChooseMove(MoveContext) (Decision, error)
}

// Strategy is the automated opponent. Given the same rng state and history it
// always picks the same move.
type Strategy struct {
	rng *rand.Rand
}

// NewStrategy returns a strategy drawing from rng.
func NewStrategy(rng *rand.Rand) *Strategy {
	return &Strategy{rng: rng}
}

// ChooseMove applies the policy in priority order: counter an opponent who
// just won, double-counter after two own wins in a row, otherwise play at random.
func (s *Strategy) ChooseMove(mc MoveContext) (Decision, error) {
	if mc.Rules == nil {
		return Decision{}, errors.New("no rules")
	}

	if mc.History != nil {
		if last, ok := mc.History.Last(mc.Opponent); ok && last.Result == Won {
			if m, ok := s.pick(mc.Rules.BeatersOf(last.Move)); ok {
				return Decision{Move: m, Reason: ReasonCounterOpponent}, nil
			}
		}

		if mine := mc.History.Recent(mc.Self, 2); len(mine) == 2 && mine[0].Result == Won && mine[1].Result == Won {
			if x, ok := s.pick(mc.Rules.BeatersOf(mine[0].Move)); ok {
				if m, ok := s.pick(mc.Rules.BeatersOf(x)); ok {
					return Decision{Move: m, Reason: ReasonDoubleCounter}, nil
				}
			}
		}
	}

	m, ok := s.pick(mc.Rules.Moves())
	if !ok {
		return Decision{}, fmt.Errorf("%w: rules offer no moves", ErrInvalidRules)
	}
	return Decision{Move: m, Reason: ReasonRandom}, nil
}

func (s *Strategy) pick(moves []Move) (Move, bool) {
	if len(moves) == 0 {
		return "", false
	}
	return moves[s.rng.IntN(len(moves))], true
}
