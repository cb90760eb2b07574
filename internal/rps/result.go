package rps

import "fmt"

// Play is one competitor's move in a round.
type Play struct {
	ID   string
	Move Move
}

// Outcome is the result of resolving two plays. The zero value is
// OutcomeInvalid so an unset result never reads as a tie.
type Outcome int

const (
	OutcomeInvalid Outcome = iota
	OutcomeTie
	OutcomeAWins
	OutcomeBWins
)

func (o Outcome) String() string {
	switch o {
	case OutcomeTie:
		return "tie"
	case OutcomeAWins:
		return "a_wins"
	case OutcomeBWins:
		return "b_wins"
	default:
		return "invalid"
	}
}

// RoundResult is the resolved pair of plays.
type RoundResult struct {
	A, B    Play
	Outcome Outcome
}

// Winner returns the winning competitor id, or false on a tie or invalid round.
func (r RoundResult) Winner() (string, bool) {
	switch r.Outcome {
	case OutcomeAWins:
		return r.A.ID, true
	case OutcomeBWins:
		return r.B.ID, true
	default:
		return "", false
	}
}

// ResultFor reports how the round went for competitor id.
func (r RoundResult) ResultFor(id string) (Result, error) {
	if r.Outcome == OutcomeInvalid {
		return 0, fmt.Errorf("%w: %q vs %q", ErrInvalidMove, r.A.Move, r.B.Move)
	}
	if id != r.A.ID && id != r.B.ID {
		return 0, fmt.Errorf("competitor %q did not play this round", id)
	}
	if r.Outcome == OutcomeTie {
		return Tied, nil
	}
	if winner, _ := r.Winner(); winner == id {
		return Won, nil
	}
	return Lost, nil
}

// MoveOf returns the move competitor id played.
func (r RoundResult) MoveOf(id string) (Move, bool) {
	switch id {
	case r.A.ID:
		return r.A.Move, true
	case r.B.ID:
		return r.B.Move, true
	default:
		return "", false
	}
}
