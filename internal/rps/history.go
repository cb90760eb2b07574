package rps

import (
	"errors"
	"fmt"
	"slices"
)

// ErrInvalidMove is returned when a round contains a move outside the active rules.
var ErrInvalidMove = errors.New("invalid move")

// Result is how a round went from one competitor's point of view.
type Result int

const (
	Won Result = iota + 1
	Lost
	Tied
)

func (r Result) String() string {
	switch r {
	case Won:
		return "won"
	case Lost:
		return "lost"
	case Tied:
		return "tied"
	default:
		return "unknown"
	}
}

// Entry is one competitor's move in a round and how it went.
type Entry struct {
	Move   Move
	Result Result
}

// History keeps both competitors' entries index-aligned: entry i of each
// competitor belongs to round i of the tournament.
type History struct {
	ids     [2]string
	entries map[string][]Entry
	rounds  []RoundResult
}

// NewHistory starts an empty history for two competitors.
func NewHistory(a, b string) *History {
	return &History{
		ids:     [2]string{a, b},
		entries: map[string][]Entry{a: nil, b: nil},
	}
}

// Record appends a resolved round. Invalid rounds and rounds between other
// competitors are rejected without changing the history.
func (h *History) Record(r RoundResult) error {
	if r.Outcome == OutcomeInvalid {
		return fmt.Errorf("%w: %s played %q, %s played %q", ErrInvalidMove, r.A.ID, r.A.Move, r.B.ID, r.B.Move)
	}

	recorded := make(map[string]Entry, 2)
	for _, id := range h.ids {
		move, ok := r.MoveOf(id)
		if !ok {
			return fmt.Errorf("round between %q and %q does not involve %q", r.A.ID, r.B.ID, id)
		}
		result, err := r.ResultFor(id)
		if err != nil {
			return err
		}
		recorded[id] = Entry{Move: move, Result: result}
	}

	for id, e := range recorded {
		h.entries[id] = append(h.entries[id], e)
	}
	h.rounds = append(h.rounds, r)
	return nil
}

// Len is the number of recorded rounds.
func (h *History) Len() int {
	return len(h.rounds)
}

// Last returns the most recent entry for id.
func (h *History) Last(id string) (Entry, bool) {
	e := h.entries[id]
	if len(e) == 0 {
		return Entry{}, false
	}
	return e[len(e)-1], true
}

// Recent returns up to n entries for id, newest first.
func (h *History) Recent(id string, n int) []Entry {
	e := h.entries[id]
	if n > len(e) {
		n = len(e)
	}
	out := slices.Clone(e[len(e)-n:])
	slices.Reverse(out)
	return out
}

// Rounds returns every recorded round, newest first.
func (h *History) Rounds() []RoundResult {
	out := slices.Clone(h.rounds)
	slices.Reverse(out)
	return out
}

// Opponent returns the other competitor's id.
func (h *History) Opponent(id string) (string, bool) {
	switch id {
	case h.ids[0]:
		return h.ids[1], true
	case h.ids[1]:
		return h.ids[0], true
	default:
		return "", false
	}
}

// Reset forgets every round.
func (h *History) Reset() {
	for _, id := range h.ids {
		h.entries[id] = nil
	}
	h.rounds = nil
}
