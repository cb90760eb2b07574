// Package rps implements Rock-Paper-Scissors and its Lizard/Spock extension:
// the beats relation, round resolution, per-competitor history and the
// automated opponent.
package rps

import (
	"errors"
	"fmt"
	"slices"
)

// Move is a gesture token such as "rock".
type Move string

const (
	Rock     Move = "rock"
	Paper    Move = "paper"
	Scissors Move = "scissors"
	Lizard   Move = "lizard"
	Spock    Move = "spock"
)

func (m Move) String() string {
	return string(m)
}

// ErrInvalidRules is returned when a beats relation is not a tournament graph.
var ErrInvalidRules = errors.New("invalid rules")

// Rule declares one move: the key a human presses for it and the moves it beats.
type Rule struct {
	Move  Move
	Key   rune
	Beats []Move
}

// Choice is a move offered to a human together with its keystroke.
type Choice struct {
	Move Move
	Key  rune
}

// Rules is an ordered move set with a directed beats relation. Every move
// beats exactly half of the others and loses to the rest, so any two distinct
// moves resolve to a single winner. Rules is immutable after construction.
type Rules struct {
	order []Move
	keys  map[Move]rune
	beats map[Move]map[Move]bool
}

var (
	classicRules = []Rule{
		{Move: Rock, Key: 'r', Beats: []Move{Scissors}},
		{Move: Paper, Key: 'p', Beats: []Move{Rock}},
		{Move: Scissors, Key: 's', Beats: []Move{Paper}},
	}

	lizardSpockRules = []Rule{
		{Move: Rock, Beats: []Move{Lizard}},
		{Move: Paper, Beats: []Move{Spock}},
		{Move: Scissors, Beats: []Move{Lizard}},
		{Move: Lizard, Key: 'l', Beats: []Move{Paper, Spock}},
		{Move: Spock, Key: 'o', Beats: []Move{Rock, Scissors}},
	}
)

// NewRules builds and validates a rule table. Moves keep the order they are declared in.
func NewRules(rules ...Rule) (*Rules, error) {
	r := &Rules{
		keys:  make(map[Move]rune, len(rules)),
		beats: make(map[Move]map[Move]bool, len(rules)),
	}
	for _, rule := range rules {
		if rule.Move == "" {
			return nil, fmt.Errorf("%w: empty move", ErrInvalidRules)
		}
		if _, dup := r.beats[rule.Move]; dup {
			return nil, fmt.Errorf("%w: duplicate move %q", ErrInvalidRules, rule.Move)
		}
		r.order = append(r.order, rule.Move)
		r.keys[rule.Move] = rule.Key
		r.beats[rule.Move] = make(map[Move]bool, len(rule.Beats))
	}
	for _, rule := range rules {
		for _, target := range rule.Beats {
			r.beats[rule.Move][target] = true
		}
	}
	if err := r.validate(); err != nil {
		return nil, err
	}
	return r, nil
}

// Classic returns rock, paper and scissors.
func Classic() *Rules {
	return mustRules(classicRules)
}

// WithLizardSpock returns a copy of r extended with lizard and spock. It panics
// if the extended relation is not a valid rule table.
func (r *Rules) WithLizardSpock() *Rules {
	return mustRules(r.extend(lizardSpockRules))
}

// extend merges extra into r's declarations. Moves already present keep their
// key and gain the extra targets; new moves are appended.
func (r *Rules) extend(extra []Rule) []Rule {
	merged := make([]Rule, 0, len(r.order)+len(extra))
	index := make(map[Move]int, len(r.order)+len(extra))
	for _, m := range r.order {
		index[m] = len(merged)
		merged = append(merged, Rule{Move: m, Key: r.keys[m], Beats: r.Defeats(m)})
	}
	for _, e := range extra {
		i, ok := index[e.Move]
		if !ok {
			index[e.Move] = len(merged)
			merged = append(merged, Rule{Move: e.Move, Key: e.Key, Beats: slices.Clone(e.Beats)})
			continue
		}
		merged[i].Beats = append(merged[i].Beats, e.Beats...)
	}
	return merged
}

func mustRules(rules []Rule) *Rules {
	r, err := NewRules(rules...)
	if err != nil {
		panic(fmt.Sprintf("rps: built-in rules: %v", err))
	}
	return r
}

func (r *Rules) validate() error {
	n := len(r.order)
	if n < 3 || n%2 == 0 {
		return fmt.Errorf("%w: need an odd number of moves, at least 3, got %d", ErrInvalidRules, n)
	}

	keys := make(map[rune]Move, n)
	for _, m := range r.order {
		k := r.keys[m]
		if k == 0 {
			return fmt.Errorf("%w: move %q has no key", ErrInvalidRules, m)
		}
		if other, dup := keys[k]; dup {
			return fmt.Errorf("%w: key %q used by %q and %q", ErrInvalidRules, k, other, m)
		}
		keys[k] = m
	}

	for _, m := range r.order {
		targets := r.beats[m]
		for t := range targets {
			if t == m {
				return fmt.Errorf("%w: %q beats itself", ErrInvalidRules, m)
			}
			if _, known := r.beats[t]; !known {
				return fmt.Errorf("%w: %q beats unknown move %q", ErrInvalidRules, m, t)
			}
			if r.beats[t][m] {
				return fmt.Errorf("%w: %q and %q beat each other", ErrInvalidRules, m, t)
			}
		}
		if len(targets) != n/2 {
			return fmt.Errorf("%w: %q beats %d moves, want %d", ErrInvalidRules, m, len(targets), n/2)
		}
	}
	return nil
}

// Moves returns the move set in declaration order.
func (r *Rules) Moves() []Move {
	return slices.Clone(r.order)
}

// Len is the number of moves.
func (r *Rules) Len() int {
	return len(r.order)
}

// Contains reports whether m is part of this rule set.
func (r *Rules) Contains(m Move) bool {
	_, ok := r.beats[m]
	return ok
}

// Beats reports whether a beats b.
func (r *Rules) Beats(a, b Move) bool {
	return r.beats[a][b]
}

// Defeats lists the moves m beats, in declaration order.
func (r *Rules) Defeats(m Move) []Move {
	var out []Move
	for _, other := range r.order {
		if r.beats[m][other] {
			out = append(out, other)
		}
	}
	return out
}

// BeatersOf lists the moves that beat m, in declaration order.
func (r *Rules) BeatersOf(m Move) []Move {
	var out []Move
	for _, other := range r.order {
		if r.beats[other][m] {
			out = append(out, other)
		}
	}
	return out
}

// Choices lists every move with its key, for prompting.
func (r *Rules) Choices() []Choice {
	out := make([]Choice, 0, len(r.order))
	for _, m := range r.order {
		out = append(out, Choice{Move: m, Key: r.keys[m]})
	}
	return out
}

// MoveForKey maps a keystroke back to its move.
func (r *Rules) MoveForKey(key rune) (Move, bool) {
	for _, m := range r.order {
		if r.keys[m] == key {
			return m, true
		}
	}
	return "", false
}

// Resolve decides a round between two plays. Equal moves tie; otherwise the
// side whose move beats the other's wins. A move outside the rule set on
// either side yields OutcomeInvalid, never a tie.
func (r *Rules) Resolve(a, b Play) RoundResult {
	result := RoundResult{A: a, B: b}
	switch {
	case !r.Contains(a.Move) || !r.Contains(b.Move):
		result.Outcome = OutcomeInvalid
	case a.Move == b.Move:
		result.Outcome = OutcomeTie
	case r.Beats(a.Move, b.Move):
		result.Outcome = OutcomeAWins
	case r.Beats(b.Move, a.Move):
		result.Outcome = OutcomeBWins
	default:
		result.Outcome = OutcomeTie
	}
	return result
}
