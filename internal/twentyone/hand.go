// Package twentyone implements a multi-seat game of Twenty-One: hands with
// soft aces, a hit-or-stay turn loop per seat and round resolution.
package twentyone

import (
	"slices"
	"strings"

	"github.com/lox/parlour/internal/deck"
)

// Hand is the cards a seat holds in one round. Its value is kept up to date
// as cards arrive: an Ace counts 11 and is downgraded to 1 only while the
// hand would otherwise be over the limit.
type Hand struct {
	limit    int
	cards    []deck.Card
	value    int
	softAces int
}

// NewHand returns an empty hand played against limit.
func NewHand(limit int) *Hand {
	return &Hand{limit: limit}
}

// Add takes a card and downgrades soft aces while the hand is over the limit.
func (h *Hand) Add(c deck.Card) {
	h.cards = append(h.cards, c)
	h.value += c.Value()
	if c.IsAce() {
		h.softAces++
	}
	for h.value > h.limit && h.softAces > 0 {
		h.value -= deck.AceDowngrade
		h.softAces--
	}
}

// Value is the best value of the hand, never adjusted past what is needed.
func (h *Hand) Value() int {
	return h.value
}

// IsBust reports whether the value exceeds the limit with no aces left to downgrade.
func (h *Hand) IsBust() bool {
	return h.value > h.limit
}

// IsSoft reports whether an Ace is still counting 11.
func (h *Hand) IsSoft() bool {
	return h.softAces > 0
}

func (h *Hand) Limit() int {
	return h.limit
}

func (h *Hand) Len() int {
	return len(h.cards)
}

// Cards returns a copy of the cards in the order they were dealt.
func (h *Hand) Cards() []deck.Card {
	return slices.Clone(h.cards)
}

// Reset empties the hand for the next round.
func (h *Hand) Reset() {
	h.cards = h.cards[:0]
	h.value = 0
	h.softAces = 0
}

func (h *Hand) String() string {
	parts := make([]string, len(h.cards))
	for i, c := range h.cards {
		parts[i] = c.String()
	}
	return strings.Join(parts, " ")
}
