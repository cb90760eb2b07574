package deck

import (
	rand "math/rand/v2"
)

// Size is the number of cards in a full deck.
const Size = len(Suits) * len(Ranks)

// Deck is a shuffled pile of cards drawn from the end. It never runs dry: the
// draw that empties it brings in a freshly shuffled full deck.
type Deck struct {
	cards       []Card
	rng         *rand.Rand
	generations int
}

// NewDeck creates a full 52-card deck shuffled with rng
func NewDeck(rng *rand.Rand) *Deck {
	d := &Deck{
		cards: make([]Card, 0, Size),
		rng:   rng,
	}
	d.regenerate()
	return d
}

// Shuffle randomizes the order of the remaining cards
func (d *Deck) Shuffle() {
	d.rng.Shuffle(len(d.cards), func(i, j int) {
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	})
}

// Draw removes and returns the card at the end of the deck. When that empties
// the deck a new full deck is built and shuffled, so Draw never fails.
func (d *Deck) Draw() Card {
	if len(d.cards) == 0 {
		d.regenerate()
	}

	last := len(d.cards) - 1
	card := d.cards[last]
	d.cards = d.cards[:last]

	if len(d.cards) == 0 {
		d.regenerate()
	}
	return card
}

// CardsRemaining returns the number of cards left in the deck
func (d *Deck) CardsRemaining() int {
	return len(d.cards)
}

// Generations counts how many full decks have been built, including the first.
func (d *Deck) Generations() int {
	return d.generations
}

func (d *Deck) regenerate() {
	d.cards = d.cards[:0]
	for _, suit := range Suits {
		for _, rank := range Ranks {
			d.cards = append(d.cards, NewCard(suit, rank))
		}
	}
	d.generations++
	d.Shuffle()
}
