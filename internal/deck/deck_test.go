package deck

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/parlour/internal/randutil"
)

func TestNewDeckIsFullAndUnique(t *testing.T) {
	d := NewDeck(randutil.New(42))
	require.Equal(t, Size, d.CardsRemaining())
	assert.Equal(t, 1, d.Generations())

	seen := make(map[Card]bool, Size)
	for range Size - 1 {
		card := d.Draw()
		assert.False(t, seen[card], "duplicate card %s", card)
		seen[card] = true
	}
	assert.Equal(t, 1, d.CardsRemaining())
}

func TestDrawRegeneratesWhenExhausted(t *testing.T) {
	d := NewDeck(randutil.New(7))

	for range Size {
		d.Draw()
	}
	// The 52nd draw emptied the deck and brought in a fresh one.
	assert.Equal(t, 2, d.Generations())
	assert.Equal(t, Size, d.CardsRemaining())

	card := d.Draw()
	assert.NotEqual(t, "?", card.Rank.String())
	assert.NotEqual(t, "?", card.Suit.String())
	assert.Equal(t, Size-1, d.CardsRemaining())
}

func TestDrawNeverFailsAcrossManyDecks(t *testing.T) {
	d := NewDeck(randutil.New(1))
	for range Size*5 + 3 {
		card := d.Draw()
		require.GreaterOrEqual(t, int(card.Rank), int(Ace))
		require.LessOrEqual(t, int(card.Rank), int(King))
	}
	assert.Equal(t, 6, d.Generations())
}

func TestShuffleIsSeeded(t *testing.T) {
	a := NewDeck(randutil.New(99))
	b := NewDeck(randutil.New(99))
	for range Size {
		require.Equal(t, a.Draw(), b.Draw())
	}
}
