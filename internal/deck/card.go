package deck

import (
	"fmt"
	"strings"
	"unicode"
)

// Suit represents a card suit
type Suit int

const (
	Spades Suit = iota
	Diamonds
	Clubs
	Hearts
)

// Suits lists every suit in deck-building order.
var Suits = [...]Suit{Spades, Diamonds, Clubs, Hearts}

// String returns the string representation of a suit
func (s Suit) String() string {
	switch s {
	case Spades:
		return "♠"
	case Diamonds:
		return "♦"
	case Clubs:
		return "♣"
	case Hearts:
		return "♥"
	default:
		return "?"
	}
}

// IsRed returns true if the suit is red (Hearts or Diamonds)
func (s Suit) IsRed() bool {
	return s == Hearts || s == Diamonds
}

// Rank represents a card denomination
type Rank int

const (
	Ace Rank = iota + 1
	Two
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
)

// Ranks lists every denomination in deck-building order.
var Ranks = [...]Rank{Ace, Two, Three, Four, Five, Six, Seven, Eight, Nine, Ten, Jack, Queen, King}

// String returns the string representation of a rank
func (r Rank) String() string {
	switch {
	case r == Ace:
		return "A"
	case r >= Two && r <= Ten:
		return fmt.Sprintf("%d", int(r))
	case r == Jack:
		return "J"
	case r == Queen:
		return "Q"
	case r == King:
		return "K"
	default:
		return "?"
	}
}

const (
	// AceHigh is what an Ace counts while it is still soft.
	AceHigh = 11
	// AceDowngrade is what a soft Ace gives back when it falls to 1.
	AceDowngrade = AceHigh - 1
	faceValue    = 10
)

// Card represents a playing card
type Card struct {
	Suit Suit
	Rank Rank
}

// NewCard creates a new card
func NewCard(suit Suit, rank Rank) Card {
	return Card{Suit: suit, Rank: rank}
}

// String returns the string representation of a card (e.g., "A♠", "10♥")
func (c Card) String() string {
	return c.Rank.String() + c.Suit.String()
}

// IsRed returns true if the card is red
func (c Card) IsRed() bool {
	return c.Suit.IsRed()
}

// Value returns the Twenty-One value of the card: Aces count 11 (soft),
// face cards 10 and everything else its pip count.
func (c Card) Value() int {
	switch {
	case c.IsAce():
		return AceHigh
	case c.IsFaceCard():
		return faceValue
	default:
		return int(c.Rank)
	}
}

// IsAce returns true if the card is an Ace
func (c Card) IsAce() bool {
	return c.Rank == Ace
}

// IsFaceCard returns true if the card is a face card (J, Q, K)
func (c Card) IsFaceCard() bool {
	return c.Rank >= Jack && c.Rank <= King
}

// ParseCards parses a compact card list such as "AsKd10h" or "ah 9c".
// Ranks are A, 2-10 (or T), J, Q, K; suits are s, d, c, h. Whitespace is ignored.
func ParseCards(s string) ([]Card, error) {
	s = strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return unicode.ToLower(r)
	}, s)

	cards := []Card{}
	for i := 0; i < len(s); {
		rank, width, err := parseRank(s[i:])
		if err != nil {
			return nil, fmt.Errorf("card %d: %w", len(cards)+1, err)
		}
		i += width
		if i >= len(s) {
			return nil, fmt.Errorf("card %d: missing suit", len(cards)+1)
		}
		suit, err := parseSuit(s[i])
		if err != nil {
			return nil, fmt.Errorf("card %d: %w", len(cards)+1, err)
		}
		i++
		cards = append(cards, NewCard(suit, rank))
	}
	return cards, nil
}

// MustParseCards is ParseCards for fixtures; it panics on malformed input.
func MustParseCards(s string) []Card {
	cards, err := ParseCards(s)
	if err != nil {
		panic(err)
	}
	return cards
}

func parseRank(s string) (Rank, int, error) {
	switch c := s[0]; {
	case c == 'a':
		return Ace, 1, nil
	case c == 't':
		return Ten, 1, nil
	case c == 'j':
		return Jack, 1, nil
	case c == 'q':
		return Queen, 1, nil
	case c == 'k':
		return King, 1, nil
	case c == '1':
		if len(s) > 1 && s[1] == '0' {
			return Ten, 2, nil
		}
		return 0, 0, fmt.Errorf("invalid rank %q", s[:1])
	case c >= '2' && c <= '9':
		return Rank(c - '0'), 1, nil
	default:
		return 0, 0, fmt.Errorf("invalid rank %q", s[:1])
	}
}

func parseSuit(c byte) (Suit, error) {
	switch c {
	case 's':
		return Spades, nil
	case 'd':
		return Diamonds, nil
	case 'c':
		return Clubs, nil
	case 'h':
		return Hearts, nil
	default:
		return 0, fmt.Errorf("invalid suit %q", string(c))
	}
}
