package deck

import "testing"

func TestParseCards(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []Card
		wantErr  bool
	}{
		{
			name:  "blackjack",
			input: "AsKs",
			expected: []Card{
				{Suit: Spades, Rank: Ace},
				{Suit: Spades, Rank: King},
			},
		},
		{
			name:  "two digit ten",
			input: "10h9d",
			expected: []Card{
				{Suit: Hearts, Rank: Ten},
				{Suit: Diamonds, Rank: Nine},
			},
		},
		{
			name:  "ten as T",
			input: "ThJc",
			expected: []Card{
				{Suit: Hearts, Rank: Ten},
				{Suit: Clubs, Rank: Jack},
			},
		},
		{
			name:  "case insensitive with spaces",
			input: "as KH qD 2c",
			expected: []Card{
				{Suit: Spades, Rank: Ace},
				{Suit: Hearts, Rank: King},
				{Suit: Diamonds, Rank: Queen},
				{Suit: Clubs, Rank: Two},
			},
		},
		{
			name:    "invalid rank",
			input:   "XsKs",
			wantErr: true,
		},
		{
			name:    "lone one",
			input:   "1s",
			wantErr: true,
		},
		{
			name:    "invalid suit",
			input:   "AsKx",
			wantErr: true,
		},
		{
			name:    "missing suit",
			input:   "AsK",
			wantErr: true,
		},
		{
			name:     "empty string",
			input:    "",
			expected: []Card{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseCards(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ParseCards() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if !tt.wantErr && !cardsEqual(got, tt.expected) {
				t.Errorf("ParseCards() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestMustParseCards(t *testing.T) {
	cards := MustParseCards("AsKs")
	expected := []Card{
		{Suit: Spades, Rank: Ace},
		{Suit: Spades, Rank: King},
	}
	if !cardsEqual(cards, expected) {
		t.Errorf("MustParseCards() = %v, want %v", cards, expected)
	}

	defer func() {
		if r := recover(); r == nil {
			t.Error("MustParseCards() should panic on invalid input")
		}
	}()
	MustParseCards("invalid")
}

func TestCardValue(t *testing.T) {
	tests := []struct {
		card string
		want int
	}{
		{"As", 11},
		{"2d", 2},
		{"9c", 9},
		{"10h", 10},
		{"Js", 10},
		{"Qd", 10},
		{"Kc", 10},
	}

	for _, tt := range tests {
		t.Run(tt.card, func(t *testing.T) {
			card := MustParseCards(tt.card)[0]
			if got := card.Value(); got != tt.want {
				t.Errorf("%s.Value() = %d, want %d", card, got, tt.want)
			}
		})
	}
}

func TestCardString(t *testing.T) {
	if got := NewCard(Hearts, Ten).String(); got != "10♥" {
		t.Errorf("String() = %q, want %q", got, "10♥")
	}
	if got := NewCard(Spades, Ace).String(); got != "A♠" {
		t.Errorf("String() = %q, want %q", got, "A♠")
	}
	if !NewCard(Diamonds, Two).IsRed() || NewCard(Clubs, Two).IsRed() {
		t.Error("IsRed() mismatch")
	}
}

func cardsEqual(a, b []Card) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].Rank != b[i].Rank || a[i].Suit != b[i].Suit {
			return false
		}
	}
	return true
}
