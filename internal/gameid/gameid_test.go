package gameid

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/parlour/internal/randutil"
)

func TestProductionIDs(t *testing.T) {
	seen := make(map[string]bool)
	prev := ""
	for i := 0; i < 20; i++ {
		id := Generate()
		require.NoError(t, Validate(id))
		assert.Len(t, id, Length)
		assert.False(t, seen[id], "duplicate tournament id %s", id)
		seen[id] = true

		if i%5 == 0 {
			time.Sleep(2 * time.Millisecond)
		}
		if prev != "" {
			assert.Less(t, prev, id, "ids must sort in creation order")
		}
		prev = id
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		id   string
		ok   bool
	}{
		{"lowercase base32", "01h5n0et5q6mt3v7ms1234abcd", true},
		{"short", "01h5n0et5q6mt3v7ms123", false},
		{"long", "01h5n0et5q6mt3v7ms1234abcdef", false},
		{"overflowing first digit", "81h5n0et5q6mt3v7ms1234abcd", false},
		{"ambiguous letter", "01h5n0et5q6mt3v7ms1234abci", false},
		{"uppercase", "01H5N0ET5Q6MT3V7MS1234ABCD", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.id)
			if tt.ok {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestAlphabetSkipsAmbiguousLetters(t *testing.T) {
	assert.Len(t, alphabet, 32)
	for _, r := range "ilou" {
		assert.NotContains(t, alphabet, string(r))
	}
}

func TestEncodeBase32Bounds(t *testing.T) {
	var zero, full [16]byte
	for i := range full {
		full[i] = 0xff
	}
	assert.Equal(t, strings.Repeat("0", Length), encodeBase32(zero))
	assert.Equal(t, "7"+strings.Repeat("z", Length-1), encodeBase32(full))
}

func seeded(seed int64, at time.Time) *Generator {
	g := NewGenerator(randutil.New(seed))
	g.now = func() time.Time { return at }
	return g
}

func TestSeededSessionsReplayTournamentIDs(t *testing.T) {
	at := time.UnixMilli(1_700_000_000_000)

	a, b := seeded(42, at), seeded(42, at)
	for i := 0; i < 3; i++ {
		id := a.Generate()
		require.NoError(t, Validate(id))
		assert.Equal(t, id, b.Generate(), "tournament %d", i+1)
	}

	assert.NotEqual(t, seeded(42, at).Generate(), seeded(43, at).Generate())
}
