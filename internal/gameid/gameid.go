// Package gameid generates the identifiers attached to each tournament: UUIDv7
// values rendered as 26-character Crockford base32 strings, sortable by start time.
package gameid

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Base32 alphabet used by TypeID (Crockford's base32)
const alphabet = "0123456789abcdefghjkmnpqrstvwxyz"

// Length is the length of every generated id.
const Length = 26

// RandSource interface for dependency injection of randomness
type RandSource interface {
	IntN(n int) int
}

// Generator handles game ID generation with configurable randomness
type Generator struct {
	randSource RandSource
	now        func() time.Time
}

// NewGenerator creates a generator. A nil RandSource uses google/uuid's
// UUIDv7; a non-nil one makes the random bits reproducible for seeded sessions.
func NewGenerator(randSource RandSource) *Generator {
	return &Generator{randSource: randSource, now: time.Now}
}

// Generate creates a new game ID using UUIDv7 encoded as 26-character base32 string
func Generate() string {
	return NewGenerator(nil).Generate()
}

// Generate creates a new game ID using the generator's RandSource
func (g *Generator) Generate() string {
	if g.randSource == nil {
		id, err := uuid.NewV7()
		if err != nil {
			panic("failed to generate uuid: " + err.Error())
		}
		return encodeBase32(id)
	}
	return encodeBase32(g.seededUUIDv7())
}

// seededUUIDv7 lays out a UUIDv7 by hand: 48-bit millisecond timestamp, then
// random bits from the injected source with the version and variant forced.
func (g *Generator) seededUUIDv7() [16]byte {
	var id [16]byte

	now := g.now().UnixMilli()
	for i := 0; i < 6; i++ {
		id[i] = byte(now >> (40 - 8*i))
	}
	for i := 6; i < 16; i++ {
		id[i] = byte(g.randSource.IntN(256))
	}

	id[6] = (id[6] & 0x0f) | 0x70
	id[8] = (id[8] & 0x3f) | 0x80
	return id
}

// encodeBase32 treats the 128 bits as a 130-bit number with two leading zero
// bits, so the first character is always 0-7.
func encodeBase32(data [16]byte) string {
	var hi, lo uint64
	for i := 0; i < 8; i++ {
		hi = hi<<8 | uint64(data[i])
		lo = lo<<8 | uint64(data[8+i])
	}

	result := make([]byte, Length)
	for i := Length - 1; i >= 0; i-- {
		result[i] = alphabet[lo&0x1f]
		lo = lo>>5 | hi<<59
		hi >>= 5
	}
	return string(result)
}

// Validate checks if a game ID is valid (26 characters, valid base32)
func Validate(id string) error {
	if len(id) != Length {
		return fmt.Errorf("game ID must be exactly %d characters, got %d", Length, len(id))
	}

	if id[0] > '7' {
		return fmt.Errorf("game ID first character must be 0-7, got %c", id[0])
	}

	for i, char := range id {
		if !strings.ContainsRune(alphabet, char) {
			return fmt.Errorf("invalid character %c at position %d", char, i)
		}
	}

	return nil
}
