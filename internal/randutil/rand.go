// Package randutil derives reproducible math/rand/v2 sources from int64 seeds.
package randutil

import (
	rand "math/rand/v2"
	"time"
)

const (
	goldenRatio64 = 0x9e3779b97f4a7c15
)

// New returns a *rand.Rand seeded deterministically from the provided int64.
// Every game component (deck shuffles, CPU strategies, tournament ids) draws
// from a source built here so a single --seed replays a whole session.
func New(seed int64) *rand.Rand {
	u := uint64(seed)
	return rand.New(rand.NewPCG(mix(u), mix(u+goldenRatio64)))
}

// Resolve picks the session seed: the explicit one when set, otherwise the
// current time. The chosen seed is returned so callers can log it for replay.
func Resolve(seed *int64) (*rand.Rand, int64) {
	s := time.Now().UnixNano()
	if seed != nil {
		s = *seed
	}
	return New(s), s
}

// Derive draws a child seed from rng. Workers that need their own independent
// stream take one of these instead of sharing the parent.
func Derive(rng *rand.Rand) int64 {
	return int64(mix(rng.Uint64()))
}

func mix(x uint64) uint64 {
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return x
}
