package randutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewIsDeterministic(t *testing.T) {
	a := New(42)
	b := New(42)
	for range 16 {
		assert.Equal(t, a.Uint64(), b.Uint64())
	}

	c := New(43)
	assert.NotEqual(t, New(42).Uint64(), c.Uint64())
}

func TestResolve(t *testing.T) {
	seed := int64(7)
	rng, got := Resolve(&seed)
	assert.Equal(t, int64(7), got)
	assert.Equal(t, New(7).Uint64(), rng.Uint64())

	_, random := Resolve(nil)
	assert.NotZero(t, random)
}

func TestDeriveIsStable(t *testing.T) {
	assert.Equal(t, Derive(New(1)), Derive(New(1)))
	assert.NotEqual(t, Derive(New(1)), Derive(New(2)))
}
