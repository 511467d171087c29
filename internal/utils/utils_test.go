package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPRNGServiceIsReproducible(t *testing.T) {
	a := NewPRNGService(42)
	b := NewPRNGService(42)
	for i := 0; i < 100; i++ {
		assert.Equal(t, a.Float64(), b.Float64())
		assert.Equal(t, a.Intn(81), b.Intn(81))
	}
	assert.Equal(t, int64(42), a.Seed())
}

func TestPRNGServiceZeroSeedPicksOne(t *testing.T) {
	assert.NotZero(t, NewPRNGService(0).Seed())
}

func TestRangeIntStaysInBounds(t *testing.T) {
	r := NewPRNGService(7)
	seen := map[int]bool{}
	for i := 0; i < 1000; i++ {
		v := RangeInt(r, 2, 4)
		assert.GreaterOrEqual(t, v, 2)
		assert.LessOrEqual(t, v, 4)
		seen[v] = true
	}
	assert.Len(t, seen, 3)
	assert.Equal(t, 5, RangeInt(r, 5, 5))
}

func TestRoll(t *testing.T) {
	r := NewPRNGService(1)
	assert.False(t, Roll(r, 0))
	assert.True(t, Roll(r, 1))
}

func TestClampAndAbs(t *testing.T) {
	assert.Equal(t, 0, Clamp(-3, 0, 10))
	assert.Equal(t, 10, Clamp(13, 0, 10))
	assert.Equal(t, 4, Clamp(4, 0, 10))
	assert.Equal(t, 3, Abs(-3))
	assert.Equal(t, 3, Abs(3))
}
