package util

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFixedArray(t *testing.T) {
	a := NewFixedArray[uint64](4)
	require.Equal(t, 4, a.Len())
	assert.Equal(t, 32, a.SizeBytes())

	for i := 0; i < a.Len(); i++ {
		assert.Equal(t, uint64(0), a.Get(i))
	}

	a.Set(2, 7)
	assert.Equal(t, uint64(7), a.Get(2))

	a.Fill(3)
	for i := 0; i < a.Len(); i++ {
		assert.Equal(t, uint64(3), a.Get(i))
	}

	assert.True(t, a.InRange(0))
	assert.True(t, a.InRange(3))
	assert.False(t, a.InRange(-1))
	assert.False(t, a.InRange(4))

	assert.Panics(t, func() { a.Get(4) })
}

func TestFixedArrayNegativeLength(t *testing.T) {
	a := NewFixedArray[byte](-3)
	assert.Equal(t, 0, a.Len())
	assert.False(t, a.InRange(0))
}

func TestNextPowerOfTwo(t *testing.T) {
	tests := map[uint]uint{0: 1, 1: 1, 2: 2, 3: 4, 5: 8, 8: 8, 200: 256, 256: 256, 257: 512}
	for in, want := range tests {
		assert.Equal(t, want, NextPowerOfTwo(in), "NextPowerOfTwo(%d)", in)
	}
	assert.Equal(t, uint8(128), NextPowerOfTwo(uint8(100)))
	assert.Equal(t, uint8(0), NextPowerOfTwo(uint8(200)), "overflow wraps to zero")
}

func TestIsPowerOfTwo(t *testing.T) {
	assert.True(t, IsPowerOfTwo(1))
	assert.True(t, IsPowerOfTwo(1024))
	assert.False(t, IsPowerOfTwo(0))
	assert.False(t, IsPowerOfTwo(-4))
	assert.False(t, IsPowerOfTwo(6))
}

func TestStats(t *testing.T) {
	assert.Equal(t, Stats{}, NewStats(nil))

	s := NewStats([]float64{1, 2, 3, 4})
	assert.Equal(t, 1.0, s.Min)
	assert.Equal(t, 4.0, s.Max)
	assert.Equal(t, 2.5, s.Mean)
	assert.Equal(t, 0.25, s.MinMaxRatio)
	assert.InDelta(t, math.Sqrt(1.25), s.StdDeviation, 1e-9)
}
