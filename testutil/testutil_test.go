package testutil

import (
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPassword(t *testing.T) {
	rng := NewRNG(4711)

	pw := rng.Password(12)
	assert.Equal(t, 12, utf8.RuneCountInString(pw))
	assert.True(t, utf8.ValidString(pw))
}

func TestPasswords(t *testing.T) {
	rng := NewRNG(4711)

	pws := rng.Passwords(100, 4, 40)
	require.Len(t, pws, 100)
	for _, pw := range pws {
		n := utf8.RuneCountInString(pw)
		assert.GreaterOrEqual(t, n, 4)
		assert.LessOrEqual(t, n, 40)
	}
}

func TestCentroidRows(t *testing.T) {
	rng := NewRNG(4711)

	rows := rng.CentroidRows(8, 28)

	assert.Equal(t, 8, len(rows))
	for _, row := range rows {
		require.Equal(t, 28, len(row))
		assert.GreaterOrEqual(t, row[0], 1.0)
		for _, x := range row {
			assert.LessOrEqual(t, x, 7.0)
			assert.GreaterOrEqual(t, x, 0.0)
		}
	}
}

func TestReset(t *testing.T) {
	rng := NewRNG(4711)
	v1 := rng.CentroidRows(1, 10)
	p1 := rng.Password(16)

	rng.Reset()
	v2 := rng.CentroidRows(1, 10)
	p2 := rng.Password(16)

	assert.Equal(t, v1, v2)
	assert.Equal(t, p1, p2)
	assert.Equal(t, int64(4711), rng.Seed())
}

func TestZipf(t *testing.T) {
	rng := NewRNG(42)

	counts := make([]int, 5)
	for i := 0; i < 10000; i++ {
		counts[rng.Zipf(5, 1.5)]++
	}

	assert.Greater(t, counts[0], counts[1])
	assert.Greater(t, counts[1], counts[4])
	assert.Equal(t, 0, rng.Zipf(1, 1.5))
}

func TestBruteForceNearest(t *testing.T) {
	rows := [][]float64{{3, 0}, {1, 0}, {0, 1}, {5, 5}}

	got := BruteForceNearest(rows, []float64{0, 0}, 3)
	assert.Equal(t, []SearchResult{{Index: 1, Distance: 1}, {Index: 2, Distance: 1}, {Index: 0, Distance: 3}}, got)

	assert.Len(t, BruteForceNearest(rows, []float64{0, 0}, 10), 4)
}
