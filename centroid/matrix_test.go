package centroid

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/maskscore/mask"
	"github.com/hupe1980/maskscore/testutil"
)

func unitRow(i int, scale float64) []float64 {
	row := make([]float64, Width)
	row[i] = scale
	return row
}

func TestNewMatrix(t *testing.T) {
	rows := [][]float64{unitRow(0, 1), unitRow(1, 2)}

	m, err := NewMatrix(rows)
	require.NoError(t, err)
	assert.Equal(t, 2, m.Len())
	assert.Equal(t, rows, m.Rows())

	// The matrix owns a copy.
	rows[0][0] = 99
	assert.Equal(t, 1.0, m.Row(0)[0])

	// Returned rows are copies too.
	m.Row(1)[1] = 99
	m.Rows()[1][1] = 99
	assert.Equal(t, 2.0, m.Row(1)[1])
}

func TestNewMatrix_Invalid(t *testing.T) {
	_, err := NewMatrix([][]float64{unitRow(0, 1), {1, 2}})
	require.ErrorIs(t, err, ErrMalformedCentroidData)

	var mde *MalformedDataError
	require.True(t, errors.As(err, &mde))
	assert.Equal(t, 2, mde.Line)
	assert.Equal(t, 2, mde.Fields)

	_, err = NewMatrix([][]float64{unitRow(3, math.NaN())})
	assert.ErrorIs(t, err, ErrMalformedCentroidData)
}

func TestMatrix_Nearest(t *testing.T) {
	m, err := NewMatrix([][]float64{unitRow(0, 3), unitRow(1, 1), unitRow(2, 5)})
	require.NoError(t, err)

	q := make([]float64, Width)
	idx, dist, err := m.Nearest(q)
	require.NoError(t, err)
	assert.Equal(t, 1, idx)
	assert.Equal(t, 1.0, dist)

	q[0] = 3
	idx, dist, err = m.Nearest(q)
	require.NoError(t, err)
	assert.Equal(t, 0, idx)
	assert.Equal(t, 0.0, dist)
}

func TestMatrix_Nearest_TieLowestIndex(t *testing.T) {
	m, err := NewMatrix([][]float64{unitRow(0, 2), unitRow(1, 2), unitRow(2, 2)})
	require.NoError(t, err)

	idx, dist, err := m.Nearest(make([]float64, Width))
	require.NoError(t, err)
	assert.Equal(t, 0, idx)
	assert.Equal(t, 2.0, dist)
}

func TestMatrix_Nearest_Errors(t *testing.T) {
	empty, err := NewMatrix(nil)
	require.NoError(t, err)

	_, _, err = empty.Nearest(make([]float64, Width))
	assert.ErrorIs(t, err, ErrEmptyCentroidSet)

	m, err := NewMatrix([][]float64{unitRow(0, 1)})
	require.NoError(t, err)

	_, _, err = m.Nearest([]float64{1, 2})
	require.ErrorIs(t, err, ErrDimensionMismatch)

	var dme *DimensionMismatchError
	require.True(t, errors.As(err, &dme))
	assert.Equal(t, Width, dme.Expected)
	assert.Equal(t, 2, dme.Actual)
}

func TestMatrix_Nearest_PermutationInvariant(t *testing.T) {
	base, err := Parse(bundledReader(t))
	require.NoError(t, err)

	rows := base.Rows()
	reversed := make([][]float64, len(rows))
	for i, r := range rows {
		reversed[len(rows)-1-i] = r
	}
	perm, err := NewMatrix(reversed)
	require.NoError(t, err)

	for _, q := range [][]float64{make([]float64, Width), unitRow(5, 7), rows[3]} {
		_, d1, err := base.Nearest(q)
		require.NoError(t, err)
		_, d2, err := perm.Nearest(q)
		require.NoError(t, err)
		assert.Equal(t, d1, d2)
		assert.GreaterOrEqual(t, d1, 0.0)
	}
}

func TestMatrix_NearestN(t *testing.T) {
	m, err := NewMatrix([][]float64{unitRow(0, 3), unitRow(1, 1), unitRow(2, 5), unitRow(3, 1)})
	require.NoError(t, err)

	q := make([]float64, Width)

	matches, err := m.NearestN(q, 3)
	require.NoError(t, err)
	assert.Equal(t, []Match{{Index: 1, Distance: 1}, {Index: 3, Distance: 1}, {Index: 0, Distance: 3}}, matches)

	matches, err = m.NearestN(q, 10)
	require.NoError(t, err)
	assert.Len(t, matches, 4)
	assert.Equal(t, 2, matches[3].Index)

	matches, err = m.NearestN(q, 0)
	require.NoError(t, err)
	assert.Empty(t, matches)

	idx, dist, err := m.Nearest(q)
	require.NoError(t, err)
	first, err := m.NearestN(q, 1)
	require.NoError(t, err)
	assert.Equal(t, []Match{{Index: idx, Distance: dist}}, first)
}

func TestMatrix_NearestN_MatchesBruteForce(t *testing.T) {
	rng := testutil.NewRNG(7)
	rows := rng.CentroidRows(200, Width)

	m, err := NewMatrix(rows)
	require.NoError(t, err)

	for _, pw := range rng.Passwords(50, 1, 40) {
		q := mask.Encode(pw).Float64s()

		want := testutil.BruteForceNearest(rows, q, 5)
		got, err := m.NearestN(q, 5)
		require.NoError(t, err)
		require.Len(t, got, len(want))

		for i := range want {
			assert.InDelta(t, want[i].Distance, got[i].Distance, 1e-9)
		}

		_, dist, err := m.Nearest(q)
		require.NoError(t, err)
		assert.InDelta(t, want[0].Distance, dist, 1e-9)
	}
}

func BenchmarkMatrix_Nearest(b *testing.B) {
	m, err := Parse(bundledReader(b))
	require.NoError(b, err)

	q := make([]float64, Width)
	for i := 0; i < 13; i++ {
		q[i] = float64(i%7 + 1)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _, _ = m.Nearest(q)
	}
}
