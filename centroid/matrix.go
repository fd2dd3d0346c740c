package centroid

import (
	"math"
	"sort"

	"github.com/hupe1980/maskscore/distance"
	"github.com/hupe1980/maskscore/mask"
)

// Width is the number of values per row.
const Width = mask.Width

// Matrix is an immutable set of centroids. It is safe for concurrent use.
type Matrix struct {
	data []float64 // rows * Width, row-major
	rows int
}

// NewMatrix copies rows into a new Matrix.
// Every row must be Width wide and hold finite values. Zero rows are allowed.
func NewMatrix(rows [][]float64) (*Matrix, error) {
	data := make([]float64, 0, len(rows)*Width)
	for i, row := range rows {
		if len(row) != Width {
			return nil, &MalformedDataError{Line: i + 1, Fields: len(row)}
		}
		for _, x := range row {
			if math.IsNaN(x) || math.IsInf(x, 0) {
				return nil, &MalformedDataError{Line: i + 1, Fields: len(row), cause: errNonFinite}
			}
		}
		data = append(data, row...)
	}
	return &Matrix{data: data, rows: len(rows)}, nil
}

// Len returns the number of centroids.
func (m *Matrix) Len() int {
	return m.rows
}

// Dim returns the row width.
func (m *Matrix) Dim() int {
	return Width
}

// Row returns a copy of row i.
func (m *Matrix) Row(i int) []float64 {
	out := make([]float64, Width)
	copy(out, m.row(i))
	return out
}

// Rows returns a copy of all rows.
func (m *Matrix) Rows() [][]float64 {
	out := make([][]float64, m.rows)
	for i := range out {
		out[i] = m.Row(i)
	}
	return out
}

func (m *Matrix) row(i int) []float64 {
	return m.data[i*Width : (i+1)*Width]
}

func (m *Matrix) check(vec []float64) error {
	if m.rows == 0 {
		return ErrEmptyCentroidSet
	}
	if len(vec) != Width {
		return &DimensionMismatchError{Expected: Width, Actual: len(vec)}
	}
	return nil
}

// Nearest returns the index of the closest centroid and its Euclidean distance.
// Ties resolve to the lowest index.
func (m *Matrix) Nearest(vec []float64) (int, float64, error) {
	if err := m.check(vec); err != nil {
		return -1, 0, err
	}

	best := -1
	minDist := math.Inf(1)

	for j := 0; j < m.rows; j++ {
		d := distance.SquaredL2(vec, m.row(j))
		if d < minDist {
			minDist = d
			best = j
		}
	}

	return best, math.Sqrt(minDist), nil
}

// Match is a centroid index with its distance to a query.
type Match struct {
	Index    int     `json:"index" yaml:"index"`
	Distance float64 `json:"distance" yaml:"distance"`
}

// NearestN returns the n closest centroids, nearest first.
// n is clamped to Len.
func (m *Matrix) NearestN(vec []float64, n int) ([]Match, error) {
	if err := m.check(vec); err != nil {
		return nil, err
	}
	if n > m.rows {
		n = m.rows
	}
	if n <= 0 {
		return []Match{}, nil
	}

	dists := make([]Match, m.rows)
	for i := 0; i < m.rows; i++ {
		dists[i] = Match{Index: i, Distance: distance.SquaredL2(vec, m.row(i))}
	}

	sort.SliceStable(dists, func(i, j int) bool {
		return dists[i].Distance < dists[j].Distance
	})

	result := dists[:n:n]
	for i := range result {
		result[i].Distance = math.Sqrt(result[i].Distance)
	}

	return result, nil
}
