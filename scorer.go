package maskscore

import (
	"context"
	"fmt"
	"time"

	"github.com/hupe1980/maskscore/centroid"
	"github.com/hupe1980/maskscore/mask"
)

// Scorer computes the distance from password masks to the nearest centroid.
//
// A Scorer is immutable and safe for concurrent use.
type Scorer struct {
	matrix  *centroid.Matrix
	source  Source
	logger  *Logger
	metrics MetricsCollector
}

// Open loads the table described by src and builds a Scorer from it.
//
// It fails with ErrSourceUnavailable if the table cannot be read,
// ErrMalformedCentroidData if it cannot be parsed and ErrEmptyCentroidSet if
// it holds no rows.
func Open(ctx context.Context, src Source, optFns ...Option) (*Scorer, error) {
	o := applyOptions(optFns)

	if src.Store == nil {
		return nil, fmt.Errorf("%w: %q: no store", ErrSourceUnavailable, src.Name)
	}

	loader := &centroid.Loader{Controller: o.controller, Codec: o.codec}

	start := time.Now()
	m, err := loader.Load(ctx, src.Store, src.Name)
	if err == nil && m.Len() == 0 {
		err = fmt.Errorf("%w: %s", ErrEmptyCentroidSet, src.Key())
	}
	duration := time.Since(start)

	rows := 0
	if err == nil {
		rows = m.Len()
	}
	o.logger.LogLoad(ctx, src, rows, duration, err)
	o.metricsCollector.RecordLoad(src.Key(), rows, duration, err)

	if err != nil {
		return nil, err
	}
	return newScorer(m, src, o), nil
}

// New builds a Scorer over an in-memory matrix.
func New(m *centroid.Matrix, optFns ...Option) (*Scorer, error) {
	if m == nil || m.Len() == 0 {
		return nil, ErrEmptyCentroidSet
	}
	return newScorer(m, Source{}, applyOptions(optFns)), nil
}

func newScorer(m *centroid.Matrix, src Source, o options) *Scorer {
	return &Scorer{
		matrix:  m,
		source:  src,
		logger:  o.logger,
		metrics: o.metricsCollector,
	}
}

// Score returns the Euclidean distance from the mask of password to the
// nearest centroid. Smaller values mean a more common structure.
func (s *Scorer) Score(password string) float64 {
	return s.ScoreVector(mask.Encode(password))
}

// ScoreVector is like Score for an already encoded mask.
func (s *Scorer) ScoreVector(v mask.Vector) float64 {
	start := time.Now()

	// Cannot fail: the matrix is non-empty and the vector has mask.Width entries.
	_, dist, _ := s.matrix.Nearest(v.Float64s())

	s.metrics.RecordScore(time.Since(start))
	s.logger.LogScore(context.Background(), v.Len(), dist)

	return dist
}

// Nearest returns the n closest centroids to the mask of password, nearest
// first.
func (s *Scorer) Nearest(password string, n int) []centroid.Match {
	matches, _ := s.matrix.NearestN(mask.Encode(password).Float64s(), n)
	return matches
}

// Encode returns the mask of password.
func (s *Scorer) Encode(password string) []int {
	return Encode(password)
}

// Len returns the number of centroids.
func (s *Scorer) Len() int {
	return s.matrix.Len()
}

// Source returns the source the Scorer was loaded from. It is the zero
// Source for scorers built with New.
func (s *Scorer) Source() Source {
	return s.source
}

// Encode returns the mask of password as mask.Width class codes.
func Encode(password string) []int {
	return mask.Encode(password).Ints()
}
