package maskscore

import "github.com/hupe1980/maskscore/centroid"

var (
	// ErrSourceUnavailable is returned when a centroid source cannot be opened or read.
	ErrSourceUnavailable = centroid.ErrSourceUnavailable

	// ErrMalformedCentroidData is returned when a centroid table cannot be parsed.
	ErrMalformedCentroidData = centroid.ErrMalformedCentroidData

	// ErrEmptyCentroidSet is returned when a source holds no centroids.
	ErrEmptyCentroidSet = centroid.ErrEmptyCentroidSet
)
