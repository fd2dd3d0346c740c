package centroid

import (
	"errors"
	"fmt"
)

var (
	// ErrSourceUnavailable is returned when a centroid source cannot be opened or read.
	ErrSourceUnavailable = errors.New("centroid source unavailable")

	// ErrMalformedCentroidData is returned when a row is not exactly Width real numbers.
	ErrMalformedCentroidData = errors.New("malformed centroid data")

	// ErrEmptyCentroidSet is returned when a distance is requested against zero rows.
	ErrEmptyCentroidSet = errors.New("empty centroid set")

	// ErrDimensionMismatch is returned when a query vector is not Width wide.
	ErrDimensionMismatch = errors.New("dimension mismatch")
)

// MalformedDataError describes a row that could not be parsed.
//
// It matches ErrMalformedCentroidData with errors.Is. The underlying parse
// error (if any) can be accessed via errors.Unwrap.
type MalformedDataError struct {
	// Line is the 1-based line (or row) number. 0 means the whole document.
	Line int
	// Fields is the number of values found on the line.
	Fields int
	cause  error
}

func (e *MalformedDataError) Error() string {
	switch {
	case e.cause != nil && e.Line > 0:
		return fmt.Sprintf("%v: line %d: %v", ErrMalformedCentroidData, e.Line, e.cause)
	case e.cause != nil:
		return fmt.Sprintf("%v: %v", ErrMalformedCentroidData, e.cause)
	default:
		return fmt.Sprintf("%v: line %d: expected %d values, got %d", ErrMalformedCentroidData, e.Line, Width, e.Fields)
	}
}

func (e *MalformedDataError) Is(target error) bool { return target == ErrMalformedCentroidData }

func (e *MalformedDataError) Unwrap() error { return e.cause }

// DimensionMismatchError indicates a query vector of the wrong width.
type DimensionMismatchError struct {
	Expected int
	Actual   int
}

func (e *DimensionMismatchError) Error() string {
	return fmt.Sprintf("%v: expected %d, got %d", ErrDimensionMismatch, e.Expected, e.Actual)
}

func (e *DimensionMismatchError) Is(target error) bool { return target == ErrDimensionMismatch }
