package centroid

import (
	"bufio"
	"errors"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/hupe1980/maskscore/codec"
)

var errNonFinite = errors.New("non-finite value")

const maxLineSize = 1 << 20

// Parse reads a CSV centroid table: one row per line, Width comma-separated
// reals per row. Blank lines are skipped.
func Parse(r io.Reader) (*Matrix, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 4096), maxLineSize)

	var data []float64
	rows := 0
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}

		fields := strings.Split(text, ",")
		if len(fields) != Width {
			return nil, &MalformedDataError{Line: line, Fields: len(fields)}
		}
		for _, f := range fields {
			x, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
			if err != nil {
				return nil, &MalformedDataError{Line: line, Fields: len(fields), cause: err}
			}
			if math.IsNaN(x) || math.IsInf(x, 0) {
				return nil, &MalformedDataError{Line: line, Fields: len(fields), cause: errNonFinite}
			}
			data = append(data, x)
		}
		rows++
	}
	if err := sc.Err(); err != nil {
		if errors.Is(err, bufio.ErrTooLong) {
			return nil, &MalformedDataError{Line: line + 1, cause: err}
		}
		return nil, err
	}

	return &Matrix{data: data, rows: rows}, nil
}

// ParseJSON reads a JSON centroid table, an array of Width-wide arrays.
// If c is nil, codec.Default is used.
func ParseJSON(data []byte, c codec.Codec) (*Matrix, error) {
	if c == nil {
		c = codec.Default
	}
	var rows [][]float64
	if err := c.Unmarshal(data, &rows); err != nil {
		return nil, &MalformedDataError{cause: err}
	}
	return NewMatrix(rows)
}
