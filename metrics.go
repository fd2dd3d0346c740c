package maskscore

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
//
// Example Prometheus integration:
//
//	type PrometheusCollector struct {
//	    loadCounter    *prometheus.CounterVec
//	    scoreHistogram prometheus.Histogram
//	}
//
//	func (p *PrometheusCollector) RecordScore(duration time.Duration) {
//	    p.scoreHistogram.Observe(duration.Seconds())
//	}
type MetricsCollector interface {
	// RecordLoad is called after each centroid table load.
	// source is the source key, rows the number of centroids loaded,
	// err is nil if successful.
	RecordLoad(source string, rows int, duration time.Duration, err error)

	// RecordScore is called after each score.
	RecordScore(duration time.Duration)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordLoad(string, int, time.Duration, error) {}
func (NoopMetricsCollector) RecordScore(time.Duration)                    {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	LoadCount       atomic.Int64
	LoadErrors      atomic.Int64
	LoadRows        atomic.Int64
	LoadTotalNanos  atomic.Int64
	ScoreCount      atomic.Int64
	ScoreTotalNanos atomic.Int64
}

// RecordLoad implements MetricsCollector.
func (b *BasicMetricsCollector) RecordLoad(_ string, rows int, duration time.Duration, err error) {
	b.LoadCount.Add(1)
	b.LoadTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.LoadErrors.Add(1)
		return
	}
	b.LoadRows.Add(int64(rows))
}

// RecordScore implements MetricsCollector.
func (b *BasicMetricsCollector) RecordScore(duration time.Duration) {
	b.ScoreCount.Add(1)
	b.ScoreTotalNanos.Add(duration.Nanoseconds())
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		LoadCount:     b.LoadCount.Load(),
		LoadErrors:    b.LoadErrors.Load(),
		LoadRows:      b.LoadRows.Load(),
		LoadAvgNanos:  avg(b.LoadTotalNanos.Load(), b.LoadCount.Load()),
		ScoreCount:    b.ScoreCount.Load(),
		ScoreAvgNanos: avg(b.ScoreTotalNanos.Load(), b.ScoreCount.Load()),
	}
}

func avg(total, count int64) int64 {
	if count == 0 {
		return 0
	}
	return total / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	LoadCount     int64
	LoadErrors    int64
	LoadRows      int64
	LoadAvgNanos  int64
	ScoreCount    int64
	ScoreAvgNanos int64
}
