package maskscore

import (
	"context"
	"io"
	"log/slog"
	"os"
	"time"
)

// Logger wraps slog.Logger with maskscore-specific context.
// This provides structured logging with consistent field names.
//
// Passwords are never passed to the logger.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a new Logger with the given handler.
// If handler is nil, uses default text handler to stderr.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewJSONLogger creates a Logger that outputs JSON-formatted logs.
// level sets the minimum log level (e.g., slog.LevelDebug, slog.LevelInfo).
func NewJSONLogger(level slog.Level) *Logger {
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NoopLogger creates a Logger that discards all log output.
func NoopLogger() *Logger {
	return &Logger{
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// WithSource adds a source field to the logger.
func (l *Logger) WithSource(src Source) *Logger {
	return &Logger{
		Logger: l.Logger.With("source", src.Key()),
	}
}

// LogLoad logs a centroid table load.
func (l *Logger) LogLoad(ctx context.Context, src Source, rows int, duration time.Duration, err error) {
	if err != nil {
		l.ErrorContext(ctx, "centroid load failed",
			"source", src.Key(),
			"duration", duration,
			"error", err,
		)
	} else {
		l.InfoContext(ctx, "centroid load completed",
			"source", src.Key(),
			"rows", rows,
			"duration", duration,
		)
	}
}

// LogScore logs a score. The password itself is not recorded.
func (l *Logger) LogScore(ctx context.Context, length int, dist float64) {
	l.DebugContext(ctx, "score computed",
		"mask_length", length,
		"distance", dist,
	)
}
