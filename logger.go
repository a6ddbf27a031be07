package pointkernel

import (
	"context"
	"log/slog"
	"os"

	"github.com/golang/geo/r3"
)

// Logger wraps slog.Logger with kernel-specific context.
// This provides structured logging with consistent field names.
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
	return NewLogger(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

// NoopLogger creates a Logger that discards all log output.
// Use this to disable logging entirely.
func NoopLogger() *Logger {
	return NewLogger(slog.DiscardHandler)
}

// WithKernel adds a kernel name field to the logger.
func (l *Logger) WithKernel(name string) *Logger {
	return &Logger{
		Logger: l.Logger.With("kernel", name),
	}
}

// debugEnabled guards the hot-path helpers so disabled logging costs no
// allocations.
func (l *Logger) debugEnabled() bool {
	return l.Enabled(context.Background(), slog.LevelDebug)
}

// LogFallback logs a radius query that found nothing and fell back to the
// closest point.
func (l *Logger) LogFallback(x r3.Vector, radius float64, id uint32) {
	if !l.debugEnabled() {
		return
	}
	l.Debug("radius query empty, using closest point",
		"x", x.String(),
		"radius", radius,
		"id", id,
	)
}

// LogEmptyNeighborhood logs a query that produced no basis points.
func (l *Logger) LogEmptyNeighborhood(x r3.Vector) {
	if !l.debugEnabled() {
		return
	}
	l.Debug("empty neighborhood",
		"x", x.String(),
	)
}

// LogUnknownPoint logs a basis id the dataset does not hold.
func (l *Logger) LogUnknownPoint(id uint32, numberOfPoints int) {
	if !l.debugEnabled() {
		return
	}
	l.Debug("basis references unknown point",
		"id", id,
		"points", numberOfPoints,
	)
}

// LogClamp logs a configuration value that was clamped into range.
func (l *Logger) LogClamp(param string, requested, applied float64) {
	if !l.debugEnabled() {
		return
	}
	l.Debug("configuration value clamped",
		"param", param,
		"requested", requested,
		"applied", applied,
	)
}
