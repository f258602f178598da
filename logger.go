package puzzlekit

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"
)

// Logger wraps slog.Logger with puzzle-runner context.
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

// NewJSONLogger creates a Logger that outputs JSON-formatted logs to w.
// level sets the minimum log level (e.g., slog.LevelDebug, slog.LevelInfo).
func NewJSONLogger(w io.Writer, level slog.Level) *Logger {
	return NewLogger(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}))
}

// NewTextLogger creates a Logger that outputs human-readable text logs to w.
func NewTextLogger(w io.Writer, level slog.Level) *Logger {
	return NewLogger(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// NoopLogger creates a Logger that discards all log output.
func NoopLogger() *Logger {
	return NewLogger(slog.NewTextHandler(io.Discard, nil))
}

// ParseLevel maps a level name (debug, info, warn, error) to a slog.Level.
func ParseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.ToUpper(strings.TrimSpace(s)))); err != nil {
		return 0, fmt.Errorf("invalid log level %q: %w", s, err)
	}
	return level, nil
}

// WithRunID tags every record with the id of the current run.
func (l *Logger) WithRunID(id string) *Logger {
	return &Logger{
		Logger: l.Logger.With("run_id", id),
	}
}

// WithPuzzle tags every record with the puzzle day and title.
func (l *Logger) WithPuzzle(day int, title string) *Logger {
	return &Logger{
		Logger: l.Logger.With("day", day, "puzzle", title),
	}
}

// LogStep logs a timed prep or part step.
func (l *Logger) LogStep(ctx context.Context, name string, runs int, perRun time.Duration, err error) {
	if err != nil {
		l.ErrorContext(ctx, "step failed",
			"step", name,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "step completed",
			"step", name,
			"runs", runs,
			"duration", perRun,
		)
	}
}

// LogPuzzle logs the outcome of a whole puzzle.
func (l *Logger) LogPuzzle(ctx context.Context, total time.Duration, err error) {
	if err != nil {
		l.ErrorContext(ctx, "puzzle failed",
			"error", err,
		)
	} else {
		l.InfoContext(ctx, "puzzle solved",
			"total", total,
		)
	}
}

// LogInput logs an input load.
func (l *Logger) LogInput(ctx context.Context, path string, size int, err error) {
	if err != nil {
		l.WarnContext(ctx, "input load failed",
			"path", path,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "input loaded",
			"path", path,
			"bytes", size,
		)
	}
}
