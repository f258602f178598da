package runner

import (
	"fmt"
	"time"

	"github.com/hupe1980/puzzlekit"
	"github.com/hupe1980/puzzlekit/internal/metrics"
)

// Mode selects how often each step runs.
type Mode string

const (
	// ModeOnce runs every step a single time.
	ModeOnce Mode = "once"
	// ModeBench repeats each step and reports the mean duration.
	ModeBench Mode = "bench"
)

// ParseMode validates a mode name.
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case ModeOnce, ModeBench:
		return Mode(s), nil
	default:
		return "", fmt.Errorf("unknown mode %q", s)
	}
}

type options struct {
	mode      Mode
	logger    *puzzlekit.Logger
	collector metrics.Collector
	clock     func() time.Time
	runID     string
	parallel  int
}

func defaultOptions() options {
	return options{
		mode:      ModeOnce,
		logger:    puzzlekit.NoopLogger(),
		collector: metrics.NoopCollector{},
		clock:     time.Now,
		parallel:  1,
	}
}

// Option configures a Runner or a Session.
type Option func(*options)

// WithMode sets the run mode. The default is ModeOnce.
func WithMode(m Mode) Option {
	return func(o *options) {
		o.mode = m
	}
}

// WithLogger configures the logger.
//
// If nil is passed, logging is disabled.
func WithLogger(l *puzzlekit.Logger) Option {
	return func(o *options) {
		if l == nil {
			l = puzzlekit.NoopLogger()
		}
		o.logger = l
	}
}

// WithCollector configures the metrics collector.
//
// If nil is passed, metrics are discarded.
func WithCollector(c metrics.Collector) Option {
	return func(o *options) {
		if c == nil {
			c = metrics.NoopCollector{}
		}
		o.collector = c
	}
}

// WithClock replaces time.Now for step timing. Tests use it to make
// durations deterministic.
func WithClock(clock func() time.Time) Option {
	return func(o *options) {
		o.clock = clock
	}
}

// WithRunID sets the id attached to logs. Sessions generate one if unset.
func WithRunID(id string) Option {
	return func(o *options) {
		o.runID = id
	}
}

// WithParallel sets how many puzzles a Session solves concurrently.
// Values below one mean one.
func WithParallel(n int) Option {
	return func(o *options) {
		if n < 1 {
			n = 1
		}
		o.parallel = n
	}
}
