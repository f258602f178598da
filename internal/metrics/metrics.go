// Package metrics collects step timings and search traffic from puzzle runs.
package metrics

import (
	"sync/atomic"
	"time"

	"github.com/hupe1980/puzzlekit/search"
)

// Collector defines an interface for collecting run metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
type Collector interface {
	// RecordStep is called after each timed prep or part step with the
	// per-run duration.
	RecordStep(day int, step string, duration time.Duration)

	// RecordSearch is called once per puzzle with the accumulated search
	// traffic of its cold run.
	RecordSearch(day int, stats search.Stats)

	// RecordPuzzle is called after each puzzle. total is the critical-path
	// time, err is nil if successful.
	RecordPuzzle(day int, total time.Duration, err error)
}

// NoopCollector is a no-op implementation of Collector.
// Use this when metrics collection is not needed.
type NoopCollector struct{}

func (NoopCollector) RecordStep(int, string, time.Duration)  {}
func (NoopCollector) RecordSearch(int, search.Stats)         {}
func (NoopCollector) RecordPuzzle(int, time.Duration, error) {}

// BasicCollector provides simple in-memory metrics collection.
// Useful for debugging and tests without external dependencies.
type BasicCollector struct {
	StepCount      atomic.Int64
	StepTotalNanos atomic.Int64
	Pushed         atomic.Int64
	Admitted       atomic.Int64
	Popped         atomic.Int64
	PuzzleCount    atomic.Int64
	PuzzleErrors   atomic.Int64
}

// RecordStep implements Collector.
func (b *BasicCollector) RecordStep(_ int, _ string, duration time.Duration) {
	b.StepCount.Add(1)
	b.StepTotalNanos.Add(duration.Nanoseconds())
}

// RecordSearch implements Collector.
func (b *BasicCollector) RecordSearch(_ int, stats search.Stats) {
	b.Pushed.Add(int64(stats.Pushed))
	b.Admitted.Add(int64(stats.Admitted))
	b.Popped.Add(int64(stats.Popped))
}

// RecordPuzzle implements Collector.
func (b *BasicCollector) RecordPuzzle(_ int, _ time.Duration, err error) {
	b.PuzzleCount.Add(1)
	if err != nil {
		b.PuzzleErrors.Add(1)
	}
}

// GetStats returns a snapshot of current metrics.
func (b *BasicCollector) GetStats() BasicStats {
	return BasicStats{
		StepCount:    b.StepCount.Load(),
		StepAvgNanos: b.getAvgStepNanos(),
		Search: search.Stats{
			Pushed:   int(b.Pushed.Load()),
			Admitted: int(b.Admitted.Load()),
			Popped:   int(b.Popped.Load()),
		},
		PuzzleCount:  b.PuzzleCount.Load(),
		PuzzleErrors: b.PuzzleErrors.Load(),
	}
}

func (b *BasicCollector) getAvgStepNanos() int64 {
	count := b.StepCount.Load()
	if count == 0 {
		return 0
	}
	return b.StepTotalNanos.Load() / count
}

// BasicStats is a snapshot of BasicCollector state.
type BasicStats struct {
	StepCount    int64
	StepAvgNanos int64
	Search       search.Stats
	PuzzleCount  int64
	PuzzleErrors int64
}
