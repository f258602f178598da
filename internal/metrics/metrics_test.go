package metrics

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/puzzlekit/search"
)

var (
	_ Collector = NoopCollector{}
	_ Collector = (*BasicCollector)(nil)
	_ Collector = (*Prometheus)(nil)
)

func TestBasicCollector(t *testing.T) {
	var c BasicCollector

	c.RecordStep(1, "Parse", 2*time.Millisecond)
	c.RecordStep(1, "Part 1", 4*time.Millisecond)
	c.RecordSearch(1, search.Stats{Pushed: 10, Admitted: 7, Popped: 5})
	c.RecordSearch(2, search.Stats{Pushed: 1, Admitted: 1, Popped: 1})
	c.RecordPuzzle(1, time.Second, nil)
	c.RecordPuzzle(2, 0, errors.New("boom"))

	stats := c.GetStats()
	assert.Equal(t, int64(2), stats.StepCount)
	assert.Equal(t, (3 * time.Millisecond).Nanoseconds(), stats.StepAvgNanos)
	assert.Equal(t, search.Stats{Pushed: 11, Admitted: 8, Popped: 6}, stats.Search)
	assert.Equal(t, int64(2), stats.PuzzleCount)
	assert.Equal(t, int64(1), stats.PuzzleErrors)
}

func TestBasicCollector_Empty(t *testing.T) {
	var c BasicCollector

	assert.Zero(t, c.GetStats().StepAvgNanos)
}

func TestPrometheus(t *testing.T) {
	p := NewPrometheus("run-1")

	p.RecordStep(16, "Parse", time.Millisecond)
	p.RecordSearch(16, search.Stats{Pushed: 10, Admitted: 7, Popped: 5})
	p.RecordSearch(16, search.Stats{Pushed: 1, Admitted: 1, Popped: 1})
	p.RecordPuzzle(16, 3*time.Second, nil)
	p.RecordPuzzle(18, 0, errors.New("boom"))

	assert.Equal(t, float64(11), testutil.ToFloat64(p.searchStates.WithLabelValues("16", "pushed")))
	assert.Equal(t, float64(6), testutil.ToFloat64(p.searchStates.WithLabelValues("16", "popped")))
	assert.Equal(t, float64(1), testutil.ToFloat64(p.puzzles.WithLabelValues("success")))
	assert.Equal(t, float64(1), testutil.ToFloat64(p.puzzles.WithLabelValues("error")))
	assert.Equal(t, float64(3), testutil.ToFloat64(p.puzzleTotal.WithLabelValues("16")))
	assert.Equal(t, 1, testutil.CollectAndCount(p.stepLatency))
}

func TestPrometheus_WriteToTextfile(t *testing.T) {
	p := NewPrometheus("run-2")
	p.RecordStep(4, "Part 1", time.Millisecond)

	path := filepath.Join(t.TempDir(), "puzzlekit.prom")
	require.NoError(t, p.WriteToTextfile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "puzzlekit_step_duration_seconds_count")
	assert.Contains(t, string(data), `run_id="run-2"`)
	assert.Contains(t, string(data), `step="Part 1"`)
}
