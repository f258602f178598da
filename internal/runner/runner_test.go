package runner

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/puzzlekit/internal/metrics"
	"github.com/hupe1980/puzzlekit/internal/printer"
	"github.com/hupe1980/puzzlekit/search"
)

// fakeClock only moves when a step advances it.
type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) work(d time.Duration) func() (int, error) {
	return func() (int, error) {
		c.now = c.now.Add(d)
		return int(d / time.Millisecond), nil
	}
}

func newTestRunner(t *testing.T, opts ...Option) (*Runner, *fakeClock) {
	t.Helper()
	clk := &fakeClock{now: time.Unix(0, 0)}
	return New(context.Background(), 4, "test", append([]Option{WithClock(clk.Now)}, opts...)...), clk
}

func TestRunner_ShortestTimeTakesCheapestAlternative(t *testing.T) {
	r, clk := newTestRunner(t)

	_, err := Prep(r, "Parse", clk.work(1*time.Millisecond))
	require.NoError(t, err)
	_, err = Part(r, "Part 1", clk.work(5*time.Millisecond))
	require.NoError(t, err)
	require.NoError(t, r.SetTail("Parse"))
	_, err = Part(r, "Part 1 (DFS)", clk.work(2*time.Millisecond))
	require.NoError(t, err)
	_, err = Part(r, "Part 2", clk.work(3*time.Millisecond))
	require.NoError(t, err)
	require.NoError(t, r.Connect("Part 1", "Part 2"))

	total, ok := r.ShortestTime()
	require.True(t, ok)
	assert.Equal(t, 6*time.Millisecond, total)
}

func TestRunner_StartOver(t *testing.T) {
	r, clk := newTestRunner(t)

	_, _ = Part(r, "Slow", clk.work(9*time.Millisecond))
	r.StartOver()
	_, _ = Prep(r, "Parse", clk.work(2*time.Millisecond))
	_, _ = Part(r, "Fast", clk.work(3*time.Millisecond))

	total, ok := r.ShortestTime()
	require.True(t, ok)
	assert.Equal(t, 5*time.Millisecond, total)
}

func TestRunner_NoSteps(t *testing.T) {
	r, _ := newTestRunner(t)

	_, ok := r.ShortestTime()
	assert.False(t, ok)
	assert.False(t, r.Report().HasTotal)
}

func TestRunner_PartRecordsValue(t *testing.T) {
	r, clk := newTestRunner(t)

	v, err := Part(r, "Part 1", clk.work(7*time.Millisecond))
	require.NoError(t, err)
	assert.Equal(t, 7, v)
	_, err = Prep(r, "Index", clk.work(time.Millisecond))
	require.NoError(t, err)
	r.Info("Grid Width", 10)

	rep := r.Report()
	require.Len(t, rep.Steps, 2)
	assert.Equal(t, StepResult{Name: "Part 1", Value: "7", HasValue: true, Runs: 1, Duration: 7 * time.Millisecond}, rep.Steps[0])
	assert.False(t, rep.Steps[1].HasValue)
	assert.Equal(t, []Field{{Key: "Grid Width", Value: "10"}}, rep.Info)
	assert.Equal(t, 8*time.Millisecond, rep.Total)
}

func TestRunner_Bench(t *testing.T) {
	r, clk := newTestRunner(t, WithMode(ModeBench))
	assert.False(t, r.IsCold())

	calls := 0
	_, err := Part(r, "Part 1", func() (int, error) {
		calls++
		r.Track(search.Stats{Pushed: 2, Admitted: 1, Popped: 1})
		clk.now = clk.now.Add(3 * time.Millisecond)
		return 42, nil
	})
	require.NoError(t, err)

	rep := r.Report()
	assert.Equal(t, 501, calls, "one cold run plus the repetitions")
	assert.Equal(t, 500, rep.Steps[0].Runs)
	assert.Equal(t, 3*time.Millisecond, rep.Steps[0].Duration)
	assert.Equal(t, search.Stats{Pushed: 2, Admitted: 1, Popped: 1}, rep.Stats, "repetitions are not tracked")
}

func TestRunner_StepError(t *testing.T) {
	r, _ := newTestRunner(t)
	errBad := errors.New("bad input")

	_, err := Prep(r, "Parse", func() (int, error) { return 0, errBad })

	require.ErrorIs(t, err, errBad)
	assert.Contains(t, err.Error(), "Parse")
	assert.Empty(t, r.Report().Steps)
}

func TestRunner_StepPanic(t *testing.T) {
	r, _ := newTestRunner(t)

	_, err := Part(r, "Part 2", func() (int, error) {
		panic(fmt.Errorf("%w: deep path", search.ErrTraceOverflow))
	})
	require.ErrorIs(t, err, ErrStepPanicked)
	assert.ErrorIs(t, err, search.ErrTraceOverflow)

	_, err = Part(r, "Part 3", func() (int, error) { panic("plain") })
	require.ErrorIs(t, err, ErrStepPanicked)
	assert.Contains(t, err.Error(), "plain")
}

func TestRunner_UnknownStep(t *testing.T) {
	r, clk := newTestRunner(t)
	_, _ = Prep(r, "Parse", clk.work(time.Millisecond))

	assert.ErrorIs(t, r.SetTail("Nope"), ErrUnknownStep)
	assert.ErrorIs(t, r.Connect("Parse", "Nope"), ErrUnknownStep)
	assert.ErrorIs(t, r.Connect("Nope", "Parse"), ErrUnknownStep)
}

func TestRunner_TooManySteps(t *testing.T) {
	r, clk := newTestRunner(t)

	for i := range MaxSteps {
		_, err := Prep(r, fmt.Sprintf("step %d", i), clk.work(time.Millisecond))
		require.NoError(t, err)
	}
	_, err := Prep(r, "one more", clk.work(time.Millisecond))
	require.ErrorIs(t, err, ErrTooManySteps)

	total, ok := r.ShortestTime()
	require.True(t, ok)
	assert.Equal(t, MaxSteps*time.Millisecond, total)
}

func TestRunner_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	r := New(ctx, 1, "cancelled")

	_, err := Prep(r, "Parse", func() (int, error) { return 1, nil })
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRunner_RecordsSteps(t *testing.T) {
	var c metrics.BasicCollector
	r, clk := newTestRunner(t, WithCollector(&c))

	_, _ = Prep(r, "Parse", clk.work(2*time.Millisecond))
	_, _ = Part(r, "Part 1", clk.work(4*time.Millisecond))

	stats := c.GetStats()
	assert.Equal(t, int64(2), stats.StepCount)
	assert.Equal(t, (3 * time.Millisecond).Nanoseconds(), stats.StepAvgNanos)
}

func TestBenchRuns(t *testing.T) {
	tests := []struct {
		first time.Duration
		want  int
	}{
		{0, 2500},
		{999 * time.Microsecond, 2500},
		{time.Millisecond, 1000},
		{4 * time.Millisecond, 500},
		{9 * time.Millisecond, 100},
		{19 * time.Millisecond, 50},
		{49 * time.Millisecond, 20},
		{99 * time.Millisecond, 10},
		{299 * time.Millisecond, 4},
		{499 * time.Millisecond, 2},
		{time.Second, 1},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, benchRuns(tt.first), tt.first.String())
	}
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		in   time.Duration
		want string
	}{
		{-1, "-"},
		{0, "0ns"},
		{999, "999ns"},
		{1500, "1.50µs"},
		{2500 * time.Microsecond, "2.50ms"},
		{1500 * time.Millisecond, "1.50s"},
		{12 * time.Second, "12.0s"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatDuration(tt.in))
	}
}

func TestParseMode(t *testing.T) {
	m, err := ParseMode("bench")
	require.NoError(t, err)
	assert.Equal(t, ModeBench, m)

	_, err = ParseMode("forever")
	assert.Error(t, err)
}

func TestReport_Print(t *testing.T) {
	r, clk := newTestRunner(t)
	_, _ = Prep(r, "Parse", clk.work(2*time.Millisecond))
	_, _ = Part(r, "Part 1", clk.work(3*time.Millisecond))
	r.Info("Trailheads", 9)
	r.Track(search.Stats{Pushed: 3, Admitted: 2, Popped: 2})

	var out bytes.Buffer
	r.Report().Print(printer.New(&out, &out, false))

	want := `--- Day 4: test ---
Results:
  Part 1: 3

Info:
  Trailheads: 9

Search:
  Pushed: 3
  Admitted: 2
  Popped: 2

Times:
  Parse: 2.00ms
  Part 1: 3.00ms

Total: 5.00ms

`
	assert.Equal(t, want, out.String())
}
