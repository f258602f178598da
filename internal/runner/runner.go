// Package runner times the steps of a puzzle solution and reports results.
//
// A solver registers named prep and part steps. Each step is timed (and
// repeated in bench mode) and linked to the previous step, forming a small
// dependency graph. The reported total is the cheapest chain of steps from a
// root to a leaf, so alternative implementations of a part do not inflate it.
package runner

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/hupe1980/puzzlekit"
	"github.com/hupe1980/puzzlekit/search"
)

// MaxSteps is the maximum number of steps per puzzle.
const MaxSteps = 64

var (
	// ErrUnknownStep is returned when a step name was never registered.
	ErrUnknownStep = errors.New("unknown step")
	// ErrTooManySteps is returned when a puzzle registers more than MaxSteps.
	ErrTooManySteps = errors.New("too many steps")
	// ErrStepPanicked wraps a panic raised inside a step.
	ErrStepPanicked = errors.New("step panicked")
)

const noTail = -1

type step struct {
	name     string
	value    string
	hasValue bool
	runs     int
	perRun   time.Duration
	next     []int
	isChild  bool
}

// Field is a named informational value.
type Field struct {
	Key   string
	Value string
}

// Runner records the steps of one puzzle. Prep and Part must be called from
// the solver goroutine; Track may be called concurrently.
type Runner struct {
	ctx   context.Context
	day   int
	title string
	opts  options
	log   *puzzlekit.Logger

	steps []step
	tail  int
	info  []Field

	repeating atomic.Bool
	mu        sync.Mutex
	stats     search.Stats
}

// New creates a Runner for one puzzle.
func New(ctx context.Context, day int, title string, opts ...Option) *Runner {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return newRunner(ctx, day, title, o)
}

func newRunner(ctx context.Context, day int, title string, o options) *Runner {
	return &Runner{
		ctx:   ctx,
		day:   day,
		title: title,
		opts:  o,
		log:   o.logger.WithPuzzle(day, title),
		tail:  noTail,
	}
}

// Context returns the context the puzzle runs under.
func (r *Runner) Context() context.Context { return r.ctx }

// IsCold reports whether every step runs exactly once.
func (r *Runner) IsCold() bool { return r.opts.mode != ModeBench }

// StartOver makes the next step a new root.
func (r *Runner) StartOver() { r.tail = noTail }

// SetTail makes the next step a child of the named step, so it is measured
// as an alternative to the steps that followed it.
func (r *Runner) SetTail(name string) error {
	i, err := r.index(name)
	if err != nil {
		return err
	}
	r.tail = i
	return nil
}

// Connect adds a dependency edge between two registered steps.
func (r *Runner) Connect(src, dst string) error {
	a, err := r.index(src)
	if err != nil {
		return err
	}
	b, err := r.index(dst)
	if err != nil {
		return err
	}
	r.link(a, b)
	return nil
}

// Info attaches an informational value to the report.
func (r *Runner) Info(key string, value any) {
	r.info = append(r.info, Field{Key: key, Value: fmt.Sprint(value)})
}

// Track adds search traffic to the puzzle totals. Calls made while a bench
// repetition is running are ignored so totals reflect a single cold run.
func (r *Runner) Track(stats search.Stats) {
	if r.repeating.Load() {
		return
	}
	r.mu.Lock()
	r.stats = r.stats.Add(stats)
	r.mu.Unlock()
}

// Stats returns the tracked search traffic.
func (r *Runner) Stats() search.Stats {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.stats
}

// Prep runs a preparation step whose result feeds later steps.
func Prep[T any](r *Runner, name string, fn func() (T, error)) (T, error) {
	v, _, err := run(r, name, fn)
	return v, err
}

// Part runs a step that produces an answer. The answer is formatted with
// fmt.Sprint for the report.
func Part[T any](r *Runner, name string, fn func() (T, error)) (T, error) {
	v, i, err := run(r, name, fn)
	if err != nil {
		return v, err
	}
	r.steps[i].value = fmt.Sprint(v)
	r.steps[i].hasValue = true
	return v, nil
}

func run[T any](r *Runner, name string, fn func() (T, error)) (T, int, error) {
	var zero T
	if err := r.ctx.Err(); err != nil {
		return zero, 0, err
	}
	if len(r.steps) == MaxSteps {
		return zero, 0, fmt.Errorf("%w: %q would be step %d", ErrTooManySteps, name, MaxSteps+1)
	}

	start := r.opts.clock()
	res, err := protect(name, fn)
	elapsed := r.opts.clock().Sub(start)
	if err != nil {
		r.log.LogStep(r.ctx, name, 1, elapsed, err)
		return zero, 0, fmt.Errorf("%s: %w", name, err)
	}

	runs := 1
	if !r.IsCold() {
		runs = benchRuns(elapsed)

		r.repeating.Store(true)
		start = r.opts.clock()
		for range runs {
			if res, err = protect(name, fn); err != nil {
				break
			}
		}
		elapsed = r.opts.clock().Sub(start)
		r.repeating.Store(false)

		if err != nil {
			r.log.LogStep(r.ctx, name, runs, elapsed, err)
			return zero, 0, fmt.Errorf("%s: %w", name, err)
		}
	}

	perRun := elapsed / time.Duration(runs)
	i := r.addStep(name, runs, perRun)
	r.opts.collector.RecordStep(r.day, name, perRun)
	r.log.LogStep(r.ctx, name, runs, perRun, nil)
	return res, i, nil
}

func protect[T any](name string, fn func() (T, error)) (res T, err error) {
	defer func() {
		if p := recover(); p != nil {
			if perr, ok := p.(error); ok {
				err = fmt.Errorf("%w: %w", ErrStepPanicked, perr)
			} else {
				err = fmt.Errorf("%w: %v", ErrStepPanicked, p)
			}
		}
	}()
	return fn()
}

// benchRuns picks a repetition count from the duration of a cold run.
func benchRuns(first time.Duration) int {
	switch ms := first.Milliseconds(); {
	case ms < 1:
		return 2500
	case ms < 2:
		return 1000
	case ms < 5:
		return 500
	case ms < 10:
		return 100
	case ms < 20:
		return 50
	case ms < 50:
		return 20
	case ms < 100:
		return 10
	case ms < 300:
		return 4
	case ms < 500:
		return 2
	default:
		return 1
	}
}

func (r *Runner) addStep(name string, runs int, perRun time.Duration) int {
	i := len(r.steps)
	r.steps = append(r.steps, step{name: name, runs: runs, perRun: perRun})
	if r.tail != noTail {
		r.link(r.tail, i)
	}
	r.tail = i
	return i
}

func (r *Runner) link(a, b int) {
	r.steps[a].next = append(r.steps[a].next, b)
	r.steps[b].isChild = true
}

func (r *Runner) index(name string) (int, error) {
	for i, s := range r.steps {
		if s.name == name {
			return i, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownStep, name)
}

// timing is a partial chain of steps ending at index.
type timing struct {
	index int
	total time.Duration
}

func (t timing) Key() int            { return t.index }
func (t timing) Cost() time.Duration { return t.total }

// ShortestTime returns the cheapest total duration of a chain of steps from
// a root to a leaf. It returns false if no step ran.
func (r *Runner) ShortestTime() (time.Duration, bool) {
	// Costs sit on the steps, not the edges, so the first push of a step
	// already carries its cheapest total and a set-once seen space is exact.
	s := search.New[timing](search.NewDijkstra[timing, time.Duration](), &search.Word64[timing]{})
	for i, st := range r.steps {
		if !st.isChild {
			s.Push(timing{index: i, total: st.perRun})
		}
	}

	return search.Find(s, func(s *search.Search[timing], t timing) (time.Duration, bool) {
		next := r.steps[t.index].next
		if len(next) == 0 {
			return t.total, true
		}
		for _, n := range next {
			s.Push(timing{index: n, total: t.total + r.steps[n].perRun})
		}
		return 0, false
	})
}

// StepResult is one timed step in a Report.
type StepResult struct {
	Name     string
	Value    string
	HasValue bool
	Runs     int
	Duration time.Duration
}

// Report is the outcome of one puzzle.
type Report struct {
	Day      int
	Title    string
	Steps    []StepResult
	Info     []Field
	Total    time.Duration
	HasTotal bool
	Stats    search.Stats
	Err      error
}

// Report summarizes the recorded steps.
func (r *Runner) Report() Report {
	rep := Report{
		Day:   r.day,
		Title: r.title,
		Info:  append([]Field(nil), r.info...),
		Stats: r.Stats(),
	}
	for _, s := range r.steps {
		rep.Steps = append(rep.Steps, StepResult{
			Name:     s.name,
			Value:    s.value,
			HasValue: s.hasValue,
			Runs:     s.runs,
			Duration: s.perRun,
		})
	}
	rep.Total, rep.HasTotal = r.ShortestTime()
	return rep
}
