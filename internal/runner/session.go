package runner

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// Solver solves one puzzle, registering its steps on r.
type Solver func(r *Runner, input []byte) error

// Puzzle is a registered solver.
type Puzzle struct {
	Day   int
	Title string
	Solve Solver
}

// InputSource provides puzzle inputs by day.
type InputSource interface {
	Load(ctx context.Context, day int) ([]byte, error)
}

// Session runs a set of puzzles and collects their reports.
type Session struct {
	source InputSource
	opts   options
	runID  string
}

// NewSession creates a Session reading inputs from source.
func NewSession(source InputSource, opts ...Option) *Session {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.runID == "" {
		o.runID = uuid.NewString()
	}
	o.logger = o.logger.WithRunID(o.runID)
	return &Session{source: source, opts: o, runID: o.runID}
}

// RunID returns the id attached to every log record of the session.
func (s *Session) RunID() string { return s.runID }

// Run solves every puzzle, at most the configured number at a time. Reports
// are returned in day order. A failed puzzle does not stop the others; the
// returned error joins every failure.
func (s *Session) Run(ctx context.Context, puzzles []Puzzle) ([]Report, error) {
	reports := make([]Report, len(puzzles))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.opts.parallel)
	for i, p := range puzzles {
		g.Go(func() error {
			reports[i] = s.solve(ctx, p)
			return ctx.Err()
		})
	}
	if err := g.Wait(); err != nil {
		return reports, err
	}

	sort.SliceStable(reports, func(a, b int) bool { return reports[a].Day < reports[b].Day })

	var errs []error
	for _, rep := range reports {
		if rep.Err != nil {
			errs = append(errs, fmt.Errorf("day %d: %w", rep.Day, rep.Err))
		}
	}
	return reports, errors.Join(errs...)
}

func (s *Session) solve(ctx context.Context, p Puzzle) Report {
	r := newRunner(ctx, p.Day, p.Title, s.opts)

	input, err := s.source.Load(ctx, p.Day)
	if err == nil {
		err = p.Solve(r, input)
	}

	rep := r.Report()
	rep.Err = err
	s.opts.collector.RecordSearch(p.Day, rep.Stats)
	s.opts.collector.RecordPuzzle(p.Day, rep.Total, err)
	r.log.LogPuzzle(ctx, rep.Total, err)
	return rep
}
