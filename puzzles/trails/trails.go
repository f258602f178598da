// Package trails scores hiking trails on a topographic map.
package trails

import (
	"context"
	"fmt"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/puzzlekit"
	"github.com/hupe1980/puzzlekit/grid"
	"github.com/hupe1980/puzzlekit/internal/runner"
	"github.com/hupe1980/puzzlekit/search"
)

// Summit is the height every trail ends at.
const Summit = 9

// Map is a parsed topographic map.
type Map struct {
	Heights    *grid.Grid[uint8]
	Trailheads []grid.Point
}

type position = search.OnlyKey[grid.Point]

// Parse reads one digit per cell. Trailheads are listed in row-major order.
func Parse(input []byte) (*Map, error) {
	m := &Map{}
	g, err := grid.Parse(input, func(p grid.Point, b byte) (uint8, error) {
		if b < '0' || b > '9' {
			return 0, puzzlekit.NewParseError(p.Y+1, p.X+1, fmt.Errorf("unexpected %q", b))
		}
		if b == '0' {
			m.Trailheads = append(m.Trailheads, p)
		}
		return b - '0', nil
	})
	if err != nil {
		return nil, err
	}
	if g.Area() == 0 {
		return nil, puzzlekit.Malformed("empty map")
	}
	m.Heights = g
	return m, nil
}

// climb pushes every neighbor exactly one step higher.
func (m *Map) climb(s *search.Search[position], pos position) (struct{}, bool) {
	h := m.Heights.At(pos.K)
	if h == Summit {
		return struct{}{}, true
	}
	for _, n := range pos.K.CardinalNeighbors() {
		if v, ok := m.Heights.Get(n); ok && v == h+1 {
			s.Push(position{K: n})
		}
	}
	return struct{}{}, false
}

func (m *Map) total(s *search.Search[position]) (int, search.Stats) {
	var (
		sum   int
		stats search.Stats
	)
	for _, th := range m.Trailheads {
		s.Reset()
		s.Push(position{K: th})
		sum += search.Count(s, m.climb)
		stats = stats.Add(s.Stats())
	}
	return sum, stats
}

// Score sums, over all trailheads, the number of distinct summits reachable.
func (m *Map) Score() (int, search.Stats) {
	return m.total(search.New[position](search.NewDFS[position](), search.NewSeenSet[position, grid.Point](64)))
}

// Rating sums, over all trailheads, the number of distinct trails.
func (m *Map) Rating() (int, search.Stats) {
	return m.total(search.Without[position](search.NewDFS[position]()))
}

// ScoreParallel computes Score with trailheads spread over workers, each
// borrowing a search from a shared pool.
func (m *Map) ScoreParallel(ctx context.Context, workers int) (int, error) {
	if workers < 1 {
		workers = 1
	}
	pool := search.NewPool(func() *search.Search[position] {
		return search.New[position](search.NewDFS[position](), search.NewSeenSet[position, grid.Point](64))
	})

	var sum atomic.Int64
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for _, th := range m.Trailheads {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			s := pool.Get()
			defer pool.Put(s)
			s.Push(position{K: th})
			sum.Add(int64(search.Count(s, m.climb)))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return 0, err
	}
	return int(sum.Load()), nil
}

// Solve registers the day 10 steps.
func Solve(r *runner.Runner, input []byte) error {
	m, err := runner.Prep(r, "Parse", func() (*Map, error) { return Parse(input) })
	if err != nil {
		return err
	}

	if _, err := runner.Part(r, "Part 1", func() (int, error) {
		n, stats := m.Score()
		r.Track(stats)
		return n, nil
	}); err != nil {
		return err
	}
	if _, err := runner.Part(r, "Part 2", func() (int, error) {
		n, stats := m.Rating()
		r.Track(stats)
		return n, nil
	}); err != nil {
		return err
	}

	if err := r.SetTail("Parse"); err != nil {
		return err
	}
	if _, err := runner.Part(r, "Part 1 (Parallel)", func() (int, error) {
		return m.ScoreParallel(r.Context(), 4)
	}); err != nil {
		return err
	}
	if err := r.Connect("Part 1 (Parallel)", "Part 2"); err != nil {
		return err
	}

	r.Info("Grid Size", grid.Pt(m.Heights.Width(), m.Heights.Height()))
	r.Info("Trailheads", len(m.Trailheads))
	return nil
}
