// Package ram finds a way out of a memory space while bytes fall into it.
package ram

import (
	"bytes"
	"errors"
	"fmt"
	"sort"
	"strconv"

	"github.com/hupe1980/puzzlekit"
	"github.com/hupe1980/puzzlekit/grid"
	"github.com/hupe1980/puzzlekit/internal/runner"
	"github.com/hupe1980/puzzlekit/search"
)

// Dimensions of the real memory space.
const (
	Size  = 71
	Limit = 1024
)

var (
	// ErrNoExit is returned when the exit cannot be reached.
	ErrNoExit = errors.New("ram: exit unreachable")
	// ErrNeverBlocked is returned when all bytes fall and the exit stays reachable.
	ErrNeverBlocked = errors.New("ram: exit never blocked")
)

// Memory is a square memory space with the falling order of its bytes.
type Memory struct {
	// Fallen holds the 1-based time each cell gets corrupted, 0 if never.
	Fallen *grid.Grid[int]
	Bytes  []grid.Point
}

// Parse reads one "x,y" coordinate per line for a size x size space.
func Parse(input []byte, size int) (*Memory, error) {
	m := &Memory{Fallen: grid.New(size, size, 0)}
	for i, line := range bytes.Split(bytes.TrimSpace(input), []byte("\n")) {
		line = bytes.TrimSpace(line)
		if len(line) == 0 {
			continue
		}
		xs, ys, ok := bytes.Cut(line, []byte(","))
		if !ok {
			return nil, puzzlekit.NewParseError(i+1, 1, errors.New("missing comma"))
		}
		x, err := strconv.Atoi(string(xs))
		if err != nil {
			return nil, puzzlekit.NewParseError(i+1, 1, err)
		}
		y, err := strconv.Atoi(string(ys))
		if err != nil {
			return nil, puzzlekit.NewParseError(i+1, len(xs)+2, err)
		}
		p := grid.Pt(x, y)
		if !m.Fallen.In(p) {
			return nil, puzzlekit.NewParseError(i+1, 1, fmt.Errorf("%v outside %dx%d", p, size, size))
		}
		m.Bytes = append(m.Bytes, p)
		if m.Fallen.At(p) == 0 {
			m.Fallen.Set(p, len(m.Bytes))
		}
	}
	if len(m.Bytes) == 0 {
		return nil, puzzlekit.Malformed("no bytes")
	}
	return m, nil
}

type cell = search.Node[int, int]

// pathfinder reuses one breadth-first search across queries.
type pathfinder struct {
	m     *Memory
	s     *search.Search[cell]
	start int
	exit  int
	total search.Stats
}

func newPathfinder(m *Memory) *pathfinder {
	g := m.Fallen
	return &pathfinder{
		m:    m,
		s:    search.New[cell](search.NewBFS[cell](), search.NewBitSeen[cell](g.Area())),
		exit: g.Area() - 1,
	}
}

// steps returns the shortest number of steps from the top left to the bottom
// right corner after limit bytes have fallen.
func (pf *pathfinder) steps(limit int) (int, bool) {
	g := pf.m.Fallen
	pf.s.Reset()
	defer func() { pf.total = pf.total.Add(pf.s.Stats()) }()

	if t := g.At(g.PointOf(pf.start)); t != 0 && t <= limit {
		return 0, false
	}
	pf.s.Push(cell{K: pf.start})
	return search.Find(pf.s, func(s *search.Search[cell], c cell) (int, bool) {
		if c.K == pf.exit {
			return c.C, true
		}
		for _, n := range g.PointOf(c.K).CardinalNeighbors() {
			if t, ok := g.Get(n); ok && (t == 0 || t > limit) {
				s.Push(cell{K: g.Index(n), C: c.C + 1})
			}
		}
		return 0, false
	})
}

// Steps returns the length of the shortest path to the exit after limit bytes.
func (m *Memory) Steps(limit int) (int, search.Stats, error) {
	pf := newPathfinder(m)
	n, ok := pf.steps(limit)
	if !ok {
		return 0, pf.total, ErrNoExit
	}
	return n, pf.total, nil
}

// FirstBlocking returns the first byte after the given count that cuts the
// exit off, found by binary search over the number of fallen bytes.
func (m *Memory) FirstBlocking(after int) (grid.Point, search.Stats, error) {
	pf := newPathfinder(m)
	after = max(after, 0)
	remaining := len(m.Bytes) - after

	i := sort.Search(remaining, func(i int) bool {
		_, ok := pf.steps(after + i + 1)
		return !ok
	})
	if i == remaining {
		return grid.Point{}, pf.total, ErrNeverBlocked
	}
	return m.Bytes[after+i], pf.total, nil
}

// Solve registers the day 18 steps for the real memory space.
func Solve(r *runner.Runner, input []byte) error {
	return solve(r, input, Size, Limit)
}

func solve(r *runner.Runner, input []byte, size, limit int) error {
	m, err := runner.Prep(r, "Parse", func() (*Memory, error) { return Parse(input, size) })
	if err != nil {
		return err
	}

	if _, err := runner.Part(r, "Part 1", func() (int, error) {
		n, stats, err := m.Steps(limit)
		r.Track(stats)
		return n, err
	}); err != nil {
		return err
	}
	if _, err := runner.Part(r, "Part 2", func() (grid.Point, error) {
		p, stats, err := m.FirstBlocking(limit)
		r.Track(stats)
		return p, err
	}); err != nil {
		return err
	}

	r.Info("Bytes", len(m.Bytes))
	return nil
}
