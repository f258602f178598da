// Package racetrack counts shortcuts through the walls of a single-lane race
// track.
package racetrack

import (
	"fmt"

	"github.com/hupe1980/puzzlekit"
	"github.com/hupe1980/puzzlekit/grid"
	"github.com/hupe1980/puzzlekit/internal/runner"
	"github.com/hupe1980/puzzlekit/search"
)

// Unreached marks walls and cells the end cannot be reached from.
const Unreached = -1

// Track is a parsed race track.
type Track struct {
	Walls *grid.Grid[bool]
	Start grid.Point
	End   grid.Point
}

// Parse reads a track of '#', '.', 'S' and 'E' cells.
func Parse(input []byte) (*Track, error) {
	var (
		t                Track
		hasStart, hasEnd bool
	)
	walls, err := grid.Parse(input, func(p grid.Point, b byte) (bool, error) {
		switch b {
		case '#':
			return true, nil
		case '.':
			return false, nil
		case 'S':
			t.Start, hasStart = p, true
			return false, nil
		case 'E':
			t.End, hasEnd = p, true
			return false, nil
		default:
			return false, puzzlekit.NewParseError(p.Y+1, p.X+1, fmt.Errorf("unexpected cell %q", b))
		}
	})
	if err != nil {
		return nil, err
	}
	if !hasStart || !hasEnd {
		return nil, puzzlekit.Malformed("track needs a start and an end")
	}
	t.Walls = walls
	return &t, nil
}

type (
	step = search.Node[grid.Point, int]
	cell = search.Node[int, int]
)

// Course holds the distance to the end from every track cell.
type Course struct {
	Dist   *grid.Grid[int]
	Length int
}

// Flood measures the distance from every track cell to the end.
func (t *Track) Flood() (*Course, search.Stats) {
	s := search.New[step](search.NewBFS[step](), search.NewSeenSet[step, grid.Point](t.Walls.Area()))
	s.Push(step{K: t.End})

	dist := search.Fold(s, grid.New(t.Walls.Width(), t.Walls.Height(), Unreached),
		func(s *search.Search[step], st step) (step, bool) {
			for _, n := range st.K.CardinalNeighbors() {
				if wall, ok := t.Walls.Get(n); ok && !wall {
					s.Push(step{K: n, C: st.C + 1})
				}
			}
			return st, true
		},
		func(g *grid.Grid[int], st step) *grid.Grid[int] {
			g.Set(st.K, st.C)
			return g
		})

	return &Course{Dist: dist, Length: dist.At(t.Start)}, s.Stats()
}

// saving is how much a cheat of length n from a to b shortens the race.
func (c *Course) saving(a, b grid.Point, n int) int {
	return c.Dist.At(a) - c.Dist.At(b) - n
}

// CountCheats counts the two-step cheats saving at least threshold picoseconds.
func (c *Course) CountCheats(threshold int) int {
	offsets := [8]grid.Point{
		{X: 0, Y: -2}, {X: 2, Y: 0}, {X: 0, Y: 2}, {X: -2, Y: 0},
		{X: 1, Y: -1}, {X: 1, Y: 1}, {X: -1, Y: 1}, {X: -1, Y: -1},
	}

	count := 0
	for p, d := range c.Dist.All() {
		if d == Unreached {
			continue
		}
		for _, o := range offsets {
			q := p.Add(o)
			if v, ok := c.Dist.Get(q); ok && v != Unreached && c.saving(p, q, ShortCheat) >= threshold {
				count++
			}
		}
	}
	return count
}

// CountLongCheats counts cheats of up to maxLen steps saving at least threshold,
// exploring the cells within reach of every track cell breadth first.
func (c *Course) CountLongCheats(maxLen, threshold int) (int, search.Stats) {
	g := c.Dist
	s := search.New[cell](
		search.NewBFS[cell](),
		search.NewBitset[cell](g.Area()),
	)

	var (
		count int
		stats search.Stats
	)
	for p, d := range g.All() {
		if d == Unreached {
			continue
		}
		s.Reset()
		s.Push(cell{K: g.Index(p)})

		count += search.Count(s, func(s *search.Search[cell], n cell) (struct{}, bool) {
			at := g.PointOf(n.K)
			if n.C < maxLen {
				for _, next := range at.CardinalNeighbors() {
					if g.In(next) {
						s.Push(cell{K: g.Index(next), C: n.C + 1})
					}
				}
			}
			return struct{}{}, g.At(at) != Unreached && c.saving(p, at, n.C) >= threshold
		})
		stats = stats.Add(s.Stats())
	}
	return count, stats
}

// CountLongCheatsManhattan counts the same cheats as CountLongCheats by
// scanning the diamond of offsets around every track cell.
func (c *Course) CountLongCheatsManhattan(maxLen, threshold int) int {
	count := 0
	for p, d := range c.Dist.All() {
		if d == Unreached {
			continue
		}
		for dy := -maxLen; dy <= maxLen; dy++ {
			span := maxLen - abs(dy)
			for dx := -span; dx <= span; dx++ {
				q := p.Add(grid.Pt(dx, dy))
				if v, ok := c.Dist.Get(q); ok && v != Unreached && c.saving(p, q, abs(dx)+abs(dy)) >= threshold {
					count++
				}
			}
		}
	}
	return count
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// Cheat rules of the real race.
const (
	ShortCheat = 2
	LongCheat  = 20
	MinSaving  = 100
)

// Solve registers the day 20 steps.
func Solve(r *runner.Runner, input []byte) error {
	t, err := runner.Prep(r, "Parse", func() (*Track, error) { return Parse(input) })
	if err != nil {
		return err
	}
	c, err := runner.Prep(r, "Flood", func() (*Course, error) {
		c, stats := t.Flood()
		r.Track(stats)
		return c, nil
	})
	if err != nil {
		return err
	}
	if c.Length == Unreached {
		return puzzlekit.Malformed("end unreachable from start")
	}

	if _, err := runner.Part(r, "Part 1", func() (int, error) { return c.CountCheats(MinSaving), nil }); err != nil {
		return err
	}
	if _, err := runner.Part(r, "Part 2", func() (int, error) {
		n, stats := c.CountLongCheats(LongCheat, MinSaving)
		r.Track(stats)
		return n, nil
	}); err != nil {
		return err
	}

	if err := r.SetTail("Part 1"); err != nil {
		return err
	}
	if _, err := runner.Part(r, "Part 2 (Manhattan)", func() (int, error) {
		return c.CountLongCheatsManhattan(LongCheat, MinSaving), nil
	}); err != nil {
		return err
	}

	r.Info("Track Size", grid.Pt(t.Walls.Width(), t.Walls.Height()))
	r.Info("Race Length", c.Length)
	return nil
}
