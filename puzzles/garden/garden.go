// Package garden prices fencing for regions of garden plots.
package garden

import (
	"fmt"

	"github.com/hupe1980/puzzlekit"
	"github.com/hupe1980/puzzlekit/grid"
	"github.com/hupe1980/puzzlekit/internal/runner"
	"github.com/hupe1980/puzzlekit/search"
)

// Region is a connected group of plots growing the same plant.
type Region struct {
	Plant     byte
	Area      int
	Perimeter int
	Sides     int
}

// plot is keyed by its row-major grid index; the plant rides along.
type plot = search.KeyExtra[uint32, byte]

// Parse reads one uppercase letter per plot.
func Parse(input []byte) (*grid.Grid[byte], error) {
	g, err := grid.Parse(input, func(p grid.Point, b byte) (byte, error) {
		if b < 'A' || b > 'Z' {
			return 0, puzzlekit.NewParseError(p.Y+1, p.X+1, fmt.Errorf("unexpected %q", b))
		}
		return b, nil
	})
	if err != nil {
		return nil, err
	}
	if g.Area() == 0 {
		return nil, puzzlekit.Malformed("empty garden")
	}
	return g, nil
}

// measured is what a single plot contributes to its region.
type measured struct {
	perimeter int
	corners   int
}

// Regions flood-fills every region in row-major order of their first plot.
func Regions(g *grid.Grid[byte]) ([]Region, search.Stats) {
	s := search.New[plot](search.NewDFS[plot](), search.NewRoaring[plot]())
	var regions []Region

	for p, plant := range g.All() {
		// Only the first plot of a region is admitted here; the rest were
		// claimed by an earlier flood.
		if !s.Push(plot{K: uint32(g.Index(p)), E: plant}) {
			continue
		}

		r := search.Fold(s, Region{Plant: plant}, func(s *search.Search[plot], cur plot) (measured, bool) {
			at := g.PointOf(int(cur.K))
			m := measured{perimeter: 4, corners: corners(g, at, cur.E)}
			for _, n := range at.CardinalNeighbors() {
				if v, ok := g.Get(n); ok && v == cur.E {
					s.Push(plot{K: uint32(g.Index(n)), E: v})
					m.perimeter--
				}
			}
			return m, true
		}, func(r Region, m measured) Region {
			r.Area++
			r.Perimeter += m.perimeter
			r.Sides += m.corners
			return r
		})
		regions = append(regions, r)
	}
	return regions, s.Stats()
}

// corners counts the fence corners at a plot. A polygon has as many sides as
// corners.
func corners(g *grid.Grid[byte], at grid.Point, plant byte) int {
	same := func(p grid.Point) bool {
		v, ok := g.Get(p)
		return ok && v == plant
	}

	orth := at.CardinalNeighbors()  // N, E, S, W
	diag := at.DiagonalNeighbors() // NE, SE, SW, NW
	n := 0
	for i := range 4 {
		a, b := same(orth[i]), same(orth[(i+1)%4])
		switch {
		case !a && !b:
			n++
		case a && b && !same(diag[i]):
			n++
		}
	}
	return n
}

// Price is the sum of area times perimeter.
func Price(regions []Region) int {
	total := 0
	for _, r := range regions {
		total += r.Area * r.Perimeter
	}
	return total
}

// BulkPrice is the sum of area times number of sides.
func BulkPrice(regions []Region) int {
	total := 0
	for _, r := range regions {
		total += r.Area * r.Sides
	}
	return total
}

// Solve registers the day 12 steps.
func Solve(r *runner.Runner, input []byte) error {
	g, err := runner.Prep(r, "Parse", func() (*grid.Grid[byte], error) { return Parse(input) })
	if err != nil {
		return err
	}

	regions, err := runner.Prep(r, "Regions", func() ([]Region, error) {
		regions, stats := Regions(g)
		r.Track(stats)
		return regions, nil
	})
	if err != nil {
		return err
	}
	if _, err := runner.Part(r, "Part 1", func() (int, error) { return Price(regions), nil }); err != nil {
		return err
	}
	if _, err := runner.Part(r, "Part 2", func() (int, error) { return BulkPrice(regions), nil }); err != nil {
		return err
	}

	r.Info("Regions", len(regions))
	return nil
}
