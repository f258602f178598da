// Package wordsearch counts XMAS in a letter grid.
package wordsearch

import (
	"fmt"

	"github.com/hupe1980/puzzlekit"
	"github.com/hupe1980/puzzlekit/grid"
	"github.com/hupe1980/puzzlekit/internal/runner"
	"github.com/hupe1980/puzzlekit/search"
)

const word = "XMAS"

// every straight line through a cell, including diagonals and reversals
var lines = [8]grid.Point{
	{X: -1, Y: -1}, {X: 0, Y: -1}, {X: 1, Y: -1},
	{X: -1, Y: 0}, {X: 1, Y: 0},
	{X: -1, Y: 1}, {X: 0, Y: 1}, {X: 1, Y: 1},
}

// Parse reads the letter grid.
func Parse(input []byte) (*grid.Grid[byte], error) {
	g, err := grid.Parse(input, func(p grid.Point, b byte) (byte, error) {
		if (b < 'A' || b > 'Z') && b != '.' {
			return 0, puzzlekit.NewParseError(p.Y+1, p.X+1, fmt.Errorf("unexpected %q", b))
		}
		return b, nil
	})
	if err != nil {
		return nil, err
	}
	if g.Area() == 0 {
		return nil, puzzlekit.Malformed("empty grid")
	}
	return g, nil
}

// CountXMAS counts every occurrence of XMAS in any of the eight directions by
// scanning from each X.
func CountXMAS(g *grid.Grid[byte]) int {
	count := 0
	for p, c := range g.All() {
		if c != word[0] {
			continue
		}
	line:
		for _, d := range lines {
			for n := 1; n < len(word); n++ {
				if v, ok := g.Get(p.Add(d.Scale(n))); !ok || v != word[n] {
					continue line
				}
			}
			count++
		}
	}
	return count
}

// letter is a partial match: the cell at has to hold word[index].
type letter struct {
	at    grid.Point
	dir   grid.Point
	index int
}

// CountXMASSearch counts the same matches with an exhaustive depth-first
// search. Every partial match is its own state, so nothing is deduplicated.
func CountXMASSearch(g *grid.Grid[byte]) (int, search.Stats) {
	s := search.Without[letter](search.NewDFS[letter]())
	for p, c := range g.All() {
		if c != word[0] {
			continue
		}
		for _, d := range lines {
			if next := p.Add(d); g.In(next) {
				s.Push(letter{at: next, dir: d, index: 1})
			}
		}
	}

	n := search.Count(s, func(s *search.Search[letter], l letter) (struct{}, bool) {
		if g.At(l.at) != word[l.index] {
			return struct{}{}, false
		}
		if l.index == len(word)-1 {
			return struct{}{}, true
		}
		if next := l.at.Add(l.dir); g.In(next) {
			s.Push(letter{at: next, dir: l.dir, index: l.index + 1})
		}
		return struct{}{}, false
	})
	return n, s.Stats()
}

// CountCrossMAS counts A cells whose two diagonals both spell MAS in either
// direction.
func CountCrossMAS(g *grid.Grid[byte]) int {
	count := 0
	for y := 1; y < g.Height()-1; y++ {
		for x := 1; x < g.Width()-1; x++ {
			p := grid.Pt(x, y)
			if g.At(p) != 'A' {
				continue
			}
			diag := p.DiagonalNeighbors() // NE, SE, SW, NW
			if isMS(g.At(diag[3]), g.At(diag[1])) && isMS(g.At(diag[0]), g.At(diag[2])) {
				count++
			}
		}
	}
	return count
}

func isMS(a, b byte) bool {
	return (a == 'M' && b == 'S') || (a == 'S' && b == 'M')
}

// Solve registers the day 4 steps.
func Solve(r *runner.Runner, input []byte) error {
	g, err := runner.Prep(r, "Parse", func() (*grid.Grid[byte], error) { return Parse(input) })
	if err != nil {
		return err
	}
	r.Info("Grid Width", g.Width())
	r.Info("Grid Height", g.Height())

	if _, err := runner.Part(r, "Part 1", func() (int, error) { return CountXMAS(g), nil }); err != nil {
		return err
	}
	if _, err := runner.Part(r, "Part 2", func() (int, error) { return CountCrossMAS(g), nil }); err != nil {
		return err
	}

	// The search-based count is an alternative to the scan.
	if err := r.SetTail("Parse"); err != nil {
		return err
	}
	if _, err := runner.Part(r, "Part 1 (DFS)", func() (int, error) {
		n, stats := CountXMASSearch(g)
		r.Track(stats)
		return n, nil
	}); err != nil {
		return err
	}
	return r.Connect("Part 1 (DFS)", "Part 2")
}
