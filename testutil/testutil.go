package testutil

import (
	"math/rand/v2"

	"github.com/hupe1980/puzzlekit/grid"
)

// golden spreads a single seed over both PCG state words.
const golden = 0x9e3779b97f4a7c15

// RNG generates reproducible grids from a fixed seed. It is not safe for
// concurrent use; give every goroutine its own.
type RNG struct {
	seed uint64
	src  *rand.Rand
}

// NewRNG returns a generator seeded with seed.
func NewRNG(seed uint64) *RNG {
	r := &RNG{seed: seed}
	r.Reset()
	return r
}

// Reset rewinds the generator so it repeats its output from the start.
func (r *RNG) Reset() {
	r.src = rand.New(rand.NewPCG(r.seed, r.seed^golden))
}

// Maze generates a width x height grid where each cell is a wall with
// probability density. The corners (0,0) and (width-1,height-1) are always
// open.
func (r *RNG) Maze(width, height int, density float64) *grid.Grid[bool] {
	g := grid.New(width, height, false)
	for y := range height {
		for x := range width {
			if r.src.Float64() < density {
				g.Set(grid.Pt(x, y), true)
			}
		}
	}
	g.Set(grid.Pt(0, 0), false)
	g.Set(grid.Pt(width-1, height-1), false)
	return g
}

// Weights generates a width x height grid of entry costs in [minCost, maxCost].
func (r *RNG) Weights(width, height, minCost, maxCost int) *grid.Grid[int] {
	g := grid.New(width, height, minCost)
	span := maxCost - minCost + 1
	for y := range height {
		for x := range width {
			g.Set(grid.Pt(x, y), minCost+r.src.IntN(span))
		}
	}
	return g
}

// ReferenceDistances computes the cheapest cost from start to every reachable
// open cell by repeated relaxation (Bellman-Ford). Entering a cell costs its
// weight; a nil weights grid means unit cost. It is deliberately naive and
// independent of the search package.
func ReferenceDistances(walls *grid.Grid[bool], weights *grid.Grid[int], start grid.Point) map[grid.Point]int {
	dist := map[grid.Point]int{start: 0}
	for changed := true; changed; {
		changed = false
		for p, wall := range walls.All() {
			if wall {
				continue
			}
			d, ok := dist[p]
			if !ok {
				continue
			}
			for _, n := range p.CardinalNeighbors() {
				if blocked, in := walls.Get(n); !in || blocked {
					continue
				}
				step := 1
				if weights != nil {
					step = weights.At(n)
				}
				if cur, seen := dist[n]; !seen || d+step < cur {
					dist[n] = d + step
					changed = true
				}
			}
		}
	}
	return dist
}
