package search_test

import (
	"fmt"

	"github.com/hupe1980/puzzlekit/grid"
	"github.com/hupe1980/puzzlekit/search"
)

type step = search.Node[grid.Point, int]

// Example_bfs finds the shortest path across an open 4x4 grid.
func Example_bfs() {
	area := grid.New(4, 4, '.')
	goal := grid.Pt(3, 3)

	s := search.New[step](search.NewBFS[step](), search.NewSeenSet[step, grid.Point](16))
	s.Push(step{K: grid.Pt(0, 0)})

	steps, ok := search.Find(s, func(s *search.Search[step], n step) (int, bool) {
		if n.K == goal {
			return n.C, true
		}
		for _, next := range n.K.CardinalNeighbors() {
			if area.In(next) {
				s.Push(step{K: next, C: n.C + 1})
			}
		}
		return 0, false
	})

	fmt.Println(steps, ok)
	// Output: 6 true
}

type hop struct {
	at   string
	cost int
	path search.Trace[string]
}

func (h hop) Key() string { return h.at }
func (h hop) Cost() int   { return h.cost }

// Example_allOptimalPaths enumerates every cheapest route with a reentrant
// cost map and a bound.
func Example_allOptimalPaths() {
	edges := map[string][]string{
		"start": {"left", "right"},
		"left":  {"end"},
		"right": {"end"},
	}

	s := search.New[hop](search.NewDijkstra[hop, int](), search.NewReentrantCostMap[hop, string, int](8))
	s.Push(hop{at: "start", path: search.Trace[string]{}.Append("start")})

	var bound search.Bound[int]
	paths := search.GatherOptimal(s, &bound, search.NewSlice[search.Trace[string]](0),
		func(s *search.Search[hop], _ *search.Bound[int], h hop) (search.Trace[string], bool) {
			if h.at == "end" {
				return h.path, true
			}
			for _, next := range edges[h.at] {
				s.Push(hop{at: next, cost: h.cost + 1, path: h.path.Append(next)})
			}
			return search.Trace[string]{}, false
		}).Values()

	best, _ := bound.Value()
	fmt.Println(len(paths), best)
	// Output: 2 2
}
