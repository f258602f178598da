// Package search provides a generic state-space search engine.
//
// A Search composes one frontier Order with one SeenSpace policy:
//
//   - Orders decide which admitted state is examined next: BFS (FIFO),
//     DFS (LIFO), Dijkstra (min cost) and AStar (min cost + heuristic).
//   - Seen spaces decide whether a pushed state is admitted at all:
//     NoSeen, SeenSet, CostMap, ReentrantCostMap and the fixed-capacity
//     spaces BitSeen, Bitset, Roaring, Word64 and CostArray.
//
// States are plain caller-defined values. The engine reads them only through
// the Keyed, Costed and Estimated projections.
//
// Driving a search:
//
//	s := search.New[search.Node[grid.Point, int]](
//	    search.NewBFS[search.Node[grid.Point, int]](),
//	    search.NewSeenSet[search.Node[grid.Point, int], grid.Point](64),
//	)
//	s.Push(search.Node[grid.Point, int]{K: start})
//	steps, ok := search.Find(s, func(s *search.Search[search.Node[grid.Point, int]], n search.Node[grid.Point, int]) (int, bool) {
//	    if n.K == goal {
//	        return n.C, true
//	    }
//	    for _, next := range n.K.CardinalNeighbors() {
//	        s.Push(search.Node[grid.Point, int]{K: next, C: n.C + 1})
//	    }
//	    return 0, false
//	})
//
// Find stops at the first result, Gather collects every result into a
// GatherTarget, and Fold reduces results into an accumulator. GatherOptimal
// and FoldOptimal thread an explicit Bound through the expansion callback to
// enumerate all optimal paths in a single traversal.
//
// A Search is NOT thread-safe. Run independent searches in parallel by giving
// each goroutine its own instance, e.g. from a Pool.
package search
