// Package puzzlekit runs grid and graph puzzles on top of a generic
// state-space search engine.
//
// # Packages
//
//   - search: frontier orders (BFS, DFS, Dijkstra, A*), seen-space
//     policies and the Find/Gather/Fold drivers.
//   - grid: points, directions and dense 2D grids.
//   - puzzles/...: solvers built on search, one per puzzle day.
//   - internal/runner: timed prep/part steps, bench repetitions and the
//     critical-path total.
//
// # Quick Start
//
//	s := search.New[search.Node[grid.Point, int]](
//	    search.NewDijkstra[search.Node[grid.Point, int], int](),
//	    search.NewCostMap[search.Node[grid.Point, int], grid.Point, int](64),
//	)
//
// The puzzlekit command loads inputs from <input_dir>/<year>/day_DD.txt
// (optionally .zst or .lz4 compressed) and prints results and timings:
//
//	puzzlekit run 16 --mode bench
//
// This package holds the pieces shared by every layer: the structured
// Logger and the error sentinels.
package puzzlekit
