// Package testutil provides testing utilities for puzzlekit.
//
// This package is intended for use in tests and benchmarks only.
// It provides helpers for generating random mazes and weighted grids and for
// computing brute-force reference distances to check search results against.
//
// # Random Mazes
//
//	rng := testutil.NewRNG(seed)
//	maze := rng.Maze(16, 16, 0.25)            // true = wall
//	weights := rng.Weights(16, 16, 1, 9)      // per-cell entry cost
//
// # Reference Distances (Ground Truth)
//
//	dist := testutil.ReferenceDistances(maze, weights, start)
//	d, ok := dist[goal]
package testutil
