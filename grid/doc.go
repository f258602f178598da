// Package grid provides the 2D coordinate, direction and dense grid types
// used by the puzzle solvers to build search states and expansion closures.
package grid
