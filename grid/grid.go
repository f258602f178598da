package grid

import (
	"bytes"
	"errors"
	"fmt"
	"iter"
)

// ErrRagged is returned by Parse when rows have different lengths.
var ErrRagged = errors.New("grid: rows have different lengths")

// Grid is a dense, row-major 2D grid.
type Grid[T any] struct {
	width, height int
	cells         []T
}

// New creates a width x height grid with every cell set to fill.
func New[T any](width, height int, fill T) *Grid[T] {
	cells := make([]T, width*height)
	for i := range cells {
		cells[i] = fill
	}
	return &Grid[T]{width: width, height: height, cells: cells}
}

// Parse builds a grid from newline-separated rows, mapping each byte with fn.
// A trailing newline and carriage returns are ignored.
func Parse[T any](input []byte, fn func(p Point, b byte) (T, error)) (*Grid[T], error) {
	input = bytes.ReplaceAll(input, []byte("\r"), nil)
	input = bytes.TrimRight(input, "\n")
	if len(input) == 0 {
		return &Grid[T]{}, nil
	}

	rows := bytes.Split(input, []byte("\n"))
	width := len(rows[0])
	g := &Grid[T]{width: width, height: len(rows), cells: make([]T, 0, width*len(rows))}

	for y, row := range rows {
		if len(row) != width {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrRagged, y, len(row), width)
		}
		for x, b := range row {
			v, err := fn(Point{X: x, Y: y}, b)
			if err != nil {
				return nil, fmt.Errorf("cell %d,%d: %w", x, y, err)
			}
			g.cells = append(g.cells, v)
		}
	}
	return g, nil
}

// Width returns the number of columns.
func (g *Grid[T]) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid[T]) Height() int { return g.height }

// Area returns the number of cells, which bounds Index.
func (g *Grid[T]) Area() int { return len(g.cells) }

// In reports whether p lies inside the grid.
func (g *Grid[T]) In(p Point) bool {
	return p.X >= 0 && p.Y >= 0 && p.X < g.width && p.Y < g.height
}

// Index returns the row-major index of p. p must be inside the grid.
func (g *Grid[T]) Index(p Point) int { return p.Y*g.width + p.X }

// PointOf is the inverse of Index.
func (g *Grid[T]) PointOf(index int) Point {
	return Point{X: index % g.width, Y: index / g.width}
}

// At returns the cell at p. It panics if p is outside the grid.
func (g *Grid[T]) At(p Point) T {
	if !g.In(p) {
		panic(fmt.Sprintf("grid: %v outside %dx%d", p, g.width, g.height))
	}
	return g.cells[g.Index(p)]
}

// Get returns the cell at p, or false if p is outside the grid.
func (g *Grid[T]) Get(p Point) (T, bool) {
	if !g.In(p) {
		var zero T
		return zero, false
	}
	return g.cells[g.Index(p)], true
}

// Set stores v at p. It panics if p is outside the grid.
func (g *Grid[T]) Set(p Point, v T) {
	if !g.In(p) {
		panic(fmt.Sprintf("grid: %v outside %dx%d", p, g.width, g.height))
	}
	g.cells[g.Index(p)] = v
}

// Find returns the first point, in row-major order, whose cell satisfies
// pred.
func (g *Grid[T]) Find(pred func(T) bool) (Point, bool) {
	for i, v := range g.cells {
		if pred(v) {
			return g.PointOf(i), true
		}
	}
	return Point{}, false
}

// All iterates over every point and cell in row-major order.
func (g *Grid[T]) All() iter.Seq2[Point, T] {
	return func(yield func(Point, T) bool) {
		for i, v := range g.cells {
			if !yield(g.PointOf(i), v) {
				return
			}
		}
	}
}

// Clone returns a deep copy of the grid.
func (g *Grid[T]) Clone() *Grid[T] {
	cells := make([]T, len(g.cells))
	copy(cells, g.cells)
	return &Grid[T]{width: g.width, height: g.height, cells: cells}
}

// Fill sets every cell to v.
func (g *Grid[T]) Fill(v T) {
	for i := range g.cells {
		g.cells[i] = v
	}
}
