package grid

import "fmt"

// Point is a 2D integer coordinate. X grows to the east, Y to the south.
type Point struct {
	X, Y int
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y int) Point { return Point{X: x, Y: y} }

// Add returns p + o.
func (p Point) Add(o Point) Point { return Point{X: p.X + o.X, Y: p.Y + o.Y} }

// Sub returns p - o.
func (p Point) Sub(o Point) Point { return Point{X: p.X - o.X, Y: p.Y - o.Y} }

// Scale returns p multiplied by n.
func (p Point) Scale(n int) Point { return Point{X: p.X * n, Y: p.Y * n} }

// Manhattan returns the taxicab distance between p and o.
func (p Point) Manhattan(o Point) int {
	return abs(p.X-o.X) + abs(p.Y-o.Y)
}

// CardinalNeighbors returns the four orthogonal neighbors in N, E, S, W order.
func (p Point) CardinalNeighbors() [4]Point {
	return [4]Point{
		{X: p.X, Y: p.Y - 1},
		{X: p.X + 1, Y: p.Y},
		{X: p.X, Y: p.Y + 1},
		{X: p.X - 1, Y: p.Y},
	}
}

// DiagonalNeighbors returns the four diagonal neighbors in NE, SE, SW, NW
// order.
func (p Point) DiagonalNeighbors() [4]Point {
	return [4]Point{
		{X: p.X + 1, Y: p.Y - 1},
		{X: p.X + 1, Y: p.Y + 1},
		{X: p.X - 1, Y: p.Y + 1},
		{X: p.X - 1, Y: p.Y - 1},
	}
}

// String formats the point as "x,y".
func (p Point) String() string { return fmt.Sprintf("%d,%d", p.X, p.Y) }

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
