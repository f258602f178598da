// Package reindeer finds the cheapest routes through a reindeer maze, where
// every step costs 1 and every quarter turn costs 1000.
package reindeer

import (
	"errors"
	"fmt"

	"github.com/hupe1980/puzzlekit"
	"github.com/hupe1980/puzzlekit/grid"
)

// Scoring of a single move.
const (
	StepCost = 1
	TurnCost = 1000
)

// ErrNoPath is returned when the end tile cannot be reached.
var ErrNoPath = errors.New("reindeer: no path to the end tile")

// Maze is a parsed maze. The reindeer starts on Start facing east.
type Maze struct {
	Walls *grid.Grid[bool]
	Start grid.Point
	End   grid.Point
}

// Parse reads a maze of '#', '.', 'S' and 'E' tiles.
func Parse(input []byte) (*Maze, error) {
	var (
		m                Maze
		hasStart, hasEnd bool
	)
	walls, err := grid.Parse(input, func(p grid.Point, b byte) (bool, error) {
		switch b {
		case '#':
			return true, nil
		case '.':
			return false, nil
		case 'S':
			m.Start, hasStart = p, true
			return false, nil
		case 'E':
			m.End, hasEnd = p, true
			return false, nil
		default:
			return false, puzzlekit.NewParseError(p.Y+1, p.X+1, fmt.Errorf("unexpected tile %q", b))
		}
	})
	if err != nil {
		return nil, err
	}
	if !hasStart || !hasEnd {
		return nil, puzzlekit.Malformed("maze needs a start and an end tile")
	}
	m.Walls = walls
	return &m, nil
}

// Open reports whether p is a free tile inside the maze.
func (m *Maze) Open(p grid.Point) bool {
	wall, ok := m.Walls.Get(p)
	return ok && !wall
}

// move is one successor of a pose.
type move struct {
	at     grid.Point
	dir    grid.Direction
	cost   int
	turned bool
}

// moves lists the successors of a reindeer at p facing dir: straight ahead,
// or a quarter turn followed by a step. Turning around is never cheaper than
// reaching the tile some other way.
func (m *Maze) moves(p grid.Point, dir grid.Direction) ([3]move, int) {
	var (
		out [3]move
		n   int
	)
	if next := dir.Step(p); m.Open(next) {
		out[n] = move{at: next, dir: dir, cost: StepCost}
		n++
	}
	for _, d := range [2]grid.Direction{dir.TurnClockwise(), dir.TurnAnticlockwise()} {
		if next := d.Step(p); m.Open(next) {
			out[n] = move{at: next, dir: d, cost: TurnCost + StepCost, turned: true}
			n++
		}
	}
	return out, n
}

// Result is the answer to both parts.
type Result struct {
	Score int
	Tiles int
}

func (r Result) String() string { return fmt.Sprintf("%d, %d", r.Score, r.Tiles) }
