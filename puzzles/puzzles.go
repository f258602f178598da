// Package puzzles registers every solver shipped with puzzlekit.
package puzzles

import (
	"fmt"
	"sort"

	"github.com/hupe1980/puzzlekit"
	"github.com/hupe1980/puzzlekit/internal/runner"
	"github.com/hupe1980/puzzlekit/puzzles/garden"
	"github.com/hupe1980/puzzlekit/puzzles/keypad"
	"github.com/hupe1980/puzzlekit/puzzles/racetrack"
	"github.com/hupe1980/puzzlekit/puzzles/ram"
	"github.com/hupe1980/puzzlekit/puzzles/reindeer"
	"github.com/hupe1980/puzzlekit/puzzles/trails"
	"github.com/hupe1980/puzzlekit/puzzles/wordsearch"
)

var registry = []runner.Puzzle{
	{Day: 4, Title: "Ceres Search", Solve: wordsearch.Solve},
	{Day: 10, Title: "Hoof It", Solve: trails.Solve},
	{Day: 12, Title: "Garden Groups", Solve: garden.Solve},
	{Day: 16, Title: "Reindeer Maze", Solve: reindeer.Solve},
	{Day: 18, Title: "RAM Run", Solve: ram.Solve},
	{Day: 20, Title: "Race Condition", Solve: racetrack.Solve},
	{Day: 21, Title: "Keypad Conundrum", Solve: keypad.Solve},
}

// All returns every registered puzzle in day order.
func All() []runner.Puzzle {
	return append([]runner.Puzzle(nil), registry...)
}

// Lookup returns the puzzle registered for day.
func Lookup(day int) (runner.Puzzle, error) {
	for _, p := range registry {
		if p.Day == day {
			return p, nil
		}
	}
	return runner.Puzzle{}, fmt.Errorf("%w: day %d", puzzlekit.ErrUnknownPuzzle, day)
}

// Select returns the puzzles for days in day order, dropping duplicates. An
// empty selection means all puzzles.
func Select(days []int) ([]runner.Puzzle, error) {
	if len(days) == 0 {
		return All(), nil
	}

	seen := make(map[int]struct{}, len(days))
	out := make([]runner.Puzzle, 0, len(days))
	for _, d := range days {
		if _, ok := seen[d]; ok {
			continue
		}
		seen[d] = struct{}{}

		p, err := Lookup(d)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Day < out[j].Day })
	return out, nil
}
