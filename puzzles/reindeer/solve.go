package reindeer

import (
	"github.com/hupe1980/puzzlekit/grid"
	"github.com/hupe1980/puzzlekit/internal/runner"
)

// Solve registers the day 16 steps.
func Solve(r *runner.Runner, input []byte) error {
	m, err := runner.Prep(r, "Parse", func() (*Maze, error) { return Parse(input) })
	if err != nil {
		return err
	}

	if _, err := runner.Part(r, "Both Parts", func() (Result, error) {
		res, stats, err := m.BestPaths()
		r.Track(stats)
		return res, err
	}); err != nil {
		return err
	}

	if err := r.SetTail("Parse"); err != nil {
		return err
	}
	if _, err := runner.Part(r, "Part 1 (Cost Array)", func() (int, error) {
		score, stats, err := m.LowestScore()
		r.Track(stats)
		return score, err
	}); err != nil {
		return err
	}

	if err := r.SetTail("Parse"); err != nil {
		return err
	}
	g, err := runner.Prep(r, "Build Graph", func() (*Junctions, error) {
		g, stats := m.BuildGraph()
		r.Track(stats)
		return g, nil
	})
	if err != nil {
		return err
	}
	if _, err := runner.Part(r, "Part 1 (Graph)", func() (int, error) {
		score, stats, err := m.LowestScoreGraph(g)
		r.Track(stats)
		return score, err
	}); err != nil {
		return err
	}
	if _, err := runner.Part(r, "Part 2 (Graph)", func() (int, error) {
		res, stats, err := m.BestPathsGraph(g)
		r.Track(stats)
		return res.Tiles, err
	}); err != nil {
		return err
	}

	r.Info("Maze Size", grid.Pt(m.Walls.Width(), m.Walls.Height()))
	r.Info("Start", m.Start)
	r.Info("End", m.End)
	r.Info("Graph Nodes", g.Len())
	return nil
}
