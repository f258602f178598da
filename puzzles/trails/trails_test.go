package trails

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/puzzlekit"
	"github.com/hupe1980/puzzlekit/grid"
	"github.com/hupe1980/puzzlekit/internal/runner"
)

const example = `89010123
78121874
87430965
96549874
45678903
32019012
01329801
10456732
`

func TestParse(t *testing.T) {
	m, err := Parse([]byte(example))
	require.NoError(t, err)

	assert.Equal(t, 8, m.Heights.Width())
	assert.Equal(t, 8, m.Heights.Height())
	require.Len(t, m.Trailheads, 9)
	assert.Equal(t, grid.Pt(2, 0), m.Trailheads[0])
	assert.Equal(t, grid.Pt(4, 0), m.Trailheads[1])
	assert.Equal(t, grid.Pt(4, 2), m.Trailheads[2])
}

func TestParse_Invalid(t *testing.T) {
	_, err := Parse([]byte("01\n2x\n"))
	var pe *puzzlekit.ParseError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, 2, pe.Line)
	assert.Equal(t, 2, pe.Column)
	assert.ErrorContains(t, err, `unexpected 'x'`)
	assert.ErrorIs(t, err, puzzlekit.ErrMalformedInput)

	_, err = Parse([]byte("\n"))
	assert.ErrorIs(t, err, puzzlekit.ErrMalformedInput)
}

func TestScoreAndRating(t *testing.T) {
	m, err := Parse([]byte(example))
	require.NoError(t, err)

	score, scoreStats := m.Score()
	assert.Equal(t, 36, score)

	rating, ratingStats := m.Rating()
	assert.Equal(t, 81, rating)

	assert.Zero(t, ratingStats.Rejected())
	assert.Positive(t, scoreStats.Rejected())
}

func TestScore_SingleTrail(t *testing.T) {
	m, err := Parse([]byte("0123456789\n"))
	require.NoError(t, err)

	score, _ := m.Score()
	rating, _ := m.Rating()
	assert.Equal(t, 1, score)
	assert.Equal(t, 1, rating)
}

func TestScoreParallel(t *testing.T) {
	m, err := Parse([]byte(example))
	require.NoError(t, err)

	for _, workers := range []int{0, 1, 3, 16} {
		n, err := m.ScoreParallel(context.Background(), workers)
		require.NoError(t, err)
		assert.Equal(t, 36, n, "workers=%d", workers)
	}
}

func TestScoreParallel_Cancelled(t *testing.T) {
	m, err := Parse([]byte(example))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = m.ScoreParallel(ctx, 2)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSolve(t *testing.T) {
	r := runner.New(context.Background(), 10, "Hoof It")
	require.NoError(t, Solve(r, []byte(example)))

	rep := r.Report()
	values := map[string]string{}
	for _, s := range rep.Steps {
		if s.HasValue {
			values[s.Name] = s.Value
		}
	}
	assert.Equal(t, map[string]string{"Part 1": "36", "Part 2": "81", "Part 1 (Parallel)": "36"}, values)
	assert.Contains(t, rep.Info, runner.Field{Key: "Trailheads", Value: "9"})
}
