package puzzles

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/puzzlekit"
	"github.com/hupe1980/puzzlekit/internal/runner"
)

func days(ps []runner.Puzzle) []int {
	out := make([]int, len(ps))
	for i, p := range ps {
		out[i] = p.Day
	}
	return out
}

func TestAll(t *testing.T) {
	all := All()
	assert.Equal(t, []int{4, 10, 12, 16, 18, 20, 21}, days(all))
	for _, p := range all {
		assert.NotEmpty(t, p.Title)
		assert.NotNil(t, p.Solve)
	}

	all[0].Day = 99
	assert.Equal(t, 4, All()[0].Day, "All returns a copy")
}

func TestLookup(t *testing.T) {
	p, err := Lookup(16)
	require.NoError(t, err)
	assert.Equal(t, "Reindeer Maze", p.Title)

	_, err = Lookup(1)
	assert.ErrorIs(t, err, puzzlekit.ErrUnknownPuzzle)
}

func TestSelect(t *testing.T) {
	ps, err := Select([]int{20, 4, 20})
	require.NoError(t, err)
	assert.Equal(t, []int{4, 20}, days(ps))

	ps, err = Select(nil)
	require.NoError(t, err)
	assert.Len(t, ps, 7)

	_, err = Select([]int{4, 5})
	assert.ErrorIs(t, err, puzzlekit.ErrUnknownPuzzle)
}
