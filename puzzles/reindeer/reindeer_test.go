package reindeer

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/puzzlekit"
	"github.com/hupe1980/puzzlekit/grid"
	"github.com/hupe1980/puzzlekit/internal/runner"
	"github.com/hupe1980/puzzlekit/search"
)

const example1 = `###############
#.......#....E#
#.#.###.#.###.#
#.....#.#...#.#
#.###.#####.#.#
#.#.#.......#.#
#.#.#####.###.#
#...........#.#
###.#.#####.#.#
#...#.....#.#.#
#.#.#.###.#.#.#
#.....#...#.#.#
#.###.#.#.#.#.#
#S..#.....#...#
###############
`

const example2 = `#################
#...#...#...#..E#
#.#.#.#.#.#.#.#.#
#.#.#.#...#...#.#
#.#.#.#.###.#.#.#
#...#.#.#.....#.#
#.#.#.#.#.#####.#
#.#...#.#.#.....#
#.#.#####.#.###.#
#.#.#.......#...#
#.#.###.#####.###
#.#.#...#.....#.#
#.#.#.#####.###.#
#.#.#.........#.#
#.#.#.#########.#
#S#.............#
#################
`

func parse(t *testing.T, input string) *Maze {
	t.Helper()
	m, err := Parse([]byte(input))
	require.NoError(t, err)
	return m
}

func TestParse(t *testing.T) {
	m := parse(t, example1)

	assert.Equal(t, grid.Pt(1, 13), m.Start)
	assert.Equal(t, grid.Pt(13, 1), m.End)
	assert.True(t, m.Open(m.Start))
	assert.False(t, m.Open(grid.Pt(0, 0)))
	assert.False(t, m.Open(grid.Pt(-1, 3)))
}

func TestParse_Invalid(t *testing.T) {
	_, err := Parse([]byte("#S.\n#?E\n"))
	var pe *puzzlekit.ParseError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, 2, pe.Line)
	assert.Equal(t, 2, pe.Column)

	_, err = Parse([]byte("#S.#\n"))
	assert.ErrorIs(t, err, puzzlekit.ErrMalformedInput)
}

func TestBestPaths(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Result
	}{
		{"example 1", example1, Result{Score: 7036, Tiles: 45}},
		{"example 2", example2, Result{Score: 11048, Tiles: 64}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := parse(t, tt.input)

			traced, _, err := m.BestPathsTrace()
			require.NoError(t, err)
			assert.Equal(t, tt.want, traced)

			linked, _, err := m.BestPaths()
			require.NoError(t, err)
			assert.Equal(t, tt.want, linked)

			score, _, err := m.LowestScore()
			require.NoError(t, err)
			assert.Equal(t, tt.want.Score, score)

			g, _ := m.BuildGraph()
			score, _, err = m.LowestScoreGraph(g)
			require.NoError(t, err)
			assert.Equal(t, tt.want.Score, score)

			graphed, _, err := m.BestPathsGraph(g)
			require.NoError(t, err)
			assert.Equal(t, tt.want, graphed)
		})
	}
}

func TestBestPaths_Corridor(t *testing.T) {
	m := parse(t, "#####\n#S.E#\n#####\n")

	res, stats, err := m.BestPaths()
	require.NoError(t, err)
	assert.Equal(t, Result{Score: 2, Tiles: 3}, res)
	assert.Equal(t, 3, stats.Popped)
}

func TestBuildGraph(t *testing.T) {
	m := parse(t, "#####\n#S.E#\n#####\n")

	g, stats := m.BuildGraph()
	require.Equal(t, 2, g.Len())
	assert.Equal(t, 2, g.EdgeCount())
	assert.Equal(t, 4, stats.Popped, "one walker reset per exit")

	s, ok := g.Index(m.Start)
	require.True(t, ok)
	e, ok := g.Index(m.End)
	require.True(t, ok)
	c, ok := g.Edge(s, e)
	require.True(t, ok)
	assert.Equal(t, Corridor{Steps: 2, Score: 2, Exit: grid.East, Enter: grid.East}, c)

	res, _, err := m.BestPathsGraph(g)
	require.NoError(t, err)
	assert.Equal(t, Result{Score: 2, Tiles: 3}, res)
}

func TestBuildGraph_Corners(t *testing.T) {
	// A dead end off the start and a corridor that turns twice.
	m := parse(t, "######\n#...E#\n#.####\n#S..##\n######\n")

	g, _ := m.BuildGraph()
	s, _ := g.Index(m.Start)
	e, _ := g.Index(m.End)
	c, ok := g.Edge(s, e)
	require.True(t, ok)
	assert.Equal(t, Corridor{Steps: 5, Score: 1005, Exit: grid.North, Enter: grid.East}, c)
	assert.Len(t, g.Edges(s), 1, "the dead end to the east adds no edge")

	res, _, err := m.BestPathsGraph(g)
	require.NoError(t, err)
	want, _, err := m.BestPaths()
	require.NoError(t, err)
	assert.Equal(t, want, res)
	assert.Equal(t, Result{Score: 2005, Tiles: 6}, res)
}

func TestBestPaths_Unreachable(t *testing.T) {
	m := parse(t, "#####\n#S#E#\n#####\n")

	_, _, err := m.BestPathsTrace()
	assert.ErrorIs(t, err, ErrNoPath)
	_, _, err = m.BestPaths()
	assert.ErrorIs(t, err, ErrNoPath)
	_, _, err = m.LowestScore()
	assert.ErrorIs(t, err, ErrNoPath)

	g, _ := m.BuildGraph()
	_, _, err = m.LowestScoreGraph(g)
	assert.ErrorIs(t, err, ErrNoPath)
	_, _, err = m.BestPathsGraph(g)
	assert.ErrorIs(t, err, ErrNoPath)
}

// serpentine builds a maze whose only path turns twice per row.
func serpentine(rows int) string {
	var b strings.Builder
	b.WriteString("#####\n")
	for i := range rows {
		switch {
		case i%2 == 0:
			b.WriteString("#...#\n")
		case i%4 == 1:
			b.WriteString("###.#\n")
		default:
			b.WriteString("#.###\n")
		}
	}
	b.WriteString("#####\n")
	s := []byte(b.String())
	s[6+1] = 'S'
	s[len(s)-12+3] = 'E'
	return string(s)
}

func TestBestPaths_ManyTurns(t *testing.T) {
	m := parse(t, serpentine(81))

	res, _, err := m.BestPaths()
	require.NoError(t, err)
	assert.Positive(t, res.Tiles)

	g, _ := m.BuildGraph()
	assert.Equal(t, 2, g.Len(), "only the start and the end are junctions")
	graphed, _, err := m.BestPathsGraph(g)
	require.NoError(t, err)
	assert.Equal(t, res, graphed)

	assert.PanicsWithError(t, search.ErrTraceOverflow.Error()+": 64 entries", func() {
		_, _, _ = m.BestPathsTrace()
	})
}

func TestSolve(t *testing.T) {
	r := runner.New(context.Background(), 16, "Reindeer Maze")
	require.NoError(t, Solve(r, []byte(example1)))

	values := map[string]string{}
	for _, s := range r.Report().Steps {
		if s.HasValue {
			values[s.Name] = s.Value
		}
	}
	assert.Equal(t, map[string]string{
		"Both Parts":          "7036, 45",
		"Part 1 (Cost Array)": "7036",
		"Part 1 (Graph)":      "7036",
		"Part 2 (Graph)":      "45",
	}, values)
}
