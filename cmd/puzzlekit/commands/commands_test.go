package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const wordsearchInput = `MMMSXXMASM
MSAMXMSMSA
AMXSXMAAMM
MSAMASMSMX
XMASAMXAMM
XXAMMXXAMA
SMSMSASXSS
SAXAMASAAA
MAMMMXMMMM
MXMXAXMASX
`

// workspace creates an input tree with the day 4 example and returns its
// root.
func workspace(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "input", "2024"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "input", "2024", "day_04.txt"), []byte(wordsearchInput), 0o644))
	return dir
}

func execute(t *testing.T, dir string, args ...string) (string, string, error) {
	t.Helper()
	base := []string{
		"--config", filepath.Join(dir, "puzzlekit.yml"),
		"--input-dir", filepath.Join(dir, "input"),
		"--no-color",
	}

	root := NewRootCmd()
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(append(args, base...))
	err := root.Execute()
	return out.String(), errOut.String(), err
}

func TestRootCommand_ShowsHelpWhenNoSubcommand(t *testing.T) {
	root := NewRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs(nil)

	require.NoError(t, root.Execute())
	assert.Contains(t, out.String(), "Usage:")
	assert.Contains(t, out.String(), "puzzlekit")
}

func TestRootCommand_RejectsUnknownFlags(t *testing.T) {
	root := NewRootCmd()
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"--goal", "x"})

	err := root.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown flag")
}

func TestRun(t *testing.T) {
	dir := workspace(t)

	out, _, err := execute(t, dir, "run", "4")
	require.NoError(t, err)

	assert.Contains(t, out, "--- Day 4: Ceres Search ---")
	assert.Contains(t, out, "Part 1: 18")
	assert.Contains(t, out, "Part 1 (DFS): 18")
	assert.Contains(t, out, "Part 2: 9")
	assert.Contains(t, out, "Total: ")
}

func TestRun_ConfigSelectsPuzzles(t *testing.T) {
	dir := workspace(t)
	cfg := "year: 2024\npuzzles: [4]\nlog_level: error\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "puzzlekit.yml"), []byte(cfg), 0o644))

	out, _, err := execute(t, dir, "run")
	require.NoError(t, err)
	assert.Contains(t, out, "Day 4")
	assert.NotContains(t, out, "Day 10")
}

func TestRun_MissingInput(t *testing.T) {
	dir := workspace(t)

	out, errOut, err := execute(t, dir, "run", "4", "10")
	require.Error(t, err)
	assert.Equal(t, "some puzzles failed", err.Error())

	assert.Contains(t, out, "Part 1: 18", "other puzzles still run")
	assert.Contains(t, errOut, "day 10")
	assert.Contains(t, errOut, "day_DD.txt")
}

func TestRun_InvalidArguments(t *testing.T) {
	dir := workspace(t)

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"bad day", []string{"run", "x"}, "invalid day"},
		{"out of range", []string{"run", "26"}, "invalid day"},
		{"unregistered", []string{"run", "3"}, "unknown puzzle"},
		{"bad mode", []string{"run", "4", "--mode", "fast"}, "invalid run options"},
		{"bad parallel", []string{"run", "4", "--parallel", "-1"}, "invalid run options"},
		{"bad log format", []string{"run", "4", "--log-format", "xml"}, "invalid configuration"},
		{"bad log level", []string{"run", "4", "--log-level", "loud"}, "invalid log level"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, errOut, err := execute(t, dir, tt.args...)
			require.Error(t, err)
			assert.Equal(t, tt.want, err.Error())
			assert.Contains(t, errOut, tt.want)
		})
	}
}

func TestRun_MetricsFile(t *testing.T) {
	dir := workspace(t)
	metricsFile := filepath.Join(dir, "puzzlekit.prom")

	_, _, err := execute(t, dir, "run", "4", "--metrics-file", metricsFile)
	require.NoError(t, err)

	data, err := os.ReadFile(metricsFile)
	require.NoError(t, err)
	assert.Contains(t, string(data), "puzzlekit_step_duration_seconds")
	assert.Contains(t, string(data), "puzzlekit_puzzles_total")
}

func TestList(t *testing.T) {
	dir := workspace(t)

	out, _, err := execute(t, dir, "list")
	require.NoError(t, err)
	assert.Contains(t, out, "Day  4: Ceres Search (input found)")
	assert.Contains(t, out, "Day 16: Reindeer Maze (no input)")
	assert.Contains(t, out, "Day 21: Keypad Conundrum (no input)")
}

func TestPack(t *testing.T) {
	dir := workspace(t)

	out, errOut, err := execute(t, dir, "pack", "--format", "lz4")
	require.NoError(t, err)
	assert.Contains(t, out, "Packed day 4")
	assert.Contains(t, errOut, "No input for day 10")
	assert.FileExists(t, filepath.Join(dir, "input", "2024", "day_04.txt.lz4"))

	// The packed file is used once the plain one is gone.
	require.NoError(t, os.Remove(filepath.Join(dir, "input", "2024", "day_04.txt")))
	out, _, err = execute(t, dir, "run", "4")
	require.NoError(t, err)
	assert.Contains(t, out, "Part 2: 9")
}

func TestPack_Errors(t *testing.T) {
	dir := workspace(t)

	_, _, err := execute(t, dir, "pack", "--format", "gzip")
	require.Error(t, err)
	assert.Equal(t, "invalid format", err.Error())

	_, _, err = execute(t, dir, "pack", "10")
	require.Error(t, err)
	assert.Equal(t, "failed to pack input", err.Error())
}

func TestParseDays(t *testing.T) {
	days, err := parseDays([]string{"4", "25", "1"})
	require.NoError(t, err)
	assert.Equal(t, []int{4, 25, 1}, days)

	_, err = parseDays([]string{"0"})
	assert.Error(t, err)
}
