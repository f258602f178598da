package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), DefaultPath)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad_ValidConfig(t *testing.T) {
	path := writeConfig(t, `year: 2024
input_dir: ./data
mode: bench
parallel: 4
log_level: debug
log_format: json
metrics_file: out/puzzlekit.prom
puzzles: [4, 16]
color: false
`)

	config, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 2024, config.Year)
	assert.Equal(t, "./data", config.InputDir)
	assert.Equal(t, "bench", config.Mode)
	assert.Equal(t, 4, config.Parallel)
	assert.Equal(t, "debug", config.LogLevel)
	assert.Equal(t, "json", config.LogFormat)
	assert.Equal(t, "out/puzzlekit.prom", config.MetricsFile)
	assert.Equal(t, []int{4, 16}, config.Puzzles)
	require.NotNil(t, config.Color)
	assert.False(t, *config.Color)
}

func TestLoad_AppliesDefaults(t *testing.T) {
	path := writeConfig(t, "year: 2023\n")

	config, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 2023, config.Year)
	assert.Equal(t, "input", config.InputDir)
	assert.Equal(t, "once", config.Mode)
	assert.Equal(t, 1, config.Parallel)
	assert.Nil(t, config.Color)
}

func TestLoad_FileNotFound(t *testing.T) {
	config, err := Load("/nonexistent/puzzlekit.yml")
	assert.Error(t, err)
	assert.Nil(t, config)
	assert.Contains(t, err.Error(), "failed to read config")
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := writeConfig(t, "year: [\n")

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse YAML")
}

func TestLoadOptional_Missing(t *testing.T) {
	config, err := LoadOptional(filepath.Join(t.TempDir(), DefaultPath))
	require.NoError(t, err)
	assert.Equal(t, Default(), config)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{"defaults", func(c *Config) {}, ""},
		{"old year", func(c *Config) { c.Year = 2010 }, "year must be"},
		{"bad mode", func(c *Config) { c.Mode = "forever" }, "invalid mode"},
		{"negative parallel", func(c *Config) { c.Parallel = -1 }, "parallel must be"},
		{"bad format", func(c *Config) { c.LogFormat = "xml" }, "invalid log_format"},
		{"bad day", func(c *Config) { c.Puzzles = []int{26} }, "out of range"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Default()
			tt.mutate(c)
			err := c.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
