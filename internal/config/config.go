// Package config loads puzzlekit.yml.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultPath is the config file looked up when none is given.
const DefaultPath = "puzzlekit.yml"

// Config represents the puzzlekit.yml configuration.
type Config struct {
	Year        int    `yaml:"year"`
	InputDir    string `yaml:"input_dir"`
	Mode        string `yaml:"mode"`     // "once" or "bench"
	Parallel    int    `yaml:"parallel"` // Puzzles solved concurrently (1 = sequential)
	LogLevel    string `yaml:"log_level"`
	LogFormat   string `yaml:"log_format"` // "text" or "json"
	MetricsFile string `yaml:"metrics_file,omitempty"`
	Puzzles     []int  `yaml:"puzzles,omitempty"` // Days to run when none are given on the command line
	Color       *bool  `yaml:"color,omitempty"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		Year:      2024,
		InputDir:  "input",
		Mode:      "once",
		Parallel:  1,
		LogLevel:  "warn",
		LogFormat: "text",
	}
}

// Validate checks field values, filling defaults for empty ones.
func (c *Config) Validate() error {
	def := Default()
	if c.Year == 0 {
		c.Year = def.Year
	}
	if c.InputDir == "" {
		c.InputDir = def.InputDir
	}
	if c.Mode == "" {
		c.Mode = def.Mode
	}
	if c.Parallel == 0 {
		c.Parallel = def.Parallel
	}
	if c.LogLevel == "" {
		c.LogLevel = def.LogLevel
	}
	if c.LogFormat == "" {
		c.LogFormat = def.LogFormat
	}

	if c.Year < 2015 {
		return fmt.Errorf("year must be 2015 or later, got %d", c.Year)
	}
	if c.Mode != "once" && c.Mode != "bench" {
		return fmt.Errorf("invalid mode '%s': must be 'once' or 'bench'", c.Mode)
	}
	if c.Parallel < 1 {
		return fmt.Errorf("parallel must be >= 1, got %d", c.Parallel)
	}
	if c.LogFormat != "text" && c.LogFormat != "json" {
		return fmt.Errorf("invalid log_format '%s': must be 'text' or 'json'", c.LogFormat)
	}
	for _, day := range c.Puzzles {
		if day < 1 || day > 25 {
			return fmt.Errorf("puzzle day %d out of range 1-25", day)
		}
	}
	return nil
}

// Load reads and validates the configuration at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	config := Default()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// LoadOptional loads path if it exists and falls back to Default otherwise.
func LoadOptional(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return Default(), nil
	}
	return Load(path)
}
