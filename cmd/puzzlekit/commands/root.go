// Package commands implements the puzzlekit CLI.
package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/hupe1980/puzzlekit"
	"github.com/hupe1980/puzzlekit/internal/config"
	"github.com/hupe1980/puzzlekit/internal/printer"
)

var versionInfo = "dev"

// globalFlags are shared by every subcommand.
type globalFlags struct {
	configPath string
	inputDir   string
	year       int
	logLevel   string
	logFormat  string
	noColor    bool
}

// NewRootCmd builds the command tree.
func NewRootCmd() *cobra.Command {
	g := &globalFlags{}

	root := &cobra.Command{
		Use:   "puzzlekit",
		Short: "puzzlekit - solve grid puzzles with a generic search engine",
		Long: `puzzlekit runs puzzle solvers built on a generic state-space search
engine (BFS, DFS, Dijkstra and A* with pluggable seen spaces) and reports
their answers, timings and search traffic.

Inputs are read from <input-dir>/<year>/day_DD.txt, or the .txt.zst and
.txt.lz4 variants written by "puzzlekit pack".`,
		Version: versionInfo,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
		// Enable strict flag parsing - unknown flags will cause an error
		FParseErrWhitelist: cobra.FParseErrWhitelist{},
		SilenceErrors:      true,
		SilenceUsage:       true,
	}

	pf := root.PersistentFlags()
	pf.StringVarP(&g.configPath, "config", "c", config.DefaultPath, "Path to the config file")
	pf.StringVar(&g.inputDir, "input-dir", "", "Directory holding puzzle inputs")
	pf.IntVar(&g.year, "year", 0, "Puzzle year")
	pf.StringVar(&g.logLevel, "log-level", "", "Log level: debug, info, warn or error")
	pf.StringVar(&g.logFormat, "log-format", "", "Log format: text or json")
	pf.BoolVar(&g.noColor, "no-color", false, "Disable colored output")

	root.AddCommand(newRunCmd(g), newListCmd(g), newPackCmd(g))
	return root
}

// Execute runs the CLI with the process arguments.
func Execute() error {
	return NewRootCmd().Execute()
}

// SetVersionInfo sets the version information for the CLI
func SetVersionInfo(v, c, d string) {
	versionInfo = fmt.Sprintf("%s (commit: %s, built: %s)", v, c, d)
}

// loadConfig reads the config file and applies every flag the user set.
func (g *globalFlags) loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.LoadOptional(g.configPath)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("input-dir") {
		cfg.InputDir = g.inputDir
	}
	if flags.Changed("year") {
		cfg.Year = g.year
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = g.logLevel
	}
	if flags.Changed("log-format") {
		cfg.LogFormat = g.logFormat
	}
	if g.noColor {
		off := false
		cfg.Color = &off
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func newPrinter(cmd *cobra.Command, cfg *config.Config) *printer.Printer {
	colored := os.Getenv("NO_COLOR") == ""
	if cfg.Color != nil {
		colored = *cfg.Color
	}
	return printer.New(cmd.OutOrStdout(), cmd.ErrOrStderr(), colored)
}

// newLogger builds the configured logger. Logs go to w, never to the result
// stream.
func newLogger(cfg *config.Config, w io.Writer) (*puzzlekit.Logger, error) {
	level, err := puzzlekit.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	if cfg.LogFormat == "json" {
		return puzzlekit.NewJSONLogger(w, level), nil
	}
	return puzzlekit.NewTextLogger(w, level), nil
}

// setup loads config and builds the printer and logger for a subcommand.
func (g *globalFlags) setup(cmd *cobra.Command) (*config.Config, *printer.Printer, *puzzlekit.Logger, error) {
	cfg, err := g.loadConfig(cmd)
	if err != nil {
		p := printer.New(cmd.OutOrStdout(), cmd.ErrOrStderr(), false)
		return nil, nil, nil, p.Error(
			"invalid configuration",
			err.Error(),
			[]string{fmt.Sprintf("Check %s or the command line flags", g.configPath)},
		)
	}

	p := newPrinter(cmd, cfg)
	logger, err := newLogger(cfg, cmd.ErrOrStderr())
	if err != nil {
		return nil, nil, nil, p.Error("invalid log level", err.Error(), []string{"Valid levels: debug, info, warn, error"})
	}
	return cfg, p, logger, nil
}
