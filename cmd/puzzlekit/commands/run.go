package commands

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/hupe1980/puzzlekit"
	"github.com/hupe1980/puzzlekit/internal/input"
	"github.com/hupe1980/puzzlekit/internal/metrics"
	"github.com/hupe1980/puzzlekit/internal/runner"
	"github.com/hupe1980/puzzlekit/puzzles"
)

type runFlags struct {
	mode        string
	parallel    int
	metricsFile string
}

func newRunCmd(g *globalFlags) *cobra.Command {
	f := &runFlags{}

	cmd := &cobra.Command{
		Use:   "run [DAY...]",
		Short: "Solve puzzles and report answers and timings",
		Long: `Solve the given days, or the days listed under "puzzles" in the config
file, or every registered puzzle.

Modes:
  once  - run every step a single time
  bench - repeat every step and report the mean duration

Examples:
  # Solve every puzzle
  puzzlekit run

  # Benchmark two days, four at a time, exporting metrics
  puzzlekit run 16 20 --mode=bench --parallel=4 --metrics-file=puzzlekit.prom`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPuzzles(cmd, g, f, args)
		},
	}

	cmd.Flags().StringVarP(&f.mode, "mode", "m", "", "Run mode: once or bench")
	cmd.Flags().IntVarP(&f.parallel, "parallel", "p", 0, "Puzzles solved concurrently")
	cmd.Flags().StringVar(&f.metricsFile, "metrics-file", "", "Write Prometheus metrics to this file")
	return cmd
}

func parseDays(args []string) ([]int, error) {
	days := make([]int, 0, len(args))
	for _, a := range args {
		d, err := strconv.Atoi(a)
		if err != nil || d < 1 || d > 25 {
			return nil, fmt.Errorf("invalid day %q: must be a number from 1 to 25", a)
		}
		days = append(days, d)
	}
	return days, nil
}

func runPuzzles(cmd *cobra.Command, g *globalFlags, f *runFlags, args []string) error {
	cfg, p, logger, err := g.setup(cmd)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("mode") {
		cfg.Mode = f.mode
	}
	if flags.Changed("parallel") {
		cfg.Parallel = f.parallel
	}
	if flags.Changed("metrics-file") {
		cfg.MetricsFile = f.metricsFile
	}
	if err := cfg.Validate(); err != nil {
		return p.Error("invalid run options", err.Error(), nil)
	}
	mode, err := runner.ParseMode(cfg.Mode)
	if err != nil {
		return p.Error("invalid run options", err.Error(), []string{"Valid modes: once, bench"})
	}

	days, err := parseDays(args)
	if err != nil {
		return p.Error("invalid day", err.Error(), nil)
	}
	if len(days) == 0 {
		days = cfg.Puzzles
	}
	selected, err := puzzles.Select(days)
	if err != nil {
		return p.Error("unknown puzzle", err.Error(), []string{"Run 'puzzlekit list' to see the available days"})
	}

	runID := uuid.NewString()
	var (
		collector metrics.Collector = metrics.NoopCollector{}
		prom      *metrics.Prometheus
	)
	if cfg.MetricsFile != "" {
		prom = metrics.NewPrometheus(runID)
		collector = prom
	}

	session := runner.NewSession(
		input.NewLoader(cfg.InputDir, cfg.Year, logger),
		runner.WithMode(mode),
		runner.WithLogger(logger),
		runner.WithCollector(collector),
		runner.WithRunID(runID),
		runner.WithParallel(cfg.Parallel),
	)

	reports, runErr := session.Run(cmd.Context(), selected)
	for _, rep := range reports {
		rep.Print(p)
	}

	if prom != nil {
		if err := prom.WriteToTextfile(cfg.MetricsFile); err != nil {
			return p.Error("failed to write metrics", err.Error(), nil)
		}
	}

	if runErr != nil {
		var suggestions []string
		if errors.Is(runErr, puzzlekit.ErrInputNotFound) {
			suggestions = append(suggestions, fmt.Sprintf("Place inputs under %s/%d/day_DD.txt", cfg.InputDir, cfg.Year))
		}
		return p.Error("some puzzles failed", runErr.Error(), suggestions)
	}
	return nil
}
