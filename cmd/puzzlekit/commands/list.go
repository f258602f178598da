package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hupe1980/puzzlekit/internal/input"
	"github.com/hupe1980/puzzlekit/puzzles"
)

func newListCmd(g *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the available puzzles and whether their input exists",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, p, logger, err := g.setup(cmd)
			if err != nil {
				return err
			}

			loader := input.NewLoader(cfg.InputDir, cfg.Year, logger)
			p.Header("Puzzles (%d)", cfg.Year)
			for _, pz := range puzzles.All() {
				status := "input found"
				if _, err := loader.Load(cmd.Context(), pz.Day); err != nil {
					status = "no input"
				}
				p.Field(fmt.Sprintf("Day %2d", pz.Day), fmt.Sprintf("%s (%s)", pz.Title, status))
			}
			return nil
		},
	}
}
