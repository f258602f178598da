package commands

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/hupe1980/puzzlekit"
	"github.com/hupe1980/puzzlekit/internal/input"
	"github.com/hupe1980/puzzlekit/puzzles"
)

func newPackCmd(g *globalFlags) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "pack [DAY...]",
		Short: "Compress puzzle inputs next to the plain files",
		Long: `Compress the plain input of each day (all registered days by default)
with zstd or lz4. "puzzlekit run" reads the compressed file when the
plain one is missing.

Examples:
  puzzlekit pack --format=zst
  puzzlekit pack 16 --format=lz4`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, p, logger, err := g.setup(cmd)
			if err != nil {
				return err
			}

			c, err := input.ParseCompression(format)
			if err != nil {
				return p.Error("invalid format", err.Error(), []string{"Valid formats: zst, lz4"})
			}
			days, err := parseDays(args)
			if err != nil {
				return p.Error("invalid day", err.Error(), nil)
			}
			selected, err := puzzles.Select(days)
			if err != nil {
				return p.Error("unknown puzzle", err.Error(), []string{"Run 'puzzlekit list' to see the available days"})
			}

			loader := input.NewLoader(cfg.InputDir, cfg.Year, logger)
			for _, pz := range selected {
				path, err := loader.Pack(cmd.Context(), pz.Day, c)
				if errors.Is(err, puzzlekit.ErrInputNotFound) && len(args) == 0 {
					p.Warning("No input for day %d, skipping", pz.Day)
					continue
				}
				if err != nil {
					return p.Error("failed to pack input", err.Error(), nil)
				}
				p.Success("Packed day %d into %s", pz.Day, path)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "zst", "Compression: zst or lz4")
	return cmd
}
