package commands

import (
	"path/filepath"

	"masteryplot/internal/chart"
	"masteryplot/internal/report"

	"github.com/spf13/cobra"
)

var (
	allDir   *string
	allLimit *int
)

func init() {
	allDir = allCmd.Flags().StringP("dir", "d", ".", "The directory to write ranks.svg and points.svg to.")
	allLimit = allCmd.Flags().Int("limit", defaultTableLimit, "How many champions to list per player, 0 lists all of them.")
	rootCmd.AddCommand(allCmd)
}

var allCmd = &cobra.Command{
	Use:   "all [players...]",
	Short: "Draws both charts and prints the tables, fetching every player once.",
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := options(args)
		tables, err := report.FetchAll(cmd.Context(), newSource(), opts)
		if err != nil {
			return err
		}

		err = writeFigure(filepath.Join(*allDir, "ranks.svg"), chart.Single(report.RankChart(tables)))
		if err != nil {
			return err
		}
		err = writeFigure(filepath.Join(*allDir, "points.svg"), report.PointsFigure(tables, opts.ChampionTotal()))
		if err != nil {
			return err
		}

		return writeTables(cmd.OutOrStdout(), tables, opts, *allLimit)
	},
}
