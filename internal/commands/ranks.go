package commands

import (
	"masteryplot/internal/chart"
	"masteryplot/internal/report"

	"github.com/spf13/cobra"
)

var ranksOut *string

func init() {
	ranksOut = ranksCmd.Flags().StringP("out", "o", "ranks.svg", "The svg file to write the chart to.")
	rootCmd.AddCommand(ranksCmd)
}

var ranksCmd = &cobra.Command{
	Use:   "ranks [players...]",
	Short: "Plots how many champions each player has at every mastery level.",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := report.RankDistribution(cmd.Context(), newSource(), options(args))
		if err != nil {
			return err
		}
		return writeFigure(*ranksOut, chart.Single(c))
	},
}
