package commands

import (
	"masteryplot/internal/report"

	"github.com/spf13/cobra"
)

var pointsOut *string

func init() {
	pointsOut = pointsCmd.Flags().StringP("out", "o", "points.svg", "The svg file to write the figure to.")
	rootCmd.AddCommand(pointsCmd)
}

var pointsCmd = &cobra.Command{
	Use:   "points [players...]",
	Short: "Plots the mastery points distribution and top 10 champions of each player.",
	RunE: func(cmd *cobra.Command, args []string) error {
		fig, err := report.PointsDistribution(cmd.Context(), newSource(), options(args))
		if err != nil {
			return err
		}
		return writeFigure(*pointsOut, fig)
	},
}
