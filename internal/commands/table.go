package commands

import (
	"fmt"
	"io"

	"masteryplot/internal/report"

	"github.com/spf13/cobra"
)

const defaultTableLimit = 10

var tableLimit *int

func init() {
	tableLimit = tableCmd.Flags().Int("limit", defaultTableLimit, "How many champions to list per player, 0 lists all of them.")
	rootCmd.AddCommand(tableCmd)
}

func writeTables(out io.Writer, tables []report.PlayerTable, opts report.Options, limit int) error {
	for _, pt := range tables {
		err := report.WriteTable(out, pt.Player, pt.Table, limit)
		if err != nil {
			return err
		}
		fmt.Fprintln(out)
	}
	report.WriteLevelSummary(out, tables, opts.ChampionTotal())
	return nil
}

var tableCmd = &cobra.Command{
	Use:   "table [players...]",
	Short: "Prints the mastery tables of players and a per level summary.",
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := options(args)
		tables, err := report.FetchAll(cmd.Context(), newSource(), opts)
		if err != nil {
			return err
		}
		return writeTables(cmd.OutOrStdout(), tables, opts, *tableLimit)
	},
}
