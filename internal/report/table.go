package report

import (
	"fmt"
	"io"
	"strconv"

	"masteryplot/internal/mastery"
	"masteryplot/internal/stats"

	"github.com/olekukonko/tablewriter"
)

// WriteTable renders the first `limit` champions of a player, all of them
// when limit <= 0.
func WriteTable(w io.Writer, player string, t mastery.Table, limit int) error {
	if _, err := fmt.Fprintf(w, "%s: %d champions\n", player, len(t.Rows)); err != nil {
		return err
	}

	champion := t.Column(mastery.ColumnChampion)
	rows := t.Rows
	if limit > 0 && limit < len(rows) {
		rows = rows[:limit]
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"champion", "level", "points"})
	table.SetAutoFormatHeaders(false)
	for _, r := range rows {
		table.Append([]string{
			r.Cell(champion),
			strconv.Itoa(r.Level),
			strconv.Itoa(r.Points),
		})
	}
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_RIGHT,
	})
	table.Render()
	return nil
}

// WriteLevelSummary renders one row per player with the number of champions
// at each mastery level, level 0 being the champions never played.
func WriteLevelSummary(w io.Writer, tables []PlayerTable, champions int) {
	maxLevel := 0
	for _, pt := range tables {
		for _, l := range pt.Table.Levels() {
			if l > maxLevel {
				maxLevel = l
			}
		}
	}

	header := []string{"player"}
	for l := 0; l <= maxLevel; l++ {
		header = append(header, strconv.Itoa(l))
	}
	header = append(header, "points")

	table := tablewriter.NewWriter(w)
	table.SetHeader(header)
	table.SetAutoFormatHeaders(false)
	for _, pt := range tables {
		levels, counts := stats.LevelCounts(pt.Table.Levels())
		levels, counts = stats.WithZeroLevel(levels, counts, champions)

		byLevel := make([]int, maxLevel+1)
		for i, l := range levels {
			if l >= 0 && l <= maxLevel {
				byLevel[l] = counts[i]
			}
		}

		total := 0
		for _, p := range pt.Table.Points() {
			total += p
		}

		row := []string{pt.Player}
		for _, c := range byLevel {
			row = append(row, strconv.Itoa(c))
		}
		row = append(row, strconv.Itoa(total))
		table.Append(row)
	}
	table.Render()
}
