package report

import (
	"context"

	"masteryplot/internal/chart"
	"masteryplot/internal/mastery"
	"masteryplot/internal/stats"
)

const (
	topChampions = 10

	labelRank      = "Mastery Rank"
	labelChampions = "# of Champions"
)

// RankChart plots how many champions each player has at every mastery level.
func RankChart(tables []PlayerTable) chart.Chart {
	c := chart.Chart{
		XLabel: labelRank,
		YLabel: labelChampions,
		Legend: true,
		Grid:   true,
	}
	for _, pt := range tables {
		levels, counts := stats.LevelCounts(pt.Table.Levels())
		c.Series = append(c.Series, chart.Series{
			Label: pt.Player,
			X:     stats.Floats(levels),
			Y:     stats.Floats(counts),
		})
	}
	return c
}

func RankDistribution(ctx context.Context, source mastery.Source, opts Options) (chart.Chart, error) {
	tables, err := FetchAll(ctx, source, opts)
	if err != nil {
		return chart.Chart{}, err
	}
	return RankChart(tables), nil
}

// sharedStyle is applied to every points panel, the rank panel keeps its
// own labels.
func sharedStyle(c *chart.Chart) {
	c.XLabel = "Champions"
	c.YLabel = "Mastery Points"
	c.HideXTicks = true
	c.Legend = true
}

// PointsFigure lays out the points distribution on a 2x2 grid:
//
//	all champions (log)  | levels incl. unplayed
//	top 10 (linear)      | top 10 (log)
func PointsFigure(tables []PlayerTable, champions int) chart.Figure {
	all := chart.Chart{Title: "All champions", LogY: true}
	levelsChart := chart.Chart{
		Title:  "Mastery levels",
		XLabel: labelRank,
		YLabel: labelChampions,
		Legend: true,
		Grid:   true,
	}
	top := chart.Chart{Title: "Top 10 champions"}
	topLog := chart.Chart{Title: "Top 10 champions (log)", LogY: true}

	for _, pt := range tables {
		padded := stats.PadAscending(pt.Table.Points(), champions)
		all.Series = append(all.Series, chart.Series{
			Label: pt.Player,
			X:     stats.NormalizedRanks(len(padded)),
			Y:     stats.Floats(padded),
			Style: chart.Scatter,
		})

		levels, counts := stats.LevelCounts(pt.Table.Levels())
		levels, counts = stats.WithZeroLevel(levels, counts, champions)
		levelsChart.Series = append(levelsChart.Series, chart.Series{
			Label: pt.Player,
			X:     stats.Floats(levels),
			Y:     stats.Floats(counts),
		})

		best := stats.TopN(padded, topChampions)
		positions := make([]float64, len(best))
		for i := range positions {
			positions[i] = float64(i + 1)
		}
		series := chart.Series{
			Label: pt.Player,
			X:     positions,
			Y:     stats.Floats(best),
			Style: chart.Scatter,
		}
		top.Series = append(top.Series, series)
		topLog.Series = append(topLog.Series, series)
	}

	charts := []chart.Chart{all, levelsChart, top, topLog}
	for i := range charts {
		if i == 1 {
			continue
		}
		sharedStyle(&charts[i])
	}

	return chart.Figure{Rows: 2, Cols: 2, Charts: charts}
}

func PointsDistribution(ctx context.Context, source mastery.Source, opts Options) (chart.Figure, error) {
	tables, err := FetchAll(ctx, source, opts)
	if err != nil {
		return chart.Figure{}, err
	}
	return PointsFigure(tables, opts.ChampionTotal()), nil
}
