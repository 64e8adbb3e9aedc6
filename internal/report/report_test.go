package report

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"masteryplot/internal/mastery"

	"github.com/stretchr/testify/require"
)

type fakeSource struct {
	tables map[string]mastery.Table
	calls  []string
}

func (s *fakeSource) Fetch(_ context.Context, player, region string) (mastery.Table, error) {
	s.calls = append(s.calls, player)
	t, ok := s.tables[player]
	if !ok {
		return mastery.Table{}, &mastery.ParseError{Player: player, Reason: "no table with level and points columns"}
	}
	return t, nil
}

func makeTable(rows ...[2]int) mastery.Table {
	t := mastery.Table{Columns: []string{"champion", "level", "points"}}
	for i, r := range rows {
		t.Rows = append(t.Rows, mastery.Row{
			Cells:  []string{string(rune('A' + i)), "", ""},
			Level:  r[0],
			Points: r[1],
		})
	}
	return t
}

func newFakeSource() *fakeSource {
	return &fakeSource{tables: map[string]mastery.Table{
		"Rivers Pride": makeTable([2]int{3, 30000}, [2]int{3, 20000}, [2]int{3, 10000}, [2]int{2, 3000}, [2]int{1, 200}, [2]int{1, 100}),
		"Psiteryder":   makeTable([2]int{7, 500000}, [2]int{5, 40000}),
	}}
}

func TestFetchAllKeepsOrder(t *testing.T) {
	source := newFakeSource()
	tables, err := FetchAll(context.Background(), source, Options{
		Players: []string{"Psiteryder", "Rivers Pride"},
	})
	require.NoError(t, err)
	require.Equal(t, []string{"Psiteryder", "Rivers Pride"}, source.calls)
	require.Equal(t, "Psiteryder", tables[0].Player)
	require.Equal(t, "Rivers Pride", tables[1].Player)
}

func TestFetchAllStopsOnError(t *testing.T) {
	source := newFakeSource()
	_, err := FetchAll(context.Background(), source, Options{
		Players: []string{"Psiteryder", "ghost", "Rivers Pride"},
	})
	require.ErrorIs(t, err, mastery.ErrParse)
	require.Equal(t, []string{"Psiteryder", "ghost"}, source.calls)
}

func TestFetchAllSkipFailed(t *testing.T) {
	source := newFakeSource()
	tables, err := FetchAll(context.Background(), source, Options{
		Players:    []string{"Psiteryder", "ghost", "Rivers Pride"},
		SkipFailed: true,
	})
	require.NoError(t, err)
	require.Len(t, tables, 2)

	_, err = FetchAll(context.Background(), source, Options{
		Players:    []string{"ghost"},
		SkipFailed: true,
	})
	require.Error(t, err)
}

func TestFetchAllCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := FetchAll(ctx, newFakeSource(), Options{Players: []string{"Psiteryder"}})
	require.True(t, errors.Is(err, context.Canceled))
}

func TestRankDistribution(t *testing.T) {
	c, err := RankDistribution(context.Background(), newFakeSource(), Options{
		Players: []string{"Rivers Pride", "Psiteryder"},
	})
	require.NoError(t, err)
	require.Equal(t, "Mastery Rank", c.XLabel)
	require.Equal(t, "# of Champions", c.YLabel)
	require.True(t, c.Legend)
	require.True(t, c.Grid)
	require.Len(t, c.Series, 2)

	require.Equal(t, "Rivers Pride", c.Series[0].Label)
	require.Equal(t, []float64{1, 2, 3}, c.Series[0].X)
	require.Equal(t, []float64{2, 1, 3}, c.Series[0].Y)
	require.Equal(t, []float64{5, 7}, c.Series[1].X)
	require.Equal(t, []float64{1, 1}, c.Series[1].Y)
}

func TestPointsDistribution(t *testing.T) {
	fig, err := PointsDistribution(context.Background(), newFakeSource(), Options{
		Players:   []string{"Rivers Pride", "Psiteryder"},
		Champions: 12,
	})
	require.NoError(t, err)
	require.Equal(t, 2, fig.Rows)
	require.Equal(t, 2, fig.Cols)
	require.Len(t, fig.Charts, 4)

	all, levels, top, topLog := fig.Charts[0], fig.Charts[1], fig.Charts[2], fig.Charts[3]

	require.True(t, all.LogY)
	require.Equal(t, []float64{0, 0, 0, 0, 0, 0, 100, 200, 3000, 10000, 20000, 30000}, all.Series[0].Y)
	require.Len(t, all.Series[0].X, 12)
	require.Equal(t, 0.0, all.Series[0].X[0])
	require.Equal(t, 1.0, all.Series[0].X[11])

	require.Equal(t, []float64{0, 1, 2, 3}, levels.Series[0].X)
	require.Equal(t, []float64{6, 2, 1, 3}, levels.Series[0].Y)
	require.Equal(t, []float64{0, 5, 7}, levels.Series[1].X)
	require.Equal(t, []float64{10, 1, 1}, levels.Series[1].Y)

	require.False(t, top.LogY)
	require.True(t, topLog.LogY)
	require.Len(t, top.Series[0].Y, 10)
	require.Equal(t, []float64{0, 0, 0, 0, 100, 200, 3000, 10000, 20000, 30000}, top.Series[0].Y)
	require.Equal(t, top.Series, topLog.Series)

	for _, i := range []int{0, 2, 3} {
		c := fig.Charts[i]
		require.Equal(t, "Champions", c.XLabel)
		require.Equal(t, "Mastery Points", c.YLabel)
		require.True(t, c.HideXTicks)
		require.True(t, c.Legend)
	}
	require.Equal(t, "Mastery Rank", levels.XLabel)
	require.False(t, levels.HideXTicks)
}

func TestPointsDistributionDefaultsChampionCount(t *testing.T) {
	fig, err := PointsDistribution(context.Background(), newFakeSource(), Options{
		Players: []string{"Psiteryder"},
	})
	require.NoError(t, err)
	require.Len(t, fig.Charts[0].Series[0].Y, mastery.ChampionCount())
}

func TestWriteTable(t *testing.T) {
	var buf bytes.Buffer
	table := newFakeSource().tables["Psiteryder"]
	require.NoError(t, WriteTable(&buf, "Psiteryder", table, 1))

	out := buf.String()
	require.Contains(t, out, "Psiteryder: 2 champions")
	require.Contains(t, out, "champion")
	require.NotContains(t, out, "CHAMPION")
	require.Contains(t, out, "500000")
	require.NotContains(t, out, "40000")
}

func TestWriteLevelSummary(t *testing.T) {
	source := newFakeSource()
	tables := []PlayerTable{
		{Player: "Rivers Pride", Table: source.tables["Rivers Pride"]},
		{Player: "Psiteryder", Table: source.tables["Psiteryder"]},
	}

	var buf bytes.Buffer
	WriteLevelSummary(&buf, tables, 12)
	out := buf.String()
	require.Contains(t, out, "Rivers Pride")
	require.Contains(t, out, "63300")
	require.Contains(t, out, "540000")
}

func TestChampionTotal(t *testing.T) {
	require.Equal(t, 12, Options{Champions: 12}.ChampionTotal())
	require.Equal(t, mastery.ChampionCount(), Options{}.ChampionTotal())
}
