package mastery

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

const masteryPage = `<!DOCTYPE html>
<html>
<body>
<table id="navigation"><tr><td>Home</td><td>Highscores</td></tr></table>
<table id="tbl">
	<thead>
		<tr><th>Champion</th><th>Level</th><th>Points</th><th>Last played</th></tr>
	</thead>
	<tbody>
		<tr><td><a href="/champion?champion=236">Lucian</a></td><td>7</td><td>1,234,567</td><td>2 days ago</td></tr>
		<tr><td><a href="/champion?champion=222">Jinx</a></td><td>5</td><td>48,210</td><td>1 month ago</td></tr>
	</tbody>
	<tfoot>
		<tr><td>Total</td><td>Total Level: 12</td><td>1,282,777</td><td></td></tr>
	</tfoot>
</table>
</body>
</html>`

func TestParseTableDropsFooter(t *testing.T) {
	table, err := ParseTable(strings.NewReader(masteryPage))
	require.NoError(t, err)

	expected := Table{
		Columns: []string{"champion", "level", "points", "last played"},
		Rows: []Row{
			{Cells: []string{"Lucian", "7", "1,234,567", "2 days ago"}, Level: 7, Points: 1234567},
			{Cells: []string{"Jinx", "5", "48,210", "1 month ago"}, Level: 5, Points: 48210},
		},
	}
	if diff := cmp.Diff(expected, table); diff != "" {
		t.Fatalf("table mismatch (-want +got):\n%s", diff)
	}
}

func TestParseTablePreservesOrder(t *testing.T) {
	var b strings.Builder
	b.WriteString(`<table><tr><th>Level</th><th>Points</th></tr>`)
	levels := []string{"1", "1", "2", "3", "3", "3"}
	for i, l := range levels {
		b.WriteString("<tr><td>" + l + "</td><td>" + strings.Repeat("9", i+1) + "</td></tr>")
	}
	b.WriteString(`<tr><td>footer</td><td>0</td></tr></table>`)

	table, err := ParseTable(strings.NewReader(b.String()))
	require.NoError(t, err)
	require.Equal(t, []int{1, 1, 2, 3, 3, 3}, table.Levels())
	require.Equal(t, []int{9, 99, 999, 9999, 99999, 999999}, table.Points())
}

func TestParseTableHeaderNormalization(t *testing.T) {
	page := `<table><tr><th> Champion </th><th>
		LEVEL</th><th>Points</th></tr>
		<tr><td>Ahri</td><td>Level 6</td><td>21 500</td></tr>
		<tr><td>total</td><td></td><td></td></tr></table>`

	table, err := ParseTable(strings.NewReader(page))
	require.NoError(t, err)
	require.Equal(t, 1, table.Column("Level"))
	require.Equal(t, -1, table.Column("chest"))
	require.Len(t, table.Rows, 1)
	require.Equal(t, 6, table.Rows[0].Level)
	require.Equal(t, 21500, table.Rows[0].Points)
	require.Equal(t, "Ahri", table.Rows[0].Cell(0))
	require.Equal(t, "", table.Rows[0].Cell(10))
}

func TestParseTableOnlyFooter(t *testing.T) {
	page := `<table><tr><th>Level</th><th>Points</th></tr><tr><td>0</td><td>0</td></tr></table>`
	table, err := ParseTable(strings.NewReader(page))
	require.NoError(t, err)
	require.Empty(t, table.Rows)
}

func TestParseTableErrors(t *testing.T) {
	testCases := []struct {
		name string
		page string
	}{
		{
			name: "no table",
			page: `<html><body><p>Summoner not found</p></body></html>`,
		},
		{
			name: "missing points column",
			page: `<table><tr><th>Champion</th><th>Level</th></tr><tr><td>Ahri</td><td>4</td></tr></table>`,
		},
		{
			name: "non numeric points",
			page: `<table><tr><th>Level</th><th>Points</th></tr>
				<tr><td>4</td><td>n/a</td></tr>
				<tr><td>x</td><td>x</td></tr></table>`,
		},
		{
			name: "non numeric level",
			page: `<table><tr><th>Level</th><th>Points</th></tr>
				<tr><td>?</td><td>100</td></tr>
				<tr><td>x</td><td>x</td></tr></table>`,
		},
	}

	for _, test := range testCases {
		t.Run(test.name, func(t *testing.T) {
			_, err := ParseTable(strings.NewReader(test.page))
			require.ErrorIs(t, err, ErrParse)
			require.NotErrorIs(t, err, ErrNetwork)
		})
	}
}

func TestParseTableFooterBeforeBody(t *testing.T) {
	page := `<table>
	<thead><tr><th>Champion</th><th>Level</th><th>Points</th></tr></thead>
	<tfoot><tr><td>Total</td><td>Total Level: 12</td><td>1,282,777</td></tr></tfoot>
	<tbody>
		<tr><td>Lucian</td><td>7</td><td>1,234,567</td></tr>
		<tr><td>Jinx</td><td>5</td><td>48,210</td></tr>
	</tbody>
</table>`

	table, err := ParseTable(strings.NewReader(page))
	require.NoError(t, err)
	require.Len(t, table.Rows, 2)
	require.Equal(t, "Lucian", table.Rows[0].Cell(0))
	require.Equal(t, "Jinx", table.Rows[1].Cell(0))
	require.Equal(t, []int{7, 5}, table.Levels())
	require.Equal(t, []int{1234567, 48210}, table.Points())
}

func TestParseTableTdHeader(t *testing.T) {
	page := `<table>
	<thead><tr><td>Champion</td><td>Level</td><td>Points</td></tr></thead>
	<tbody>
		<tr><td>Ahri</td><td>6</td><td>21,500</td></tr>
		<tr><td>Lux</td><td>3</td><td>9,000</td></tr>
		<tr><td>Total</td><td>9</td><td>30,500</td></tr>
	</tbody>
</table>`

	table, err := ParseTable(strings.NewReader(page))
	require.NoError(t, err)
	require.Equal(t, []string{"champion", "level", "points"}, table.Columns)
	require.Len(t, table.Rows, 2)
	require.Equal(t, []string{"Ahri", "6", "21,500"}, table.Rows[0].Cells)
	require.Equal(t, []string{"Lux", "3", "9,000"}, table.Rows[1].Cells)
}

func TestParseTableIgnoresNestedTables(t *testing.T) {
	page := `<table>
	<tr><th>Champion</th><th>Level</th><th>Points</th></tr>
	<tr><td>Ahri<table><tr><td>x</td><td>99</td><td>99</td></tr></table></td><td>6</td><td>21,500</td></tr>
	<tr><td>Lux</td><td>3</td><td>9,000</td></tr>
	<tr><td>Total</td><td>9</td><td>30,500</td></tr>
</table>`

	table, err := ParseTable(strings.NewReader(page))
	require.NoError(t, err)
	require.Equal(t, []int{6, 3}, table.Levels())
	require.Equal(t, []int{21500, 9000}, table.Points())
}
