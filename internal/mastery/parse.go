package mastery

import (
	"bytes"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

const (
	ColumnChampion = "champion"
	ColumnLevel    = "level"
	ColumnPoints   = "points"
)

// Row is one champion of a mastery table. Cells holds the text of every
// column as rendered on the page, Level and Points are parsed from the
// matching columns.
type Row struct {
	Cells  []string
	Level  int
	Points int
}

// Cell returns the text of column i, or "" if the row is shorter.
func (r Row) Cell(i int) string {
	if i < 0 || i >= len(r.Cells) {
		return ""
	}
	return r.Cells[i]
}

type Table struct {
	// Columns are the normalized header names.
	Columns []string
	Rows    []Row
}

// Column returns the index of the named column or -1.
func (t Table) Column(name string) int {
	name = normalizeHeader(name)
	for i, c := range t.Columns {
		if c == name {
			return i
		}
	}
	return -1
}

func (t Table) Levels() []int {
	out := make([]int, len(t.Rows))
	for i, r := range t.Rows {
		out[i] = r.Level
	}
	return out
}

func (t Table) Points() []int {
	out := make([]int, len(t.Rows))
	for i, r := range t.Rows {
		out[i] = r.Points
	}
	return out
}

var whitespace = regexp.MustCompile(`\s+`)

func normalizeHeader(s string) string {
	s = strings.ToLower(s)
	s = whitespace.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

func nodeText(node *html.Node) string {
	var buffer bytes.Buffer
	nodeTextRecursive(node, &buffer)
	return strings.TrimSpace(whitespace.ReplaceAllString(buffer.String(), " "))
}

func nodeTextRecursive(node *html.Node, buffer *bytes.Buffer) {
	if node == nil {
		return
	}
	if node.Type == html.TextNode {
		buffer.WriteString(node.Data)
		return
	}
	for child := node.FirstChild; child != nil; child = child.NextSibling {
		nodeTextRecursive(child, buffer)
	}
}

func selectionText(sel *goquery.Selection) []string {
	out := make([]string, 0, sel.Length())
	for _, n := range sel.Nodes {
		out = append(out, nodeText(n))
	}
	return out
}

// sections holds the rows of one table, without descending into nested
// tables. Body rows come before footer rows whatever their order in the markup.
type sections struct {
	head []*goquery.Selection
	body []*goquery.Selection
	foot []*goquery.Selection
}

func rowsOf(table *goquery.Selection) sections {
	var out sections
	collect := func(sel *goquery.Selection, dst *[]*goquery.Selection) {
		sel.Each(func(_ int, tr *goquery.Selection) {
			*dst = append(*dst, tr)
		})
	}
	collect(table.ChildrenFiltered("thead").ChildrenFiltered("tr"), &out.head)
	collect(table.ChildrenFiltered("tr"), &out.body)
	collect(table.ChildrenFiltered("tbody").ChildrenFiltered("tr"), &out.body)
	collect(table.ChildrenFiltered("tfoot").ChildrenFiltered("tr"), &out.foot)
	return out
}

// headerOf returns the normalized cells of the first row made of th cells.
// Without one, the first thead row is the header whatever its cell type.
func headerOf(rows sections) ([]string, *html.Node) {
	var header []string
	for _, group := range [][]*goquery.Selection{rows.head, rows.body} {
		for _, tr := range group {
			th := tr.ChildrenFiltered("th")
			if th.Length() == 0 {
				continue
			}
			for _, text := range selectionText(th) {
				header = append(header, normalizeHeader(text))
			}
			return header, tr.Get(0)
		}
	}
	if len(rows.head) > 0 {
		tr := rows.head[0]
		for _, text := range selectionText(tr.ChildrenFiltered("th, td")) {
			header = append(header, normalizeHeader(text))
		}
		return header, tr.Get(0)
	}
	return nil, nil
}

func hasColumns(header []string, names ...string) bool {
	for _, name := range names {
		found := false
		for _, h := range header {
			if h == name {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

var firstInt = regexp.MustCompile(`\d+`)

func parseLevel(cell string) (int, error) {
	digits := firstInt.FindString(cell)
	if digits == "" {
		return 0, fmt.Errorf("level %q has no digits", cell)
	}
	return strconv.Atoi(digits)
}

var groupedInt = regexp.MustCompile(`\d[\d,.\s\x{00a0}]*`)

func parsePoints(cell string) (int, error) {
	group := groupedInt.FindString(cell)
	if group == "" {
		return 0, fmt.Errorf("points %q has no digits", cell)
	}
	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, group)
	return strconv.Atoi(digits)
}

// ParseTable extracts the mastery table from a championmastery.gg page. The
// table is the first one whose header names both a level and a points
// column. The last data row of the table is a page generated total and is
// not returned.
func ParseTable(r io.Reader) (Table, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return Table{}, &ParseError{Reason: "read html", Err: err}
	}

	var rows sections
	var header []string
	var headerRow *html.Node
	doc.Find("table").EachWithBreak(func(_ int, t *goquery.Selection) bool {
		r := rowsOf(t)
		h, hr := headerOf(r)
		if !hasColumns(h, ColumnLevel, ColumnPoints) {
			return true
		}
		rows, header, headerRow = r, h, hr
		return false
	})
	if header == nil {
		return Table{}, &ParseError{Reason: "no table with level and points columns"}
	}

	out := Table{Columns: header}
	levelIdx := out.Column(ColumnLevel)
	pointsIdx := out.Column(ColumnPoints)

	var cells [][]string
	for _, tr := range append(rows.body, rows.foot...) {
		if tr.Get(0) == headerRow {
			continue
		}
		td := tr.ChildrenFiltered("td")
		if td.Length() == 0 {
			continue
		}
		cells = append(cells, selectionText(td))
	}
	if len(cells) > 0 {
		cells = cells[:len(cells)-1]
	}

	out.Rows = make([]Row, 0, len(cells))
	for i, row := range cells {
		r := Row{Cells: row}
		r.Level, err = parseLevel(r.Cell(levelIdx))
		if err != nil {
			return Table{}, &ParseError{Reason: fmt.Sprintf("row %d", i), Err: err}
		}
		r.Points, err = parsePoints(r.Cell(pointsIdx))
		if err != nil {
			return Table{}, &ParseError{Reason: fmt.Sprintf("row %d", i), Err: err}
		}
		out.Rows = append(out.Rows, r)
	}

	return out, nil
}
