// Package chart draws the line and scatter charts of masteryplot as SVG.
package chart

import (
	"fmt"
	"io"
	"math"
	"strconv"

	svg "github.com/ajstarks/svgo"
)

type Style int

const (
	Line Style = iota
	Scatter
)

type Series struct {
	Label string
	X     []float64
	Y     []float64
	Style Style
}

type Chart struct {
	Title  string
	XLabel string
	YLabel string
	// LogY draws the y axis in log10 scale, points with y <= 0 are dropped.
	LogY       bool
	HideXTicks bool
	Legend     bool
	Grid       bool
	Series     []Series
}

// Figure lays charts out on a Rows x Cols grid, row major.
type Figure struct {
	Rows   int
	Cols   int
	Width  int
	Height int
	Charts []Chart
}

const (
	defaultPanelWidth  = 640
	defaultPanelHeight = 420

	marginLeft   = 80
	marginRight  = 20
	marginTop    = 36
	marginBottom = 56
)

var palette = []string{
	"#1f77b4", "#ff7f0e", "#2ca02c", "#d62728", "#9467bd",
	"#8c564b", "#e377c2", "#7f7f7f", "#bcbd22", "#17becf",
}

func Single(c Chart) Figure {
	return Figure{Rows: 1, Cols: 1, Charts: []Chart{c}}
}

type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(p []byte) (int, error) {
	if e.err != nil {
		return 0, e.err
	}
	n, err := e.w.Write(p)
	if err != nil {
		e.err = err
	}
	return n, err
}

func (f Figure) WriteSVG(w io.Writer) error {
	rows, cols := f.Rows, f.Cols
	if rows <= 0 {
		rows = 1
	}
	if cols <= 0 {
		cols = 1
	}
	if len(f.Charts) > rows*cols {
		return fmt.Errorf("%d charts do not fit a %dx%d figure", len(f.Charts), rows, cols)
	}
	width, height := f.Width, f.Height
	if width <= 0 {
		width = cols * defaultPanelWidth
	}
	if height <= 0 {
		height = rows * defaultPanelHeight
	}
	panelW, panelH := width/cols, height/rows

	out := &errWriter{w: w}
	canvas := svg.New(out)
	canvas.Start(width, height)
	canvas.Rect(0, 0, width, height, "fill:white")
	canvas.Gstyle("font-family:sans-serif;font-size:12px")
	for i, c := range f.Charts {
		canvas.Translate((i%cols)*panelW, (i/cols)*panelH)
		c.draw(canvas, panelW, panelH)
		canvas.Gend()
	}
	canvas.Gend()
	canvas.End()
	return out.err
}

type axis struct {
	min, max float64
	log      bool
	// screen coordinates of min and max
	from, to int
}

func (a axis) scale(v float64) int {
	if a.log {
		v = math.Log10(v)
	}
	if a.max == a.min {
		return (a.from + a.to) / 2
	}
	return a.from + int(math.Round((v-a.min)/(a.max-a.min)*float64(a.to-a.from)))
}

// visible drops points that cannot be drawn on the chart's axes.
func (c Chart) visible(s Series) ([]float64, []float64) {
	n := len(s.X)
	if len(s.Y) < n {
		n = len(s.Y)
	}
	xs := make([]float64, 0, n)
	ys := make([]float64, 0, n)
	for i := 0; i < n; i++ {
		x, y := s.X[i], s.Y[i]
		if math.IsNaN(x) || math.IsNaN(y) || math.IsInf(x, 0) || math.IsInf(y, 0) {
			continue
		}
		if c.LogY && y <= 0 {
			continue
		}
		xs = append(xs, x)
		ys = append(ys, y)
	}
	return xs, ys
}

func (c Chart) bounds() (xmin, xmax, ymin, ymax float64, ok bool) {
	xmin, ymin = math.Inf(1), math.Inf(1)
	xmax, ymax = math.Inf(-1), math.Inf(-1)
	for _, s := range c.Series {
		xs, ys := c.visible(s)
		for i := range xs {
			ok = true
			xmin = math.Min(xmin, xs[i])
			xmax = math.Max(xmax, xs[i])
			ymin = math.Min(ymin, ys[i])
			ymax = math.Max(ymax, ys[i])
		}
	}
	return xmin, xmax, ymin, ymax, ok
}

func (c Chart) draw(canvas *svg.SVG, width, height int) {
	left, right := marginLeft, width-marginRight
	top, bottom := marginTop, height-marginBottom

	if c.Title != "" {
		canvas.Text(width/2, marginTop/2+4, c.Title, "text-anchor:middle;font-size:14px")
	}
	canvas.Rect(left, top, right-left, bottom-top, "fill:none;stroke:black")
	if c.XLabel != "" {
		canvas.Text((left+right)/2, height-12, c.XLabel, "text-anchor:middle")
	}
	if c.YLabel != "" {
		canvas.Text(18, (top+bottom)/2, c.YLabel,
			"text-anchor:middle",
			fmt.Sprintf(`transform="rotate(-90,18,%d)"`, (top+bottom)/2))
	}

	xmin, xmax, ymin, ymax, ok := c.bounds()
	if !ok {
		canvas.Text((left+right)/2, (top+bottom)/2, "no data", "text-anchor:middle;fill:gray")
		return
	}

	xTicks := linearTicks(xmin, xmax, 6)
	var yTicks []float64
	ya := axis{log: c.LogY, from: bottom, to: top}
	if c.LogY {
		lo, hi := math.Floor(math.Log10(ymin)), math.Ceil(math.Log10(ymax))
		if lo == hi {
			hi++
		}
		ya.min, ya.max = lo, hi
		for e := lo; e <= hi; e++ {
			yTicks = append(yTicks, math.Pow(10, e))
		}
	} else {
		yTicks = linearTicks(math.Min(ymin, 0), ymax, 6)
		ya.min, ya.max = yTicks[0], yTicks[len(yTicks)-1]
	}
	xa := axis{min: xTicks[0], max: xTicks[len(xTicks)-1], from: left, to: right}

	for _, t := range yTicks {
		y := ya.scale(t)
		if c.Grid {
			canvas.Line(left, y, right, y, "stroke:#dddddd")
		}
		canvas.Line(left-4, y, left, y, "stroke:black")
		canvas.Text(left-6, y+4, formatTick(t), "text-anchor:end")
	}
	for _, t := range xTicks {
		x := xa.scale(t)
		if c.Grid {
			canvas.Line(x, top, x, bottom, "stroke:#dddddd")
		}
		if c.HideXTicks {
			continue
		}
		canvas.Line(x, bottom, x, bottom+4, "stroke:black")
		canvas.Text(x, bottom+18, formatTick(t), "text-anchor:middle")
	}

	for i, s := range c.Series {
		color := palette[i%len(palette)]
		xs, ys := c.visible(s)
		px := make([]int, len(xs))
		py := make([]int, len(ys))
		for j := range xs {
			px[j] = xa.scale(xs[j])
			py[j] = ya.scale(ys[j])
		}
		switch s.Style {
		case Scatter:
			for j := range px {
				canvas.Circle(px[j], py[j], 2, "fill-opacity:0.6;fill:"+color)
			}
		default:
			if len(px) > 0 {
				canvas.Polyline(px, py, "fill:none;stroke-width:2;stroke:"+color)
			}
		}
	}

	if c.Legend {
		c.drawLegend(canvas, right)
	}
}

func (c Chart) drawLegend(canvas *svg.SVG, right int) {
	y := marginTop + 14
	for i, s := range c.Series {
		if s.Label == "" {
			continue
		}
		color := palette[i%len(palette)]
		canvas.Rect(right-150, y-9, 10, 10, "fill:"+color)
		canvas.Text(right-134, y, s.Label)
		y += 16
	}
}

// linearTicks returns evenly spaced round values covering [min, max].
func linearTicks(min, max float64, n int) []float64 {
	if max == min {
		min, max = min-1, max+1
	}
	raw := (max - min) / float64(n)
	mag := math.Pow(10, math.Floor(math.Log10(raw)))
	step := mag
	for _, m := range []float64{1, 2, 2.5, 5, 10} {
		step = m * mag
		if step >= raw {
			break
		}
	}
	start := math.Floor(min/step) * step
	end := math.Ceil(max/step) * step
	var ticks []float64
	for v := start; v <= end+step/2; v += step {
		ticks = append(ticks, v)
	}
	return ticks
}

func formatTick(v float64) string {
	abs := math.Abs(v)
	switch {
	case abs >= 1e6:
		return strconv.FormatFloat(v/1e6, 'f', -1, 64) + "M"
	case abs >= 1e4:
		return strconv.FormatFloat(v/1e3, 'f', -1, 64) + "k"
	case abs < 1e-9:
		return "0"
	}
	return strconv.FormatFloat(math.Round(v*1000)/1000, 'f', -1, 64)
}
