// Package plotting turns benchtab tables into comparison figures.
//
// Every comparison is rendered as one figure with three side-by-side views of
// the same columns: raw latency, throughput (index/value) and reciprocal
// throughput (value/index). Charts are drawn with go-chart and composited
// into a single image so callers can either show it in a window or write it
// out as PNG.
package plotting

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	png "image/png"
	"strings"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/Stefano-t/simd-string-to-integer-parsing/src/benchtab"
)

// View selects one of the three derived projections of a benchmark column.
type View int

const (
	Latency View = iota
	Throughput
	ReciprocalThroughput
)

// Views lists the three views in figure order.
var Views = []View{Latency, Throughput, ReciprocalThroughput}

// Title returns the view's chart title.
func (v View) Title() string {
	switch v {
	case Throughput:
		return "Throughput"
	case ReciprocalThroughput:
		return "Reciprocal Throughput"
	default:
		return "Latency"
	}
}

// YAxisName returns the view's y-axis label, including the reading direction.
func (v View) YAxisName() string {
	switch v {
	case Throughput:
		return "Bytes per TSC cycle (higher is better)"
	case ReciprocalThroughput:
		return "TSC cycles per byte (lower is better)"
	default:
		return "TSC cycles (lower is better)"
	}
}

// values extracts the view's series for one column of the table.
func (v View) values(tbl *benchtab.Table, col string) ([]float64, error) {
	switch v {
	case Throughput:
		return tbl.Throughput(col)
	case ReciprocalThroughput:
		return tbl.ReciprocalThroughput(col)
	default:
		return tbl.Column(col)
	}
}

// Comparison names two or three benchmark columns rendered against each
// other. Labels are optional; a missing or empty label falls back to the raw
// column name, which unifies the labeled and unlabeled rendering paths.
type Comparison struct {
	Columns []string
	Labels  []string
}

func (c Comparison) validate() error {
	if len(c.Columns) < 2 || len(c.Columns) > 3 {
		return fmt.Errorf("comparison needs 2 or 3 columns, got %d", len(c.Columns))
	}
	if len(c.Labels) != 0 && len(c.Labels) != len(c.Columns) {
		return fmt.Errorf("comparison has %d labels for %d columns", len(c.Labels), len(c.Columns))
	}
	return nil
}

// Label returns the legend label for series i.
func (c Comparison) Label(i int) string {
	if i < len(c.Labels) && strings.TrimSpace(c.Labels[i]) != "" {
		return c.Labels[i]
	}
	return c.Columns[i]
}

var seriesColors = []drawing.Color{
	chart.ColorBlue,
	chart.ColorGreen,
	chart.ColorRed,
}

func lineStyle(col drawing.Color) chart.Style {
	return chart.Style{
		StrokeWidth: 2,
		StrokeColor: col,
		DotWidth:    2,
		DotColor:    col,
	}
}

// RenderView renders one view of a comparison as a w×h chart image.
func RenderView(tbl *benchtab.Table, cmp Comparison, v View, w, h int) (image.Image, error) {
	if err := cmp.validate(); err != nil {
		return nil, err
	}
	if tbl.Len() == 0 {
		return nil, fmt.Errorf("table has no rows")
	}

	all := make([][]float64, len(cmp.Columns))
	for i, col := range cmp.Columns {
		ys, err := v.values(tbl, col)
		if err != nil {
			return nil, err
		}
		all[i] = ys
	}

	series := make([]chart.Series, 0, len(cmp.Columns))
	for i, col := range cmp.Columns {
		sx, sy := finitePoints(tbl.Index, all[i])
		if len(sx) == 0 {
			return nil, fmt.Errorf("column %q has no finite values in the %s view", col, v.Title())
		}
		// go-chart needs at least two x-values per series
		if len(sx) == 1 {
			sx = []float64{sx[0], sx[0] + 1}
			sy = []float64{sy[0], sy[0]}
		}
		series = append(series, chart.ContinuousSeries{
			Name:    cmp.Label(i),
			XValues: sx,
			YValues: sy,
			Style:   lineStyle(seriesColors[i%len(seriesColors)]),
		})
	}

	yRange := zeroAnchoredRange(finiteMax(all...))
	ch := chart.Chart{
		Title:      v.Title(),
		Background: chart.Style{Padding: chart.Box{Top: 14, Left: 16, Right: 12, Bottom: 28}},
		XAxis:      chart.XAxis{Name: xAxisName(tbl)},
		YAxis: chart.YAxis{
			Name:  v.YAxisName(),
			Range: yRange,
			Ticks: niceTicks(0, yRange.Max, 6),
		},
		Series: series,
		Width:  w,
		Height: h,
	}
	ch.Elements = []chart.Renderable{chart.Legend(&ch)}

	var buf bytes.Buffer
	if err := ch.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("render %s view: %w", v.Title(), err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		return nil, fmt.Errorf("decode %s view: %w", v.Title(), err)
	}
	return img, nil
}

const captionHeight = 22

// RenderFigure renders the three views of a comparison side by side into one
// w×h image, with a caption strip naming the compared series at the bottom.
func RenderFigure(tbl *benchtab.Table, cmp Comparison, w, h int) (image.Image, error) {
	if err := cmp.validate(); err != nil {
		return nil, err
	}
	if w < 3 {
		return nil, fmt.Errorf("figure width %d too small", w)
	}
	viewW := w / 3
	viewH := h - captionHeight
	if viewH < 1 {
		return nil, fmt.Errorf("figure height %d too small", h)
	}

	out := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(out, out.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)
	for i, v := range Views {
		img, err := RenderView(tbl, cmp, v, viewW, viewH)
		if err != nil {
			return nil, err
		}
		r := image.Rect(i*viewW, 0, (i+1)*viewW, viewH)
		draw.Draw(out, r, img, img.Bounds().Min, draw.Src)
	}

	labels := make([]string, len(cmp.Columns))
	for i := range cmp.Columns {
		labels[i] = cmp.Label(i)
	}
	drawCaption(out, strings.Join(labels, "  vs  "))
	return out, nil
}

// drawCaption writes text into the caption strip at the bottom of the figure.
func drawCaption(img *image.RGBA, text string) {
	if strings.TrimSpace(text) == "" {
		return
	}
	b := img.Bounds()
	face := basicfont.Face7x13
	dr := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(color.RGBA{R: 40, G: 40, B: 40, A: 255}),
		Face: face,
	}
	tw := dr.MeasureString(text).Ceil()
	x := b.Min.X + (b.Dx()-tw)/2
	if x < b.Min.X+4 {
		x = b.Min.X + 4
	}
	y := b.Max.Y - 7
	dr.Dot = fixed.Point26_6{X: fixed.I(x), Y: fixed.I(y)}
	dr.DrawString(text)
}

func xAxisName(tbl *benchtab.Table) string {
	if strings.TrimSpace(tbl.IndexName) != "" {
		return tbl.IndexName
	}
	return "Number length in bytes"
}
