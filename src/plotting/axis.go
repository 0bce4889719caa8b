package plotting

import (
	"fmt"
	"image"
	"image/color"
	"math"

	chart "github.com/wcharczuk/go-chart/v2"
)

// zeroAnchoredRange returns a [0, niceMax] y-range for a series whose lower
// bound is clamped to zero. Non-finite maxima fall back to [0, 1].
func zeroAnchoredRange(maxVal float64) *chart.ContinuousRange {
	if math.IsNaN(maxVal) || math.IsInf(maxVal, 0) || maxVal <= 0 {
		return &chart.ContinuousRange{Min: 0, Max: 1}
	}
	// 5% headroom, rounded up to the span's order of magnitude
	b := maxVal * 1.05
	mag := math.Pow(10, math.Floor(math.Log10(maxVal)))
	if mag > 0 && !math.IsInf(mag, 0) {
		b = math.Ceil(b/mag) * mag
	}
	return &chart.ContinuousRange{Min: 0, Max: b}
}

// niceTicks builds tick marks for [min, max], aiming for about n of them.
func niceTicks(min, max float64, n int) []chart.Tick {
	if n < 2 || math.IsNaN(min) || math.IsNaN(max) {
		return nil
	}
	if max <= min {
		max = min + 1
	}
	step := tickStep(max-min, n)
	var ticks []chart.Tick
	for v := math.Floor(min/step) * step; v < max+step; v += step {
		ticks = append(ticks, chart.Tick{Value: v, Label: formatTick(v)})
		if len(ticks) > n+2 {
			break
		}
	}
	return ticks
}

// tickStep picks a step from the 1/2/2.5/5 family (scaled to the span) whose
// resulting tick count lands closest to n.
func tickStep(span float64, n int) float64 {
	base := math.Pow(10, math.Floor(math.Log10(span/float64(n-1))))
	best, bestDiff := base, math.MaxFloat64
	for _, m := range []float64{1, 2, 2.5, 5, 10} {
		step := m * base
		count := math.Max(2, math.Ceil(span/step))
		if diff := math.Abs(count - float64(n)); diff < bestDiff {
			best, bestDiff = step, diff
		}
	}
	return best
}

func formatTick(v float64) string {
	if v == 0 {
		return "0"
	}
	av := math.Abs(v)
	switch {
	case av >= 1000:
		return fmt.Sprintf("%.0f", v)
	case av >= 100:
		return fmt.Sprintf("%.0f", v)
	case av >= 10:
		return fmt.Sprintf("%.1f", v)
	case av >= 1:
		return fmt.Sprintf("%.2f", v)
	default:
		return fmt.Sprintf("%.3f", v)
	}
}

// finiteMax returns the largest finite value across the given series, or NaN
// when there is none.
func finiteMax(series ...[]float64) float64 {
	max := math.NaN()
	for _, s := range series {
		for _, v := range s {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				continue
			}
			if math.IsNaN(max) || v > max {
				max = v
			}
		}
	}
	return max
}

// finitePoints drops rows whose y is NaN or infinite. A zero measurement
// projects to an infinite throughput, and the rasterizer cannot stroke a line
// to an infinite coordinate.
func finitePoints(xs, ys []float64) ([]float64, []float64) {
	outX := make([]float64, 0, len(xs))
	outY := make([]float64, 0, len(ys))
	for i, y := range ys {
		if math.IsNaN(y) || math.IsInf(y, 0) {
			continue
		}
		outX = append(outX, xs[i])
		outY = append(outY, y)
	}
	return outX, outY
}

// Blank returns a dark placeholder image used as a render-failure fallback.
func Blank(w, h int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, color.RGBA{R: 18, G: 18, B: 18, A: 255})
		}
	}
	return img
}
