package plotting

import (
	"math"
	"testing"
)

func TestZeroAnchoredRange(t *testing.T) {
	cases := []struct {
		in      float64
		wantMax float64 // minimum acceptable upper bound
	}{
		{93, 93},
		{1, 1},
		{0.04, 0.04},
		{12345, 12345},
	}
	for _, c := range cases {
		r := zeroAnchoredRange(c.in)
		if r.Min != 0 {
			t.Fatalf("zeroAnchoredRange(%v).Min = %v want 0", c.in, r.Min)
		}
		if r.Max < c.wantMax {
			t.Fatalf("zeroAnchoredRange(%v).Max = %v, below raw max", c.in, r.Max)
		}
	}
}

func TestZeroAnchoredRangeDegenerate(t *testing.T) {
	for _, in := range []float64{0, -5, math.NaN(), math.Inf(1), math.Inf(-1)} {
		r := zeroAnchoredRange(in)
		if r.Min != 0 || r.Max != 1 {
			t.Fatalf("zeroAnchoredRange(%v) = [%v,%v] want [0,1]", in, r.Min, r.Max)
		}
	}
}

func TestNiceTicks(t *testing.T) {
	ticks := niceTicks(0, 100, 6)
	if len(ticks) < 2 {
		t.Fatalf("expected at least 2 ticks, got %v", ticks)
	}
	if ticks[0].Value > 0 {
		t.Fatalf("first tick %v should not exceed 0", ticks[0].Value)
	}
	if last := ticks[len(ticks)-1].Value; last < 100 {
		t.Fatalf("last tick %v should not be below 100", last)
	}
	for i := 1; i < len(ticks); i++ {
		if !(ticks[i].Value > ticks[i-1].Value) {
			t.Fatalf("ticks not increasing at %d: %v", i, ticks)
		}
	}
	if got := niceTicks(0, 100, 1); got != nil {
		t.Fatalf("n<2 should yield nil, got %v", got)
	}
	if got := niceTicks(math.NaN(), 100, 6); got != nil {
		t.Fatalf("NaN min should yield nil, got %v", got)
	}
}

func TestFormatTick(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{0, "0"},
		{1234.4, "1234"},
		{123.4, "123"},
		{12.34, "12.3"},
		{1.234, "1.23"},
		{0.1234, "0.123"},
	}
	for _, c := range cases {
		if got := formatTick(c.in); got != c.want {
			t.Fatalf("formatTick(%v) = %q want %q", c.in, got, c.want)
		}
	}
}

func TestFiniteMax(t *testing.T) {
	got := finiteMax([]float64{1, math.Inf(1), 3}, []float64{math.NaN(), 2})
	if got != 3 {
		t.Fatalf("finiteMax = %v want 3", got)
	}
	if v := finiteMax([]float64{math.NaN(), math.Inf(1)}); !math.IsNaN(v) {
		t.Fatalf("finiteMax of non-finite values = %v want NaN", v)
	}
}

func TestFinitePoints(t *testing.T) {
	xs, ys := finitePoints([]float64{1, 2, 4}, []float64{math.Inf(1), 0.1, math.NaN()})
	if len(xs) != 1 || len(ys) != 1 {
		t.Fatalf("finitePoints kept %d/%d points, want 1/1", len(xs), len(ys))
	}
	if xs[0] != 2 || ys[0] != 0.1 {
		t.Fatalf("finitePoints kept (%v, %v), want (2, 0.1)", xs[0], ys[0])
	}
	xs, ys = finitePoints([]float64{1}, []float64{math.Inf(-1)})
	if len(xs) != 0 || len(ys) != 0 {
		t.Fatalf("expected no points, got %v %v", xs, ys)
	}
}

func TestBlankDimensions(t *testing.T) {
	img := Blank(640, 240)
	b := img.Bounds()
	if b.Dx() != 640 || b.Dy() != 240 {
		t.Fatalf("blank bounds %v", b)
	}
}
