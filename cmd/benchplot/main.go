// benchplot renders comparison charts (latency, throughput, reciprocal
// throughput) from a CSV of integer-parsing benchmark measurements.
//
// Two figures per run: the baseline vs. no-simd comparison over plain
// integers, and the three-way baseline/no-simd/simd comparison over
// delimiter-separated integers. Figures open in an interactive window by
// default; -export writes them as PNG files instead.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	fyne "fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"

	"github.com/Stefano-t/simd-string-to-integer-parsing/src/benchtab"
	"github.com/Stefano-t/simd-string-to-integer-parsing/src/plotting"
)

const usageText = `USAGE: benchplot [flags] CSV [STAT]
Generate benchmark plots from the given csv file
   - CSV    path to the csv to plot
   - STAT   one of min, mean, max (default to min)

Flags:
   -export DIR   write the figures as PNG files under DIR instead of opening a window
   -width N      figure width in pixels (default 1280)
`

func printUsage() {
	fmt.Fprint(os.Stderr, usageText)
}

// resolveArgs maps the positional arguments to (csv path, statistic).
// The CSV file itself is not touched here.
func resolveArgs(args []string) (string, benchtab.Statistic, error) {
	if len(args) < 1 {
		return "", "", fmt.Errorf("no input file provided")
	}
	stat := benchtab.StatMin
	if len(args) >= 2 {
		s, err := benchtab.ParseStatistic(args[1])
		if err != nil {
			return "", "", err
		}
		stat = s
	}
	return args[0], stat, nil
}

// buildComparisons returns the two figures rendered per run, built from the
// five plot columns for the statistic: [0:2] is the plain two-way comparison,
// [2:5] the delimiter three-way one.
func buildComparisons(stat benchtab.Statistic) []plotting.Comparison {
	cols := benchtab.PlotColumns(stat)
	naive := fmt.Sprintf("naive method (%s)", stat)
	noSimd := fmt.Sprintf("no simd library parsing (%s)", stat)
	simd := fmt.Sprintf("simd library parsing (%s)", stat)
	return []plotting.Comparison{
		{Columns: cols[0:2], Labels: []string{naive, noSimd}},
		{Columns: cols[2:5], Labels: []string{naive, noSimd, simd}},
	}
}

// figureSize clamps the requested figure width and derives a height, keeping
// the three side-by-side views readable.
func figureSize(width int) (int, int) {
	w := width
	if w < 900 {
		w = 900
	}
	h := int(float32(w) * 0.3)
	if h < 280 {
		h = 280
	}
	if h > 520 {
		h = 520
	}
	return w, h
}

// missingColumns lists the comparison columns absent from the table.
func missingColumns(tbl *benchtab.Table, comparisons []plotting.Comparison) []string {
	var missing []string
	for _, cmp := range comparisons {
		for _, col := range cmp.Columns {
			if !tbl.HasColumn(col) {
				missing = append(missing, col)
			}
		}
	}
	return missing
}

func main() {
	exportDir := flag.String("export", "", "Write figures as PNG files under this directory instead of opening a window")
	width := flag.Int("width", 1280, "Figure width in pixels")
	flag.Usage = printUsage
	flag.Parse()

	csvPath, stat, err := resolveArgs(flag.Args())
	if err != nil {
		printUsage()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	tbl, err := benchtab.LoadCSV(csvPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "[benchplot] %v\n", err)
		os.Exit(1)
	}

	comparisons := buildComparisons(stat)
	if missing := missingColumns(tbl, comparisons); len(missing) > 0 {
		fmt.Fprintf(os.Stderr, "[benchplot] %s: missing expected column(s): %v\n", csvPath, missing)
		os.Exit(1)
	}

	w, h := figureSize(*width)
	if *exportDir != "" {
		if err := runExportMode(tbl, comparisons, stat, *exportDir, w, h); err != nil {
			fmt.Fprintf(os.Stderr, "[benchplot] export: %v\n", err)
			os.Exit(1)
		}
		return
	}

	runViewer(tbl, comparisons, csvPath, stat, w, h)
}

// runViewer shows both figures in a tabbed window and blocks until it closes.
func runViewer(tbl *benchtab.Table, comparisons []plotting.Comparison, csvPath string, stat benchtab.Statistic, w, h int) {
	a := app.NewWithID("com.simdparsing.benchplot")
	win := a.NewWindow(fmt.Sprintf("Benchmark Plots – %s (%s)", filepath.Base(csvPath), stat))

	titles := []string{"Plain integers", "Delimited integers"}
	tabs := container.NewAppTabs()
	for i, cmp := range comparisons {
		img, err := plotting.RenderFigure(tbl, cmp, w, h)
		if err != nil {
			fmt.Printf("[benchplot] figure %d render error: %v; showing blank fallback\n", i+1, err)
			img = plotting.Blank(w, h)
		}
		ci := canvas.NewImageFromImage(img)
		ci.FillMode = canvas.ImageFillContain
		ci.SetMinSize(fyne.NewSize(float32(w), float32(h)))
		tabs.Append(container.NewTabItem(titles[i], container.NewScroll(ci)))
	}

	win.SetContent(tabs)
	win.Resize(fyne.NewSize(float32(w)+40, float32(h)+90))
	win.ShowAndRun()
}
