package main

import (
	"bytes"
	"fmt"
	"image/png"
	"os"
	"path/filepath"

	"github.com/Stefano-t/simd-string-to-integer-parsing/src/benchtab"
	"github.com/Stefano-t/simd-string-to-integer-parsing/src/plotting"
)

// exportFileNames returns the PNG file names written by export mode, one per
// comparison, in figure order.
func exportFileNames(stat benchtab.Statistic) []string {
	return []string{
		fmt.Sprintf("benchmark_%s.png", stat),
		fmt.Sprintf("benchmark_delimeter_%s.png", stat),
	}
}

// runExportMode renders the comparison figures and writes them as PNGs under
// outDir. It runs headlessly without creating a UI window.
func runExportMode(tbl *benchtab.Table, comparisons []plotting.Comparison, stat benchtab.Statistic, outDir string, w, h int) error {
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("create out dir: %w", err)
	}
	names := exportFileNames(stat)
	for i, cmp := range comparisons {
		img, err := plotting.RenderFigure(tbl, cmp, w, h)
		if err != nil {
			return err
		}
		var buf bytes.Buffer
		if err := png.Encode(&buf, img); err != nil {
			return fmt.Errorf("png encode %s: %w", names[i], err)
		}
		outPath := filepath.Join(outDir, names[i])
		if err := os.WriteFile(outPath, buf.Bytes(), 0o644); err != nil {
			return fmt.Errorf("write %s: %w", outPath, err)
		}
		fmt.Printf("[benchplot] wrote %s\n", outPath)
	}
	return nil
}
