// Package benchtab loads integer-parsing benchmark results from CSV into an
// in-memory table and derives the column names and throughput projections the
// plotter works with.
//
// The expected file layout is a header row whose first column is the numeric
// index ("Number length in bytes") followed by one column per
// implementation/statistic pair, e.g. std_min, parse_integer_simd_delimeter_mean.
// The table is immutable after load.
package benchtab

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Statistic is the aggregation applied across repeated benchmark runs.
type Statistic string

const (
	StatMin  Statistic = "min"
	StatMean Statistic = "mean"
	StatMax  Statistic = "max"
)

// ParseStatistic validates a user-supplied statistic name (case-insensitive).
func ParseStatistic(s string) (Statistic, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "min":
		return StatMin, nil
	case "mean":
		return StatMean, nil
	case "max":
		return StatMax, nil
	default:
		return "", fmt.Errorf("the provided statistic %q is not available: choose one between min, mean, max", s)
	}
}

// PlotColumns returns the five benchmark columns plotted for a statistic, in
// fixed order: baseline, no-simd, then the three delimiter variants.
// Note: "delimeter" is the spelling used by the benchmark harness that
// produces the CSV, so it is the spelling in the data.
func PlotColumns(s Statistic) []string {
	return []string{
		fmt.Sprintf("std_%s", s),
		fmt.Sprintf("parse_integer_no_simd_%s", s),
		fmt.Sprintf("std_delimeter_%s", s),
		fmt.Sprintf("parse_integer_no_simd_delimeter_%s", s),
		fmt.Sprintf("parse_integer_simd_delimeter_%s", s),
	}
}

// Table holds one benchmark CSV: a numeric index column plus named numeric
// columns, all of equal length. Read-only after LoadCSV.
type Table struct {
	IndexName string
	Index     []float64
	columns   map[string][]float64
	names     []string // header order, index excluded
}

// LoadCSV reads path into a Table using the first column as the row index.
func LoadCSV(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open csv: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv %s: %w", path, err)
	}
	if len(records) < 2 {
		return nil, fmt.Errorf("read csv %s: need a header row and at least one data row, got %d row(s)", path, len(records))
	}
	header := records[0]
	if len(header) < 2 {
		return nil, fmt.Errorf("read csv %s: need an index column and at least one data column", path)
	}

	t := &Table{
		IndexName: header[0],
		columns:   make(map[string][]float64, len(header)-1),
	}
	for _, name := range header[1:] {
		t.names = append(t.names, name)
		t.columns[name] = make([]float64, 0, len(records)-1)
	}

	for i, row := range records[1:] {
		// csv.Reader already enforces a uniform field count
		idx, err := strconv.ParseFloat(strings.TrimSpace(row[0]), 64)
		if err != nil {
			return nil, fmt.Errorf("read csv %s: row %d: bad index value %q", path, i+2, row[0])
		}
		t.Index = append(t.Index, idx)
		for j, cell := range row[1:] {
			v, err := strconv.ParseFloat(strings.TrimSpace(cell), 64)
			if err != nil {
				return nil, fmt.Errorf("read csv %s: row %d: column %q: bad value %q", path, i+2, header[j+1], cell)
			}
			name := header[j+1]
			t.columns[name] = append(t.columns[name], v)
		}
	}
	return t, nil
}

// Len returns the number of data rows.
func (t *Table) Len() int { return len(t.Index) }

// ColumnNames returns the data column names in header order.
func (t *Table) ColumnNames() []string {
	out := make([]string, len(t.names))
	copy(out, t.names)
	return out
}

// HasColumn reports whether the table has a data column with that name.
func (t *Table) HasColumn(name string) bool {
	_, ok := t.columns[name]
	return ok
}

// Column returns the raw values of a data column.
func (t *Table) Column(name string) ([]float64, error) {
	vals, ok := t.columns[name]
	if !ok {
		return nil, fmt.Errorf("column %q not in table (have: %s)", name, strings.Join(t.names, ", "))
	}
	return vals, nil
}

// Throughput returns index/value per row: bytes parsed per TSC cycle.
// Division follows IEEE semantics, so a zero measurement yields +Inf.
func (t *Table) Throughput(name string) ([]float64, error) {
	vals, err := t.Column(name)
	if err != nil {
		return nil, err
	}
	out := make([]float64, len(vals))
	for i, v := range vals {
		out[i] = t.Index[i] / v
	}
	return out, nil
}

// ReciprocalThroughput returns value/index per row: TSC cycles per byte.
// Pointwise it is the exact multiplicative inverse of Throughput.
func (t *Table) ReciprocalThroughput(name string) ([]float64, error) {
	vals, err := t.Column(name)
	if err != nil {
		return nil, err
	}
	out := make([]float64, len(vals))
	for i, v := range vals {
		out[i] = v / t.Index[i]
	}
	return out, nil
}
