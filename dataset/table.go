// Package dataset provides the tabular structure consumed by the descriptive
// engine: named columns, indexed row labels, quantile computation, and
// order-preserving row filtering.
package dataset

import (
	"math"
	"sort"

	"statistician/domain/core"
	"statistician/normalize"
)

// Table holds row-major tabular data with ordered, named columns. Row labels
// survive filtering so downstream consumers can trace rows back to their
// original position.
type Table struct {
	columns []string
	rows    [][]any
	labels  []int
}

// New creates a table from column names and row-major records. Every row must
// match the column count.
func New(columns []string, rows [][]any) (*Table, error) {
	for _, row := range rows {
		if len(row) != len(columns) {
			return nil, core.NewInvalidInputError("row width does not match column count")
		}
	}
	labels := make([]int, len(rows))
	for i := range labels {
		labels[i] = i
	}
	return &Table{columns: columns, rows: rows, labels: labels}, nil
}

// Columns returns the column names in order
func (t *Table) Columns() []string {
	out := make([]string, len(t.columns))
	copy(out, t.columns)
	return out
}

// Len returns the row count
func (t *Table) Len() int { return len(t.rows) }

// Labels returns the row labels in order
func (t *Table) Labels() []int {
	out := make([]int, len(t.labels))
	copy(out, t.labels)
	return out
}

// Row returns the cells of row i
func (t *Table) Row(i int) []any {
	out := make([]any, len(t.rows[i]))
	copy(out, t.rows[i])
	return out
}

func (t *Table) columnIndex(name string) (int, error) {
	for i, c := range t.columns {
		if c == name {
			return i, nil
		}
	}
	return 0, core.NewInvalidInputError("unknown column " + name)
}

// Column returns the raw cells of a named column
func (t *Table) Column(name string) ([]any, error) {
	idx, err := t.columnIndex(name)
	if err != nil {
		return nil, err
	}
	out := make([]any, len(t.rows))
	for i, row := range t.rows {
		out[i] = row[idx]
	}
	return out, nil
}

// NumericColumn returns a column normalized to clean float64 values.
// Unparseable cells are dropped, so the result can be shorter than Len.
func (t *Table) NumericColumn(name string) ([]float64, error) {
	cells, err := t.Column(name)
	if err != nil {
		return nil, err
	}
	return normalize.Clean(normalize.Tokens(cells)), nil
}

// Quantile computes the p-th quantile of a numeric column using linear
// interpolation at rank (n-1)*p. p must be in [0, 1].
func (t *Table) Quantile(name string, p float64) (float64, error) {
	if p < 0 || p > 1 {
		return 0, core.NewInvalidArgumentError("quantile", p)
	}
	values, err := t.NumericColumn(name)
	if err != nil {
		return 0, err
	}
	if len(values) == 0 {
		return 0, core.NewInsufficientDataError("quantile", 0)
	}
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	idx := p * float64(len(sorted)-1)
	lower := int(math.Floor(idx))
	upper := int(math.Ceil(idx))
	if lower == upper || upper >= len(sorted) {
		return sorted[lower], nil
	}
	frac := idx - float64(lower)
	return sorted[lower]*(1-frac) + sorted[upper]*frac, nil
}

// FilterRows keeps the rows whose value in the named column satisfies keep.
// Row order, row labels, and all other columns are preserved. Rows whose
// filter cell does not normalize to a number are dropped.
func (t *Table) FilterRows(name string, keep func(float64) bool) (*Table, error) {
	idx, err := t.columnIndex(name)
	if err != nil {
		return nil, err
	}
	filtered := &Table{columns: t.Columns()}
	for i, row := range t.rows {
		cleaned := normalize.Clean(normalize.Tokens{row[idx]})
		if len(cleaned) == 0 {
			continue
		}
		if keep(cleaned[0]) {
			filtered.rows = append(filtered.rows, t.Row(i))
			filtered.labels = append(filtered.labels, t.labels[i])
		}
	}
	return filtered, nil
}
