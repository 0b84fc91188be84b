// Package descriptive implements mean, median, and outlier trimming over
// normalized samples and tabular columns.
package descriptive

import (
	"math"

	"github.com/montanaflynn/stats"

	"statistician/dataset"
	"statistician/domain/core"
	"statistician/normalize"
)

// OutlierMethod selects the outlier-trimming policy. The method resolves once
// at call entry; there is no string dispatch inside the filter.
type OutlierMethod int

const (
	// OutlierIQR keeps rows inside [Q1 - 1.5*IQR, Q3 + 1.5*IQR]
	OutlierIQR OutlierMethod = iota + 1
	// OutlierZScore keeps rows with |value - mean| / sample stddev <= 3
	OutlierZScore
)

// Mean computes the arithmetic mean of the normalized sample
func Mean(src normalize.Source) (float64, error) {
	data := normalize.Clean(src)
	if len(data) == 0 {
		return 0, core.NewInsufficientDataError("mean", 0)
	}
	m, _ := stats.Mean(data)
	return m, nil
}

// Median computes the median of the normalized sample
func Median(src normalize.Source) (float64, error) {
	data := normalize.Clean(src)
	if len(data) == 0 {
		return 0, core.NewInsufficientDataError("median", 0)
	}
	m, _ := stats.Median(data)
	return m, nil
}

// CutOutliers removes outlier rows from a table based on the named column.
// Row order and all other columns are preserved; only the filter column is
// evaluated.
func CutOutliers(t *dataset.Table, column string, method OutlierMethod) (*dataset.Table, error) {
	switch method {
	case OutlierIQR:
		return cutByIQR(t, column)
	case OutlierZScore:
		return cutByZScore(t, column)
	default:
		return nil, core.NewInvalidArgumentError("outlier method", method)
	}
}

func cutByIQR(t *dataset.Table, column string) (*dataset.Table, error) {
	q1, err := t.Quantile(column, 0.25)
	if err != nil {
		return nil, err
	}
	q3, err := t.Quantile(column, 0.75)
	if err != nil {
		return nil, err
	}
	iqr := q3 - q1
	lower := q1 - 1.5*iqr
	upper := q3 + 1.5*iqr
	return t.FilterRows(column, func(v float64) bool {
		return v >= lower && v <= upper
	})
}

func cutByZScore(t *dataset.Table, column string) (*dataset.Table, error) {
	values, err := t.NumericColumn(column)
	if err != nil {
		return nil, err
	}
	if len(values) < 2 {
		return nil, core.NewInsufficientDataError("z-score outlier cut", len(values))
	}
	mean, _ := stats.Mean(values)
	sd, _ := stats.StandardDeviationSample(values)
	return t.FilterRows(column, func(v float64) bool {
		// zero spread leaves the z-score undefined; no row can satisfy the bound
		if sd == 0 {
			return false
		}
		return math.Abs((v-mean)/sd) <= 3
	})
}
