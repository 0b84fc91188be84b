// Package statistician is a statistical-analysis toolkit: descriptive
// statistics and inferential procedures over numeric samples that may arrive
// dirty (currency strings, thousands separators, whitespace, missing
// markers).
//
// The root package is a thin convenience surface over the engine packages
// for callers that already hold clean []float64 samples. Heterogeneous input
// goes through the normalize package; tabular operations live in descriptive
// and dataset; interval estimation and hypothesis tests live in inferential.
package statistician

import (
	"statistician/descriptive"
	"statistician/domain/stats"
	"statistician/inferential"
	"statistician/normalize"
)

// Mean computes the arithmetic mean of a sample
func Mean(data []float64) (float64, error) {
	return descriptive.Mean(normalize.Values(data))
}

// Median computes the median of a sample
func Median(data []float64) (float64, error) {
	return descriptive.Median(normalize.Values(data))
}

// ConfidenceInterval computes the confidence interval for the population mean
func ConfidenceInterval(data []float64, confidence float64) (stats.Interval, error) {
	return inferential.MeanCI(normalize.Values(data), confidence)
}

// TTest performs an independent two-sample t-test with equal variances
// assumed and no hypothesized mean difference
func TTest(sample1, sample2 []float64, alpha float64) (*stats.ComparisonReport, error) {
	return inferential.TTest(normalize.Values(sample1), normalize.Values(sample2), alpha, 0, true)
}

// HomoVarianceTest runs the four homogeneity-of-variance tests
func HomoVarianceTest(group1, group2 []float64, alpha float64) (*stats.VerdictSet, error) {
	return inferential.HomogeneityTest(normalize.Values(group1), normalize.Values(group2), alpha)
}
