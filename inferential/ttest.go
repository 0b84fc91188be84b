package inferential

import (
	"math"

	gstat "gonum.org/v1/gonum/stat"

	"statistician/domain/core"
	"statistician/domain/stats"
	"statistician/normalize"
)

// TTest performs an independent two-sample t-test against a hypothesized mean
// difference and returns the full comparison report.
//
// The equal-variance branch pools the two sample variances weighted by their
// degrees of freedom. The unequal-variance branch uses the per-sample
// variance terms but still reports df = n1+n2-2; the Welch-Satterthwaite
// correction is intentionally not applied. Consumers compare against tables
// produced with this simplification, so it is part of the contract.
func TTest(sample1, sample2 normalize.Source, alpha, expectedDiff float64, equalVar bool) (*stats.ComparisonReport, error) {
	if err := checkAlpha(alpha); err != nil {
		return nil, err
	}
	x1 := normalize.Clean(sample1)
	x2 := normalize.Clean(sample2)
	if len(x1) < 2 || len(x2) < 2 {
		return nil, core.NewInsufficientDataError("two-sample t-test", min(len(x1), len(x2)))
	}

	confidence := 1 - alpha
	n1 := len(x1)
	n2 := len(x2)
	mean1 := gstat.Mean(x1, nil)
	mean2 := gstat.Mean(x2, nil)
	var1 := gstat.Variance(x1, nil)
	var2 := gstat.Variance(x2, nil)
	df := n1 + n2 - 2

	var pooledVariance, denominator float64
	if equalVar {
		pooledVariance = (float64(n1-1)*var1 + float64(n2-1)*var2) / float64(df)
		denominator = math.Sqrt(pooledVariance * (1/float64(n1) + 1/float64(n2)))
	} else {
		pooledVariance = var1/float64(n1) + var2/float64(n2)
		denominator = math.Sqrt(pooledVariance)
	}
	tStatistic := (mean1 - mean2 - expectedDiff) / denominator

	tails := tailStats(tStatistic, float64(df), confidence)

	report := &stats.ComparisonReport{
		Test: "t-test statistics",
		Rows: []stats.ReportRow{
			{Statistic: stats.StatMean, Sample1: mean1, Sample2: ptr(mean2)},
			{Statistic: stats.StatVariance, Sample1: var1, Sample2: ptr(var2)},
			{Statistic: stats.StatObservations, Sample1: float64(n1), Sample2: ptr(float64(n2))},
			{Statistic: stats.StatPooledVariance, Sample1: pooledVariance},
			{Statistic: stats.StatHypothesizedDiff, Sample1: expectedDiff},
			{Statistic: stats.StatDegreesOfFreedom, Sample1: float64(df)},
			{Statistic: stats.StatTStatistic, Sample1: tStatistic},
			{Statistic: stats.StatPOneTail, Sample1: tails.pOneTail},
			{Statistic: stats.StatTCriticalOneTail, Sample1: tails.criticalOneTail},
			{Statistic: stats.StatPTwoTail, Sample1: tails.pTwoTail},
			{Statistic: stats.StatTCriticalTwoTail, Sample1: tails.criticalTwoTail},
		},
	}
	return report, nil
}

// PairedTTest performs a paired two-sample t-test: a one-sample t-test on the
// elementwise differences against the hypothesized difference, with the
// Pearson correlation of the raw samples reported as an auxiliary statistic.
func PairedTTest(sample1, sample2 normalize.Source, alpha, expectedDiff float64) (*stats.ComparisonReport, error) {
	if err := checkAlpha(alpha); err != nil {
		return nil, err
	}
	x1 := normalize.Clean(sample1)
	x2 := normalize.Clean(sample2)
	if len(x1) != len(x2) {
		return nil, core.NewDimensionMismatchError(len(x1), len(x2))
	}
	if len(x1) < 2 {
		return nil, core.NewInsufficientDataError("paired t-test", len(x1))
	}

	confidence := 1 - alpha
	n := len(x1)
	mean1 := gstat.Mean(x1, nil)
	mean2 := gstat.Mean(x2, nil)
	var1 := gstat.Variance(x1, nil)
	var2 := gstat.Variance(x2, nil)

	diffs := make([]float64, n)
	for i := range x1 {
		diffs[i] = x1[i] - x2[i]
	}
	diffMean := gstat.Mean(diffs, nil)
	diffVar := gstat.Variance(diffs, nil)
	df := n - 1

	tStatistic := (diffMean - expectedDiff) / math.Sqrt(diffVar/float64(n))
	tails := tailStats(tStatistic, float64(df), confidence)
	correlation := gstat.Correlation(x1, x2, nil)

	report := &stats.ComparisonReport{
		Test: "t-test statistics",
		Rows: []stats.ReportRow{
			{Statistic: stats.StatMean, Sample1: mean1, Sample2: ptr(mean2)},
			{Statistic: stats.StatVariance, Sample1: var1, Sample2: ptr(var2)},
			{Statistic: stats.StatObservations, Sample1: float64(n), Sample2: ptr(float64(n))},
			{Statistic: stats.StatPearsonCorrelation, Sample1: correlation},
			{Statistic: stats.StatHypothesizedDiff, Sample1: expectedDiff},
			{Statistic: stats.StatDegreesOfFreedom, Sample1: float64(df)},
			{Statistic: stats.StatTStatistic, Sample1: tStatistic},
			{Statistic: stats.StatPOneTail, Sample1: tails.pOneTail},
			{Statistic: stats.StatTCriticalOneTail, Sample1: tails.criticalOneTail},
			{Statistic: stats.StatPTwoTail, Sample1: tails.pTwoTail},
			{Statistic: stats.StatTCriticalTwoTail, Sample1: tails.criticalTwoTail},
		},
	}
	return report, nil
}

// tTails bundles the tail probabilities and critical values shared by both
// t-test variants.
type tTails struct {
	pOneTail        float64
	criticalOneTail float64
	pTwoTail        float64
	criticalTwoTail float64
}

func tailStats(tStatistic, df, confidence float64) tTails {
	dist := studentT(df)
	pOne := 1 - dist.CDF(math.Abs(tStatistic))
	return tTails{
		pOneTail:        pOne,
		criticalOneTail: dist.Quantile(confidence),
		pTwoTail:        2 * pOne,
		criticalTwoTail: dist.Quantile((1 + confidence) / 2),
	}
}

func checkAlpha(alpha float64) error {
	if alpha <= 0 || alpha >= 1 {
		return core.NewInvalidArgumentError("significance level", alpha)
	}
	return nil
}

func ptr(v float64) *float64 { return &v }
