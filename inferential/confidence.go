// Package inferential implements interval estimation, two-sample comparison,
// and homogeneity-of-variance testing over normalized samples. Every
// sample-accepting operation cleans its input through the normalize package
// before computing; all results are plain float64.
package inferential

import (
	"math"

	gstat "gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"

	"statistician/domain/core"
	"statistician/domain/stats"
	"statistician/normalize"
)

// MeanCI computes the symmetric two-sided confidence interval for the
// population mean with the population stddev unknown. The Student-t
// distribution with n-1 degrees of freedom is used for n <= 30, the standard
// normal above that.
func MeanCI(sample normalize.Source, confidence float64) (stats.Interval, error) {
	return meanCI(sample, confidence, nil)
}

// MeanCIKnownStd computes the mean confidence interval with a known
// population stddev. The standard normal distribution is used regardless of
// sample size, with scale popStd/sqrt(n).
func MeanCIKnownStd(sample normalize.Source, confidence, popStd float64) (stats.Interval, error) {
	return meanCI(sample, confidence, &popStd)
}

func meanCI(sample normalize.Source, confidence float64, popStd *float64) (stats.Interval, error) {
	if err := checkConfidence(confidence); err != nil {
		return stats.Interval{}, err
	}
	data := normalize.Clean(sample)
	n := len(data)
	if n == 0 {
		return stats.Interval{}, core.NewInsufficientDataError("mean confidence interval", n)
	}
	if popStd == nil && n < 2 {
		// standard error of the mean is undefined for a single observation
		return stats.Interval{}, core.NewInsufficientDataError("mean confidence interval", n)
	}

	mean := gstat.Mean(data, nil)
	var scale float64
	if popStd != nil {
		scale = *popStd / math.Sqrt(float64(n))
	} else {
		scale = gstat.StdDev(data, nil) / math.Sqrt(float64(n))
	}

	var half float64
	switch selectMeanDistribution(n, popStd != nil) {
	case DistStudentT:
		half = studentT(float64(n-1)).Quantile((1+confidence)/2) * scale
	case DistNormal:
		half = stdNormal().Quantile((1+confidence)/2) * scale
	}

	return stats.NewInterval(mean-half, mean+half, confidence, stats.ParameterMean), nil
}

// VarianceCI computes the confidence interval for the population variance via
// the chi-square distribution with n-1 degrees of freedom. The sample
// variance uses Bessel's correction.
func VarianceCI(sample normalize.Source, confidence float64) (stats.Interval, error) {
	if err := checkConfidence(confidence); err != nil {
		return stats.Interval{}, err
	}
	data := normalize.Clean(sample)
	n := len(data)
	if n < 2 {
		return stats.Interval{}, core.NewInsufficientDataError("variance confidence interval", n)
	}

	variance := gstat.Variance(data, nil)
	chi := distuv.ChiSquared{K: float64(n - 1)}
	lower := float64(n-1) * variance / chi.Quantile((1+confidence)/2)
	upper := float64(n-1) * variance / chi.Quantile((1-confidence)/2)

	return stats.NewInterval(lower, upper, confidence, stats.ParameterVariance), nil
}

// ProportionCI computes the Wald interval for a population proportion.
// The caller is responsible for p in [0, 1]; the bounds are not validated.
func ProportionCI(p float64, n int, confidence float64) (stats.Interval, error) {
	if err := checkConfidence(confidence); err != nil {
		return stats.Interval{}, err
	}
	if n < 1 {
		return stats.Interval{}, core.NewInsufficientDataError("proportion confidence interval", n)
	}

	se := math.Sqrt(p * (1 - p) / float64(n))
	z := stdNormal().Quantile((1 + confidence) / 2)

	return stats.NewInterval(p-z*se, p+z*se, confidence, stats.ParameterProportion), nil
}

// SampleSizeForMeanCI inverts the margin-of-error formula for a mean interval
// with known population stddev, rounding up to the next whole observation.
func SampleSizeForMeanCI(confidence, moe, popStd float64) (int, error) {
	if err := checkConfidence(confidence); err != nil {
		return 0, err
	}
	if moe <= 0 {
		return 0, core.NewInvalidArgumentError("margin of error", moe)
	}
	z := stdNormal().Quantile((1 + confidence) / 2)
	size := math.Pow(z*popStd/moe, 2)
	return int(math.Ceil(size)), nil
}

// SampleSizeForProportionCI inverts the margin-of-error formula for a
// proportion interval. p defaults to the conservative 0.5 when unknown.
func SampleSizeForProportionCI(moe, confidence, p float64) (int, error) {
	if err := checkConfidence(confidence); err != nil {
		return 0, err
	}
	if moe <= 0 {
		return 0, core.NewInvalidArgumentError("margin of error", moe)
	}
	z := stdNormal().Quantile((1 + confidence) / 2)
	size := z * z * p * (1 - p) / (moe * moe)
	return int(math.Ceil(size)), nil
}

func checkConfidence(confidence float64) error {
	if confidence <= 0 || confidence >= 1 {
		return core.NewInvalidArgumentError("confidence level", confidence)
	}
	return nil
}
