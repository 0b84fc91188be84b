package inferential

import (
	"fmt"
	"math"

	mstats "github.com/montanaflynn/stats"
	gstat "gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"

	"statistician/domain/core"
	"statistician/domain/stats"
	"statistician/normalize"
)

// variance ratio at or below which the rule of thumb calls variances equal
const ratioRuleThreshold = 4.0

// HomogeneityTest evaluates whether two groups have equal variances using
// four independent procedures: the variance-ratio rule of thumb, a one-way
// ANOVA F-test, Levene's test, and Bartlett's test. All four verdicts are
// always computed and reported in that order; there is no early exit and no
// aggregation across tests.
func HomogeneityTest(group1, group2 normalize.Source, alpha float64) (*stats.VerdictSet, error) {
	if err := checkAlpha(alpha); err != nil {
		return nil, err
	}
	g1 := normalize.Clean(group1)
	g2 := normalize.Clean(group2)
	if len(g1) < 2 || len(g2) < 2 {
		return nil, core.NewInsufficientDataError("homogeneity of variance test", min(len(g1), len(g2)))
	}

	var1 := gstat.Variance(g1, nil)
	var2 := gstat.Variance(g2, nil)
	varMax := math.Max(var1, var2)
	varMin := math.Min(var1, var2)
	ratio := varMax / varMin

	fP := oneWayFPValue(g1, g2)
	leveneP := levenePValue(g1, g2)
	bartlettP := bartlettPValue(g1, g2)

	return &stats.VerdictSet{
		Alpha: alpha,
		Verdicts: []stats.Verdict{
			stats.NewVerdict(stats.TestRuleOfThumb, ratio <= ratioRuleThreshold,
				fmt.Sprintf("%.2f / %.2f = %.2f", varMax, varMin, ratio)),
			stats.NewVerdict(stats.TestFTest, fP > alpha,
				fmt.Sprintf("p value of F-test = %.8f", fP)),
			stats.NewVerdict(stats.TestLevene, leveneP > alpha,
				fmt.Sprintf("p value of Levene's test = %.8f", leveneP)),
			stats.NewVerdict(stats.TestBartlett, bartlettP > alpha,
				fmt.Sprintf("p value of Bartlett's test = %.8f", bartlettP)),
		},
	}, nil
}

// oneWayFPValue computes the one-way ANOVA p-value for the two groups
func oneWayFPValue(groups ...[]float64) float64 {
	f, df1, df2 := oneWayF(groups)
	return upperTailF(f, df1, df2)
}

// levenePValue computes Levene's test p-value with the median as the group
// center (Brown-Forsythe variant). The test is a one-way ANOVA on the
// absolute deviations from each group's center.
func levenePValue(groups ...[]float64) float64 {
	deviations := make([][]float64, len(groups))
	for i, g := range groups {
		center, _ := mstats.Median(g)
		z := make([]float64, len(g))
		for j, x := range g {
			z[j] = math.Abs(x - center)
		}
		deviations[i] = z
	}
	f, df1, df2 := oneWayF(deviations)
	return upperTailF(f, df1, df2)
}

// bartlettPValue computes Bartlett's test p-value via its chi-square
// approximation with k-1 degrees of freedom.
func bartlettPValue(groups ...[]float64) float64 {
	k := len(groups)
	total := 0
	pooledSS := 0.0
	for _, g := range groups {
		total += len(g)
		pooledSS += float64(len(g)-1) * gstat.Variance(g, nil)
	}
	pooledVar := pooledSS / float64(total-k)

	numerator := float64(total-k) * math.Log(pooledVar)
	correctionSum := 0.0
	for _, g := range groups {
		numerator -= float64(len(g)-1) * math.Log(gstat.Variance(g, nil))
		correctionSum += 1 / float64(len(g)-1)
	}
	correction := 1 + (correctionSum-1/float64(total-k))/(3*float64(k-1))
	statistic := numerator / correction

	chi := distuv.ChiSquared{K: float64(k - 1)}
	return 1 - chi.CDF(statistic)
}

// oneWayF computes the one-way ANOVA F statistic and its degrees of freedom
func oneWayF(groups [][]float64) (f, df1, df2 float64) {
	k := len(groups)
	total := 0
	grandSum := 0.0
	for _, g := range groups {
		total += len(g)
		for _, x := range g {
			grandSum += x
		}
	}
	grandMean := grandSum / float64(total)

	ssBetween := 0.0
	ssWithin := 0.0
	for _, g := range groups {
		mean := gstat.Mean(g, nil)
		ssBetween += float64(len(g)) * (mean - grandMean) * (mean - grandMean)
		for _, x := range g {
			ssWithin += (x - mean) * (x - mean)
		}
	}

	df1 = float64(k - 1)
	df2 = float64(total - k)
	f = (ssBetween / df1) / (ssWithin / df2)
	return f, df1, df2
}

func upperTailF(f, df1, df2 float64) float64 {
	if math.IsNaN(f) {
		return math.NaN()
	}
	dist := distuv.F{D1: df1, D2: df2}
	return 1 - dist.CDF(f)
}
