// Command demo walks through the toolkit on two synthetic normal samples:
// descriptive statistics, a mean confidence interval, a two-sample t-test,
// and the homogeneity-of-variance battery.
package main

import (
	"fmt"
	"log"
	"math/rand"

	"statistician/dataset"
	"statistician/descriptive"
	"statistician/inferential"
	"statistician/normalize"
)

func main() {
	rng := rand.New(rand.NewSource(42))

	data1 := normalSample(rng, 5, 2, 100)
	data2 := normalSample(rng, 6, 2, 100)
	src1 := normalize.Values(data1)
	src2 := normalize.Values(data2)

	mean1, err := descriptive.Mean(src1)
	if err != nil {
		log.Fatal(err)
	}
	median1, _ := descriptive.Median(src1)
	mean2, _ := descriptive.Mean(src2)
	median2, _ := descriptive.Median(src2)
	fmt.Printf("Data 1 - Mean: %.2f, Median: %.2f\n", mean1, median1)
	fmt.Printf("Data 2 - Mean: %.2f, Median: %.2f\n", mean2, median2)

	ci, err := inferential.MeanCI(src1, 0.95)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("\n%s (%.4f, %.4f)\n", ci.Label, ci.Lower, ci.Upper)

	report, err := inferential.TTest(src1, src2, 0.05, 0, true)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("\nT-test results:\n%s", report)

	verdicts, err := inferential.HomogeneityTest(src1, src2, 0.05)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("\nHomogeneity of Variance Test results:\n%s", verdicts)

	// Outlier trimming on a dirty tabular column
	table, err := dataset.New(
		[]string{"price"},
		[][]any{{"$1,200"}, {"1,350"}, {" 1,280 "}, {"1,310"}, {"940,000"}},
	)
	if err != nil {
		log.Fatal(err)
	}
	trimmed, err := descriptive.CutOutliers(table, "price", descriptive.OutlierIQR)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("\nOutlier cut kept %d of %d rows\n", trimmed.Len(), table.Len())
}

func normalSample(rng *rand.Rand, mean, stddev float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = mean + stddev*rng.NormFloat64()
	}
	return out
}
