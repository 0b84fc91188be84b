package inferential

import (
	"math/rand"

	"statistician/domain/core"
	"statistician/normalize"
)

// Statistic is any scalar summary of a sample, e.g. the mean or median.
type Statistic func([]float64) float64

// Bootstrap estimates the sampling distribution of a statistic by resampling
// the normalized input with replacement numSamples times. Passing a seeded
// rand.Rand makes the estimate reproducible; a nil rng falls back to the
// shared global source.
func Bootstrap(sample normalize.Source, numSamples int, statistic Statistic, rng *rand.Rand) ([]float64, error) {
	if numSamples < 1 {
		return nil, core.NewInvalidArgumentError("bootstrap sample count", numSamples)
	}
	if statistic == nil {
		return nil, core.NewInvalidArgumentError("bootstrap statistic", nil)
	}
	data := normalize.Clean(sample)
	if len(data) == 0 {
		return nil, core.NewInsufficientDataError("bootstrap", 0)
	}

	intn := rand.Intn
	if rng != nil {
		intn = rng.Intn
	}

	out := make([]float64, numSamples)
	resample := make([]float64, len(data))
	for i := 0; i < numSamples; i++ {
		for j := range resample {
			resample[j] = data[intn(len(data))]
		}
		out[i] = statistic(resample)
	}
	return out, nil
}
