package inferential

import (
	"gonum.org/v1/gonum/stat/distuv"
)

// ReferenceDistribution discriminates which reference distribution an
// interval or test statistic is measured against. The branch is resolved once
// at call entry, never re-derived downstream.
type ReferenceDistribution int

const (
	// DistStudentT is used when the population stddev is unknown and n <= 30
	DistStudentT ReferenceDistribution = iota + 1
	// DistNormal is used for large samples or a known population stddev
	DistNormal
)

// smallSampleCutoff is the sample size at or below which the Student-t
// distribution replaces the normal approximation.
const smallSampleCutoff = 30

// selectMeanDistribution resolves the reference distribution for a mean CI
func selectMeanDistribution(n int, popStdKnown bool) ReferenceDistribution {
	if !popStdKnown && n <= smallSampleCutoff {
		return DistStudentT
	}
	return DistNormal
}

func studentT(df float64) distuv.StudentsT {
	return distuv.StudentsT{Mu: 0, Sigma: 1, Nu: df}
}

func stdNormal() distuv.Normal {
	return distuv.Normal{Mu: 0, Sigma: 1}
}
