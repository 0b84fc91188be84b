package stats

import (
	"fmt"
	"strings"
)

// ============================================================================
// STABLE PRIMITIVES (Canonical, never change)
// ============================================================================

// Parameter names the population quantity an interval estimates
type Parameter string

const (
	ParameterMean       Parameter = "mean"
	ParameterVariance   Parameter = "variance"
	ParameterProportion Parameter = "proportion"
)

// Interval is an interval estimate for a population parameter.
// INVARIANTS:
// - Lower <= Upper
// - Confidence in (0, 1)
// - computed once per call, immutable, never cached
type Interval struct {
	Lower      float64   `json:"lower"`
	Upper      float64   `json:"upper"`
	Confidence float64   `json:"confidence"`
	Parameter  Parameter `json:"parameter"`
	Label      string    `json:"label"`
}

// NewInterval builds an interval estimate with its human-readable label
func NewInterval(lower, upper, confidence float64, param Parameter) Interval {
	return Interval{
		Lower:      lower,
		Upper:      upper,
		Confidence: confidence,
		Parameter:  param,
		Label:      fmt.Sprintf("%g%% CI for population %s", confidence*100, param),
	}
}

// Width returns the interval width
func (i Interval) Width() float64 {
	return i.Upper - i.Lower
}

// Contains reports whether v lies inside the interval
func (i Interval) Contains(v float64) bool {
	return v >= i.Lower && v <= i.Upper
}

// ============================================================================
// COMPARISON REPORT
// ============================================================================

// Fixed statistic row names. Ordering and spelling are part of the report
// contract and must stay exhaustive.
const (
	StatMean               = "Mean"
	StatVariance           = "Variance"
	StatObservations       = "Observations"
	StatPooledVariance     = "Pooled Variance"
	StatPearsonCorrelation = "Pearson Correlation Coefficient"
	StatHypothesizedDiff   = "Hypothesized Mean Difference"
	StatDegreesOfFreedom   = "df"
	StatTStatistic         = "t-statistic"
	StatPOneTail           = "P(T<=t) one-tail"
	StatTCriticalOneTail   = "t critical one-tail"
	StatPTwoTail           = "P(T<=t) two-tail"
	StatTCriticalTwoTail   = "t critical two-tail"
)

// ReportRow is one named statistic of a two-sample comparison. Sample2 is nil
// for shared/derived statistics that are attached only under sample 1; the nil
// is an explicit empty marker, rows are never omitted.
type ReportRow struct {
	Statistic string   `json:"statistic"`
	Sample1   float64  `json:"sample_1"`
	Sample2   *float64 `json:"sample_2"`
}

// ComparisonReport is the labeled statistic table produced by the two-sample
// comparison engine, indexed by statistic name with a fixed row order.
type ComparisonReport struct {
	Test string      `json:"test"`
	Rows []ReportRow `json:"rows"`
}

// Lookup returns the row for a statistic name
func (r *ComparisonReport) Lookup(statistic string) (ReportRow, bool) {
	for _, row := range r.Rows {
		if row.Statistic == statistic {
			return row, true
		}
	}
	return ReportRow{}, false
}

// Statistics returns the row names in report order
func (r *ComparisonReport) Statistics() []string {
	names := make([]string, len(r.Rows))
	for i, row := range r.Rows {
		names[i] = row.Statistic
	}
	return names
}

// String renders the report as an aligned two-column table
func (r *ComparisonReport) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%-34s %14s %14s\n", r.Test, "sample_1", "sample_2")
	for _, row := range r.Rows {
		s2 := ""
		if row.Sample2 != nil {
			s2 = fmt.Sprintf("%.6f", *row.Sample2)
		}
		fmt.Fprintf(&b, "%-34s %14.6f %14s\n", row.Statistic, row.Sample1, s2)
	}
	return b.String()
}

// ============================================================================
// HOMOGENEITY VERDICTS
// ============================================================================

// Fixed homogeneity test names, in verdict order.
const (
	TestRuleOfThumb = "Rule of thumb"
	TestFTest       = "F-test"
	TestLevene      = "Levene's test"
	TestBartlett    = "Bartlett's test"
)

// Verdict result strings shared by all four tests.
const (
	VerdictEqual    = "Variances are equal"
	VerdictNotEqual = "Variances are not equal"
)

// Verdict is one homogeneity-of-variance test outcome with its numeric
// justification.
type Verdict struct {
	Test          string `json:"test"`
	EqualVariance bool   `json:"equal_variance"`
	Result        string `json:"result"`
	Reasoning     string `json:"reasoning"`
}

// NewVerdict derives the result string from the classification
func NewVerdict(test string, equal bool, reasoning string) Verdict {
	result := VerdictNotEqual
	if equal {
		result = VerdictEqual
	}
	return Verdict{Test: test, EqualVariance: equal, Result: result, Reasoning: reasoning}
}

// VerdictSet aggregates the four homogeneity verdicts. Order is fixed:
// ratio rule, F-test, Levene, Bartlett. All four are always present
// regardless of agreement.
type VerdictSet struct {
	Alpha    float64   `json:"alpha"`
	Verdicts []Verdict `json:"verdicts"`
}

// Lookup returns the verdict for a test name
func (s *VerdictSet) Lookup(test string) (Verdict, bool) {
	for _, v := range s.Verdicts {
		if v.Test == test {
			return v, true
		}
	}
	return Verdict{}, false
}

// String renders the verdict set as an aligned table
func (s *VerdictSet) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%-16s %-26s %s\n", "Test", "Result", "Reasoning")
	for _, v := range s.Verdicts {
		fmt.Fprintf(&b, "%-16s %-26s %s\n", v.Test, v.Result, v.Reasoning)
	}
	return b.String()
}
