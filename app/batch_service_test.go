package app

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"statistician/dataset"
	"statistician/domain/stats"
)

func sweepTable(t *testing.T) *dataset.Table {
	t.Helper()
	table, err := dataset.New(
		[]string{"a", "b", "junk"},
		[][]any{
			{1.0, 2.0, "x"},
			{2.0, 3.0, "y"},
			{3.0, 4.0, "z"},
			{4.0, 5.0, "w"},
			{5.0, 6.0, "v"},
		},
	)
	require.NoError(t, err)
	return table
}

func TestMeanCISweep(t *testing.T) {
	svc := NewBatchService(2)
	result, err := svc.MeanCISweep(context.Background(), sweepTable(t), 0.95)
	require.NoError(t, err)

	require.Len(t, result.Intervals, 3)
	assert.NotEmpty(t, result.SweepID)

	byColumn := map[string]ColumnInterval{}
	for _, ci := range result.Intervals {
		byColumn[ci.Column] = ci
	}

	a := byColumn["a"]
	assert.Empty(t, a.Err)
	assert.InDelta(t, 1.036757, a.Interval.Lower, 1e-5)
	assert.InDelta(t, 4.963243, a.Interval.Upper, 1e-5)

	b := byColumn["b"]
	assert.Empty(t, b.Err)
	assert.True(t, b.Interval.Contains(4.0))

	// the all-text column fails per-column without aborting the sweep
	assert.NotEmpty(t, byColumn["junk"].Err)
}

func TestMeanCISweep_PreservesColumnOrder(t *testing.T) {
	svc := NewBatchService(1)
	result, err := svc.MeanCISweep(context.Background(), sweepTable(t), 0.95)
	require.NoError(t, err)

	require.Len(t, result.Intervals, 3)
	assert.Equal(t, "a", result.Intervals[0].Column)
	assert.Equal(t, "b", result.Intervals[1].Column)
	assert.Equal(t, "junk", result.Intervals[2].Column)
}

func TestHomogeneitySweep_AllPairs(t *testing.T) {
	svc := NewBatchService(4)
	result, err := svc.HomogeneitySweep(context.Background(), sweepTable(t), []string{"a", "b"}, 0.05)
	require.NoError(t, err)

	require.Len(t, result.Pairs, 1)
	pair := result.Pairs[0]
	assert.Equal(t, "a", pair.Column1)
	assert.Equal(t, "b", pair.Column2)
	require.NotNil(t, pair.Verdicts)
	require.Len(t, pair.Verdicts.Verdicts, 4)

	rule, ok := pair.Verdicts.Lookup(stats.TestRuleOfThumb)
	require.True(t, ok)
	assert.True(t, rule.EqualVariance)
}

func TestHomogeneitySweep_DefaultsToAllColumns(t *testing.T) {
	svc := NewBatchService(4)
	result, err := svc.HomogeneitySweep(context.Background(), sweepTable(t), nil, 0.05)
	require.NoError(t, err)

	// three columns yield three unordered pairs
	require.Len(t, result.Pairs, 3)

	// pairs involving the text column carry errors, the numeric pair succeeds
	var failed, succeeded int
	for _, p := range result.Pairs {
		if p.Err != "" {
			failed++
		} else {
			succeeded++
		}
	}
	assert.Equal(t, 2, failed)
	assert.Equal(t, 1, succeeded)
}

func TestSweep_CanceledContext(t *testing.T) {
	svc := NewBatchService(1)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.MeanCISweep(ctx, sweepTable(t), 0.95)
	assert.Error(t, err)
}
