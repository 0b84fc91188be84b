// Package app wires the statistical engines into higher-level services:
// batch sweeps across table columns and column pairs. Each engine call stays
// a pure synchronous function; only the sweep fans out, bounded by a
// weighted semaphore.
package app

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/semaphore"

	"statistician/dataset"
	"statistician/domain/core"
	"statistician/domain/stats"
	"statistician/inferential"
	"statistician/normalize"
)

// BatchService runs engine computations across many samples concurrently
type BatchService struct {
	sem *semaphore.Weighted
}

// NewBatchService creates a batch service allowing at most limit concurrent
// evaluations
func NewBatchService(limit int64) *BatchService {
	if limit < 1 {
		limit = 1
	}
	return &BatchService{sem: semaphore.NewWeighted(limit)}
}

// ColumnInterval is one mean-CI sweep result
type ColumnInterval struct {
	Column   string         `json:"column"`
	Interval stats.Interval `json:"interval"`
	Err      string         `json:"error,omitempty"`
}

// PairVerdicts is one homogeneity sweep result for a column pair
type PairVerdicts struct {
	Column1  string            `json:"column_1"`
	Column2  string            `json:"column_2"`
	Verdicts *stats.VerdictSet `json:"verdicts,omitempty"`
	Err      string            `json:"error,omitempty"`
}

// SweepResult carries the outputs of one batch sweep with audit metadata
type SweepResult struct {
	SweepID   core.ID          `json:"sweep_id"`
	Intervals []ColumnInterval `json:"intervals,omitempty"`
	Pairs     []PairVerdicts   `json:"pairs,omitempty"`
	RuntimeMs int64            `json:"runtime_ms"`
	CreatedAt core.Timestamp   `json:"created_at"`
}

// MeanCISweep computes a mean confidence interval for every column of the
// table. Columns that fail (non-numeric, too small) carry their error instead
// of aborting the sweep.
func (s *BatchService) MeanCISweep(ctx context.Context, table *dataset.Table, confidence float64) (*SweepResult, error) {
	start := time.Now()
	columns := table.Columns()
	intervals := make([]ColumnInterval, len(columns))

	var wg sync.WaitGroup
	for i, col := range columns {
		if err := s.sem.Acquire(ctx, 1); err != nil {
			return nil, err
		}
		wg.Add(1)
		go func(i int, col string) {
			defer wg.Done()
			defer s.sem.Release(1)

			values, err := table.NumericColumn(col)
			if err != nil {
				intervals[i] = ColumnInterval{Column: col, Err: err.Error()}
				return
			}
			ci, err := inferential.MeanCI(normalize.Values(values), confidence)
			if err != nil {
				intervals[i] = ColumnInterval{Column: col, Err: err.Error()}
				return
			}
			intervals[i] = ColumnInterval{Column: col, Interval: ci}
		}(i, col)
	}
	wg.Wait()

	return &SweepResult{
		SweepID:   core.NewID(),
		Intervals: intervals,
		RuntimeMs: time.Since(start).Milliseconds(),
		CreatedAt: core.Now(),
	}, nil
}

// HomogeneitySweep runs the four homogeneity-of-variance tests for every
// unordered pair of the given columns.
func (s *BatchService) HomogeneitySweep(ctx context.Context, table *dataset.Table, columns []string, alpha float64) (*SweepResult, error) {
	start := time.Now()
	if columns == nil {
		columns = table.Columns()
	}

	type pair struct{ a, b string }
	var pairs []pair
	for i := 0; i < len(columns); i++ {
		for j := i + 1; j < len(columns); j++ {
			pairs = append(pairs, pair{columns[i], columns[j]})
		}
	}

	results := make([]PairVerdicts, len(pairs))
	var wg sync.WaitGroup
	for i, p := range pairs {
		if err := s.sem.Acquire(ctx, 1); err != nil {
			return nil, err
		}
		wg.Add(1)
		go func(i int, p pair) {
			defer wg.Done()
			defer s.sem.Release(1)

			results[i] = s.testPair(table, p.a, p.b, alpha)
		}(i, p)
	}
	wg.Wait()

	return &SweepResult{
		SweepID:   core.NewID(),
		Pairs:     results,
		RuntimeMs: time.Since(start).Milliseconds(),
		CreatedAt: core.Now(),
	}, nil
}

func (s *BatchService) testPair(table *dataset.Table, col1, col2 string, alpha float64) PairVerdicts {
	g1, err := table.NumericColumn(col1)
	if err != nil {
		return PairVerdicts{Column1: col1, Column2: col2, Err: err.Error()}
	}
	g2, err := table.NumericColumn(col2)
	if err != nil {
		return PairVerdicts{Column1: col1, Column2: col2, Err: err.Error()}
	}
	verdicts, err := inferential.HomogeneityTest(normalize.Values(g1), normalize.Values(g2), alpha)
	if err != nil {
		return PairVerdicts{Column1: col1, Column2: col2, Err: err.Error()}
	}
	return PairVerdicts{Column1: col1, Column2: col2, Verdicts: verdicts}
}
