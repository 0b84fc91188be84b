package descriptive

import (
	"math"
	"testing"

	"statistician/dataset"
	"statistician/domain/core"
	"statistician/normalize"
)

func TestMean(t *testing.T) {
	got, err := Mean(normalize.Values{1, 2, 3, 4, 5})
	if err != nil {
		t.Fatalf("Mean: %v", err)
	}
	if got != 3.0 {
		t.Errorf("Mean = %v, want 3.0", got)
	}
}

func TestMedian(t *testing.T) {
	got, err := Median(normalize.Values{1, 2, 3, 4, 5})
	if err != nil {
		t.Fatalf("Median: %v", err)
	}
	if got != 3.0 {
		t.Errorf("Median = %v, want 3.0", got)
	}
}

func TestMean_DirtyInput(t *testing.T) {
	got, err := Mean(normalize.Tokens{"$1", " 2 ", "junk", "3"})
	if err != nil {
		t.Fatalf("Mean: %v", err)
	}
	if got != 2.0 {
		t.Errorf("Mean = %v, want 2.0", got)
	}
}

func TestMean_EmptyInput(t *testing.T) {
	if _, err := Mean(normalize.Tokens{nil, "junk"}); !core.IsInsufficientData(err) {
		t.Errorf("expected ErrInsufficientData, got %v", err)
	}
}

func TestMedian_EmptyInput(t *testing.T) {
	if _, err := Median(normalize.Tokens{}); !core.IsInsufficientData(err) {
		t.Errorf("expected ErrInsufficientData, got %v", err)
	}
}

func singleColumn(t *testing.T, values []float64) *dataset.Table {
	t.Helper()
	rows := make([][]any, len(values))
	for i, v := range values {
		rows[i] = []any{v}
	}
	table, err := dataset.New([]string{"A"}, rows)
	if err != nil {
		t.Fatalf("dataset.New: %v", err)
	}
	return table
}

func TestCutOutliers_IQR(t *testing.T) {
	table := singleColumn(t, []float64{1, 2, 3, 4, 100})

	trimmed, err := CutOutliers(table, "A", OutlierIQR)
	if err != nil {
		t.Fatalf("CutOutliers: %v", err)
	}
	// Q1=2, Q3=4, IQR=2 -> bounds [-1, 7]: only 100 falls outside
	if trimmed.Len() != 4 {
		t.Fatalf("expected 4 rows, got %d", trimmed.Len())
	}
	for i := 0; i < trimmed.Len(); i++ {
		if v := trimmed.Row(i)[0].(float64); v == 100 {
			t.Errorf("outlier 100 survived the cut")
		}
	}
}

func TestCutOutliers_ZScore(t *testing.T) {
	// 1..19 plus one extreme value: only the extreme exceeds |z| = 3
	values := make([]float64, 0, 20)
	for i := 1; i <= 19; i++ {
		values = append(values, float64(i))
	}
	values = append(values, 1000)
	table := singleColumn(t, values)

	trimmed, err := CutOutliers(table, "A", OutlierZScore)
	if err != nil {
		t.Fatalf("CutOutliers: %v", err)
	}
	if trimmed.Len() != 19 {
		t.Fatalf("expected 19 rows, got %d", trimmed.Len())
	}
	for i := 0; i < trimmed.Len(); i++ {
		if v := trimmed.Row(i)[0].(float64); v == 1000 {
			t.Errorf("outlier 1000 survived the cut")
		}
	}
}

func TestCutOutliers_ZScore_KeepsModerateValues(t *testing.T) {
	// a single moderate outlier in a small sample cannot reach |z| > 3
	table := singleColumn(t, []float64{1, 2, 3, 4, 100})
	trimmed, err := CutOutliers(table, "A", OutlierZScore)
	if err != nil {
		t.Fatalf("CutOutliers: %v", err)
	}
	if trimmed.Len() != 5 {
		t.Errorf("expected all 5 rows kept, got %d", trimmed.Len())
	}
}

func TestCutOutliers_RowOrderPreserved(t *testing.T) {
	table := singleColumn(t, []float64{3, 100, 1, 2, 4})
	trimmed, err := CutOutliers(table, "A", OutlierIQR)
	if err != nil {
		t.Fatalf("CutOutliers: %v", err)
	}
	want := []float64{3, 1, 2, 4}
	if trimmed.Len() != len(want) {
		t.Fatalf("expected %d rows, got %d", len(want), trimmed.Len())
	}
	for i, w := range want {
		if v := trimmed.Row(i)[0].(float64); math.Abs(v-w) > 1e-12 {
			t.Errorf("row %d = %v, want %v", i, v, w)
		}
	}
}

func TestCutOutliers_UnknownMethod(t *testing.T) {
	table := singleColumn(t, []float64{1, 2, 3})
	if _, err := CutOutliers(table, "A", OutlierMethod(99)); !core.IsInvalidArgument(err) {
		t.Errorf("expected ErrInvalidArgument, got %v", err)
	}
}

func TestCutOutliers_UnknownColumn(t *testing.T) {
	table := singleColumn(t, []float64{1, 2, 3})
	if _, err := CutOutliers(table, "B", OutlierIQR); !core.IsInvalidInput(err) {
		t.Errorf("expected ErrInvalidInput, got %v", err)
	}
}
