package ui

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp() *App {
	return NewApp(Config{})
}

func postJSON(t *testing.T, a *App, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	a.Router().ServeHTTP(rec, req)
	return rec
}

func decodeArtifact(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var artifact map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &artifact))
	return artifact
}

func TestHandleNormalize(t *testing.T) {
	rec := postJSON(t, newTestApp(), "/api/normalize", map[string]any{
		"data": []any{" $1,234.56 ", 2, "junk", nil, "3"},
	})
	require.Equal(t, http.StatusOK, rec.Code)

	artifact := decodeArtifact(t, rec)
	assert.Equal(t, "normalized_sample", artifact["kind"])
	assert.NotEmpty(t, artifact["id"])

	payload := artifact["payload"].(map[string]any)
	values := payload["values"].([]any)
	require.Len(t, values, 3)
	assert.InDelta(t, 1234.56, values[0].(float64), 1e-9)
	assert.InDelta(t, 2, values[1].(float64), 1e-9)
	assert.InDelta(t, 3, values[2].(float64), 1e-9)
}

func TestHandleDescriptive(t *testing.T) {
	rec := postJSON(t, newTestApp(), "/api/descriptive", map[string]any{
		"data": []any{1, 2, 3, 4, 5},
	})
	require.Equal(t, http.StatusOK, rec.Code)

	payload := decodeArtifact(t, rec)["payload"].(map[string]any)
	assert.InDelta(t, 3.0, payload["mean"].(float64), 1e-9)
	assert.InDelta(t, 3.0, payload["median"].(float64), 1e-9)
}

func TestHandleDescriptive_EmptySample(t *testing.T) {
	rec := postJSON(t, newTestApp(), "/api/descriptive", map[string]any{
		"data": []any{"junk"},
	})
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "INSUFFICIENT_DATA", body["code"])
}

func TestHandleOutliers(t *testing.T) {
	rec := postJSON(t, newTestApp(), "/api/outliers", map[string]any{
		"columns": []string{"price"},
		"rows":    [][]any{{1}, {2}, {3}, {4}, {100}},
		"column":  "price",
		"method":  "iqr",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	payload := decodeArtifact(t, rec)["payload"].(map[string]any)
	rows := payload["rows"].([]any)
	assert.Len(t, rows, 4)

	labels := payload["labels"].([]any)
	require.Len(t, labels, 4)
	// row 4 held the outlier, so its label is gone
	assert.InDelta(t, 3, labels[3].(float64), 1e-9)
}

func TestHandleOutliers_BadMethod(t *testing.T) {
	rec := postJSON(t, newTestApp(), "/api/outliers", map[string]any{
		"columns": []string{"a"},
		"rows":    [][]any{{1}},
		"column":  "a",
		"method":  "mad",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleMeanCI(t *testing.T) {
	rec := postJSON(t, newTestApp(), "/api/ci/mean", map[string]any{
		"data":       []any{1, 2, 3, 4, 5},
		"confidence": 0.95,
	})
	require.Equal(t, http.StatusOK, rec.Code)

	payload := decodeArtifact(t, rec)["payload"].(map[string]any)
	assert.InDelta(t, 1.036757, payload["lower"].(float64), 1e-5)
	assert.InDelta(t, 4.963243, payload["upper"].(float64), 1e-5)
	assert.Equal(t, "mean", payload["parameter"])
}

func TestHandleMeanCI_KnownStd(t *testing.T) {
	rec := postJSON(t, newTestApp(), "/api/ci/mean", map[string]any{
		"data":    []any{1, 2, 3, 4, 5},
		"pop_std": 2,
	})
	require.Equal(t, http.StatusOK, rec.Code)

	payload := decodeArtifact(t, rec)["payload"].(map[string]any)
	assert.InDelta(t, 1.246955, payload["lower"].(float64), 1e-4)
}

func TestHandleProportionCI(t *testing.T) {
	rec := postJSON(t, newTestApp(), "/api/ci/proportion", map[string]any{
		"p": 0.5,
		"n": 100,
	})
	require.Equal(t, http.StatusOK, rec.Code)

	payload := decodeArtifact(t, rec)["payload"].(map[string]any)
	assert.InDelta(t, 0.402002, payload["lower"].(float64), 1e-5)
	assert.InDelta(t, 0.597998, payload["upper"].(float64), 1e-5)
}

func TestHandleTTest(t *testing.T) {
	rec := postJSON(t, newTestApp(), "/api/ttest", map[string]any{
		"sample_1": []any{1, 2, 3, 4, 5},
		"sample_2": []any{2, 3, 4, 5, 6},
	})
	require.Equal(t, http.StatusOK, rec.Code)

	payload := decodeArtifact(t, rec)["payload"].(map[string]any)
	rows := payload["rows"].([]any)
	require.Len(t, rows, 11)

	first := rows[0].(map[string]any)
	assert.Equal(t, "Mean", first["statistic"])
	assert.InDelta(t, 3.0, first["sample_1"].(float64), 1e-9)
	assert.InDelta(t, 4.0, first["sample_2"].(float64), 1e-9)
}

func TestHandleTTest_Paired_LengthMismatch(t *testing.T) {
	rec := postJSON(t, newTestApp(), "/api/ttest", map[string]any{
		"sample_1": []any{1, 2, 3},
		"sample_2": []any{1, 2},
		"paired":   true,
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "DIMENSION_MISMATCH", body["code"])
}

func TestHandleHomogeneity(t *testing.T) {
	rec := postJSON(t, newTestApp(), "/api/homogeneity", map[string]any{
		"group_1": []any{1, 2, 3, 4, 5},
		"group_2": []any{2, 3, 4, 5, 6},
	})
	require.Equal(t, http.StatusOK, rec.Code)

	payload := decodeArtifact(t, rec)["payload"].(map[string]any)
	verdicts := payload["verdicts"].([]any)
	require.Len(t, verdicts, 4)

	first := verdicts[0].(map[string]any)
	assert.Equal(t, "Rule of thumb", first["test"])
	assert.Equal(t, "Variances are equal", first["result"])
}

func TestHandleCISweep(t *testing.T) {
	rec := postJSON(t, newTestApp(), "/api/sweep/ci", map[string]any{
		"columns": []string{"a", "b"},
		"rows":    [][]any{{1, 2}, {2, 3}, {3, 4}, {4, 5}, {5, 6}},
	})
	require.Equal(t, http.StatusOK, rec.Code)

	payload := decodeArtifact(t, rec)["payload"].(map[string]any)
	intervals := payload["intervals"].([]any)
	assert.Len(t, intervals, 2)
	assert.NotEmpty(t, payload["sweep_id"])
}

func TestMalformedJSON(t *testing.T) {
	a := newTestApp()
	req := httptest.NewRequest(http.MethodPost, "/api/ttest", bytes.NewReader([]byte("{not json")))
	rec := httptest.NewRecorder()
	a.Router().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
