package ui

import (
	"encoding/json"
	"net/http"

	"statistician/dataset"
	"statistician/descriptive"
	"statistician/domain/core"
	"statistician/inferential"
	apperrors "statistician/internal/errors"
	"statistician/normalize"
)

// sampleRequest carries one heterogeneous sample plus optional parameters
type sampleRequest struct {
	Data       []any    `json:"data"`
	Confidence *float64 `json:"confidence,omitempty"`
	PopStd     *float64 `json:"pop_std,omitempty"`
}

// twoSampleRequest carries two samples plus test parameters
type twoSampleRequest struct {
	Sample1      []any    `json:"sample_1"`
	Sample2      []any    `json:"sample_2"`
	Alpha        *float64 `json:"alpha,omitempty"`
	ExpectedDiff float64  `json:"expected_diff,omitempty"`
	EqualVar     *bool    `json:"equal_var,omitempty"`
	Paired       bool     `json:"paired,omitempty"`
}

// tableRequest carries an inline table plus filter parameters
type tableRequest struct {
	Columns []string `json:"columns"`
	Rows    [][]any  `json:"rows"`
	Column  string   `json:"column"`
	Method  string   `json:"method"`
	Alpha   *float64 `json:"alpha,omitempty"`
	Select  []string `json:"select,omitempty"`
}

func (a *App) decode(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		a.writeError(w, apperrors.InvalidInput("malformed JSON request body"))
		return false
	}
	return true
}

func (a *App) handleNormalize(w http.ResponseWriter, r *http.Request) {
	var req sampleRequest
	if !a.decode(w, r, &req) {
		return
	}
	a.writeArtifact(w, "normalized_sample", map[string]any{
		"values": normalize.Clean(normalize.Tokens(req.Data)),
	})
}

func (a *App) handleDescriptive(w http.ResponseWriter, r *http.Request) {
	var req sampleRequest
	if !a.decode(w, r, &req) {
		return
	}
	src := normalize.Tokens(req.Data)
	mean, err := descriptive.Mean(src)
	if err != nil {
		a.writeError(w, err)
		return
	}
	median, err := descriptive.Median(src)
	if err != nil {
		a.writeError(w, err)
		return
	}
	a.writeArtifact(w, "descriptive_summary", map[string]float64{
		"mean":   mean,
		"median": median,
	})
}

func (a *App) handleOutliers(w http.ResponseWriter, r *http.Request) {
	var req tableRequest
	if !a.decode(w, r, &req) {
		return
	}
	method, err := parseOutlierMethod(req.Method)
	if err != nil {
		a.writeError(w, err)
		return
	}
	table, err := dataset.New(req.Columns, req.Rows)
	if err != nil {
		a.writeError(w, err)
		return
	}
	filtered, err := descriptive.CutOutliers(table, req.Column, method)
	if err != nil {
		a.writeError(w, err)
		return
	}

	rows := make([][]any, filtered.Len())
	for i := range rows {
		rows[i] = filtered.Row(i)
	}
	a.writeArtifact(w, "trimmed_table", map[string]any{
		"columns": filtered.Columns(),
		"rows":    rows,
		"labels":  filtered.Labels(),
	})
}

// parseOutlierMethod resolves the wire-level method string into the typed
// variant once, at the API boundary
func parseOutlierMethod(method string) (descriptive.OutlierMethod, error) {
	switch method {
	case "iqr", "q":
		return descriptive.OutlierIQR, nil
	case "z", "z-score":
		return descriptive.OutlierZScore, nil
	default:
		return 0, core.NewInvalidArgumentError("outlier method", method)
	}
}

func (a *App) handleMeanCI(w http.ResponseWriter, r *http.Request) {
	var req sampleRequest
	if !a.decode(w, r, &req) {
		return
	}
	confidence := a.defaultConfidence
	if req.Confidence != nil {
		confidence = *req.Confidence
	}
	src := normalize.Tokens(req.Data)

	var err error
	var interval any
	if req.PopStd != nil {
		interval, err = inferential.MeanCIKnownStd(src, confidence, *req.PopStd)
	} else {
		interval, err = inferential.MeanCI(src, confidence)
	}
	if err != nil {
		a.writeError(w, err)
		return
	}
	a.writeArtifact(w, "confidence_interval", interval)
}

func (a *App) handleVarianceCI(w http.ResponseWriter, r *http.Request) {
	var req sampleRequest
	if !a.decode(w, r, &req) {
		return
	}
	confidence := a.defaultConfidence
	if req.Confidence != nil {
		confidence = *req.Confidence
	}
	interval, err := inferential.VarianceCI(normalize.Tokens(req.Data), confidence)
	if err != nil {
		a.writeError(w, err)
		return
	}
	a.writeArtifact(w, "confidence_interval", interval)
}

func (a *App) handleProportionCI(w http.ResponseWriter, r *http.Request) {
	var req struct {
		P          float64  `json:"p"`
		N          int      `json:"n"`
		Confidence *float64 `json:"confidence,omitempty"`
	}
	if !a.decode(w, r, &req) {
		return
	}
	confidence := a.defaultConfidence
	if req.Confidence != nil {
		confidence = *req.Confidence
	}
	interval, err := inferential.ProportionCI(req.P, req.N, confidence)
	if err != nil {
		a.writeError(w, err)
		return
	}
	a.writeArtifact(w, "confidence_interval", interval)
}

func (a *App) handleTTest(w http.ResponseWriter, r *http.Request) {
	var req twoSampleRequest
	if !a.decode(w, r, &req) {
		return
	}
	alpha := a.defaultAlpha
	if req.Alpha != nil {
		alpha = *req.Alpha
	}
	equalVar := true
	if req.EqualVar != nil {
		equalVar = *req.EqualVar
	}
	s1 := normalize.Tokens(req.Sample1)
	s2 := normalize.Tokens(req.Sample2)

	var err error
	var report any
	if req.Paired {
		report, err = inferential.PairedTTest(s1, s2, alpha, req.ExpectedDiff)
	} else {
		report, err = inferential.TTest(s1, s2, alpha, req.ExpectedDiff, equalVar)
	}
	if err != nil {
		a.writeError(w, err)
		return
	}
	a.writeArtifact(w, "comparison_report", report)
}

func (a *App) handleHomogeneity(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Group1 []any    `json:"group_1"`
		Group2 []any    `json:"group_2"`
		Alpha  *float64 `json:"alpha,omitempty"`
	}
	if !a.decode(w, r, &req) {
		return
	}
	alpha := a.defaultAlpha
	if req.Alpha != nil {
		alpha = *req.Alpha
	}
	verdicts, err := inferential.HomogeneityTest(normalize.Tokens(req.Group1), normalize.Tokens(req.Group2), alpha)
	if err != nil {
		a.writeError(w, err)
		return
	}
	a.writeArtifact(w, "homogeneity_verdicts", verdicts)
}

func (a *App) handleCISweep(w http.ResponseWriter, r *http.Request) {
	var req tableRequest
	if !a.decode(w, r, &req) {
		return
	}
	confidence := a.defaultConfidence
	if req.Alpha != nil {
		confidence = 1 - *req.Alpha
	}
	table, err := dataset.New(req.Columns, req.Rows)
	if err != nil {
		a.writeError(w, err)
		return
	}
	result, err := a.batch.MeanCISweep(r.Context(), table, confidence)
	if err != nil {
		a.writeError(w, err)
		return
	}
	a.writeArtifact(w, "ci_sweep", result)
}

func (a *App) handleHomogeneitySweep(w http.ResponseWriter, r *http.Request) {
	var req tableRequest
	if !a.decode(w, r, &req) {
		return
	}
	alpha := a.defaultAlpha
	if req.Alpha != nil {
		alpha = *req.Alpha
	}
	table, err := dataset.New(req.Columns, req.Rows)
	if err != nil {
		a.writeError(w, err)
		return
	}
	result, err := a.batch.HomogeneitySweep(r.Context(), table, req.Select, alpha)
	if err != nil {
		a.writeError(w, err)
		return
	}
	a.writeArtifact(w, "homogeneity_sweep", result)
}
