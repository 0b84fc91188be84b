// Package ui exposes the statistical engines over a small JSON HTTP API.
// The engines stay pure; this layer only decodes requests, resolves
// wire-level option strings into typed variants, and wraps results into
// identified analysis artifacts.
package ui

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"statistician/app"
	"statistician/domain/core"
	"statistician/internal"
	apperrors "statistician/internal/errors"
)

// App represents the API application
type App struct {
	router *chi.Mux
	batch  *app.BatchService
	log    *internal.Logger

	defaultConfidence float64
	defaultAlpha      float64
}

// Config holds API application configuration
type Config struct {
	Port              string
	DefaultConfidence float64
	DefaultAlpha      float64
	BatchLimit        int64
}

// NewApp creates a new API application
func NewApp(config Config) *App {
	if config.DefaultConfidence == 0 {
		config.DefaultConfidence = 0.95
	}
	if config.DefaultAlpha == 0 {
		config.DefaultAlpha = 0.05
	}
	if config.BatchLimit == 0 {
		config.BatchLimit = 8
	}

	a := &App{
		router:            chi.NewRouter(),
		batch:             app.NewBatchService(config.BatchLimit),
		log:               internal.DefaultLogger,
		defaultConfidence: config.DefaultConfidence,
		defaultAlpha:      config.DefaultAlpha,
	}

	a.setupMiddleware()
	a.setupRoutes()
	return a
}

// setupMiddleware configures HTTP middleware
func (a *App) setupMiddleware() {
	a.router.Use(middleware.RequestID)
	a.router.Use(middleware.Logger)
	a.router.Use(middleware.Recoverer)
}

// setupRoutes configures the application routes
func (a *App) setupRoutes() {
	a.router.Post("/api/normalize", a.handleNormalize)
	a.router.Post("/api/descriptive", a.handleDescriptive)
	a.router.Post("/api/outliers", a.handleOutliers)

	a.router.Post("/api/ci/mean", a.handleMeanCI)
	a.router.Post("/api/ci/variance", a.handleVarianceCI)
	a.router.Post("/api/ci/proportion", a.handleProportionCI)

	a.router.Post("/api/ttest", a.handleTTest)
	a.router.Post("/api/homogeneity", a.handleHomogeneity)

	a.router.Post("/api/sweep/ci", a.handleCISweep)
	a.router.Post("/api/sweep/homogeneity", a.handleHomogeneitySweep)
}

// Router returns the HTTP handler
func (a *App) Router() http.Handler {
	return a.router
}

// Run starts the HTTP server
func (a *App) Run(port string) error {
	a.log.Info("statistician API listening on :%s", port)
	return http.ListenAndServe(":"+port, a.router)
}

// analysisArtifact wraps every computed result with an ID and timestamp
type analysisArtifact struct {
	ID        core.AnalysisID `json:"id"`
	Kind      string          `json:"kind"`
	Payload   any             `json:"payload"`
	CreatedAt core.Timestamp  `json:"created_at"`
}

func (a *App) writeArtifact(w http.ResponseWriter, kind string, payload any) {
	a.writeJSON(w, http.StatusOK, analysisArtifact{
		ID:        core.NewAnalysisID(),
		Kind:      kind,
		Payload:   payload,
		CreatedAt: core.Now(),
	})
}

func (a *App) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		a.log.Error("failed to encode response: %v", err)
	}
}

// writeError maps the domain error taxonomy onto HTTP statuses
func (a *App) writeError(w http.ResponseWriter, err error) {
	code := apperrors.GetCode(err)
	status := http.StatusInternalServerError
	switch code {
	case apperrors.CodeInvalidInput, apperrors.CodeInvalidArgument, apperrors.CodeDimensionMismatch:
		status = http.StatusBadRequest
	case apperrors.CodeInsufficientData:
		status = http.StatusUnprocessableEntity
	}
	a.writeJSON(w, status, map[string]string{
		"code":  code,
		"error": err.Error(),
	})
}
