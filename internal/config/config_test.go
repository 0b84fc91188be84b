package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, 0.95, cfg.Analysis.Confidence)
	assert.Equal(t, 0.05, cfg.Analysis.Alpha)
	assert.Equal(t, int64(8), cfg.Analysis.BatchLimit)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("DEFAULT_CONFIDENCE", "0.99")
	t.Setenv("DEFAULT_ALPHA", "0.01")
	t.Setenv("BATCH_LIMIT", "16")
	t.Setenv("DATA_FILE", "samples.csv")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, 0.99, cfg.Analysis.Confidence)
	assert.Equal(t, 0.01, cfg.Analysis.Alpha)
	assert.Equal(t, int64(16), cfg.Analysis.BatchLimit)
	assert.Equal(t, "samples.csv", cfg.Data.DataFile)
}

func TestLoad_InvalidConfidence(t *testing.T) {
	t.Setenv("DEFAULT_CONFIDENCE", "1.5")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DEFAULT_CONFIDENCE")
}

func TestLoad_InvalidBatchLimit(t *testing.T) {
	t.Setenv("BATCH_LIMIT", "0")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "BATCH_LIMIT")
}

func TestLoad_MalformedNumbersFallBack(t *testing.T) {
	t.Setenv("DEFAULT_CONFIDENCE", "not-a-number")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 0.95, cfg.Analysis.Confidence)
}
