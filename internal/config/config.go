package config

import (
	"os"
	"strconv"

	"statistician/internal/errors"
)

// Config represents the complete application configuration
type Config struct {
	Server   ServerConfig
	Data     DataConfig
	Analysis AnalysisConfig
}

// ServerConfig holds web server settings
type ServerConfig struct {
	Port string
}

// DataConfig holds data ingestion settings
type DataConfig struct {
	DataFile string // optional .xlsx or .csv feeding the demo endpoints
}

// AnalysisConfig holds statistical defaults
type AnalysisConfig struct {
	Confidence float64 // default confidence level for interval estimates
	Alpha      float64 // default significance level for tests
	BatchLimit int64   // max concurrent batch evaluations
}

// Load reads configuration from environment variables and validates it
func Load() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port: getEnv("PORT", "8080"),
		},
		Data: DataConfig{
			DataFile: os.Getenv("DATA_FILE"),
		},
		Analysis: AnalysisConfig{
			Confidence: getEnvFloat("DEFAULT_CONFIDENCE", 0.95),
			Alpha:      getEnvFloat("DEFAULT_ALPHA", 0.05),
			BatchLimit: int64(getEnvInt("BATCH_LIMIT", 8)),
		},
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.Analysis.Confidence <= 0 || c.Analysis.Confidence >= 1 {
		return errors.ConfigInvalid("DEFAULT_CONFIDENCE must be in (0, 1)")
	}
	if c.Analysis.Alpha <= 0 || c.Analysis.Alpha >= 1 {
		return errors.ConfigInvalid("DEFAULT_ALPHA must be in (0, 1)")
	}
	if c.Analysis.BatchLimit < 1 {
		return errors.ConfigInvalid("BATCH_LIMIT must be >= 1")
	}
	return nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return fallback
}
