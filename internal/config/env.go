package config

import (
	"os"
	"strconv"
)

// FromEnv overlays HARBOR_* environment variables onto cfg.
func FromEnv(cfg *Config) {
	if v := os.Getenv("HARBOR_MAXIMUM_BYTES"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			cfg.MaximumBytes = n
		}
	}
	if v := os.Getenv("HARBOR_PERIOD_MS"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			cfg.PeriodMs = n
		}
	}
	if v := os.Getenv("HARBOR_DATA_DIR"); v != "" {
		cfg.DataDir = v
	}
	if v := os.Getenv("HARBOR_API_BASE"); v != "" {
		cfg.APIBase = v
	}
	if v := os.Getenv("HARBOR_PROJECT"); v != "" {
		cfg.Project = v
	}
	if v := os.Getenv("HARBOR_TITLE"); v != "" {
		cfg.Title = v
	}
	if v := os.Getenv("HARBOR_FILTER"); v != "" {
		cfg.Filter = v
	}
	if v := os.Getenv("HARBOR_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("HARBOR_LOG_FORMAT"); v != "" {
		cfg.LogFormat = v
	}
}
