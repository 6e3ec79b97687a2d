package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the top-level configuration loaded from file/env.
type Config struct {
	// MaximumBytes is the open segment's byte budget. Non-positive values
	// fall back to the harbor's default budget.
	MaximumBytes int64 `json:"maximumBytes" yaml:"maximumBytes"`
	// PeriodMs divides the stream into fixed-duration periods when positive;
	// otherwise no automatic division occurs.
	PeriodMs int64 `json:"periodMs" yaml:"periodMs"`
	// DataDir stages entries on disk when set; empty keeps the harbor
	// in memory.
	DataDir string `json:"dataDir" yaml:"dataDir"`
	// APIBase is the remote collector base URL for uploads.
	APIBase string `json:"apiBase" yaml:"apiBase"`
	Project string `json:"project" yaml:"project"`
	Title   string `json:"title" yaml:"title"`
	// Filter is an optional CEL expression selecting cared messages.
	Filter    string `json:"filter" yaml:"filter"`
	LogLevel  string `json:"logLevel" yaml:"logLevel"`
	LogFormat string `json:"logFormat" yaml:"logFormat"`
}

// Default returns built-in defaults.
func Default() Config {
	return Config{
		MaximumBytes: 10 << 20,
		Project:      "default",
		Title:        "session",
		LogLevel:     "info",
		LogFormat:    "text",
	}
}

// Period returns the division period as a duration; zero disables division.
func (c Config) Period() time.Duration {
	if c.PeriodMs <= 0 {
		return 0
	}
	return time.Duration(c.PeriodMs) * time.Millisecond
}

// Load reads configuration from a JSON or YAML file (by extension). If path
// is empty, returns defaults.
func Load(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	cfg := Default()
	switch filepath.Ext(path) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(b, &cfg); err != nil {
			return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
		}
	default:
		if err := json.Unmarshal(b, &cfg); err != nil {
			return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
		}
	}
	return cfg, nil
}
