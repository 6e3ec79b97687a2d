package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.MaximumBytes != 10<<20 {
		t.Fatalf("default budget")
	}
	if cfg.Period() != 0 {
		t.Fatalf("division should be off by default")
	}
	if cfg.Project != "default" {
		t.Fatalf("default project")
	}
}

func TestLoadJSON(t *testing.T) {
	file := filepath.Join(t.TempDir(), "harbor.json")
	data := []byte(`{"maximumBytes":2048,"periodMs":60000,"project":"shop","title":"checkout","apiBase":"https://collector.example.com"}`)
	if err := os.WriteFile(file, data, 0644); err != nil {
		t.Fatalf("write: %v", err)
	}
	cfg, err := Load(file)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.MaximumBytes != 2048 {
		t.Fatalf("expected 2048")
	}
	if cfg.Period() != time.Minute {
		t.Fatalf("expected 1m period, got %v", cfg.Period())
	}
	if cfg.Project != "shop" || cfg.Title != "checkout" {
		t.Fatalf("meta not loaded")
	}
}

func TestLoadYAML(t *testing.T) {
	file := filepath.Join(t.TempDir(), "harbor.yaml")
	data := []byte("maximumBytes: 4096\nperiodMs: 1000\nfilter: 'category == \"network\"'\n")
	if err := os.WriteFile(file, data, 0644); err != nil {
		t.Fatalf("write: %v", err)
	}
	cfg, err := Load(file)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.MaximumBytes != 4096 || cfg.PeriodMs != 1000 {
		t.Fatalf("yaml values not loaded: %+v", cfg)
	}
	if cfg.Filter == "" {
		t.Fatalf("filter not loaded")
	}
	// Unspecified fields keep their defaults.
	if cfg.Project != "default" {
		t.Fatalf("defaults should survive partial files")
	}
}

func TestLoadBadFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "harbor.json")
	if err := os.WriteFile(file, []byte("{"), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := Load(file); err == nil {
		t.Fatalf("expected parse error")
	}
	if _, err := Load(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Fatalf("expected read error")
	}
}

func TestFromEnv(t *testing.T) {
	cfg := Default()
	t.Setenv("HARBOR_MAXIMUM_BYTES", "512")
	t.Setenv("HARBOR_PERIOD_MS", "250")
	t.Setenv("HARBOR_PROJECT", "staging")
	t.Setenv("HARBOR_FILTER", `category != "console"`)
	FromEnv(&cfg)
	if cfg.MaximumBytes != 512 {
		t.Fatalf("env budget override")
	}
	if cfg.Period() != 250*time.Millisecond {
		t.Fatalf("env period override")
	}
	if cfg.Project != "staging" || cfg.Filter == "" {
		t.Fatalf("env overlay incomplete: %+v", cfg)
	}
}
