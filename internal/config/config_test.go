package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tickers.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoad_DefaultsApplied(t *testing.T) {
	path := writeConfig(t, "tickers:\n  - aapl\n  - MSFT\n")
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("validate: %v", err)
	}
	if len(cfg.Tickers) != 2 {
		t.Errorf("expected 2 tickers, got %d", len(cfg.Tickers))
	}
	if cfg.Period != "6mo" || cfg.Interval != "1d" {
		t.Errorf("defaults not applied: period=%q interval=%q", cfg.Period, cfg.Interval)
	}
}

func TestLoad_FullConfig(t *testing.T) {
	path := writeConfig(t, `
tickers: [AAPL]
period: 1y
interval: 1d
cache_path: /tmp/bars.db
schedule: "0 30 17 * * 1-5"
output_dir: /tmp/plots
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Period != "1y" {
		t.Errorf("period: got %q", cfg.Period)
	}
	if cfg.CachePath != "/tmp/bars.db" {
		t.Errorf("cache_path: got %q", cfg.CachePath)
	}
	if cfg.Schedule != "0 30 17 * * 1-5" {
		t.Errorf("schedule: got %q", cfg.Schedule)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatal("expected error for missing config file")
	}
}

func TestValidate_EmptyTickers(t *testing.T) {
	path := writeConfig(t, "period: 6mo\n")
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected validation error for empty ticker list")
	}
}

func TestValidate_BlankSymbol(t *testing.T) {
	path := writeConfig(t, "tickers:\n  - AAPL\n  - \"\"\n")
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected validation error for blank symbol")
	}
}
