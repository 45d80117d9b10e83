package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_DefaultsValidate(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("defaults must validate: %v", err)
	}
	if cfg.DataSource.Provider != "yahoo" {
		t.Errorf("default provider: got %q", cfg.DataSource.Provider)
	}
	if cfg.DataSource.LookbackDays != 40 {
		t.Errorf("default lookback: got %d", cfg.DataSource.LookbackDays)
	}
	if len(cfg.Symbols) != 4 || !cfg.HasSymbol("NG=F") {
		t.Errorf("default symbol set unexpected: %+v", cfg.Symbols)
	}
}

func TestLoad_FileAndEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := `
server:
  listen: ":9000"
data_source:
  lookback_days: 60
symbols:
  - code: "NG=F"
    label: "Natural Gas"
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Server.Listen != ":9000" {
		t.Errorf("listen: got %q", cfg.Server.Listen)
	}
	if cfg.DataSource.LookbackDays != 60 {
		t.Errorf("lookback: got %d", cfg.DataSource.LookbackDays)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("env override lost: got %q", cfg.Log.Level)
	}
	if cfg.Schedule.Symbol != "NG=F" {
		t.Errorf("schedule symbol must default to first symbol, got %q", cfg.Schedule.Symbol)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatal(err)
	}
}

func TestValidate_Rejects(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	cfg.DataSource.Provider = "rest"
	cfg.DataSource.BaseURL = ""
	if err := cfg.Validate(); err == nil {
		t.Error("rest provider without base_url must fail validation")
	}

	cfg, _ = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	cfg.DataSource.LookbackDays = 5
	if err := cfg.Validate(); err == nil {
		t.Error("lookback below the hexagram window must fail validation")
	}
}
