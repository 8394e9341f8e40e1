package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Strategy.RSIMax != 40 {
		t.Errorf("default rsi_max = %v, want 40", cfg.Strategy.RSIMax)
	}
	if cfg.Strategy.EMAPeriod != 50 || cfg.Strategy.SMAPeriod != 200 {
		t.Errorf("default periods = %d/%d, want 50/200", cfg.Strategy.EMAPeriod, cfg.Strategy.SMAPeriod)
	}
	if cfg.Strategy.VolumeWindow != 10 {
		t.Errorf("default volume_window = %d, want 10", cfg.Strategy.VolumeWindow)
	}
	if cfg.Strategy.IncludeLatestInAverage {
		t.Error("latest day must be excluded from the volume average by default")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestLoad_FileAndEnvOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	yaml := `
data_source:
  api_key: from-file
strategy:
  rsi_max: 42
tickers:
  symbols: [TSLA, AAPL]
`
	if err := os.WriteFile(path, []byte(yaml), 0644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("ALPHAVANTAGE_API_KEY", "from-env")
	t.Setenv("RSI_MAX", "60")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.DataSource.APIKey != "from-env" {
		t.Errorf("api key = %q, env must win over file", cfg.DataSource.APIKey)
	}
	if cfg.Strategy.RSIMax != 60 {
		t.Errorf("rsi_max = %v, env must win over file", cfg.Strategy.RSIMax)
	}

	tickers, err := cfg.LoadTickers()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tickers) != 2 || tickers[0] != "TSLA" {
		t.Errorf("tickers = %v, want [TSLA AAPL]", tickers)
	}
}

func TestLoadTickers_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tickers.txt")
	content := "# watchlist\nTSLA\n\n  AAPL  \nMSFT\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg := &Config{}
	cfg.Tickers.File = path
	tickers, err := cfg.LoadTickers()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"TSLA", "AAPL", "MSFT"}
	if len(tickers) != len(want) {
		t.Fatalf("tickers = %v, want %v", tickers, want)
	}
	for i := range want {
		if tickers[i] != want[i] {
			t.Errorf("tickers[%d] = %q, want %q", i, tickers[i], want[i])
		}
	}
}

func TestValidate_RejectsBadThresholds(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	cfg.Strategy.RSIMax = 150
	if err := cfg.Validate(); err == nil {
		t.Error("expected validation error for rsi_max > 100")
	}
	cfg.Strategy.RSIMax = 40
	cfg.Strategy.VolumeWindow = -1
	if err := cfg.Validate(); err == nil {
		t.Error("expected validation error for negative volume window")
	}
}
