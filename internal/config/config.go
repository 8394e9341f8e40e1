package config

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds all application configuration.
type Config struct {
	DataSource struct {
		BaseURL  string `yaml:"base_url"`
		APIKey   string `yaml:"api_key"`
		Interval string `yaml:"interval"`
	} `yaml:"data_source"`
	Strategy struct {
		RSIPeriod              int     `yaml:"rsi_period"`
		RSIMax                 float64 `yaml:"rsi_max"`
		EMAPeriod              int     `yaml:"ema_period"`
		SMAPeriod              int     `yaml:"sma_period"`
		VolumeWindow           int     `yaml:"volume_window"`
		IncludeLatestInAverage bool    `yaml:"include_latest_in_average"`
	} `yaml:"strategy"`
	Tickers struct {
		Symbols []string `yaml:"symbols"`
		File    string   `yaml:"file"`
	} `yaml:"tickers"`
	Telegram struct {
		BotToken string `yaml:"bot_token"`
		ChatID   string `yaml:"chat_id"`
	} `yaml:"telegram"`
	Schedule struct {
		DailyCron string `yaml:"daily_cron"`
	} `yaml:"schedule"`
	Database struct {
		SQLitePath string `yaml:"sqlite_path"`
	} `yaml:"database"`
	Proxy string `yaml:"proxy"`
}

// Load reads config from a YAML file, then applies environment variable overrides.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Environment variable overrides
	if v := os.Getenv("ALPHAVANTAGE_API_KEY"); v != "" {
		cfg.DataSource.APIKey = v
	}
	if v := os.Getenv("ALPHAVANTAGE_BASE_URL"); v != "" {
		cfg.DataSource.BaseURL = v
	}
	if v := os.Getenv("TICKERS_FILE"); v != "" {
		cfg.Tickers.File = v
	}
	if v := os.Getenv("TELEGRAM_BOT_TOKEN"); v != "" {
		cfg.Telegram.BotToken = v
	}
	if v := os.Getenv("TELEGRAM_CHAT_ID"); v != "" {
		cfg.Telegram.ChatID = v
	}
	if v := os.Getenv("CRON_DAILY"); v != "" {
		cfg.Schedule.DailyCron = v
	}
	if v := os.Getenv("SQLITE_PATH"); v != "" {
		cfg.Database.SQLitePath = v
	}
	if v := os.Getenv("HTTPS_PROXY"); v != "" {
		cfg.Proxy = v
	}
	if v := os.Getenv("RSI_MAX"); v != "" {
		var max float64
		if _, err := fmt.Sscanf(v, "%f", &max); err == nil {
			cfg.Strategy.RSIMax = max
		}
	}

	// Defaults
	if cfg.DataSource.BaseURL == "" {
		cfg.DataSource.BaseURL = "https://www.alphavantage.co"
	}
	if cfg.DataSource.Interval == "" {
		cfg.DataSource.Interval = "daily"
	}
	if cfg.Strategy.RSIPeriod == 0 {
		cfg.Strategy.RSIPeriod = 14
	}
	if cfg.Strategy.RSIMax == 0 {
		cfg.Strategy.RSIMax = 40
	}
	if cfg.Strategy.EMAPeriod == 0 {
		cfg.Strategy.EMAPeriod = 50
	}
	if cfg.Strategy.SMAPeriod == 0 {
		cfg.Strategy.SMAPeriod = 200
	}
	if cfg.Strategy.VolumeWindow == 0 {
		cfg.Strategy.VolumeWindow = 10
	}

	return cfg, nil
}

// Validate checks that all required fields are set and sane.
func (c *Config) Validate() error {
	if c.DataSource.BaseURL == "" {
		return fmt.Errorf("data_source.base_url is required")
	}
	if c.Strategy.RSIMax <= 0 || c.Strategy.RSIMax > 100 {
		return fmt.Errorf("strategy.rsi_max must be in (0, 100]")
	}
	if c.Strategy.RSIPeriod <= 0 {
		return fmt.Errorf("strategy.rsi_period must be positive")
	}
	if c.Strategy.EMAPeriod <= 0 || c.Strategy.SMAPeriod <= 0 {
		return fmt.Errorf("strategy ema/sma periods must be positive")
	}
	if c.Strategy.VolumeWindow <= 0 {
		return fmt.Errorf("strategy.volume_window must be positive")
	}
	return nil
}

// LoadTickers resolves the ticker list: a newline-delimited file when
// configured, otherwise the in-config symbol list. Blank lines and lines
// starting with '#' are skipped.
func (c *Config) LoadTickers() ([]string, error) {
	if c.Tickers.File == "" {
		return c.Tickers.Symbols, nil
	}

	f, err := os.Open(c.Tickers.File)
	if err != nil {
		return nil, fmt.Errorf("open tickers file: %w", err)
	}
	defer f.Close()

	var tickers []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		tickers = append(tickers, line)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read tickers file: %w", err)
	}
	return tickers, nil
}
