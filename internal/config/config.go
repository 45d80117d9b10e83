package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// SymbolSpec is one selectable commodity future.
type SymbolSpec struct {
	Code  string `yaml:"code"`
	Label string `yaml:"label"`
}

// Config holds all application configuration.
type Config struct {
	Server struct {
		Listen       string   `yaml:"listen"`
		AllowOrigins []string `yaml:"allow_origins"`
	} `yaml:"server"`
	DataSource struct {
		Provider     string `yaml:"provider"` // "yahoo" or "rest"
		BaseURL      string `yaml:"base_url"`
		APIKey       string `yaml:"api_key"`
		LookbackDays int    `yaml:"lookback_days"`
	} `yaml:"data_source"`
	Symbols []SymbolSpec `yaml:"symbols"`
	Cache   struct {
		SQLitePath string `yaml:"sqlite_path"` // empty disables the bar cache
	} `yaml:"cache"`
	Telegram struct {
		BotToken string `yaml:"bot_token"`
		ChatID   string `yaml:"chat_id"`
	} `yaml:"telegram"`
	Schedule struct {
		DailyCron string `yaml:"daily_cron"`
		Symbol    string `yaml:"symbol"`
	} `yaml:"schedule"`
	Log struct {
		Level string `yaml:"level"`
	} `yaml:"log"`
	Proxy string `yaml:"proxy"`
}

// Load reads config from a YAML file, then applies environment variable
// overrides and defaults. A missing file is not an error; defaults alone
// give a working Yahoo-backed setup.
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
	if v := os.Getenv("ORACLE_LISTEN"); v != "" {
		cfg.Server.Listen = v
	}
	if v := os.Getenv("BARS_BASE_URL"); v != "" {
		cfg.DataSource.Provider = "rest"
		cfg.DataSource.BaseURL = v
	}
	if v := os.Getenv("BARS_API_KEY"); v != "" {
		cfg.DataSource.APIKey = v
	}
	if v := os.Getenv("LOOKBACK_DAYS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.DataSource.LookbackDays = n
		}
	}
	if v := os.Getenv("SQLITE_PATH"); v != "" {
		cfg.Cache.SQLitePath = v
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
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv("HTTPS_PROXY"); v != "" {
		cfg.Proxy = v
	}

	// Defaults
	if cfg.Server.Listen == "" {
		cfg.Server.Listen = ":8080"
	}
	if cfg.DataSource.Provider == "" {
		cfg.DataSource.Provider = "yahoo"
	}
	if cfg.DataSource.LookbackDays == 0 {
		cfg.DataSource.LookbackDays = 40
	}
	if len(cfg.Symbols) == 0 {
		cfg.Symbols = []SymbolSpec{
			{Code: "BZ=F", Label: "🛢️ Brent Crude"},
			{Code: "NG=F", Label: "🔥 Natural Gas"},
			{Code: "TTF=F", Label: "🇪🇺 Dutch TTF"},
			{Code: "RB=F", Label: "⛽ RBOB Gasoline"},
		}
	}
	if cfg.Schedule.DailyCron == "" {
		cfg.Schedule.DailyCron = "0 30 8 * * 1-5"
	}
	if cfg.Schedule.Symbol == "" {
		cfg.Schedule.Symbol = cfg.Symbols[0].Code
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}

	return cfg, nil
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if len(c.Symbols) == 0 {
		return fmt.Errorf("at least one symbol is required")
	}
	for i, s := range c.Symbols {
		if s.Code == "" {
			return fmt.Errorf("symbols[%d].code is required", i)
		}
	}
	switch c.DataSource.Provider {
	case "yahoo":
	case "rest":
		if c.DataSource.BaseURL == "" {
			return fmt.Errorf("data_source.base_url is required for the rest provider")
		}
	default:
		return fmt.Errorf("data_source.provider must be yahoo or rest, got %q", c.DataSource.Provider)
	}
	if c.DataSource.LookbackDays < 7 {
		return fmt.Errorf("data_source.lookback_days must be at least 7")
	}
	if !c.HasSymbol(c.Schedule.Symbol) {
		return fmt.Errorf("schedule.symbol %q is not in the symbol set", c.Schedule.Symbol)
	}
	return nil
}

// HasSymbol reports whether code is part of the configured symbol set.
func (c *Config) HasSymbol(code string) bool {
	for _, s := range c.Symbols {
		if s.Code == code {
			return true
		}
	}
	return false
}

// TelegramEnabled reports whether the daily push can run.
func (c *Config) TelegramEnabled() bool {
	return c.Telegram.BotToken != "" && c.Telegram.ChatID != ""
}
