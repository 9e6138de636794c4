package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"StockPulse/internal/model"
)

// Config holds all application configuration.
type Config struct {
	Instrument struct {
		Ticker         string  `yaml:"ticker"`
		Horizon        string  `yaml:"horizon"`
		PredictionMode string  `yaml:"prediction_mode"`
		PriceBandPct   float64 `yaml:"price_band_pct"` // 0 disables the clamp
	} `yaml:"instrument"`
	Indicators struct {
		BollingerStd float64 `yaml:"bollinger_std"`
	} `yaml:"indicators"`
	DataSource struct {
		BaseURL string `yaml:"base_url"` // empty means Yahoo Finance
		APIKey  string `yaml:"api_key"`
	} `yaml:"data_source"`
	Cache struct {
		Size       int `yaml:"size"`
		TTLSeconds int `yaml:"ttl_seconds"`
	} `yaml:"cache"`
	Schedule struct {
		AnalysisCron string `yaml:"analysis_cron"`
	} `yaml:"schedule"`
	Telegram struct {
		BotToken string `yaml:"bot_token"`
		ChatID   string `yaml:"chat_id"`
	} `yaml:"telegram"`
	Database struct {
		SQLitePath string `yaml:"sqlite_path"`
	} `yaml:"database"`
	Export struct {
		CSVPath string `yaml:"csv_path"`
	} `yaml:"export"`
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
	if v := os.Getenv("TELEGRAM_BOT_TOKEN"); v != "" {
		cfg.Telegram.BotToken = v
	}
	if v := os.Getenv("TELEGRAM_CHAT_ID"); v != "" {
		cfg.Telegram.ChatID = v
	}
	if v := os.Getenv("TICKER"); v != "" {
		cfg.Instrument.Ticker = v
	}
	if v := os.Getenv("HORIZON"); v != "" {
		cfg.Instrument.Horizon = v
	}
	if v := os.Getenv("PREDICTION_MODE"); v != "" {
		cfg.Instrument.PredictionMode = v
	}
	if v := os.Getenv("DATA_BASE_URL"); v != "" {
		cfg.DataSource.BaseURL = v
	}
	if v := os.Getenv("DATA_API_KEY"); v != "" {
		cfg.DataSource.APIKey = v
	}
	if v := os.Getenv("HTTPS_PROXY"); v != "" {
		cfg.Proxy = v
	}
	if v := os.Getenv("CRON_ANALYSIS"); v != "" {
		cfg.Schedule.AnalysisCron = v
	}
	if v := os.Getenv("SQLITE_PATH"); v != "" {
		cfg.Database.SQLitePath = v
	}

	// Defaults
	if cfg.Instrument.Ticker == "" {
		cfg.Instrument.Ticker = "500389.BO"
	}
	if cfg.Instrument.Horizon == "" {
		cfg.Instrument.Horizon = "1d"
	}
	if cfg.Instrument.PredictionMode == "" {
		cfg.Instrument.PredictionMode = string(model.PredictNextBar)
	}
	if cfg.Indicators.BollingerStd == 0 {
		cfg.Indicators.BollingerStd = 1.5
	}
	if cfg.Cache.Size == 0 {
		cfg.Cache.Size = 32
	}
	if cfg.Cache.TTLSeconds == 0 {
		cfg.Cache.TTLSeconds = 300
	}
	if cfg.Schedule.AnalysisCron == "" {
		cfg.Schedule.AnalysisCron = "0 */15 * * * *"
	}
	if cfg.Database.SQLitePath == "" {
		cfg.Database.SQLitePath = "data/stockpulse.db"
	}

	return cfg, nil
}

// Validate checks that all required fields are set and parseable.
func (c *Config) Validate() error {
	if c.Telegram.BotToken == "" {
		return fmt.Errorf("telegram.bot_token is required")
	}
	if c.Telegram.ChatID == "" {
		return fmt.Errorf("telegram.chat_id is required")
	}
	if c.Instrument.Ticker == "" {
		return fmt.Errorf("instrument.ticker is required")
	}
	if _, err := model.ParseHorizon(c.Instrument.Horizon); err != nil {
		return fmt.Errorf("instrument.horizon: %w", err)
	}
	if _, err := model.ParsePredictionMode(c.Instrument.PredictionMode); err != nil {
		return fmt.Errorf("instrument.prediction_mode: %w", err)
	}
	if c.Instrument.PriceBandPct < 0 || c.Instrument.PriceBandPct >= 1 {
		return fmt.Errorf("instrument.price_band_pct must be in [0, 1)")
	}
	return nil
}
