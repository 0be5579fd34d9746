package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/shivikatandon/RealTime-Stock-Dashboard/internal/model"
)

const (
	// Refresh period bounds in seconds.
	MinRefreshSeconds = 10
	MaxRefreshSeconds = 60
)

// Config holds all application configuration.
type Config struct {
	Ticker         string  `yaml:"ticker"`
	Interval       string  `yaml:"interval"`
	RefreshSeconds int     `yaml:"refresh_seconds"`
	AlertThreshold float64 `yaml:"alert_threshold"`
	DataSource     struct {
		Mock bool `yaml:"mock"`
	} `yaml:"data_source"`
	Proxy   string `yaml:"proxy"`
	LogFile string `yaml:"log_file"`
}

// Load reads config from a YAML file, then applies environment variable
// overrides, then defaults. A missing file is not an error.
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
	if v := os.Getenv("TICKER"); v != "" {
		cfg.Ticker = v
	}
	if v := os.Getenv("INTERVAL"); v != "" {
		cfg.Interval = v
	}
	if v := os.Getenv("REFRESH_SECONDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.RefreshSeconds = n
		}
	}
	if v := os.Getenv("ALERT_THRESHOLD"); v != "" {
		if t, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.AlertThreshold = t
		}
	}
	if v := os.Getenv("MOCK_DATA"); v == "true" {
		cfg.DataSource.Mock = true
	}
	if v := os.Getenv("HTTPS_PROXY"); v != "" {
		cfg.Proxy = v
	}
	if v := os.Getenv("LOG_FILE"); v != "" {
		cfg.LogFile = v
	}

	// Defaults
	if cfg.Ticker == "" {
		cfg.Ticker = "MSFT"
	}
	if cfg.Interval == "" {
		cfg.Interval = string(model.Interval1m)
	}
	if cfg.RefreshSeconds == 0 {
		cfg.RefreshSeconds = 15
	}
	if cfg.LogFile == "" {
		cfg.LogFile = "dashboard.log"
	}

	// The refresh period is clamped rather than rejected, matching the
	// bounded slider it replaces.
	if cfg.RefreshSeconds < MinRefreshSeconds {
		cfg.RefreshSeconds = MinRefreshSeconds
	}
	if cfg.RefreshSeconds > MaxRefreshSeconds {
		cfg.RefreshSeconds = MaxRefreshSeconds
	}

	return cfg, nil
}

// Validate checks that all fields hold usable values.
func (c *Config) Validate() error {
	if c.Ticker == "" {
		return fmt.Errorf("ticker is required")
	}
	if _, err := model.ParseInterval(c.Interval); err != nil {
		return err
	}
	if c.AlertThreshold < 0 {
		return fmt.Errorf("alert_threshold must be >= 0 (0 disables the alert)")
	}
	return nil
}

// ParsedInterval returns the validated interval. Call after Validate.
func (c *Config) ParsedInterval() model.Interval {
	iv, _ := model.ParseInterval(c.Interval)
	return iv
}
