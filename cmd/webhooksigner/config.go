package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type config struct {
	URL         string `mapstructure:"url"`
	Provider    string `mapstructure:"provider"`
	Secret      string `mapstructure:"secret"`
	PayloadFile string `mapstructure:"payload_file"`
	Interval    string `mapstructure:"interval"`
}

func loadConfig(path string) (config, error) {
	if strings.TrimSpace(path) == "" {
		return config{}, fmt.Errorf("config path is required")
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	v.SetDefault("provider", "generic")
	if err := v.ReadInConfig(); err != nil {
		return config{}, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg config
	if err := v.Unmarshal(&cfg); err != nil {
		return config{}, fmt.Errorf("failed to decode config: %w", err)
	}

	cfg.URL = strings.TrimSpace(cfg.URL)
	cfg.Provider = strings.TrimSpace(cfg.Provider)
	cfg.Secret = strings.TrimSpace(cfg.Secret)
	cfg.PayloadFile = strings.TrimSpace(cfg.PayloadFile)
	cfg.Interval = strings.TrimSpace(cfg.Interval)

	if cfg.URL == "" || cfg.Secret == "" {
		return config{}, fmt.Errorf("config must include url and secret")
	}
	if _, err := cfg.interval(); err != nil {
		return config{}, err
	}
	return cfg, nil
}

// interval is zero when the signer should send once and exit.
func (c config) interval() (time.Duration, error) {
	if c.Interval == "" {
		return 0, nil
	}
	parsed, err := time.ParseDuration(c.Interval)
	if err != nil {
		return 0, fmt.Errorf("invalid interval duration: %w", err)
	}
	if parsed <= 0 {
		return 0, fmt.Errorf("interval must be positive")
	}
	return parsed, nil
}
