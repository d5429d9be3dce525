// Package config loads ambient runtime configuration from the
// environment. This is process-level configuration (log level, settings
// file location); user preferences live in the persisted settings
// document instead.
package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// Config holds all ambient configuration.
type Config struct {
	Logging  LogConfig
	Settings SettingsConfig
	NoColor  bool `envconfig:"NO_COLOR" default:"false"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level       string `envconfig:"LOG_LEVEL" default:"info"`
	Development bool   `envconfig:"LOG_DEV" default:"false"`
}

// SettingsConfig locates the persisted settings document.
type SettingsConfig struct {
	Path string `envconfig:"HEMTTCTL_CONFIG" default:""`
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return &cfg, nil
}

// LoadOrDefault loads configuration from the environment or returns the
// defaults when the environment cannot be parsed.
func LoadOrDefault() *Config {
	cfg, err := Load()
	if err != nil {
		return Default()
	}
	return cfg
}

// Default returns default configuration.
func Default() *Config {
	return &Config{
		Logging: LogConfig{
			Level:       "info",
			Development: false,
		},
	}
}
