// Package config loads runtime settings from PLANETARIA_* environment
// variables, with command-line flags layered on top by the caller.
package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Width      int    `envconfig:"WIDTH" default:"1280"`
	Height     int    `envconfig:"HEIGHT" default:"800"`
	Fullscreen bool   `envconfig:"FULLSCREEN" default:"false"`
	Seed       uint64 `envconfig:"SEED" default:"0"` // 0 means time-derived
	LogLevel   string `envconfig:"LOG_LEVEL" default:"info"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("planetaria", &cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", c.Width, c.Height)
	}
	return nil
}
