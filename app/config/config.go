// Package config provides types for handling configuration parameters.
package config

import (
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
)

// Logger defines variables for a subset of configuration parameters.
type Logger struct {
	Level int `env:"WICK_LOG_LEVEL" env-default:"1"`
}

// Demo defines variables for a subset of configuration parameters.
type Demo struct {
	Subject string `env:"WICK_DEMO_SUBJECT" env-default:"world"`
	Rounds  int    `env:"WICK_DEMO_ROUNDS" env-default:"2"`
}

// Config defines configuration parameters for the demo app.
type Config struct {
	Logger Logger
	Demo   Demo
}

// NewConfig parses environment variables into a Config.
func NewConfig() (*Config, error) {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if cfg.Demo.Rounds <= 0 {
		return nil, fmt.Errorf("config: WICK_DEMO_ROUNDS must be > 0, got %d", cfg.Demo.Rounds)
	}
	return &cfg, nil
}
