// Package config handles application configuration from environment variables
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	Port string `env:"PORT" envDefault:"8080"`

	DeepSeek DeepSeekConfig `envPrefix:"DEEPSEEK_"`
}

// DeepSeekConfig holds DeepSeek-specific configuration. An empty APIKey means
// the service runs rule-only.
type DeepSeekConfig struct {
	APIKey  string        `env:"API_KEY"`
	BaseURL string        `env:"BASE_URL" envDefault:"https://api.deepseek.com"`
	Model   string        `env:"MODEL" envDefault:"deepseek-chat"`
	Timeout time.Duration `env:"TIMEOUT" envDefault:"10s"`
}

// Load reads configuration from the environment, with a .env file applied
// first if one exists.
func Load() (*Config, error) {
	_ = godotenv.Load() // best-effort; real env vars win

	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return nil, fmt.Errorf("parsing environment: %w", err)
	}
	return &cfg, nil
}

// HasDeepSeek returns true if the model-backed path can be configured
func (c *Config) HasDeepSeek() bool {
	return c.DeepSeek.APIKey != ""
}
