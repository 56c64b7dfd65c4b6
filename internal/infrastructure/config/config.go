package config

import (
	"context"
	"fmt"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port     string `env:"PORT,         default=8080"`
	Env      string `env:"ENV,          default=development"`
	LogLevel string `env:"LOG_LEVEL,    default=info"`

	// FeedWorkers sizes the activity feed dispatcher pool. Zero means
	// the dispatcher's built-in default.
	FeedWorkers int `env:"FEED_WORKERS, default=0"`

	// DemoData seeds the in-memory stores with sample appointments and
	// clients at startup. Intended for local development.
	DemoData bool `env:"DEMO_DATA,     default=false"`
}

// Development reports whether the service runs in development mode.
func (c *Config) Development() bool {
	return c.Env == "development"
}

// Load reads configuration from environment variables using go-envconfig.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return &cfg, nil
}
