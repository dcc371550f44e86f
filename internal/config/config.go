// Package config loads process configuration from the environment.
package config

import (
	"log/slog"

	"github.com/caarlos0/env/v11"
)

// Config is the process configuration
type Config struct {
	// Addr is the HTTP listen address
	Addr string `env:"NOUGHTS_ADDR" envDefault:":8080"`

	// StorageType selects the match-record backend: "memory" or "redis"
	StorageType string `env:"NOUGHTS_STORAGE" envDefault:"memory"`

	// RedisURL is required when StorageType is "redis"
	RedisURL string `env:"NOUGHTS_REDIS_URL"`

	// RulesMode selects turn validation: "strict" or "permissive"
	RulesMode string `env:"NOUGHTS_RULES" envDefault:"strict"`

	// LogLevel is the minimum slog level
	LogLevel slog.Level `env:"NOUGHTS_LOG_LEVEL" envDefault:"info"`
}

// Load parses the configuration from environment variables
func Load() (Config, error) {
	return env.ParseAs[Config]()
}
