// Package config loads server configuration from the environment.
package config

import (
	"log/slog"

	"github.com/caarlos0/env/v11"
)

// Config holds all server settings, populated from environment variables.
type Config struct {
	// Port is the TCP port the HTTP server listens on
	Port int `env:"PORT" envDefault:"3001"`
	// LogLevel controls the minimum log level (debug, info, warn, error)
	LogLevel slog.Level `env:"LOG_LEVEL" envDefault:"info"`

	// StorageType selects the storage backend ("memory" or "redis")
	StorageType string `env:"STORAGE_TYPE" envDefault:"memory"`
	// RedisURL is the Redis connection URL (required when StorageType is "redis")
	RedisURL string `env:"REDIS_URL" envDefault:"redis://localhost:6379"`

	// FaceitAPIKey is the server-side FACEIT Data API key
	FaceitAPIKey string `env:"FACEIT_API_KEY"`
	// FaceitBaseURL overrides the FACEIT Data API base URL (for tests)
	FaceitBaseURL string `env:"FACEIT_BASE_URL"`

	// PlayerNames is the comma-separated list of FACEIT nicknames to track
	PlayerNames []string `env:"PLAYER_NAMES" envSeparator:"," envDefault:"soeholt,preak-,nachtm0nkeyy,rinor_D,tingzg0d,StorkeN1"`

	// AdminPasswordHash is a bcrypt hash gating count mutations (empty disables the gate)
	AdminPasswordHash string `env:"ADMIN_PASSWORD_HASH"`
}

// Load reads configuration from the process environment.
func Load() (Config, error) {
	return env.ParseAs[Config]()
}
