// Package config provides environment-based configuration for the tooling
// around the reconciliation core. The core itself takes everything it needs
// through injected capabilities; only the binaries read config.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/go-playground/validator/v10"
)

// Config holds the settings of the inspect tooling.
type Config struct {
	// DatabaseURL is the PostgreSQL connection string for the document store.
	DatabaseURL string `validate:"required"`
	// SessionSecret signs the session tokens the JWT adapter accepts.
	// Optional: without it only --uid based inspection works.
	SessionSecret string
	// LogLevel is one of debug, info, warn, error.
	LogLevel string `validate:"oneof=debug info warn error"`
	// LogFormat is either text or json.
	LogFormat string `validate:"oneof=text json"`
	// EnrichLimit bounds concurrent favorite-target lookups.
	EnrichLimit int `validate:"gt=0"`
}

// Load reads configuration from the environment. Call godotenv.Load first
// when a .env file should participate.
func Load() (*Config, error) {
	cfg := &Config{
		DatabaseURL:   os.Getenv("DATABASE_URL"),
		SessionSecret: os.Getenv("SESSION_SECRET"),
		LogLevel:      envOr("LOG_LEVEL", "info"),
		LogFormat:     envOr("LOG_FORMAT", "text"),
		EnrichLimit:   20,
	}
	if raw := os.Getenv("ENRICH_LIMIT"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid ENRICH_LIMIT: %w", err)
		}
		cfg.EnrichLimit = n
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the configuration for invalid values.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	return nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
