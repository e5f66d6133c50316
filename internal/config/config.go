// Package config loads server settings from the environment and an optional
// .env file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the server settings.
type Config struct {
	// Port is the HTTP listen port.
	Port int

	// DBPath is the SQLite database path. ":memory:" keeps all state for the
	// lifetime of the process only.
	DBPath string

	// JWTSecret signs session tokens.
	JWTSecret string

	// TokenTTL is how long a session token stays valid.
	TokenTTL time.Duration

	// Seed loads the sample riders and rides into an empty store.
	Seed bool

	// LookupTimeout bounds a single destination lookup.
	LookupTimeout time.Duration
}

const devSecret = "ridecrew-dev-secret-change-me"

// Load reads the .env files (if present) and then the environment.
func Load(envFiles ...string) (*Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		// Existing environment variables win over .env values.
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to load %s: %w", f, err)
		}
	}

	cfg := &Config{
		DBPath:    getEnv("DB_PATH", ":memory:"),
		JWTSecret: getEnv("JWT_SECRET", devSecret),
	}

	var err error
	if cfg.Port, err = strconv.Atoi(getEnv("PORT", "8080")); err != nil {
		return nil, fmt.Errorf("invalid PORT: %w", err)
	}
	if cfg.TokenTTL, err = time.ParseDuration(getEnv("TOKEN_TTL", "24h")); err != nil {
		return nil, fmt.Errorf("invalid TOKEN_TTL: %w", err)
	}
	if cfg.Seed, err = strconv.ParseBool(getEnv("SEED", "true")); err != nil {
		return nil, fmt.Errorf("invalid SEED: %w", err)
	}
	if cfg.LookupTimeout, err = time.ParseDuration(getEnv("LOOKUP_TIMEOUT", "10s")); err != nil {
		return nil, fmt.Errorf("invalid LOOKUP_TIMEOUT: %w", err)
	}

	return cfg, nil
}

// UsingDevSecret reports whether no JWT_SECRET was configured.
func (c *Config) UsingDevSecret() bool {
	return c.JWTSecret == devSecret
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
