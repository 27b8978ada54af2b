// Package config loads the process configuration from the environment.
// All runtime knobs live here so no other package reads env vars directly.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
)

const (
	defaultPort          = "8080"
	defaultTokenTTL      = 24 * time.Hour
	defaultStatsCacheTTL = 5 * time.Minute
)

// Config holds every externally configured value, constructed once in main
// and injected where needed.
type Config struct {
	// Port is the HTTP listening port.
	Port string

	// DatabaseURL is the postgres DSN.
	DatabaseURL string

	// RunMigrations gates gorm AutoMigrate at startup.
	RunMigrations bool

	// JWTSecret signs and verifies access tokens.
	JWTSecret string

	// TokenTTL is the access token lifetime.
	TokenTTL time.Duration

	// RedisAddr is host:port of the stats cache; empty disables caching.
	RedisAddr string

	// RedisPassword authenticates the redis connection.
	RedisPassword string

	// StatsCacheTTL bounds staleness of cached stats.
	StatsCacheTTL time.Duration
}

// Load reads the configuration, honoring a local .env file when present.
func Load() (*Config, error) {
	// Best effort: production supplies real env vars, .env is for dev.
	_ = godotenv.Load()

	cfg := &Config{
		Port:          getenvDefault("PORT", defaultPort),
		DatabaseURL:   os.Getenv("DATABASE_URL"),
		RunMigrations: os.Getenv("RUN_MIGRATIONS") == "true",
		JWTSecret:     os.Getenv("JWT_SECRET"),
		TokenTTL:      getenvDuration("TOKEN_TTL", defaultTokenTTL),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		StatsCacheTTL: getenvDuration("STATS_CACHE_TTL", defaultStatsCacheTTL),
	}

	if host := os.Getenv("REDIS_HOST"); host != "" {
		port := getenvDefault("REDIS_PORT", "6379")
		cfg.RedisAddr = host + ":" + port
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is not set")
	}
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is not set")
	}

	return cfg, nil
}

func getenvDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getenvDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		return fallback
	}
	return d
}
