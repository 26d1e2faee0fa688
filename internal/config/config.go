// Package config loads service configuration from the environment, with an
// optional .env file for local development.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds everything the service reads at startup.
type Config struct {
	// Port the HTTP server listens on.
	Port string
	// BaseURL is prepended to short codes when formatting short URLs.
	// Presentation only; it never affects stored state.
	BaseURL string
	// DatabasePath is the sqlite database file path.
	DatabasePath string
	// RedisAddr enables the redis link cache when non-empty.
	RedisAddr string
	// FraudDelay is the simulated fraud-check latency.
	FraudDelay time.Duration
}

// Load reads configuration from the environment. A .env file in the working
// directory is applied first when present; real environment variables win.
func Load() (*Config, error) {
	// Missing .env is the normal case outside local dev.
	_ = godotenv.Load()

	fraudDelayMs, err := getEnvInt("FRAUD_DELAY_MS", 100)
	if err != nil {
		return nil, err
	}

	return &Config{
		Port:         getEnv("PORT", "8080"),
		BaseURL:      getEnv("BASE_URL", "http://localhost:8080"),
		DatabasePath: getEnv("DATABASE_PATH", "data/shortlink.db"),
		RedisAddr:    getEnv("REDIS_ADDR", ""),
		FraudDelay:   time.Duration(fraudDelayMs) * time.Millisecond,
	}, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value %q: %w", key, value, err)
	}
	return parsed, nil
}
