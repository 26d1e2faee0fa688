package config_test

import (
	"testing"
	"time"

	"shortlink/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "http://localhost:8080", cfg.BaseURL)
	assert.Equal(t, "data/shortlink.db", cfg.DatabasePath)
	assert.Empty(t, cfg.RedisAddr)
	assert.Equal(t, 100*time.Millisecond, cfg.FraudDelay)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("BASE_URL", "https://sho.rt")
	t.Setenv("DATABASE_PATH", "/tmp/test.db")
	t.Setenv("REDIS_ADDR", "localhost:6379")
	t.Setenv("FRAUD_DELAY_MS", "0")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "https://sho.rt", cfg.BaseURL)
	assert.Equal(t, "/tmp/test.db", cfg.DatabasePath)
	assert.Equal(t, "localhost:6379", cfg.RedisAddr)
	assert.Equal(t, time.Duration(0), cfg.FraudDelay)
}

func TestLoad_InvalidFraudDelay_ReturnsError(t *testing.T) {
	t.Setenv("FRAUD_DELAY_MS", "not-a-number")

	_, err := config.Load()
	assert.Error(t, err)
}
