package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("POSTGRES_CONN", "postgres://u:p@localhost:5432/market?sslmode=disable")
	for _, key := range []string{"SERVER_ADDRESS", "DB_RESET", "SEED_FILE", "LOG_LEVEL", "LOG_FORMAT", "RATE_LIMIT_RPS", "RATE_LIMIT_BURST", "SHUTDOWN_TIMEOUT"} {
		t.Setenv(key, "")
	}

	cfg, err := Load()

	require.NoError(t, err)
	require.Equal(t, "0.0.0.0:8080", cfg.ServerAddress)
	require.True(t, cfg.ResetOnStart)
	require.Empty(t, cfg.SeedFile)
	require.Equal(t, "info", cfg.LogLevel)
	require.Equal(t, "json", cfg.LogFormat)
	require.Zero(t, cfg.RateLimitRPS)
	require.Equal(t, 20, cfg.RateLimitBurst)
	require.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("POSTGRES_CONN", "postgres://localhost/market")
	t.Setenv("SERVER_ADDRESS", ":9090")
	t.Setenv("DB_RESET", "false")
	t.Setenv("SEED_FILE", "/etc/market/seed.yaml")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "console")
	t.Setenv("RATE_LIMIT_RPS", "12.5")
	t.Setenv("RATE_LIMIT_BURST", "5")
	t.Setenv("SHUTDOWN_TIMEOUT", "3s")

	cfg, err := Load()

	require.NoError(t, err)
	require.Equal(t, &Config{
		PostgresConn:    "postgres://localhost/market",
		ResetOnStart:    false,
		SeedFile:        "/etc/market/seed.yaml",
		ServerAddress:   ":9090",
		ShutdownTimeout: 3 * time.Second,
		RateLimitRPS:    12.5,
		RateLimitBurst:  5,
		LogLevel:        "debug",
		LogFormat:       "console",
	}, cfg)
}

func TestLoadMissingConn(t *testing.T) {
	t.Setenv("POSTGRES_CONN", "")

	_, err := Load()

	require.ErrorContains(t, err, "POSTGRES_CONN env variable is not set")
}

func TestLoadCollectsAllErrors(t *testing.T) {
	t.Setenv("POSTGRES_CONN", "postgres://localhost/market")
	t.Setenv("DB_RESET", "maybe")
	t.Setenv("RATE_LIMIT_RPS", "-1")
	t.Setenv("RATE_LIMIT_BURST", "many")
	t.Setenv("SHUTDOWN_TIMEOUT", "10")
	t.Setenv("LOG_FORMAT", "xml")

	_, err := Load()

	require.Error(t, err)
	for _, key := range []string{"DB_RESET", "RATE_LIMIT_RPS", "RATE_LIMIT_BURST", "SHUTDOWN_TIMEOUT", "LOG_FORMAT"} {
		require.ErrorContains(t, err, key)
	}
}
