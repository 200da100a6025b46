// Package config читает настройки сервиса из переменных окружения.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config загружается один раз при старте и дальше не меняется
type Config struct {
	// Database
	PostgresConn string
	// ResetOnStart - удалить и заново создать схему, затем загрузить сид-данные
	ResetOnStart bool
	// SeedFile - путь к YAML с сид-данными, пусто = встроенный набор
	SeedFile string

	// Server
	ServerAddress   string
	ShutdownTimeout time.Duration

	// Rate limit, 0 = выключен
	RateLimitRPS   float64
	RateLimitBurst int

	// Logging
	LogLevel  string
	LogFormat string
}

// Load читает конфиг. Незаданные переменные получают значения по умолчанию,
// заданные но некорректные - ошибка.
func Load() (*Config, error) {
	cfg := &Config{}
	var errs []string

	cfg.PostgresConn = os.Getenv("POSTGRES_CONN")
	if cfg.PostgresConn == "" {
		errs = append(errs, "POSTGRES_CONN env variable is not set")
	}

	cfg.ServerAddress = getEnvString("SERVER_ADDRESS", "0.0.0.0:8080")
	cfg.SeedFile = getEnvString("SEED_FILE", "")
	cfg.LogLevel = getEnvString("LOG_LEVEL", "info")
	cfg.LogFormat = getEnvString("LOG_FORMAT", "json")

	var err error
	if cfg.ResetOnStart, err = getEnvBool("DB_RESET", true); err != nil {
		errs = append(errs, err.Error())
	}
	if cfg.ShutdownTimeout, err = getEnvDuration("SHUTDOWN_TIMEOUT", 10*time.Second); err != nil {
		errs = append(errs, err.Error())
	}
	if cfg.RateLimitRPS, err = getEnvFloat("RATE_LIMIT_RPS", 0); err != nil {
		errs = append(errs, err.Error())
	}
	if cfg.RateLimitBurst, err = getEnvInt("RATE_LIMIT_BURST", 20); err != nil {
		errs = append(errs, err.Error())
	}

	switch cfg.LogFormat {
	case "json", "console":
	default:
		errs = append(errs, fmt.Sprintf("LOG_FORMAT must be json or console, got %q", cfg.LogFormat))
	}

	if len(errs) > 0 {
		return nil, fmt.Errorf("config validation failed: %s", strings.Join(errs, ", "))
	}
	return cfg, nil
}

func getEnvString(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func getEnvBool(key string, defaultVal bool) (bool, error) {
	v := os.Getenv(key)
	if v == "" {
		return defaultVal, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("%s: invalid bool %q", key, v)
	}
	return b, nil
}

func getEnvInt(key string, defaultVal int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return defaultVal, nil
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s: invalid int %q", key, v)
	}
	return i, nil
}

func getEnvFloat(key string, defaultVal float64) (float64, error) {
	v := os.Getenv(key)
	if v == "" {
		return defaultVal, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil || f < 0 {
		return 0, fmt.Errorf("%s: invalid non-negative number %q", key, v)
	}
	return f, nil
}

func getEnvDuration(key string, defaultVal time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return defaultVal, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("%s: invalid duration %q", key, v)
	}
	return d, nil
}
