// Package config loads process configuration for the Lambda entry points.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds configuration shared by every function. It is loaded once
// at process start and injected into the handlers; nothing reads the
// environment after Load returns.
type Config struct {
	// Table is the DynamoDB table holding all records.
	// Env: USER_TABLE (required).
	Table string

	// Region overrides the AWS region resolved from the default chain.
	// Env: AWS_REGION (optional).
	Region string

	// LogLevel is the minimum slog level.
	// Env: LOG_LEVEL, one of debug/info/warn/error. Default: info.
	LogLevel slog.Level
}

// Load reads configuration from the environment. A .env file in the
// working directory is merged in first when present (local runs only;
// Lambda supplies real environment variables).
func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		Table:  os.Getenv("USER_TABLE"),
		Region: os.Getenv("AWS_REGION"),
	}

	level, err := parseLevel(os.Getenv("LOG_LEVEL"))
	if err != nil {
		return Config{}, err
	}
	cfg.LogLevel = level

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// validate ensures required values are present.
func (c *Config) validate() error {
	if c.Table == "" {
		return fmt.Errorf("config: USER_TABLE is required")
	}
	return nil
}

func parseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "", "info":
		return slog.LevelInfo, nil
	case "debug":
		return slog.LevelDebug, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("config: unknown LOG_LEVEL %q", s)
	}
}

// NewLogger builds the process logger at the configured level.
func (c Config) NewLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: c.LogLevel,
	}))
}
