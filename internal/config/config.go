// Package config loads CLI settings from the environment and an optional
// .env file in the working directory.
package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds the CLI settings, populated from environment variables.
type Config struct {
	LogLevel      string
	LogFormat     string
	OutputDir     string
	ReportAuthor  string
	ReportProject string
}

// Load reads configuration from environment variables, applying defaults
// where unset. Variables already set in the environment take precedence over
// the .env file; a missing .env file is not an error.
func Load(envFiles ...string) (*Config, error) {
	if err := godotenv.Load(envFiles...); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	cfg := &Config{
		LogLevel:      strings.ToLower(envOrDefault("GOWIND_LOG_LEVEL", "warn")),
		LogFormat:     strings.ToLower(envOrDefault("GOWIND_LOG_FORMAT", "text")),
		OutputDir:     envOrDefault("GOWIND_OUTPUT_DIR", "."),
		ReportAuthor:  os.Getenv("GOWIND_REPORT_AUTHOR"),
		ReportProject: os.Getenv("GOWIND_REPORT_PROJECT"),
	}

	if _, err := parseLevel(cfg.LogLevel); err != nil {
		return nil, err
	}
	if cfg.LogFormat != "text" && cfg.LogFormat != "json" {
		return nil, fmt.Errorf("invalid GOWIND_LOG_FORMAT %q: want text or json", cfg.LogFormat)
	}
	return cfg, nil
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func parseLevel(s string) (slog.Level, error) {
	switch s {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return 0, fmt.Errorf("invalid GOWIND_LOG_LEVEL %q: want debug, info, warn or error", s)
}

// NewLogger builds a logger writing to w in the configured format.
// Result tables go to stdout, so callers normally pass os.Stderr.
func NewLogger(cfg *Config, w io.Writer) *slog.Logger {
	level, err := parseLevel(cfg.LogLevel)
	if err != nil {
		level = slog.LevelWarn
	}
	opts := &slog.HandlerOptions{Level: level}
	if cfg.LogFormat == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}
