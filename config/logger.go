package config

import (
	"log/slog"
	"os"
)

// NewLogger returns a slog.Logger for the current environment: JSON output
// in production, text everywhere else. LOG_LEVEL accepts any form
// slog.Level parses (debug, INFO, warn, ...); unset or invalid means info.
func NewLogger() *slog.Logger {
	level := slog.LevelInfo
	if s := os.Getenv("LOG_LEVEL"); s != "" {
		if err := level.UnmarshalText([]byte(s)); err != nil {
			level = slog.LevelInfo
		}
	}
	opts := &slog.HandlerOptions{Level: level}
	if os.Getenv("GO_ENV") == "production" {
		return slog.New(slog.NewJSONHandler(os.Stdout, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stdout, opts))
}
