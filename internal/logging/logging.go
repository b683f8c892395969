package logging

import (
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/alamin-islam0/care-xyz-frontend/internal/config"
)

// New builds the process logger. JSON to stdout by default; the console
// format is meant for local development.
func New(cfg *config.Config) zerolog.Logger {
	level := zerolog.InfoLevel
	if parsed, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(cfg.LogLevel))); err == nil {
		level = parsed
	}

	var out = zerolog.New(os.Stdout)
	if strings.EqualFold(cfg.LogFormat, "console") {
		out = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339})
	}

	return out.Level(level).
		With().
		Timestamp().
		Str("app", "care-xyz-web").
		Str("env", cfg.Environment).
		Logger()
}
