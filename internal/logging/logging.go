// Package logging sets up the zerolog logger shared across the service.
package logging

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Config controls logger construction.
type Config struct {
	// Level is the minimum severity: debug, info, warn or error.
	Level string

	// ServiceName is attached to every entry.
	ServiceName string

	// Console switches to human-readable output for development.
	Console bool

	// Output defaults to os.Stdout.
	Output io.Writer
}

// New builds a logger from cfg. Unknown levels fall back to info.
func New(cfg Config) zerolog.Logger {
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}

	out := cfg.Output
	if out == nil {
		out = os.Stdout
	}
	if cfg.Console {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
	}

	logger := zerolog.New(out).Level(level).With().Timestamp()
	if cfg.ServiceName != "" {
		logger = logger.Str("service", cfg.ServiceName)
	}
	return logger.Logger()
}
