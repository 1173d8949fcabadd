package logger

import (
	"io"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Config holds logger options.
type Config struct {
	Env   string // development -> human readable console; anything else -> JSON
	Level string // trace, debug, info, warn, error, off
}

// New builds the application logger on out and installs it as the zerolog
// global logger.
func New(cfg Config, out io.Writer) zerolog.Logger {
	if cfg.Env == "development" {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: "15:04:05"}
	}

	zl := NewWithWriter(cfg, out)
	log.Logger = zl
	return zl
}

// NewWithWriter builds a logger on an arbitrary writer.
func NewWithWriter(cfg Config, w io.Writer) zerolog.Logger {
	return zerolog.New(w).Level(ParseLevel(cfg.Level)).With().Timestamp().Logger()
}

// ParseLevel maps a level name to a zerolog level, defaulting to info.
func ParseLevel(s string) zerolog.Level {
	s = strings.ToLower(strings.TrimSpace(s))
	switch s {
	case "off":
		s = "disabled"
	case "warning":
		s = "warn"
	}

	lvl, err := zerolog.ParseLevel(s)
	if err != nil || lvl == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return lvl
}
