// Package logging configures the zerolog logger used by the bridge.
//
// Stdout carries the JSON-RPC channel, so everything is written to stderr.
package logging

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

const (
	// EnvLogLevel overrides the configured level
	EnvLogLevel = "CM64_LOG_LEVEL"
	// EnvLogNoColor disables console colors
	EnvLogNoColor = "CM64_LOG_NOCOLOR"

	appName = "cm64"
)

// New creates a console logger writing to stderr
func New(level string) zerolog.Logger {
	return NewWithWriter(os.Stderr, level)
}

// NewWithWriter creates a console logger writing to w
func NewWithWriter(w io.Writer, level string) zerolog.Logger {
	if override, ok := os.LookupEnv(EnvLogLevel); ok && strings.TrimSpace(override) != "" {
		level = override
	}
	lvl, ok := ParseLevel(level)
	if !ok {
		lvl = zerolog.InfoLevel
	}
	output := zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: time.RFC3339,
		NoColor:    os.Getenv(EnvLogNoColor) != "",
	}
	return zerolog.New(output).Level(lvl).With().Timestamp().Str("app", appName).Logger()
}

// ParseLevel parses textual level
func ParseLevel(raw string) (zerolog.Level, bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "trace":
		return zerolog.TraceLevel, true
	case "debug":
		return zerolog.DebugLevel, true
	case "", "info":
		return zerolog.InfoLevel, true
	case "warn", "warning":
		return zerolog.WarnLevel, true
	case "error":
		return zerolog.ErrorLevel, true
	case "disabled", "off", "none":
		return zerolog.Disabled, true
	default:
		return zerolog.InfoLevel, false
	}
}
