// Package logging builds the diagnostics logger used by refsearch.
package logging

import (
	"io"
	"strings"

	"github.com/rs/zerolog"
)

// Config holds logger configuration.
type Config struct {
	// Enabled turns diagnostics on; a disabled logger discards everything.
	Enabled bool
	// Level is one of debug, info, warn, error. Unknown values mean warn.
	Level string
	// Output is where log lines are written, usually stderr.
	Output io.Writer
	// NoColor disables ANSI colors in the console format.
	NoColor bool
}

// New returns a console logger writing to cfg.Output.
func New(cfg Config) zerolog.Logger {
	if !cfg.Enabled || cfg.Output == nil {
		return zerolog.Nop()
	}
	out := zerolog.ConsoleWriter{
		Out:          cfg.Output,
		NoColor:      cfg.NoColor,
		PartsExclude: []string{zerolog.TimestampFieldName},
	}
	return zerolog.New(out).Level(ParseLevel(cfg.Level))
}

// ParseLevel maps a level name to a zerolog level.
func ParseLevel(s string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.WarnLevel
	}
}
