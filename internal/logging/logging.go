// Package logging configures the process-wide zerolog logger.
//
// Logs always go to the error stream. In serve mode stdout carries the MCP
// protocol, so nothing here may write to it.
package logging

import (
	"io"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// LevelFor maps a -v count to a log level.
// An explicit level name, when valid, wins over verbosity.
func LevelFor(verbosity int, name string) zerolog.Level {
	if name != "" {
		if level, err := zerolog.ParseLevel(strings.ToLower(name)); err == nil && level != zerolog.NoLevel {
			return level
		}
	}
	switch verbosity {
	case 0:
		return zerolog.WarnLevel
	case 1:
		return zerolog.InfoLevel
	case 2:
		return zerolog.DebugLevel
	default:
		return zerolog.TraceLevel
	}
}

// Setup installs a console logger writing to w at the given level and returns it.
// Colors are only used when color is true.
func Setup(w io.Writer, level zerolog.Level, color bool) zerolog.Logger {
	console := zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: time.Kitchen,
		NoColor:    !color,
	}
	logger := zerolog.New(console).Level(level).With().Timestamp().Logger()
	if level <= zerolog.DebugLevel {
		logger = logger.With().Caller().Logger()
	}
	log.Logger = logger
	return logger
}

// For returns the global logger tagged with a component name.
func For(component string) zerolog.Logger {
	return log.With().Str("component", component).Logger()
}
