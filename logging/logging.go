// Package logging configures zerolog for the scorespan commands.
package logging

import (
	"io"
	"strings"
	"time"

	"github.com/jsphweid/scorespan/config"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// New returns a logger writing to w. Unknown levels fall back to info and
// any format other than json is pretty printed.
func New(w io.Writer, level, format string) zerolog.Logger {
	if format != config.LogFormatJSON {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen}
	}
	return zerolog.New(w).Level(parseLevel(level)).With().Timestamp().Logger()
}

func parseLevel(level string) zerolog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return zerolog.DebugLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

// Setup installs the logger described by cfg as the global logger.
func Setup(w io.Writer, cfg config.Config) {
	log.Logger = New(w, cfg.LogLevel, cfg.LogFormat)
}
