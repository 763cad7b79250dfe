package cmd

import (
	"io"
	"time"

	"github.com/rs/zerolog"
)

// setupLogger creates a console logger writing to out at the given level.
// Unknown levels fall back to info.
func setupLogger(logLevel string, out io.Writer) zerolog.Logger {
	level := zerolog.InfoLevel
	switch logLevel {
	case "debug":
		level = zerolog.DebugLevel
	case "info":
		level = zerolog.InfoLevel
	case "warn":
		level = zerolog.WarnLevel
	case "error":
		level = zerolog.ErrorLevel
	}

	return zerolog.New(zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}).
		Level(level).
		With().
		Timestamp().
		Logger()
}
