package logger

import (
	"io"
	"time"

	"github.com/rs/zerolog"
)

// New creates a console logger writing to w. Debug enables the verbose
// level used by --verbose.
func New(w io.Writer, debug bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}
	output := zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: time.RFC3339,
	}
	return zerolog.New(output).Level(level).With().Timestamp().Logger()
}

// Nop returns a logger that discards everything. Useful in tests.
func Nop() zerolog.Logger {
	return zerolog.Nop()
}
