// Package logger builds the zerolog logger shared by the server and adapts
// it to GORM so SQL traces go through the same sink.
package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// New returns a timestamped logger. pretty selects the human-readable console writer.
func New(level string, pretty bool) zerolog.Logger {
	return NewWithWriter(level, pretty, os.Stderr)
}

func NewWithWriter(level string, pretty bool, w io.Writer) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		lvl = zerolog.InfoLevel
	}

	out := w
	if pretty {
		out = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
	}

	return zerolog.New(out).Level(lvl).With().Timestamp().Logger()
}
