// Package logger builds the zerolog loggers every component receives.
package logger

import (
	"bytes"
	"time"

	"github.com/rs/zerolog"

	"slowtime/hal"
)

// LineWriter adapts a hal.Logger line sink to io.Writer. Each Write is one log
// line; a trailing newline is dropped because the sink adds its own.
type LineWriter struct {
	Sink hal.Logger
}

func (w LineWriter) Write(p []byte) (int, error) {
	if w.Sink == nil {
		return len(p), nil
	}
	w.Sink.WriteLineBytes(bytes.TrimRight(p, "\r\n"))
	return len(p), nil
}

// Level maps the debug and verbose switches to a level. The default is warn.
func Level(debug, verbose bool) zerolog.Level {
	if debug {
		return zerolog.DebugLevel
	}
	if verbose {
		return zerolog.InfoLevel
	}
	return zerolog.WarnLevel
}

// New returns a logger writing to sink. Console output is human readable and
// used on the desktop; devices get compact JSON lines.
func New(sink hal.Logger, level zerolog.Level, console bool) zerolog.Logger {
	var out = LineWriter{Sink: sink}
	if console {
		cw := zerolog.ConsoleWriter{
			Out:        out,
			TimeFormat: time.TimeOnly,
			NoColor:    true,
		}
		return zerolog.New(cw).Level(level).With().Timestamp().Logger()
	}
	return zerolog.New(out).Level(level).With().Logger()
}
