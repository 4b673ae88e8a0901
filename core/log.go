package core

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Logger is the process wide logger; commands derive their own with
// Logger.With().Str("bench", name).Logger().
var Logger = NewLogger(os.Stderr, "console")

// NewLogger builds a timestamped logger writing either human readable
// console lines or JSON lines to out.
func NewLogger(out io.Writer, format string) zerolog.Logger {
	if format == "console" {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.TimeOnly}
	}
	return zerolog.New(out).With().Timestamp().Logger()
}

// ConfigureLogger replaces Logger according to the log flags and sets the
// global level.
func ConfigureLogger(out io.Writer, format, level string) error {
	if format != "console" && format != "json" {
		return fmt.Errorf("unknown log format %q; expected console or json", format)
	}
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("invalid log level: %w", err)
	}
	zerolog.SetGlobalLevel(lvl)
	Logger = NewLogger(out, format)
	return nil
}
