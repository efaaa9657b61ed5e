// Package logging builds the application logger.
package logging

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// New creates a logger at the named level. Unknown level names fall
// back to info. Debug level gets the human console writer; everything
// else writes JSON lines to stderr.
func New(level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}

	var output io.Writer = os.Stderr
	if lvl <= zerolog.DebugLevel {
		output = zerolog.ConsoleWriter{
			Out:        os.Stderr,
			TimeFormat: time.RFC3339,
		}
	}
	return zerolog.New(output).Level(lvl).With().Timestamp().Logger()
}
