package logging

import (
	"io"
	"time"

	"github.com/rs/zerolog"
)

// NewLogger creates a human-readable zerolog.Logger writing to w. Unknown or
// empty levels fall back to info.
func NewLogger(w io.Writer, logLevel string) zerolog.Logger {
	output := zerolog.ConsoleWriter{
		Out:        w,
		NoColor:    true,
		TimeFormat: time.RFC3339,
	}

	logger := zerolog.New(output).With().Timestamp().Str("service", "qcft").Logger()

	level, err := zerolog.ParseLevel(logLevel)
	if err != nil || logLevel == "" {
		level = zerolog.InfoLevel
	}

	return logger.Level(level)
}
