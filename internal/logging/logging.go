package logging

import (
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Setup configures the process-wide log level and returns the root logger.
// Components derive their own logger via Component so every line carries a
// component field.
func Setup(verbose bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}

	out := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	logger := zerolog.New(out).Level(level).With().Timestamp().Logger()
	return logger
}

func Component(logger zerolog.Logger, name string) zerolog.Logger {
	return logger.With().Str("component", name).Logger()
}
