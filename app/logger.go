package app

import (
	"io"
	"time"

	"github.com/rs/zerolog"

	"github.com/mfadel/wick/app/config"
)

// NewLogger initializes the console logger shared by the demo services. out
// is the process output sink, injected so tests can capture what the demo
// writes.
func NewLogger(cfg *config.Config, out io.Writer) *zerolog.Logger {
	var level zerolog.Level
	switch cfg.Logger.Level {
	case 0:
		level = zerolog.DebugLevel
	case 1:
		level = zerolog.InfoLevel
	case 2:
		level = zerolog.WarnLevel
	case 3:
		level = zerolog.ErrorLevel
	default:
		level = zerolog.InfoLevel
	}

	zerolog.TimeFieldFormat = time.RFC3339
	consoleWriter := zerolog.ConsoleWriter{Out: out}
	logger := zerolog.New(consoleWriter).With().Timestamp().Logger().Level(level)
	return &logger
}
