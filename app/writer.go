package app

import "github.com/rs/zerolog"

// Writer is the output contract injected into the demo services. Depending on
// this interface rather than a concrete logger keeps the services testable
// with an in-memory fake.
type Writer interface {
	WriteLine(msg string)
}

// ConsoleWriter writes lines through a zerolog console logger.
type ConsoleWriter struct {
	log *zerolog.Logger
}

// NewConsoleWriter returns a ConsoleWriter over log.
func NewConsoleWriter(log *zerolog.Logger) *ConsoleWriter {
	return &ConsoleWriter{log: log}
}

// WriteLine implements Writer.
func (w *ConsoleWriter) WriteLine(msg string) {
	w.log.Info().Msg(msg)
}
