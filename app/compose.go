package app

import (
	"io"

	"github.com/rs/zerolog"

	"github.com/mfadel/wick/app/config"
	"github.com/mfadel/wick/ioc"
)

// Service IDs for the demo graph. Keeping them as constants next to the
// composition root avoids typos and makes the wiring reviewable in one place.
const (
	IDConfig    ioc.ID = "config"
	IDLogger    ioc.ID = "logger"
	IDWriter    ioc.ID = "writer"
	IDOperation ioc.ID = "operation"
	IDGreeter   ioc.ID = "greeter"
)

// NewContainer builds the demo registry. out is the process output sink the
// logger writes to; callers own it (os.Stdout in the binaries, a buffer in
// tests).
//
// Lifetimes:
//   - config, logger, operation: Singleton (one shared instance per process)
//   - writer, greeter: Transient (fresh instance per resolution)
//
// The Transient writer over a Singleton logger mirrors the classic tutorial
// setup: cheap wrappers are rebuilt freely while the expensive shared state
// behind them is constructed once.
func NewContainer(out io.Writer) *ioc.Registry {
	reg := ioc.NewRegistry()

	reg.MustRegister(IDConfig, ioc.Singleton, nil, func([]any) (any, error) {
		return config.NewConfig()
	})

	reg.MustRegister(IDLogger, ioc.Singleton, []ioc.ID{IDConfig}, func(deps []any) (any, error) {
		return NewLogger(deps[0].(*config.Config), out), nil
	})

	reg.MustRegister(IDWriter, ioc.Transient, []ioc.ID{IDLogger}, func(deps []any) (any, error) {
		return NewConsoleWriter(deps[0].(*zerolog.Logger)), nil
	})

	reg.MustRegister(IDOperation, ioc.Singleton, nil, func([]any) (any, error) {
		return NewOperation(), nil
	})

	reg.MustRegister(IDGreeter, ioc.Transient, []ioc.ID{IDWriter, IDOperation, IDConfig}, func(deps []any) (any, error) {
		cfg := deps[2].(*config.Config)
		return NewGreeter(deps[0].(Writer), deps[1].(*Operation), cfg.Demo.Subject, cfg.Demo.Rounds), nil
	})

	return reg
}
