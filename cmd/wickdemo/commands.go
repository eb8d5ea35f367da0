package main

import (
	"fmt"
	"io"

	"github.com/urfave/cli/v2"

	"github.com/mfadel/wick/app"
	"github.com/mfadel/wick/ioc"
)

// runCommand resolves the greeter once and runs it. This is the walkthrough's
// "normal" path: one Resolve call at startup, constructor injection below.
func runCommand() *cli.Command {
	return &cli.Command{
		Name:  "run",
		Usage: "assemble the object graph once and run the greeter",
		Action: func(c *cli.Context) error {
			rv := ioc.NewResolver(app.NewContainer(c.App.Writer))

			greeter, err := ioc.ResolveAs[*app.Greeter](rv, app.IDGreeter)
			if err != nil {
				return err
			}

			greeter.Run()
			return nil
		},
	}
}

// lifetimeReport captures instance identities observed across two root
// resolutions, making the Transient/Singleton split visible.
type lifetimeReport struct {
	GreeterDistinct   bool
	WriterDistinct    bool
	OperationShared   bool
	FirstOperationID  string
	SecondOperationID string
}

// observeLifetimes resolves the demo services twice and records which
// instances were rebuilt and which were reused.
func observeLifetimes(rv *ioc.Resolver) (lifetimeReport, error) {
	firstGreeter, err := ioc.ResolveAs[*app.Greeter](rv, app.IDGreeter)
	if err != nil {
		return lifetimeReport{}, err
	}
	secondGreeter, err := ioc.ResolveAs[*app.Greeter](rv, app.IDGreeter)
	if err != nil {
		return lifetimeReport{}, err
	}

	firstWriter, err := ioc.ResolveAs[*app.ConsoleWriter](rv, app.IDWriter)
	if err != nil {
		return lifetimeReport{}, err
	}
	secondWriter, err := ioc.ResolveAs[*app.ConsoleWriter](rv, app.IDWriter)
	if err != nil {
		return lifetimeReport{}, err
	}

	return lifetimeReport{
		GreeterDistinct:   firstGreeter != secondGreeter,
		WriterDistinct:    firstWriter != secondWriter,
		OperationShared:   firstGreeter.Operation() == secondGreeter.Operation(),
		FirstOperationID:  firstGreeter.Operation().ID(),
		SecondOperationID: secondGreeter.Operation().ID(),
	}, nil
}

func (r lifetimeReport) render(w io.Writer) {
	_, _ = fmt.Fprintf(w, "greeter    transient  rebuilt=%v\n", r.GreeterDistinct)
	_, _ = fmt.Fprintf(w, "writer     transient  rebuilt=%v\n", r.WriterDistinct)
	_, _ = fmt.Fprintf(w, "operation  singleton  shared=%v\n", r.OperationShared)
	_, _ = fmt.Fprintf(w, "operation id, first resolution : %s\n", r.FirstOperationID)
	_, _ = fmt.Fprintf(w, "operation id, second resolution: %s\n", r.SecondOperationID)
}

// lifetimesCommand resolves the graph twice and prints which instances were
// rebuilt (Transient) and which were reused (Singleton).
func lifetimesCommand() *cli.Command {
	return &cli.Command{
		Name:  "lifetimes",
		Usage: "resolve the graph twice and show transient vs singleton behavior",
		Action: func(c *cli.Context) error {
			rv := ioc.NewResolver(app.NewContainer(c.App.Writer))

			report, err := observeLifetimes(rv)
			if err != nil {
				return err
			}

			report.render(c.App.Writer)
			return nil
		},
	}
}

// renderGraph prints every registration: ID, lifetime and declared deps.
func renderGraph(reg *ioc.Registry, w io.Writer) error {
	for _, id := range reg.IDs() {
		r, err := reg.Lookup(id)
		if err != nil {
			return err
		}

		deps := ""
		for i, dep := range r.Deps {
			if i > 0 {
				deps += ", "
			}
			deps += string(dep)
		}
		_, _ = fmt.Fprintf(w, "%-10s %-9s [%s]\n", string(r.ID), r.Lifetime, deps)
	}
	return nil
}

// graphCommand lists the demo registrations in deterministic order.
func graphCommand() *cli.Command {
	return &cli.Command{
		Name:  "graph",
		Usage: "list registered services with lifetimes and dependencies",
		Action: func(c *cli.Context) error {
			return renderGraph(app.NewContainer(c.App.Writer), c.App.Writer)
		},
	}
}
