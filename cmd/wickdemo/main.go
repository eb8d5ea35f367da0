// Package main is the demo console application for the walkthrough.
//
// Each subcommand is its own composition root: it assembles the object graph
// once at startup and hands control to the resolved root service. Nothing
// below the command action ever sees the resolver.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v2"
)

func newApp(stdout, stderr io.Writer) *cli.App {
	return &cli.App{
		Name:      "wickdemo",
		Usage:     "dependency injection walkthrough demo",
		Version:   "0.1.0",
		Writer:    stdout,
		ErrWriter: stderr,
		Commands: []*cli.Command{
			runCommand(),
			lifetimesCommand(),
			graphCommand(),
		},
	}
}

func main() {
	app := newApp(os.Stdout, os.Stderr)
	if err := app.Run(os.Args); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
