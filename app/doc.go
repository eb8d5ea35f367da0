// Package app holds the demo services for the walkthrough: an output
// contract (Writer) with a zerolog-backed implementation, an Operation whose
// identifier makes lifetime policy visible, and a Greeter root service.
//
// NewContainer is the composition root: the one place where service IDs,
// lifetimes and producers come together. Everything below it receives its
// dependencies through constructor parameters and never touches the
// container.
package app
