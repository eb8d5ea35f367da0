// Package wick is a walkthrough of dependency injection in Go, built around
// a minimal, reflection-free container.
//
// The repository is organized as a progression:
//
//   - examples/manual: plain constructor injection, no container at all
//   - examples/container: the same object graph wired through the ioc package
//   - examples/dig: the same graph wired with uber-go/dig for contrast
//
// The ioc package is the core: a registry mapping service identifiers to
// explicit producer functions plus a lifetime policy (Transient or
// Singleton), and a resolver that walks the declared dependency graph
// depth-first, caching singletons and detecting cycles.
//
// The app package and cmd/wickdemo hold the demo console application: a
// logger contract, a singleton-identifier holder, and a greeter, assembled
// once in a composition root at startup.
//
// Wiring stays explicit: producers declare their dependency identifiers
// themselves, so there is no runtime type introspection on the construction
// path and no ambient global container.
package wick
