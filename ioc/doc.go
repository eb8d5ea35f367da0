// Package ioc implements a minimal, reflection-free dependency injection
// container: a Registry of explicit producer functions keyed by service ID,
// and a Resolver that walks the declared dependency graph depth-first while
// honoring Transient and Singleton lifetimes.
//
// Design goals:
//   - Explicit wiring: producers declare their own dependency IDs; nothing is
//     discovered by inspecting constructor signatures at runtime.
//   - Fail fast: unknown IDs, duplicate registrations and dependency cycles
//     surface as typed errors during the single bootstrap resolution.
//   - Deterministic: dependencies resolve in declaration order, so behavior
//     is reproducible in tests.
//
// The container does no logging and has no recovery path. It is meant to run
// once, at startup, inside a composition root; everything else in the program
// receives its dependencies through constructor parameters.
package ioc
