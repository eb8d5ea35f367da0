package ioc

import (
	"errors"
	"strconv"
)

// ErrNilProducer is returned by Register when the producer function is nil.
var ErrNilProducer = errors.New("ioc: nil producer")

// NotRegisteredError is returned when an ID has no Registration.
//
// Resolving an unknown ID is always an error, never a silent nil.
type NotRegisteredError struct{ ID ID }

// Error implements the error interface.
func (e NotRegisteredError) Error() string {
	// Example: ioc: service "logger" not registered
	return "ioc: service " + strconv.Quote(string(e.ID)) + " not registered"
}

// AlreadyRegisteredError is returned by Register when the ID already has a
// Registration. Overwriting is never silent; re-registration is a wiring bug.
type AlreadyRegisteredError struct{ ID ID }

// Error implements the error interface.
func (e AlreadyRegisteredError) Error() string {
	// Example: ioc: service "logger" already registered
	return "ioc: service " + strconv.Quote(string(e.ID)) + " already registered"
}

// CycleError is returned when resolution revisits an ID that is already being
// constructed in the current call chain.
//
// Chain holds the identifiers from the first occurrence of the cycling ID up
// to and including its revisit, e.g. [a b a].
type CycleError struct{ Chain []ID }

// Error implements the error interface.
func (e CycleError) Error() string {
	// Example: ioc: cyclic dependency: "a" -> "b" -> "a"
	msg := "ioc: cyclic dependency: "
	for i, id := range e.Chain {
		if i > 0 {
			msg += " -> "
		}
		msg += strconv.Quote(string(id))
	}
	return msg
}

// ConstructionError is returned when a producer itself fails. The producer's
// error is wrapped, never swallowed, and logging it is the caller's job.
type ConstructionError struct {
	// ID is the service whose producer failed.
	ID ID

	// Err is the error the producer returned.
	Err error
}

// Error implements the error interface.
func (e ConstructionError) Error() string {
	// Example: ioc: building service "db": dial tcp: connection refused
	return "ioc: building service " + strconv.Quote(string(e.ID)) + ": " + e.Err.Error()
}

// Unwrap exposes the producer's error to errors.Is / errors.As.
func (e ConstructionError) Unwrap() error { return e.Err }

// WrongTypeError is returned by ResolveAs when the resolved instance is not
// assignable to the requested type.
type WrongTypeError struct {
	// ID is the service that was resolved.
	ID ID

	// GotType is reflect.TypeOf(instance).String() for the resolved value,
	// or "<nil>" when the producer returned a nil instance.
	GotType string
}

// Error implements the error interface.
func (e WrongTypeError) Error() string {
	// Example: ioc: service "logger" has wrong type (*app.Greeter)
	return "ioc: service " + strconv.Quote(string(e.ID)) + " has wrong type (" + e.GotType + ")"
}
