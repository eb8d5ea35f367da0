package ioc

import (
	"reflect"
	"sync"
)

// Resolver constructs object graphs from a Registry.
//
// Resolution is depth-first over the declared dependency IDs, in declaration
// order. Singleton instances are cached on first construction and reused;
// Transient registrations produce a fresh instance per resolution.
//
// A Resolver is safe for concurrent use: the lock covers the whole resolution
// call, so under concurrent first resolution exactly one instance is ever
// constructed per Singleton ID. Producers are assumed fast and non-blocking,
// matching the container's bootstrap-only role.
type Resolver struct {
	reg *Registry

	mu         sync.Mutex
	singletons map[ID]any
}

// NewResolver returns a Resolver over reg with an empty singleton cache.
func NewResolver(reg *Registry) *Resolver {
	return &Resolver{
		reg:        reg,
		singletons: make(map[ID]any),
	}
}

// Resolve builds and returns the instance registered under id, recursively
// resolving its declared dependencies first.
//
// It fails with:
//   - NotRegisteredError if id (or any transitive dependency) is unknown
//   - CycleError if the dependency graph cycles, reporting the chain
//   - ConstructionError if a producer returns an error
//
// Repeated calls return the same instance for Singleton registrations and
// distinct instances for Transient ones.
func (r *Resolver) Resolve(id ID) (any, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.resolve(id, nil)
}

// MustResolve is Resolve panicking on error, for composition roots that treat
// any resolution failure as fatal.
func (r *Resolver) MustResolve(id ID) any {
	inst, err := r.Resolve(id)
	if err != nil {
		panic(err)
	}
	return inst
}

// resolve walks the graph while holding r.mu. chain carries the IDs currently
// under construction in this call, outermost first; revisiting one is a cycle.
func (r *Resolver) resolve(id ID, chain []ID) (any, error) {
	reg, err := r.reg.Lookup(id)
	if err != nil {
		return nil, err
	}

	for i, inProgress := range chain {
		if inProgress == id {
			cycle := make([]ID, 0, len(chain)-i+1)
			cycle = append(cycle, chain[i:]...)
			cycle = append(cycle, id)
			return nil, CycleError{Chain: cycle}
		}
	}

	if reg.Lifetime == Singleton {
		if inst, ok := r.singletons[id]; ok {
			return inst, nil
		}
	}

	chain = append(chain, id)

	deps := make([]any, len(reg.Deps))
	for i, depID := range reg.Deps {
		dep, err := r.resolve(depID, chain)
		if err != nil {
			// Propagate as-is so the innermost failure keeps its type.
			return nil, err
		}
		deps[i] = dep
	}

	inst, err := reg.Build(deps)
	if err != nil {
		return nil, ConstructionError{ID: id, Err: err}
	}

	if reg.Lifetime == Singleton {
		r.singletons[id] = inst
	}
	return inst, nil
}

// ResolveAs resolves id and asserts the instance to T.
//
// It returns WrongTypeError when the registered producer built something that
// is not assignable to T. reflect is used only to render the error message.
func ResolveAs[T any](r *Resolver, id ID) (T, error) {
	var zero T

	inst, err := r.Resolve(id)
	if err != nil {
		return zero, err
	}

	v, ok := inst.(T)
	if !ok {
		// A producer may legally return a nil instance; reflect.TypeOf is
		// nil for it, so render the type by hand.
		gotType := "<nil>"
		if inst != nil {
			gotType = reflect.TypeOf(inst).String()
		}
		return zero, WrongTypeError{
			ID:      id,
			GotType: gotType,
		}
	}
	return v, nil
}

// MustResolveAs is ResolveAs panicking on error.
func MustResolveAs[T any](r *Resolver, id ID) T {
	v, err := ResolveAs[T](r, id)
	if err != nil {
		panic(err)
	}
	return v
}
