package ioc

import "slices"

// ID identifies an abstract service contract within a Registry.
//
// IDs are typically defined as package-level constants next to the
// composition root to avoid typos.
//
// Example:
//
//	const (
//	  IDLogger ioc.ID = "logger"
//	  IDGreeter ioc.ID = "greeter"
//	)
type ID string

// Producer builds one service instance from its already-resolved
// dependencies. deps arrive in the exact order the dependency IDs were
// declared at registration time, so a producer can index into it directly:
//
//	func(deps []any) (any, error) {
//	  return NewGreeter(deps[0].(Writer), deps[1].(*Operation)), nil
//	}
type Producer func(deps []any) (any, error)

// Registration ties an ID to its producer, declared dependencies and
// lifetime. Registrations are immutable once stored; the Registry owns them.
type Registration struct {
	// ID is the service identifier.
	ID ID

	// Lifetime is the reuse policy applied by the Resolver.
	Lifetime Lifetime

	// Deps lists the IDs the producer requires, in declaration order.
	Deps []ID

	// Build constructs the instance from the resolved Deps.
	Build Producer
}

// Registry maps service IDs to Registrations. It is populated once during
// bootstrap and read-only afterwards; it performs no construction itself.
type Registry struct {
	regs map[ID]Registration
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{regs: make(map[ID]Registration)}
}

// Register stores a Registration for id.
//
// It fails with:
//   - ErrNilProducer if build is nil
//   - AlreadyRegisteredError if id already has a Registration
//
// deps is copied, so the caller's slice can be reused after Register returns.
func (r *Registry) Register(id ID, lifetime Lifetime, deps []ID, build Producer) error {
	if build == nil {
		return ErrNilProducer
	}
	if _, exists := r.regs[id]; exists {
		return AlreadyRegisteredError{ID: id}
	}

	var owned []ID
	if len(deps) > 0 {
		owned = make([]ID, len(deps))
		copy(owned, deps)
	}

	r.regs[id] = Registration{
		ID:       id,
		Lifetime: lifetime,
		Deps:     owned,
		Build:    build,
	}
	return nil
}

// MustRegister is Register panicking on error. Useful in composition roots
// where a registration failure is a programming mistake, not a runtime
// condition.
func (r *Registry) MustRegister(id ID, lifetime Lifetime, deps []ID, build Producer) {
	if err := r.Register(id, lifetime, deps, build); err != nil {
		panic(err)
	}
}

// Lookup returns the Registration for id, or NotRegisteredError when absent.
func (r *Registry) Lookup(id ID) (Registration, error) {
	reg, ok := r.regs[id]
	if !ok {
		return Registration{}, NotRegisteredError{ID: id}
	}
	return reg, nil
}

// Has reports whether id is registered.
func (r *Registry) Has(id ID) bool {
	_, ok := r.regs[id]
	return ok
}

// IDs returns every registered ID in lexical order. The ordering makes
// listings (and tests over them) deterministic.
func (r *Registry) IDs() []ID {
	ids := make([]ID, 0, len(r.regs))
	for id := range r.regs {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}
