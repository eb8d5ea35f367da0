package ioc

import "strconv"

// Lifetime governs how long a constructed instance is reused before the
// resolver builds a new one.
type Lifetime int

const (
	// Transient builds a fresh instance on every resolution.
	Transient Lifetime = iota

	// Singleton builds one instance lazily on first resolution and returns
	// that same instance for the lifetime of the Resolver.
	Singleton
)

// String returns a lowercase name suitable for error messages and listings.
func (l Lifetime) String() string {
	switch l {
	case Transient:
		return "transient"
	case Singleton:
		return "singleton"
	default:
		return "lifetime(" + strconv.Itoa(int(l)) + ")"
	}
}
