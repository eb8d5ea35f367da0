package app

import "github.com/google/uuid"

// Operation carries an identifier assigned at construction. Comparing the
// identifier across resolutions is how the demo makes lifetime policy
// observable: a Singleton Operation reports the same ID everywhere, a
// Transient one reports a new ID per resolution.
type Operation struct {
	id uuid.UUID
}

// NewOperation returns an Operation with a fresh identifier.
func NewOperation() *Operation {
	return &Operation{id: uuid.New()}
}

// ID returns the identifier assigned when the Operation was constructed.
func (o *Operation) ID() string {
	return o.id.String()
}
