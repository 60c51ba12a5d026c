package gen

import "virtualtd-service/internal/names"

// NameRegistry wraps a name supplier with the uniqueness set the supplier
// itself does not guarantee. Candidates already taken are rejected and
// redrawn, capped like every other sampling loop.
type NameRegistry struct {
	supplier names.Supplier
	taken    map[string]struct{}
}

// NewNameRegistry builds an empty registry over the supplier.
func NewNameRegistry(supplier names.Supplier) *NameRegistry {
	return &NameRegistry{
		supplier: supplier,
		taken:    make(map[string]struct{}),
	}
}

// Next returns a fresh unique name for the scope and reserves it.
func (r *NameRegistry) Next(scope names.Scope) (string, error) {
	for attempt := 1; attempt <= maxResamples; attempt++ {
		candidate := r.supplier.Next(scope)
		if _, ok := r.taken[candidate]; !ok {
			r.taken[candidate] = struct{}{}
			return candidate, nil
		}
	}
	return "", &GenerationError{Kind: "unique_" + string(scope) + "_name", Attempts: maxResamples}
}

// Reserve marks an externally chosen name as taken.
func (r *NameRegistry) Reserve(name string) {
	r.taken[name] = struct{}{}
}

// Taken reports whether a name has been handed out or reserved.
func (r *NameRegistry) Taken(name string) bool {
	_, ok := r.taken[name]
	return ok
}
