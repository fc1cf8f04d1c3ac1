package registry

import (
	"iter"
	"slices"
)

// Registry maps record ids to property bags. Iteration follows the order in
// which ids were first added.
type Registry struct {
	ids  []string
	bags map[string]Bag
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{bags: make(map[string]Bag)}
}

// Put stores bag under id. A bag stored under an existing id is merged into
// the existing one.
func (r *Registry) Put(id string, bag Bag) {
	existing, ok := r.bags[id]
	if !ok {
		r.ids = append(r.ids, id)
		existing = Bag{}
		r.bags[id] = existing
	}
	existing.Merge(bag)
}

// Get returns the bag of id.
func (r *Registry) Get(id string) (Bag, bool) {
	bag, ok := r.bags[id]
	return bag, ok
}

// Has reports whether id is a registry key.
func (r *Registry) Has(id string) bool {
	_, ok := r.bags[id]
	return ok
}

// Len returns the number of ids.
func (r *Registry) Len() int {
	return len(r.ids)
}

// IDs returns the ids in insertion order.
func (r *Registry) IDs() []string {
	return slices.Clone(r.ids)
}

// All yields every id with its bag in insertion order.
func (r *Registry) All() iter.Seq2[string, Bag] {
	return func(yield func(string, Bag) bool) {
		for _, id := range r.ids {
			if !yield(id, r.bags[id]) {
				return
			}
		}
	}
}

// Restrict returns a registry holding only the ids for which keep is true.
// Bags are shared with r.
func (r *Registry) Restrict(keep func(id string) bool) *Registry {
	out := New()
	for _, id := range r.ids {
		if keep(id) {
			out.ids = append(out.ids, id)
			out.bags[id] = r.bags[id]
		}
	}
	return out
}
