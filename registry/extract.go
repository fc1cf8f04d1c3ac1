package registry

import (
	"fmt"
	"iter"
)

// Record is a dump record addressable by id.
type Record interface {
	ID() string
}

// Extractor derives a partial property bag from a single record. Extractors
// skip malformed items instead of failing.
type Extractor[R Record] func(R) Bag

// Build runs every extractor over every record and collects the resulting
// bags. Records without an id are skipped. A record that yields nothing still
// gets an empty bag.
func Build[R Record](records iter.Seq[R], extractors ...Extractor[R]) *Registry {
	reg := New()
	for rec := range records {
		id := rec.ID()
		if id == "" {
			continue
		}
		bag := Bag{}
		for _, extract := range extractors {
			bag.Merge(extract(rec))
		}
		reg.Put(id, bag)
	}
	return reg
}

// PatchFunc rewrites the bag of a single id. It may read and append to other
// bags of reg.
type PatchFunc func(id string, bag Bag, reg *Registry) (Bag, error)

// Patch applies each patch as a full sweep over the registry before the next
// patch starts.
func Patch(reg *Registry, patches ...PatchFunc) error {
	for i, patch := range patches {
		for _, id := range reg.IDs() {
			bag, err := patch(id, reg.bags[id], reg)
			if err != nil {
				return fmt.Errorf("patch %d on %s: %w", i, id, err)
			}
			if bag == nil {
				bag = Bag{}
			}
			reg.bags[id] = bag
		}
	}
	return nil
}
