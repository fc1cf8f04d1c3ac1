// Package graph repairs the relation graph held in a registry.
//
// Repair runs two passes. Verify drops edges whose target is not a registry
// key. Mirror adds the inverse of every remaining edge to its target. Verify
// must complete over the whole registry before Mirror starts, otherwise
// mirrored edges could point back at ids that are about to be dropped.
package graph

import (
	"fmt"
	"log/slog"

	"github.com/c360studio/lexmerge/registry"
	"github.com/c360studio/lexmerge/vocabulary/lexicon"
)

// Stats counts what a repair changed.
type Stats struct {
	Dropped   int `json:"dropped"`
	Mirrored  int `json:"mirrored"`
	SelfLoops int `json:"self_loops"`
}

// Repair holds the verify and mirror passes and their counters.
type Repair struct {
	logger *slog.Logger
	stats  Stats
}

// NewRepair creates a relation graph repair.
func NewRepair(logger *slog.Logger) *Repair {
	if logger == nil {
		logger = slog.Default()
	}
	return &Repair{logger: logger}
}

// Patches returns Verify followed by Mirror.
func (r *Repair) Patches() []registry.PatchFunc {
	return []registry.PatchFunc{r.Verify, r.Mirror}
}

// Stats returns the counters accumulated so far.
func (r *Repair) Stats() Stats {
	return r.stats
}

// Run applies Verify and Mirror to reg.
func (r *Repair) Run(reg *registry.Registry) (Stats, error) {
	if err := registry.Patch(reg, r.Patches()...); err != nil {
		return r.stats, err
	}
	r.logger.Debug("Relation graph repaired",
		slog.Int("dropped", r.stats.Dropped),
		slog.Int("mirrored", r.stats.Mirrored),
		slog.Int("self_loops", r.stats.SelfLoops))
	return r.stats, nil
}

// Verify keeps only relation targets that are registry keys. Relation types
// left without targets stay present with an empty list.
func (r *Repair) Verify(id string, bag registry.Bag, reg *registry.Registry) (registry.Bag, error) {
	rels := bag.Property(lexicon.PropertyRelations)
	if rels == nil {
		return bag, nil
	}
	for _, predicate := range rels.Qualifiers() {
		targets := rels.Get(predicate)
		kept := make([]string, 0, len(targets))
		for _, target := range targets {
			if reg.Has(target) {
				kept = append(kept, target)
				continue
			}
			r.stats.Dropped++
			r.logger.Debug("Dropped dangling relation",
				slog.String("id", id),
				slog.String("predicate", predicate),
				slog.String("target", target))
		}
		rels.Set(predicate, kept)
	}
	return bag, nil
}

// Mirror appends the inverse of every edge of id to the edge's target.
// Self references are skipped with a warning. A relation type without an
// inverse aborts the pass.
func (r *Repair) Mirror(id string, bag registry.Bag, reg *registry.Registry) (registry.Bag, error) {
	for edge := range Outgoing(id, bag) {
		inverse, ok := lexicon.Inverse(edge.Predicate)
		if !ok {
			return nil, fmt.Errorf("%s on %s: %w", edge.Predicate, id, ErrUnmappedPredicate)
		}
		if edge.Object == id {
			r.stats.SelfLoops++
			r.logger.Warn("Relation points at its own entry",
				slog.String("id", id),
				slog.String("predicate", string(edge.Predicate)))
			continue
		}
		targetBag, ok := reg.Get(edge.Object)
		if !ok {
			continue
		}
		inv := targetBag.Ensure(lexicon.PropertyRelations)
		if inv.Contains(string(inverse), id) {
			continue
		}
		inv.Append(string(inverse), id)
		r.stats.Mirrored++
	}
	return bag, nil
}
