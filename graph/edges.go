package graph

import (
	"iter"

	"github.com/c360studio/lexmerge/registry"
	"github.com/c360studio/lexmerge/vocabulary/lexicon"
)

// Edge is a single typed relation between two registry ids.
type Edge struct {
	Subject   string
	Predicate lexicon.Predicate
	Object    string
}

// Outgoing yields the relation edges of a single bag, grouped by predicate.
func Outgoing(id string, bag registry.Bag) iter.Seq[Edge] {
	return func(yield func(Edge) bool) {
		for predicate, target := range bag.Property(lexicon.PropertyRelations).Pairs() {
			if !yield(Edge{Subject: id, Predicate: lexicon.Predicate(predicate), Object: target}) {
				return
			}
		}
	}
}
