// Package merge projects registry properties onto the nodes of a target
// document without duplicating what is already there.
package merge

import (
	"fmt"
	"log/slog"

	"github.com/c360studio/lexmerge/registry"
	"github.com/c360studio/lexmerge/tree"
)

// Stats counts the additions of a merge run.
type Stats struct {
	Property string   `json:"property"`
	Elements int      `json:"elements"`
	Entries  []string `json:"entries"`
}

// Summary renders the one-line run report.
func (s Stats) Summary() string {
	return fmt.Sprintf("added %d %s to %d entries.", s.Elements, s.Property, len(s.Entries))
}

// Engine runs merges.
type Engine struct {
	logger *slog.Logger
}

// NewEngine creates a merge engine.
func NewEngine(logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.Default()
	}
	return &Engine{logger: logger}
}

// Merge adds every (qualifier, value) of property from the bag matching each
// node of kind, unless the inserter reports it present. Registry ids without
// a node are ignored and no nodes are created for them. Nodes are visited in
// document order.
func (e *Engine) Merge(doc tree.Document, kind string, reg *registry.Registry, property string, ins Inserter) Stats {
	nodes := doc.Select(kind)

	ids := make(map[string]struct{}, len(nodes))
	for _, n := range nodes {
		if id, ok := tree.ID(n); ok {
			ids[id] = struct{}{}
		}
	}
	matched := reg.Restrict(func(id string) bool {
		_, ok := ids[id]
		return ok
	})
	e.logger.Debug("Matched registry to document",
		slog.String("kind", kind),
		slog.Int("nodes", len(nodes)),
		slog.Int("registry", reg.Len()),
		slog.Int("matched", matched.Len()))

	stats := Stats{Property: property}
	touched := make(map[string]bool)
	for _, n := range nodes {
		id, ok := tree.ID(n)
		if !ok {
			e.logger.Warn("Skipping node without xml:id", slog.String("kind", kind))
			continue
		}
		bag, ok := matched.Get(id)
		if !ok {
			continue
		}
		for qualifier, value := range bag.Property(property).Pairs() {
			if ins.Has(n, qualifier, value) {
				continue
			}
			ins.Add(n, qualifier, value)
			stats.Elements++
			if !touched[id] {
				touched[id] = true
				stats.Entries = append(stats.Entries, id)
			}
		}
	}
	return stats
}
