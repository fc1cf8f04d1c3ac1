package lexicon

// inverses is symmetric: every key is also the value of its own inverse.
var inverses = map[Predicate]Predicate{
	PartOf:       Contains,
	Contains:     PartOf,
	Predecessor:  Successor,
	Successor:    Predecessor,
	RootOf:       Root,
	Root:         RootOf,
	ReferencedBy: Referencing,
	Referencing:  ReferencedBy,
}

// Inverse returns the inverse relation type of p.
// ok is false for relation types outside the closed set.
func Inverse(p Predicate) (inverse Predicate, ok bool) {
	inverse, ok = inverses[p]
	return inverse, ok
}
