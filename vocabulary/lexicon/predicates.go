package lexicon

import "github.com/c360studio/semstreams/vocabulary"

// Property names of a property bag.
const (
	// PropertyTranslations holds translations keyed by language code.
	PropertyTranslations = "translations"

	// PropertyRelations holds relation targets keyed by relation type.
	PropertyRelations = "relations"

	// PropertyDates holds date range boundaries keyed by Beginning/End.
	PropertyDates = "dates"
)

// Predicate is a relation type as it appears in the dump.
type Predicate string

// Relation types. Each has exactly one inverse, see Inverse.
const (
	PartOf       Predicate = "partOf"
	Contains     Predicate = "contains"
	Predecessor  Predicate = "predecessor"
	Successor    Predicate = "successor"
	RootOf       Predicate = "rootOf"
	Root         Predicate = "root"
	ReferencedBy Predicate = "referencedBy"
	Referencing  Predicate = "referencing"
)

// Date range boundary qualifiers.
const (
	Beginning = "beginning"
	End       = "end"
)

// Registered predicate names.
const (
	// TranslationValue is a translation of an entry into some language.
	TranslationValue = "lexicon.translation.value"

	// RelationPartOf links an entry to the entry it is part of.
	RelationPartOf = "lexicon.relation.partOf"

	// RelationContains links an entry to an entry it contains.
	RelationContains = "lexicon.relation.contains"

	// RelationPredecessor links an entry to its predecessor.
	RelationPredecessor = "lexicon.relation.predecessor"

	// RelationSuccessor links an entry to its successor.
	RelationSuccessor = "lexicon.relation.successor"

	// RelationRootOf links a root to an entry derived from it.
	RelationRootOf = "lexicon.relation.rootOf"

	// RelationRoot links an entry to its root.
	RelationRoot = "lexicon.relation.root"

	// RelationReferencedBy links an entry to an entry referring to it.
	RelationReferencedBy = "lexicon.relation.referencedBy"

	// RelationReferencing links an entry to an entry it refers to.
	RelationReferencing = "lexicon.relation.referencing"

	// DateBeginning is the first year covered by a category.
	DateBeginning = "lexicon.date.beginning"

	// DateEnd is the last year covered by a category.
	DateEnd = "lexicon.date.end"
)

var relationPredicates = map[Predicate]string{
	PartOf:       RelationPartOf,
	Contains:     RelationContains,
	Predecessor:  RelationPredecessor,
	Successor:    RelationSuccessor,
	RootOf:       RelationRootOf,
	Root:         RelationRoot,
	ReferencedBy: RelationReferencedBy,
	Referencing:  RelationReferencing,
}

// RelationPredicate returns the registered predicate name of a relation type.
func RelationPredicate(p Predicate) (string, bool) {
	name, ok := relationPredicates[p]
	return name, ok
}

// DatePredicate returns the registered predicate name of a date boundary.
func DatePredicate(bound string) (string, bool) {
	switch bound {
	case Beginning:
		return DateBeginning, true
	case End:
		return DateEnd, true
	}
	return "", false
}

func init() {
	vocabulary.Register(TranslationValue,
		vocabulary.WithDescription("Translation of the entry, language tagged"),
		vocabulary.WithDataType("string"),
		vocabulary.WithIRI(vocabulary.SkosAltLabel))

	vocabulary.Register(RelationPartOf,
		vocabulary.WithDescription("Entry this entry is part of"),
		vocabulary.WithDataType("entity_id"),
		vocabulary.WithIRI(vocabulary.SkosBroader))

	vocabulary.Register(RelationContains,
		vocabulary.WithDescription("Entry contained in this entry"),
		vocabulary.WithDataType("entity_id"),
		vocabulary.WithIRI(vocabulary.SkosNarrower))

	vocabulary.Register(RelationPredecessor,
		vocabulary.WithDescription("Entry preceding this entry"),
		vocabulary.WithDataType("entity_id"),
		vocabulary.WithIRI(Namespace+"predecessor"))

	vocabulary.Register(RelationSuccessor,
		vocabulary.WithDescription("Entry succeeding this entry"),
		vocabulary.WithDataType("entity_id"),
		vocabulary.WithIRI(Namespace+"successor"))

	vocabulary.Register(RelationRootOf,
		vocabulary.WithDescription("Entry derived from this root"),
		vocabulary.WithDataType("entity_id"),
		vocabulary.WithIRI(vocabulary.ProvHadPrimarySource))

	vocabulary.Register(RelationRoot,
		vocabulary.WithDescription("Root this entry is derived from"),
		vocabulary.WithDataType("entity_id"),
		vocabulary.WithIRI(vocabulary.ProvWasDerivedFrom))

	vocabulary.Register(RelationReferencedBy,
		vocabulary.WithDescription("Entry referring to this entry"),
		vocabulary.WithDataType("entity_id"),
		vocabulary.WithIRI(DcIsReferencedBy))

	vocabulary.Register(RelationReferencing,
		vocabulary.WithDescription("Entry this entry refers to"),
		vocabulary.WithDataType("entity_id"),
		vocabulary.WithIRI(DcReferences))

	vocabulary.Register(DateBeginning,
		vocabulary.WithDescription("First year covered, negative for BCE"),
		vocabulary.WithDataType("int"),
		vocabulary.WithIRI(Namespace+"dateFrom"))

	vocabulary.Register(DateEnd,
		vocabulary.WithDescription("Last year covered, negative for BCE"),
		vocabulary.WithDataType("int"),
		vocabulary.WithIRI(Namespace+"dateTo"))
}
