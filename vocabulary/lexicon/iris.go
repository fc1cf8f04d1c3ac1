package lexicon

// Namespace is the base IRI prefix for lexicon vocabulary terms.
const Namespace = "https://lexmerge.dev/ontology/lexicon/"

// EntityNamespace is the base IRI for lexicon entity instances.
const EntityNamespace = "https://lexmerge.dev/entity/lexicon/"

// XMLNamespace is the namespace of the reserved xml: attribute prefix.
const XMLNamespace = "http://www.w3.org/XML/1998/namespace"

// Standard ontology IRIs without a semstreams constant.
const (
	// DcCoverage is the Dublin Core coverage property, used for date bounds.
	DcCoverage = "http://purl.org/dc/terms/coverage"

	// DcIsPartOf is the Dublin Core isPartOf property.
	DcIsPartOf = "http://purl.org/dc/terms/isPartOf"

	// DcHasPart is the Dublin Core hasPart property.
	DcHasPart = "http://purl.org/dc/terms/hasPart"

	// DcIsReferencedBy is the Dublin Core isReferencedBy property.
	DcIsReferencedBy = "http://purl.org/dc/terms/isReferencedBy"

	// DcReferences is the Dublin Core references property.
	DcReferences = "http://purl.org/dc/terms/references"
)

// ClassEntry is the RDF class of a lexical entry.
const ClassEntry = Namespace + "Entry"
