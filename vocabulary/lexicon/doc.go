// Package lexicon provides the predicate catalogue for lexical resources.
//
// Lexicon predicates describe what a dump record contributes to an entry of
// the target dictionary or thesaurus:
//   - Translations keyed by language code
//   - Typed relations to other entries
//   - Date range boundaries of thesaurus categories
//
// # Semstreams Integration
//
// Registered predicate names follow the dotted notation used across the
// vocabularies (lexicon.category.property) and carry standard IRIs, so the
// repaired relation graph can be exported as RDF:
//
//	lexicon.relation.partOf     -> skos:broader
//	lexicon.relation.contains   -> skos:narrower
//	lexicon.translation.value   -> skos:altLabel
//
// Relation types as they appear in the dump (partOf, contains, ...) are the
// Predicate values used inside the registry. RelationPredicate maps them onto
// their registered dotted names.
//
// # Identifiers
//
// Dump records are keyed by an opaque id. Target entries carry the same id in
// their xml:id attribute, prefixed with IDPrefix:
//
//	dump:   113
//	target: <entry xml:id="tla113">
package lexicon
