// Package registry holds the in-memory property registry built from a
// lexical database dump.
//
// A Registry maps record ids to property bags. Each Bag maps a property name
// (translations, relations, dates) to a Qualified value: an ordered mapping
// from qualifier (language, relation type, date boundary) to the list of
// values found for it.
//
// The registry is built once per run with Build, repaired in place with
// Patch, restricted to the ids present in the target with Restrict, and then
// read by the merge engine.
package registry
