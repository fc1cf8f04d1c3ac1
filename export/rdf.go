// Package export serializes a repaired registry as RDF.
//
// Every registry entry becomes a subject under lexicon.EntityNamespace.
// Translations are language tagged literals, relations link entries and date
// boundaries are integer literals. Predicate IRIs come from the vocabulary
// registrations in package lexicon.
package export

import (
	"fmt"
	"iter"
	"net/url"
	"strconv"
	"strings"

	"github.com/c360studio/lexmerge/graph"
	"github.com/c360studio/lexmerge/registry"
	"github.com/c360studio/lexmerge/vocabulary/lexicon"
	"github.com/c360studio/semstreams/vocabulary"
)

const (
	rdfType     = "http://www.w3.org/1999/02/22-rdf-syntax-ns#type"
	xsdInteger  = "http://www.w3.org/2001/XMLSchema#integer"
	skosConcept = "http://www.w3.org/2004/02/skos/core#Concept"
)

// Profile determines which type assertions are included in the export.
type Profile string

const (
	// ProfileMinimal exports property triples only.
	ProfileMinimal Profile = "minimal"

	// ProfileTyped adds lexicon:Entry and skos:Concept type assertions.
	ProfileTyped Profile = "typed"
)

// ParseProfile converts a command line value to a Profile.
func ParseProfile(s string) (Profile, error) {
	switch p := Profile(strings.ToLower(s)); p {
	case ProfileMinimal, ProfileTyped:
		return p, nil
	case "":
		return ProfileMinimal, nil
	}
	return "", fmt.Errorf("unknown profile %q", s)
}

// Term is an RDF node in object position.
type Term struct {
	IRI      string
	Value    string
	Lang     string
	Datatype string
}

// IsIRI reports whether the term names a resource.
func (t Term) IsIRI() bool {
	return t.IRI != ""
}

// IRI returns a resource term.
func IRI(iri string) Term {
	return Term{IRI: iri}
}

// Literal returns a plain literal, language tagged when lang is set.
func Literal(value, lang string) Term {
	return Term{Value: value, Lang: lang}
}

// Typed returns a literal with a datatype.
func Typed(value, datatype string) Term {
	return Term{Value: value, Datatype: datatype}
}

// Triple is one exported statement.
type Triple struct {
	Subject   string
	Predicate string
	Object    Term
}

// EntityIRI returns the IRI of a registry entry.
func EntityIRI(id string) string {
	return lexicon.EntityNamespace + url.PathEscape(id)
}

// PredicateIRI returns the standard IRI of a registered predicate, or the
// lexicon namespace form for unregistered names.
func PredicateIRI(name string) string {
	if meta := vocabulary.GetPredicateMetadata(name); meta != nil && meta.StandardIRI != "" {
		return meta.StandardIRI
	}
	return lexicon.Namespace + name
}

// Triples yields the statements of every registry entry in registry order.
// The triples of one subject are always adjacent.
func Triples(reg *registry.Registry, profile Profile) iter.Seq[Triple] {
	return func(yield func(Triple) bool) {
		for id, bag := range reg.All() {
			subject := EntityIRI(id)
			emit := func(predicate string, object Term) bool {
				return yield(Triple{Subject: subject, Predicate: predicate, Object: object})
			}

			if profile == ProfileTyped {
				if !emit(rdfType, IRI(lexicon.ClassEntry)) || !emit(rdfType, IRI(skosConcept)) {
					return
				}
			}

			translation := PredicateIRI(lexicon.TranslationValue)
			for lang, value := range bag.Property(lexicon.PropertyTranslations).Pairs() {
				if !emit(translation, Literal(value, lang)) {
					return
				}
			}

			for edge := range graph.Outgoing(id, bag) {
				name, ok := lexicon.RelationPredicate(edge.Predicate)
				if !ok {
					name = "lexicon.relation." + string(edge.Predicate)
				}
				if !emit(PredicateIRI(name), IRI(EntityIRI(edge.Object))) {
					return
				}
			}

			for bound, value := range bag.Property(lexicon.PropertyDates).Pairs() {
				name, ok := lexicon.DatePredicate(bound)
				if !ok {
					continue
				}
				if !emit(PredicateIRI(name), yearLiteral(value)) {
					return
				}
			}
		}
	}
}

func yearLiteral(value string) Term {
	value = strings.TrimSpace(value)
	if _, err := strconv.Atoi(value); err != nil {
		return Literal(value, "")
	}
	return Typed(value, xsdInteger)
}
