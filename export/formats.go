package export

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"iter"
	"regexp"
	"sort"
	"strings"

	"github.com/c360studio/lexmerge/vocabulary/lexicon"
)

// Format specifies the output serialization format.
type Format string

const (
	// FormatTurtle produces Turtle (.ttl) output.
	FormatTurtle Format = "turtle"

	// FormatNTriples produces N-Triples (.nt) output.
	FormatNTriples Format = "ntriples"

	// FormatJSONLD produces JSON-LD (.jsonld) output.
	FormatJSONLD Format = "jsonld"
)

// FormatInfo provides metadata about an export format.
type FormatInfo struct {
	Name        Format
	MIMEType    string
	Extension   string
	Description string
}

// FormatRegistry contains metadata for all supported formats.
var FormatRegistry = map[Format]FormatInfo{
	FormatTurtle: {
		Name:        FormatTurtle,
		MIMEType:    "text/turtle",
		Extension:   ".ttl",
		Description: "Turtle - Terse RDF Triple Language",
	},
	FormatNTriples: {
		Name:        FormatNTriples,
		MIMEType:    "application/n-triples",
		Extension:   ".nt",
		Description: "N-Triples - Line-based RDF format",
	},
	FormatJSONLD: {
		Name:        FormatJSONLD,
		MIMEType:    "application/ld+json",
		Extension:   ".jsonld",
		Description: "JSON-LD - JSON for Linked Data",
	},
}

// ParseFormat converts a command line value to a Format.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(s))
	if _, ok := FormatRegistry[f]; !ok {
		return "", fmt.Errorf("unsupported format: %s", s)
	}
	return f, nil
}

// DefaultPrefixes returns the namespace prefixes declared by Turtle and
// JSON-LD output.
func DefaultPrefixes() map[string]string {
	return map[string]string{
		"rdf":     "http://www.w3.org/1999/02/22-rdf-syntax-ns#",
		"xsd":     "http://www.w3.org/2001/XMLSchema#",
		"dc":      "http://purl.org/dc/terms/",
		"skos":    "http://www.w3.org/2004/02/skos/core#",
		"prov":    "http://www.w3.org/ns/prov#",
		"lexicon": lexicon.Namespace,
		"entry":   lexicon.EntityNamespace,
	}
}

// Write serializes triples to w.
func Write(w io.Writer, format Format, triples iter.Seq[Triple]) error {
	switch format {
	case FormatTurtle:
		return NewTurtleWriter(w).WriteAll(triples)
	case FormatNTriples:
		return NewNTriplesWriter(w).WriteAll(triples)
	case FormatJSONLD:
		return NewJSONLDWriter(w).WriteAll(triples)
	default:
		return fmt.Errorf("unsupported format: %s", format)
	}
}

var localName = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_-]*$`)

// TurtleWriter writes RDF in Turtle format, one block per subject.
type TurtleWriter struct {
	w        *bufio.Writer
	prefixes map[string]string
}

// NewTurtleWriter creates a Turtle writer with the default prefixes.
func NewTurtleWriter(w io.Writer) *TurtleWriter {
	return &TurtleWriter{w: bufio.NewWriter(w), prefixes: DefaultPrefixes()}
}

// SetPrefix sets a namespace prefix.
func (t *TurtleWriter) SetPrefix(prefix, iri string) {
	t.prefixes[prefix] = iri
}

// WriteAll writes the prefix declarations followed by every triple.
func (t *TurtleWriter) WriteAll(triples iter.Seq[Triple]) error {
	keys := make([]string, 0, len(t.prefixes))
	for k := range t.prefixes {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, prefix := range keys {
		fmt.Fprintf(t.w, "@prefix %s: <%s> .\n", prefix, t.prefixes[prefix])
	}

	subject := ""
	for tr := range triples {
		if tr.Subject != subject {
			if subject != "" {
				t.w.WriteString(" .\n")
			}
			subject = tr.Subject
			fmt.Fprintf(t.w, "\n%s\n", t.resource(subject))
		} else {
			t.w.WriteString(" ;\n")
		}
		fmt.Fprintf(t.w, "    %s %s", t.predicate(tr.Predicate), t.object(tr.Object))
	}
	if subject != "" {
		t.w.WriteString(" .\n")
	}
	return t.w.Flush()
}

func (t *TurtleWriter) predicate(iri string) string {
	if iri == rdfType {
		return "a"
	}
	return t.resource(iri)
}

// resource compacts iri against the declared prefixes when the remainder is
// a valid local name.
func (t *TurtleWriter) resource(iri string) string {
	best := ""
	for prefix, ns := range t.prefixes {
		if !strings.HasPrefix(iri, ns) || !localName.MatchString(iri[len(ns):]) {
			continue
		}
		if best == "" || len(ns) > len(t.prefixes[best]) {
			best = prefix
		}
	}
	if best == "" {
		return "<" + iri + ">"
	}
	return best + ":" + iri[len(t.prefixes[best]):]
}

func (t *TurtleWriter) object(o Term) string {
	switch {
	case o.IsIRI():
		return t.resource(o.IRI)
	case o.Lang != "":
		return fmt.Sprintf("\"%s\"@%s", escapeString(o.Value), o.Lang)
	case o.Datatype != "":
		return fmt.Sprintf("\"%s\"^^%s", escapeString(o.Value), t.resource(o.Datatype))
	default:
		return fmt.Sprintf("\"%s\"", escapeString(o.Value))
	}
}

// NTriplesWriter writes RDF in N-Triples format.
type NTriplesWriter struct {
	w *bufio.Writer
}

// NewNTriplesWriter creates an N-Triples writer.
func NewNTriplesWriter(w io.Writer) *NTriplesWriter {
	return &NTriplesWriter{w: bufio.NewWriter(w)}
}

// WriteAll writes every triple on its own line.
func (n *NTriplesWriter) WriteAll(triples iter.Seq[Triple]) error {
	for tr := range triples {
		fmt.Fprintf(n.w, "<%s> <%s> %s .\n", tr.Subject, tr.Predicate, formatObjectNTriples(tr.Object))
	}
	return n.w.Flush()
}

func formatObjectNTriples(o Term) string {
	switch {
	case o.IsIRI():
		return "<" + o.IRI + ">"
	case o.Lang != "":
		return fmt.Sprintf("\"%s\"@%s", escapeString(o.Value), o.Lang)
	case o.Datatype != "":
		return fmt.Sprintf("\"%s\"^^<%s>", escapeString(o.Value), o.Datatype)
	default:
		return fmt.Sprintf("\"%s\"", escapeString(o.Value))
	}
}

// JSONLDDocument represents a JSON-LD document structure.
type JSONLDDocument struct {
	Context map[string]string `json:"@context"`
	Graph   []JSONLDNode      `json:"@graph"`
}

// JSONLDNode is a node of the graph. Properties map predicate IRIs to their
// values in expanded form.
type JSONLDNode struct {
	ID         string
	Type       []string
	Properties map[string][]map[string]string
}

// MarshalJSON flattens the node into a single JSON object.
func (n JSONLDNode) MarshalJSON() ([]byte, error) {
	m := make(map[string]any, len(n.Properties)+2)
	m["@id"] = n.ID
	if len(n.Type) > 0 {
		m["@type"] = n.Type
	}
	for k, v := range n.Properties {
		m[k] = v
	}
	return json.Marshal(m)
}

// JSONLDWriter writes RDF in JSON-LD format.
type JSONLDWriter struct {
	w   io.Writer
	doc JSONLDDocument
}

// NewJSONLDWriter creates a JSON-LD writer with the default prefixes as
// context.
func NewJSONLDWriter(w io.Writer) *JSONLDWriter {
	return &JSONLDWriter{
		w: w,
		doc: JSONLDDocument{
			Context: DefaultPrefixes(),
			Graph:   make([]JSONLDNode, 0),
		},
	}
}

// WriteAll collects the triples into one node per subject and writes the
// document.
func (j *JSONLDWriter) WriteAll(triples iter.Seq[Triple]) error {
	var node *JSONLDNode
	for tr := range triples {
		if node == nil || node.ID != tr.Subject {
			j.doc.Graph = append(j.doc.Graph, JSONLDNode{
				ID:         tr.Subject,
				Properties: make(map[string][]map[string]string),
			})
			node = &j.doc.Graph[len(j.doc.Graph)-1]
		}
		if tr.Predicate == rdfType && tr.Object.IsIRI() {
			node.Type = append(node.Type, tr.Object.IRI)
			continue
		}
		node.Properties[tr.Predicate] = append(node.Properties[tr.Predicate], formatObjectJSONLD(tr.Object))
	}

	enc := json.NewEncoder(j.w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(j.doc); err != nil {
		return fmt.Errorf("encode JSON-LD: %w", err)
	}
	return nil
}

func formatObjectJSONLD(o Term) map[string]string {
	switch {
	case o.IsIRI():
		return map[string]string{"@id": o.IRI}
	case o.Lang != "":
		return map[string]string{"@value": o.Value, "@language": o.Lang}
	case o.Datatype != "":
		return map[string]string{"@value": o.Value, "@type": o.Datatype}
	default:
		return map[string]string{"@value": o.Value}
	}
}

// escapeString escapes special characters in strings for RDF serialization.
func escapeString(s string) string {
	s = strings.ReplaceAll(s, "\\", "\\\\")
	s = strings.ReplaceAll(s, "\"", "\\\"")
	s = strings.ReplaceAll(s, "\n", "\\n")
	s = strings.ReplaceAll(s, "\r", "\\r")
	s = strings.ReplaceAll(s, "\t", "\\t")
	return s
}
