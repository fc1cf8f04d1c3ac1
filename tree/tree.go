// Package tree provides the target document model: an XML tree of typed
// nodes with attributes and text, loaded from and persisted to a file.
package tree

import "github.com/c360studio/lexmerge/vocabulary/lexicon"

// Attr is a namespace qualified attribute. Space is a namespace URI, or empty
// for unqualified attributes.
type Attr struct {
	Space string
	Key   string
	Value string
}

// Node is an element of the target document.
type Node interface {
	// Kind returns the local element name.
	Kind() string
	// Attr returns the value of an attribute.
	Attr(space, key string) (string, bool)
	// SetAttr creates or replaces an attribute.
	SetAttr(space, key, value string)
	// Text returns the concatenated text of the node and all descendants.
	Text() string
	// SetText replaces the node's text content.
	SetText(text string)
	// Children returns direct child elements of kind in document order.
	// An empty kind returns all child elements.
	Children(kind string) []Node
	// AppendElement creates a child element as the last child.
	AppendElement(kind string, attrs ...Attr) Node
}

// Document is a loaded target tree.
type Document interface {
	// Root returns the document element.
	Root() Node
	// Select returns every element of kind in document order.
	Select(kind string) []Node
	// Save persists the document to the location it was loaded from.
	Save() error
}

// ID returns the node's xml:id with the id prefix removed.
func ID(n Node) (string, bool) {
	v, ok := n.Attr(lexicon.XMLNamespace, "id")
	if !ok {
		return "", false
	}
	return lexicon.StripID(v), true
}

// First returns the first child of kind.
func First(n Node, kind string) (Node, bool) {
	children := n.Children(kind)
	if len(children) == 0 {
		return nil, false
	}
	return children[0], true
}
