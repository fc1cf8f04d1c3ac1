package tree

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/beevik/etree"
	"github.com/c360studio/lexmerge/vocabulary/lexicon"
	"github.com/spf13/afero"
)

// XMLDocument is a Document backed by an etree DOM.
type XMLDocument struct {
	doc    *etree.Document
	fs     afero.Fs
	path   string
	indent int
}

// Load reads and parses the XML file at path.
func Load(fsys afero.Fs, path string) (*XMLDocument, error) {
	data, err := afero.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("%w %s: %v", ErrLoad, path, err)
	}
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(data); err != nil {
		return nil, fmt.Errorf("%w %s: %v", ErrLoad, path, err)
	}
	if doc.Root() == nil {
		return nil, fmt.Errorf("%w %s: no root element", ErrLoad, path)
	}
	return &XMLDocument{doc: doc, fs: fsys, path: path}, nil
}

// Parse parses an in-memory XML document. The result has no file location,
// use SaveAs to persist it.
func Parse(s string) (*XMLDocument, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromString(s); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLoad, err)
	}
	if doc.Root() == nil {
		return nil, fmt.Errorf("%w: no root element", ErrLoad)
	}
	return &XMLDocument{doc: doc}, nil
}

// Path returns the file the document was loaded from.
func (d *XMLDocument) Path() string {
	return d.path
}

// SetIndent makes Save re-indent the document with n spaces. Zero keeps the
// document's whitespace as loaded.
func (d *XMLDocument) SetIndent(n int) {
	d.indent = n
}

// Root returns the document element.
func (d *XMLDocument) Root() Node {
	return &element{el: d.doc.Root()}
}

// Select returns every element of kind in document order.
func (d *XMLDocument) Select(kind string) []Node {
	var nodes []Node
	var walk func(el *etree.Element)
	walk = func(el *etree.Element) {
		if el.Tag == kind {
			nodes = append(nodes, &element{el: el})
		}
		for _, child := range el.ChildElements() {
			walk(child)
		}
	}
	walk(d.doc.Root())
	return nodes
}

// String serializes the document.
func (d *XMLDocument) String() (string, error) {
	return d.doc.WriteToString()
}

// Save persists the document to its load location.
func (d *XMLDocument) Save() error {
	if d.fs == nil || d.path == "" {
		return fmt.Errorf("%w: document has no file location", ErrSave)
	}
	return d.SaveAs(d.fs, d.path)
}

// SaveAs writes the document to path. The content goes to a temporary file
// in the same directory which then replaces path, so a failed write leaves
// the existing file untouched.
func (d *XMLDocument) SaveAs(fsys afero.Fs, path string) error {
	if d.indent > 0 {
		d.doc.Indent(d.indent)
	}

	tmp, err := afero.TempFile(fsys, filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("%w %s: %v", ErrSave, path, err)
	}
	tmpName := tmp.Name()

	if _, err := d.doc.WriteTo(tmp); err != nil {
		tmp.Close()
		fsys.Remove(tmpName)
		return fmt.Errorf("%w %s: %v", ErrSave, path, err)
	}
	if err := tmp.Close(); err != nil {
		fsys.Remove(tmpName)
		return fmt.Errorf("%w %s: %v", ErrSave, path, err)
	}
	if err := fsys.Rename(tmpName, path); err != nil {
		fsys.Remove(tmpName)
		return fmt.Errorf("%w %s: %v", ErrSave, path, err)
	}

	d.fs, d.path = fsys, path
	return nil
}

// element adapts an etree element to Node.
type element struct {
	el *etree.Element
}

func (e *element) Kind() string {
	return e.el.Tag
}

func (e *element) Attr(space, key string) (string, bool) {
	for _, a := range e.el.Attr {
		if a.Key == key && attrSpaceMatches(a, space) {
			return a.Value, true
		}
	}
	return "", false
}

// attrSpaceMatches compares an attribute's prefix against a namespace URI.
// The xml prefix is bound to XMLNamespace without a declaration.
func attrSpaceMatches(a etree.Attr, space string) bool {
	switch space {
	case "":
		return a.Space == ""
	case lexicon.XMLNamespace:
		return a.Space == "xml"
	default:
		return a.Space != "" && (a.NamespaceURI() == space || a.Space == space)
	}
}

func (e *element) SetAttr(space, key, value string) {
	e.el.CreateAttr(qualifiedKey(space, key), value)
}

func qualifiedKey(space, key string) string {
	switch space {
	case "":
		return key
	case lexicon.XMLNamespace:
		return "xml:" + key
	default:
		return space + ":" + key
	}
}

func (e *element) Text() string {
	var sb strings.Builder
	collectText(e.el, &sb)
	return sb.String()
}

func collectText(el *etree.Element, sb *strings.Builder) {
	for _, tok := range el.Child {
		switch t := tok.(type) {
		case *etree.CharData:
			sb.WriteString(t.Data)
		case *etree.Element:
			collectText(t, sb)
		}
	}
}

func (e *element) SetText(text string) {
	e.el.SetText(text)
}

func (e *element) Children(kind string) []Node {
	var children []*etree.Element
	if kind == "" {
		children = e.el.ChildElements()
	} else {
		children = e.el.SelectElements(kind)
	}
	nodes := make([]Node, len(children))
	for i, c := range children {
		nodes[i] = &element{el: c}
	}
	return nodes
}

func (e *element) AppendElement(kind string, attrs ...Attr) Node {
	child := e.el.CreateElement(kind)
	for _, a := range attrs {
		child.CreateAttr(qualifiedKey(a.Space, a.Key), a.Value)
	}
	return &element{el: child}
}
