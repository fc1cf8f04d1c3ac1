package merge

import (
	"strings"

	"github.com/c360studio/lexmerge/tree"
	"github.com/c360studio/lexmerge/vocabulary/lexicon"
)

// Inserter checks for and adds a single (qualifier, value) pair on a target
// node. Add is only called after Has returned false for the same pair.
type Inserter interface {
	Has(node tree.Node, qualifier, value string) bool
	Add(node tree.Node, qualifier, value string)
}

// Translations stores translations as
// entry > sense > cit[type=translation][xml:lang=L] > quote.
type Translations struct{}

// Has reports whether a quote with exactly value exists for lang.
func (Translations) Has(entry tree.Node, lang, value string) bool {
	if strings.TrimSpace(value) == "" {
		return true
	}
	for _, sense := range entry.Children("sense") {
		for _, cit := range sense.Children("cit") {
			if !translationIn(cit, lang) {
				continue
			}
			for _, quote := range cit.Children("quote") {
				if quote.Text() == value {
					return true
				}
			}
		}
	}
	return false
}

func translationIn(cit tree.Node, lang string) bool {
	typ, _ := cit.Attr("", "type")
	l, _ := cit.Attr(lexicon.XMLNamespace, "lang")
	return typ == "translation" && l == lang
}

// Add appends a translation to the entry's first sense, creating it when
// the entry has none.
func (Translations) Add(entry tree.Node, lang, value string) {
	sense, ok := tree.First(entry, "sense")
	if !ok {
		sense = entry.AppendElement("sense")
	}
	cit := sense.AppendElement("cit",
		tree.Attr{Key: "type", Value: "translation"},
		tree.Attr{Space: lexicon.XMLNamespace, Key: "lang", Value: lang})
	cit.AppendElement("quote").SetText(value)
}

// Relations stores relations as entry > xr[type=P] > ref[target=tla<id>].
type Relations struct{}

// Has reports whether the entry already references id under predicate.
func (Relations) Has(entry tree.Node, predicate, id string) bool {
	if strings.TrimSpace(id) == "" {
		return true
	}
	target := lexicon.PrefixID(id)
	for _, xr := range relationGroups(entry, predicate) {
		for _, ref := range xr.Children("ref") {
			if v, _ := ref.Attr("", "target"); v == target {
				return true
			}
		}
	}
	return false
}

func relationGroups(entry tree.Node, predicate string) []tree.Node {
	var groups []tree.Node
	for _, xr := range entry.Children("xr") {
		if typ, _ := xr.Attr("", "type"); typ == predicate {
			groups = append(groups, xr)
		}
	}
	return groups
}

// Add appends a reference to the entry's xr group for predicate, creating
// the group when the entry has none.
func (Relations) Add(entry tree.Node, predicate, id string) {
	var xr tree.Node
	if groups := relationGroups(entry, predicate); len(groups) > 0 {
		xr = groups[0]
	} else {
		xr = entry.AppendElement("xr", tree.Attr{Key: "type", Value: predicate})
	}
	xr.AppendElement("ref", tree.Attr{Key: "target", Value: lexicon.PrefixID(id)})
}

// boundAttrs maps date boundaries to attributes of category > catDesc > date.
var boundAttrs = map[string]string{
	lexicon.Beginning: "from",
	lexicon.End:       "to",
}

// DateBounds stores date range boundaries as category > catDesc > date@from/@to.
type DateBounds struct{}

// Has reports whether a date of the category already carries a value for
// bound. A bound holds a single year: once set, further values are treated as
// present and the existing one is kept. Unknown bounds and blank values count
// as present.
func (DateBounds) Has(category tree.Node, bound, value string) bool {
	attr, ok := boundAttrs[bound]
	if !ok || strings.TrimSpace(value) == "" {
		return true
	}
	for _, desc := range category.Children("catDesc") {
		for _, date := range desc.Children("date") {
			if v, _ := date.Attr("", attr); strings.TrimSpace(v) != "" {
				return true
			}
		}
	}
	return false
}

// Add sets bound on the category's first date, creating catDesc and date
// as needed.
func (DateBounds) Add(category tree.Node, bound, value string) {
	attr, ok := boundAttrs[bound]
	if !ok {
		return
	}
	desc, ok := tree.First(category, "catDesc")
	if !ok {
		desc = category.AppendElement("catDesc")
	}
	date, ok := tree.First(desc, "date")
	if !ok {
		date = desc.AppendElement("date")
	}
	date.SetAttr("", attr, strings.TrimSpace(value))
}
