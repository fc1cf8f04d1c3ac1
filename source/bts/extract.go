package bts

import (
	"strings"

	"github.com/c360studio/lexmerge/registry"
	"github.com/c360studio/lexmerge/vocabulary/lexicon"
	"github.com/tidwall/gjson"
)

// DateRecordType is the record type of thesaurus date entries.
const DateRecordType = "date"

// passportDatePath addresses a date boundary inside a passport.
const passportDatePath = ".thesaurus_date.main_group."

// Translations groups translations.translations[].value by their lang.
func Translations(r Record) registry.Bag {
	q := registry.NewQualified()
	for _, t := range r.Get("translations.translations").Array() {
		q.Register(t.Get("lang").String(), t.Get("value").String())
	}
	return registry.Bag{lexicon.PropertyTranslations: q}
}

// Relations groups relations[].objectId by their type.
func Relations(r Record) registry.Bag {
	q := registry.NewQualified()
	for _, rel := range r.Get("relations").Array() {
		q.Register(rel.Get("type").String(), rel.Get("objectId").String())
	}
	return registry.Bag{lexicon.PropertyRelations: q}
}

// ThesaurusDates reads the beginning and end boundaries from the passport of
// date records. Other records get an empty dates property.
func ThesaurusDates(r Record) registry.Bag {
	q := registry.NewQualified()
	if r.Type() == DateRecordType {
		passport := r.Get("passport")
		for _, bound := range []string{lexicon.Beginning, lexicon.End} {
			q.Set(bound, PassportValues(passport, passportDatePath+bound))
		}
	}
	return registry.Bag{lexicon.PropertyDates: q}
}

// PassportValues walks a passport tree along a dotted path of node types and
// collects the values of all nodes reached at its last segment, in document
// order. A leading empty segment starts at the children of node. Empty values
// are skipped.
func PassportValues(node gjson.Result, path string) []string {
	return walk(node, strings.Split(path, "."))
}

func walk(node gjson.Result, segments []string) []string {
	head := segments[0]
	if head != "" && node.Get("type").String() != head {
		return nil
	}
	if len(segments) == 1 {
		if v := node.Get("value"); v.Exists() && v.String() != "" {
			return []string{v.String()}
		}
		return nil
	}

	var values []string
	for _, child := range node.Get("children").Array() {
		values = append(values, walk(child, segments[1:])...)
	}
	return values
}
