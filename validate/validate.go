// Package validate checks date range containment across a thesaurus tree.
//
// Every category may carry its own range in catDesc/date@from and @to. A
// category is valid when its own range is non-trivial and contains the
// aggregated range of its descendants.
package validate

import (
	"errors"
	"fmt"
	"iter"
	"strconv"
	"strings"

	"github.com/c360studio/lexmerge/tree"
)

// CategoryKind is the element kind of thesaurus categories.
const CategoryKind = "category"

// Range is an inclusive range of years, negative for BCE. The zero Range is
// the "no dates" sentinel.
type Range struct {
	Start int
	End   int
}

// Trivial reports whether either bound is zero.
func (r Range) Trivial() bool {
	return r.Start == 0 || r.End == 0
}

// Contains reports whether inner lies within r, bounds included.
func (r Range) Contains(inner Range) bool {
	return r.Start <= inner.Start && inner.Start <= inner.End && inner.End <= r.End
}

// MarshalJSON renders the range as [start, end].
func (r Range) MarshalJSON() ([]byte, error) {
	return []byte(fmt.Sprintf("[%d,%d]", r.Start, r.End)), nil
}

func (r Range) String() string {
	return fmt.Sprintf("%d..%d", r.Start, r.End)
}

// ParseError reports a date attribute that is not an integer.
type ParseError struct {
	ID    string
	Attr  string
	Value string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("category %s: date@%s %q is not a year", e.ID, e.Attr, e.Value)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Mode selects how descendant ranges are aggregated.
type Mode int

const (
	// IncludeOwn aggregates a node's own range together with its children's.
	IncludeOwn Mode = iota
	// ChildrenOnly aggregates only the children's ranges. Earlier thesaurus
	// reports were produced this way.
	ChildrenOnly
)

// ParseMode converts "include-own" or "children-only" into a Mode.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "", "include-own":
		return IncludeOwn, nil
	case "children-only":
		return ChildrenOnly, nil
	}
	return IncludeOwn, fmt.Errorf("unknown aggregation mode %q", s)
}

// Validator evaluates category nodes.
type Validator struct {
	mode Mode
}

// New creates a validator using mode for descendant aggregation.
func New(mode Mode) *Validator {
	return &Validator{mode: mode}
}

// ownDate returns the first catDesc/date of n.
func ownDate(n tree.Node) (tree.Node, bool) {
	for _, desc := range n.Children("catDesc") {
		if date, ok := tree.First(desc, "date"); ok {
			return date, true
		}
	}
	return nil, false
}

// HasDate reports whether n carries its own date element.
func HasDate(n tree.Node) bool {
	_, ok := ownDate(n)
	return ok
}

// OwnRange reads the range attached directly to n. Missing dates or bounds
// read as zero.
func (v *Validator) OwnRange(n tree.Node) (Range, error) {
	date, ok := ownDate(n)
	if !ok {
		return Range{}, nil
	}
	start, err := bound(n, date, "from")
	if err != nil {
		return Range{}, err
	}
	end, err := bound(n, date, "to")
	if err != nil {
		return Range{}, err
	}
	return Range{Start: start, End: end}, nil
}

func bound(n, date tree.Node, attr string) (int, error) {
	raw, ok := date.Attr("", attr)
	if !ok {
		return 0, nil
	}
	year, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		id, _ := tree.ID(n)
		return 0, &ParseError{ID: id, Attr: attr, Value: raw, Err: err}
	}
	return year, nil
}

// DescendantRange aggregates the ranges of n's subtree. A leaf yields its
// own range.
func (v *Validator) DescendantRange(n tree.Node) (Range, error) {
	children := n.Children(CategoryKind)
	own, err := v.OwnRange(n)
	if err != nil {
		return Range{}, err
	}
	if len(children) == 0 {
		return own, nil
	}

	var agg Range
	first := true
	if v.mode == IncludeOwn {
		agg, first = own, false
	}
	for _, child := range children {
		r, err := v.DescendantRange(child)
		if err != nil {
			return Range{}, err
		}
		if first {
			agg, first = r, false
			continue
		}
		agg.Start = min(agg.Start, r.Start)
		agg.End = max(agg.End, r.End)
	}
	return agg, nil
}

// IsValid reports whether n's own range is non-trivial and contains its
// descendant range.
func (v *Validator) IsValid(n tree.Node) (bool, error) {
	own, err := v.OwnRange(n)
	if err != nil {
		return false, err
	}
	desc, err := v.DescendantRange(n)
	if err != nil {
		return false, err
	}
	return own.Contains(desc) && !own.Trivial(), nil
}

// Row is the report record of a single category.
type Row struct {
	ID          string `json:"id"`
	Label       string `json:"name"`
	Own         Range  `json:"daterange"`
	Descendants Range  `json:"contains"`
	Err         error  `json:"-"`
}

// Row evaluates n into a report record. Evaluation errors are kept on the row.
func (v *Validator) Row(n tree.Node) Row {
	id, _ := tree.ID(n)
	row := Row{ID: id, Label: label(n)}
	own, err := v.OwnRange(n)
	if err != nil {
		row.Err = err
		return row
	}
	desc, err := v.DescendantRange(n)
	if err != nil {
		row.Err = err
		return row
	}
	row.Own, row.Descendants = own, desc
	return row
}

func label(n tree.Node) string {
	desc, ok := tree.First(n, "catDesc")
	if !ok {
		return ""
	}
	return strings.Join(strings.Fields(desc.Text()), " ")
}

// Dated yields every category of doc carrying its own date, in document order.
func Dated(doc tree.Document) iter.Seq[tree.Node] {
	return func(yield func(tree.Node) bool) {
		for _, n := range doc.Select(CategoryKind) {
			if HasDate(n) && !yield(n) {
				return
			}
		}
	}
}

// FindInvalid yields a row for every dated category that is not valid or
// whose dates cannot be read. Each iteration re-evaluates the document.
func (v *Validator) FindInvalid(doc tree.Document) iter.Seq[Row] {
	return func(yield func(Row) bool) {
		for n := range Dated(doc) {
			valid, err := v.IsValid(n)
			if err == nil && valid {
				continue
			}
			row := v.Row(n)
			if err != nil && row.Err == nil {
				row.Err = err
			}
			if !yield(row) {
				return
			}
		}
	}
}

// IsParseError reports whether err comes from an unreadable date.
func IsParseError(err error) bool {
	var pe *ParseError
	return errors.As(err, &pe)
}
