package registry

import (
	"iter"
	"slices"
)

// Qualified is an ordered mapping from qualifier to an ordered list of values.
// Qualifiers keep first-insertion order and values keep append order.
// A nil *Qualified reads as empty.
type Qualified struct {
	order  []string
	values map[string][]string
}

// NewQualified creates an empty qualified value.
func NewQualified() *Qualified {
	return &Qualified{values: make(map[string][]string)}
}

// Register appends value under qualifier when both are non-empty.
// It reports whether the value was appended.
func (q *Qualified) Register(qualifier, value string) bool {
	if qualifier == "" || value == "" {
		return false
	}
	q.Append(qualifier, value)
	return true
}

// Append adds values under qualifier without filtering.
func (q *Qualified) Append(qualifier string, values ...string) {
	q.touch(qualifier)
	q.values[qualifier] = append(q.values[qualifier], values...)
}

// Set replaces the values of qualifier. The qualifier stays present even
// when values is empty.
func (q *Qualified) Set(qualifier string, values []string) {
	q.touch(qualifier)
	q.values[qualifier] = values
}

func (q *Qualified) touch(qualifier string) {
	if q.values == nil {
		q.values = make(map[string][]string)
	}
	if _, ok := q.values[qualifier]; !ok {
		q.order = append(q.order, qualifier)
		q.values[qualifier] = nil
	}
}

// Get returns the values of qualifier, or nil when absent.
func (q *Qualified) Get(qualifier string) []string {
	if q == nil {
		return nil
	}
	return q.values[qualifier]
}

// Has reports whether qualifier is present, even with no values.
func (q *Qualified) Has(qualifier string) bool {
	if q == nil {
		return false
	}
	_, ok := q.values[qualifier]
	return ok
}

// Contains reports whether value is listed under qualifier.
func (q *Qualified) Contains(qualifier, value string) bool {
	return slices.Contains(q.Get(qualifier), value)
}

// Qualifiers returns the qualifiers in first-insertion order.
func (q *Qualified) Qualifiers() []string {
	if q == nil {
		return nil
	}
	return slices.Clone(q.order)
}

// Len returns the total number of values across all qualifiers.
func (q *Qualified) Len() int {
	if q == nil {
		return 0
	}
	n := 0
	for _, vs := range q.values {
		n += len(vs)
	}
	return n
}

// Pairs yields every (qualifier, value) pair in order.
func (q *Qualified) Pairs() iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		if q == nil {
			return
		}
		for _, qualifier := range q.order {
			for _, v := range q.values[qualifier] {
				if !yield(qualifier, v) {
					return
				}
			}
		}
	}
}

// Bag maps property names to qualified values.
type Bag map[string]*Qualified

// Property returns the named property, or nil when absent.
func (b Bag) Property(name string) *Qualified {
	return b[name]
}

// Ensure returns the named property, creating it when absent.
func (b Bag) Ensure(name string) *Qualified {
	q, ok := b[name]
	if !ok || q == nil {
		q = NewQualified()
		b[name] = q
	}
	return q
}

// Merge copies every property of other into b, replacing existing ones.
func (b Bag) Merge(other Bag) {
	for name, q := range other {
		if q != nil {
			b[name] = q
		}
	}
}

// Empty reports whether the bag holds no values at all.
func (b Bag) Empty() bool {
	for _, q := range b {
		if q.Len() > 0 {
			return false
		}
	}
	return true
}
