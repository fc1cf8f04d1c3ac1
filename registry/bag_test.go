package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQualifiedRegister(t *testing.T) {
	tests := []struct {
		name      string
		qualifier string
		value     string
		want      bool
	}{
		{"both set", "de", "Haus", true},
		{"empty qualifier", "", "Haus", false},
		{"empty value", "de", "", false},
		{"both empty", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := NewQualified()
			assert.Equal(t, tt.want, q.Register(tt.qualifier, tt.value))
			if tt.want {
				assert.Equal(t, []string{tt.value}, q.Get(tt.qualifier))
			} else {
				assert.Zero(t, q.Len())
			}
		})
	}
}

func TestQualifiedOrder(t *testing.T) {
	q := NewQualified()
	q.Register("en", "house")
	q.Register("de", "Haus")
	q.Register("en", "home")

	assert.Equal(t, []string{"en", "de"}, q.Qualifiers())
	assert.Equal(t, []string{"house", "home"}, q.Get("en"))

	var pairs [][2]string
	for k, v := range q.Pairs() {
		pairs = append(pairs, [2]string{k, v})
	}
	assert.Equal(t, [][2]string{{"en", "house"}, {"en", "home"}, {"de", "Haus"}}, pairs)
	assert.Equal(t, 3, q.Len())
}

func TestQualifiedSetKeepsEmptyQualifier(t *testing.T) {
	q := NewQualified()
	q.Register("partOf", "7")
	q.Set("partOf", nil)

	assert.True(t, q.Has("partOf"))
	assert.Empty(t, q.Get("partOf"))
	assert.Equal(t, []string{"partOf"}, q.Qualifiers())
}

func TestNilQualifiedReadsEmpty(t *testing.T) {
	var q *Qualified
	assert.Nil(t, q.Get("en"))
	assert.False(t, q.Has("en"))
	assert.False(t, q.Contains("en", "x"))
	assert.Zero(t, q.Len())
	assert.Empty(t, q.Qualifiers())
	for range q.Pairs() {
		t.Fatal("nil qualified yielded a pair")
	}
}

func TestZeroQualifiedAppend(t *testing.T) {
	var q Qualified
	q.Append("en", "a", "b")
	assert.Equal(t, []string{"a", "b"}, q.Get("en"))
}

func TestBagMergeReplacesProperty(t *testing.T) {
	first := Bag{"translations": NewQualified()}
	first["translations"].Register("en", "old")

	second := Bag{"translations": NewQualified(), "relations": NewQualified()}
	second["translations"].Register("en", "new")

	first.Merge(second)
	assert.Equal(t, []string{"new"}, first.Property("translations").Get("en"))
	assert.NotNil(t, first.Property("relations"))
}

func TestBagEnsureAndEmpty(t *testing.T) {
	b := Bag{}
	assert.True(t, b.Empty())
	assert.Nil(t, b.Property("dates"))

	b.Ensure("dates").Register("beginning", "-500")
	assert.False(t, b.Empty())
	assert.Same(t, b.Ensure("dates"), b.Property("dates"))
}
