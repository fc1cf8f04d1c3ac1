package validate

import (
	"slices"
	"testing"

	"github.com/c360studio/lexmerge/tree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// thesaurus holds a root whose own range does not cover its children and a
// well formed period.
const thesaurus = `<taxonomy>
  <category xml:id="tlaROOT">
    <catDesc><date from="-600" to="0"/>Late   Period</catDesc>
    <category xml:id="tlaC1"><catDesc><date from="-900" to="-700"/>Early</catDesc></category>
    <category xml:id="tlaC2"><catDesc><date from="-50" to="-1"/>Late</catDesc></category>
  </category>
  <category xml:id="tlaOK">
    <catDesc><date from="-3900" to="-3300"/>Naqada</catDesc>
    <category xml:id="tlaN1"><catDesc><date from="-3900" to="-3650"/>Naqada I</catDesc></category>
    <category xml:id="tlaN2"><catDesc><date from="-3650" to="-3300"/>Naqada II</catDesc></category>
  </category>
  <category xml:id="tlaUNDATED"><catDesc>no dates</catDesc></category>
</taxonomy>`

func mustParse(t *testing.T, s string) *tree.XMLDocument {
	t.Helper()
	doc, err := tree.Parse(s)
	require.NoError(t, err)
	return doc
}

func category(t *testing.T, doc tree.Document, id string) tree.Node {
	t.Helper()
	for _, n := range doc.Select(CategoryKind) {
		if got, _ := tree.ID(n); got == id {
			return n
		}
	}
	t.Fatalf("category %s not found", id)
	return nil
}

func TestOwnRange(t *testing.T) {
	doc := mustParse(t, thesaurus)
	v := New(IncludeOwn)

	r, err := v.OwnRange(category(t, doc, "ROOT"))
	require.NoError(t, err)
	assert.Equal(t, Range{Start: -600, End: 0}, r)

	r, err = v.OwnRange(category(t, doc, "UNDATED"))
	require.NoError(t, err)
	assert.Equal(t, Range{}, r)
}

func TestOwnRangePartialAndPadded(t *testing.T) {
	doc := mustParse(t, `<category xml:id="tlaX"><catDesc><date from="  -332"/></catDesc></category>`)
	r, err := New(IncludeOwn).OwnRange(doc.Root())
	require.NoError(t, err)
	assert.Equal(t, Range{Start: -332, End: 0}, r)
}

func TestOwnRangeParseError(t *testing.T) {
	doc := mustParse(t, `<category xml:id="tlaX"><catDesc><date from="c. 500" to="-1"/></catDesc></category>`)
	_, err := New(IncludeOwn).OwnRange(doc.Root())
	require.Error(t, err)

	var pe *ParseError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, "X", pe.ID)
	assert.Equal(t, "from", pe.Attr)
	assert.True(t, IsParseError(err))
}

// The aggregation mode changed between thesaurus report revisions: whether a
// node's own range takes part in its descendant range. Both are pinned here.
func TestDescendantRangeModes(t *testing.T) {
	doc := mustParse(t, thesaurus)
	root := category(t, doc, "ROOT")

	t.Run("include own", func(t *testing.T) {
		v := New(IncludeOwn)
		r, err := v.DescendantRange(root)
		require.NoError(t, err)
		assert.Equal(t, Range{Start: -900, End: 0}, r)

		valid, err := v.IsValid(root)
		require.NoError(t, err)
		assert.False(t, valid)
	})

	t.Run("children only", func(t *testing.T) {
		v := New(ChildrenOnly)
		r, err := v.DescendantRange(root)
		require.NoError(t, err)
		assert.Equal(t, Range{Start: -900, End: -1}, r)

		valid, err := v.IsValid(root)
		require.NoError(t, err)
		assert.False(t, valid, "-900 lies before -600")
	})
}

func TestDescendantRangeLeaf(t *testing.T) {
	doc := mustParse(t, thesaurus)
	for _, mode := range []Mode{IncludeOwn, ChildrenOnly} {
		r, err := New(mode).DescendantRange(category(t, doc, "C1"))
		require.NoError(t, err)
		assert.Equal(t, Range{Start: -900, End: -700}, r)
	}
}

func TestIsValid(t *testing.T) {
	doc := mustParse(t, thesaurus)
	v := New(IncludeOwn)

	tests := []struct {
		id   string
		want bool
	}{
		{"ROOT", false},
		{"C1", true},
		{"OK", true},
		{"N2", true},
		{"UNDATED", false},
	}
	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			valid, err := v.IsValid(category(t, doc, tt.id))
			require.NoError(t, err)
			assert.Equal(t, tt.want, valid)
		})
	}
}

func TestIsValidRejectsZeroBound(t *testing.T) {
	doc := mustParse(t, `<category xml:id="tlaZ"><catDesc><date from="0" to="0"/></catDesc></category>`)
	valid, err := New(IncludeOwn).IsValid(doc.Root())
	require.NoError(t, err)
	assert.False(t, valid)
}

func TestRangeTrivial(t *testing.T) {
	tests := []struct {
		r    Range
		want bool
	}{
		{Range{}, true},
		{Range{Start: -900, End: 0}, true},
		{Range{Start: 0, End: 641}, true},
		{Range{Start: -900, End: -1}, false},
		{Range{Start: 1 << 32, End: 1 << 32}, false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.r.Trivial(), "%v", tt.r)
	}
}

func TestIsValidHugeYears(t *testing.T) {
	doc := mustParse(t, `<category xml:id="tlaH"><catDesc><date from="4294967296" to="4294967296"/></catDesc></category>`)
	valid, err := New(IncludeOwn).IsValid(doc.Root())
	require.NoError(t, err)
	assert.True(t, valid)
}

func TestFindInvalid(t *testing.T) {
	doc := mustParse(t, thesaurus)
	v := New(IncludeOwn)

	rows := slices.Collect(v.FindInvalid(doc))
	require.Len(t, rows, 1, "undated categories are not checked")
	assert.Equal(t, "ROOT", rows[0].ID)
	assert.Equal(t, "Late Period", rows[0].Label)
	assert.Equal(t, Range{Start: -600, End: 0}, rows[0].Own)
	assert.Equal(t, Range{Start: -900, End: 0}, rows[0].Descendants)

	again := slices.Collect(v.FindInvalid(doc))
	assert.Equal(t, rows, again, "sequence is restartable")
}

func TestFindInvalidSeesLaterChanges(t *testing.T) {
	doc := mustParse(t, thesaurus)
	v := New(IncludeOwn)
	seq := v.FindInvalid(doc)

	assert.Len(t, slices.Collect(seq), 1)
	category(t, doc, "OK").Children("catDesc")[0].Children("date")[0].SetAttr("", "to", "-3400")
	assert.Len(t, slices.Collect(seq), 2)
}

func TestFindInvalidReportsParseErrors(t *testing.T) {
	doc := mustParse(t, `<taxonomy>
  <category xml:id="tlaBAD"><catDesc><date from="x" to="-1"/>Broken</catDesc></category>
  <category xml:id="tlaP"><catDesc><date from="-10" to="-1"/>Parent</catDesc>
    <category xml:id="tlaQ"><catDesc><date from="-5" to="oops"/>Child</catDesc></category>
  </category>
</taxonomy>`)

	rows := slices.Collect(New(IncludeOwn).FindInvalid(doc))
	require.Len(t, rows, 3)
	for _, row := range rows {
		assert.True(t, IsParseError(row.Err), "row %s", row.ID)
	}
	assert.Equal(t, []string{"BAD", "P", "Q"}, []string{rows[0].ID, rows[1].ID, rows[2].ID})
}

func TestFindInvalidStopsEarly(t *testing.T) {
	doc := mustParse(t, `<taxonomy>
  <category xml:id="tlaA"><catDesc><date from="0" to="0"/></catDesc></category>
  <category xml:id="tlaB"><catDesc><date from="0" to="0"/></catDesc></category>
</taxonomy>`)

	var seen []string
	for row := range New(IncludeOwn).FindInvalid(doc) {
		seen = append(seen, row.ID)
		break
	}
	assert.Equal(t, []string{"A"}, seen)
}

func TestParseMode(t *testing.T) {
	m, err := ParseMode("children-only")
	require.NoError(t, err)
	assert.Equal(t, ChildrenOnly, m)

	m, err = ParseMode("")
	require.NoError(t, err)
	assert.Equal(t, IncludeOwn, m)

	_, err = ParseMode("both")
	assert.Error(t, err)
}
