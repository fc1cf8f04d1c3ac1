package merge

import (
	"testing"

	"github.com/c360studio/lexmerge/registry"
	"github.com/c360studio/lexmerge/tree"
	"github.com/c360studio/lexmerge/vocabulary/lexicon"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const dictionary = `<TEI><text><body>` +
	`<entry xml:id="tla1"><form>A</form></entry>` +
	`<entry xml:id="tla2"><sense><cit type="translation" xml:lang="en"><quote>house</quote></cit></sense></entry>` +
	`<entry><form>no id</form></entry>` +
	`</body></text></TEI>`

func bagOf(property string, pairs ...string) registry.Bag {
	q := registry.NewQualified()
	for i := 0; i+1 < len(pairs); i += 2 {
		q.Register(pairs[i], pairs[i+1])
	}
	return registry.Bag{property: q}
}

func TestMergeTranslations(t *testing.T) {
	doc, err := tree.Parse(dictionary)
	require.NoError(t, err)

	reg := registry.New()
	reg.Put("1", bagOf(lexicon.PropertyTranslations, "de", "geier"))
	reg.Put("2", bagOf(lexicon.PropertyTranslations, "en", "house", "de", "Haus"))
	reg.Put("99", bagOf(lexicon.PropertyTranslations, "en", "dump only"))

	stats := NewEngine(nil).Merge(doc, "entry", reg, lexicon.PropertyTranslations, Translations{})

	assert.Equal(t, 2, stats.Elements)
	assert.Equal(t, []string{"1", "2"}, stats.Entries)
	assert.Equal(t, "added 2 translations to 2 entries.", stats.Summary())
	assert.Len(t, doc.Select("entry"), 3, "dump-only ids never become nodes")

	first := doc.Select("entry")[0]
	assert.True(t, Translations{}.Has(first, "de", "geier"))
}

func TestMergeSingleTranslation(t *testing.T) {
	doc, err := tree.Parse(`<body><entry xml:id="tla1"/></body>`)
	require.NoError(t, err)

	reg := registry.New()
	reg.Put("1", bagOf(lexicon.PropertyTranslations, "de", "geier"))

	stats := NewEngine(nil).Merge(doc, "entry", reg, lexicon.PropertyTranslations, Translations{})
	assert.Equal(t, Stats{Property: lexicon.PropertyTranslations, Elements: 1, Entries: []string{"1"}}, stats)
	assert.Len(t, doc.Select("cit"), 1)
}

func TestMergeIsIdempotent(t *testing.T) {
	tests := []struct {
		name     string
		doc      string
		kind     string
		property string
		ins      Inserter
		bags     map[string]registry.Bag
		want     int
	}{
		{
			name:     "relations",
			doc:      dictionary,
			kind:     "entry",
			property: lexicon.PropertyRelations,
			ins:      Relations{},
			bags: map[string]registry.Bag{
				"1": bagOf(lexicon.PropertyRelations, "partOf", "2", "partOf", "2", "root", "2"),
				"2": bagOf(lexicon.PropertyRelations, "contains", "1", "rootOf", "1"),
			},
			want: 4,
		},
		{
			name:     "translations",
			doc:      dictionary,
			kind:     "entry",
			property: lexicon.PropertyTranslations,
			ins:      Translations{},
			bags: map[string]registry.Bag{
				"1": bagOf(lexicon.PropertyTranslations, "de", "Geier", "de", "Geier", "de", "Aasgeier", "en", "vulture"),
				"2": bagOf(lexicon.PropertyTranslations, "en", "house", "en", "home"),
			},
			want: 4,
		},
		{
			name:     "dates with several values per bound",
			doc:      `<taxonomy><category xml:id="tlaA"/><category xml:id="tlaB"><catDesc><date from="-3900"/></catDesc></category></taxonomy>`,
			kind:     "category",
			property: lexicon.PropertyDates,
			ins:      DateBounds{},
			bags: map[string]registry.Bag{
				"A": bagOf(lexicon.PropertyDates, lexicon.Beginning, "-500", lexicon.Beginning, "-400", lexicon.End, "-100"),
				"B": bagOf(lexicon.PropertyDates, lexicon.Beginning, "-3800", lexicon.End, "-3650", lexicon.End, "-3600"),
			},
			want: 3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := tree.Parse(tt.doc)
			require.NoError(t, err)

			reg := registry.New()
			for _, id := range []string{"1", "2", "A", "B"} {
				if bag, ok := tt.bags[id]; ok {
					reg.Put(id, bag)
				}
			}

			engine := NewEngine(nil)
			first := engine.Merge(doc, tt.kind, reg, tt.property, tt.ins)
			assert.Equal(t, tt.want, first.Elements)

			after, err := doc.String()
			require.NoError(t, err)

			second := engine.Merge(doc, tt.kind, reg, tt.property, tt.ins)
			assert.Zero(t, second.Elements)
			assert.Empty(t, second.Entries)

			again, err := doc.String()
			require.NoError(t, err)
			assert.Equal(t, after, again)
		})
	}
}

func TestMergeDatesKeepsFirstValue(t *testing.T) {
	doc, err := tree.Parse(`<taxonomy><category xml:id="tlaA"/></taxonomy>`)
	require.NoError(t, err)

	reg := registry.New()
	reg.Put("A", bagOf(lexicon.PropertyDates, lexicon.Beginning, "-500", lexicon.Beginning, "-400", lexicon.End, "-100"))

	stats := NewEngine(nil).Merge(doc, "category", reg, lexicon.PropertyDates, DateBounds{})
	assert.Equal(t, 2, stats.Elements)

	out, err := doc.String()
	require.NoError(t, err)
	assert.Contains(t, out, `<date from="-500" to="-100"/>`)
}

func TestMergeDates(t *testing.T) {
	doc, err := tree.Parse(`<taxonomy>` +
		`<category xml:id="tlaA"><catDesc>Badari</catDesc></category>` +
		`<category xml:id="tlaB"><catDesc><date from="-3900" to="-3650"/>Naqada I</catDesc></category>` +
		`</taxonomy>`)
	require.NoError(t, err)

	reg := registry.New()
	reg.Put("A", bagOf(lexicon.PropertyDates, lexicon.Beginning, "-5000", lexicon.End, "-3900"))
	reg.Put("B", bagOf(lexicon.PropertyDates, lexicon.Beginning, "-3900", lexicon.End, "-3650"))

	stats := NewEngine(nil).Merge(doc, "category", reg, lexicon.PropertyDates, DateBounds{})
	assert.Equal(t, 2, stats.Elements)
	assert.Equal(t, []string{"A"}, stats.Entries)

	out, err := doc.String()
	require.NoError(t, err)
	assert.Contains(t, out, `<category xml:id="tlaA"><catDesc>Badari<date from="-5000" to="-3900"/></catDesc></category>`)
}
