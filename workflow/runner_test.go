package workflow

import (
	"context"
	"testing"

	"github.com/c360studio/lexmerge/graph"
	"github.com/c360studio/lexmerge/metrics"
	"github.com/c360studio/lexmerge/storage"
	"github.com/c360studio/lexmerge/tree"
	"github.com/c360studio/lexmerge/vocabulary/lexicon"
	"github.com/klauspost/compress/zip"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const lemmaDump = `[
	{"_id": "1", "translations": {"translations": [{"lang": "de", "value": "Geier"}]},
	 "relations": [{"type": "partOf", "objectId": "2"}, {"type": "successor", "objectId": "404"}]},
	{"_id": "2", "translations": {"translations": [{"lang": "en", "value": "house"}]}},
	{"_id": "3", "relations": [{"type": "referencing", "objectId": "1"}]}
]`

const thesaurusDump = `[
	{"_id": "FKLXKTC5RJFSZCBDU5HWK6KHGU", "type": "date"},
	{"_id": "P1", "type": "date", "passport": {"children": [{"type": "thesaurus_date", "children": [
		{"type": "main_group", "children": [
			{"type": "beginning", "value": "-2000"},
			{"type": "end", "value": "-1500"}
		]}
	]}]}}
]`

const dictionary = `<TEI><text><body>
<entry xml:id="tla1"><form>A</form></entry>
<entry xml:id="tla2"><form>B</form></entry>
<entry xml:id="tla3"><form>C</form></entry>
</body></text></TEI>`

const thesaurus = `<TEI><teiHeader><encodingDesc><classDecl><taxonomy>
<category xml:id="tlaFKLXKTC5RJFSZCBDU5HWK6KHGU"><catDesc>unknown</catDesc></category>
<category xml:id="tlaP1"><catDesc>period</catDesc></category>
</taxonomy></classDecl></encodingDesc></teiHeader></TEI>`

func setup(t *testing.T) afero.Fs {
	t.Helper()
	fsys := afero.NewMemMapFs()
	f, err := fsys.Create("dump/vocabulary.zip")
	require.NoError(t, err)
	zw := zip.NewWriter(f)
	for name, body := range map[string]string{
		"aaew_wlist.json": lemmaDump,
		"aaew_ths.json":   thesaurusDump,
	} {
		w, err := zw.Create(name)
		require.NoError(t, err)
		_, err = w.Write([]byte(body))
		require.NoError(t, err)
	}
	require.NoError(t, zw.Close())
	require.NoError(t, f.Close())

	require.NoError(t, afero.WriteFile(fsys, "dictionary.xml", []byte(dictionary), 0o644))
	require.NoError(t, afero.WriteFile(fsys, "thesaurus.xml", []byte(thesaurus), 0o644))
	return fsys
}

func refs(t *testing.T, fsys afero.Fs, id, predicate string) []string {
	t.Helper()
	doc, err := tree.Load(fsys, "dictionary.xml")
	require.NoError(t, err)
	var targets []string
	for _, entry := range doc.Select(KindEntry) {
		if got, _ := tree.ID(entry); got != id {
			continue
		}
		for _, xr := range entry.Children("xr") {
			if typ, _ := xr.Attr("", "type"); typ != predicate {
				continue
			}
			for _, ref := range xr.Children("ref") {
				target, _ := ref.Attr("", "target")
				targets = append(targets, target)
			}
		}
	}
	return targets
}

func TestRunRelations(t *testing.T) {
	fsys := setup(t)
	rec := metrics.New()
	runner := NewRunner(fsys, nil, rec)

	result, err := runner.Run(context.Background(), LemmaRelations("dump/vocabulary.zip", "dictionary.xml"))
	require.NoError(t, err)

	assert.NotEmpty(t, result.RunID)
	assert.Equal(t, 3, result.Extracted)
	assert.Equal(t, graph.Stats{Dropped: 1, Mirrored: 2}, result.Repair)
	assert.Equal(t, 4, result.Merge.Elements)

	assert.Equal(t, []string{"tla2"}, refs(t, fsys, "1", string(lexicon.PartOf)))
	assert.Empty(t, refs(t, fsys, "1", string(lexicon.Successor)))
	assert.Equal(t, []string{"tla1"}, refs(t, fsys, "2", string(lexicon.Contains)))
	assert.Equal(t, []string{"tla3"}, refs(t, fsys, "1", string(lexicon.ReferencedBy)))

	second, err := runner.Run(context.Background(), LemmaRelations("dump/vocabulary.zip", "dictionary.xml"))
	require.NoError(t, err)
	assert.Zero(t, second.Merge.Elements)
}

func TestRunDates(t *testing.T) {
	fsys := setup(t)

	result, err := NewRunner(fsys, nil, nil).Run(context.Background(), ThesaurusDates("dump/vocabulary.zip", "thesaurus.xml"))
	require.NoError(t, err)
	assert.Equal(t, 4, result.Merge.Elements)
	assert.Equal(t, "added 4 dates to 2 entries.", result.Merge.Summary())

	doc, err := tree.Load(fsys, "thesaurus.xml")
	require.NoError(t, err)
	categories := doc.Select(KindCategory)
	require.Len(t, categories, 2)

	date := func(i int) (string, string) {
		catDesc, ok := tree.First(categories[i], "catDesc")
		require.True(t, ok)
		d, ok := tree.First(catDesc, "date")
		require.True(t, ok)
		from, _ := d.Attr("", "from")
		to, _ := d.Attr("", "to")
		return from, to
	}
	from, to := date(0)
	assert.Equal(t, "-5500", from)
	assert.Equal(t, "900", to)
	from, to = date(1)
	assert.Equal(t, "-2000", from)
	assert.Equal(t, "-1500", to)
}

func TestRunLoadFailureWritesNothing(t *testing.T) {
	fsys := setup(t)

	_, err := NewRunner(fsys, nil, nil).Run(context.Background(), LemmaTranslations("missing.zip", "dictionary.xml"))
	assert.ErrorIs(t, err, storage.ErrNotFound)

	data, err := afero.ReadFile(fsys, "dictionary.xml")
	require.NoError(t, err)
	assert.Equal(t, dictionary, string(data))
}

func TestRunRejectsPatchOrder(t *testing.T) {
	fsys := setup(t)
	job := LemmaRelations("dump/vocabulary.zip", "dictionary.xml")
	job.Steps = []string{StepMirror, StepVerify}

	_, err := NewRunner(fsys, nil, nil).Run(context.Background(), job)
	assert.ErrorIs(t, err, ErrPatchOrder)
}

func TestRunCanceled(t *testing.T) {
	fsys := setup(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewRunner(fsys, nil, nil).Run(ctx, LemmaTranslations("dump/vocabulary.zip", "dictionary.xml"))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRegistryOnly(t *testing.T) {
	fsys := setup(t)

	reg, stats, err := NewRunner(fsys, nil, nil).Registry(context.Background(), LemmaRelations("dump/vocabulary.zip", ""))
	require.NoError(t, err)
	assert.Equal(t, 1, stats.Dropped)

	bag, ok := reg.Get("2")
	require.True(t, ok)
	assert.Equal(t, []string{"1"}, bag.Property(lexicon.PropertyRelations).Get(string(lexicon.Contains)))
}
