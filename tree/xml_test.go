package tree

import (
	"errors"
	"os"
	"testing"

	"github.com/c360studio/lexmerge/vocabulary/lexicon"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const dictionary = `<?xml version="1.0" encoding="UTF-8"?>
<TEI xmlns="http://www.tei-c.org/ns/1.0">
  <text><body>
    <entry xml:id="tla1"><form>A</form>
      <sense><cit type="translation" xml:lang="en"><quote>vulture</quote></cit></sense>
    </entry>
    <entry xml:id="tla2"><form>B</form></entry>
    <superEntry><entry xml:id="tla3"/></superEntry>
  </body></text>
</TEI>`

func TestLoadAndSelect(t *testing.T) {
	fsys := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fsys, "files/dictionary.xml", []byte(dictionary), 0o644))

	doc, err := Load(fsys, "files/dictionary.xml")
	require.NoError(t, err)
	assert.Equal(t, "TEI", doc.Root().Kind())

	entries := doc.Select("entry")
	require.Len(t, entries, 3)

	var ids []string
	for _, e := range entries {
		id, ok := ID(e)
		require.True(t, ok)
		ids = append(ids, id)
	}
	assert.Equal(t, []string{"1", "2", "3"}, ids)
}

func TestLoadErrors(t *testing.T) {
	fsys := afero.NewMemMapFs()
	_, err := Load(fsys, "missing.xml")
	assert.ErrorIs(t, err, ErrLoad)

	require.NoError(t, afero.WriteFile(fsys, "broken.xml", []byte("<TEI><entry></TEI>"), 0o644))
	_, err = Load(fsys, "broken.xml")
	assert.ErrorIs(t, err, ErrLoad)

	_, err = Parse("")
	assert.ErrorIs(t, err, ErrLoad)
}

func TestNodeAttributes(t *testing.T) {
	doc, err := Parse(dictionary)
	require.NoError(t, err)

	cit, ok := First(doc.Select("sense")[0], "cit")
	require.True(t, ok)

	lang, ok := cit.Attr(lexicon.XMLNamespace, "lang")
	require.True(t, ok)
	assert.Equal(t, "en", lang)

	_, ok = cit.Attr("", "lang")
	assert.False(t, ok, "unqualified lookup must not match xml:lang")

	typ, ok := cit.Attr("", "type")
	require.True(t, ok)
	assert.Equal(t, "translation", typ)

	cit.SetAttr("", "type", "example")
	typ, _ = cit.Attr("", "type")
	assert.Equal(t, "example", typ)
}

func TestTextIsFullText(t *testing.T) {
	doc, err := Parse(`<catDesc><date from="-1745" to="-1730"/>Sebekhotep <hi>IV.</hi></catDesc>`)
	require.NoError(t, err)
	assert.Equal(t, "Sebekhotep IV.", doc.Root().Text())
}

func TestAppendElement(t *testing.T) {
	doc, err := Parse(`<entry/>`)
	require.NoError(t, err)

	sense := doc.Root().AppendElement("sense")
	cit := sense.AppendElement("cit",
		Attr{Key: "type", Value: "translation"},
		Attr{Space: lexicon.XMLNamespace, Key: "lang", Value: "de"})
	cit.AppendElement("quote").SetText("geier")

	out, err := doc.String()
	require.NoError(t, err)
	assert.Equal(t, `<entry><sense><cit type="translation" xml:lang="de"><quote>geier</quote></cit></sense></entry>`, out)

	assert.Len(t, doc.Root().Children(""), 1)
	assert.Empty(t, doc.Root().Children("xr"))
}

func TestSaveReplacesFile(t *testing.T) {
	fsys := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fsys, "d.xml", []byte(`<entry xml:id="tla1"/>`), 0o644))

	doc, err := Load(fsys, "d.xml")
	require.NoError(t, err)
	doc.Root().AppendElement("xr", Attr{Key: "type", Value: "root"})
	require.NoError(t, doc.Save())

	data, err := afero.ReadFile(fsys, "d.xml")
	require.NoError(t, err)
	assert.Equal(t, `<entry xml:id="tla1"><xr type="root"/></entry>`, string(data))

	leftovers, err := afero.Glob(fsys, ".d.xml.*")
	require.NoError(t, err)
	assert.Empty(t, leftovers)
}

func TestSaveIndent(t *testing.T) {
	fsys := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fsys, "d.xml", []byte(`<a><b/></a>`), 0o644))

	doc, err := Load(fsys, "d.xml")
	require.NoError(t, err)
	doc.SetIndent(2)
	require.NoError(t, doc.Save())

	data, err := afero.ReadFile(fsys, "d.xml")
	require.NoError(t, err)
	assert.Contains(t, string(data), "<a>\n  <b/>\n</a>")
}

type failingRenameFs struct {
	afero.Fs
}

func (f failingRenameFs) Rename(oldname, newname string) error {
	return &os.LinkError{Op: "rename", Old: oldname, New: newname, Err: errors.New("read-only")}
}

func TestSaveFailureKeepsOriginal(t *testing.T) {
	mem := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(mem, "d.xml", []byte(`<entry/>`), 0o644))
	fsys := failingRenameFs{Fs: mem}

	doc, err := Load(fsys, "d.xml")
	require.NoError(t, err)
	doc.Root().AppendElement("sense")

	err = doc.Save()
	assert.ErrorIs(t, err, ErrSave)

	data, err := afero.ReadFile(mem, "d.xml")
	require.NoError(t, err)
	assert.Equal(t, `<entry/>`, string(data))
}

func TestSaveWithoutLocation(t *testing.T) {
	doc, err := Parse(`<entry/>`)
	require.NoError(t, err)
	assert.ErrorIs(t, doc.Save(), ErrSave)
}
