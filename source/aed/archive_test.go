package aed

import (
	"testing"

	"github.com/c360studio/lexmerge/storage"
	"github.com/klauspost/compress/zip"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSite(t *testing.T, fsys afero.Fs, members [][2]string) *storage.Archive {
	t.Helper()
	f, err := fsys.Create("aed.zip")
	require.NoError(t, err)
	zw := zip.NewWriter(f)
	for _, m := range members {
		w, err := zw.Create(m[0])
		require.NoError(t, err)
		_, err = w.Write([]byte(m[1]))
		require.NoError(t, err)
	}
	require.NoError(t, zw.Close())
	require.NoError(t, f.Close())

	a, err := storage.OpenArchive(fsys, "aed.zip")
	require.NoError(t, err)
	t.Cleanup(func() { a.Close() })
	return a
}

func TestLemmata(t *testing.T) {
	a := writeSite(t, afero.NewMemMapFs(), [][2]string{
		{"aed-gh-pages/index.html", "<html><body>index</body></html>"},
		{"aed-gh-pages/89500.html", samplePage},
		{"aed-gh-pages/Z3.html", "<html><body>sign</body></html>"},
		{"aed-gh-pages/10.html", "<html><body><p>ten</p></body></html>"},
		{"aed-gh-pages/11.html", "<html><body><p>eleven</p></body></html>"},
	})

	var ids []string
	for l, err := range Lemmata(a, 0) {
		require.NoError(t, err)
		ids = append(ids, l.ID)
	}
	assert.Equal(t, []string{"89500", "10", "11"}, ids)

	ids = nil
	for l, err := range Lemmata(a, 2) {
		require.NoError(t, err)
		ids = append(ids, l.ID)
	}
	assert.Equal(t, []string{"89500", "10"}, ids)
}

func TestLemmataStopsOnError(t *testing.T) {
	a := writeSite(t, afero.NewMemMapFs(), [][2]string{
		{"1.html", "<html><body></body></html>"},
		{"2.html", "<html><body><p>two</p></body></html>"},
	})

	var errs []error
	for _, err := range Lemmata(a, 0) {
		errs = append(errs, err)
	}
	require.Len(t, errs, 1)
	assert.ErrorIs(t, errs[0], ErrNoBody)
}
