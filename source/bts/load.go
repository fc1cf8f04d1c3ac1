package bts

import (
	"fmt"
	"iter"
	"slices"

	"github.com/c360studio/lexmerge/storage"
	"github.com/spf13/afero"
	"github.com/tidwall/gjson"
)

// Vocabulary names inside a dump archive.
const (
	VocabLemmata   = "aaew_wlist"
	VocabThesaurus = "aaew_ths"
)

// LoadVocabulary reads the records of vocab from an opened dump archive.
// Array elements that are not JSON objects are skipped.
func LoadVocabulary(a *storage.Archive, vocab string) ([]Record, error) {
	data, err := a.ReadFile(vocab + ".json")
	if err != nil {
		return nil, fmt.Errorf("load vocabulary %s: %w", vocab, err)
	}
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("vocabulary %s: %w: malformed JSON", vocab, ErrInvalidDump)
	}

	doc := gjson.ParseBytes(data)
	if !doc.IsArray() {
		return nil, fmt.Errorf("vocabulary %s: %w: expected array", vocab, ErrInvalidDump)
	}

	items := doc.Array()
	records := make([]Record, 0, len(items))
	for _, item := range items {
		if item.IsObject() {
			records = append(records, Record{raw: item})
		}
	}
	return records, nil
}

// Load opens the dump archive at path and reads the records of vocab.
func Load(fsys afero.Fs, path, vocab string) ([]Record, error) {
	a, err := storage.OpenArchive(fsys, path)
	if err != nil {
		return nil, err
	}
	defer a.Close()
	return LoadVocabulary(a, vocab)
}

// Records yields records in dump order.
func Records(records []Record) iter.Seq[Record] {
	return slices.Values(records)
}
