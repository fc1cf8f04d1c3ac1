package aed

import (
	"fmt"
	"iter"

	"github.com/c360studio/lexmerge/storage"
)

// Lemmata yields the lemma pages of a site snapshot in archive order. A
// positive limit caps the number of pages read. Iteration stops at the first
// page that fails to load, yielding its error.
func Lemmata(a *storage.Archive, limit int) iter.Seq2[*Lemma, error] {
	return func(yield func(*Lemma, error) bool) {
		names, err := a.Members("**/*.html")
		if err != nil {
			yield(nil, err)
			return
		}
		count := 0
		for _, name := range names {
			if !IsLemmaFile(name) {
				continue
			}
			if limit > 0 && count >= limit {
				return
			}
			count++

			lemma, err := readLemma(a, name)
			if !yield(lemma, err) || err != nil {
				return
			}
		}
	}
}

func readLemma(a *storage.Archive, name string) (*Lemma, error) {
	rc, err := a.Open(name)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	lemma, err := ParseLemma(LemmaID(name), rc)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return lemma, nil
}
