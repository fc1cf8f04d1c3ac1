package aed

import (
	"errors"
	"fmt"
	"io"
	"path"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// ErrNoBody is returned for pages without a body element.
var ErrNoBody = errors.New("lemma page has no body")

var lemmaID = regexp.MustCompile(`^[0-9]+$`)

// IsLemmaFile reports whether p names a lemma page: a .html file whose base
// name is all digits.
func IsLemmaFile(p string) bool {
	if strings.HasSuffix(p, "/") {
		return false
	}
	name := path.Base(p)
	ext := path.Ext(name)
	if ext != ".html" {
		return false
	}
	return lemmaID.MatchString(strings.TrimSuffix(name, ext))
}

// LemmaID returns the id encoded in a lemma page name.
func LemmaID(p string) string {
	return strings.TrimSuffix(path.Base(p), ".html")
}

// Lemma is the body of a lemma page.
type Lemma struct {
	ID   string
	body *goquery.Selection
}

// ParseLemma reads a lemma page and keeps its body.
func ParseLemma(id string, r io.Reader) (*Lemma, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parse lemma %s: %w", id, err)
	}
	body := doc.Find("body").First()
	if body.Length() == 0 || (body.Children().Length() == 0 && strings.TrimSpace(body.Text()) == "") {
		return nil, fmt.Errorf("lemma %s: %w", id, ErrNoBody)
	}
	return &Lemma{ID: id, body: body}, nil
}

// Find selects elements inside the body.
func (l *Lemma) Find(selector string) *goquery.Selection {
	return l.body.Find(selector)
}

// Meaning returns the leading text of the main information tooltip.
func (l *Lemma) Meaning() string {
	tooltip := l.body.Find(".main_information > .tooltip").First()
	if tooltip.Length() == 0 {
		return ""
	}
	return strings.TrimSpace(tooltip.Contents().First().Text())
}

// Occurrences returns the transcriptions of the most relevant occurrences.
func (l *Lemma) Occurrences() []string {
	sel := l.body.Find("p.most_relevant_occurrences > .transcription")
	return sel.Map(func(_ int, s *goquery.Selection) string {
		return strings.TrimSpace(s.Text())
	})
}

// HTML returns the body element as HTML.
func (l *Lemma) HTML() (string, error) {
	return goquery.OuterHtml(l.body)
}
