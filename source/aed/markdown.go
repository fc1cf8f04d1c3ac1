package aed

import (
	"fmt"
	"regexp"
	"strings"

	md "github.com/JohannesKaufmann/html-to-markdown"
	"github.com/JohannesKaufmann/html-to-markdown/plugin"
)

var excessiveLines = regexp.MustCompile(`\n{3,}`)

// Renderer converts lemma bodies to Markdown.
type Renderer struct {
	converter *md.Converter
}

// NewRenderer creates a Markdown renderer with GitHub flavored tables.
func NewRenderer() *Renderer {
	converter := md.NewConverter("", true, nil)
	converter.Use(plugin.GitHubFlavored())
	converter.Remove("script", "style")
	return &Renderer{converter: converter}
}

// Render returns the lemma body as Markdown.
func (r *Renderer) Render(l *Lemma) (string, error) {
	html, err := l.HTML()
	if err != nil {
		return "", fmt.Errorf("render lemma %s: %w", l.ID, err)
	}
	out, err := r.converter.ConvertString(html)
	if err != nil {
		return "", fmt.Errorf("render lemma %s: %w", l.ID, err)
	}
	out = excessiveLines.ReplaceAllString(out, "\n\n")
	return strings.TrimSpace(out) + "\n", nil
}
