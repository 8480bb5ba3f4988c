// Package normalize implements the Normalizer interface.
// It converts cleaned HTML into Markdown and then strips the Markdown
// syntax, leaving the plain words that get justified.
package normalize

import (
	"fmt"
	"regexp"
	"strings"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"
)

var (
	headingMarker = regexp.MustCompile(`(?m)^#{1,6}\s+`)
	listMarker    = regexp.MustCompile(`(?m)^[ \t]*(?:[-*+]|\d+\.)[ \t]+`)
	quoteMarker   = regexp.MustCompile(`(?m)^>\s?`)
	ruleLine      = regexp.MustCompile(`(?m)^[ \t]*(?:[-*_][ \t]*){3,}$`)
	imageSyntax   = regexp.MustCompile(`!\[([^\]]*)\]\([^)]*\)`)
	linkSyntax    = regexp.MustCompile(`\[([^\]]*)\]\([^)]*\)`)
	inlineCode    = regexp.MustCompile("`([^`]+)`")
	emphasis      = regexp.MustCompile(`(^|[^\w*])(\*\*|__|\*|_)([^*_\s](?:[^*_]*[^*_\s])?)(\*\*|__|\*|_)`)
	escaped       = regexp.MustCompile(`\\([\\*_#\[\]()>+\-.!` + "`" + `|])`)
)

// TextNormalizer converts HTML to plain text via Markdown.
type TextNormalizer struct{}

// New creates a TextNormalizer.
func New() *TextNormalizer {
	return &TextNormalizer{}
}

// Normalize converts a cleaned HTML fragment into plain text.
func (n *TextNormalizer) Normalize(html string) (string, error) {
	markdown, err := htmltomarkdown.ConvertString(html)
	if err != nil {
		return "", fmt.Errorf("converting HTML to markdown: %w", err)
	}
	return StripMarkdown(markdown), nil
}

// StripMarkdown removes block and inline Markdown syntax, keeping the text.
func StripMarkdown(md string) string {
	text := ruleLine.ReplaceAllString(md, "")
	text = headingMarker.ReplaceAllString(text, "")
	text = quoteMarker.ReplaceAllString(text, "")
	text = listMarker.ReplaceAllString(text, "")
	text = imageSyntax.ReplaceAllString(text, "$1")
	text = linkSyntax.ReplaceAllString(text, "$1")
	text = inlineCode.ReplaceAllString(text, "$1")
	text = emphasis.ReplaceAllString(text, "$1$3")
	text = escaped.ReplaceAllString(text, "$1")
	return strings.TrimSpace(text)
}
