// Package tokenize splits input text into words and validates them
// against the target width before any packing happens.
package tokenize

import (
	"regexp"
	"unicode/utf8"

	"github.com/gaurav-prasanna/justify/core"
)

// DefaultDelimiters separates words on space, newline and tab.
// Carriage returns and other whitespace are kept as part of a word.
var DefaultDelimiters = regexp.MustCompile(" |\n|\t")

// Words splits text on delim (DefaultDelimiters if nil) and returns the
// non-empty tokens in order. It fails with core.ErrEmptyInput when there
// are no tokens and with *core.WordTooLongError for the first token
// longer than width.
func Words(text string, width int, delim *regexp.Regexp) ([]core.Word, error) {
	if delim == nil {
		delim = DefaultDelimiters
	}

	var words []core.Word
	for _, tok := range delim.Split(text, -1) {
		if tok == "" {
			continue
		}
		words = append(words, core.Word{Text: tok, Length: utf8.RuneCountInString(tok)})
	}

	if len(words) == 0 {
		return nil, core.ErrEmptyInput
	}

	for _, w := range words {
		if w.Length > width {
			return nil, &core.WordTooLongError{Word: w.Text, Length: w.Length, Width: width}
		}
	}
	return words, nil
}
