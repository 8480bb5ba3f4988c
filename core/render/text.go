// Package render provides output renderers for justified text.
// This file implements the plain text renderer.
package render

import (
	"strings"

	"github.com/gaurav-prasanna/justify/core"
)

// TextRenderer writes one justified line per row, newline terminated.
type TextRenderer struct{}

// NewTextRenderer creates a TextRenderer.
func NewTextRenderer() *TextRenderer {
	return &TextRenderer{}
}

// Render joins the lines with newlines.
func (r *TextRenderer) Render(res *core.Result, meta core.Metadata) ([]byte, error) {
	if len(res.Lines) == 0 {
		return nil, nil
	}
	return []byte(strings.Join(res.Lines, "\n") + "\n"), nil
}

// Extension returns the file extension for text output.
func (r *TextRenderer) Extension() string {
	return ".txt"
}
