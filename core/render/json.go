// Package render — JSON renderer.
// Emits the justified lines together with the per-line trace, so the
// spacing decisions can be inspected without re-running the tool.
package render

import (
	"encoding/json"
	"fmt"

	"github.com/gaurav-prasanna/justify/core"
)

// Document is the complete JSON output of a run.
type Document struct {
	Metadata core.Metadata    `json:"metadata"`
	Lines    []string         `json:"lines"`
	Trace    []core.LineTrace `json:"trace"`
}

// JSONRenderer produces structured JSON output.
type JSONRenderer struct{}

// NewJSONRenderer creates a JSONRenderer.
func NewJSONRenderer() *JSONRenderer {
	return &JSONRenderer{}
}

// Render converts the result and metadata into indented JSON.
func (r *JSONRenderer) Render(res *core.Result, meta core.Metadata) ([]byte, error) {
	doc := Document{
		Metadata: meta,
		Lines:    res.Lines,
		Trace:    res.Trace,
	}
	if doc.Lines == nil {
		doc.Lines = []string{}
	}
	if doc.Trace == nil {
		doc.Trace = []core.LineTrace{}
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling JSON: %w", err)
	}
	return append(data, '\n'), nil
}

// Extension returns the file extension for JSON output.
func (r *JSONRenderer) Extension() string {
	return ".json"
}
