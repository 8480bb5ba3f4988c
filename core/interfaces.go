// Package core defines the data model and stage interfaces for justify.
// The algorithm stages (tokenize, pack, justify) are pure functions over
// these types; the I/O stages are interfaces so each can be swapped in tests.
package core

import "context"

// Word is a single token of the input and its length in runes.
type Word struct {
	Text   string `json:"text"`
	Length int    `json:"length"`
}

// LineGroup is the set of consecutive words assigned to one output line,
// before any padding is computed.
type LineGroup struct {
	Words []Word
	// RawLength is the length of the words with exactly one space per gap.
	RawLength int
	WordCount int
}

// LineTrace records how a single line was justified.
type LineTrace struct {
	Line          int `json:"line"`
	WordCount     int `json:"word_count"`
	RawLength     int `json:"raw_length"`
	Gaps          int `json:"gaps"`
	Available     int `json:"available"`
	BaseSpaces    int `json:"base_spaces"`
	LastGapSpaces int `json:"last_gap_spaces"`
}

// Result is the output of a full justification run.
type Result struct {
	Lines []string    `json:"lines"`
	Trace []LineTrace `json:"trace"`
}

// Metadata describes where the justified text came from.
type Metadata struct {
	Source      string `json:"source"`   // file, stdin or url
	Location    string `json:"location"` // path, url, or empty for inline text
	Width       int    `json:"width"`
	Lines       int    `json:"lines"`
	GeneratedAt string `json:"generated_at"` // ISO8601
}

// Fetcher retrieves raw HTML from a URL.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (string, error)
}

// Extractor pulls the main content from raw HTML, stripping noise.
type Extractor interface {
	Extract(html string) (string, error)
}

// Normalizer turns cleaned HTML into plain text ready for tokenizing.
type Normalizer interface {
	Normalize(html string) (string, error)
}

// Renderer converts justified lines (and metadata) into a final output format.
type Renderer interface {
	Render(res *Result, meta Metadata) ([]byte, error)
	// Extension returns the file extension for this renderer (e.g. ".txt", ".pdf").
	Extension() string
}
