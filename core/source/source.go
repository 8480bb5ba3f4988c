// Package source resolves the input selector given on the command line
// into the raw text to justify.
package source

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/gaurav-prasanna/justify/core"
	"github.com/gaurav-prasanna/justify/core/fetch"
)

// Input source kinds.
const (
	File  = "file"
	Stdin = "stdin" // the argument is the text itself
	URL   = "url"
)

var (
	// ErrInvalidSource is returned for an unknown source kind.
	ErrInvalidSource = errors.New(`source must be "file", "stdin" or "url"`)
	// ErrNotFound is returned when an input file does not exist.
	ErrNotFound = errors.New("path does not exist")
)

// Input is the loaded text and where it came from.
type Input struct {
	Kind     string
	Location string
	Text     string
	// HTML is set when Text must go through extraction before tokenizing.
	HTML bool
}

// Loader reads inputs. Fetcher is only used for URL sources.
type Loader struct {
	Fetcher core.Fetcher
}

// New creates a Loader backed by the given fetcher.
func New(fetcher core.Fetcher) *Loader {
	return &Loader{Fetcher: fetcher}
}

// Valid reports whether kind is a known source kind.
func Valid(kind string) bool {
	switch kind {
	case File, Stdin, URL:
		return true
	}
	return false
}

// Load resolves arg according to kind.
func (l *Loader) Load(ctx context.Context, kind, arg string) (*Input, error) {
	switch kind {
	case Stdin:
		return &Input{Kind: kind, Text: arg}, nil
	case File:
		data, err := os.ReadFile(arg)
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, arg)
		}
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", arg, err)
		}
		return &Input{Kind: kind, Location: arg, Text: string(data)}, nil
	case URL:
		if l.Fetcher == nil {
			return nil, fmt.Errorf("no fetcher configured for %s", arg)
		}
		location := fetch.NormalizeURL(arg)
		html, err := l.Fetcher.Fetch(ctx, location)
		if err != nil {
			return nil, fmt.Errorf("fetch: %w", err)
		}
		return &Input{Kind: kind, Location: location, Text: html, HTML: true}, nil
	default:
		return nil, fmt.Errorf("%w, got %q", ErrInvalidSource, kind)
	}
}
