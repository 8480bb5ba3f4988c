// Package output writes rendered output to stdout or to a directory.
// File names are derived from the input source: the base name of an input
// file, the host and path of a URL, or "stdin" for inline text.
package output

import (
	"fmt"
	"io"
	"net/url"
	"os"
	"path/filepath"
	"strings"
)

// Writer writes rendered output either to Stdout or, when OutputDir is set,
// to a file in that directory.
type Writer struct {
	OutputDir string
	Stdout    io.Writer
}

// New creates a Writer. An empty outputDir means everything goes to stdout.
func New(outputDir string, stdout io.Writer) (*Writer, error) {
	if outputDir != "" {
		if err := os.MkdirAll(outputDir, 0755); err != nil {
			return nil, fmt.Errorf("creating output directory: %w", err)
		}
	}
	return &Writer{OutputDir: outputDir, Stdout: stdout}, nil
}

// Write emits data for the given source. It returns the path written, or
// an empty string when writing to stdout.
func (w *Writer) Write(source, location string, data []byte, ext string) (string, error) {
	if w.OutputDir == "" {
		if _, err := w.Stdout.Write(data); err != nil {
			return "", fmt.Errorf("writing output: %w", err)
		}
		return "", nil
	}

	path := filepath.Join(w.OutputDir, Filename(source, location)+ext)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("writing file %s: %w", path, err)
	}
	return path, nil
}

// Filename derives an output name (without extension) from an input source.
func Filename(source, location string) string {
	switch source {
	case "file":
		base := filepath.Base(location)
		if name := strings.TrimSuffix(base, filepath.Ext(base)); name != "" {
			return sanitize(name)
		}
		return sanitize(base)
	case "url":
		return filenameFromURL(location)
	default:
		return "stdin"
	}
}

// filenameFromURL converts a URL into a flat filename.
// Example: https://example.com/docs/intro → example_com_docs_intro
func filenameFromURL(rawURL string) string {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return sanitize(rawURL)
	}

	parts := []string{sanitize(parsed.Host)}
	path := strings.Trim(parsed.Path, "/")
	if path != "" {
		for _, seg := range strings.Split(path, "/") {
			parts = append(parts, sanitize(seg))
		}
	}
	return strings.Join(parts, "_")
}

// sanitize replaces characters outside [A-Za-z0-9_-] with underscores.
func sanitize(s string) string {
	var b strings.Builder
	for _, ch := range s {
		if (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z') || (ch >= '0' && ch <= '9') || ch == '-' || ch == '_' {
			b.WriteRune(ch)
		} else {
			b.WriteRune('_')
		}
	}
	return b.String()
}
