// Package cmd — justify command.
// runJustify orchestrates the pipeline:
// load → (extract → normalize) → justify → render → write.
package cmd

import (
	"context"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"time"
	"unicode/utf8"

	"github.com/sirupsen/logrus"

	"github.com/gaurav-prasanna/justify/core"
	"github.com/gaurav-prasanna/justify/core/extract"
	"github.com/gaurav-prasanna/justify/core/fetch"
	"github.com/gaurav-prasanna/justify/core/justify"
	"github.com/gaurav-prasanna/justify/core/normalize"
	"github.com/gaurav-prasanna/justify/core/output"
	"github.com/gaurav-prasanna/justify/core/render"
	"github.com/gaurav-prasanna/justify/core/source"
)

func runJustify(ctx context.Context, args []string, opts *options, stdout io.Writer, log *logrus.Logger) error {
	width, err := parseWidth(args[0])
	if err != nil {
		return err
	}
	kind, location := args[1], args[2]
	if !source.Valid(kind) {
		return fmt.Errorf("%w, got %q", source.ErrInvalidSource, kind)
	}

	renderer, err := selectRenderer(opts.format)
	if err != nil {
		return err
	}

	var delim *regexp.Regexp
	if opts.delimiters != "" {
		delim, err = regexp.Compile(opts.delimiters)
		if err != nil {
			return &usageError{fmt.Errorf("invalid --delimiters: %w", err)}
		}
	}

	writer, err := output.New(opts.outputDir, stdout)
	if err != nil {
		return fmt.Errorf("initializing output writer: %w", err)
	}

	// 1. Load
	input, err := source.New(fetch.New(opts.timeout)).Load(ctx, kind, location)
	if err != nil {
		return err
	}
	log.WithFields(logrus.Fields{
		"width":     width,
		"from_file": kind == source.File,
		"source":    kind,
		"location":  input.Location,
	}).Info("Init done.")
	contents := input.Text
	if kind == source.URL {
		contents = truncate(contents, maxLoggedContents)
	}
	log.Debugf("Contents:\n%s", contents)

	// 2. Extract and normalize HTML
	text := input.Text
	if input.HTML || opts.html {
		text, err = htmlToText(text, extract.New(), normalize.New())
		if err != nil {
			return err
		}
		log.Debugf("Normalized text:\n%s", text)
	}

	// 3. Justify
	res, err := justify.Run(text, width, justify.Options{Delimiters: delim, Workers: opts.workers})
	if err != nil {
		return err
	}
	for _, tr := range res.Trace {
		log.WithFields(logrus.Fields{
			"line":      tr.Line,
			"wc":        tr.WordCount,
			"wlen":      tr.RawLength,
			"spaces":    tr.Gaps,
			"available": tr.Available,
			"base":      tr.BaseSpaces,
			"last":      tr.LastGapSpaces,
		}).Debug("justified line")
	}

	// 4. Render
	meta := core.Metadata{
		Source:      kind,
		Location:    input.Location,
		Width:       width,
		Lines:       len(res.Lines),
		GeneratedAt: time.Now().UTC().Format(time.RFC3339),
	}
	data, err := renderer.Render(res, meta)
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}

	// 5. Write
	path, err := writer.Write(kind, input.Location, data, renderer.Extension())
	if err != nil {
		return err
	}
	if path != "" {
		log.Infof("Written: %s", path)
	}
	return nil
}

// parseWidth accepts only plain decimal digits with a value between one
// and core.MaxWidth.
func parseWidth(s string) (int, error) {
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, fmt.Errorf("%w, got %q", core.ErrInvalidWidth, s)
		}
	}
	width, err := strconv.Atoi(s)
	if err != nil || width <= 0 || width > core.MaxWidth {
		return 0, fmt.Errorf("%w, got %q", core.ErrInvalidWidth, s)
	}
	return width, nil
}

// maxLoggedContents caps how much of a fetched page is logged.
const maxLoggedContents = 2048

// truncate shortens s to at most n runes, noting how much was cut.
func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	runes := []rune(s)
	return fmt.Sprintf("%s... (%d more characters)", string(runes[:n]), len(runes)-n)
}

func htmlToText(html string, extractor core.Extractor, normalizer core.Normalizer) (string, error) {
	content, err := extractor.Extract(html)
	if err != nil {
		return "", fmt.Errorf("extract: %w", err)
	}
	text, err := normalizer.Normalize(content)
	if err != nil {
		return "", fmt.Errorf("normalize: %w", err)
	}
	return text, nil
}

// selectRenderer creates the Renderer for the --format flag.
func selectRenderer(format string) (core.Renderer, error) {
	switch format {
	case "text", "txt":
		return render.NewTextRenderer(), nil
	case "json":
		return render.NewJSONRenderer(), nil
	case "pdf":
		return render.NewPDFRenderer(), nil
	default:
		return nil, &usageError{fmt.Errorf("unknown output format %q: use text, json or pdf", format)}
	}
}
