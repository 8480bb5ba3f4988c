// Package justify pads packed lines to an exact width and composes the
// tokenize -> pack -> justify pipeline.
//
// Spaces are distributed evenly across gaps using integer division; the
// remainder always lands in the last gap of the line. Single-word lines are
// emitted unpadded. The last line of the text is treated like any other.
package justify

import (
	"regexp"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/gaurav-prasanna/justify/core"
	"github.com/gaurav-prasanna/justify/core/pack"
	"github.com/gaurav-prasanna/justify/core/tokenize"
)

// Options tunes a Run.
type Options struct {
	// Delimiters splits the text into words. Nil means tokenize.DefaultDelimiters.
	Delimiters *regexp.Regexp
	// Workers justifies lines concurrently when greater than one.
	Workers int
}

// Text justifies text to width using the default delimiters.
func Text(text string, width int) ([]string, error) {
	res, err := Run(text, width, Options{})
	if err != nil {
		return nil, err
	}
	return res.Lines, nil
}

// Run tokenizes, packs and justifies text. Either every line is produced or
// an error is returned; there is no partial output.
func Run(text string, width int, opts Options) (*core.Result, error) {
	if width < 1 || width > core.MaxWidth {
		return nil, core.ErrInvalidWidth
	}

	words, err := tokenize.Words(text, width, opts.Delimiters)
	if err != nil {
		return nil, err
	}
	groups := pack.Lines(words, width)

	res := &core.Result{
		Lines: make([]string, len(groups)),
		Trace: make([]core.LineTrace, len(groups)),
	}

	if opts.Workers <= 1 {
		for i, g := range groups {
			res.Lines[i], res.Trace[i] = Line(g, width)
			res.Trace[i].Line = i + 1
		}
		return res, nil
	}

	// Each goroutine owns one index, so output order matches input order.
	var eg errgroup.Group
	eg.SetLimit(opts.Workers)
	for i, g := range groups {
		eg.Go(func() error {
			res.Lines[i], res.Trace[i] = Line(g, width)
			res.Trace[i].Line = i + 1
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return res, nil
}

// Line pads a single group to width. The returned trace has Line unset.
func Line(g core.LineGroup, width int) (string, core.LineTrace) {
	if len(g.Words) == 0 {
		return "", core.LineTrace{}
	}

	gaps := len(g.Words) - 1
	available := width - (g.RawLength - gaps)
	tr := core.LineTrace{
		WordCount: g.WordCount,
		RawLength: g.RawLength,
		Gaps:      gaps,
		Available: available,
	}

	if gaps == 0 {
		return g.Words[0].Text, tr
	}

	// available >= gaps for any packed group, so this is the floor. Groups
	// built by hand that overflow width still get one space per gap.
	tr.BaseSpaces = max(available/gaps, 1)

	var b strings.Builder
	emitted := 0
	for i, w := range g.Words[:gaps] {
		b.WriteString(w.Text)
		emitted += w.Length
		if i < gaps-1 {
			b.WriteString(strings.Repeat(" ", tr.BaseSpaces))
			emitted += tr.BaseSpaces
		}
	}

	last := g.Words[gaps]
	tr.LastGapSpaces = max(width-emitted-last.Length, 1)
	b.WriteString(strings.Repeat(" ", tr.LastGapSpaces))
	b.WriteString(last.Text)
	return b.String(), tr
}
