// Package pack assigns words to lines greedily.
package pack

import "github.com/gaurav-prasanna/justify/core"

// Lines packs words into line groups no wider than width, assuming one
// space between neighbouring words. A word that fits exactly is kept on
// the current line. The first word of a line is always accepted, so every
// group holds at least one word.
func Lines(words []core.Word, width int) []core.LineGroup {
	if len(words) == 0 {
		return nil
	}

	var (
		lines []core.LineGroup
		acc   core.LineGroup
	)
	for _, w := range words {
		switch {
		case acc.WordCount == 0:
			acc = core.LineGroup{Words: []core.Word{w}, RawLength: w.Length, WordCount: 1}
		case acc.RawLength+w.Length+1 <= width:
			acc.Words = append(acc.Words, w)
			acc.RawLength += w.Length + 1
			acc.WordCount++
		default:
			lines = append(lines, acc)
			acc = core.LineGroup{Words: []core.Word{w}, RawLength: w.Length, WordCount: 1}
		}
	}
	return append(lines, acc)
}
