package core

import (
	"errors"
	"fmt"
)

// MaxWidth is the largest accepted line width.
const MaxWidth = 1 << 16

var (
	// ErrEmptyInput is returned when the input holds no words.
	ErrEmptyInput = errors.New("no words were found in the input")
	// ErrInvalidWidth is returned for a width below one or above MaxWidth.
	ErrInvalidWidth = errors.New("width must be a positive integer")
)

// WordTooLongError reports a word that cannot fit on a line of the given width.
type WordTooLongError struct {
	Word   string
	Length int
	Width  int
}

func (e *WordTooLongError) Error() string {
	return fmt.Sprintf("word %q is %d characters long, longer than width %d: unable to justify", e.Word, e.Length, e.Width)
}
