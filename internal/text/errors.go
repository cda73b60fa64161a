package text

import "errors"

// Sentinel errors for text package.
var (
	// ErrEmptyFontData is returned when font data is empty.
	ErrEmptyFontData = errors.New("text: empty font data")

	// ErrInvalidSize is returned when a face is requested at a non-positive size.
	ErrInvalidSize = errors.New("text: invalid face size")
)
