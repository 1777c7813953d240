package fontpictures

import (
	"errors"
	"fmt"
)

// Sentinel errors for fontpictures.
var (
	// ErrEmptyText is returned when a request carries no text to render.
	ErrEmptyText = errors.New("fontpictures: empty text")

	// ErrInvalidScale is returned when the scale factor is less than 1 or
	// the scaled picture would be too large.
	ErrInvalidScale = errors.New("fontpictures: scale must be at least 1")

	// ErrNoFont is returned when a request names no font directory.
	ErrNoFont = errors.New("fontpictures: no font directory")

	// ErrNoDestination is returned when a request names no output path.
	ErrNoDestination = errors.New("fontpictures: no destination path")

	// ErrMissingGlyph is returned (wrapped in *MissingGlyphError) when the
	// font has no tile for a character of the text.
	ErrMissingGlyph = errors.New("fontpictures: missing glyph")

	// ErrEmptyCanvas is returned when negative offsets shrink the layout to
	// zero or negative width.
	ErrEmptyCanvas = errors.New("fontpictures: canvas has no area")

	// ErrNotImplemented is returned for options that are accepted on the
	// command line but not handled yet.
	ErrNotImplemented = errors.New("fontpictures: not yet handled")
)

// MissingGlyphError is returned when a character of the text has no tile in
// the font directory. The render is aborted and nothing is written.
type MissingGlyphError struct {
	Char rune   // character as it appeared after case normalization
	Name string // tile lookup name that failed to resolve
	Font string // font directory that was searched
}

func (e *MissingGlyphError) Error() string {
	return fmt.Sprintf("fontpictures: missing glyph %q (tile %q) in %s", e.Char, e.Name, e.Font)
}

// Unwrap makes errors.Is(err, ErrMissingGlyph) hold.
func (e *MissingGlyphError) Unwrap() error {
	return ErrMissingGlyph
}
