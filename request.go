package fontpictures

import (
	"fmt"
	"path/filepath"
)

// RenderRequest describes one picture to render. It is a plain value: the
// render functions read it and never modify it.
type RenderRequest struct {
	// Text is rendered left to right, one tile per character.
	Text string

	// FontDir is the font directory holding the tiles and font.xml.
	FontDir string

	// Scale is the integer upscaling factor applied to the composed picture.
	Scale int

	// Destination is where the PNG is written, unless Text contains
	// characters unsafe in file names (see HasUnsafe).
	Destination string
}

// Validate checks the request before any file is touched.
func (r RenderRequest) Validate() error {
	if r.Text == "" {
		return ErrEmptyText
	}
	if r.FontDir == "" {
		return ErrNoFont
	}
	if r.Destination == "" {
		return ErrNoDestination
	}
	if r.Scale < 1 {
		return fmt.Errorf("%w: got %d", ErrInvalidScale, r.Scale)
	}
	return nil
}

// DefaultDestination returns the default output path for text: a PNG named
// after the text inside dir.
func DefaultDestination(dir, text string) string {
	return filepath.Join(dir, text+".png")
}
