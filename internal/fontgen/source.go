package fontgen

import (
	"bytes"
	"fmt"
	"os"

	gotext "github.com/go-text/typesetting/font"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
)

// Source is a vector or bitmap font to cut tiles from.
type Source struct {
	// Name is the font's full name, or "basicfont" for the built-in face.
	Name string

	face   font.Face
	covers func(rune) bool
	closer func() error
}

// BasicSource returns the built-in 7x13 bitmap face. It covers printable
// ASCII.
func BasicSource() *Source {
	return &Source{
		Name: "basicfont",
		face: basicfont.Face7x13,
		covers: func(r rune) bool {
			return r >= 0x20 && r <= 0x7E
		},
	}
}

// LoadTTF reads a TrueType or OpenType file and prepares a face of size
// points at 72 DPI, so one point is one pixel.
func LoadTTF(path string, size float64) (*Source, error) {
	data, err := os.ReadFile(path) //nolint:gosec // user-supplied font path
	if err != nil {
		return nil, fmt.Errorf("fontgen: %w", err)
	}
	return ParseTTF(data, size)
}

// ParseTTF is LoadTTF for font data already in memory.
func ParseTTF(data []byte, size float64) (*Source, error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: %g", ErrInvalidSize, size)
	}

	f, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("fontgen: failed to parse font: %w", err)
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("fontgen: failed to create face: %w", err)
	}

	// The cmap decides which runes get a tile; sfnt maps missing runes to
	// .notdef, which would draw a box.
	cmap, err := gotext.ParseTTF(bytes.NewReader(data))
	if err != nil {
		_ = face.Close()
		return nil, fmt.Errorf("fontgen: failed to read cmap: %w", err)
	}

	name, err := f.Name(nil, sfnt.NameIDFull)
	if err != nil || name == "" {
		name = "ttf"
	}
	return &Source{
		Name: name,
		face: face,
		covers: func(r rune) bool {
			_, ok := cmap.NominalGlyph(r)
			return ok
		},
		closer: face.Close,
	}, nil
}

// Face returns the font face used for drawing.
func (s *Source) Face() font.Face {
	return s.face
}

// Covers reports whether the font has a glyph for r.
func (s *Source) Covers(r rune) bool {
	return s.covers(r)
}

// Close releases the face. Closing the built-in source is a no-op.
func (s *Source) Close() error {
	if s.closer == nil {
		return nil
	}
	return s.closer()
}
