// Package fontgen cuts a tile font out of a regular font: one fixed-size PNG
// per character plus a font.xml marker, ready to be used by the renderer.
package fontgen

import (
	"errors"
	"fmt"
	stdimage "image"
	"image/color"
	"os"
	"path/filepath"
	"unicode"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/fontpictures/internal/fontdir"
	"github.com/gogpu/fontpictures/internal/fontmeta"
	"github.com/gogpu/fontpictures/internal/image"
)

var (
	// ErrFontExists is returned when the target directory already holds a
	// font.xml marker.
	ErrFontExists = errors.New("fontgen: font already exists")

	// ErrInvalidSize is returned for a non-positive point size.
	ErrInvalidSize = errors.New("fontgen: size must be positive")

	// ErrNoGlyphs is returned when the font covers none of the requested runes.
	ErrNoGlyphs = errors.New("fontgen: no glyphs to generate")
)

// Options controls tile generation.
type Options struct {
	Background color.NRGBA
	Ink        color.NRGBA

	// Runes to generate. Empty means printable ASCII.
	Runes []rune

	// Name maps a rune to its tile base name. Nil uses the rune itself.
	Name func(rune) string

	// Written to font.xml.
	UpperCaseOnly bool
	Offset        int
}

// DefaultOptions returns white-on-black printable ASCII tiles with no
// spacing between them.
func DefaultOptions() Options {
	return Options{
		Background: color.NRGBA{A: 255},
		Ink:        color.NRGBA{R: 255, G: 255, B: 255, A: 255},
		Offset:     0,
	}
}

// Report summarizes a Generate run.
type Report struct {
	Dir        string
	Written    int
	Skipped    []rune // runes the font has no glyph for
	CellWidth  int
	CellHeight int
}

func printableASCII() []rune {
	runes := make([]rune, 0, fontdir.LastPrintable-fontdir.FirstPrintable+1)
	for r := fontdir.FirstPrintable; r <= fontdir.LastPrintable; r++ {
		runes = append(runes, r)
	}
	return runes
}

// Generate writes one tile per covered rune into dir and then font.xml.
// dir is created when missing. Lower-case letters are left out when
// opts.UpperCaseOnly is set.
func Generate(dir string, src *Source, opts Options) (Report, error) {
	marker := filepath.Join(dir, fontmeta.FileName)
	if _, err := os.Stat(marker); err == nil {
		return Report{}, fmt.Errorf("%w: %s", ErrFontExists, dir)
	}

	runes := opts.Runes
	if len(runes) == 0 {
		runes = printableASCII()
	}
	name := opts.Name
	if name == nil {
		name = func(r rune) string { return string(r) }
	}

	report := Report{Dir: dir}
	var todo []rune
	for _, r := range runes {
		if opts.UpperCaseOnly && unicode.IsLower(r) {
			continue
		}
		if !src.Covers(r) {
			report.Skipped = append(report.Skipped, r)
			continue
		}
		todo = append(todo, r)
	}
	if len(todo) == 0 {
		return report, ErrNoGlyphs
	}

	face := src.Face()
	report.CellWidth, report.CellHeight = cellSize(face, todo)
	if report.CellWidth <= 0 || report.CellHeight <= 0 {
		return report, fmt.Errorf("fontgen: empty cell %dx%d", report.CellWidth, report.CellHeight)
	}

	if err := os.MkdirAll(dir, 0o755); err != nil { //nolint:gosec // font directories are shared
		return report, fmt.Errorf("fontgen: %w", err)
	}
	for _, r := range todo {
		tile, err := drawCell(face, r, report.CellWidth, report.CellHeight, opts)
		if err != nil {
			return report, err
		}
		if err := tile.SavePNG(filepath.Join(dir, name(r)+".png")); err != nil {
			return report, fmt.Errorf("fontgen: tile %q: %w", r, err)
		}
		report.Written++
	}

	meta := fontmeta.Metadata{UpperCaseOnly: opts.UpperCaseOnly, Offset: opts.Offset}
	if err := fontmeta.Save(dir, meta); err != nil {
		return report, err
	}
	return report, nil
}

// cellSize returns the widest advance among runes and the line height.
func cellSize(face font.Face, runes []rune) (width, height int) {
	for _, r := range runes {
		adv, ok := face.GlyphAdvance(r)
		if !ok {
			continue
		}
		width = max(width, adv.Ceil())
	}
	m := face.Metrics()
	return width, (m.Ascent + m.Descent).Ceil()
}

// drawCell renders r centred horizontally on the baseline of a w×h cell.
func drawCell(face font.Face, r rune, w, h int, opts Options) (*image.ImageBuf, error) {
	cell, err := image.NewImageBuf(w, h)
	if err != nil {
		return nil, fmt.Errorf("fontgen: %w", err)
	}
	cell.Fill(opts.Background)

	adv, _ := face.GlyphAdvance(r)
	d := &font.Drawer{
		Dst:  cell.ToStdImage(),
		Src:  stdimage.NewUniform(opts.Ink),
		Face: face,
		Dot: fixed.Point26_6{
			X: (fixed.I(w) - adv) / 2,
			Y: face.Metrics().Ascent,
		},
	}
	d.DrawString(string(r))
	return cell, nil
}
