package fontpictures

import (
	"fmt"
	stdimage "image"
	"image/color"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/gogpu/fontpictures/internal/fontdir"
	"github.com/gogpu/fontpictures/internal/fontmeta"
	"github.com/gogpu/fontpictures/internal/image"
)

// GlyphTile is one decoded tile, loaded for one character of the text.
// Repeated characters load their tile again.
type GlyphTile struct {
	Char   rune   // character after case normalization
	Name   string // tile lookup name
	Path   string // tile file
	Width  int
	Height int
	Image  *image.ImageBuf
}

// Canvas is the composed, unscaled picture.
type Canvas struct {
	Width      int
	Height     int
	Background color.NRGBA // top-left pixel of the first tile
	buf        *image.ImageBuf
}

// Image returns the canvas pixels. The result shares memory with the canvas.
func (c *Canvas) Image() *stdimage.NRGBA {
	return c.buf.ToStdImage()
}

// NormalizeText applies the font's case rule to text.
func NormalizeText(text string, meta fontmeta.Metadata) string {
	if !meta.UpperCaseOnly {
		return text
	}
	return cases.Upper(language.Und).String(text)
}

// LoadGlyphs resolves and decodes one tile per character of text, left to
// right. The first character without a tile stops the load with a
// *MissingGlyphError.
func LoadGlyphs(text string, idx *fontdir.Index) ([]GlyphTile, error) {
	glyphs := make([]GlyphTile, 0, len(text))
	for _, r := range text {
		name := TileName(r)
		path, ok := idx.Resolve(name)
		if !ok {
			return nil, &MissingGlyphError{Char: r, Name: name, Font: idx.Dir()}
		}

		img, err := image.LoadImage(path)
		if err != nil {
			return nil, fmt.Errorf("fontpictures: tile %q: %w", name, err)
		}
		Logger().Debug("loaded tile",
			"char", string(r),
			"name", name,
			"path", path,
			"size", fmt.Sprintf("%dx%d", img.Width(), img.Height()),
		)
		glyphs = append(glyphs, GlyphTile{
			Char:   r,
			Name:   name,
			Path:   path,
			Width:  img.Width(),
			Height: img.Height(),
			Image:  img,
		})
	}
	return glyphs, nil
}

// Layout returns the canvas size for glyphs spaced by offset pixels.
//
// Every glyph advances the cursor by its width plus offset. A negative offset
// is added back once so the last glyph is not cut off. The height is the
// first glyph's height; taller glyphs later in the text are cropped.
func Layout(glyphs []GlyphTile, offset int) (width, height int) {
	if len(glyphs) == 0 {
		return 0, 0
	}
	for _, g := range glyphs {
		width += g.Width + offset
	}
	if offset < 0 {
		width -= offset
	}
	return width, glyphs[0].Height
}

// Compose lays out text with the tiles of fontDir and draws it onto a new
// canvas. Nothing is written to disk.
func Compose(text, fontDir string, meta fontmeta.Metadata) (*Canvas, error) {
	idx, err := fontdir.NewIndex(fontDir)
	if err != nil {
		return nil, err
	}
	return ComposeIndex(text, idx, meta)
}

// ComposeIndex is Compose with a prebuilt font index.
func ComposeIndex(text string, idx *fontdir.Index, meta fontmeta.Metadata) (*Canvas, error) {
	if text == "" {
		return nil, ErrEmptyText
	}

	Logger().Debug("indexed font", "dir", idx.Dir(), "tiles", idx.Len())
	text = NormalizeText(text, meta)
	glyphs, err := LoadGlyphs(text, idx)
	if err != nil {
		return nil, err
	}

	width, height := Layout(glyphs, meta.Offset)
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrEmptyCanvas, width, height)
	}

	buf, err := image.NewImageBuf(width, height)
	if err != nil {
		return nil, fmt.Errorf("fontpictures: canvas: %w", err)
	}
	bg := glyphs[0].Image.NRGBAAt(0, 0)
	buf.Fill(bg)

	x := 0
	for _, g := range glyphs {
		image.DrawImage(buf, g.Image, x, 0)
		x += g.Width + meta.Offset
	}

	Logger().Debug("composed text",
		"glyphs", len(glyphs),
		"width", width,
		"height", height,
		"offset", meta.Offset,
	)
	return &Canvas{
		Width:      width,
		Height:     height,
		Background: bg,
		buf:        buf,
	}, nil
}
