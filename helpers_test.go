package fontpictures

import (
	"image/color"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gogpu/fontpictures/internal/fontmeta"
	"github.com/gogpu/fontpictures/internal/image"
)

var (
	red    = color.NRGBA{R: 255, A: 255}
	green  = color.NRGBA{G: 255, A: 255}
	blue   = color.NRGBA{B: 255, A: 255}
	white  = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	yellow = color.NRGBA{R: 255, G: 255, A: 255}
)

// newFont creates a font directory with the given settings.
func newFont(t *testing.T, meta fontmeta.Metadata) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, fontmeta.Save(dir, meta))
	return dir
}

// writeTile writes a solid w×h tile named name.png into dir.
func writeTile(t *testing.T, dir, name string, w, h int, c color.NRGBA) *image.ImageBuf {
	t.Helper()
	buf, err := image.NewImageBuf(w, h)
	require.NoError(t, err)
	buf.Fill(c)
	require.NoError(t, buf.SavePNG(filepath.Join(dir, name+".png")))
	return buf
}

// loadPNG decodes the picture at path.
func loadPNG(t *testing.T, path string) *image.ImageBuf {
	t.Helper()
	img, err := image.LoadImage(path)
	require.NoError(t, err)
	return img
}

// requireRegion checks that every pixel of the x0..x1, y0..y1 (exclusive)
// region has color c.
func requireRegion(t *testing.T, img *image.ImageBuf, x0, y0, x1, y1 int, c color.NRGBA) {
	t.Helper()
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			require.Equal(t, c, img.NRGBAAt(x, y), "pixel (%d,%d)", x, y)
		}
	}
}
