// Package image provides the pixel buffer used to compose tile pictures.
//
// ImageBuf stores non-premultiplied 8-bit RGBA pixels in a contiguous byte
// slice. The memory layout matches image.NRGBA, so a buffer can be handed to
// the standard library and golang.org/x/image without copying (see
// ToStdImage).
package image

import (
	"errors"
	"image/color"
)

// Common errors for image operations.
var (
	// ErrInvalidDimensions is returned when width or height is non-positive.
	ErrInvalidDimensions = errors.New("image: invalid dimensions")

	// ErrInvalidScale is returned when a scale factor is less than 1 or the
	// scaled image would be too large.
	ErrInvalidScale = errors.New("image: invalid scale factor")
)

// bytesPerPixel is the size of one RGBA8 pixel.
const bytesPerPixel = 4

// ImageBuf is a non-premultiplied RGBA8 image buffer.
//
// Thread safety: ImageBuf is safe for concurrent read access. Write operations
// (Fill, DrawImage onto it) require external synchronization.
type ImageBuf struct {
	data   []byte
	width  int
	height int
	stride int
}

// NewImageBuf creates a new, fully transparent image buffer.
// Returns ErrInvalidDimensions if width or height is not positive.
func NewImageBuf(width, height int) (*ImageBuf, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimensions
	}

	stride := width * bytesPerPixel
	return &ImageBuf{
		data:   make([]byte, stride*height),
		width:  width,
		height: height,
		stride: stride,
	}, nil
}

// Clone creates a deep copy of the image buffer.
func (b *ImageBuf) Clone() *ImageBuf {
	newData := make([]byte, len(b.data))
	copy(newData, b.data)

	return &ImageBuf{
		data:   newData,
		width:  b.width,
		height: b.height,
		stride: b.stride,
	}
}

// Width returns the image width in pixels.
func (b *ImageBuf) Width() int {
	return b.width
}

// Height returns the image height in pixels.
func (b *ImageBuf) Height() int {
	return b.height
}

// rowBytes returns the pixels of row y.
func (b *ImageBuf) rowBytes(y int) []byte {
	if y < 0 || y >= b.height {
		return nil
	}
	start := y * b.stride
	return b.data[start : start+b.width*bytesPerPixel]
}

// NRGBAAt returns the color at (x, y). Points outside the buffer are
// transparent black.
func (b *ImageBuf) NRGBAAt(x, y int) color.NRGBA {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return color.NRGBA{}
	}
	p := b.data[y*b.stride+x*bytesPerPixel:]
	return color.NRGBA{R: p[0], G: p[1], B: p[2], A: p[3]}
}

// Fill sets every pixel to c.
func (b *ImageBuf) Fill(c color.NRGBA) {
	if b.width == 0 || b.height == 0 {
		return
	}

	// Fill the first row, then replicate it.
	first := b.rowBytes(0)
	for x := 0; x < len(first); x += bytesPerPixel {
		first[x] = c.R
		first[x+1] = c.G
		first[x+2] = c.B
		first[x+3] = c.A
	}
	for y := 1; y < b.height; y++ {
		copy(b.rowBytes(y), first)
	}
}
