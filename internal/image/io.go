package image

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"

	xdraw "golang.org/x/image/draw"

	// Tiles may be stored in any of these formats; lookup ignores the extension.
	_ "image/gif"
	_ "image/jpeg"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// LoadImage loads an image from the given file path. The format is detected
// from the content, not the extension.
func LoadImage(path string) (*ImageBuf, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("image: open file: %w", err)
	}
	defer func() { _ = f.Close() }()

	return Decode(f)
}

// Decode decodes an image from the given reader, auto-detecting the format.
func Decode(r io.Reader) (*ImageBuf, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("image: decode: %w", err)
	}
	return FromStdImage(img)
}

// FromStdImage creates an ImageBuf from a standard library image.Image.
// Pixels are converted to non-premultiplied RGBA8 and the buffer origin is
// moved to (0, 0).
func FromStdImage(img image.Image) (*ImageBuf, error) {
	bounds := img.Bounds()
	buf, err := NewImageBuf(bounds.Dx(), bounds.Dy())
	if err != nil {
		return nil, err
	}

	// Fast path for NRGBA images
	if nrgba, ok := img.(*image.NRGBA); ok {
		for y := range buf.height {
			srcStart := y * nrgba.Stride
			copy(buf.rowBytes(y), nrgba.Pix[srcStart:srcStart+buf.width*bytesPerPixel])
		}
		return buf, nil
	}

	// Everything else (paletted, gray, premultiplied RGBA, YCbCr) goes
	// through the converter in x/image/draw.
	dst := buf.ToStdImage()
	xdraw.Draw(dst, dst.Rect, img, bounds.Min, xdraw.Src)
	return buf, nil
}

// ToStdImage returns an *image.NRGBA view of the buffer. The view shares
// memory with b: drawing onto it modifies the buffer.
func (b *ImageBuf) ToStdImage() *image.NRGBA {
	return &image.NRGBA{
		Pix:    b.data,
		Stride: b.stride,
		Rect:   image.Rect(0, 0, b.width, b.height),
	}
}

// pngEncoder trades encode time for the smallest lossless output.
var pngEncoder = png.Encoder{CompressionLevel: png.BestCompression}

// EncodePNG encodes the image as PNG to the given writer.
func (b *ImageBuf) EncodePNG(w io.Writer) error {
	if err := pngEncoder.Encode(w, b.ToStdImage()); err != nil {
		return fmt.Errorf("image: encode PNG: %w", err)
	}
	return nil
}

// SavePNG saves the image as a PNG file. The image is encoded before the
// file is created, so an encoding failure leaves the path untouched.
func (b *ImageBuf) SavePNG(path string) error {
	var data bytes.Buffer
	if err := b.EncodePNG(&data); err != nil {
		return err
	}
	if err := os.WriteFile(filepath.Clean(path), data.Bytes(), 0o644); err != nil { //nolint:gosec // output pictures are meant to be world-readable
		return fmt.Errorf("image: write file: %w", err)
	}
	return nil
}
