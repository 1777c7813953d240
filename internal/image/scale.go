package image

import (
	"fmt"

	xdraw "golang.org/x/image/draw"
)

// MaxPixels is the largest buffer ScaleNearest will allocate, 1 GiB of RGBA.
const MaxPixels = 1 << 28

// ScaleNearest returns a new buffer k times wider and taller than src.
//
// Sampling is nearest-neighbor: every source pixel becomes a k×k block of
// identical pixels, with no blending between neighbours. k == 1 returns a
// copy. A factor whose result would exceed MaxPixels is rejected with
// ErrInvalidScale.
func ScaleNearest(src *ImageBuf, k int) (*ImageBuf, error) {
	if k < 1 {
		return nil, ErrInvalidScale
	}
	if k == 1 {
		return src.Clone(), nil
	}
	// Divide first so the products below cannot overflow.
	if k > MaxPixels/src.width || k > MaxPixels/src.height ||
		src.width*k > MaxPixels/(src.height*k) {
		return nil, fmt.Errorf("%w: %dx%d by %d exceeds %d pixels",
			ErrInvalidScale, src.width, src.height, k, MaxPixels)
	}

	dst, err := NewImageBuf(src.width*k, src.height*k)
	if err != nil {
		return nil, err
	}

	out := dst.ToStdImage()
	in := src.ToStdImage()
	xdraw.NearestNeighbor.Scale(out, out.Rect, in, in.Rect, xdraw.Src, nil)
	return dst, nil
}
