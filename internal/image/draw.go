package image

import (
	"image"

	xdraw "golang.org/x/image/draw"
)

// DrawImage alpha-blends the whole of src onto dst (source over
// destination) with its top-left corner at (x, y). Parts of src falling
// outside dst are clipped; negative x and y are allowed. The destination
// image is modified in place.
func DrawImage(dst, src *ImageBuf, x, y int) {
	target := image.Rect(x, y, x+src.width, y+src.height)
	clipped := target.Intersect(image.Rect(0, 0, dst.width, dst.height))
	if clipped.Empty() {
		return
	}

	sp := clipped.Min.Sub(target.Min)
	xdraw.Draw(dst.ToStdImage(), clipped, src.ToStdImage(), sp, xdraw.Over)
}
