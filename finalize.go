package fontpictures

import (
	"errors"
	"fmt"

	"github.com/gogpu/fontpictures/internal/image"
)

// Finalize scales the canvas by req.Scale with nearest-neighbor sampling and
// writes it as PNG. It returns the path actually written.
//
// When req.Text contains characters that cannot appear in a file name the
// picture goes to the fallback path instead of req.Destination, and a
// warning is logged.
func Finalize(c *Canvas, req RenderRequest, opts ...RenderOption) (string, error) {
	if req.Scale < 1 {
		return "", fmt.Errorf("%w: got %d", ErrInvalidScale, req.Scale)
	}
	o := applyOptions(opts)

	dest := req.Destination
	if HasUnsafe(req.Text) {
		fallback, err := o.fallback()
		if err != nil {
			return "", err
		}
		Logger().Warn("text has characters unsafe in file names, writing fallback file",
			"text", req.Text,
			"requested", req.Destination,
			"path", fallback,
		)
		dest = fallback
	}
	if dest == "" {
		return "", ErrNoDestination
	}

	scaled, err := image.ScaleNearest(c.buf, req.Scale)
	if errors.Is(err, image.ErrInvalidScale) {
		return "", fmt.Errorf("%w: %d on a %dx%d canvas", ErrInvalidScale, req.Scale, c.Width, c.Height)
	}
	if err != nil {
		return "", fmt.Errorf("fontpictures: scale: %w", err)
	}
	Logger().Debug("scaled canvas",
		"from", fmt.Sprintf("%dx%d", c.Width, c.Height),
		"to", fmt.Sprintf("%dx%d", scaled.Width(), scaled.Height()),
		"scale", req.Scale,
	)
	if err := scaled.SavePNG(dest); err != nil {
		return "", fmt.Errorf("fontpictures: write %s: %w", dest, err)
	}

	Logger().Info("wrote picture",
		"path", dest,
		"width", scaled.Width(),
		"height", scaled.Height(),
		"scale", req.Scale,
	)
	return dest, nil
}
