package fontpictures

import (
	"github.com/gogpu/fontpictures/internal/fontdir"
	"github.com/gogpu/fontpictures/internal/fontmeta"
)

// Render runs a whole request: it loads the font settings, composes the text
// and writes the scaled PNG. It returns the path written.
//
// A font directory without settings gets a default font.xml. Any missing
// tile aborts the render before anything is written.
func Render(req RenderRequest, opts ...RenderOption) (string, error) {
	if err := req.Validate(); err != nil {
		return "", err
	}
	o := applyOptions(opts)

	meta, err := loadMetadata(req.FontDir, o)
	if err != nil {
		return "", err
	}

	idx, err := fontdir.NewIndex(req.FontDir)
	if err != nil {
		return "", err
	}
	canvas, err := ComposeIndex(req.Text, idx, meta)
	if err != nil {
		return "", err
	}
	return Finalize(canvas, req, opts...)
}

func loadMetadata(dir string, o renderOptions) (fontmeta.Metadata, error) {
	if o.metadata != nil {
		return *o.metadata, nil
	}
	meta, created, err := fontmeta.LoadOrCreate(dir)
	if err != nil {
		return fontmeta.Metadata{}, err
	}
	if created {
		Logger().Info("created default font settings",
			"font", dir,
			"upperCaseOnly", meta.UpperCaseOnly,
			"offset", meta.Offset,
		)
	}
	return meta, nil
}
