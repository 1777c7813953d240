package fontpictures

import (
	"github.com/gogpu/fontpictures/internal/config"
	"github.com/gogpu/fontpictures/internal/fontmeta"
)

// RenderOption configures Render and Finalize.
// Use functional options to override defaults.
//
// Example:
//
//	// Default behavior: font.xml from the font directory,
//	// fallback file in the application directory.
//	path, err := fontpictures.Render(req)
//
//	// Explicit fallback file and metadata
//	path, err := fontpictures.Render(req,
//		fontpictures.WithFallbackPath("/tmp/out.png"),
//		fontpictures.WithMetadata(fontmeta.Metadata{Offset: 0}))
type RenderOption func(*renderOptions)

// renderOptions holds optional configuration for a render.
type renderOptions struct {
	fallbackPath string
	metadata     *fontmeta.Metadata
}

// defaultRenderOptions returns the default render options.
func defaultRenderOptions() renderOptions {
	return renderOptions{
		fallbackPath: "", // resolved from the application directory when needed
		metadata:     nil,
	}
}

func applyOptions(opts []RenderOption) renderOptions {
	o := defaultRenderOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithFallbackPath sets the file written instead of the destination when the
// text contains characters that are unsafe in file names.
func WithFallbackPath(path string) RenderOption {
	return func(o *renderOptions) {
		o.fallbackPath = path
	}
}

// WithMetadata supplies the font settings directly. font.xml is then neither
// read nor created.
func WithMetadata(m fontmeta.Metadata) RenderOption {
	return func(o *renderOptions) {
		o.metadata = &m
	}
}

// fallback returns the configured fallback path or the default one in the
// application directory. Resolving the default leaves the application
// directory untouched.
func (o renderOptions) fallback() (string, error) {
	if o.fallbackPath != "" {
		return o.fallbackPath, nil
	}
	c, err := config.LoadSettings()
	if err != nil {
		return "", err
	}
	return c.FallbackPath, nil
}
