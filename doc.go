// Package fontpictures renders text into a PNG by placing bitmap tiles side
// by side, one tile per character.
//
// # Fonts
//
// A font is a directory holding one image per character plus a font.xml
// marker:
//
//	Fonts/
//	  pixel/
//	    font.xml
//	    A.png
//	    B.png
//	    space.png
//	    period.png
//
// Tiles are found by base name, so any decodable extension works (PNG, GIF,
// JPEG, BMP, TIFF, WebP). Characters that cannot appear in file names use
// the names returned by TileName.
//
// font.xml holds two settings: UpperCaseOnly, which upper-cases the text
// before lookup, and FontOffset, the pixel spacing added after each tile
// (default -1, so neighbouring tiles share their border column).
//
// # Quick Start
//
//	import "github.com/gogpu/fontpictures"
//
//	path, err := fontpictures.Render(fontpictures.RenderRequest{
//		Text:        "HELLO",
//		FontDir:     "Fonts/pixel",
//		Scale:       4,
//		Destination: "HELLO.png",
//	})
//
// # Layout
//
// The canvas is as tall as the first tile and as wide as the sum of tile
// widths plus the offset per tile (with a negative offset added back once).
// It is filled with the top-left pixel of the first tile, and tiles are
// drawn top-aligned from left to right. Tiles taller than the first one are
// cropped; this is a known limitation.
//
// # Logging
//
// The package is silent by default. Use SetLogger to receive debug and
// warning records through log/slog.
package fontpictures
