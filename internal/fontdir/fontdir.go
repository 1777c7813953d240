// Package fontdir finds tile fonts on disk and resolves characters to tiles.
//
// A fonts root holds one directory per font. A directory is a font when it
// contains a file named font.xml; every other file in it is a tile whose base
// name (file name without extension) is the lookup name of the character it
// draws. Lookup is case-sensitive: "a.png" and "A.png" are different tiles.
package fontdir

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// MarkerFile is the file whose presence turns a directory into a font.
const MarkerFile = "font.xml"

// Sentinel errors for fontdir.
var (
	// ErrInvalidFont is returned when a font name does not name a font
	// directory directly under the fonts root.
	ErrInvalidFont = errors.New("fontdir: invalid font")

	// ErrTileNotFound is returned when a font has no tile for a lookup name.
	ErrTileNotFound = errors.New("fontdir: tile not found")
)

// Root is the directory that holds the font directories.
type Root struct {
	path string
}

// NewRoot returns a Root for path. The directory need not exist yet.
func NewRoot(path string) *Root {
	return &Root{path: path}
}

// Path returns the fonts root directory.
func (r *Root) Path() string {
	return r.path
}

// Validate reports whether name is a font: a directory directly under the
// root containing the marker file. Names that are not a single path element
// (".", "..", anything with a separator) are never valid.
func (r *Root) Validate(name string) bool {
	if !isPlainName(name) {
		return false
	}
	return IsFont(filepath.Join(r.path, name))
}

// List returns the paths of every font directory under the root, in
// directory enumeration order. A missing root is created and yields an empty
// list.
func (r *Root) List() ([]string, error) {
	if err := os.MkdirAll(r.path, 0o755); err != nil { //nolint:gosec // fonts root is shared, not secret
		return nil, fmt.Errorf("fontdir: create root: %w", err)
	}

	entries, err := os.ReadDir(r.path)
	if err != nil {
		return nil, fmt.Errorf("fontdir: read root: %w", err)
	}

	var fonts []string
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		dir := filepath.Join(r.path, e.Name())
		if IsFont(dir) {
			fonts = append(fonts, dir)
		}
	}
	return fonts, nil
}

// Names returns the base names of the fonts List finds.
func (r *Root) Names() ([]string, error) {
	dirs, err := r.List()
	if err != nil {
		return nil, err
	}
	names := make([]string, len(dirs))
	for i, d := range dirs {
		names[i] = filepath.Base(d)
	}
	return names, nil
}

// Open validates name and returns the font it names.
func (r *Root) Open(name string) (*Font, error) {
	if !r.Validate(name) {
		return nil, fmt.Errorf("%w: %q under %s", ErrInvalidFont, name, r.path)
	}
	return &Font{Name: name, Dir: filepath.Join(r.path, name)}, nil
}

// Dir returns the directory a font called name has, or would have, under
// the root. It does not check that the font exists.
func (r *Root) Dir(name string) (string, error) {
	if !isPlainName(name) {
		return "", fmt.Errorf("%w: %q is not a directory name", ErrInvalidFont, name)
	}
	return filepath.Join(r.path, name), nil
}

// Font is a validated font directory.
type Font struct {
	Name string // directory name, as given on the command line
	Dir  string // full path of the directory
}

// Index scans the font directory once and returns its tile index.
func (f *Font) Index() (*Index, error) {
	return NewIndex(f.Dir)
}

// IsFont reports whether dir is a directory containing the marker file.
func IsFont(dir string) bool {
	info, err := os.Stat(filepath.Join(dir, MarkerFile))
	if err != nil {
		return false
	}
	return info.Mode().IsRegular()
}

func isPlainName(name string) bool {
	if name == "" || name == "." || name == ".." {
		return false
	}
	return !strings.ContainsAny(name, `/\`) && filepath.Base(name) == name
}
