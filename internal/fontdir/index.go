package fontdir

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bits-and-blooms/bitset"
)

// Printable ASCII, the characters Coverage reports on.
const (
	FirstPrintable rune = 0x20
	LastPrintable  rune = 0x7E
)

// Index maps tile lookup names to tile files for one font directory.
//
// The directory is read once when the index is built. When several files
// share a base name (A.png and A.bmp) the first one in enumeration order
// wins; os.ReadDir enumerates in lexical order.
type Index struct {
	dir   string
	tiles map[string]string
}

// NewIndex reads dir and indexes its files by base name. Subdirectories and
// the marker file are ignored.
func NewIndex(dir string) (*Index, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("fontdir: read font: %w", err)
	}

	idx := &Index{
		dir:   dir,
		tiles: make(map[string]string, len(entries)),
	}
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || name == MarkerFile {
			continue
		}
		base := strings.TrimSuffix(name, filepath.Ext(name))
		if _, seen := idx.tiles[base]; seen {
			continue
		}
		idx.tiles[base] = filepath.Join(dir, name)
	}
	return idx, nil
}

// Dir returns the indexed font directory.
func (i *Index) Dir() string {
	return i.dir
}

// Len returns the number of distinct tile names in the directory.
func (i *Index) Len() int {
	return len(i.tiles)
}

// Resolve returns the tile file for a lookup name.
func (i *Index) Resolve(name string) (string, bool) {
	path, ok := i.tiles[name]
	return path, ok
}

// Coverage returns the set of printable ASCII characters whose tile resolves.
// tileName maps a character to its lookup name.
func (i *Index) Coverage(tileName func(rune) string) *bitset.BitSet {
	set := bitset.New(uint(LastPrintable) + 1)
	for r := FirstPrintable; r <= LastPrintable; r++ {
		if _, ok := i.tiles[tileName(r)]; ok {
			set.Set(uint(r))
		}
	}
	return set
}

// ResolveTile scans dir for the tile named name without building an index.
func ResolveTile(dir, name string) (string, error) {
	idx, err := NewIndex(dir)
	if err != nil {
		return "", err
	}
	path, ok := idx.Resolve(name)
	if !ok {
		return "", fmt.Errorf("%w: %q in %s", ErrTileNotFound, name, dir)
	}
	return path, nil
}
