// Package fontmeta reads and writes the per-font settings kept in font.xml.
//
// The file is a flat XML document. The root element name is not checked;
// the children UpperCaseOnly and FontOffset carry the settings:
//
//	<?xml version="1.0" encoding="UTF-8"?>
//	<font>
//	  <Comment>...</Comment>
//	  <UpperCaseOnly>false</UpperCaseOnly>
//	  <FontOffset>-1</FontOffset>
//	</font>
//
// Missing elements take their default value.
package fontmeta

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// FileName is the metadata file inside a font directory.
const FileName = "font.xml"

// DefaultOffset is the glyph offset used when font.xml does not set one.
const DefaultOffset = -1

const headerComment = "UpperCaseOnly upper-cases text before tile lookup. " +
	"FontOffset is added after every tile; negative values overlap tiles."

// ErrInvalid is returned when font.xml holds a value that cannot be parsed.
var ErrInvalid = errors.New("fontmeta: invalid metadata")

// Metadata holds the settings of one font.
type Metadata struct {
	// UpperCaseOnly converts the text to upper case before tile lookup, for
	// fonts that only draw capitals.
	UpperCaseOnly bool

	// Offset is the horizontal spacing in pixels added after each tile.
	Offset int
}

// Default returns the settings used for a font without font.xml.
func Default() Metadata {
	return Metadata{UpperCaseOnly: false, Offset: DefaultOffset}
}

// document is the on-disk shape of font.xml.
type document struct {
	XMLName       xml.Name
	Comment       string  `xml:"Comment,omitempty"`
	UpperCaseOnly *string `xml:"UpperCaseOnly"`
	FontOffset    *string `xml:"FontOffset"`
}

// Parse reads font.xml from r.
func Parse(r io.Reader) (Metadata, error) {
	var doc document
	if err := xml.NewDecoder(r).Decode(&doc); err != nil {
		return Metadata{}, fmt.Errorf("%w: %w", ErrInvalid, err)
	}

	m := Default()
	if doc.UpperCaseOnly != nil {
		v, err := strconv.ParseBool(strings.TrimSpace(*doc.UpperCaseOnly))
		if err != nil {
			return Metadata{}, fmt.Errorf("%w: UpperCaseOnly: %w", ErrInvalid, err)
		}
		m.UpperCaseOnly = v
	}
	if doc.FontOffset != nil {
		v, err := strconv.Atoi(strings.TrimSpace(*doc.FontOffset))
		if err != nil {
			return Metadata{}, fmt.Errorf("%w: FontOffset: %w", ErrInvalid, err)
		}
		m.Offset = v
	}
	return m, nil
}

// Load reads dir/font.xml. A missing file is reported as an error wrapping
// os.ErrNotExist.
func Load(dir string) (Metadata, error) {
	data, err := os.ReadFile(filepath.Join(dir, FileName))
	if err != nil {
		return Metadata{}, fmt.Errorf("fontmeta: %w", err)
	}
	return Parse(bytes.NewReader(data))
}

// LoadOrCreate reads dir/font.xml. When the file is missing or empty (a bare
// marker) the defaults are written to it and returned; created reports
// whether that happened.
func LoadOrCreate(dir string) (m Metadata, created bool, err error) {
	data, err := os.ReadFile(filepath.Join(dir, FileName))
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return Metadata{}, false, fmt.Errorf("fontmeta: %w", err)
	case len(bytes.TrimSpace(data)) > 0:
		m, err = Parse(bytes.NewReader(data))
		return m, false, err
	}

	m = Default()
	if err := Save(dir, m); err != nil {
		return Metadata{}, false, err
	}
	return m, true, nil
}

// Save writes m to dir/font.xml, replacing any existing file.
func Save(dir string, m Metadata) error {
	upper := strconv.FormatBool(m.UpperCaseOnly)
	offset := strconv.Itoa(m.Offset)
	doc := document{
		XMLName:       xml.Name{Local: "font"},
		Comment:       headerComment,
		UpperCaseOnly: &upper,
		FontOffset:    &offset,
	}

	var buf bytes.Buffer
	buf.WriteString(xml.Header)
	enc := xml.NewEncoder(&buf)
	enc.Indent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("fontmeta: encode: %w", err)
	}
	buf.WriteByte('\n')

	if err := os.WriteFile(filepath.Join(dir, FileName), buf.Bytes(), 0o644); err != nil { //nolint:gosec // font settings are not secret
		return fmt.Errorf("fontmeta: write: %w", err)
	}
	return nil
}
