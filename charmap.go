package fontpictures

// specialNames maps characters that cannot appear in a file name (or are
// awkward to) to the base name of their tile.
var specialNames = map[rune]string{
	' ':  "space",
	'.':  "period",
	',':  "comma",
	'!':  "exclamation",
	'?':  "question",
	'<':  "less",
	'>':  "greater",
	':':  "colon",
	';':  "semicolon",
	'"':  "doublequote",
	'\'': "singlequote",
	'*':  "asterisk",
	'/':  "fwdslash",
	'\\': "backslash",
	'|':  "vertical",
}

// TileName returns the lookup name of the tile that draws r: the special
// name for punctuation and space, r itself for everything else.
func TileName(r rune) string {
	if name, ok := specialNames[r]; ok {
		return name
	}
	return string(r)
}

// HasUnsafe reports whether text contains a character whose tile name
// differs from the character itself. Such text cannot be used verbatim as
// an output file name.
func HasUnsafe(text string) bool {
	for _, r := range text {
		if TileName(r) != string(r) {
			return true
		}
	}
	return false
}
