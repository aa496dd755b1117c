package font

import "errors"

import "golang.org/x/image/font/sfnt"

var ErrNotFound = errors.New("font property not found or empty")

// Returns the requested font property for the given font.
// If the property is missing, [ErrNotFound] will be returned.
func GetProperty(font *sfnt.Font, property sfnt.NameID) (string, error) {
	buffer := getBuffer()
	defer putBuffer(buffer)
	str, err := font.Name(buffer, property)
	if err == sfnt.ErrNotFound || (err == nil && str == "") {
		return "", ErrNotFound
	}
	return str, err
}

// Returns the full name of the given font (e.g. "Go Regular").
func GetName(font *sfnt.Font) (string, error) {
	return GetProperty(font, sfnt.NameIDFull)
}

// Returns the family name of the given font (e.g. "Go").
func GetFamily(font *sfnt.Font) (string, error) {
	return GetProperty(font, sfnt.NameIDFamily)
}

// Returns the runes in the given text that the font can't represent,
// in order of appearance. When drawing, those runes are replaced by
// the font's notdef glyph.
func GetMissingRunes(font *sfnt.Font, text string) ([]rune, error) {
	buffer := getBuffer()
	defer putBuffer(buffer)

	var missing []rune
	for _, codePoint := range text {
		index, err := font.GlyphIndex(buffer, codePoint)
		if err != nil { return missing, err }
		if index == 0 { missing = append(missing, codePoint) }
	}
	return missing, nil
}
