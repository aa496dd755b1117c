package stxt

import "math"
import "unicode/utf8"

import "golang.org/x/image/font/sfnt"

import "github.com/tinne26/stxt/font"

// Positions the glyphs for the given text on a single line whose
// top-left corner is (0, 0). Every glyph is anchored at y = ascent
// and the first one at x = 0. Each following glyph is placed at the
// previous x plus the previous glyph advance and the kerning between
// both, with the whole increment rounded to the nearest pixel.
//
// Every rune produces exactly one glyph, including spaces and control
// characters. Runes missing from the font become notdef glyphs. Empty
// text returns nil.
func Layout(f Font, scale font.Scale, text string) []font.Glyph {
	if text == "" { return nil }

	ascent := f.VMetrics(scale).Ascent
	glyphs := make([]font.Glyph, 0, utf8.RuneCountInString(text))
	var x float64
	var prev sfnt.GlyphIndex
	for _, codePoint := range text {
		index := f.GlyphIndex(codePoint)
		if len(glyphs) > 0 {
			x += math.Round(f.GlyphAdvance(scale, prev) + f.Kern(scale, prev, index))
		}
		glyphs = append(glyphs, f.Glyph(index, scale, x, ascent))
		prev = index
	}
	return glyphs
}

// Returns the horizontal advance of the whole text as positioned by
// [Layout](): the x of the last glyph plus its rounded advance. This
// is useful to detect text that wouldn't fit on a surface, as drawing
// silently clips it.
func LayoutWidth(f Font, scale font.Scale, text string) float64 {
	var x float64
	var prev sfnt.GlyphIndex
	first := true
	for _, codePoint := range text {
		index := f.GlyphIndex(codePoint)
		if !first {
			x += math.Round(f.GlyphAdvance(scale, prev) + f.Kern(scale, prev, index))
		}
		first = false
		prev = index
	}
	if first { return 0 }
	return x + math.Round(f.GlyphAdvance(scale, prev))
}
