package stxt

import "golang.org/x/image/font/sfnt"

import "github.com/tinne26/stxt/font"

// Font is the glyph source used for layout, drawing and measuring.
// [*font.Face] is the standard implementation.
//
// Implementations must map missing runes to glyph index 0 (notdef),
// return zero kerning when the font has no kerning data and return
// glyphs whose pixel bounds are in layout space, relative to the
// top-left of the line.
type Font interface {
	VMetrics(scale font.Scale) font.VMetrics
	GlyphIndex(codePoint rune) sfnt.GlyphIndex
	Kern(scale font.Scale, prev, curr sfnt.GlyphIndex) float64
	GlyphAdvance(scale font.Scale, index sfnt.GlyphIndex) float64
	Glyph(index sfnt.GlyphIndex, scale font.Scale, x, y float64) font.Glyph
}

var _ Font = (*font.Face)(nil)
