package font

import "image"

import "golang.org/x/image/font/sfnt"
import "github.com/tinne26/stxt/fract"
import "github.com/tinne26/stxt/mask"

// A Glyph is a glyph shape bound to an origin in layout space, at a
// specific scale. Glyphs are immutable and own no surface state.
//
// The coverage mask of a glyph may be shared with a cache and other
// glyphs, so it must never be modified.
type Glyph struct {
	index sfnt.GlyphIndex
	scale Scale
	x, y float64
	mask *image.Alpha
	offset image.Point
}

// Creates a glyph from an already rasterized coverage mask. The mask
// bounds must be relative to the floored origin, as returned by
// [mask.Rasterize](): the absolute pixel bounds of the glyph will be
// the mask bounds translated by (floor(x), floor(y)). A nil mask is
// valid for glyphs without ink.
func NewGlyph(index sfnt.GlyphIndex, scale Scale, x, y float64, coverageMask *image.Alpha) Glyph {
	return Glyph{
		index: index,
		scale: scale,
		x: x, y: y,
		mask: coverageMask,
		offset: fract.FloatsToPoint(x, y).FloorImagePoint(),
	}
}

// Returns the glyph index within its font.
func (self Glyph) Index() sfnt.GlyphIndex { return self.index }

// Returns the scale the glyph was positioned at.
func (self Glyph) Scale() Scale { return self.scale }

// Returns the point where the glyph outline is anchored, which is
// on the glyph's baseline.
func (self Glyph) Origin() (x, y float64) { return self.x, self.y }

// Returns the integer rectangle of pixels the glyph may touch, in
// layout space. Glyphs without ink (e.g. spaces) have no bounds.
func (self Glyph) PixelBounds() (image.Rectangle, bool) {
	if self.mask == nil || self.mask.Rect.Empty() { return image.Rectangle{}, false }
	return self.mask.Rect.Add(self.offset), true
}

// Returns an iterator over the coverage samples of the glyph.
// Sample coordinates are local to the pixel bounds minimum.
func (self Glyph) Coverage() mask.Coverage {
	return mask.NewCoverage(self.mask)
}
