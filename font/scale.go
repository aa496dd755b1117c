package font

import "math"

// Scale is the pair of horizontal and vertical magnification factors
// applied to a font. Y is the pixel height between the font's ascent
// and descent lines (not the em size), and X scales horizontal
// quantities in the same way. Most text uses a uniform scale (X == Y).
//
// Zero, negative or NaN components result in degenerate glyphs without
// advances or ink.
type Scale struct {
	X float64
	Y float64
}

// Returns a scale with both components set to the given pixel height.
func Uniform(height float64) Scale {
	return Scale{ X: height, Y: height }
}

// Whether the scale can't produce visible glyphs.
func (self Scale) Degenerate() bool {
	return !(self.X > 0) || !(self.Y > 0) || math.IsInf(self.X, 0) || math.IsInf(self.Y, 0)
}

// Vertical metrics of a font at a given scale, in pixels. Descent is
// given as a positive distance below the baseline.
type VMetrics struct {
	Ascent  float64
	Descent float64
	LineGap float64
}

// Ascent + Descent + LineGap.
func (self VMetrics) LineHeight() float64 {
	return self.Ascent + self.Descent + self.LineGap
}
