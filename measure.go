package stxt

import "image"

import "github.com/tinne26/stxt/font"
import "github.com/tinne26/stxt/internal/logger"

// Returns the smallest rectangle containing every pixel of the target
// that [Draw]() would modify with a non-zero coverage, using the same
// arguments. Nothing is written to the target, which is only used for
// its bounds.
//
// The rectangle is tight: both its Min and its Max - (1, 1) corners
// are touched pixels. If no pixel would be touched (empty text, only
// spaces, or text fully outside the target), the second return value
// is false.
func Measure(target image.Image, x, y int, scale font.Scale, f Font, text string) (image.Rectangle, bool) {
	bounds := target.Bounds()
	glyphs := Layout(f, scale, text)

	minX, minY := bounds.Max.X, bounds.Max.Y
	maxX, maxY := bounds.Min.X, bounds.Min.Y
	found := false
	visitCoverage(glyphs, x, y, bounds, func(px, py int, coverage float32) {
		if !(coverage > 0) { return }
		found = true
		minX, minY = min(minX, px), min(minY, py)
		maxX, maxY = max(maxX, px), max(maxY, py)
	})

	logger.Get().Debug("text measured", "glyphs", len(glyphs), "found", found)
	if !found { return image.Rectangle{}, false }
	return image.Rect(minX, minY, maxX + 1, maxY + 1), true
}
