package stxt

import "image"
import "image/draw"
import "image/color"

import "github.com/tinne26/stxt/font"
import "github.com/tinne26/stxt/blend"
import "github.com/tinne26/stxt/internal/logger"

// Draws the given text on the target, with the top-left corner of
// the line at (x, y). Each pixel touched by a glyph is blended with
// the color proportionally to the glyph coverage:
//   new = current*(1 - coverage) + color*coverage
// Pixels outside the target bounds are skipped, so text partially or
// fully off the target is clipped without errors.
func Draw(target draw.Image, clr color.Color, x, y int, scale font.Scale, f Font, text string) {
	glyphs := Layout(f, scale, text)
	if len(glyphs) == 0 { return }
	painter := blend.NewPainter(target, clr)
	visitCoverage(glyphs, x, y, target.Bounds(), painter.Paint)
	logger.Get().Debug("text drawn", "glyphs", len(glyphs), "x", x, "y", y)
}

// Like [Draw](), but the text is drawn on a copy of src, which is
// returned. The source image is not modified. The copy has the same
// concrete type as src for the standard image types with a mutable
// pixel buffer, and is an [*image.RGBA64] otherwise.
func DrawCopy(src image.Image, clr color.Color, x, y int, scale font.Scale, f Font, text string) draw.Image {
	target := cloneImage(src)
	Draw(target, clr, x, y, scale, f, text)
	return target
}

// Calls visit for every coverage sample of the given glyphs that
// falls within bounds once the line is placed at (x, y). Samples are
// visited glyph by glyph, in layout order. Inkless glyphs are
// skipped.
func visitCoverage(glyphs []font.Glyph, x, y int, bounds image.Rectangle, visit func(x, y int, coverage float32)) {
	offset := image.Pt(x, y)
	for _, glyph := range glyphs {
		glyphBounds, hasInk := glyph.PixelBounds()
		if !hasInk { continue }
		glyphBounds = glyphBounds.Add(offset)
		if !glyphBounds.Overlaps(bounds) { continue }

		coverage := glyph.Coverage()
		for {
			cx, cy, level, ok := coverage.Next()
			if !ok { break }
			px, py := glyphBounds.Min.X + cx, glyphBounds.Min.Y + cy
			if px < bounds.Min.X || px >= bounds.Max.X { continue }
			if py < bounds.Min.Y || py >= bounds.Max.Y { continue }
			visit(px, py, level)
		}
	}
}

func cloneImage(src image.Image) draw.Image {
	bounds := src.Bounds()
	var target draw.Image
	switch src.(type) {
	case *image.RGBA    : target = image.NewRGBA(bounds)
	case *image.NRGBA   : target = image.NewNRGBA(bounds)
	case *image.RGBA64  : target = image.NewRGBA64(bounds)
	case *image.NRGBA64 : target = image.NewNRGBA64(bounds)
	case *image.Gray    : target = image.NewGray(bounds)
	case *image.Gray16  : target = image.NewGray16(bounds)
	case *image.Alpha   : target = image.NewAlpha(bounds)
	case *image.Alpha16 : target = image.NewAlpha16(bounds)
	default:
		target = image.NewRGBA64(bounds)
	}
	draw.Draw(target, bounds, src, bounds.Min, draw.Src)
	return target
}
