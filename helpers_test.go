package stxt

import "image"
import "image/color"
import "math"
import "testing"

import "golang.org/x/image/font/sfnt"
import "golang.org/x/image/font/gofont/goregular"

import "github.com/tinne26/stxt/font"

// A synthetic font where every printable ASCII glyph is an 8x40 box
// at scale 64, sitting on the baseline. Ascent and descent are 3/4
// and 1/4 of the vertical scale. Box masks have an extra zero
// coverage row above and column to the right. Spaces have no ink
// and '~' has a mask with zero coverage everywhere.
type boxFont struct {
	advance float64 // in pixels at scale.X = 64
	kerning map[[2]rune]float64 // in pixels at scale.X = 64
}

func newBoxFont() *boxFont {
	return &boxFont{ advance: 10, kerning: make(map[[2]rune]float64) }
}

func (self *boxFont) VMetrics(scale font.Scale) font.VMetrics {
	if scale.Degenerate() { return font.VMetrics{} }
	return font.VMetrics{ Ascent: scale.Y*0.75, Descent: scale.Y*0.25 }
}

func (self *boxFont) GlyphIndex(codePoint rune) sfnt.GlyphIndex {
	if codePoint < 0x20 || codePoint >= 0x7F { return 0 }
	return sfnt.GlyphIndex(codePoint)
}

func (self *boxFont) Kern(scale font.Scale, prev, curr sfnt.GlyphIndex) float64 {
	if scale.Degenerate() { return 0 }
	return self.kerning[[2]rune{rune(prev), rune(curr)}]*scale.X/64
}

func (self *boxFont) GlyphAdvance(scale font.Scale, index sfnt.GlyphIndex) float64 {
	if scale.Degenerate() { return 0 }
	return self.advance*scale.X/64
}

func (self *boxFont) Glyph(index sfnt.GlyphIndex, scale font.Scale, x, y float64) font.Glyph {
	if scale.Degenerate() || index == ' ' { return font.NewGlyph(index, scale, x, y, nil) }
	w, h := int(math.Round(8*scale.X/64)), int(math.Round(40*scale.Y/64))
	if w == 0 || h == 0 { return font.NewGlyph(index, scale, x, y, nil) }
	boxMask := image.NewAlpha(image.Rect(0, -h - 1, w + 1, 0))
	if index != '~' {
		for py := -h; py < 0; py++ {
			for px := 0; px < w; px++ {
				boxMask.SetAlpha(px, py, color.Alpha{255})
			}
		}
	}
	return font.NewGlyph(index, scale, x, y, boxMask)
}

var testFace *font.Face

func getTestFace(t *testing.T) *font.Face {
	t.Helper()
	if testFace == nil {
		face, _, err := font.ParseFaceFromBytes(goregular.TTF)
		if err != nil { t.Fatalf("parsing goregular: %s", err) }
		testFace = face
	}
	return testFace
}

// Wraps an RGBA image to keep track of pixel accesses.
type recordingSurface struct {
	*image.RGBA
	reads int
	writes int
	outOfBounds int
}

func newRecordingSurface(rect image.Rectangle) *recordingSurface {
	return &recordingSurface{ RGBA: image.NewRGBA(rect) }
}

func (self *recordingSurface) At(x, y int) color.Color {
	self.reads += 1
	if !(image.Point{x, y}).In(self.Rect) { self.outOfBounds += 1 }
	return self.RGBA.At(x, y)
}

func (self *recordingSurface) Set(x, y int, clr color.Color) {
	self.writes += 1
	if !(image.Point{x, y}).In(self.Rect) { self.outOfBounds += 1 }
	self.RGBA.Set(x, y, clr)
}

func fillNoise(img *image.RGBA) {
	for i := range img.Pix { img.Pix[i] = uint8(i*31 + i/7) }
}

func sameImage(a, b *image.RGBA) bool {
	if a.Rect != b.Rect { return false }
	for i := range a.Pix {
		if a.Pix[i] != b.Pix[i] { return false }
	}
	return true
}

func doesNotPanic(function func()) (didNotPanic bool) {
	didNotPanic = true
	defer func() { didNotPanic = (recover() == nil) }()
	function()
	return
}
