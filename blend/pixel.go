package blend

import "image"
import "image/draw"
import "image/color"

// A Painter blends a single color into a target surface. The color
// is converted to the surface's color model once, on creation.
//
// Painters are cheap, but they are bound to the surface they were
// created for and are not safe for concurrent use on the same
// surface.
type Painter struct {
	target draw.Image
	bounds image.Rectangle
	native color.Color // color converted to the target's model
	wide color.RGBA64  // native color as 16-bit channels
}

// Creates a [Painter] for the given target and color.
func NewPainter(target draw.Image, clr color.Color) Painter {
	native := target.ColorModel().Convert(clr)
	return Painter{
		target: target,
		bounds: target.Bounds(),
		native: native,
		wide: color.RGBA64Model.Convert(native).(color.RGBA64),
	}
}

// Blends a single pixel of the target with the given color and
// coverage. See [Painter.Paint]().
func Pixel(target draw.Image, x, y int, clr color.Color, coverage float32) {
	painter := NewPainter(target, clr)
	painter.Paint(x, y, coverage)
}

// Blends the pixel at (x, y) with the painter's color, weighted
// by the given coverage. Coordinates outside the target bounds
// and non-positive coverages are ignored, and coverages above
// one are treated as one.
func (self *Painter) Paint(x, y int, coverage float32) {
	if !(coverage > 0) { return }
	if !(image.Point{x, y}).In(self.bounds) { return }
	if coverage > 1 { coverage = 1 }

	switch img := self.target.(type) {
	case *image.RGBA:
		c := self.native.(color.RGBA)
		i := img.PixOffset(x, y)
		pix := img.Pix[i : i + 4 : i + 4]
		pix[0] = WeightedSum(pix[0], c.R, coverage)
		pix[1] = WeightedSum(pix[1], c.G, coverage)
		pix[2] = WeightedSum(pix[2], c.B, coverage)
		pix[3] = WeightedSum(pix[3], c.A, coverage)
	case *image.NRGBA:
		c := self.native.(color.NRGBA)
		i := img.PixOffset(x, y)
		pix := img.Pix[i : i + 4 : i + 4]
		pix[0] = WeightedSum(pix[0], c.R, coverage)
		pix[1] = WeightedSum(pix[1], c.G, coverage)
		pix[2] = WeightedSum(pix[2], c.B, coverage)
		pix[3] = WeightedSum(pix[3], c.A, coverage)
	case *image.RGBA64:
		c := self.native.(color.RGBA64)
		i := img.PixOffset(x, y)
		pix := img.Pix[i : i + 8 : i + 8]
		blend16(pix[0 : 2], c.R, coverage)
		blend16(pix[2 : 4], c.G, coverage)
		blend16(pix[4 : 6], c.B, coverage)
		blend16(pix[6 : 8], c.A, coverage)
	case *image.NRGBA64:
		c := self.native.(color.NRGBA64)
		i := img.PixOffset(x, y)
		pix := img.Pix[i : i + 8 : i + 8]
		blend16(pix[0 : 2], c.R, coverage)
		blend16(pix[2 : 4], c.G, coverage)
		blend16(pix[4 : 6], c.B, coverage)
		blend16(pix[6 : 8], c.A, coverage)
	case *image.Gray:
		i := img.PixOffset(x, y)
		img.Pix[i] = WeightedSum(img.Pix[i], self.native.(color.Gray).Y, coverage)
	case *image.Gray16:
		i := img.PixOffset(x, y)
		blend16(img.Pix[i : i + 2], self.native.(color.Gray16).Y, coverage)
	case *image.Alpha:
		i := img.PixOffset(x, y)
		img.Pix[i] = WeightedSum(img.Pix[i], self.native.(color.Alpha).A, coverage)
	case *image.Alpha16:
		i := img.PixOffset(x, y)
		blend16(img.Pix[i : i + 2], self.native.(color.Alpha16).A, coverage)
	default:
		curr := color.RGBA64Model.Convert(img.At(x, y)).(color.RGBA64)
		img.Set(x, y, color.RGBA64{
			R: WeightedSum(curr.R, self.wide.R, coverage),
			G: WeightedSum(curr.G, self.wide.G, coverage),
			B: WeightedSum(curr.B, self.wide.B, coverage),
			A: WeightedSum(curr.A, self.wide.A, coverage),
		})
	}
}

// Blends a big endian 16-bit channel in place.
func blend16(pix []byte, target uint16, coverage float32) {
	curr := uint16(pix[0]) << 8 | uint16(pix[1])
	value := WeightedSum(curr, target, coverage)
	pix[0] = uint8(value >> 8)
	pix[1] = uint8(value)
}
