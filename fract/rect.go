package fract

import "image"

import "golang.org/x/image/math/fixed"

// A pair of [Point] values defining a rectangular region.
// Like [image.Rectangle], the Max point is not included
// in the rectangle.
type Rect struct {
	Min Point
	Max Point
}

// Creates a rect from a set of four units.
func UnitsToRect(minX, minY, maxX, maxY Unit) Rect {
	return Rect{
		Min: Point{ X: minX, Y: minY },
		Max: Point{ X: maxX, Y: maxY },
	}
}

// Converts a [fixed.Rectangle26_6], like the ones returned by
// sfnt.Segments.Bounds(), to a Rect.
func FromFixedRect(rect fixed.Rectangle26_6) Rect {
	return UnitsToRect(Unit(rect.Min.X), Unit(rect.Min.Y), Unit(rect.Max.X), Unit(rect.Max.Y))
}

// Returns the smallest [image.Rectangle] containing the rect.
func (self Rect) ImageRect() image.Rectangle {
	return image.Rect(
		self.Min.X.ToIntFloor(), self.Min.Y.ToIntFloor(),
		self.Max.X.ToIntCeil(), self.Max.Y.ToIntCeil(),
	)
}

func (self Rect) Width() Unit {
	return self.Max.X - self.Min.X
}

func (self Rect) Height() Unit {
	return self.Max.Y - self.Min.Y
}

// Returns whether the rect has zero or negative area.
func (self Rect) Empty() bool {
	return self.Min.X >= self.Max.X || self.Min.Y >= self.Max.Y
}
