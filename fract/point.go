package fract

import "image"
import "strconv"

// A pair of [Unit] coordinates.
type Point struct {
	X Unit
	Y Unit
}

// Creates a point from a pair of units.
func UnitsToPoint(x, y Unit) Point {
	return Point{ X: x, Y: y }
}

// Creates a point from a pair of float64s. See [FromFloat64]().
func FloatsToPoint(x, y float64) Point {
	return Point{ X: FromFloat64(x), Y: FromFloat64(y) }
}

// Returns the result of adding the two points.
func (self Point) AddPoint(point Point) Point {
	self.X += point.X
	self.Y += point.Y
	return self
}

// Returns the point with both coordinates floored, as an
// [image.Point].
func (self Point) FloorImagePoint() image.Point {
	return image.Pt(self.X.ToIntFloor(), self.Y.ToIntFloor())
}

// Returns only the fractional parts of the point coordinates.
// See [Unit.FractShift]().
func (self Point) FractShift() Point {
	return Point{ X: self.X.FractShift(), Y: self.Y.FractShift() }
}

// Returns the point coordinates as a pair of float32s.
func (self Point) ToFloat32s() (x, y float32) {
	return self.X.ToFloat32(), self.Y.ToFloat32()
}

// Returns a textual representation of the point (e.g.: "(2.5, -4)").
func (self Point) String() string {
	x := strconv.FormatFloat(self.X.ToFloat64(), 'f', -1, 64)
	y := strconv.FormatFloat(self.Y.ToFloat64(), 'f', -1, 64)
	return "(" + x + ", " + y + ")"
}
