// The fract subpackage defines a [Unit] type representing a 26.6
// fixed point value, plus the [Point] and [Rect] helper types.
//
// Glyph outlines coming from sfnt are already expressed in 26.6
// units, so rasterization and subpixel positioning are done in this
// representation instead of converting back and forth to floats.
// The internal representation is compatible with [fixed.Int26_6].
//
// [fixed.Int26_6]: https://pkg.go.dev/golang.org/x/image/math/fixed#Int26_6
package fract
