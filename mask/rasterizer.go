package mask

import "image"

import "golang.org/x/image/font/sfnt"
import "github.com/tinne26/stxt/fract"

// Rasterizer is an interface for 2D vector graphics rasterization to an
// alpha mask. The concrete [golang.org/x/image/vector.Rasterizer] is
// hidden behind it so glyph sources can swap rasterization algorithms.
//
// Mask rasterizers can't be used concurrently and must tolerate
// coordinates out of bounds.
type Rasterizer interface {
	// Rasterizes the given outline to an alpha mask. The outline must be
	// drawn at the given fractional position (always positive coords between
	// 0 and 0:63 (= 0.984375)).
	//
	// The returned mask bounds are relative to the integer part of the
	// drawing position: translating them by the floored origin gives the
	// absolute pixel bounding box of the glyph.
	Rasterize(sfnt.Segments, fract.Point) (*image.Alpha, error)

	// The signature returns a uint64 that can be used with glyph caches
	// in order to tell rasterizers apart. When using multiple mask
	// rasterizers with a single cache, you normally want to make sure
	// that their signatures are different.
	Signature() uint64
}

type vectorTracer interface {
	// Move to the given coordinate.
	MoveTo(fract.Point)

	// Create a segment to the given coordinate.
	LineTo(fract.Point)

	// Conic Bézier curve (also called quadratic). The first parameter
	// is the control coordinate, and the second one the final target.
	QuadTo(fract.Point, fract.Point)

	// Cubic Bézier curve. The first two parameters are the control
	// coordinates, and the third one is the final target.
	CubeTo(fract.Point, fract.Point, fract.Point)
}

// A low level method to rasterize glyph masks.
//
// Only the fractional part of the given drawing position is considered.
// The image returned will be nil if the segments are empty or do
// not include any active lines or curves (e.g.: space glyphs).
func Rasterize(outline sfnt.Segments, rasterizer Rasterizer, dot fract.Point) (*image.Alpha, error) {
	for _, segment := range outline {
		if segment.Op == sfnt.SegmentOpMoveTo { continue }
		return rasterizer.Rasterize(outline, dot.FractShift())
	}
	return nil, nil // nothing to draw
}

// Calls MoveTo(), LineTo(), QuadTo() and CubeTo() methods on the
// tracer, as corresponding, for each segment in the glyph outline.
func processOutline(tracer vectorTracer, outline sfnt.Segments) {
	for _, segment := range outline {
		switch segment.Op {
		case sfnt.SegmentOpMoveTo:
			tracer.MoveTo(segmentPoint(segment, 0))
		case sfnt.SegmentOpLineTo:
			tracer.LineTo(segmentPoint(segment, 0))
		case sfnt.SegmentOpQuadTo:
			tracer.QuadTo(segmentPoint(segment, 0), segmentPoint(segment, 1))
		case sfnt.SegmentOpCubeTo:
			tracer.CubeTo(segmentPoint(segment, 0), segmentPoint(segment, 1), segmentPoint(segment, 2))
		default:
			panic("unexpected segment.Op case")
		}
	}
}

func segmentPoint(segment sfnt.Segment, i int) fract.Point {
	return fract.UnitsToPoint(fract.Unit(segment.Args[i].X), fract.Unit(segment.Args[i].Y))
}
