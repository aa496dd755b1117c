package mask

// Helper functions for testing.

import "golang.org/x/image/math/fixed"
import "golang.org/x/image/font/sfnt"

func moveTo(segments []sfnt.Segment, x, y fixed.Int26_6) []sfnt.Segment {
	return append(segments, sfnt.Segment{
		Op: sfnt.SegmentOpMoveTo,
		Args: [3]fixed.Point26_6{ fixed.Point26_6{X: x, Y: y} },
	})
}

func lineTo(segments []sfnt.Segment, x, y fixed.Int26_6) []sfnt.Segment {
	return append(segments, sfnt.Segment{
		Op: sfnt.SegmentOpLineTo,
		Args: [3]fixed.Point26_6{ fixed.Point26_6{X: x, Y: y} },
	})
}

func quadTo(segments []sfnt.Segment, cx, cy, x, y fixed.Int26_6) []sfnt.Segment {
	return append(segments, sfnt.Segment{
		Op: sfnt.SegmentOpQuadTo,
		Args: [3]fixed.Point26_6{
			fixed.Point26_6{X: cx, Y: cy},
			fixed.Point26_6{X: x, Y: y},
		},
	})
}

// A closed axis aligned rectangle outline, with coordinates in pixels.
func rectOutline(minX, minY, maxX, maxY int) sfnt.Segments {
	segments := make([]sfnt.Segment, 0, 5)
	segments = moveTo(segments, fixed.I(minX), fixed.I(minY))
	segments = lineTo(segments, fixed.I(maxX), fixed.I(minY))
	segments = lineTo(segments, fixed.I(maxX), fixed.I(maxY))
	segments = lineTo(segments, fixed.I(minX), fixed.I(maxY))
	segments = lineTo(segments, fixed.I(minX), fixed.I(minY))
	return sfnt.Segments(segments)
}
