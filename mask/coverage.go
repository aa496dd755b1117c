package mask

import "image"

// Coverage is a restartable iterator over the coverage samples of a
// glyph mask. Samples are visited row by row, top to bottom and left to
// right, and their coordinates are local to the mask bounds: (0, 0) is
// the top-left pixel of the mask, wherever the mask is placed.
//
// The zero value and iterators created from nil masks yield no samples.
// Iteration doesn't allocate.
type Coverage struct {
	mask *image.Alpha
	x, y int
}

// Creates a coverage iterator for the given mask. The mask must
// not be modified while the iterator is in use.
func NewCoverage(mask *image.Alpha) Coverage {
	return Coverage{ mask: mask }
}

// Returns the next sample. The coverage value is in [0, 1]. When the
// iterator is exhausted, ok will be false and the remaining values
// must be ignored.
func (self *Coverage) Next() (x, y int, coverage float32, ok bool) {
	if self.mask == nil { return 0, 0, 0, false }
	width, height := self.mask.Rect.Dx(), self.mask.Rect.Dy()
	if self.x >= width {
		self.x = 0
		self.y += 1
	}
	if self.y >= height || width <= 0 { return 0, 0, 0, false }

	x, y = self.x, self.y
	level := self.mask.Pix[y*self.mask.Stride + x]
	self.x += 1
	return x, y, float32(level)/255.0, true
}

// Rewinds the iterator to the first sample.
func (self *Coverage) Reset() {
	self.x, self.y = 0, 0
}

// Returns the number of samples the iterator will yield in a
// full traversal.
func (self *Coverage) Len() int {
	if self.mask == nil { return 0 }
	return self.mask.Rect.Dx()*self.mask.Rect.Dy()
}
