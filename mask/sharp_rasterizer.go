package mask

import "image"

import "golang.org/x/image/font/sfnt"

import "github.com/tinne26/stxt/fract"

var _ Rasterizer = (*SharpRasterizer)(nil)

// A rasterizer that quantizes all coverage values to fully opaque
// or fully transparent. Its primary use-case is to make scaled pixel
// art fonts look sharper through the elimination of blurry edges.
//
// Values below the threshold become zero, and the rest 255. The
// zero value uses a threshold of 128.
type SharpRasterizer struct {
	DefaultRasterizer
	threshold uint8
}

// Sets the coverage threshold in [1, 255]. Zero restores the
// default of 128.
func (self *SharpRasterizer) SetThreshold(threshold uint8) {
	self.threshold = threshold
}

// Returns the coverage threshold.
func (self *SharpRasterizer) GetThreshold() uint8 {
	if self.threshold == 0 { return 128 }
	return self.threshold
}

// Satisfies the [Rasterizer] interface. The signature depends on
// the threshold.
func (self *SharpRasterizer) Signature() uint64 {
	return 0x5348_4152_5000_0000 | uint64(self.GetThreshold())
}

// Satisfies the [Rasterizer] interface.
func (self *SharpRasterizer) Rasterize(outline sfnt.Segments, origin fract.Point) (*image.Alpha, error) {
	mask, err := self.DefaultRasterizer.Rasterize(outline, origin)
	if err != nil || mask == nil { return mask, err }
	threshold := self.GetThreshold()
	for i := 0; i < len(mask.Pix); i++ {
		if mask.Pix[i] < threshold {
			mask.Pix[i] = 0
		} else {
			mask.Pix[i] = 255
		}
	}
	return mask, nil
}
