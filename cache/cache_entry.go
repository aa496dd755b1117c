package cache

import "image"
import "time"
import "sync/atomic"

// Alias for the rasterized glyph masks stored in the cache.
type GlyphMask = *image.Alpha

const constMaskSizeFactor = 56

// Returns the approximate number of bytes the given mask occupies
// within the cache. Nil masks (glyphs without ink) still have a
// small cost.
func GlyphMaskByteSize(mask GlyphMask) uint32 {
	if mask == nil {
		return constMaskSizeFactor
	}
	w, h := mask.Rect.Dx(), mask.Rect.Dy()
	return uint32(w*h) + constMaskSizeFactor
}

// A cached mask with additional information to estimate how
// much the entry is being used.
type cachedMaskEntry struct {
	Mask GlyphMask // Read-only.
	ByteSize uint32 // Read-only.
	CreationInstant uint32 // see cacheEntryInstant(). Read-only.
	accessCount uint32 // number of times the entry has been accessed
}

// Must be called after accessing an entry in order to keep the
// Hotness() heuristic making sense. Concurrent-safe.
func (self *cachedMaskEntry) IncreaseAccessCount() {
	atomic.AddUint32(&self.accessCount, 1)
}

// A measure of "bytes accessed per time". Coldest entries
// (smallest values) are candidates for eviction. Concurrent-safe.
func (self *cachedMaskEntry) Hotness(instant uint32) uint32 {
	const ConstEvictionCost = 1000 // additional threshold and pad
	bytesHit := self.ByteSize*atomic.LoadUint32(&self.accessCount)
	elapsed  := instant - self.CreationInstant
	if elapsed == 0 { elapsed = 1 }
	return (ConstEvictionCost + bytesHit)/elapsed
}

// Lets tests move the clock forward without sleeping. One second
// would be 1000_000_000, half a second 500_000_000, etc.
var testInstantNanosHack int64

var instantBase = time.Now()

// A time instant related to the process monotonic clock, downscaled
// to roughly an eighth of a second per unit.
func cacheEntryInstant() uint32 {
	return uint32((int64(time.Since(instantBase)) + testInstantNanosHack) >> 27)
}

// Creates a new cached mask entry for the given GlyphMask.
func newCachedMaskEntry(mask GlyphMask) (*cachedMaskEntry, uint32) {
	instant := cacheEntryInstant()
	return &cachedMaskEntry {
		Mask: mask,
		ByteSize: GlyphMaskByteSize(mask),
		CreationInstant: instant,
		accessCount: 1,
	}, instant
}
