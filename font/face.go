package font

import "fmt"
import "math"
import "sync"
import "sync/atomic"

import xfont "golang.org/x/image/font"
import "golang.org/x/image/font/sfnt"
import "golang.org/x/image/math/fixed"

import "github.com/tinne26/stxt/cache"
import "github.com/tinne26/stxt/fract"
import "github.com/tinne26/stxt/mask"
import "github.com/tinne26/stxt/internal/logger"

var faceIDs atomic.Uint64

// A Face wraps an [sfnt.Font] to provide scaled metrics, glyph lookup,
// kerning, advances and rasterized glyphs.
//
// Metrics are computed from the font's design units in float64 and
// never rounded, so callers can apply their own rounding policy
// without rounding twice. Runes missing from the font map to the
// notdef glyph (index 0).
//
// Faces are safe for concurrent use, except for [Face.SetCache]() and
// [Face.SetRasterizer](), which must be called before sharing the face.
type Face struct {
	font *sfnt.Font
	id uint64

	unitsPerEm float64
	unitsAscent float64
	unitsDescent float64
	unitsLineGap float64

	rasterizers sync.Pool
	rasterizerSignature uint64
	glyphCache *cache.DefaultCache
}

// Creates a new face for the given font. An error is returned if the
// font metrics can't be read or are unusable.
func NewFace(sfntFont *sfnt.Font) (*Face, error) {
	if sfntFont == nil { return nil, fmt.Errorf("can't create face from nil font") }

	buffer := getBuffer()
	defer putBuffer(buffer)

	// requesting metrics at ppem == units per em gives design units
	unitsPerEm := sfntFont.UnitsPerEm()
	metrics, err := sfntFont.Metrics(buffer, fixed.I(int(unitsPerEm)), xfont.HintingNone)
	if err != nil { return nil, fmt.Errorf("font metrics: %w", err) }
	ascent, descent := float64(metrics.Ascent)/64.0, float64(metrics.Descent)/64.0
	if ascent + descent <= 0 {
		return nil, fmt.Errorf("font has a non-positive vertical extent (ascent %v, descent %v)", ascent, descent)
	}

	face := &Face{
		font: sfntFont,
		id: faceIDs.Add(1),
		unitsPerEm: float64(unitsPerEm),
		unitsAscent: ascent,
		unitsDescent: descent,
		unitsLineGap: math.Max(0, float64(metrics.Height)/64.0 - ascent - descent),
	}
	face.SetRasterizer(nil)
	logger.Get().Debug("font face created", "face", face.id, "unitsPerEm", unitsPerEm, "glyphs", sfntFont.NumGlyphs())
	return face, nil
}

// Returns the underlying font.
func (self *Face) Font() *sfnt.Font { return self.font }

// Sets the cache used to store rasterized glyph masks. Nil disables
// caching (the default). A cache can be shared by multiple faces.
func (self *Face) SetCache(glyphCache *cache.DefaultCache) {
	self.glyphCache = glyphCache
}

// Returns the glyph mask cache, which may be nil.
func (self *Face) GetCache() *cache.DefaultCache {
	return self.glyphCache
}

// Sets the constructor for the rasterizers used to create glyph masks.
// Rasterizers aren't concurrent-safe, so the face keeps a pool of them.
// Nil restores the default ([mask.DefaultRasterizer]).
func (self *Face) SetRasterizer(newRasterizer func() mask.Rasterizer) {
	if newRasterizer == nil {
		newRasterizer = func() mask.Rasterizer { return &mask.DefaultRasterizer{} }
	}
	sample := newRasterizer()
	self.rasterizerSignature = sample.Signature()
	self.rasterizers = sync.Pool{ New: func() any { return newRasterizer() } }
	self.rasterizers.Put(sample)
}

// Pixels per design unit, horizontally and vertically.
func (self *Face) pixelsPerUnit(scale Scale) (float64, float64) {
	height := self.unitsAscent + self.unitsDescent
	return scale.X/height, scale.Y/height
}

// Returns the vertical metrics at the given scale.
func (self *Face) VMetrics(scale Scale) VMetrics {
	if scale.Degenerate() { return VMetrics{} }
	_, ppuY := self.pixelsPerUnit(scale)
	return VMetrics{
		Ascent: self.unitsAscent*ppuY,
		Descent: self.unitsDescent*ppuY,
		LineGap: self.unitsLineGap*ppuY,
	}
}

// Returns the glyph index for the given rune, or 0 (notdef) if the
// font doesn't have it.
func (self *Face) GlyphIndex(codePoint rune) sfnt.GlyphIndex {
	buffer := getBuffer()
	defer putBuffer(buffer)
	index, err := self.font.GlyphIndex(buffer, codePoint)
	if err != nil {
		logger.Get().Warn("glyph index lookup failed", "face", self.id, "rune", codePoint, "err", err)
		return 0
	}
	return index
}

// Returns the advance width of the given glyph at the given scale.
func (self *Face) GlyphAdvance(scale Scale, index sfnt.GlyphIndex) float64 {
	if scale.Degenerate() { return 0 }
	buffer := getBuffer()
	defer putBuffer(buffer)
	advance, err := self.font.GlyphAdvance(buffer, index, self.unitsPPEM(), xfont.HintingNone)
	if err != nil {
		logger.Get().Warn("glyph advance failed", "face", self.id, "glyph", index, "err", err)
		return 0
	}
	ppuX, _ := self.pixelsPerUnit(scale)
	return float64(advance)/64.0*ppuX
}

// Returns the kerning adjustment between two consecutive glyphs at
// the given scale. Fonts without kerning information return zero.
func (self *Face) Kern(scale Scale, prev, curr sfnt.GlyphIndex) float64 {
	if scale.Degenerate() { return 0 }
	buffer := getBuffer()
	defer putBuffer(buffer)
	kern, err := self.font.Kern(buffer, prev, curr, self.unitsPPEM(), xfont.HintingNone)
	if err != nil {
		if err != sfnt.ErrNotFound {
			logger.Get().Warn("glyph kern failed", "face", self.id, "prev", prev, "curr", curr, "err", err)
		}
		return 0
	}
	ppuX, _ := self.pixelsPerUnit(scale)
	return float64(kern)/64.0*ppuX
}

// Returns the given glyph anchored at (x, y) and rasterized at the
// given scale. Glyphs that can't be loaded have no ink.
func (self *Face) Glyph(index sfnt.GlyphIndex, scale Scale, x, y float64) Glyph {
	if scale.Degenerate() { return NewGlyph(index, scale, x, y, nil) }
	origin := fract.FloatsToPoint(x, y)

	// cache lookup
	var key cache.Key
	if self.glyphCache != nil {
		fractBits := origin.FractShift()
		key = cache.Key{
			Face: self.id,
			Rasterizer: self.rasterizerSignature,
			Glyph: uint32(index),
			Fract: uint32(fractBits.X) | uint32(fractBits.Y) << 6,
			ScaleX: math.Float64bits(scale.X),
			ScaleY: math.Float64bits(scale.Y),
		}
		glyphMask, found := self.glyphCache.GetMask(key)
		if found { return NewGlyph(index, scale, x, y, glyphMask) }
	}

	outline := self.loadOutline(index, scale)
	rasterizer := self.rasterizers.Get().(mask.Rasterizer)
	glyphMask, err := mask.Rasterize(outline, rasterizer, origin)
	self.rasterizers.Put(rasterizer)
	if err != nil {
		logger.Get().Warn("glyph rasterization failed", "face", self.id, "glyph", index, "err", err)
		return NewGlyph(index, scale, x, y, nil)
	}

	if self.glyphCache != nil { self.glyphCache.PassMask(key, glyphMask) }
	return NewGlyph(index, scale, x, y, glyphMask)
}

// Loads the glyph outline in design units and scales it to pixels.
// The returned segments are owned by the caller.
func (self *Face) loadOutline(index sfnt.GlyphIndex, scale Scale) sfnt.Segments {
	buffer := getBuffer()
	defer putBuffer(buffer)
	segments, err := self.font.LoadGlyph(buffer, index, self.unitsPPEM(), nil)
	if err != nil {
		logger.Get().Warn("glyph outline load failed", "face", self.id, "glyph", index, "err", err)
		return nil
	}

	ppuX, ppuY := self.pixelsPerUnit(scale)
	outline := make(sfnt.Segments, len(segments))
	for i, segment := range segments {
		outline[i].Op = segment.Op
		for j := range segment.Args {
			outline[i].Args[j] = fixed.Point26_6{
				X: scaleFixed(segment.Args[j].X, ppuX),
				Y: scaleFixed(segment.Args[j].Y, ppuY),
			}
		}
	}
	return outline
}

// The ppem at which sfnt values come out in design units.
func (self *Face) unitsPPEM() fixed.Int26_6 {
	return fixed.I(int(self.unitsPerEm))
}

func scaleFixed(value fixed.Int26_6, factor float64) fixed.Int26_6 {
	return fixed.Int26_6(fract.FromFloat64(float64(value)/64.0*factor))
}

var buffers = sync.Pool{ New: func() any { return &sfnt.Buffer{} } }

func getBuffer() *sfnt.Buffer { return buffers.Get().(*sfnt.Buffer) }
func putBuffer(buffer *sfnt.Buffer) { buffers.Put(buffer) }
