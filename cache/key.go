package cache

// Key identifies a glyph mask configuration. Given a key, the contents
// of the mask must always be the same: passing different masks for the
// same key leads to inconsistent results.
type Key struct {
	Face uint64 // identifier of the glyph source
	Rasterizer uint64 // rasterizer signature
	Glyph uint32 // glyph index
	Fract uint32 // fractional position bits, 6 per coordinate
	ScaleX uint64 // float64 bits
	ScaleY uint64 // float64 bits
}
