// The cache subpackage provides a concurrent-safe, memory bounded
// cache for rasterized glyph masks.
//
// Rasterizing a glyph outline is by far the most expensive step of
// drawing or measuring text, and the same glyphs tend to be rasterized
// over and over: measuring a text run and then drawing it, or drawing
// the same labels every frame. A font.Face configured with a cache
// reuses masks across calls instead.
//
// Masks are keyed by face, rasterizer signature, glyph index, scale
// and fractional position (see [Key]). When the cache is full, a small
// random sample of entries is inspected and the coldest one is evicted
// to make room, if it's colder than the incoming mask.
//
// As a size reference, a 64px glyph mask is around 40x50 pixels, so
// 2KiB per glyph; a few hundred glyphs at a couple of sizes already
// account for a MiB. Use [DefaultCache.PeakSize]() to tune the limit.
package cache
