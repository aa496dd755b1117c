// The mask subpackage turns glyph outlines into coverage masks and
// exposes those masks as sequences of coverage samples.
//
// Glyph outlines are extracted from font files as sets of lines and
// curves. Before they can be composited onto a surface, they have to be
// rasterized into a grid of per-pixel coverage values: the fraction of
// each pixel's area covered by the glyph's ink. The [Rasterizer]
// interface does that step, with [DefaultRasterizer] wrapping
// [golang.org/x/image/vector.Rasterizer].
//
// Consumers of the masks don't index them directly. Instead, they walk
// a [Coverage] iterator, which yields (x, y, coverage) samples local
// to the mask bounds and can be reset and traversed again.
package mask
