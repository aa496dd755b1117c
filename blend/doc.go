// The blend subpackage contains the per-pixel compositing primitive
// used to draw glyph coverage into [draw.Image] surfaces:
//   new = current*(1 - coverage) + color*coverage
// applied to every channel in the surface's native channel range.
//
// Common image types from the standard library have fast paths that
// operate on their pixel buffers directly. Any other [draw.Image] is
// blended through 16-bit [color.RGBA64] values and Set().
package blend
