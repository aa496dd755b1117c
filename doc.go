// stxt is a package for drawing and measuring single lines of text on
// regular Go images, without a GPU.
//
// Common usage only depends on a couple functions. First, you load a
// font face:
//   face, _, err := font.ParseFaceFromPath("path/to/font.ttf")
//   if err != nil { ... }
//
// Then you draw text on any [draw.Image], or measure the region that
// drawing would touch:
//   img := image.NewRGBA(image.Rect(0, 0, 700, 700))
//   stxt.Draw(img, color.White, 0, 0, font.Uniform(64), face, "Hello, world!")
//   rect, found := stxt.Measure(img, 0, 0, font.Uniform(64), face, "Hello, world!")
//
// The (x, y) coordinates passed to drawing and measuring functions
// indicate the top-left corner of the line. Glyphs are laid out left
// to right, with their advances and kerning rounded to whole pixels.
// Newlines and other control characters are not interpreted.
//
// If you prefer keeping the font, scale and color configuration in a
// single place, see [Renderer].
package stxt
