// The font subpackage is the glyph source for stxt: it parses font
// files, exposes their vertical metrics, advances and kerning at a
// given [Scale], and turns glyphs into positioned coverage masks
// ([Glyph]).
//
// The main type is [Face], a thin layer over [sfnt.Font] that is
// safe to share between goroutines:
//   face, name, err := font.ParseFaceFromPath("fonts/DejaVuSans.ttf")
//   if err != nil { ... }
//   face.SetCache(cache.NewDefaultCache(4*1024*1024))
//
// [sfnt.Font]: https://pkg.go.dev/golang.org/x/image/font/sfnt#Font
package font
