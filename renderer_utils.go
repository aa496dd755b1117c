package stxt

import "sync"

import "github.com/tinne26/stxt/font"
import "github.com/tinne26/stxt/cache"

// Gateway to [RendererUtils] functionality.
func (self *Renderer) Utils() *RendererUtils {
	return (*RendererUtils)(self)
}

// This type exists only for documentation and structuring purposes,
// acting as a gateway to utility [Renderer] functions.
//
// In general, this type is used through method chaining:
//   renderer.Utils().SetCache8MiB()
type RendererUtils Renderer

// ---- wrapper methods ----

// Related to [RendererUtils.SetCache8MiB]().
var pkgCache8MiB *cache.DefaultCache
var pkgCache8MiBOnce sync.Once

func getPkgCache8MiB() *cache.DefaultCache {
	pkgCache8MiBOnce.Do(func() {
		pkgCache8MiB = cache.NewDefaultCache(8*1024*1024)
	})
	return pkgCache8MiB
}

// Utility method to set a glyph cache on the current font. Only
// works when the font is a [*font.Face], and does nothing otherwise.
// For a more manual and adjustable approach, see [font.Face.SetCache]().
func (self *RendererUtils) SetCache8MiB() {
	(*Renderer)(self).utilsSetCache8MiB()
}

// Utility method to get the current line height, including the
// font's line gap.
func (self *RendererUtils) GetLineHeight() float64 {
	return (*Renderer)(self).utilsGetLineHeight()
}

// Utility method to set the font by passing its raw data and letting
// the renderer parse it into a [*font.Face]. If you want to reuse
// the font at different points in your application, parse it only
// once with [font.ParseFaceFromBytes]() and use [Renderer.SetFont].
func (self *RendererUtils) SetFontBytes(data []byte) error {
	return (*Renderer)(self).utilsSetFontBytes(data)
}

// ---- underlying implementations ----

func (self *Renderer) utilsSetCache8MiB() {
	// package level cache shared by all renderers using
	// this method. keys include the face, so that's ok
	face, isFace := self.font.(*font.Face)
	if !isFace { return }
	face.SetCache(getPkgCache8MiB())
}

func (self *Renderer) utilsSetFontBytes(data []byte) error {
	face, _, err := font.ParseFaceFromBytes(data)
	if err != nil { return err }
	self.SetFont(face)
	return nil
}

func (self *Renderer) utilsGetLineHeight() float64 {
	self.panicIfMissingFont()
	return self.font.VMetrics(self.GetScale()).LineHeight()
}
