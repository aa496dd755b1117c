package stxt

import "image"
import "image/draw"
import "image/color"

import "github.com/tinne26/stxt/font"

// This file contains the Renderer type definition and all the
// getter and setter methods.

// A Renderer keeps a font, a scale and a color so they don't need
// to be passed to every [Draw]() and [Measure]() call.
//
// The zero value is valid, but you must set a font before drawing,
// measuring or laying out text. Defaults are white color and a
// uniform scale of 16.
//
// Renderers are not safe for concurrent use, but multiple renderers
// can share the same [*font.Face].
type Renderer struct {
	font Font
	fontColor color.Color
	scale font.Scale
	initialized bool
}

// Creates a new [Renderer]. Setting a font with [Renderer.SetFont]()
// or [RendererUtils.SetFontBytes]() is required before using it.
func NewRenderer() *Renderer {
	renderer := &Renderer{}
	renderer.initBasicProps()
	return renderer
}

func (self *Renderer) initBasicProps() {
	self.fontColor = color.RGBA{255, 255, 255, 255}
	self.scale = font.Uniform(16)
	self.initialized = true
}

// Sets the font to be used on subsequent operations.
func (self *Renderer) SetFont(f Font) { self.font = f }

// Returns the current font. The font is nil by default.
func (self *Renderer) GetFont() Font { return self.font }

// Sets a uniform scale, where size is the height in pixels from the
// font's descent to its ascent. Negative sizes panic.
//
// The default size is 16.
func (self *Renderer) SetSize(size float64) {
	if size < 0 { panic("negative text size") }
	self.SetScale(font.Uniform(size))
}

// Returns the vertical component of the current scale.
func (self *Renderer) GetSize() float64 {
	return self.GetScale().Y
}

// Sets the scale to be used on subsequent operations. Components
// can't be negative. Degenerate scales (zeros) are valid, but
// nothing will be drawn with them.
func (self *Renderer) SetScale(scale font.Scale) {
	if scale.X < 0 || scale.Y < 0 { panic("negative text scale") }
	if !self.initialized { self.initBasicProps() }
	self.scale = scale
}

// Returns the current scale.
func (self *Renderer) GetScale() font.Scale {
	if !self.initialized { self.initBasicProps() }
	return self.scale
}

// Sets the color to be used on subsequent draw operations.
// The default color is white.
func (self *Renderer) SetColor(fontColor color.Color) {
	if !self.initialized { self.initBasicProps() }
	self.fontColor = fontColor
}

// Returns the current drawing color.
func (self *Renderer) GetColor() color.Color {
	if !self.initialized { self.initBasicProps() }
	return self.fontColor
}

// Same as [Draw]() with the renderer's properties.
func (self *Renderer) Draw(target draw.Image, x, y int, text string) {
	self.panicIfMissingFont()
	Draw(target, self.GetColor(), x, y, self.GetScale(), self.font, text)
}

// Same as [DrawCopy]() with the renderer's properties.
func (self *Renderer) DrawCopy(src image.Image, x, y int, text string) draw.Image {
	self.panicIfMissingFont()
	return DrawCopy(src, self.GetColor(), x, y, self.GetScale(), self.font, text)
}

// Same as [Measure]() with the renderer's properties.
func (self *Renderer) Measure(target image.Image, x, y int, text string) (image.Rectangle, bool) {
	self.panicIfMissingFont()
	return Measure(target, x, y, self.GetScale(), self.font, text)
}

// Same as [Layout]() with the renderer's properties.
func (self *Renderer) Layout(text string) []font.Glyph {
	self.panicIfMissingFont()
	return Layout(self.font, self.GetScale(), text)
}

func (self *Renderer) panicIfMissingFont() {
	if self.font == nil {
		panic("renderer font is nil (tip: use Renderer.SetFont() or Renderer.Utils().SetFontBytes())")
	}
}
