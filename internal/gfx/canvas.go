// Package gfx rasterizes face draw calls into an RGB565 framebuffer.
package gfx

import (
	"image"
	"image/color"

	"slowtime/hal"
	"slowtime/internal/face"
	"slowtime/internal/geometry"
)

// Options tune a Canvas.
type Options struct {
	// Monochrome quantizes every color to black or white.
	Monochrome bool
	// NoCache disables Save/Restore, for boards without RAM for a second buffer.
	NoCache bool
	// Turn is the angle unit of FillArcSector. Zero means TrigMaxAngle.
	Turn geometry.Turn
}

// Canvas implements face.Surface, face.TextMeasurer and face.Cache on top of a
// framebuffer. All drawing is clipped to the framebuffer.
type Canvas struct {
	fb     hal.Framebuffer
	opts   Options
	w, h   int
	stride int

	saved []byte
	fonts fontSet
}

var (
	_ face.Surface      = (*Canvas)(nil)
	_ face.TextMeasurer = (*Canvas)(nil)
	_ face.Cache        = (*Canvas)(nil)
)

// NewCanvas wraps fb. A framebuffer without a pixel buffer yields a canvas that
// accepts every call and draws nothing.
func NewCanvas(fb hal.Framebuffer, opts Options) *Canvas {
	if opts.Turn <= 0 {
		opts.Turn = geometry.TrigMaxAngle
	}
	c := &Canvas{fb: fb, opts: opts, fonts: defaultFonts()}
	if fb != nil && fb.Format() == hal.PixelFormatRGB565 && fb.Buffer() != nil {
		c.w = fb.Width()
		c.h = fb.Height()
		c.stride = fb.StrideBytes()
	}
	return c
}

func (c *Canvas) Bounds() geometry.Rect { return geometry.Rect{W: c.w, H: c.h} }

func (c *Canvas) SupportsColor() bool { return !c.opts.Monochrome }

// Present pushes the frame to the display.
func (c *Canvas) Present() error {
	if c.fb == nil {
		return nil
	}
	return c.fb.Present()
}

// Save snapshots the current pixels.
func (c *Canvas) Save() {
	if c.opts.NoCache || c.w == 0 {
		return
	}
	buf := c.fb.Buffer()
	if len(c.saved) != len(buf) {
		c.saved = make([]byte, len(buf))
	}
	copy(c.saved, buf)
}

// Restore puts back the last Save and reports whether there was one.
func (c *Canvas) Restore() bool {
	if c.opts.NoCache || c.w == 0 || c.saved == nil {
		return false
	}
	buf := c.fb.Buffer()
	if len(buf) != len(c.saved) {
		return false
	}
	copy(buf, c.saved)
	return true
}

// Image copies the framebuffer into a new RGBA image.
func (c *Canvas) Image() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, c.w, c.h))
	if c.w == 0 {
		return img
	}
	buf := c.fb.Buffer()
	for y := 0; y < c.h; y++ {
		row := buf[y*c.stride : y*c.stride+c.w*2]
		hal.ExpandRGB565(img.Pix[y*img.Stride:(y+1)*img.Stride], row)
	}
	return img
}

// At reads back one pixel, mainly for tests.
func (c *Canvas) At(x, y int) color.RGBA {
	if x < 0 || y < 0 || x >= c.w || y >= c.h {
		return color.RGBA{}
	}
	buf := c.fb.Buffer()
	off := y*c.stride + x*2
	r, g, b := hal.RGB888From565(uint16(buf[off]) | uint16(buf[off+1])<<8)
	return color.RGBA{R: r, G: g, B: b, A: 0xFF}
}

func (c *Canvas) pixel(col color.RGBA) uint16 {
	if c.opts.Monochrome {
		col = quantize(col)
	}
	return hal.RGB565(col.R, col.G, col.B)
}

// quantize maps a color to black or white by perceived luminance.
func quantize(col color.RGBA) color.RGBA {
	lum := (299*int(col.R) + 587*int(col.G) + 114*int(col.B)) / 1000
	if lum >= 0x80 {
		return color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
	}
	return color.RGBA{A: 0xFF}
}

func (c *Canvas) setPixel(x, y int, p uint16) {
	if x < 0 || y < 0 || x >= c.w || y >= c.h {
		return
	}
	buf := c.fb.Buffer()
	off := y*c.stride + x*2
	buf[off] = byte(p)
	buf[off+1] = byte(p >> 8)
}

// span fills [x0, x1] on row y.
func (c *Canvas) span(y, x0, x1 int, p uint16) {
	if y < 0 || y >= c.h {
		return
	}
	if x0 > x1 {
		x0, x1 = x1, x0
	}
	if x0 < 0 {
		x0 = 0
	}
	if x1 >= c.w {
		x1 = c.w - 1
	}
	if x0 > x1 {
		return
	}
	buf := c.fb.Buffer()
	lo := byte(p)
	hi := byte(p >> 8)
	row := y * c.stride
	for x := x0; x <= x1; x++ {
		off := row + x*2
		buf[off] = lo
		buf[off+1] = hi
	}
}
