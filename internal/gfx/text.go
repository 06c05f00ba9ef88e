package gfx

import (
	"image/color"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/freesans"
	"tinygo.org/x/tinyfont/proggy"

	"slowtime/internal/face"
	"slowtime/internal/geometry"
)

type fontSet map[face.FontID]*tinyfont.Font

func defaultFonts() fontSet {
	return fontSet{
		face.FontNumeral: &freesans.Bold9pt7b,
		face.FontBadge:   &freesans.Bold9pt7b,
		face.FontLabel:   &proggy.TinySZ8pt7b,
		face.FontTime:    &freesans.Bold12pt7b,
	}
}

func (fs fontSet) get(id face.FontID) *tinyfont.Font {
	if f, ok := fs[id]; ok {
		return f
	}
	return fs[face.FontLabel]
}

// Measure returns the outbox width and line height of text, clipped to max
// when max is not empty.
func (c *Canvas) Measure(text string, font face.FontID, max geometry.Rect) geometry.Size {
	return c.fonts.measure(text, font, max)
}

// DrawText writes one line inside box.
func (c *Canvas) DrawText(text string, font face.FontID, box geometry.Rect, align face.Alignment, col color.RGBA) {
	if c.w == 0 {
		return
	}
	if c.opts.Monochrome {
		col = quantize(col)
	}
	c.fonts.write(&displayer{c: c}, text, font, box, align, col)
}

func (fs fontSet) measure(text string, font face.FontID, max geometry.Rect) geometry.Size {
	f := fs.get(font)
	_, outbox := tinyfont.LineWidth(f, text)
	size := geometry.Size{W: int(outbox), H: int(f.GetYAdvance())}
	if !max.Empty() {
		if size.W > max.W {
			size.W = max.W
		}
		if size.H > max.H {
			size.H = max.H
		}
	}
	return size
}

// write draws one line through d. The baseline sits three quarters of the line
// height below the top of the box.
func (fs fontSet) write(d drivers.Displayer, text string, font face.FontID, box geometry.Rect, align face.Alignment, col color.RGBA) {
	if text == "" {
		return
	}
	f := fs.get(font)
	_, outbox := tinyfont.LineWidth(f, text)

	x := box.X
	switch align {
	case face.AlignCenter:
		x = box.X + (box.W-int(outbox))/2
	case face.AlignRight:
		x = box.X + box.W - int(outbox)
	}
	y := box.Y + int(f.GetYAdvance())*3/4
	tinyfont.WriteLine(d, f, int16(x), int16(y), text, col)
}

// displayer lets tinyfont draw straight into the canvas.
type displayer struct {
	c *Canvas
}

var _ drivers.Displayer = (*displayer)(nil)

func (d *displayer) Size() (x, y int16) {
	return int16(d.c.w), int16(d.c.h)
}

func (d *displayer) SetPixel(x, y int16, col color.RGBA) {
	d.c.setPixel(int(x), int(y), d.c.pixel(col))
}

func (d *displayer) Display() error { return nil }
