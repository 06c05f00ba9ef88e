//go:build !tinygo

package gfx

import (
	"image"
	"image/color"
	"math"

	"github.com/llgcode/draw2d"
	"github.com/llgcode/draw2d/draw2dimg"
	"github.com/llgcode/draw2d/draw2dkit"
	xdraw "golang.org/x/image/draw"
	"tinygo.org/x/drivers"

	"slowtime/hal"
	"slowtime/internal/face"
	"slowtime/internal/geometry"
)

// Vector draws into an RGBA image with draw2d and packs it into the RGB565
// framebuffer on Present. Edges are antialiased; monochrome output is
// thresholded when the frame is packed.
type Vector struct {
	fb    hal.Framebuffer
	opts  Options
	img   *image.RGBA
	gc    *draw2dimg.GraphicContext
	saved []byte
	fonts fontSet
}

var _ Surface = (*Vector)(nil)

// NewVector wraps fb. Like NewCanvas, a framebuffer without a pixel buffer
// yields a surface that accepts every call and draws nothing.
func NewVector(fb hal.Framebuffer, opts Options) *Vector {
	if opts.Turn <= 0 {
		opts.Turn = geometry.TrigMaxAngle
	}
	v := &Vector{fb: fb, opts: opts, fonts: defaultFonts(), img: image.NewRGBA(image.Rectangle{})}
	if fb != nil && fb.Format() == hal.PixelFormatRGB565 && fb.Buffer() != nil && fb.Width() > 0 && fb.Height() > 0 {
		v.img = image.NewRGBA(image.Rect(0, 0, fb.Width(), fb.Height()))
		v.gc = draw2dimg.NewGraphicContext(v.img)
		v.gc.SetLineWidth(1)
		v.gc.SetLineCap(draw2d.SquareCap)
		v.gc.SetLineJoin(draw2d.MiterJoin)
		v.gc.SetFillRule(draw2d.FillRuleEvenOdd)
	}
	return v
}

func (v *Vector) Bounds() geometry.Rect {
	b := v.img.Bounds()
	return geometry.Rect{W: b.Dx(), H: b.Dy()}
}

func (v *Vector) SupportsColor() bool { return !v.opts.Monochrome }

func (v *Vector) color(col color.RGBA) color.RGBA {
	if v.opts.Monochrome {
		return quantize(col)
	}
	return col
}

func (v *Vector) FillRect(r geometry.Rect, col color.RGBA) {
	if v.gc == nil || r.Empty() {
		return
	}
	dst := image.Rect(r.X, r.Y, r.X+r.W, r.Y+r.H).Intersect(v.img.Bounds())
	xdraw.Draw(v.img, dst, image.NewUniform(v.color(col)), image.Point{}, xdraw.Src)
}

// Integer coordinates address pixels; paths run through pixel centers.
func pixelCenter(p geometry.Point) (x, y float64) {
	return float64(p.X) + 0.5, float64(p.Y) + 0.5
}

func (v *Vector) FillCircle(c geometry.Point, radius int, col color.RGBA) {
	if v.gc == nil || radius < 0 {
		return
	}
	x, y := pixelCenter(c)
	v.gc.SetFillColor(v.color(col))
	v.gc.BeginPath()
	draw2dkit.Circle(v.gc, x, y, float64(radius)+0.5)
	v.gc.Fill()
}

func (v *Vector) DrawCircle(c geometry.Point, radius int, col color.RGBA) {
	if v.gc == nil || radius < 0 {
		return
	}
	x, y := pixelCenter(c)
	v.gc.SetStrokeColor(v.color(col))
	v.gc.BeginPath()
	draw2dkit.Circle(v.gc, x, y, float64(radius))
	v.gc.Stroke()
}

func (v *Vector) path(points []geometry.Point, closed bool) {
	v.gc.BeginPath()
	x, y := pixelCenter(points[0])
	v.gc.MoveTo(x, y)
	for _, p := range points[1:] {
		x, y = pixelCenter(p)
		v.gc.LineTo(x, y)
	}
	if closed {
		v.gc.Close()
	}
}

// DrawPolygon strokes a closed polygon. Two points draw a line.
func (v *Vector) DrawPolygon(points []geometry.Point, col color.RGBA) {
	if v.gc == nil || len(points) == 0 {
		return
	}
	if len(points) == 1 {
		v.FillRect(geometry.Rect{X: points[0].X, Y: points[0].Y, W: 1, H: 1}, col)
		return
	}
	v.gc.SetStrokeColor(v.color(col))
	v.path(points, len(points) > 2)
	v.gc.Stroke()
}

// FillPolygon fills with the even-odd rule and strokes the outline so thin
// slivers stay visible. Fewer than three points fall back to DrawPolygon.
func (v *Vector) FillPolygon(points []geometry.Point, col color.RGBA) {
	if v.gc == nil || len(points) == 0 {
		return
	}
	if len(points) < 3 {
		v.DrawPolygon(points, col)
		return
	}
	c := v.color(col)
	v.gc.SetFillColor(c)
	v.gc.SetStrokeColor(c)
	v.path(points, true)
	v.gc.FillStroke()
}

// radians converts a dial angle, zero up and clockwise, into draw2d's angle
// from the positive x axis.
func (v *Vector) radians(a geometry.Angle) float64 {
	return float64(a)/float64(v.opts.Turn)*2*math.Pi - math.Pi/2
}

// FillArcSector fills the band of width innerWidth inside the circle inscribed
// in bounds, clockwise from start to end. A sweep of a full turn or more fills
// the whole band.
func (v *Vector) FillArcSector(bounds geometry.Rect, innerWidth int, start, end geometry.Angle, col color.RGBA) {
	if v.gc == nil || bounds.Empty() || innerWidth <= 0 {
		return
	}
	turn := v.opts.Turn
	length := int64(end) - int64(start)
	if length <= 0 {
		return
	}

	sq := bounds.Square()
	cx, cy := pixelCenter(sq.Center())
	outer := float64(sq.W)/2 + 0.5
	inner := outer - float64(innerWidth)
	if inner < 0 {
		inner = 0
	}

	v.gc.SetFillColor(v.color(col))
	v.gc.BeginPath()
	if length >= int64(turn) {
		draw2dkit.Circle(v.gc, cx, cy, outer)
		if inner > 0 {
			v.gc.MoveTo(cx+inner, cy)
			draw2dkit.Circle(v.gc, cx, cy, inner)
		}
		v.gc.Fill()
		return
	}
	from := v.radians(turn.Wrap(start))
	sweep := float64(length) / float64(turn) * 2 * math.Pi
	v.gc.ArcTo(cx, cy, outer, outer, from, sweep)
	v.gc.ArcTo(cx, cy, inner, inner, from+sweep, -sweep)
	v.gc.Close()
	v.gc.Fill()
}

func (v *Vector) Measure(text string, font face.FontID, max geometry.Rect) geometry.Size {
	return v.fonts.measure(text, font, max)
}

// DrawText renders tinyfont glyphs so both backends share their metrics.
func (v *Vector) DrawText(text string, font face.FontID, box geometry.Rect, align face.Alignment, col color.RGBA) {
	if v.gc == nil {
		return
	}
	v.fonts.write(imageDisplayer{v.img}, text, font, box, align, v.color(col))
}

// Save snapshots the current pixels.
func (v *Vector) Save() {
	if v.opts.NoCache || v.gc == nil {
		return
	}
	if len(v.saved) != len(v.img.Pix) {
		v.saved = make([]byte, len(v.img.Pix))
	}
	copy(v.saved, v.img.Pix)
}

// Restore puts back the last Save and reports whether there was one.
func (v *Vector) Restore() bool {
	if v.opts.NoCache || v.gc == nil || len(v.saved) != len(v.img.Pix) {
		return false
	}
	copy(v.img.Pix, v.saved)
	return true
}

// Present packs the image into the framebuffer and pushes it to the display.
func (v *Vector) Present() error {
	if v.fb == nil {
		return nil
	}
	if v.gc != nil {
		buf := v.fb.Buffer()
		stride := v.fb.StrideBytes()
		b := v.img.Bounds()
		for y := 0; y < b.Dy(); y++ {
			row := buf[y*stride:]
			for x := 0; x < b.Dx(); x++ {
				c := v.At(x, y)
				p := hal.RGB565(c.R, c.G, c.B)
				row[x*2] = byte(p)
				row[x*2+1] = byte(p >> 8)
			}
		}
	}
	return v.fb.Present()
}

// Image copies the frame, thresholded when monochrome.
func (v *Vector) Image() *image.RGBA {
	b := v.img.Bounds()
	img := image.NewRGBA(b)
	for y := 0; y < b.Dy(); y++ {
		for x := 0; x < b.Dx(); x++ {
			img.SetRGBA(x, y, v.At(x, y))
		}
	}
	return img
}

// At reads back one pixel, mainly for tests.
func (v *Vector) At(x, y int) color.RGBA {
	if !(image.Point{X: x, Y: y}).In(v.img.Bounds()) {
		return color.RGBA{}
	}
	c := v.img.RGBAAt(x, y)
	c.A = 0xFF
	return v.color(c)
}

// imageDisplayer lets tinyfont draw into the vector image.
type imageDisplayer struct {
	img *image.RGBA
}

var _ drivers.Displayer = imageDisplayer{}

func (d imageDisplayer) Size() (x, y int16) {
	b := d.img.Bounds()
	return int16(b.Dx()), int16(b.Dy())
}

func (d imageDisplayer) SetPixel(x, y int16, col color.RGBA) {
	d.img.SetRGBA(int(x), int(y), col)
}

func (d imageDisplayer) Display() error { return nil }
