package gfx

import (
	"image/color"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"slowtime/hal"
	"slowtime/internal/face"
	"slowtime/internal/geometry"
)

var (
	black = color.RGBA{A: 0xFF}
	white = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
	red   = color.RGBA{R: 0xFF, A: 0xFF}
	blue  = color.RGBA{B: 0xFF, A: 0xFF}
)

func newCanvas(w, h int, opts Options) *Canvas {
	return NewCanvas(hal.NewMemoryFramebuffer(w, h), opts)
}

func countColor(c *Canvas, col color.RGBA) int {
	n := 0
	b := c.Bounds()
	for y := 0; y < b.H; y++ {
		for x := 0; x < b.W; x++ {
			if c.At(x, y) == col {
				n++
			}
		}
	}
	return n
}

func TestFillRectClips(t *testing.T) {
	c := newCanvas(10, 10, Options{})

	require.NotPanics(t, func() {
		c.FillRect(geometry.Rect{X: -5, Y: -5, W: 8, H: 8}, red)
		c.FillRect(geometry.Rect{X: 8, Y: 8, W: 100, H: 100}, blue)
	})
	assert.Equal(t, red, c.At(2, 2))
	assert.Equal(t, black, c.At(3, 3))
	assert.Equal(t, blue, c.At(9, 9))
	assert.Equal(t, 9+4, countColor(c, red)+countColor(c, blue))
}

func TestCircles(t *testing.T) {
	c := newCanvas(20, 20, Options{})
	center := geometry.Point{X: 10, Y: 10}

	c.FillCircle(center, 4, red)
	assert.Equal(t, red, c.At(10, 10))
	assert.Equal(t, red, c.At(10, 6))
	assert.Equal(t, black, c.At(6, 6))

	c.DrawCircle(center, 8, blue)
	assert.Equal(t, blue, c.At(18, 10))
	assert.Equal(t, blue, c.At(10, 2))
	assert.Equal(t, black, c.At(16, 10))
}

func TestFillPolygon(t *testing.T) {
	c := newCanvas(12, 12, Options{})
	c.FillPolygon([]geometry.Point{{X: 2, Y: 2}, {X: 8, Y: 2}, {X: 5, Y: 8}}, red)

	assert.Equal(t, red, c.At(5, 4))
	assert.Equal(t, red, c.At(2, 2), "outline covers the vertices")
	assert.Equal(t, black, c.At(0, 10))
	assert.Equal(t, black, c.At(9, 7))
}

func TestFillPolygonDegenerate(t *testing.T) {
	c := newCanvas(12, 12, Options{})

	c.FillPolygon(nil, red)
	assert.Zero(t, countColor(c, red))

	c.FillPolygon([]geometry.Point{{X: 1, Y: 5}, {X: 6, Y: 5}}, red)
	assert.Equal(t, 6, countColor(c, red), "two points draw a line")
}

func TestFillArcSector(t *testing.T) {
	turn := geometry.TrigMaxAngle
	bounds := geometry.Rect{W: 40, H: 40}

	c := newCanvas(40, 40, Options{})
	c.FillArcSector(bounds, 5, 0, geometry.Angle(turn/4), red)
	assert.Equal(t, red, c.At(32, 8), "upper right quarter")
	assert.Equal(t, black, c.At(8, 8), "upper left quarter")
	assert.Equal(t, black, c.At(20, 20), "inside the band")

	c = newCanvas(40, 40, Options{})
	c.FillArcSector(bounds, 5, turn.FromDegrees(-90), turn.FromDegrees(180), red)
	assert.Equal(t, red, c.At(8, 8), "negative start wraps past the top")
	assert.Equal(t, red, c.At(37, 20))
	assert.Equal(t, red, c.At(22, 37), "just before the bottom anchor")
	assert.Equal(t, black, c.At(8, 32), "lower left quarter is outside the sweep")

	c = newCanvas(40, 40, Options{})
	c.FillArcSector(bounds, 5, 10, 10+geometry.Angle(turn), red)
	assert.Equal(t, red, c.At(8, 8))
	assert.Equal(t, red, c.At(32, 32))

	c = newCanvas(40, 40, Options{})
	c.FillArcSector(bounds, 5, 100, 100, red)
	assert.Zero(t, countColor(c, red), "empty sweep")
}

func TestMonochromeQuantizes(t *testing.T) {
	c := newCanvas(4, 4, Options{Monochrome: true})
	assert.False(t, c.SupportsColor())

	c.FillRect(geometry.Rect{W: 2, H: 4}, color.RGBA{R: 0xE0, G: 0xE0, B: 0xE0, A: 0xFF})
	c.FillRect(geometry.Rect{X: 2, W: 2, H: 4}, color.RGBA{R: 0x55, G: 0x55, B: 0x55, A: 0xFF})

	assert.Equal(t, white, c.At(0, 0))
	assert.Equal(t, black, c.At(3, 0))
}

func TestSaveRestore(t *testing.T) {
	c := newCanvas(8, 8, Options{})
	assert.False(t, c.Restore(), "nothing saved yet")

	c.FillRect(c.Bounds(), red)
	c.Save()
	c.FillRect(c.Bounds(), blue)
	require.True(t, c.Restore())
	assert.Equal(t, red, c.At(4, 4))

	nc := newCanvas(8, 8, Options{NoCache: true})
	nc.Save()
	assert.False(t, nc.Restore())
}

func TestImage(t *testing.T) {
	c := newCanvas(3, 2, Options{})
	c.FillRect(geometry.Rect{X: 1, Y: 1, W: 1, H: 1}, red)

	img := c.Image()
	assert.Equal(t, 3, img.Bounds().Dx())
	assert.Equal(t, red, img.RGBAAt(1, 1))
	assert.Equal(t, black, img.RGBAAt(0, 0))
}

func TestCanvasWithoutBuffer(t *testing.T) {
	c := NewCanvas(nil, Options{})

	assert.True(t, c.Bounds().Empty())
	require.NotPanics(t, func() {
		c.FillRect(geometry.Rect{W: 10, H: 10}, red)
		c.FillCircle(geometry.Point{X: 3, Y: 3}, 2, red)
		c.FillArcSector(geometry.Rect{W: 10, H: 10}, 2, 0, 100, red)
		c.DrawText("12", face.FontNumeral, geometry.Rect{W: 10, H: 10}, face.AlignCenter, red)
		c.Save()
	})
	assert.False(t, c.Restore())
	assert.NoError(t, c.Present())
}

func TestText(t *testing.T) {
	c := newCanvas(80, 40, Options{})

	size := c.Measure("00:00", face.FontTime, c.Bounds())
	assert.Positive(t, size.W)
	assert.Positive(t, size.H)
	assert.LessOrEqual(t, size.W, 80)

	small := c.Measure("0", face.FontNumeral, geometry.Rect{})
	wide := c.Measure("000", face.FontNumeral, geometry.Rect{})
	assert.Greater(t, wide.W, small.W)

	clipped := c.Measure("00:00", face.FontTime, geometry.Rect{W: 5, H: 5})
	assert.Equal(t, geometry.Size{W: 5, H: 5}, clipped)

	c.DrawText("8", face.FontNumeral, geometry.Rect{X: 10, Y: 5, W: 20, H: 20}, face.AlignCenter, white)
	assert.Positive(t, countColor(c, white))
}

func TestRendersFace(t *testing.T) {
	opts, err := face.Preset("full")
	require.NoError(t, err)

	c := newCanvas(144, 168, Options{})
	layout, err := face.NewLayout(c.Bounds(), opts)
	require.NoError(t, err)

	r := face.New(opts, layout, c, zerolog.Nop())
	r.Tick(geometry.Reading{Hour: 6, Minute: 0}, face.Date{Day: 9})
	r.Battery(75, false)
	r.Steps(120)
	require.True(t, r.Render(c))

	pal := face.PaletteFor(true)
	assert.Positive(t, countColor(c, toPixel(pal.Pointer)))
	assert.Positive(t, countColor(c, toPixel(pal.Overflow)))
	assert.Equal(t, toPixel(pal.Hub), c.At(72, 84))

	before := countColor(c, toPixel(pal.Track))
	r.Tick(geometry.Reading{Hour: 6, Minute: 1}, face.Date{Day: 9})
	require.True(t, r.Render(c))
	assert.InDelta(t, before, countColor(c, toPixel(pal.Track)), 40, "dial restored from cache")
}

func TestMonochromeTicksShowOnDial(t *testing.T) {
	opts, err := face.Preset("rings")
	require.NoError(t, err)
	opts.Rings = false

	c := newCanvas(144, 144, Options{Monochrome: true})
	layout, err := face.NewLayout(c.Bounds(), opts)
	require.NoError(t, err)

	r := face.New(opts, layout, c, zerolog.Nop())
	r.Tick(geometry.Reading{Hour: 6}, face.Date{Day: 9})
	require.True(t, r.Render(c))

	// Inner edge at 48px, the 12 o'clock tick spans 41 to 46px above the center.
	assert.Equal(t, black, c.At(72, 72-36), "dial interior")
	assert.Equal(t, white, c.At(72, 72-44), "tick")
	assert.Equal(t, white, c.At(72, 72-60), "track")
}

// toPixel rounds a color through RGB565 the way the canvas stores it.
func toPixel(col color.RGBA) color.RGBA {
	r, g, b := hal.RGB888From565(hal.RGB565(col.R, col.G, col.B))
	return color.RGBA{R: r, G: g, B: b, A: 0xFF}
}
