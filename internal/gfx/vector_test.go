//go:build !tinygo

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

func newVector(w, h int, opts Options) *Vector {
	return NewVector(hal.NewMemoryFramebuffer(w, h), opts)
}

func TestVectorFillRectClips(t *testing.T) {
	v := newVector(10, 10, Options{})

	require.NotPanics(t, func() {
		v.FillRect(geometry.Rect{X: -5, Y: -5, W: 8, H: 8}, red)
		v.FillRect(geometry.Rect{X: 8, Y: 8, W: 100, H: 100}, blue)
	})
	assert.Equal(t, red, v.At(2, 2))
	assert.Equal(t, black, v.At(3, 3))
	assert.Equal(t, blue, v.At(9, 9))
}

func TestVectorShapes(t *testing.T) {
	v := newVector(20, 20, Options{})
	v.FillCircle(geometry.Point{X: 10, Y: 10}, 4, red)
	assert.Equal(t, red, v.At(10, 10))
	assert.Equal(t, red, v.At(10, 8))
	assert.Equal(t, black, v.At(3, 3))

	v.FillPolygon([]geometry.Point{{X: 2, Y: 2}, {X: 17, Y: 2}, {X: 10, Y: 17}}, blue)
	assert.Equal(t, blue, v.At(10, 6))
	assert.Equal(t, black, v.At(2, 17))

	v = newVector(12, 12, Options{})
	v.FillPolygon(nil, red)
	v.DrawPolygon(nil, red)
	assert.Equal(t, black, v.At(5, 5))
	v.FillPolygon([]geometry.Point{{X: 1, Y: 5}, {X: 9, Y: 5}}, red)
	assert.Equal(t, red, v.At(5, 5), "two points draw a line")
	v.DrawPolygon([]geometry.Point{{X: 3, Y: 9}}, blue)
	assert.Equal(t, blue, v.At(3, 9))
}

func TestVectorFillArcSector(t *testing.T) {
	turn := geometry.TrigMaxAngle
	bounds := geometry.Rect{W: 40, H: 40}

	v := newVector(40, 40, Options{})
	v.FillArcSector(bounds, 5, 0, geometry.Angle(turn/4), red)
	assert.Equal(t, red, v.At(32, 8), "upper right quarter")
	assert.Equal(t, black, v.At(8, 8), "upper left quarter")
	assert.Equal(t, black, v.At(20, 20), "inside the band")

	v = newVector(40, 40, Options{})
	v.FillArcSector(bounds, 5, turn.FromDegrees(-90), turn.FromDegrees(180), red)
	assert.Equal(t, red, v.At(8, 8), "negative start wraps past the top")
	assert.Equal(t, red, v.At(37, 20))
	assert.Equal(t, black, v.At(8, 32), "lower left quarter is outside the sweep")

	v = newVector(40, 40, Options{})
	v.FillArcSector(bounds, 5, 10, 10+geometry.Angle(turn), red)
	assert.Equal(t, red, v.At(8, 8))
	assert.Equal(t, red, v.At(32, 32))
	assert.Equal(t, black, v.At(20, 20), "full band keeps its hole")

	v = newVector(40, 40, Options{})
	v.FillArcSector(bounds, 5, 100, 100, red)
	assert.Equal(t, black, v.At(32, 8), "empty sweep")
}

func TestVectorMonochrome(t *testing.T) {
	v := newVector(4, 4, Options{Monochrome: true})
	assert.False(t, v.SupportsColor())

	v.FillRect(geometry.Rect{W: 2, H: 4}, color.RGBA{R: 0xE0, G: 0xE0, B: 0xE0, A: 0xFF})
	v.FillRect(geometry.Rect{X: 2, W: 2, H: 4}, color.RGBA{R: 0x55, G: 0x55, B: 0x55, A: 0xFF})
	assert.Equal(t, white, v.At(0, 0))
	assert.Equal(t, black, v.At(3, 0))
}

func TestVectorSaveRestore(t *testing.T) {
	v := newVector(8, 8, Options{})
	assert.False(t, v.Restore(), "nothing saved yet")

	v.FillRect(v.Bounds(), red)
	v.Save()
	v.FillRect(v.Bounds(), blue)
	require.True(t, v.Restore())
	assert.Equal(t, red, v.At(4, 4))

	nc := newVector(8, 8, Options{NoCache: true})
	nc.Save()
	assert.False(t, nc.Restore())
}

func TestVectorPresentPacksFramebuffer(t *testing.T) {
	fb := hal.NewMemoryFramebuffer(3, 2)
	v := NewVector(fb, Options{})
	v.FillRect(geometry.Rect{X: 1, Y: 1, W: 1, H: 1}, red)
	require.NoError(t, v.Present())

	snap := make([]byte, len(fb.Buffer()))
	assert.Equal(t, uint64(1), fb.Snapshot(snap))
	off := 1*fb.StrideBytes() + 1*2
	assert.Equal(t, hal.RGB565(0xFF, 0, 0), uint16(snap[off])|uint16(snap[off+1])<<8)
	assert.Zero(t, snap[0])

	img := v.Image()
	assert.Equal(t, red, img.RGBAAt(1, 1))
	assert.Equal(t, black, img.RGBAAt(0, 0))
}

func TestVectorWithoutBuffer(t *testing.T) {
	v := NewVector(nil, Options{})

	assert.True(t, v.Bounds().Empty())
	require.NotPanics(t, func() {
		v.FillRect(geometry.Rect{W: 10, H: 10}, red)
		v.FillCircle(geometry.Point{X: 3, Y: 3}, 2, red)
		v.FillPolygon([]geometry.Point{{X: 1}, {X: 5}, {Y: 5}}, red)
		v.FillArcSector(geometry.Rect{W: 10, H: 10}, 2, 0, 100, red)
		v.DrawText("12", face.FontNumeral, geometry.Rect{W: 10, H: 10}, face.AlignCenter, red)
		v.Save()
	})
	assert.False(t, v.Restore())
	assert.NoError(t, v.Present())
}

func TestVectorRendersFace(t *testing.T) {
	opts, err := face.Preset("full")
	require.NoError(t, err)

	v := newVector(144, 168, Options{})
	c := newCanvas(144, 168, Options{})
	layout, err := face.NewLayout(v.Bounds(), opts)
	require.NoError(t, err)

	for _, s := range []Surface{v, c} {
		r := face.New(opts, layout, s, zerolog.Nop())
		r.Tick(geometry.Reading{Hour: 6, Minute: 0}, face.Date{Day: 9})
		r.Battery(75, false)
		require.True(t, r.Render(s))
	}

	pal := face.PaletteFor(true)
	assert.Equal(t, pal.Hub, v.At(72, 84))
	assert.Equal(t, pal.Battery, v.At(72+68, 84), "battery ring at three o'clock")
	assert.Equal(t, toPixel(v.At(72+68, 84)), c.At(72+68, 84))
	assert.Equal(t, toPixel(v.At(2, 2)), c.At(2, 2))
	assert.Equal(t, v.Measure("00:00", face.FontTime, geometry.Rect{}), c.Measure("00:00", face.FontTime, geometry.Rect{}))
}

func TestBackends(t *testing.T) {
	assert.Equal(t, []Backend{BackendRaster, BackendVector}, Backends())

	b, err := ParseBackend("")
	require.NoError(t, err)
	assert.Equal(t, DefaultBackend, b)

	b, err = ParseBackend(" Raster ")
	require.NoError(t, err)
	assert.Equal(t, BackendRaster, b)

	_, err = ParseBackend("opengl")
	require.Error(t, err)

	fb := hal.NewMemoryFramebuffer(8, 8)
	s, err := New(fb, BackendRaster, Options{})
	require.NoError(t, err)
	assert.IsType(t, &Canvas{}, s)

	s, err = New(fb, "", Options{})
	require.NoError(t, err)
	assert.IsType(t, &Vector{}, s)
}
