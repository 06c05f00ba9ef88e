package gfx

import (
	"image/color"
	"math"
	"sort"

	"slowtime/internal/geometry"
)

func (c *Canvas) FillRect(r geometry.Rect, col color.RGBA) {
	if r.Empty() {
		return
	}
	p := c.pixel(col)
	for y := r.Y; y < r.Y+r.H; y++ {
		c.span(y, r.X, r.X+r.W-1, p)
	}
}

func (c *Canvas) FillCircle(center geometry.Point, radius int, col color.RGBA) {
	if radius < 0 {
		return
	}
	p := c.pixel(col)
	for y := -radius; y <= radius; y++ {
		dx := int(math.Sqrt(float64(radius*radius - y*y)))
		c.span(center.Y+y, center.X-dx, center.X+dx, p)
	}
}

// DrawCircle traces a one pixel outline with the midpoint algorithm.
func (c *Canvas) DrawCircle(center geometry.Point, radius int, col color.RGBA) {
	if radius < 0 {
		return
	}
	p := c.pixel(col)
	x := radius
	y := 0
	err := 0
	for x >= y {
		c.circlePoints(center.X, center.Y, x, y, p)
		y++
		if err <= 0 {
			err += 2*y + 1
		}
		if err > 0 {
			x--
			err -= 2*x + 1
		}
	}
}

func (c *Canvas) circlePoints(cx, cy, x, y int, p uint16) {
	c.setPixel(cx+x, cy+y, p)
	c.setPixel(cx+y, cy+x, p)
	c.setPixel(cx-x, cy+y, p)
	c.setPixel(cx-y, cy+x, p)
	c.setPixel(cx-x, cy-y, p)
	c.setPixel(cx-y, cy-x, p)
	c.setPixel(cx+x, cy-y, p)
	c.setPixel(cx+y, cy-x, p)
}

// line draws with Bresenham, endpoints included.
func (c *Canvas) line(x0, y0, x1, y1 int, p uint16) {
	dx := absInt(x1 - x0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	dy := -absInt(y1 - y0)
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx + dy
	for {
		c.setPixel(x0, y0, p)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// DrawPolygon outlines a closed polygon. Two points draw a line.
func (c *Canvas) DrawPolygon(points []geometry.Point, col color.RGBA) {
	if len(points) == 0 {
		return
	}
	c.outline(points, c.pixel(col))
}

func (c *Canvas) outline(points []geometry.Point, p uint16) {
	if len(points) == 1 {
		c.setPixel(points[0].X, points[0].Y, p)
		return
	}
	for i := range points {
		a := points[i]
		b := points[(i+1)%len(points)]
		c.line(a.X, a.Y, b.X, b.Y, p)
	}
}

// FillPolygon fills with the even-odd rule, sampling pixel centers, then traces
// the outline so thin slivers stay visible. Fewer than three points fall back to
// an outline.
func (c *Canvas) FillPolygon(points []geometry.Point, col color.RGBA) {
	if len(points) == 0 {
		return
	}
	p := c.pixel(col)
	if len(points) < 3 {
		c.outline(points, p)
		return
	}

	minY, maxY := points[0].Y, points[0].Y
	for _, pt := range points[1:] {
		if pt.Y < minY {
			minY = pt.Y
		}
		if pt.Y > maxY {
			maxY = pt.Y
		}
	}
	if minY < 0 {
		minY = 0
	}
	if maxY >= c.h {
		maxY = c.h - 1
	}

	xs := make([]float64, 0, len(points))
	for y := minY; y <= maxY; y++ {
		yc := float64(y) + 0.5
		xs = xs[:0]
		for i := range points {
			a := points[i]
			b := points[(i+1)%len(points)]
			ay, by := float64(a.Y), float64(b.Y)
			if (ay <= yc) == (by <= yc) {
				continue
			}
			t := (yc - ay) / (by - ay)
			xs = append(xs, float64(a.X)+t*float64(b.X-a.X))
		}
		sort.Float64s(xs)
		for i := 0; i+1 < len(xs); i += 2 {
			x0 := int(math.Ceil(xs[i] - 0.5))
			x1 := int(math.Floor(xs[i+1] - 0.5))
			if x0 <= x1 {
				c.span(y, x0, x1, p)
			}
		}
	}
	c.outline(points, p)
}

// FillArcSector fills the band of width innerWidth inside the circle inscribed
// in bounds, clockwise from start to end. A sweep of a full turn or more fills
// the whole band.
func (c *Canvas) FillArcSector(bounds geometry.Rect, innerWidth int, start, end geometry.Angle, col color.RGBA) {
	if bounds.Empty() || innerWidth <= 0 {
		return
	}
	turn := c.opts.Turn
	length := int64(end) - int64(start)
	if length <= 0 {
		return
	}
	full := length >= int64(turn)
	from := turn.Wrap(start)

	sq := bounds.Square()
	outer := sq.W / 2
	inner := outer - innerWidth
	if inner < 0 {
		inner = 0
	}
	center := sq.Center()
	p := c.pixel(col)
	r2o := outer * outer
	r2i := inner * inner

	for y := center.Y - outer; y <= center.Y+outer; y++ {
		if y < 0 || y >= c.h {
			continue
		}
		fy := y - center.Y
		for x := center.X - outer; x <= center.X+outer; x++ {
			if x < 0 || x >= c.w {
				continue
			}
			fx := x - center.X
			d2 := fx*fx + fy*fy
			if d2 > r2o || d2 < r2i {
				continue
			}
			if !full {
				a := math.Atan2(float64(fx), float64(-fy))
				ang := turn.Wrap(geometry.Angle(a / (2 * math.Pi) * float64(turn)))
				rel := int64(turn.Wrap(ang - from))
				if rel >= length {
					continue
				}
			}
			c.setPixel(x, y, p)
		}
	}
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
