package face

import (
	"fmt"
	"image/color"
	"strconv"

	"slowtime/internal/geometry"
)

const (
	tickLength = 5
	tickInset  = 2
	lowBattery = 20
	textMargin = 2
)

var numeralHours = []int{0, 6, 12, 18}

// pointerShape returns the hand pointing at 12 o'clock around the dial center.
func pointerShape(opts Options, l Layout) []geometry.Point {
	w, h := opts.PointerWidth, opts.PointerHeight
	if opts.Pointer == PointerArm {
		length := l.Inner - h
		return []geometry.Point{
			{X: -w / 2, Y: 10},
			{X: w / 2, Y: 10},
			{X: w / 2, Y: -10},
			{X: 0, Y: -length},
			{X: -w / 2, Y: -10},
		}
	}
	// Wedge on the track with its tip on the inner edge.
	return []geometry.Point{
		{X: 0, Y: -l.Inner},
		{X: -w / 2, Y: -(l.Inner + h)},
		{X: w / 2, Y: -(l.Inner + h)},
	}
}

// insetShape halves the pointer around its centroid and shifts it by dy along
// the hand.
func insetShape(base []geometry.Point, dy int) []geometry.Point {
	if len(base) == 0 {
		return nil
	}
	var cx, cy int
	for _, p := range base {
		cx += p.X
		cy += p.Y
	}
	cx /= len(base)
	cy /= len(base)

	shrunk := make([]geometry.Point, len(base))
	for i, p := range base {
		shrunk[i] = geometry.Point{X: cx + (p.X-cx)/2, Y: cy + (p.Y-cy)/2}
	}
	return geometry.OffsetPolygon(shrunk, dy)
}

func tickShapes(l Layout) (wide, thin *geometry.Path) {
	outer := l.Inner - tickInset
	inner := outer - tickLength
	wide = geometry.NewPath(geometry.TrigMaxAngle,
		geometry.Point{X: -2, Y: -outer},
		geometry.Point{X: 2, Y: -outer},
		geometry.Point{X: 2, Y: -inner},
		geometry.Point{X: -2, Y: -inner},
	)
	thin = geometry.NewPath(geometry.TrigMaxAngle,
		geometry.Point{X: 0, Y: -outer},
		geometry.Point{X: 0, Y: -inner},
	)
	return wide, thin
}

// measure sizes every piece of text once. Dynamic strings use a template of
// their widest form so the boxes never move.
func (r *Renderer) measure(m TextMeasurer) {
	l := r.layout
	if r.opts.Numerals {
		for _, h := range numeralHours {
			text := strconv.Itoa(h)
			size := m.Measure(text, FontNumeral, l.Bounds)
			at := r.turn.Position(l.Center, l.Inner-r.opts.NumeralOffset, r.hourAngle(h))
			r.numerals = append(r.numerals, label{text: text, font: FontNumeral, box: liftedBox(at, size)})
		}
	}
	if r.opts.HourBadge {
		r.badgeSize = m.Measure("00", FontBadge, l.Bounds)
	}
	if r.opts.TimeText {
		size := m.Measure("00:00", FontTime, l.Bounds)
		r.timeBox = geometry.Rect{X: l.Center.X - size.W/2, Y: l.Center.Y - l.Inner/2 - size.H/2, W: size.W, H: size.H}
	}
	if r.opts.DateText {
		size := m.Measure("Wed 00", FontLabel, l.Bounds)
		r.dateBox = geometry.Rect{X: l.Center.X - size.W/2, Y: l.Center.Y + l.Inner/3, W: size.W, H: size.H}
	}
	if r.opts.LinkIndicator {
		size := m.Measure("BT", FontLabel, l.Bounds)
		r.linkBox = geometry.Rect{X: l.Bounds.X + textMargin, Y: l.Bounds.Y + textMargin, W: size.W, H: size.H}
	}
}

// liftedBox centers a box horizontally on at and raises it by two thirds of its
// height so the glyphs sit visually centered on the point.
func liftedBox(at geometry.Point, size geometry.Size) geometry.Rect {
	return geometry.Rect{X: at.X - size.W/2, Y: at.Y - size.H*2/3, W: size.W, H: size.H}
}

func (r *Renderer) hourAngle(h int) geometry.Angle {
	return r.turn.Wrap(r.turn.HourHand(geometry.Reading{Hour: h}) + r.zero)
}

func (r *Renderer) drawBackground(s Surface, pal Palette) {
	s.FillRect(s.Bounds(), pal.Background)
	if !r.layout.Valid() {
		return
	}
	s.FillCircle(r.layout.Center, r.layout.Outer, pal.Track)
	s.FillCircle(r.layout.Center, r.layout.Inner, pal.Background)
}

// drawRings draws the progress rings followed by the static marks that sit on
// top of them.
func (r *Renderer) drawRings(s Surface, pal Palette) {
	if !r.layout.Valid() {
		return
	}
	if r.opts.Rings {
		battery := pal.Battery
		if r.state.Battery <= lowBattery {
			battery = pal.BatteryLow
		}
		primary, _ := geometry.ArcSweep(r.state.Battery, 360)
		r.fillSweep(s, 0, primary, battery)

		if r.state.StepsAvailable {
			primary, overflow := geometry.ArcSweep(r.state.Steps, 360)
			r.fillSweep(s, 1, primary, pal.Steps)
			r.fillSweep(s, 2, overflow, pal.Overflow)
		}
	}
	if r.wideTick != nil {
		for h := 0; h < 24; h++ {
			path := r.thinTick
			if h%6 == 0 {
				path = r.wideTick
			}
			path.RotateTo(r.hourAngle(h))
			path.MoveTo(r.layout.Center)
			if path == r.wideTick {
				s.FillPolygon(path.Points(), pal.Tick)
			} else {
				s.DrawPolygon(path.Points(), pal.Tick)
			}
		}
	}
	for _, n := range r.numerals {
		s.DrawText(n.text, n.font, n.box, AlignCenter, pal.Numeral)
	}
}

func (r *Renderer) fillSweep(s Surface, ring int, sw geometry.Sweep, c color.RGBA) {
	if sw.Empty() {
		return
	}
	start, end := sw.Angles(r.turn)
	s.FillArcSector(r.layout.RingBounds(ring), r.layout.RingWidth, start+r.zero, end+r.zero, c)
}

func (r *Renderer) drawPointer(s Surface, pal Palette) {
	if !r.layout.Valid() {
		return
	}
	angle := r.turn.Wrap(r.turn.MinuteHand(r.reading()) + r.zero)

	r.pointer.RotateTo(angle)
	r.pointer.MoveTo(r.layout.Center)
	pts := r.pointer.Points()
	s.FillPolygon(pts, pal.Pointer)
	if r.opts.OutlinePointer {
		s.DrawPolygon(pts, pal.PointerOutline)
	}
	if r.inset != nil {
		r.inset.RotateTo(angle)
		r.inset.MoveTo(r.layout.Center)
		s.FillPolygon(r.inset.Points(), pal.Inset)
	}
	if r.opts.Hub && r.opts.HubRadius > 0 {
		s.FillCircle(r.layout.Center, r.opts.HubRadius, pal.Hub)
		s.DrawCircle(r.layout.Center, r.opts.HubRadius, pal.HubOutline)
	}
}

func (r *Renderer) drawText(s Surface, pal Palette) {
	if !r.layout.Valid() {
		return
	}
	reading := r.reading()
	if r.opts.HourBadge {
		radius := r.layout.Inner - r.opts.NumeralOffset - r.badgeSize.H
		// The badge steps once an hour, unlike the pointer.
		angle := r.turn.Wrap(r.turn.HourHand(reading) + r.zero)
		at := r.turn.Position(r.layout.Center, radius, angle)
		s.DrawText(strconv.Itoa(reading.Hour), FontBadge, liftedBox(at, r.badgeSize), AlignCenter, pal.Text)
	}
	if r.opts.TimeText {
		s.DrawText(reading.String(), FontTime, r.timeBox, AlignCenter, pal.Text)
	}
	if r.opts.DateText && r.state.HasReading {
		d := r.state.Date
		s.DrawText(fmt.Sprintf("%.3s %02d", d.Weekday, d.Day), FontLabel, r.dateBox, AlignCenter, pal.Text)
	}
	if r.opts.LinkIndicator && r.state.HasLink && !r.state.Connected {
		s.DrawText("BT", FontLabel, r.linkBox, AlignLeft, pal.Alert)
	}
}
