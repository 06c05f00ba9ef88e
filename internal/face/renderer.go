package face

import (
	"github.com/rs/zerolog"

	"slowtime/internal/geometry"
)

type label struct {
	text string
	font FontID
	box  geometry.Rect
}

// Renderer owns the face's shapes for its whole life and redraws the layers that
// events have invalidated.
//
// Tick, Battery, Steps and Link are the only writers of the face state; Render
// only reads it. Callers serialize the two, normally from one event loop.
type Renderer struct {
	opts   Options
	layout Layout
	turn   geometry.Turn
	zero   geometry.Angle
	log    zerolog.Logger

	state  State
	dirty  Layer
	cached bool
	frames uint64

	pointer  *geometry.Path
	inset    *geometry.Path
	wideTick *geometry.Path
	thinTick *geometry.Path

	numerals  []label
	badgeSize geometry.Size
	timeBox   geometry.Rect
	dateBox   geometry.Rect
	linkBox   geometry.Rect

	warnedReading bool
}

// New builds the pointer paths and measures the static text once. A layout that
// is not Valid yields a renderer that only clears the background.
func New(opts Options, layout Layout, m TextMeasurer, log zerolog.Logger) *Renderer {
	r := &Renderer{
		opts:   opts,
		layout: layout,
		turn:   geometry.TrigMaxAngle,
		log:    log.With().Str("component", "face").Str("face", opts.Name).Logger(),
		dirty:  allLayers,
	}
	if opts.MidnightBottom {
		r.zero = geometry.Angle(r.turn / 2)
	}
	if !layout.Valid() {
		r.log.Warn().
			Int("outer", layout.Outer).
			Int("inner", layout.Inner).
			Msg("degenerate layout, dial disabled")
		return r
	}

	r.pointer = geometry.NewPath(r.turn, pointerShape(opts, layout)...)
	if opts.InsetPointer {
		r.inset = geometry.NewPath(r.turn, insetShape(r.pointer.Base(), opts.insetOffset())...)
	}
	if opts.Ticks {
		r.wideTick, r.thinTick = tickShapes(layout)
	}
	if m != nil {
		r.measure(m)
	}
	return r
}

// Layout returns the dial geometry the renderer was built with.
func (r *Renderer) Layout() Layout { return r.layout }

// State returns a copy of the current face state.
func (r *Renderer) State() State { return r.state }

// Phase reports whether a redraw is pending.
func (r *Renderer) Phase() Phase {
	if r.dirty != 0 {
		return DirtyPending
	}
	return Idle
}

// Dirty returns the mask of layers awaiting redraw.
func (r *Renderer) Dirty() Layer { return r.dirty }

// Frames counts completed Render calls that drew something.
func (r *Renderer) Frames() uint64 { return r.frames }

// Tick stores a new minute snapshot.
func (r *Renderer) Tick(reading geometry.Reading, date Date) {
	r.state.Reading = reading.Normalize()
	r.state.Date = date
	r.state.HasReading = true
	r.invalidate(LayerPointer | LayerText)
}

// Battery stores the latest charge level.
func (r *Renderer) Battery(percent int, charging bool) {
	r.state.Battery = clampPercent(percent, 100)
	r.state.Charging = charging
	r.invalidate(LayerRings)
}

// Steps stores the latest step percentage. Values above 100 are kept and drawn
// as an overflow ring.
func (r *Renderer) Steps(percent int) {
	r.state.Steps = clampPercent(percent, -1)
	r.state.StepsAvailable = true
	r.invalidate(LayerRings)
}

// StepsUnavailable hides the step rings.
func (r *Renderer) StepsUnavailable() {
	r.state.Steps = 0
	r.state.StepsAvailable = false
	r.invalidate(LayerRings)
}

// Link stores the phone connection state.
func (r *Renderer) Link(connected bool) {
	r.state.Connected = connected
	r.state.HasLink = true
	r.invalidate(LayerText)
}

// Invalidate forces a redraw of every layer.
func (r *Renderer) Invalidate() { r.invalidate(allLayers) }

func (r *Renderer) invalidate(l Layer) {
	r.dirty |= l
	r.log.Debug().Stringer("layer", l).Stringer("phase", r.Phase()).Msg("invalidate")
}

// Render draws every dirty layer onto s and reports whether anything was drawn.
// The dial is restored from the surface cache when only the pointer or text
// changed.
func (r *Renderer) Render(s Surface) bool {
	if r.dirty == 0 || s == nil {
		return false
	}
	pal := PaletteFor(s.SupportsColor())

	cache, _ := s.(Cache)
	if r.dirty&baseLayers != 0 || cache == nil || !r.cached || !cache.Restore() {
		r.draw(LayerBackground, func() { r.drawBackground(s, pal) })
		r.draw(LayerRings, func() { r.drawRings(s, pal) })
		if cache != nil {
			cache.Save()
			r.cached = true
		}
	}
	// Restoring the dial wipes the pointer and the text, so both are drawn on
	// every frame whatever their own dirty bits say.
	r.draw(LayerPointer, func() { r.drawPointer(s, pal) })
	r.draw(LayerText, func() { r.drawText(s, pal) })

	r.dirty = 0
	r.frames++
	return true
}

// draw runs one layer and absorbs any panic so a broken element never takes the
// event loop down.
func (r *Renderer) draw(l Layer, fn func()) {
	defer func() {
		if v := recover(); v != nil {
			r.log.Error().Stringer("layer", l).Interface("panic", v).Msg("layer draw failed")
		}
	}()
	fn()
}

// reading returns the last tick, or 00:00 before the first one.
func (r *Renderer) reading() geometry.Reading {
	if r.state.HasReading {
		return r.state.Reading
	}
	if !r.warnedReading {
		r.warnedReading = true
		r.log.Debug().Msg("no clock reading yet, drawing 00:00")
	}
	return geometry.Reading{}
}

func clampPercent(v, max int) int {
	if v < 0 {
		return 0
	}
	if max >= 0 && v > max {
		return max
	}
	return v
}
