package face

import (
	"fmt"

	apperrors "slowtime/internal/errors"
	"slowtime/internal/geometry"
)

// Layout is the dial geometry derived once from the display bounds.
type Layout struct {
	Bounds     geometry.Rect
	Center     geometry.Point
	Outer      int
	Inner      int
	TrackWidth int
	RingWidth  int
}

// NewLayout sizes the dial to the largest circle that fits bounds. A layout that
// cannot hold the track is returned together with an ErrDegenerateLayout error;
// renderers built on it draw only the background.
func NewLayout(bounds geometry.Rect, opts Options) (Layout, error) {
	l := Layout{
		Bounds:     bounds,
		Center:     bounds.Center(),
		TrackWidth: opts.TrackWidth,
		RingWidth:  opts.RingWidth,
	}
	if bounds.Empty() {
		return l, apperrors.New(apperrors.ErrDegenerateLayout).WithDetail(fmt.Sprintf("%dx%d", bounds.W, bounds.H))
	}

	side := bounds.W
	if bounds.H < side {
		side = bounds.H
	}
	l.Outer = side / 2
	l.Inner = l.Outer - l.TrackWidth
	if l.RingWidth <= 0 {
		l.RingWidth = l.TrackWidth / 3
	}
	if l.TrackWidth < 0 || l.Inner <= 0 {
		return l, apperrors.New(apperrors.ErrDegenerateLayout).
			WithDetail(fmt.Sprintf("radius %d, track %d", l.Outer, l.TrackWidth))
	}
	return l, nil
}

// Valid reports whether the dial has a positive inner radius.
func (l Layout) Valid() bool {
	return l.Outer > 0 && l.Inner > 0
}

// RingBounds is the box of the i-th progress ring, each one a ring width further
// inside the previous.
func (l Layout) RingBounds(i int) geometry.Rect {
	return geometry.CircleBounds(l.Center, l.Outer-i*l.RingWidth)
}
