// Package face draws a watchface from a clock reading and the latest battery, step
// and link state onto an abstract 2D surface.
package face

import (
	"image/color"

	"slowtime/internal/geometry"
)

// FontID selects one of the host's fonts.
type FontID uint8

const (
	FontNumeral FontID = iota
	FontBadge
	FontLabel
	FontTime
)

func (f FontID) String() string {
	switch f {
	case FontNumeral:
		return "numeral"
	case FontBadge:
		return "badge"
	case FontLabel:
		return "label"
	case FontTime:
		return "time"
	default:
		return "unknown"
	}
}

// Alignment positions text horizontally inside its box.
type Alignment uint8

const (
	AlignLeft Alignment = iota
	AlignCenter
	AlignRight
)

// Surface is the set of drawing primitives the renderer needs. Implementations
// clip to their bounds and never fail; out-of-range input draws nothing.
type Surface interface {
	Bounds() geometry.Rect
	SupportsColor() bool

	FillRect(r geometry.Rect, c color.RGBA)
	FillCircle(center geometry.Point, radius int, c color.RGBA)
	DrawCircle(center geometry.Point, radius int, c color.RGBA)
	FillPolygon(points []geometry.Point, c color.RGBA)
	DrawPolygon(points []geometry.Point, c color.RGBA)

	// FillArcSector fills the ring of width innerWidth just inside the circle
	// inscribed in bounds, clockwise from start to end.
	FillArcSector(bounds geometry.Rect, innerWidth int, start, end geometry.Angle, c color.RGBA)

	DrawText(text string, font FontID, box geometry.Rect, align Alignment, c color.RGBA)
}

// TextMeasurer reports the box a string occupies in a font, limited to max.
type TextMeasurer interface {
	Measure(text string, font FontID, max geometry.Rect) geometry.Size
}

// Cache is an optional Surface capability: Save snapshots the current pixels and
// Restore puts them back. The renderer uses it to keep the static dial between
// pointer-only redraws.
type Cache interface {
	Save()
	Restore() bool
}
