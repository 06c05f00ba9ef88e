package face

import (
	"time"

	"slowtime/internal/geometry"
)

// Date is the calendar part of a tick snapshot.
type Date struct {
	Month   time.Month
	Day     int
	Weekday time.Weekday
}

func DateOf(t time.Time) Date {
	return Date{Month: t.Month(), Day: t.Day(), Weekday: t.Weekday()}
}

// State is everything the face shows. It is written by the event path only.
type State struct {
	Reading    geometry.Reading
	HasReading bool
	Date       Date

	Battery  int
	Charging bool

	Steps          int
	StepsAvailable bool

	Connected bool
	HasLink   bool
}

// Layer is a bit in the renderer's dirty mask.
type Layer uint8

const (
	LayerBackground Layer = 1 << iota
	LayerRings
	LayerPointer
	LayerText
)

const (
	baseLayers = LayerBackground | LayerRings
	allLayers  = LayerBackground | LayerRings | LayerPointer | LayerText
)

func (l Layer) String() string {
	switch l {
	case LayerBackground:
		return "background"
	case LayerRings:
		return "rings"
	case LayerPointer:
		return "pointer"
	case LayerText:
		return "text"
	default:
		return "mixed"
	}
}

// Phase is the observable redraw state.
type Phase uint8

const (
	Idle Phase = iota
	DirtyPending
)

func (p Phase) String() string {
	if p == DirtyPending {
		return "dirty"
	}
	return "idle"
}
