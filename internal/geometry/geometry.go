// Package geometry maps a clock reading and percentage metrics onto dial angles,
// arc sweeps and pointer shapes.
//
// Angles are integers in a circular unit whose full turn is a Turn value. Angle 0
// points at 12 o'clock and angles grow clockwise in screen coordinates (y down).
package geometry

import (
	"fmt"
	"math"
	"time"
)

// MinutesPerDay is the number of discrete pointer positions on a 24-hour dial.
const MinutesPerDay = 24 * 60

// Reading is a wall-clock snapshot taken once per minute tick.
type Reading struct {
	Hour   int
	Minute int
}

// ReadingFromTime captures the local hour and minute of t.
func ReadingFromTime(t time.Time) Reading {
	return Reading{Hour: t.Hour(), Minute: t.Minute()}
}

// MinutesOfDay returns minutes since midnight, wrapped into [0, MinutesPerDay).
func (r Reading) MinutesOfDay() int {
	m := (r.Hour*60 + r.Minute) % MinutesPerDay
	if m < 0 {
		m += MinutesPerDay
	}
	return m
}

// Normalize folds out-of-range fields back into a 00:00-23:59 reading.
func (r Reading) Normalize() Reading {
	m := r.MinutesOfDay()
	return Reading{Hour: m / 60, Minute: m % 60}
}

func (r Reading) String() string {
	n := r.Normalize()
	return fmt.Sprintf("%02d:%02d", n.Hour, n.Minute)
}

// Angle is a position on the dial in Turn units.
type Angle int32

// Turn is the size of a full circle in angle units.
type Turn int32

// TrigMaxAngle is the fixed-point full turn used by the device firmware.
const TrigMaxAngle Turn = 0x10000

// MinuteHand places the single 24-hour pointer. The result steps once per minute:
// turn * minutesOfDay / 1440, truncated.
func (t Turn) MinuteHand(r Reading) Angle {
	return Angle(int64(t) * int64(r.MinutesOfDay()) / MinutesPerDay)
}

// HourHand is the coarse 24-step placement used by the hour badge.
func (t Turn) HourHand(r Reading) Angle {
	return Angle(int64(t) * int64(r.Normalize().Hour) / 24)
}

// FromDegrees converts degrees to angle units, truncating toward zero.
func (t Turn) FromDegrees(deg int) Angle {
	return Angle(int64(t) * int64(deg) / 360)
}

// Wrap folds a into [0, t).
func (t Turn) Wrap(a Angle) Angle {
	if t <= 0 {
		return 0
	}
	m := a % Angle(t)
	if m < 0 {
		m += Angle(t)
	}
	return m
}

func (t Turn) radians(a Angle) float64 {
	if t == 0 {
		return 0
	}
	return 2 * math.Pi * float64(a) / float64(t)
}

// Rotate turns p clockwise about the origin by a.
func (t Turn) Rotate(p Point, a Angle) Point {
	s, c := math.Sincos(t.radians(a))
	x := float64(p.X)*c - float64(p.Y)*s
	y := float64(p.X)*s + float64(p.Y)*c
	return Point{X: int(math.Round(x)), Y: int(math.Round(y))}
}

// Position returns center + radius*(sin a, -cos a).
func (t Turn) Position(center Point, radius int, a Angle) Point {
	s, c := math.Sincos(t.radians(a))
	return Point{
		X: center.X + int(math.Round(float64(radius)*s)),
		Y: center.Y - int(math.Round(float64(radius)*c)),
	}
}
