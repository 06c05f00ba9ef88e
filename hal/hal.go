package hal

import (
	"errors"
	"time"
)

// Logger writes newline-delimited log lines.
type Logger interface {
	WriteLineString(s string)
	WriteLineBytes(b []byte)
}

var ErrNotImplemented = errors.New("not implemented")

// PixelFormat defines the framebuffer pixel encoding.
type PixelFormat uint8

const (
	// PixelFormatRGB565 is 16bpp little-endian: rrrrrggggggbbbbb.
	PixelFormatRGB565 PixelFormat = iota + 1
)

// Framebuffer is a simple pixel buffer plus a "present" hook.
type Framebuffer interface {
	Width() int
	Height() int
	Format() PixelFormat
	StrideBytes() int
	Buffer() []byte
	ClearRGB(r, g, b uint8)
	Present() error
}

// KeyCode is a minimal key identifier.
type KeyCode uint16

const (
	KeyUnknown KeyCode = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyEnter
	KeyEscape
)

// KeyEvent is a keyboard event.
type KeyEvent struct {
	Code  KeyCode
	Press bool
	Rune  rune
}

// Keyboard provides key events (best-effort on each platform).
type Keyboard interface {
	Events() <-chan KeyEvent
}

// Display provides access to the framebuffer (if available).
type Display interface {
	Framebuffer() Framebuffer
	// SupportsColor is false on black-and-white panels.
	SupportsColor() bool
}

// Input provides access to input devices (if available).
type Input interface {
	Keyboard() Keyboard
}

// Time provides a base tick stream and the wall clock.
//
// The tick duration is platform-defined; minute ticks are derived in userland.
type Time interface {
	Ticks() <-chan uint64
	Now() time.Time
}

// Power reports the battery state.
type Power interface {
	Battery() (percent int, charging bool)
}

// Health reports today's step count. ok is false when no sensor data exists.
type Health interface {
	StepsToday() (steps int, ok bool)
}

// Link reports whether the phone is connected.
type Link interface {
	Connected() bool
}

// HAL provides the only contact point between the watchface and the outside world.
// Power, Health and Link may be nil on boards without the sensor.
type HAL interface {
	Logger() Logger
	Display() Display
	Input() Input
	Time() Time
	Power() Power
	Health() Health
	Link() Link
}
