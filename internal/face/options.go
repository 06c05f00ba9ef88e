package face

import (
	"image/color"
	"sort"

	apperrors "slowtime/internal/errors"
)

// PointerStyle selects the hand polygon.
type PointerStyle uint8

const (
	// PointerTriangle is a wedge riding on the inner edge of the track.
	PointerTriangle PointerStyle = iota
	// PointerArm is a five-point arm from the hub outwards.
	PointerArm
)

// Options picks which elements a face draws and their sizes in pixels.
type Options struct {
	Name string

	TrackWidth    int
	RingWidth     int
	PointerWidth  int
	PointerHeight int
	NumeralOffset int
	HubRadius     int

	// InsetOffset moves the inset along the hand. Negative values push it away
	// from the hub. Zero falls back to defaultInsetOffset.
	InsetOffset int

	// MidnightBottom puts 0h at the bottom of the dial and 12h at the top.
	MidnightBottom bool

	Pointer        PointerStyle
	OutlinePointer bool
	InsetPointer   bool
	Hub            bool
	Numerals       bool
	Ticks          bool
	Rings          bool
	HourBadge      bool
	DateText       bool
	TimeText       bool
	LinkIndicator  bool
}

var presets = map[string]Options{
	"slow": {
		Name:           "slow",
		TrackWidth:     20,
		PointerWidth:   30,
		PointerHeight:  15,
		NumeralOffset:  10,
		MidnightBottom: true,
		Pointer:        PointerTriangle,
		Numerals:       true,
	},
	"rings": {
		Name:           "rings",
		TrackWidth:     24,
		RingWidth:      8,
		PointerWidth:   12,
		PointerHeight:  10,
		NumeralOffset:  10,
		HubRadius:      5,
		Pointer:        PointerArm,
		OutlinePointer: true,
		InsetPointer:   true,
		InsetOffset:    -2,
		Hub:            true,
		Ticks:          true,
		Rings:          true,
		LinkIndicator:  true,
	},
	"badge": {
		Name:          "badge",
		TrackWidth:    20,
		PointerWidth:  30,
		PointerHeight: 15,
		NumeralOffset: 10,
		HubRadius:     4,
		Pointer:       PointerTriangle,
		InsetPointer:  true,
		InsetOffset:   -3,
		Hub:           true,
		Ticks:         true,
		HourBadge:     true,
		DateText:      true,
	},
	"full": {
		Name:           "full",
		TrackWidth:     24,
		RingWidth:      8,
		PointerWidth:   12,
		PointerHeight:  10,
		NumeralOffset:  10,
		HubRadius:      5,
		Pointer:        PointerArm,
		OutlinePointer: true,
		InsetPointer:   true,
		InsetOffset:    -2,
		Hub:            true,
		Numerals:       true,
		Ticks:          true,
		Rings:          true,
		HourBadge:      true,
		DateText:       true,
		TimeText:       true,
		LinkIndicator:  true,
	},
}

const defaultInsetOffset = -2

func (o Options) insetOffset() int {
	if o.InsetOffset == 0 {
		return defaultInsetOffset
	}
	return o.InsetOffset
}

// Preset returns the named option set.
func Preset(name string) (Options, error) {
	opts, ok := presets[name]
	if !ok {
		return Options{}, apperrors.New(apperrors.ErrUnknownFace).WithDetail(name)
	}
	return opts, nil
}

// PresetNames lists the available faces in stable order.
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Palette holds every color the renderer uses.
type Palette struct {
	Background     color.RGBA
	Track          color.RGBA
	Tick           color.RGBA
	Numeral        color.RGBA
	Pointer        color.RGBA
	PointerOutline color.RGBA
	Inset          color.RGBA
	Hub            color.RGBA
	HubOutline     color.RGBA
	Battery        color.RGBA
	BatteryLow     color.RGBA
	Steps          color.RGBA
	Overflow       color.RGBA
	Text           color.RGBA
	Alert          color.RGBA
}

var (
	black = color.RGBA{R: 0x00, G: 0x00, B: 0x00, A: 0xff}
	white = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
)

var monoPalette = Palette{
	Background:     black,
	Track:          white,
	Tick:           white,
	Numeral:        white,
	Pointer:        black,
	PointerOutline: white,
	Inset:          white,
	Hub:            white,
	HubOutline:     black,
	Battery:        black,
	BatteryLow:     black,
	Steps:          black,
	Overflow:       black,
	Text:           white,
	Alert:          white,
}

var colorPalette = Palette{
	Background:     black,
	Track:          color.RGBA{R: 0xe0, G: 0xe0, B: 0xe0, A: 0xff},
	Tick:           color.RGBA{R: 0x55, G: 0x55, B: 0x55, A: 0xff},
	Numeral:        white,
	Pointer:        color.RGBA{R: 0xff, G: 0x55, B: 0x00, A: 0xff},
	PointerOutline: black,
	Inset:          color.RGBA{R: 0xff, G: 0xaa, B: 0x55, A: 0xff},
	Hub:            white,
	HubOutline:     black,
	Battery:        color.RGBA{R: 0x55, G: 0xaa, B: 0x55, A: 0xff},
	BatteryLow:     color.RGBA{R: 0xff, G: 0x00, B: 0x00, A: 0xff},
	Steps:          color.RGBA{R: 0x00, G: 0xaa, B: 0xff, A: 0xff},
	Overflow:       color.RGBA{R: 0xff, G: 0xff, B: 0x00, A: 0xff},
	Text:           white,
	Alert:          color.RGBA{R: 0xff, G: 0x55, B: 0x55, A: 0xff},
}

// PaletteFor picks the color or black-and-white palette.
func PaletteFor(supportsColor bool) Palette {
	if supportsColor {
		return colorPalette
	}
	return monoPalette
}
