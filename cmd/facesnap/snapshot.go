package main

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/image/bmp"
	xdraw "golang.org/x/image/draw"

	"slowtime/hal"
	apperrors "slowtime/internal/errors"
	"slowtime/internal/face"
	"slowtime/internal/gfx"
	"slowtime/kernel"
)

// Render draws one scenario exactly as the watch would after receiving the
// matching events.
func Render(sc Scenario, now time.Time, log zerolog.Logger) (*image.RGBA, error) {
	sc = sc.withDefaults()
	opts, err := face.Preset(sc.Face)
	if err != nil {
		return nil, err
	}
	when, err := sc.When(now)
	if err != nil {
		return nil, err
	}

	fb := hal.NewMemoryFramebuffer(sc.Width, sc.Height)
	canvas, err := gfx.New(fb, gfx.Backend(sc.Backend), gfx.Options{Monochrome: sc.Mono, NoCache: true})
	if err != nil {
		return nil, err
	}
	layout, err := face.NewLayout(canvas.Bounds(), opts)
	if err != nil {
		log.Warn().Err(err).Str("scenario", sc.Name).Msg("degenerate layout")
	}
	r := face.New(opts, layout, canvas, log)

	events := []kernel.Event{
		kernel.Tick(when),
		kernel.Battery(*sc.Battery, sc.Charging),
	}
	if sc.Steps != nil {
		events = append(events, kernel.Steps(*sc.Steps))
	} else {
		events = append(events, kernel.StepsUnavailable())
	}
	if sc.Link != nil {
		events = append(events, kernel.Link(*sc.Link))
	}
	for _, ev := range events {
		r.Apply(ev)
	}
	r.Render(canvas)

	return scale(canvas.Image(), sc.Scale), nil
}

func scale(src *image.RGBA, factor int) *image.RGBA {
	if factor <= 1 {
		return src
	}
	b := src.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx()*factor, b.Dy()*factor))
	xdraw.NearestNeighbor.Scale(dst, dst.Bounds(), src, b, xdraw.Src, nil)
	return dst
}

// Format is an output image encoding.
type Format string

const (
	FormatPNG Format = "png"
	FormatBMP Format = "bmp"
)

// FormatFor picks the encoding from the file extension, PNG by default.
func FormatFor(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".bmp") {
		return FormatBMP
	}
	return FormatPNG
}

func Encode(w io.Writer, img image.Image, f Format) error {
	var err error
	switch f {
	case FormatPNG:
		err = png.Encode(w, img)
	case FormatBMP:
		err = bmp.Encode(w, img)
	default:
		return apperrors.New(apperrors.ErrEncode).WithDetail(fmt.Sprintf("format %q", f))
	}
	if err != nil {
		return apperrors.Wrap(apperrors.ErrEncode, err)
	}
	return nil
}
