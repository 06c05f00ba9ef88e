package gfx

import (
	"image"
	"sort"
	"strings"

	"slowtime/hal"
	apperrors "slowtime/internal/errors"
	"slowtime/internal/face"
)

// Backend names a rasterizer.
type Backend string

const (
	// BackendRaster is the integer scanline rasterizer. Every build has it.
	BackendRaster Backend = "raster"
	// BackendVector draws antialiased paths with draw2d. Host builds only.
	BackendVector Backend = "vector"
)

// Surface is everything the watch needs from a rasterizer.
type Surface interface {
	face.Surface
	face.TextMeasurer
	face.Cache

	// Present pushes the frame to the framebuffer's display.
	Present() error
	// Image copies the frame as it would be presented.
	Image() *image.RGBA
}

var _ Surface = (*Canvas)(nil)

type constructor func(fb hal.Framebuffer, opts Options) Surface

func newRaster(fb hal.Framebuffer, opts Options) Surface { return NewCanvas(fb, opts) }

// Backends lists the rasterizers this build can use.
func Backends() []Backend {
	out := make([]Backend, 0, len(backends))
	for b := range backends {
		out = append(out, b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// ParseBackend resolves a backend name, case-insensitively. Empty picks
// DefaultBackend.
func ParseBackend(name string) (Backend, error) {
	if name == "" {
		return DefaultBackend, nil
	}
	b := Backend(strings.ToLower(strings.TrimSpace(name)))
	if _, ok := backends[b]; !ok {
		return "", apperrors.New(apperrors.ErrInvalidConfig).WithDetail("backend " + name)
	}
	return b, nil
}

// New builds a surface over fb with the named backend.
func New(fb hal.Framebuffer, b Backend, opts Options) (Surface, error) {
	b, err := ParseBackend(string(b))
	if err != nil {
		return nil, err
	}
	return backends[b](fb, opts), nil
}
