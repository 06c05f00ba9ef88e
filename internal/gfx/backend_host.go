//go:build !tinygo

package gfx

import "slowtime/hal"

// DefaultBackend is the vector rasterizer on hosts, where floating point and
// memory are cheap.
const DefaultBackend = BackendVector

var backends = map[Backend]constructor{
	BackendRaster: newRaster,
	BackendVector: func(fb hal.Framebuffer, opts Options) Surface { return NewVector(fb, opts) },
}
