//go:build tinygo

package gfx

const DefaultBackend = BackendRaster

var backends = map[Backend]constructor{
	BackendRaster: newRaster,
}
