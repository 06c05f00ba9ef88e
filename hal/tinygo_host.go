//go:build tinygo && !baremetal

package hal

// New returns the HAL for `tinygo run` on a desktop OS or wasm: a RAM
// framebuffer of the original watch size, the real clock and no sensors.
// It is mostly useful to check that the watch builds and steps under TinyGo.
func New() HAL {
	fb := NewMemoryFramebuffer(144, 168)
	return &tinyGoHostHAL{
		disp: tinyGoDisplay{fb: fb, color: true},
		t:    newTinyGoTime(),
	}
}

type tinyGoHostHAL struct {
	disp tinyGoDisplay
	t    *tinyGoTime
}

func (h *tinyGoHostHAL) Logger() Logger   { return printLogger{} }
func (h *tinyGoHostHAL) Display() Display { return h.disp }
func (h *tinyGoHostHAL) Input() Input     { return tinyGoInput{kbd: noKeys{}} }
func (h *tinyGoHostHAL) Time() Time       { return h.t }
func (h *tinyGoHostHAL) Power() Power     { return nil }
func (h *tinyGoHostHAL) Health() Health   { return nil }
func (h *tinyGoHostHAL) Link() Link       { return nil }
