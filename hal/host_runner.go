//go:build !tinygo

package hal

// hostRunner advances the simulator one frame at a time: keyboard controls,
// then base ticks, then the watch step. The window, terminal and headless
// front ends differ only in what drives advance and how frames are shown.
type hostRunner struct {
	h     *hostHAL
	step  func() error
	steps uint64
}

func newHostRunner(cfg HostConfig, newApp func(HAL) func() error) *hostRunner {
	h := newHostHAL(cfg)
	r := &hostRunner{h: h}
	if newApp != nil {
		r.step = newApp(h)
	}
	return r
}

func (r *hostRunner) advance() error {
	r.h.pollControls()
	r.h.t.step(1)
	r.steps++
	if r.step == nil {
		return nil
	}
	return r.step()
}

// frameView keeps an RGBA copy of the last presented frame.
type frameView struct {
	fb      *MemoryFramebuffer
	scratch []byte
	rgba    []byte
	frames  uint64
	loaded  bool
}

func newFrameView(fb *MemoryFramebuffer) *frameView {
	return &frameView{
		fb:      fb,
		scratch: make([]byte, len(fb.buf)),
		rgba:    make([]byte, fb.width*fb.height*4),
	}
}

// refresh pulls the latest frame and reports whether it is new.
func (v *frameView) refresh() bool {
	n := v.fb.Snapshot(v.scratch)
	if v.loaded && n == v.frames {
		return false
	}
	v.frames = n
	v.loaded = true
	ExpandRGB565(v.rgba, v.scratch)
	return true
}
