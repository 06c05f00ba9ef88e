package hal

import "sync"

// MemoryFramebuffer is an RGB565 framebuffer kept in RAM. Present copies the
// pixels into a snapshot buffer that viewers read with Snapshot, so a viewer
// never sees a half-drawn frame.
type MemoryFramebuffer struct {
	width  int
	height int
	stride int
	buf    []byte

	mu       sync.Mutex
	front    []byte
	presents uint64
	onShow   func(buf []byte) error
}

// NewMemoryFramebuffer allocates a width x height buffer.
func NewMemoryFramebuffer(width, height int) *MemoryFramebuffer {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	stride := width * 2
	return &MemoryFramebuffer{
		width:  width,
		height: height,
		stride: stride,
		buf:    make([]byte, stride*height),
		front:  make([]byte, stride*height),
	}
}

func (f *MemoryFramebuffer) Width() int          { return f.width }
func (f *MemoryFramebuffer) Height() int         { return f.height }
func (f *MemoryFramebuffer) Format() PixelFormat { return PixelFormatRGB565 }
func (f *MemoryFramebuffer) StrideBytes() int    { return f.stride }
func (f *MemoryFramebuffer) Buffer() []byte      { return f.buf }

func (f *MemoryFramebuffer) ClearRGB(r, g, b uint8) {
	pixel := RGB565(r, g, b)
	lo := byte(pixel)
	hi := byte(pixel >> 8)
	for i := 0; i+1 < len(f.buf); i += 2 {
		f.buf[i] = lo
		f.buf[i+1] = hi
	}
}

// OnPresent installs a hook that receives the back buffer on every Present,
// used by panels that push pixels over a bus.
func (f *MemoryFramebuffer) OnPresent(fn func(buf []byte) error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.onShow = fn
}

func (f *MemoryFramebuffer) Present() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	copy(f.front, f.buf)
	f.presents++
	if f.onShow != nil {
		return f.onShow(f.buf)
	}
	return nil
}

// Snapshot copies the last presented frame into dst and returns the number of
// frames presented so far.
func (f *MemoryFramebuffer) Snapshot(dst []byte) uint64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	copy(dst, f.front)
	return f.presents
}
