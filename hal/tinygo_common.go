//go:build tinygo

package hal

import "time"

type tinyGoDisplay struct {
	fb    Framebuffer
	color bool
}

func (d tinyGoDisplay) Framebuffer() Framebuffer { return d.fb }
func (d tinyGoDisplay) SupportsColor() bool      { return d.color }

type tinyGoInput struct {
	kbd Keyboard
}

func (in tinyGoInput) Keyboard() Keyboard { return in.kbd }

type tinyGoTime struct {
	ch  chan uint64
	seq uint64
}

func newTinyGoTime() *tinyGoTime {
	t := &tinyGoTime{ch: make(chan uint64, 16)}
	go func() {
		ticker := time.NewTicker(1 * time.Second)
		defer ticker.Stop()
		for range ticker.C {
			t.seq++
			select {
			case t.ch <- t.seq:
			default:
			}
		}
	}()
	return t
}

func (t *tinyGoTime) Ticks() <-chan uint64 { return t.ch }
func (t *tinyGoTime) Now() time.Time       { return time.Now() }

// printLogger writes to the debug console (UART or RTT, whichever the target
// routes println to).
type printLogger struct{}

func (printLogger) WriteLineString(s string) { println(s) }
func (printLogger) WriteLineBytes(b []byte)  { println(string(b)) }

// noKeys is the keyboard of a watch without buttons wired up.
type noKeys struct{}

func (noKeys) Events() <-chan KeyEvent { return nil }

// headlessPanel reports a size but owns no pixels, so the canvas skips every
// draw call and Present is a no-op.
type headlessPanel struct {
	w, h int
}

func (p headlessPanel) Width() int             { return p.w }
func (p headlessPanel) Height() int            { return p.h }
func (p headlessPanel) Format() PixelFormat    { return PixelFormatRGB565 }
func (p headlessPanel) StrideBytes() int       { return p.w * 2 }
func (p headlessPanel) Buffer() []byte         { return nil }
func (p headlessPanel) ClearRGB(_, _, _ uint8) {}
func (p headlessPanel) Present() error         { return nil }
