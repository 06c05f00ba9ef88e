//go:build !tinygo && cgo

package hal

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"slowtime/internal/buildinfo"
)

const (
	windowScale = 3
	windowTPS   = 30
)

// RunWindow shows the framebuffer in a desktop window scaled up for
// readability. Arrow keys and letters drive the simulated sensors; Escape
// closes the window. It blocks until the window closes or a step fails.
func RunWindow(cfg HostConfig, newApp func(HAL) func() error) error {
	r := newHostRunner(cfg, newApp)
	w := &watchWindow{run: r, view: newFrameView(r.h.fb)}

	ebiten.SetWindowTitle("slowtime " + buildinfo.Short())
	ebiten.SetWindowSize(r.h.fb.width*windowScale, r.h.fb.height*windowScale)
	ebiten.SetTPS(windowTPS)
	err := ebiten.RunGame(w)
	if err == ebiten.Termination {
		return nil
	}
	return err
}

type watchWindow struct {
	run  *hostRunner
	view *frameView
	img  *ebiten.Image
}

func (w *watchWindow) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	w.run.h.kbd.pollWindow()
	return w.run.advance()
}

func (w *watchWindow) Draw(screen *ebiten.Image) {
	fb := w.run.h.fb
	if w.img == nil {
		w.img = ebiten.NewImage(fb.width, fb.height)
	}
	if w.view.refresh() {
		w.img.WritePixels(w.view.rgba)
	}
	screen.DrawImage(w.img, nil)
}

func (w *watchWindow) Layout(_, _ int) (int, int) {
	fb := w.run.h.fb
	return fb.width, fb.height
}
