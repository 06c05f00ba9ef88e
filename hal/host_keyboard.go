//go:build !tinygo && cgo

package hal

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var windowKeys = map[ebiten.Key]KeyCode{
	ebiten.KeyArrowUp:    KeyUp,
	ebiten.KeyArrowDown:  KeyDown,
	ebiten.KeyArrowLeft:  KeyLeft,
	ebiten.KeyArrowRight: KeyRight,
	ebiten.KeyEnter:      KeyEnter,
}

// pollWindow forwards this frame's window key presses. Only presses matter to
// the simulator controls, so releases are not reported.
func (k *hostKeyboard) pollWindow() {
	for _, key := range inpututil.AppendJustPressedKeys(nil) {
		if code, ok := windowKeys[key]; ok {
			k.push(KeyEvent{Code: code, Press: true})
		}
	}
	for _, r := range ebiten.AppendInputChars(nil) {
		k.push(KeyEvent{Press: true, Rune: r})
	}
}
