package app

import (
	"fmt"
	"image/color"
	"strings"
	"unicode/utf8"

	"slowtime/internal/face"
	"slowtime/internal/geometry"
)

var (
	crashBackground = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
	crashForeground = color.RGBA{A: 0xFF}
)

// crash logs a panic that escaped the step and paints it on the display so a
// device without a console still shows what happened.
func (w *watch) crash(v any, stack []byte) {
	w.log.Error().Interface("panic", v).Msg("watch halted")
	lines := []string{"slowtime halted", fmt.Sprintf("panic: %v", v)}
	for _, line := range strings.Split(string(stack), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		w.log.Debug().Msg(line)
		lines = append(lines, line)
	}

	defer func() {
		if v := recover(); v != nil {
			w.log.Error().Interface("panic", v).Msg("crash screen failed")
		}
	}()

	c := w.canvas
	bounds := c.Bounds()
	if bounds.Empty() {
		return
	}
	c.FillRect(bounds, crashBackground)

	lineH := c.Measure("0", face.FontLabel, geometry.Rect{}).H
	if lineH <= 0 {
		_ = c.Present()
		return
	}
	fits := func(s string) bool {
		return c.Measure(s, face.FontLabel, geometry.Rect{}).W <= bounds.W
	}

	y := 0
	for _, line := range lines {
		for line != "" {
			if y+lineH > bounds.H {
				_ = c.Present()
				return
			}
			chunk, rest := wrapRunes(line, fits)
			c.DrawText(chunk, face.FontLabel, geometry.Rect{X: 0, Y: y, W: bounds.W, H: lineH}, face.AlignLeft, crashForeground)
			y += lineH
			line = strings.TrimLeft(rest, " ")
		}
	}
	_ = c.Present()
}

// wrapRunes returns the longest prefix of s that fits, at least one rune.
func wrapRunes(s string, fits func(string) bool) (prefix, rest string) {
	if fits(s) {
		return s, ""
	}
	end := 0
	for i := 0; i < len(s); {
		_, size := utf8.DecodeRuneInString(s[i:])
		if size <= 0 {
			break
		}
		if end > 0 && !fits(s[:i+size]) {
			break
		}
		i += size
		end = i
	}
	if end == 0 {
		return s, ""
	}
	return s[:end], s[end:]
}
