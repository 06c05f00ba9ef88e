//go:build !tinygo

package hal

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

var (
	terminalFooterStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
	terminalErrorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
)

const terminalHelp = "↑/↓ battery  ←/→ steps  c charge  b link  q quit"

// RunTerminal shows the framebuffer in the terminal with half-block characters,
// two pixel rows per text row. It refuses to start when stdout is not a TTY.
func RunTerminal(ctx context.Context, cfg HostConfig, newApp func(HAL) func() error, hz int) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return errors.New("terminal viewer needs a TTY on stdout")
	}
	if hz <= 0 {
		hz = 10
	}

	m := newTerminalModel(newHostRunner(cfg, newApp), time.Second/time.Duration(hz))
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return err
	}
	return m.err
}

type terminalTickMsg time.Time

type terminalModel struct {
	run      *hostRunner
	view     *frameView
	interval time.Duration

	frame  string
	width  int
	height int
	err    error
}

func newTerminalModel(r *hostRunner, interval time.Duration) *terminalModel {
	return &terminalModel{run: r, view: newFrameView(r.h.fb), interval: interval}
}

func (m *terminalModel) tick() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg { return terminalTickMsg(t) })
}

// Init implements tea.Model.
func (m *terminalModel) Init() tea.Cmd {
	return m.tick()
}

// Update implements tea.Model.
func (m *terminalModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.redraw(true)
		return m, nil
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyUp:
			m.run.h.kbd.push(KeyEvent{Code: KeyUp, Press: true})
		case tea.KeyDown:
			m.run.h.kbd.push(KeyEvent{Code: KeyDown, Press: true})
		case tea.KeyLeft:
			m.run.h.kbd.push(KeyEvent{Code: KeyLeft, Press: true})
		case tea.KeyRight:
			m.run.h.kbd.push(KeyEvent{Code: KeyRight, Press: true})
		case tea.KeyRunes:
			for _, r := range msg.Runes {
				if r == 'q' {
					return m, tea.Quit
				}
				m.run.h.kbd.push(KeyEvent{Press: true, Rune: r})
			}
		}
		return m, nil
	case terminalTickMsg:
		if err := m.run.advance(); err != nil {
			m.err = err
			return m, tea.Quit
		}
		m.redraw(false)
		return m, m.tick()
	}
	return m, nil
}

// redraw rebuilds the text frame when a new frame was presented or the
// terminal was resized.
func (m *terminalModel) redraw(resized bool) {
	if !m.view.refresh() && !resized && m.frame != "" {
		return
	}
	fb := m.run.h.fb
	m.frame = renderHalfBlocks(m.view.rgba, fb.width, fb.height, downsample(fb.width, fb.height, m.width, m.height-1))
}

// View implements tea.Model.
func (m *terminalModel) View() string {
	var b strings.Builder
	b.WriteString(m.frame)
	b.WriteByte('\n')
	if m.err != nil {
		b.WriteString(terminalErrorStyle.Render(m.err.Error()))
	} else {
		b.WriteString(terminalFooterStyle.Render(terminalHelp))
	}
	return b.String()
}

// downsample picks the smallest integer step that fits the image into a cols x
// rows terminal. Unknown sizes draw at full resolution.
func downsample(w, h, cols, rows int) int {
	if cols <= 0 || rows <= 0 {
		return 1
	}
	step := 1
	for w/step > cols || (h/step+1)/2 > rows {
		step++
	}
	return step
}

// renderHalfBlocks turns RGBA pixels into rows of "▀" whose foreground is the
// upper pixel and background the lower one.
func renderHalfBlocks(rgba []byte, w, h, step int) string {
	if step <= 0 {
		step = 1
	}
	pixel := func(x, y int) string {
		if y >= h {
			return "#000000"
		}
		i := (y*w + x) * 4
		if i+2 >= len(rgba) {
			return "#000000"
		}
		return fmt.Sprintf("#%02X%02X%02X", rgba[i], rgba[i+1], rgba[i+2])
	}

	styles := make(map[string]lipgloss.Style)
	var b strings.Builder
	for y := 0; y < h; y += 2 * step {
		if y > 0 {
			b.WriteByte('\n')
		}
		for x := 0; x < w; x += step {
			top, bottom := pixel(x, y), pixel(x, y+step)
			key := top + bottom
			st, ok := styles[key]
			if !ok {
				st = lipgloss.NewStyle().Foreground(lipgloss.Color(top)).Background(lipgloss.Color(bottom))
				styles[key] = st
			}
			b.WriteString(st.Render("▀"))
		}
	}
	return b.String()
}
