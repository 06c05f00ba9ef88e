//go:build !tinygo

package hal

import (
	"fmt"
	"os"
	"sync"
	"time"
)

// HostConfig sets up the desktop simulator.
type HostConfig struct {
	Width  int
	Height int
	Color  bool

	// Speed multiplies the simulated clock; 60 runs one hour per minute.
	Speed float64
	// Start is the simulated time at launch. Zero means now.
	Start time.Time

	Battery        int
	Charging       bool
	Steps          int
	StepsPerMinute int
	NoHealth       bool
	Disconnected   bool

	// Output receives log lines. Nil means stderr.
	Output *os.File
}

// DefaultHostConfig matches a 144x168 color watch with a full battery.
func DefaultHostConfig() HostConfig {
	return HostConfig{
		Width:          144,
		Height:         168,
		Color:          true,
		Speed:          1,
		Battery:        100,
		StepsPerMinute: 12,
	}
}

type hostHAL struct {
	logger  *hostLogger
	fb      *MemoryFramebuffer
	color   bool
	kbd     *hostKeyboard
	t       *hostTime
	sensors *hostSensors
}

// New returns a host HAL implementation.
func New(cfg HostConfig) HAL {
	return newHostHAL(cfg)
}

func newHostHAL(cfg HostConfig) *hostHAL {
	def := DefaultHostConfig()
	if cfg.Width <= 0 {
		cfg.Width = def.Width
	}
	if cfg.Height <= 0 {
		cfg.Height = def.Height
	}
	out := cfg.Output
	if out == nil {
		out = os.Stderr
	}
	t := newHostTime(cfg.Start, cfg.Speed)
	return &hostHAL{
		logger:  &hostLogger{w: out},
		fb:      NewMemoryFramebuffer(cfg.Width, cfg.Height),
		color:   cfg.Color,
		kbd:     newHostKeyboard(),
		t:       t,
		sensors: newHostSensors(cfg, t.Now),
	}
}

func (h *hostHAL) Logger() Logger   { return h.logger }
func (h *hostHAL) Display() Display { return hostDisplay{fb: h.fb, color: h.color} }
func (h *hostHAL) Input() Input     { return hostInput{kbd: h.kbd} }
func (h *hostHAL) Time() Time       { return h.t }
func (h *hostHAL) Power() Power     { return h.sensors }
func (h *hostHAL) Link() Link       { return h.sensors }

func (h *hostHAL) Health() Health {
	if !h.sensors.health {
		return nil
	}
	return h.sensors
}

// pollControls applies pending keyboard controls to the simulated sensors.
func (h *hostHAL) pollControls() {
	for {
		select {
		case ev := <-h.kbd.ch:
			h.sensors.handleKey(ev)
		default:
			return
		}
	}
}

type hostDisplay struct {
	fb    *MemoryFramebuffer
	color bool
}

func (d hostDisplay) Framebuffer() Framebuffer { return d.fb }
func (d hostDisplay) SupportsColor() bool      { return d.color }

type hostInput struct {
	kbd *hostKeyboard
}

func (in hostInput) Keyboard() Keyboard { return in.kbd }

type hostLogger struct {
	mu sync.Mutex
	w  *os.File
}

func (l *hostLogger) WriteLineString(s string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintln(l.w, s)
}

func (l *hostLogger) WriteLineBytes(b []byte) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.w.Write(b)
	l.w.Write([]byte{'\n'})
}
