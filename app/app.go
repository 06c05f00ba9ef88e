// Package app wires the HAL, the event kernel, the services and the face into
// one cooperative step function.
package app

import (
	"runtime/debug"

	"github.com/rs/zerolog"

	"slowtime/hal"
	"slowtime/internal/buildinfo"
	apperrors "slowtime/internal/errors"
	"slowtime/internal/face"
	"slowtime/internal/gfx"
	"slowtime/internal/logger"
	"slowtime/kernel"
	"slowtime/services/health"
	"slowtime/services/link"
	"slowtime/services/power"
	timesvc "slowtime/services/time"
)

type Config struct {
	Face     face.Options
	StepGoal int

	// Monochrome renders black and white even on a color panel.
	Monochrome bool
	// NoCache redraws the whole dial every frame.
	NoCache bool
	// Backend picks the rasterizer. Empty means gfx.DefaultBackend.
	Backend gfx.Backend

	Level   zerolog.Level
	Console bool
}

// DefaultConfig is the slow face at warn level.
func DefaultConfig() Config {
	opts, _ := face.Preset("slow")
	return Config{
		Face:     opts,
		StepGoal: health.DefaultGoal,
		Backend:  gfx.DefaultBackend,
		Level:    zerolog.WarnLevel,
	}
}

type watch struct {
	h      hal.HAL
	log    zerolog.Logger
	canvas gfx.Surface
	face   *face.Renderer
	disp   *kernel.Dispatcher
	clock  *timesvc.Service

	sources []kernel.Source
	crashed bool
}

// New builds the watch and returns its step function. Each step polls the
// services, folds their events into the face, then draws and presents
// whatever changed.
func New(h hal.HAL, cfg Config) (func() error, error) {
	w, err := newWatch(h, cfg)
	if err != nil {
		return nil, err
	}
	return w.step, nil
}

// Run starts the watch and steps it on every base tick. It never returns.
func Run(h hal.HAL, cfg Config) {
	step, err := New(h, cfg)
	if err != nil {
		if h != nil && h.Logger() != nil {
			h.Logger().WriteLineString("slowtime: " + err.Error())
		}
		select {}
	}
	if err := runLoop(step, h.Time().Ticks()); err != nil && h.Logger() != nil {
		h.Logger().WriteLineString("slowtime: " + err.Error())
	}
	select {}
}

// runLoop steps once, then once per tick, and returns the first step error.
// It returns nil when ticks closes.
func runLoop(step func() error, ticks <-chan uint64) error {
	if err := step(); err != nil {
		return err
	}
	for range ticks {
		if err := step(); err != nil {
			return err
		}
	}
	return nil
}

func newWatch(h hal.HAL, cfg Config) (*watch, error) {
	if h == nil {
		return nil, apperrors.New(apperrors.ErrUnavailable).WithDetail("hal")
	}
	log := logger.New(h.Logger(), cfg.Level, cfg.Console)

	disp := h.Display()
	if disp == nil || disp.Framebuffer() == nil {
		return nil, apperrors.New(apperrors.ErrUnavailable).WithDetail("display")
	}
	if h.Time() == nil {
		return nil, apperrors.New(apperrors.ErrUnavailable).WithDetail("time")
	}
	if cfg.Face.Name == "" {
		cfg.Face = DefaultConfig().Face
	}

	fb := disp.Framebuffer()
	canvas, err := gfx.New(fb, cfg.Backend, gfx.Options{
		Monochrome: cfg.Monochrome || !disp.SupportsColor(),
		NoCache:    cfg.NoCache,
	})
	if err != nil {
		return nil, err
	}
	// A degenerate layout is logged by face.New and leaves a blank dial.
	layout, _ := face.NewLayout(canvas.Bounds(), cfg.Face)

	w := &watch{
		h:      h,
		log:    log,
		canvas: canvas,
		face:   face.New(cfg.Face, layout, canvas, log),
		disp:   kernel.NewDispatcher(log),
		clock:  timesvc.New(h.Time(), log),
	}
	w.sources = []kernel.Source{
		w.clock,
		power.New(h.Power(), log),
		health.New(h.Health(), cfg.StepGoal, log),
		link.New(h.Link(), log),
	}

	log.Info().
		Str("version", buildinfo.String()).
		Str("face", cfg.Face.Name).
		Str("backend", string(cfg.Backend)).
		Int("width", fb.Width()).
		Int("height", fb.Height()).
		Bool("color", canvas.SupportsColor()).
		Msg("watch started")

	// Initial snapshot so the first frame already shows the current state.
	w.disp.Poll(w.sources...)
	w.disp.Drain(w.face.Apply)
	return w, nil
}

func (w *watch) step() (err error) {
	if w.crashed {
		return apperrors.New(apperrors.ErrRender).WithDetail("halted")
	}
	defer func() {
		if v := recover(); v != nil {
			w.crashed = true
			w.crash(v, debug.Stack())
			err = apperrors.New(apperrors.ErrRender).WithDetail("panic")
		}
	}()

	w.disp.Poll(w.sources...)
	w.disp.Drain(w.face.Apply)
	if !w.face.Render(w.canvas) {
		return nil
	}
	if err := w.canvas.Present(); err != nil {
		w.log.Error().Err(err).Uint64("frame", w.face.Frames()).Msg("present failed")
	}
	return nil
}
