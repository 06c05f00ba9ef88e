//go:build !tinygo

package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"github.com/spf13/pflag"

	"slowtime/app"
	"slowtime/hal"
	"slowtime/internal/buildinfo"
	"slowtime/internal/config"
	"slowtime/internal/gfx"
	"slowtime/internal/logger"
)

func main() {
	fs := config.Flags("slowtime")
	cfg, err := config.Load(fs, os.Args[1:])
	if v, _ := fs.GetBool("version"); v {
		fmt.Println(buildinfo.String())
		return
	}
	if errors.Is(err, pflag.ErrHelp) {
		return
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	if err := run(cfg); err != nil && !errors.Is(err, context.Canceled) {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	opts, err := cfg.Options()
	if err != nil {
		return err
	}
	start, err := cfg.StartTime(time.Now())
	if err != nil {
		return err
	}

	hc := hal.DefaultHostConfig()
	hc.Width = cfg.Width
	hc.Height = cfg.Height
	hc.Color = cfg.Color
	hc.Speed = cfg.Speed
	hc.Start = start

	ac := app.DefaultConfig()
	ac.Face = opts
	ac.StepGoal = cfg.StepGoal
	ac.Backend = gfx.Backend(cfg.Backend)
	ac.Level = logger.Level(cfg.Debug, cfg.Verbose)
	ac.Console = true

	newApp := func(h hal.HAL) func() error {
		step, err := app.New(h, ac)
		if err != nil {
			return func() error { return err }
		}
		return step
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	switch {
	case cfg.Headless:
		return hal.RunHeadless(ctx, hc, newApp, hal.HeadlessConfig{Hz: cfg.Hz, Ticks: cfg.Ticks})
	case cfg.TUI:
		// Log lines would tear the alternate screen.
		path := filepath.Join(os.TempDir(), "slowtime.log")
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return err
		}
		defer f.Close()
		hc.Output = f
		return hal.RunTerminal(ctx, hc, newApp, cfg.Hz)
	default:
		return hal.RunWindow(hc, newApp)
	}
}
