//go:build !tinygo

package hal

import (
	"context"
	"time"

	apperrors "slowtime/internal/errors"
)

// HeadlessConfig controls the no-window host runner.
type HeadlessConfig struct {
	// Hz is the step rate.
	Hz int
	// Ticks stops the run after that many steps. Zero runs until ctx ends.
	Ticks uint64
}

// RunHeadless steps the watch on a ticker without showing anything. Smoke
// tests and CI use it with Ticks set, usually with a high clock speed.
func RunHeadless(ctx context.Context, cfg HostConfig, newApp func(HAL) func() error, hc HeadlessConfig) error {
	if hc.Hz <= 0 {
		hc.Hz = 30
	}
	period := time.Second / time.Duration(hc.Hz)
	if period <= 0 {
		return apperrors.New(apperrors.ErrInvalidConfig).WithDetail("headless hz too high")
	}

	r := newHostRunner(cfg, newApp)
	ticker := time.NewTicker(period)
	defer ticker.Stop()

	for hc.Ticks == 0 || r.steps < hc.Ticks {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if err := r.advance(); err != nil {
				return err
			}
		}
	}
	return nil
}
