//go:build !tinygo && !cgo

package hal

import apperrors "slowtime/internal/errors"

// RunWindow is unavailable without cgo; the headless and terminal runners
// still work.
func RunWindow(HostConfig, func(HAL) func() error) error {
	return apperrors.New(apperrors.ErrUnavailable).WithDetail("window needs cgo, use --headless or --tui")
}
