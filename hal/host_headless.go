//go:build !tinygo

package hal

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// HeadlessConfig controls the no-window host runner.
type HeadlessConfig struct {
	Enabled bool
	Hz      int
	// Ticks stops the runner after N steps (0 = until the app halts).
	Ticks uint64
}

// RunHeadless runs the app without opening a window. It returns nil once the
// app step reports ErrHalt.
func RunHeadless(ctx context.Context, newApp func(HAL) func() error, cfg HeadlessConfig) error {
	_, err := RunHeadlessHAL(ctx, New(), newApp, cfg)
	return err
}

// RunHeadlessHAL is RunHeadless on a caller-supplied HAL. It returns the HAL
// so callers can inspect the final frame.
func RunHeadlessHAL(ctx context.Context, h HAL, newApp func(HAL) func() error, cfg HeadlessConfig) (HAL, error) {
	if cfg.Hz <= 0 {
		cfg.Hz = 60
	}

	step := newApp(h)

	d := time.Second / time.Duration(cfg.Hz)
	if d <= 0 {
		return h, fmt.Errorf("invalid headless hz: %d", cfg.Hz)
	}
	t := time.NewTicker(d)
	defer t.Stop()

	var tick uint64
	for {
		select {
		case <-ctx.Done():
			return h, ctx.Err()
		case <-t.C:
			if step != nil {
				if err := step(); err != nil {
					if errors.Is(err, ErrHalt) {
						return h, nil
					}
					return h, err
				}
			}
			tick++
			if cfg.Ticks > 0 && tick >= cfg.Ticks {
				return h, nil
			}
		}
	}
}
