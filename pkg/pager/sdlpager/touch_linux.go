//go:build linux

package sdlpager

import (
	"context"

	"github.com/BrandonKowalski/pager/pkg/pager/internal/touch"
)

// startTouch reads the evdev touchscreen at path on its own goroutine.
// It returns nil when no device is configured or it cannot be opened.
func (h *Host) startTouch(ctx context.Context, path string) <-chan touch.Sample {
	if path == "" {
		return nil
	}

	reader, err := touch.Open(path)
	if err != nil {
		h.log.Error("Touch input disabled", "path", path, "error", err)
		return nil
	}

	samples := make(chan touch.Sample, 64)
	go func() {
		if err := reader.Run(ctx, samples); err != nil {
			h.log.Error("Touch device stopped", "path", path, "error", err)
		}
	}()
	return samples
}
