//go:build !linux

package sdlpager

import (
	"context"

	"github.com/BrandonKowalski/pager/pkg/pager/internal/touch"
)

func (h *Host) startTouch(ctx context.Context, path string) <-chan touch.Sample {
	if path != "" {
		h.log.Warn("evdev touch input is only available on linux", "path", path)
	}
	return nil
}
