package sdlpager

import (
	"github.com/BrandonKowalski/pager/pkg/pager"
	"github.com/BrandonKowalski/pager/pkg/pager/internal/touch"
)

// drainTouches feeds every queued device sample to the device recognizer.
func (h *Host) drainTouches() {
	for h.touches != nil {
		select {
		case s, ok := <-h.touches:
			if !ok {
				h.touches = nil
				h.feedPan(h.devicePan.Cancel())
				return
			}
			w, hgt := h.win.Size()
			h.handleSample(s, float64(w), float64(hgt))
		default:
			return
		}
	}
}

func (h *Host) handleSample(s touch.Sample, w, hgt float64) {
	p := pager.Point{X: s.X * w, Y: s.Y * hgt}

	switch {
	case s.Down && !h.deviceDown:
		h.deviceDown = true
		h.devicePan.Press(p, s.At)
	case s.Down:
		h.feedPan(h.devicePan.Move(p, s.At))
	case h.deviceDown:
		h.deviceDown = false
		h.feedPan(h.devicePan.Release(p, s.At))
	}
}
