//go:build linux

package touch

import (
	"context"
	"errors"
	"os"
	"time"

	"github.com/holoplot/go-evdev"

	"github.com/BrandonKowalski/pager/pkg/pager"
	"github.com/BrandonKowalski/pager/pkg/pager/internal/logging"
)

type axis struct {
	min, max int32
}

func (a axis) normalize(v int32) float64 {
	if a.max <= a.min {
		return 0
	}
	n := float64(v-a.min) / float64(a.max-a.min)
	return min(max(n, 0), 1)
}

// decoder folds evdev events into samples. A sample is emitted on every
// SYN_REPORT that follows a change.
type decoder struct {
	x, y   axis
	rawX   int32
	rawY   int32
	down   bool
	dirty  bool
	origin time.Time
}

func (d *decoder) feed(ev *evdev.InputEvent) (Sample, bool) {
	switch ev.Type {
	case evdev.EV_ABS:
		switch ev.Code {
		case evdev.ABS_X, evdev.ABS_MT_POSITION_X:
			d.rawX = ev.Value
			d.dirty = true
		case evdev.ABS_Y, evdev.ABS_MT_POSITION_Y:
			d.rawY = ev.Value
			d.dirty = true
		}
	case evdev.EV_KEY:
		if ev.Code == evdev.BTN_TOUCH {
			d.down = ev.Value != 0
			d.dirty = true
		}
	case evdev.EV_SYN:
		if ev.Code != evdev.SYN_REPORT || !d.dirty {
			return Sample{}, false
		}
		d.dirty = false

		at := time.Unix(ev.Time.Unix())
		if d.origin.IsZero() {
			d.origin = at
		}
		return Sample{
			X:    d.x.normalize(d.rawX),
			Y:    d.y.normalize(d.rawY),
			Down: d.down,
			At:   at.Sub(d.origin),
		}, true
	}
	return Sample{}, false
}

// Reader owns an open touch device.
type Reader struct {
	dev  *evdev.InputDevice
	path string
	dec  decoder
	out  outbox
}

// Open opens the device at path and reads its axis ranges.
func Open(path string) (*Reader, error) {
	dev, err := evdev.Open(path)
	if err != nil {
		return nil, pager.NewInfrastructureError("open_touch_device", err)
	}

	r := &Reader{dev: dev, path: path}

	infos, err := dev.AbsInfos()
	if err != nil {
		dev.Close()
		return nil, pager.NewInfrastructureError("read_touch_axes", err)
	}
	r.dec.x = axisFor(infos, evdev.ABS_MT_POSITION_X, evdev.ABS_X)
	r.dec.y = axisFor(infos, evdev.ABS_MT_POSITION_Y, evdev.ABS_Y)

	name, _ := dev.Name()
	logging.Internal().Debug("Opened touch device", "path", path, "name", name,
		"x_max", r.dec.x.max, "y_max", r.dec.y.max)

	return r, nil
}

func axisFor(infos map[evdev.EvCode]evdev.AbsInfo, codes ...evdev.EvCode) axis {
	for _, code := range codes {
		if info, ok := infos[code]; ok && info.Maximum > info.Minimum {
			return axis{min: info.Minimum, max: info.Maximum}
		}
	}
	return axis{}
}

// Run reads the device until ctx is cancelled or the device fails, sending
// every sample to out. It closes out when it returns.
func (r *Reader) Run(ctx context.Context, out chan<- Sample) error {
	defer close(out)

	go func() {
		<-ctx.Done()
		// Unblocks ReadOne.
		r.dev.Close()
	}()

	for {
		ev, err := r.dev.ReadOne()
		if err != nil {
			if ctx.Err() != nil || errors.Is(err, os.ErrClosed) {
				return nil
			}
			return pager.NewInfrastructureError("read_touch_device", err)
		}

		sample, ok := r.dec.feed(ev)
		if !ok {
			continue
		}

		if !r.out.send(ctx, out, sample) {
			return nil
		}
	}
}

// outbox remembers the touch state the UI loop last received. Position
// updates are dropped while the loop is behind. A press or lift is never
// dropped: no later report repeats it.
type outbox struct {
	down bool
}

// send delivers s to out. It returns false when ctx ended first.
func (o *outbox) send(ctx context.Context, out chan<- Sample, s Sample) bool {
	if s.Down == o.down {
		select {
		case out <- s:
		default:
		}
		return true
	}

	select {
	case out <- s:
		o.down = s.Down
		return true
	case <-ctx.Done():
		return false
	}
}
