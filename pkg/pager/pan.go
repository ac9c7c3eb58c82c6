package pager

import (
	"math"
	"time"
)

// PanState is the phase of a continuous drag gesture.
type PanState int

const (
	PanBegan PanState = iota
	PanChanged
	PanEnded
	PanCancelled
)

func (s PanState) String() string {
	switch s {
	case PanBegan:
		return "began"
	case PanChanged:
		return "changed"
	case PanEnded:
		return "ended"
	case PanCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// PanEvent is one sample of a drag. Translation is measured from where the
// drag began; Velocity is in container units per second.
type PanEvent struct {
	State       PanState
	Translation Point
	Velocity    Point
}

// dragDirection maps a horizontal translation to the transition it implies.
// Dragging toward the leading edge reveals the next screen.
func dragDirection(dx float64) Direction {
	if dx < 0 {
		return Forward
	}
	return Backward
}

// HandlePan feeds one drag sample into the transition engine.
func (c *Controller) HandlePan(ev PanEvent) {
	switch ev.State {
	case PanBegan, PanChanged:
		c.panChanged(ev.Translation.X)
	case PanEnded:
		if t := c.interactive(); t != nil {
			c.release(t, ev.Velocity.X)
		}
	case PanCancelled:
		if t := c.interactive(); t != nil {
			c.settle(t, 0)
		}
	}
}

// interactive returns the transition under drag control, if any.
func (c *Controller) interactive() *transition {
	if run, ok := c.st.(stateRunning); ok && run.t.phase == PhaseInteractive {
		return run.t
	}
	return nil
}

func (c *Controller) panChanged(dx float64) {
	switch st := c.st.(type) {
	case stateRunning:
		t := st.t
		if t.phase != PhaseInteractive {
			// Animating transitions are never taken over by a drag.
			return
		}
		t.quiet = 0

		if dx != 0 && dragDirection(dx) != t.dir {
			c.log.Debug("Drag reversed, cancelling transition", "from", t.from, "to", t.to)
			c.settle(t, 0)
			return
		}
		t.progress = c.dragProgress(dx, t.bounds)
		c.apply(t)

	case stateIdle:
		if dx == 0 || !c.swipeEnabled.Load() {
			return
		}
		dir := dragDirection(dx)
		target := st.index + int(dir.sign())
		if target < 0 || target >= len(c.screens) {
			c.log.Debug("Drag past the last screen ignored", "index", st.index, "direction", dir.String())
			return
		}

		c.begin(st.index, target, PhaseInteractive)
		if t := c.interactive(); t != nil {
			t.progress = c.dragProgress(dx, t.bounds)
			c.apply(t)
		}
	}
}

func (c *Controller) dragProgress(dx float64, bounds Rect) float64 {
	if bounds.W <= 0 {
		return 0
	}
	return clamp(math.Abs(dx)/bounds.W, 0, 2)
}

// release ends drag control of t. It commits when the progress passed the
// completion threshold or the pointer was flung along the direction of
// travel fast enough, and plays back to the origin otherwise.
func (c *Controller) release(t *transition, vx float64) {
	along := -vx * t.dir.sign()
	commit := t.progress > c.completionThreshold || along > c.velocityThreshold

	c.log.Debug("Drag released",
		"progress", t.progress,
		"velocity", along,
		"commit", commit,
	)

	if commit {
		c.settle(t, 1)
	} else {
		c.settle(t, 0)
	}
}

// PanRecognizer turns raw pointer samples into PanEvents. It waits until
// the pointer traveled Slop units before reporting PanBegan, and estimates
// velocity from the most recent samples.
type PanRecognizer struct {
	Slop float64

	pressed bool
	active  bool
	origin  Point
	last    Point
	lastAt  time.Duration
	vel     Point
}

// NewPanRecognizer creates a recognizer with the given slop distance.
func NewPanRecognizer(slop float64) *PanRecognizer {
	return &PanRecognizer{Slop: slop}
}

// Active reports whether a drag has been recognized and not yet ended.
func (r *PanRecognizer) Active() bool {
	return r.active
}

// Press starts tracking a pointer at p. at is a monotonic timestamp.
func (r *PanRecognizer) Press(p Point, at time.Duration) {
	r.pressed = true
	r.active = false
	r.origin = p
	r.last = p
	r.lastAt = at
	r.vel = Point{}
}

// Move reports the pointer at p. It returns an event once the drag is recognized.
func (r *PanRecognizer) Move(p Point, at time.Duration) (PanEvent, bool) {
	if !r.pressed {
		return PanEvent{}, false
	}

	r.track(p, at)

	translation := Point{X: p.X - r.origin.X, Y: p.Y - r.origin.Y}
	if !r.active {
		if math.Hypot(translation.X, translation.Y) < r.Slop {
			return PanEvent{}, false
		}
		r.active = true
		return PanEvent{State: PanBegan, Translation: translation, Velocity: r.vel}, true
	}
	return PanEvent{State: PanChanged, Translation: translation, Velocity: r.vel}, true
}

// Release reports the pointer lifting at p.
func (r *PanRecognizer) Release(p Point, at time.Duration) (PanEvent, bool) {
	if !r.pressed {
		return PanEvent{}, false
	}
	r.pressed = false

	if !r.active {
		return PanEvent{}, false
	}
	r.active = false

	// A pointer that rested before lifting has no fling velocity.
	if at-r.lastAt > 100*time.Millisecond {
		r.vel = Point{}
	}
	if p != r.last {
		r.track(p, at)
	}

	translation := Point{X: p.X - r.origin.X, Y: p.Y - r.origin.Y}
	return PanEvent{State: PanEnded, Translation: translation, Velocity: r.vel}, true
}

// Cancel aborts the drag, for example when the window loses focus.
func (r *PanRecognizer) Cancel() (PanEvent, bool) {
	wasActive := r.active
	r.pressed = false
	r.active = false
	if !wasActive {
		return PanEvent{}, false
	}
	return PanEvent{State: PanCancelled, Translation: Point{X: r.last.X - r.origin.X, Y: r.last.Y - r.origin.Y}}, true
}

func (r *PanRecognizer) track(p Point, at time.Duration) {
	if dt := (at - r.lastAt).Seconds(); dt > 0 {
		inst := Point{X: (p.X - r.last.X) / dt, Y: (p.Y - r.last.Y) / dt}
		// Exponential smoothing keeps one jittery sample from deciding a fling.
		r.vel = Point{X: lerp(r.vel.X, inst.X, 0.6), Y: lerp(r.vel.Y, inst.Y, 0.6)}
	}
	r.last = p
	r.lastAt = at
}
