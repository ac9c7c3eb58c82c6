package pager

import "time"

// begin starts a transition from screens[from] to screens[to].
func (c *Controller) begin(from, to int, phase Phase) {
	fromScreen, toScreen := c.screens[from], c.screens[to]
	if fromScreen == toScreen {
		return
	}

	t := &transition{
		from:       from,
		to:         to,
		fromScreen: fromScreen,
		toScreen:   toScreen,
		dir:        directionBetween(from, to),
		animator:   c.Animator(),
		bounds:     c.Bounds(),
		phase:      phase,
		goal:       1,
		speed:      1,
	}

	// Running before anyone hears about it, so observers that select
	// from WillMove get queued instead of starting a second transition.
	c.st = stateRunning{t: t}
	c.notifyWillMove(toScreen)

	c.attach(toScreen)
	toScreen.Layer().reset(t.bounds)
	c.applyInsets(toScreen)
	t.animator.Prepare(fromScreen.Layer(), toScreen.Layer(), t.dir, t.bounds)

	c.log.Debug("Transition began",
		"from", from,
		"to", to,
		"direction", t.dir.String(),
		"phase", phase.String(),
	)
}

// Advance moves the running transition forward by dt. Hosts call it once
// per frame from their update loop.
func (c *Controller) Advance(dt time.Duration) {
	run, ok := c.st.(stateRunning)
	if !ok || dt <= 0 {
		return
	}
	t := run.t

	if t.phase == PhaseInteractive {
		if c.interactiveTimeout <= 0 {
			return
		}
		t.quiet += dt
		if t.quiet >= c.interactiveTimeout {
			c.log.Warn("Interactive transition stalled, releasing it",
				"from", t.from,
				"to", t.to,
				"progress", t.progress,
			)
			c.release(t, 0)
		}
		return
	}

	step := 1.0
	if d := t.animator.Duration(); d > 0 {
		step = float64(dt) / float64(d) * t.speed
	}

	if t.goal >= 1 {
		t.progress += step
	} else {
		t.progress -= step
	}

	c.resolveOrApply(t)
}

// resolveOrApply commits or cancels t once its progress reached the goal,
// and otherwise pushes the progress to the animator.
func (c *Controller) resolveOrApply(t *transition) {
	switch {
	case t.goal >= 1 && t.progress >= 1:
		t.progress = 1
		c.apply(t)
		c.commit(t)
	case t.goal <= 0 && t.progress <= 0:
		t.progress = 0
		c.apply(t)
		c.cancel(t, true)
	default:
		c.apply(t)
	}
}

func (c *Controller) apply(t *transition) {
	t.animator.Apply(t.fromScreen.Layer(), t.toScreen.Layer(), t.dir, t.bounds, t.progress)
	c.notifyAlongside(t.toScreen, t.progress)
}

// settle stops interactive control of t and plays it toward goal.
func (c *Controller) settle(t *transition, goal float64) {
	t.phase = PhaseAnimating
	t.goal = goal
	t.speed = finishSpeed(t.animator)

	if (goal >= 1 && t.progress >= 1) || (goal <= 0 && t.progress <= 0) {
		c.resolveOrApply(t)
	}
}

// commit makes the incoming screen the selection.
func (c *Controller) commit(t *transition) {
	t.animator.Finish(t.fromScreen.Layer(), t.toScreen.Layer())

	c.detach(t.fromScreen)
	t.fromScreen.Layer().reset(t.bounds)
	t.toScreen.Layer().reset(c.Bounds())
	c.st = stateIdle{index: t.to}

	if lc, ok := t.toScreen.(Lifecycle); ok {
		lc.DidAttach(c)
	}

	c.log.Debug("Transition committed", "from", t.from, "to", t.to)
	next, queued := c.takePending()
	c.notifyDidMove(t.toScreen)
	if queued {
		c.replay(t.to, next)
	}
}

// cancel returns to the origin screen. A cancel is reported as a move back
// to where the transition started.
func (c *Controller) cancel(t *transition, replay bool) {
	t.animator.Finish(t.fromScreen.Layer(), t.toScreen.Layer())

	c.detach(t.toScreen)
	t.toScreen.Layer().reset(t.bounds)
	t.fromScreen.Layer().reset(c.Bounds())
	c.st = stateIdle{index: t.from}

	c.log.Debug("Transition cancelled", "from", t.from, "to", t.to)
	next, queued := c.takePending()
	c.notifyDidMove(t.fromScreen)
	if replay && queued {
		c.replay(t.from, next)
	}
}

func (c *Controller) takePending() (int, bool) {
	next, queued := c.pending, c.hasPending
	c.hasPending = false
	return next, queued
}

// replay starts the request that was pending when a transition resolved on
// reached. A request made by an observer during DidMove is newer and wins.
func (c *Controller) replay(reached, next int) {
	if idle, ok := c.st.(stateIdle); !ok || idle.index != reached || c.hasPending {
		return
	}
	if next == reached || next < 0 || next >= len(c.screens) {
		return
	}
	if !c.animationEnabled.Load() {
		c.jump(next)
		return
	}
	c.request(next)
}
