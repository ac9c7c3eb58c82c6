package pager

import (
	"testing"
	"time"
)

func drag(c *Controller, state PanState, dx, vx float64) {
	c.HandlePan(PanEvent{
		State:       state,
		Translation: Point{X: dx},
		Velocity:    Point{X: vx},
	})
}

func TestDragStartsInteractiveTransition(t *testing.T) {
	c, screens, rec := newTestController(t, 3)

	drag(c, PanBegan, -40, 0)

	if c.Phase() != PhaseInteractive {
		t.Fatalf("Phase() = %v, want interactive", c.Phase())
	}
	mustEvents(t, rec, "will:1")
	mustHierarchy(t, c, screens[0], screens[1])

	drag(c, PanChanged, -100, 0)
	if _, _, _, p, _ := c.Transition(); p != 0.25 {
		t.Fatalf("progress = %v, want 0.25", p)
	}

	// Frames do not move an interactive transition.
	c.Advance(frame)
	if _, _, _, p, _ := c.Transition(); p != 0.25 {
		t.Fatalf("progress after Advance = %v, want 0.25", p)
	}
}

func TestDragProgressIsClamped(t *testing.T) {
	c, _, _ := newTestController(t, 3)

	drag(c, PanBegan, -20, 0)
	drag(c, PanChanged, -2000, 0)

	if _, _, _, p, _ := c.Transition(); p != 2 {
		t.Fatalf("progress = %v, want 2", p)
	}
}

func TestDragReversalCancels(t *testing.T) {
	c, screens, rec := newTestController(t, 3)

	drag(c, PanBegan, -40, 0)
	drag(c, PanChanged, -100, 0)
	drag(c, PanChanged, 20, 0)

	if c.Phase() != PhaseAnimating {
		t.Fatalf("Phase() = %v, want animating back to origin", c.Phase())
	}

	// Samples from the same gesture cannot take the cancel over.
	drag(c, PanChanged, 60, 0)
	drag(c, PanEnded, 60, 0)

	finish(t, c)

	mustSelected(t, c, 0)
	mustHierarchy(t, c, screens[0])
	mustEvents(t, rec, "will:1", "did:0")
	if screens[1].layer.Attached() || screens[1].detaches != 1 {
		t.Fatalf("target attached = %v, detaches = %d", screens[1].layer.Attached(), screens[1].detaches)
	}
}

func TestDragRelease(t *testing.T) {
	tests := []struct {
		name     string
		start    int
		dx       float64
		velocity float64
		want     int
	}{
		{"past completion threshold", 0, -300, 0, 1},
		{"fast fling below threshold", 0, -40, -1000, 1},
		{"slow drag below threshold", 0, -40, -50, 0},
		{"fling against direction past threshold", 0, -300, 2000, 1},
		{"fling against direction below threshold", 0, -100, 2000, 0},
		{"backward fling", 1, 40, 1000, 0},
		{"backward slow drag", 1, 40, 100, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _, _ := newTestController(t, 3)
			c.SelectScreen(tt.start, false)

			drag(c, PanBegan, tt.dx, tt.velocity)
			drag(c, PanEnded, tt.dx, tt.velocity)
			finish(t, c)

			mustSelected(t, c, tt.want)
		})
	}
}

func TestDragOvershootCommitsImmediately(t *testing.T) {
	c, _, rec := newTestController(t, 2)

	drag(c, PanBegan, -10, 0)
	drag(c, PanChanged, -500, 0)
	drag(c, PanEnded, -500, 0)

	if c.IsAnimating() {
		t.Fatal("overshooting release should commit without further frames")
	}
	mustSelected(t, c, 1)
	mustEvents(t, rec, "will:1", "did:1")
}

func TestDragCancelledGesture(t *testing.T) {
	c, _, rec := newTestController(t, 3)

	drag(c, PanBegan, -350, 0)
	drag(c, PanCancelled, -350, 0)
	finish(t, c)

	mustSelected(t, c, 0)
	mustEvents(t, rec, "will:1", "did:0")
}

func TestDragIgnoredWhileAnimating(t *testing.T) {
	c, _, _ := newTestController(t, 3)

	c.SelectScreen(1, true)
	drag(c, PanBegan, 100, 0)
	drag(c, PanChanged, 150, 0)

	if c.Phase() != PhaseAnimating {
		t.Fatalf("Phase() = %v, want animating", c.Phase())
	}
	if from, to, _, _, _ := c.Transition(); from != 0 || to != 1 {
		t.Fatalf("transition = %d -> %d, want 0 -> 1", from, to)
	}
}

func TestDragPastEdgesIgnored(t *testing.T) {
	c, _, rec := newTestController(t, 2)

	drag(c, PanBegan, 50, 0)
	if c.IsAnimating() {
		t.Fatal("drag before the first screen started a transition")
	}

	c.SelectScreen(1, false)
	rec.reset()
	drag(c, PanBegan, -50, 0)
	if c.IsAnimating() {
		t.Fatal("drag after the last screen started a transition")
	}
	mustEvents(t, rec)
}

func TestDragDisabledWithSwipe(t *testing.T) {
	c, _, _ := newTestController(t, 2)
	c.SetSwipeEnabled(false)

	drag(c, PanBegan, -50, 0)

	if c.IsAnimating() {
		t.Fatal("drag started a transition while swiping is disabled")
	}
}

func TestStalledDragIsReleased(t *testing.T) {
	settings := DefaultSettings()
	settings.InteractiveTimeout = Duration{time.Second}
	c := NewWithSettings(settings)
	screens := newTestScreens(2)
	c.SetScreens(asScreens(screens))
	c.Layout(testBounds, Padding{})

	drag(c, PanBegan, -300, 0)
	c.Advance(900 * time.Millisecond)
	if c.Phase() != PhaseInteractive {
		t.Fatal("drag released before the timeout")
	}

	// A fresh sample restarts the quiet period.
	drag(c, PanChanged, -300, 0)
	c.Advance(900 * time.Millisecond)
	if c.Phase() != PhaseInteractive {
		t.Fatal("drag released although it was still reporting")
	}

	c.Advance(200 * time.Millisecond)
	if c.Phase() == PhaseInteractive {
		t.Fatal("stalled drag was not released")
	}
	finish(t, c)
	mustSelected(t, c, 1)
}

func TestStallGuardDisabled(t *testing.T) {
	settings := DefaultSettings()
	settings.InteractiveTimeout = Duration{}
	c := NewWithSettings(settings)
	c.SetScreens(asScreens(newTestScreens(2)))
	c.Layout(testBounds, Padding{})

	drag(c, PanBegan, -100, 0)
	c.Advance(time.Hour)

	if c.Phase() != PhaseInteractive {
		t.Fatal("drag released with the stall guard disabled")
	}
}

func TestSelectionQueuedBehindDrag(t *testing.T) {
	c, _, rec := newTestController(t, 3)

	drag(c, PanBegan, -40, 0)
	c.SelectScreen(2, true)
	drag(c, PanEnded, -40, 0)
	finish(t, c)

	mustSelected(t, c, 2)
	mustEvents(t, rec, "will:1", "did:0", "will:2", "did:2")
}

func TestPanRecognizer(t *testing.T) {
	r := NewPanRecognizer(10)
	ms := func(n int) time.Duration { return time.Duration(n) * time.Millisecond }

	r.Press(Point{X: 200, Y: 100}, ms(0))

	if _, ok := r.Move(Point{X: 195, Y: 100}, ms(10)); ok {
		t.Fatal("movement inside the slop produced an event")
	}

	ev, ok := r.Move(Point{X: 180, Y: 102}, ms(20))
	if !ok || ev.State != PanBegan {
		t.Fatalf("Move past slop = %+v, %v; want began", ev, ok)
	}
	if ev.Translation.X != -20 || ev.Translation.Y != 2 {
		t.Fatalf("translation = %+v, want (-20, 2)", ev.Translation)
	}
	if !r.Active() {
		t.Fatal("recognizer not active after began")
	}

	ev, ok = r.Move(Point{X: 140, Y: 102}, ms(30))
	if !ok || ev.State != PanChanged {
		t.Fatalf("Move = %+v, %v; want changed", ev, ok)
	}
	if ev.Velocity.X >= 0 {
		t.Fatalf("velocity = %+v, want leftward", ev.Velocity)
	}

	ev, ok = r.Release(Point{X: 140, Y: 102}, ms(35))
	if !ok || ev.State != PanEnded {
		t.Fatalf("Release = %+v, %v; want ended", ev, ok)
	}
	if ev.Velocity.X > -1000 {
		t.Fatalf("release velocity = %v, want a fast leftward fling", ev.Velocity.X)
	}
	if r.Active() {
		t.Fatal("recognizer still active after release")
	}
}

func TestPanRecognizerRestingRelease(t *testing.T) {
	r := NewPanRecognizer(0)

	r.Press(Point{}, 0)
	r.Move(Point{X: -100}, 10*time.Millisecond)
	ev, ok := r.Release(Point{X: -100}, 500*time.Millisecond)

	if !ok || ev.Velocity.X != 0 {
		t.Fatalf("Release after resting = %+v, %v; want zero velocity", ev, ok)
	}
}

func TestPanRecognizerTapIsNotADrag(t *testing.T) {
	r := NewPanRecognizer(10)

	r.Press(Point{X: 5, Y: 5}, 0)
	if _, ok := r.Release(Point{X: 6, Y: 5}, 50*time.Millisecond); ok {
		t.Fatal("tap produced a pan event")
	}
	if _, ok := r.Cancel(); ok {
		t.Fatal("cancel without a drag produced a pan event")
	}
}
