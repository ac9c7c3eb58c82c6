package input

import (
	"testing"
	"time"

	"github.com/BrandonKowalski/pager/pkg/pager/constants"
)

type fakeClock struct {
	t time.Time
}

func (c *fakeClock) now() time.Time { return c.t }

func (c *fakeClock) add(d time.Duration) { c.t = c.t.Add(d) }

func TestDirectionalRepeat(t *testing.T) {
	clock := &fakeClock{t: time.Unix(0, 0)}
	d := NewDirectionalInputWithTiming(300*time.Millisecond, 100*time.Millisecond)
	d.now = clock.now

	if !d.SetHeld(constants.VirtualButtonR1, true) {
		t.Fatal("R1 should page")
	}

	clock.add(200 * time.Millisecond)
	if got := d.Update(); got != DirectionNone {
		t.Fatalf("Update() before delay = %v", got)
	}

	clock.add(100 * time.Millisecond)
	if got := d.Update(); got != DirectionRight {
		t.Fatalf("Update() after delay = %v, want right", got)
	}

	clock.add(50 * time.Millisecond)
	if got := d.Update(); got != DirectionNone {
		t.Fatalf("Update() inside interval = %v", got)
	}

	clock.add(50 * time.Millisecond)
	if got := d.Update(); got != DirectionRight {
		t.Fatalf("Update() after interval = %v, want right", got)
	}

	d.SetHeld(constants.VirtualButtonR1, false)
	clock.add(time.Second)
	if got := d.Update(); got != DirectionNone {
		t.Fatalf("Update() after release = %v", got)
	}
}

func TestDirectionalIgnoresOtherButtons(t *testing.T) {
	d := NewDirectionalInputWithTiming(300*time.Millisecond, 150*time.Millisecond)

	if d.SetHeld(constants.VirtualButtonUp, true) {
		t.Fatal("Up should not page")
	}
	if d.IsHeld() {
		t.Fatal("Up registered as held")
	}

	d.SetHeld(constants.VirtualButtonLeft, true)
	d.SetHeld(constants.VirtualButtonRight, true)
	if d.HeldDirection() != DirectionLeft {
		t.Fatalf("HeldDirection() = %v, want left", d.HeldDirection())
	}

	d.Reset()
	if d.IsHeld() {
		t.Fatal("Reset left a direction held")
	}
}
