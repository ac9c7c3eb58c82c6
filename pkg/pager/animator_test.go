package pager

import (
	"math"
	"testing"
)

func near(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestSlide(t *testing.T) {
	s := NewSlide()
	bounds := Rect{X: 10, W: 400, H: 300}

	tests := []struct {
		dir      Direction
		progress float64
		fromX    float64
		toX      float64
		toAlpha  float64
	}{
		{Forward, 0, 10, 160, 0},
		{Forward, 1, -140, 10, 1},
		{Forward, 2, -140, 10, 1},
		{Backward, 0, 10, -140, 0},
		{Backward, 1, 160, 10, 1},
	}

	for _, tt := range tests {
		var from, to Layer
		s.Prepare(&from, &to, tt.dir, bounds)
		s.Apply(&from, &to, tt.dir, bounds, tt.progress)

		if !near(from.Frame.X, tt.fromX) || !near(to.Frame.X, tt.toX) {
			t.Errorf("%v@%v: from.X = %v, to.X = %v; want %v, %v",
				tt.dir, tt.progress, from.Frame.X, to.Frame.X, tt.fromX, tt.toX)
		}
		if !near(to.Alpha, tt.toAlpha) || !near(from.Alpha, 1-tt.toAlpha) {
			t.Errorf("%v@%v: alphas = %v, %v; want %v, %v",
				tt.dir, tt.progress, from.Alpha, to.Alpha, 1-tt.toAlpha, tt.toAlpha)
		}
	}
}

func TestSlidePrepareHidesIncoming(t *testing.T) {
	s := NewSlide()
	var from, to Layer
	s.Prepare(&from, &to, Forward, Rect{W: 400, H: 300})

	if to.Alpha != 0 || to.Frame.X != 150 {
		t.Fatalf("incoming = %+v, want hidden 150 to the right", to)
	}
	if from.Alpha != 1 || from.Frame.X != 0 {
		t.Fatalf("outgoing = %+v, want at rest", from)
	}
}

func TestParallax(t *testing.T) {
	p := NewParallax()
	bounds := Rect{W: 400, H: 300}

	var from, to Layer
	from.Frame = bounds
	p.Prepare(&from, &to, Forward, bounds)

	if to.Frame.X != 400 || to.Alpha != 1 {
		t.Fatalf("incoming after prepare = %+v, want one width to the right, opaque", to)
	}

	p.Apply(&from, &to, Forward, bounds, 1)
	if !near(from.Frame.X, -200) || !near(to.Frame.X, 0) {
		t.Fatalf("forward end: from.X = %v, to.X = %v; want -200, 0", from.Frame.X, to.Frame.X)
	}

	p.Apply(&from, &to, Forward, bounds, 0.5)
	if from.Frame.X <= -200 || from.Frame.X >= 0 || to.Frame.X <= 0 || to.Frame.X >= 400 {
		t.Fatalf("forward midway: from.X = %v, to.X = %v", from.Frame.X, to.Frame.X)
	}
	// The outgoing screen travels half as far as the incoming one.
	if !near(-from.Frame.X*2, 400-to.Frame.X) {
		t.Fatalf("parallax ratio broken: from.X = %v, to.X = %v", from.Frame.X, to.Frame.X)
	}

	from = Layer{Frame: bounds, Alpha: 1}
	p.Prepare(&from, &to, Backward, bounds)
	p.Apply(&from, &to, Backward, bounds, 1)
	if !near(from.Frame.X, 200) || !near(to.Frame.X, 0) {
		t.Fatalf("backward end: from.X = %v, to.X = %v; want 200, 0", from.Frame.X, to.Frame.X)
	}
}

func TestParallaxOpacity(t *testing.T) {
	p := NewParallax()
	p.Opacity = true
	bounds := Rect{W: 400, H: 300}

	from := Layer{Frame: bounds, Alpha: 1}
	var to Layer
	p.Prepare(&from, &to, Forward, bounds)
	if to.Alpha != 0 {
		t.Fatalf("incoming alpha = %v, want 0", to.Alpha)
	}

	p.Apply(&from, &to, Forward, bounds, 1)
	if from.Alpha != 0 || to.Alpha != 1 {
		t.Fatalf("alphas = %v, %v; want 0, 1", from.Alpha, to.Alpha)
	}
}

func TestParallaxFinishesFaster(t *testing.T) {
	c, _, _ := newTestController(t, 2)
	c.SetAnimatorKind(AnimatorParallax)

	drag(c, PanBegan, -300, 0)
	drag(c, PanEnded, -300, 0)

	frames := 0
	for c.IsAnimating() {
		c.Advance(frame)
		frames++
	}
	// A quarter of the way left at 3.2x speed fits in two frames.
	if frames > 2 {
		t.Fatalf("finishing took %d frames", frames)
	}
	mustSelected(t, c, 1)
}

func TestAnimatorKindText(t *testing.T) {
	for _, kind := range []AnimatorKind{AnimatorSlide, AnimatorParallax, AnimatorCustom} {
		text, err := kind.MarshalText()
		if err != nil {
			t.Fatal(err)
		}
		var got AnimatorKind
		if err := got.UnmarshalText(text); err != nil {
			t.Fatal(err)
		}
		if got != kind {
			t.Fatalf("round trip of %v = %v", kind, got)
		}
	}

	var k AnimatorKind
	if err := k.UnmarshalText([]byte("wobble")); err == nil {
		t.Fatal("unknown animator accepted")
	}
}

func TestAnimatorsFallBackToSlide(t *testing.T) {
	a := NewAnimators()
	if a.For(AnimatorCustom) != Animator(a.Slide) {
		t.Fatal("custom kind without a custom animator should use the slide animator")
	}
	if a.For(AnimatorParallax) != Animator(a.Parallax) {
		t.Fatal("parallax kind returned the wrong animator")
	}
}

func TestEasing(t *testing.T) {
	fns := map[string]EasingFunction{
		"linear": EaseLinear,
		"in2":    EaseIn(2),
		"in5":    EaseIn(5),
		"out2":   EaseOut(2),
		"out5":   EaseOut(5),
		"inout":  EaseInOut,
	}
	for name, fn := range fns {
		if !near(fn(0), 0) || !near(fn(1), 1) {
			t.Errorf("%s: f(0) = %v, f(1) = %v", name, fn(0), fn(1))
		}
	}

	if ease(EaseOut(2), 1.5) != 1 || ease(nil, -1) != 0 {
		t.Fatal("ease does not clamp overshoot")
	}
}
