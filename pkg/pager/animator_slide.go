package pager

import "time"

// Slide moves both screens by a small fixed distance while cross-fading them.
type Slide struct {
	// Delta is how far, in container units, the screens travel.
	Delta float64
	// Length of a non-interactive transition.
	Length time.Duration
	Ease   EasingFunction
}

func NewSlide() *Slide {
	return &Slide{
		Delta:  150,
		Length: DefaultAnimationDuration,
		Ease:   EaseInOut,
	}
}

func (s *Slide) Duration() time.Duration {
	return s.Length
}

func (s *Slide) Prepare(from, to *Layer, dir Direction, bounds Rect) {
	from.Frame = bounds
	from.Alpha = 1
	to.Frame = bounds.Offset(dir.sign()*s.Delta, 0)
	to.Alpha = 0
}

func (s *Slide) Apply(from, to *Layer, dir Direction, bounds Rect, progress float64) {
	e := ease(s.Ease, progress)

	from.Frame = bounds.Offset(lerp(0, -dir.sign()*s.Delta, e), 0)
	from.Alpha = 1 - e
	to.Frame = bounds.Offset(lerp(dir.sign()*s.Delta, 0, e), 0)
	to.Alpha = e
}

func (s *Slide) Finish(from, to *Layer) {}
