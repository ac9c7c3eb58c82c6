package pager

import "time"

// DefaultParallaxSpeed is the speed multiplier used to finish a released drag.
const DefaultParallaxSpeed = 3.2

// Parallax slides the incoming screen a full width while the outgoing screen
// moves only half as far, optionally cross-fading the two.
type Parallax struct {
	Length time.Duration
	// Speed multiplies playback once an interactive transition is released.
	Speed float64
	// Opacity enables the cross-fade.
	Opacity bool
	Ease    EasingFunction

	fromStart, fromEnd float64
	toStart, toEnd     float64
}

func NewParallax() *Parallax {
	return &Parallax{
		Length: DefaultAnimationDuration,
		Speed:  DefaultParallaxSpeed,
		Ease:   EaseOut(2),
	}
}

func (p *Parallax) Duration() time.Duration {
	return p.Length
}

func (p *Parallax) FinishSpeed() float64 {
	return p.Speed
}

func (p *Parallax) Prepare(from, to *Layer, dir Direction, bounds Rect) {
	s := dir.sign()

	// The outgoing screen starts wherever it currently is.
	p.fromStart = from.Frame.X
	p.fromEnd = bounds.X - s*bounds.W/2
	p.toStart = bounds.X + s*bounds.W
	p.toEnd = bounds.X

	to.Frame = bounds
	to.Frame.X = p.toStart
	to.Alpha = 1
	if p.Opacity {
		to.Alpha = 0
	}
	from.Frame.Y = bounds.Y
	from.Frame.W = bounds.W
	from.Frame.H = bounds.H
}

func (p *Parallax) Apply(from, to *Layer, dir Direction, bounds Rect, progress float64) {
	e := ease(p.Ease, progress)

	from.Frame.X = lerp(p.fromStart, p.fromEnd, e)
	to.Frame.X = lerp(p.toStart, p.toEnd, e)
	if p.Opacity {
		from.Alpha = 1 - e
		to.Alpha = e
	}
}

func (p *Parallax) Finish(from, to *Layer) {
	p.fromStart, p.fromEnd = 0, 0
	p.toStart, p.toEnd = 0, 0
}
