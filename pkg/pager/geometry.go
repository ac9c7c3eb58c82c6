package pager

import "math"

// Point is a position in container coordinates.
type Point struct {
	X float64
	Y float64
}

// Rect is an axis-aligned rectangle in container coordinates.
type Rect struct {
	X float64
	Y float64
	W float64
	H float64
}

// Offset returns r translated by dx, dy.
func (r Rect) Offset(dx, dy float64) Rect {
	r.X += dx
	r.Y += dy
	return r
}

// Inset shrinks r by p on every side. Width and height never go negative.
func (r Rect) Inset(p Padding) Rect {
	r.X += p.Left
	r.Y += p.Top
	r.W = math.Max(0, r.W-p.Left-p.Right)
	r.H = math.Max(0, r.H-p.Top-p.Bottom)
	return r
}

// Empty reports whether r has no area.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Padding defines spacing on all four sides of an element.
// The container uses it both for its own paddings and for the content
// insets it forwards to scrollable screens.
type Padding struct {
	Top    float64 `toml:"top" yaml:"top"`
	Right  float64 `toml:"right" yaml:"right"`
	Bottom float64 `toml:"bottom" yaml:"bottom"`
	Left   float64 `toml:"left" yaml:"left"`
}

// UniformPadding creates a Padding with the same value on all sides.
func UniformPadding(value float64) Padding {
	return Padding{
		Top:    value,
		Right:  value,
		Bottom: value,
		Left:   value,
	}
}
