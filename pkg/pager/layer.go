package pager

// Layer is the visual state of a screen while the container displays it.
// Animators move and fade layers; renderers composite them in hierarchy order.
type Layer struct {
	Frame Rect
	Alpha float64

	attached bool
}

// Attached reports whether the layer is currently part of the container's hierarchy.
func (l *Layer) Attached() bool {
	return l.attached
}

// reset puts the layer back at rest inside bounds.
func (l *Layer) reset(bounds Rect) {
	l.Frame = bounds
	l.Alpha = 1
}
