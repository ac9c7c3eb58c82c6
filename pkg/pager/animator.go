package pager

import (
	"fmt"
	"strings"
	"time"
)

// DefaultAnimationDuration is used by the built-in animators.
const DefaultAnimationDuration = 250 * time.Millisecond

// Direction is the direction of travel of a transition.
type Direction int

const (
	// Forward moves to a higher index. The incoming screen enters from the trailing edge.
	Forward Direction = iota
	// Backward moves to a lower index. The incoming screen enters from the leading edge.
	Backward
)

func (d Direction) String() string {
	switch d {
	case Forward:
		return "forward"
	case Backward:
		return "backward"
	default:
		return "unknown"
	}
}

// sign is +1 for Forward and -1 for Backward.
func (d Direction) sign() float64 {
	if d == Backward {
		return -1
	}
	return 1
}

func directionBetween(from, to int) Direction {
	if to < from {
		return Backward
	}
	return Forward
}

// Animator produces the visual effect of a transition by mutating the
// outgoing and incoming layers.
//
// The Controller calls Prepare once when a transition begins, Apply for
// every progress step (progress is linear and may exceed 1 while dragging),
// and Finish once the transition was committed or cancelled. After Finish
// the Controller puts the surviving layer back at rest.
type Animator interface {
	Duration() time.Duration
	Prepare(from, to *Layer, dir Direction, bounds Rect)
	Apply(from, to *Layer, dir Direction, bounds Rect, progress float64)
	Finish(from, to *Layer)
}

// FinishSpeeder is implemented by animators that play the remainder of an
// interactive transition faster (or slower) than a regular one.
type FinishSpeeder interface {
	FinishSpeed() float64
}

func finishSpeed(a Animator) float64 {
	if fs, ok := a.(FinishSpeeder); ok && fs.FinishSpeed() > 0 {
		return fs.FinishSpeed()
	}
	return 1
}

// AnimatorKind selects one of the animators held in an Animators set.
type AnimatorKind int

const (
	AnimatorSlide AnimatorKind = iota
	AnimatorParallax
	AnimatorCustom
)

func (k AnimatorKind) String() string {
	switch k {
	case AnimatorSlide:
		return "slide"
	case AnimatorParallax:
		return "parallax"
	case AnimatorCustom:
		return "custom"
	default:
		return fmt.Sprintf("AnimatorKind(%d)", int(k))
	}
}

func (k AnimatorKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *AnimatorKind) UnmarshalText(text []byte) error {
	switch strings.ToLower(strings.TrimSpace(string(text))) {
	case "slide", "default", "":
		*k = AnimatorSlide
	case "parallax":
		*k = AnimatorParallax
	case "custom":
		*k = AnimatorCustom
	default:
		return fmt.Errorf("unknown animator %q", string(text))
	}
	return nil
}

// Animators is the set of animator instances owned by a Controller.
// The custom animator is supplied by the host and kept for reuse.
type Animators struct {
	Slide    *Slide
	Parallax *Parallax
	Custom   Animator
}

// NewAnimators creates the built-in animators with their default settings.
func NewAnimators() Animators {
	return Animators{
		Slide:    NewSlide(),
		Parallax: NewParallax(),
	}
}

// For returns the animator for kind. A custom kind without a custom animator
// falls back to the slide animator.
func (a Animators) For(kind AnimatorKind) Animator {
	switch kind {
	case AnimatorParallax:
		if a.Parallax != nil {
			return a.Parallax
		}
	case AnimatorCustom:
		if a.Custom != nil {
			return a.Custom
		}
	}
	if a.Slide != nil {
		return a.Slide
	}
	return NewSlide()
}
