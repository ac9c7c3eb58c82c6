package sdlpager

import (
	"time"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/BrandonKowalski/pager/pkg/pager"
	"github.com/BrandonKowalski/pager/pkg/pager/constants"
	"github.com/BrandonKowalski/pager/pkg/pager/internal/input"
)

func (h *Host) handleEvent(event sdl.Event) {
	switch e := event.(type) {
	case *sdl.QuitEvent:
		h.Stop()

	case *sdl.WindowEvent:
		switch e.Event {
		case sdl.WINDOWEVENT_SIZE_CHANGED:
			h.resized.Store(true)
		case sdl.WINDOWEVENT_FOCUS_LOST:
			h.feedPan(h.pan.Cancel())
			h.repeat.Reset()
		}

	case *sdl.MouseButtonEvent:
		if e.Which == sdl.TOUCH_MOUSEID || e.Button != sdl.BUTTON_LEFT {
			return
		}
		p := pager.Point{X: float64(e.X), Y: float64(e.Y)}
		if e.State == sdl.PRESSED {
			h.pan.Press(p, eventTime(e.Timestamp))
		} else {
			h.feedPan(h.pan.Release(p, eventTime(e.Timestamp)))
		}

	case *sdl.MouseMotionEvent:
		if e.Which == sdl.TOUCH_MOUSEID {
			return
		}
		h.feedPan(h.pan.Move(pager.Point{X: float64(e.X), Y: float64(e.Y)}, eventTime(e.Timestamp)))

	case *sdl.TouchFingerEvent:
		h.handleFinger(e)

	case *sdl.KeyboardEvent, *sdl.ControllerButtonEvent, *sdl.JoyHatEvent:
		if ie := h.processor.ProcessSDLEvent(event); ie != nil {
			h.handleButton(ie)
		}
	}
}

// handleFinger follows the first finger down and ignores the others.
func (h *Host) handleFinger(e *sdl.TouchFingerEvent) {
	w, hgt := h.win.Size()
	p := pager.Point{X: float64(e.X) * float64(w), Y: float64(e.Y) * float64(hgt)}
	at := eventTime(e.Timestamp)

	switch e.Type {
	case sdl.FINGERDOWN:
		if h.fingering {
			return
		}
		h.fingering = true
		h.finger = e.FingerID
		h.pan.Press(p, at)
	case sdl.FINGERMOTION:
		if h.fingering && e.FingerID == h.finger {
			h.feedPan(h.pan.Move(p, at))
		}
	case sdl.FINGERUP:
		if h.fingering && e.FingerID == h.finger {
			h.fingering = false
			h.feedPan(h.pan.Release(p, at))
		}
	}
}

func (h *Host) feedPan(ev pager.PanEvent, ok bool) {
	if ok {
		h.ctrl.HandlePan(ev)
	}
}

func (h *Host) handleButton(ie *input.InputEvent) {
	if h.repeat.SetHeld(ie.Button, ie.Pressed) {
		if ie.Pressed && !h.dragging() {
			h.ctrl.Swipe(swipeFor(ie.Button))
		}
		return
	}

	if !ie.Pressed {
		return
	}

	switch ie.Button {
	case constants.VirtualButtonB, constants.VirtualButtonMenu:
		h.Stop()
	case constants.VirtualButtonSelect:
		h.cycleAnimator()
	case constants.VirtualButtonStart:
		h.ctrl.SetAnimationEnabled(!h.ctrl.AnimationEnabled())
		h.log.Debug("Animation toggled", "enabled", h.ctrl.AnimationEnabled())
	}
}

// dragging reports whether a pointer owns the current transition. Paging
// buttons wait until it lets go.
func (h *Host) dragging() bool {
	return h.pan.Active() || h.devicePan.Active()
}

func (h *Host) handleDirectionalRepeats() {
	dir := h.repeat.Update()
	if h.dragging() {
		return
	}
	switch dir {
	case input.DirectionLeft:
		h.ctrl.Swipe(pager.SwipeRight)
	case input.DirectionRight:
		h.ctrl.Swipe(pager.SwipeLeft)
	}
}

// cycleAnimator switches between the built-in animators for the next transition.
func (h *Host) cycleAnimator() {
	next := nextAnimator(h.ctrl.Animator(), h.ctrl.Animators())
	h.ctrl.SetAnimatorKind(next)
	h.log.Debug("Animator changed", "animator", next.String())
}

func nextAnimator(current pager.Animator, set *pager.Animators) pager.AnimatorKind {
	if current == pager.Animator(set.Slide) {
		return pager.AnimatorParallax
	}
	return pager.AnimatorSlide
}

// swipeFor maps a paging button to a swipe. Pressing toward the right
// pulls the next page in, like swiping left on a touchscreen.
func swipeFor(b constants.VirtualButton) pager.SwipeDirection {
	switch b {
	case constants.VirtualButtonRight, constants.VirtualButtonR1:
		return pager.SwipeLeft
	default:
		return pager.SwipeRight
	}
}

func eventTime(timestamp uint32) time.Duration {
	return time.Duration(timestamp) * time.Millisecond
}
