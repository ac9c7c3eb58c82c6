package input

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/BrandonKowalski/pager/pkg/pager/constants"
)

// InputEvent is a physical input resolved to a virtual button.
type InputEvent struct {
	Button  constants.VirtualButton
	Pressed bool
}

// Processor maps keyboard, controller and joystick hat events to virtual buttons.
type Processor struct {
	hatButton constants.VirtualButton
}

func NewProcessor() *Processor {
	return &Processor{}
}

// ProcessSDLEvent returns the virtual button event for e, or nil when e is
// not a button the pager reacts to. Key repeats are dropped; held buttons
// repeat through DirectionalInput instead.
func (p *Processor) ProcessSDLEvent(e sdl.Event) *InputEvent {
	switch ev := e.(type) {
	case *sdl.KeyboardEvent:
		if ev.Repeat != 0 {
			return nil
		}
		return buttonEvent(KeyButton(ev.Keysym.Sym), ev.State == sdl.PRESSED)

	case *sdl.ControllerButtonEvent:
		return buttonEvent(ControllerButton(sdl.GameControllerButton(ev.Button)), ev.State == sdl.PRESSED)

	case *sdl.JoyHatEvent:
		return p.hat(ev.Value)
	}
	return nil
}

func buttonEvent(b constants.VirtualButton, pressed bool) *InputEvent {
	if b == constants.VirtualButtonUnassigned {
		return nil
	}
	return &InputEvent{Button: b, Pressed: pressed}
}

// hat turns hat positions into press and release pairs. A hat only reports
// its new position, so the release is synthesized from the last one.
func (p *Processor) hat(value uint8) *InputEvent {
	var b constants.VirtualButton
	switch value {
	case sdl.HAT_LEFT:
		b = constants.VirtualButtonLeft
	case sdl.HAT_RIGHT:
		b = constants.VirtualButtonRight
	case sdl.HAT_UP:
		b = constants.VirtualButtonUp
	case sdl.HAT_DOWN:
		b = constants.VirtualButtonDown
	}

	if b == constants.VirtualButtonUnassigned {
		if p.hatButton == constants.VirtualButtonUnassigned {
			return nil
		}
		released := p.hatButton
		p.hatButton = constants.VirtualButtonUnassigned
		return &InputEvent{Button: released, Pressed: false}
	}

	p.hatButton = b
	return &InputEvent{Button: b, Pressed: true}
}

func KeyButton(key sdl.Keycode) constants.VirtualButton {
	switch key {
	case sdl.K_LEFT:
		return constants.VirtualButtonLeft
	case sdl.K_RIGHT:
		return constants.VirtualButtonRight
	case sdl.K_UP:
		return constants.VirtualButtonUp
	case sdl.K_DOWN:
		return constants.VirtualButtonDown
	case sdl.K_PAGEUP:
		return constants.VirtualButtonL1
	case sdl.K_PAGEDOWN:
		return constants.VirtualButtonR1
	case sdl.K_RETURN, sdl.K_a:
		return constants.VirtualButtonA
	case sdl.K_BACKSPACE, sdl.K_b:
		return constants.VirtualButtonB
	case sdl.K_ESCAPE:
		return constants.VirtualButtonMenu
	case sdl.K_SPACE:
		return constants.VirtualButtonStart
	case sdl.K_TAB:
		return constants.VirtualButtonSelect
	default:
		return constants.VirtualButtonUnassigned
	}
}

func ControllerButton(b sdl.GameControllerButton) constants.VirtualButton {
	switch b {
	case sdl.CONTROLLER_BUTTON_DPAD_LEFT:
		return constants.VirtualButtonLeft
	case sdl.CONTROLLER_BUTTON_DPAD_RIGHT:
		return constants.VirtualButtonRight
	case sdl.CONTROLLER_BUTTON_DPAD_UP:
		return constants.VirtualButtonUp
	case sdl.CONTROLLER_BUTTON_DPAD_DOWN:
		return constants.VirtualButtonDown
	case sdl.CONTROLLER_BUTTON_LEFTSHOULDER:
		return constants.VirtualButtonL1
	case sdl.CONTROLLER_BUTTON_RIGHTSHOULDER:
		return constants.VirtualButtonR1
	case sdl.CONTROLLER_BUTTON_A:
		return constants.VirtualButtonA
	case sdl.CONTROLLER_BUTTON_B:
		return constants.VirtualButtonB
	case sdl.CONTROLLER_BUTTON_START:
		return constants.VirtualButtonStart
	case sdl.CONTROLLER_BUTTON_BACK:
		return constants.VirtualButtonSelect
	case sdl.CONTROLLER_BUTTON_GUIDE:
		return constants.VirtualButtonMenu
	default:
		return constants.VirtualButtonUnassigned
	}
}
