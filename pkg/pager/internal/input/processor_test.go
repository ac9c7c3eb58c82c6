package input

import (
	"testing"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/BrandonKowalski/pager/pkg/pager/constants"
)

func TestProcessKeyboard(t *testing.T) {
	p := NewProcessor()

	ev := p.ProcessSDLEvent(&sdl.KeyboardEvent{
		Type:   sdl.KEYDOWN,
		State:  sdl.PRESSED,
		Keysym: sdl.Keysym{Sym: sdl.K_RIGHT},
	})
	if ev == nil || ev.Button != constants.VirtualButtonRight || !ev.Pressed {
		t.Fatalf("ProcessSDLEvent() = %+v, want right pressed", ev)
	}

	repeat := p.ProcessSDLEvent(&sdl.KeyboardEvent{
		Type:   sdl.KEYDOWN,
		State:  sdl.PRESSED,
		Repeat: 1,
		Keysym: sdl.Keysym{Sym: sdl.K_RIGHT},
	})
	if repeat != nil {
		t.Fatalf("key repeat produced %+v", repeat)
	}

	unknown := p.ProcessSDLEvent(&sdl.KeyboardEvent{State: sdl.PRESSED, Keysym: sdl.Keysym{Sym: sdl.K_F5}})
	if unknown != nil {
		t.Fatalf("unmapped key produced %+v", unknown)
	}
}

func TestProcessControllerButton(t *testing.T) {
	p := NewProcessor()

	ev := p.ProcessSDLEvent(&sdl.ControllerButtonEvent{
		Button: uint8(sdl.CONTROLLER_BUTTON_LEFTSHOULDER),
		State:  sdl.RELEASED,
	})
	if ev == nil || ev.Button != constants.VirtualButtonL1 || ev.Pressed {
		t.Fatalf("ProcessSDLEvent() = %+v, want L1 released", ev)
	}
}

func TestProcessHat(t *testing.T) {
	p := NewProcessor()

	ev := p.ProcessSDLEvent(&sdl.JoyHatEvent{Value: sdl.HAT_LEFT})
	if ev == nil || ev.Button != constants.VirtualButtonLeft || !ev.Pressed {
		t.Fatalf("hat left = %+v", ev)
	}

	ev = p.ProcessSDLEvent(&sdl.JoyHatEvent{Value: sdl.HAT_CENTERED})
	if ev == nil || ev.Button != constants.VirtualButtonLeft || ev.Pressed {
		t.Fatalf("hat centered = %+v, want left released", ev)
	}

	if ev := p.ProcessSDLEvent(&sdl.JoyHatEvent{Value: sdl.HAT_CENTERED}); ev != nil {
		t.Fatalf("second centered = %+v, want nil", ev)
	}
}
