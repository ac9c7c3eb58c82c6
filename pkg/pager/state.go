package pager

import "time"

// Phase describes what the transition engine is doing.
type Phase int

const (
	// PhaseIdle means no transition is in flight.
	PhaseIdle Phase = iota
	// PhaseAnimating means a transition plays on its own, either from the
	// start or after an interactive drag was released.
	PhaseAnimating
	// PhaseInteractive means a drag is driving the progress sample by sample.
	PhaseInteractive
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseAnimating:
		return "animating"
	case PhaseInteractive:
		return "interactive"
	default:
		return "unknown"
	}
}

// state is one of stateEmpty, stateIdle or stateRunning.
type state interface {
	selected() (int, bool)
}

// stateEmpty: no screen has been selected yet.
type stateEmpty struct{}

func (stateEmpty) selected() (int, bool) { return 0, false }

// stateIdle: a screen is displayed and nothing moves.
type stateIdle struct {
	index int
}

func (s stateIdle) selected() (int, bool) { return s.index, true }

// stateRunning: exactly one transition is live. Its origin stays the
// selected screen until the transition commits.
type stateRunning struct {
	t *transition
}

func (s stateRunning) selected() (int, bool) { return s.t.from, true }

type transition struct {
	from, to             int
	fromScreen, toScreen Screen
	dir                  Direction
	animator             Animator
	bounds               Rect

	phase    Phase
	progress float64
	// goal is 1 when playing toward a commit and 0 when playing back.
	goal  float64
	speed float64
	// quiet is how long an interactive transition went without a pan sample.
	quiet time.Duration
}
