package pager

import (
	"log/slog"
	"slices"
	"time"

	"go.uber.org/atomic"

	"github.com/BrandonKowalski/pager/pkg/pager/internal/logging"
)

// Controller is a page container. It owns an ordered list of screens, shows
// one of them at a time and animates the switch between them.
//
// All methods must be called from the UI goroutine, except SetSwipeEnabled
// and SetAnimationEnabled which may be called from anywhere.
type Controller struct {
	screens []Screen
	st      state

	pending    int
	hasPending bool

	// hierarchy holds the attached screens, bottom to top.
	hierarchy []Screen

	loaded       bool
	initialIndex int
	bounds       Rect
	guide        Padding
	padding      Padding
	insets       *Padding

	animators    Animators
	animatorKind AnimatorKind
	observer     Observer

	swipeEnabled     *atomic.Bool
	animationEnabled *atomic.Bool

	completionThreshold float64
	velocityThreshold   float64
	interactiveTimeout  time.Duration

	log *slog.Logger
}

// New creates an empty Controller with DefaultSettings.
func New() *Controller {
	return NewWithSettings(DefaultSettings())
}

// NewWithSettings creates an empty Controller configured by settings.
func NewWithSettings(settings Settings) *Controller {
	settings.normalize()

	return &Controller{
		st:                  stateEmpty{},
		initialIndex:        settings.InitialIndex,
		padding:             settings.Padding,
		animators:           settings.animators(),
		animatorKind:        settings.Animator,
		swipeEnabled:        atomic.NewBool(settings.SwipeEnabled),
		animationEnabled:    atomic.NewBool(settings.AnimationEnabled),
		completionThreshold: settings.CompletionThreshold,
		velocityThreshold:   settings.VelocityThreshold,
		interactiveTimeout:  settings.InteractiveTimeout.Duration,
		log:                 logging.Internal(),
	}
}

// Screens returns a copy of the screen list.
func (c *Controller) Screens() []Screen {
	return slices.Clone(c.screens)
}

// SelectedIndex returns the index of the selected screen. While a
// transition runs, the selected screen is still its origin.
func (c *Controller) SelectedIndex() (int, bool) {
	return c.st.selected()
}

// SelectedScreen returns the selected screen, or nil when nothing is selected.
func (c *Controller) SelectedScreen() Screen {
	if i, ok := c.st.selected(); ok {
		return c.screens[i]
	}
	return nil
}

// PendingIndex returns the request that will be replayed once the running
// transition resolves.
func (c *Controller) PendingIndex() (int, bool) {
	return c.pending, c.hasPending
}

// Phase returns what the transition engine is currently doing.
func (c *Controller) Phase() Phase {
	if run, ok := c.st.(stateRunning); ok {
		return run.t.phase
	}
	return PhaseIdle
}

// IsAnimating reports whether a transition is in flight.
func (c *Controller) IsAnimating() bool {
	_, ok := c.st.(stateRunning)
	return ok
}

// Transition describes the transition in flight. ok is false when idle.
func (c *Controller) Transition() (from, to int, dir Direction, progress float64, ok bool) {
	run, running := c.st.(stateRunning)
	if !running {
		return 0, 0, Forward, 0, false
	}
	t := run.t
	return t.from, t.to, t.dir, t.progress, true
}

// Hierarchy returns the attached screens in drawing order, bottom first.
func (c *Controller) Hierarchy() []Screen {
	return slices.Clone(c.hierarchy)
}

// Bounds returns the area screens are laid out in: the layout bounds
// minus the container padding.
func (c *Controller) Bounds() Rect {
	return c.bounds.Inset(c.padding)
}

// SetObserver replaces the lifecycle observer. Nil removes it.
func (c *Controller) SetObserver(o Observer) {
	c.observer = o
}

// SetAnimatorKind chooses which animator the next transition uses.
// A running transition keeps the animator it started with.
func (c *Controller) SetAnimatorKind(kind AnimatorKind) {
	c.animatorKind = kind
}

// SetCustomAnimator stores a host supplied animator and selects it.
func (c *Controller) SetCustomAnimator(a Animator) {
	c.animators.Custom = a
	c.animatorKind = AnimatorCustom
}

// Animators returns the animator set, so hosts can tune the built-ins.
func (c *Controller) Animators() *Animators {
	return &c.animators
}

// Animator returns the animator the next transition will use.
func (c *Controller) Animator() Animator {
	return c.animators.For(c.animatorKind)
}

func (c *Controller) SetSwipeEnabled(enabled bool) {
	c.swipeEnabled.Store(enabled)
}

func (c *Controller) SwipeEnabled() bool {
	return c.swipeEnabled.Load()
}

// SetAnimationEnabled turns every selection into an immediate one when false.
func (c *Controller) SetAnimationEnabled(enabled bool) {
	c.animationEnabled.Store(enabled)
}

func (c *Controller) AnimationEnabled() bool {
	return c.animationEnabled.Load()
}

// SetInitialIndex sets the screen shown on first layout when the host has
// not selected one. Out-of-range values fall back to 0.
func (c *Controller) SetInitialIndex(index int) {
	c.initialIndex = index
}

// SetPadding insets the area screens are laid out in.
func (c *Controller) SetPadding(p Padding) {
	c.padding = p
	c.relayout()
}

// SetContentInsets forces the content inset of every scrollable screen.
// Nil returns to deriving insets from the layout guide.
func (c *Controller) SetContentInsets(insets *Padding) {
	if insets != nil {
		v := *insets
		insets = &v
	}
	c.insets = insets
	for _, s := range c.screens {
		c.applyInsets(s)
	}
}

// SetScreens replaces all screens. The previously selected screen stays
// selected when it is part of the new list, otherwise the first screen is
// shown. A running transition is dropped without notifications.
func (c *Controller) SetScreens(screens []Screen) {
	var previous Screen
	_, hadSelection := c.st.selected()
	if hadSelection {
		previous = c.SelectedScreen()
	}

	if run, ok := c.st.(stateRunning); ok {
		t := run.t
		t.animator.Finish(t.fromScreen.Layer(), t.toScreen.Layer())
		c.st = stateIdle{index: t.from}
	}
	c.hasPending = false

	next := slices.Clone(screens)
	keep := -1
	if previous != nil {
		keep = slices.Index(next, previous)
	}

	for _, s := range slices.Clone(c.hierarchy) {
		if keep >= 0 && s == previous {
			continue
		}
		c.detach(s)
	}

	c.screens = next

	switch {
	case len(next) == 0:
		c.st = stateEmpty{}
	case !hadSelection:
		c.st = stateEmpty{}
		if c.loaded {
			c.display(c.clampedInitialIndex())
		}
	case keep >= 0:
		// Still attached, so no lifecycle callbacks.
		c.st = stateIdle{index: keep}
		previous.Layer().reset(c.Bounds())
		c.applyInsets(previous)
	default:
		c.display(0)
	}

	c.log.Debug("Screens replaced", "count", len(next), "kept_selection", keep >= 0)
}

// Layout tells the container its bounds and the layout guide (safe area).
// The first call selects the initial screen if the host has not already
// selected one.
func (c *Controller) Layout(bounds Rect, guide Padding) {
	c.bounds = bounds
	c.guide = guide

	if !c.loaded {
		c.loaded = true
		if _, ok := c.st.(stateEmpty); ok && len(c.screens) > 0 {
			c.display(c.clampedInitialIndex())
			return
		}
	}

	c.relayout()
}

func (c *Controller) relayout() {
	bounds := c.Bounds()

	// A running transition keeps the bounds it started with. commit and
	// cancel settle the remaining screen on the new bounds.
	if st, ok := c.st.(stateIdle); ok {
		c.screens[st.index].Layer().reset(bounds)
	}

	for _, s := range c.hierarchy {
		c.applyInsets(s)
	}
}

func (c *Controller) clampedInitialIndex() int {
	if c.initialIndex < 0 || c.initialIndex >= len(c.screens) {
		return 0
	}
	return c.initialIndex
}

// SelectScreen shows screens[index].
//
// The first selection is always immediate and fires no notifications.
// Afterwards an unanimated selection (or one made while animation is
// disabled) tears down any running transition and jumps to the target.
// An animated selection starts a transition, or, when one is running,
// replaces the pending request so the container converges on the latest
// one.
//
// SelectScreen panics if there are no screens or index is out of range.
func (c *Controller) SelectScreen(index int, animated bool) {
	assert(len(c.screens) != 0, "SelectScreen called without screens")
	assert(index >= 0 && index < len(c.screens), "SelectScreen index %d out of range [0, %d)", index, len(c.screens))

	if _, ok := c.st.(stateEmpty); ok {
		c.display(index)
		return
	}

	if !animated || !c.animationEnabled.Load() {
		c.jump(index)
		return
	}

	c.request(index)
}

// request starts an animated transition to index, or queues it.
func (c *Controller) request(index int) {
	switch st := c.st.(type) {
	case stateRunning:
		c.pending = index
		c.hasPending = true
		c.log.Debug("Queued screen request", "index", index, "running_to", st.t.to)
	case stateIdle:
		if st.index == index {
			return
		}
		c.begin(st.index, index, PhaseAnimating)
	}
}

// latestRequest is the index the container is converging on.
func (c *Controller) latestRequest() (int, bool) {
	if c.hasPending {
		return c.pending, true
	}
	if run, ok := c.st.(stateRunning); ok {
		return run.t.to, true
	}
	return c.st.selected()
}

// jump displays index without animation.
func (c *Controller) jump(index int) {
	if run, ok := c.st.(stateRunning); ok {
		c.hasPending = false
		c.cancel(run.t, false)
	}

	current, _ := c.st.selected()
	if current == index {
		return
	}

	target := c.screens[index]
	c.notifyWillMove(target)
	c.detach(c.screens[current])
	c.display(index)
	c.notifyDidMove(target)
}

// display attaches screens[index] at rest and makes it the selection.
func (c *Controller) display(index int) {
	s := c.screens[index]
	c.attach(s)
	s.Layer().reset(c.Bounds())
	c.applyInsets(s)
	c.st = stateIdle{index: index}

	if lc, ok := s.(Lifecycle); ok {
		lc.DidAttach(c)
	}
	c.log.Debug("Displayed screen", "index", index)
}

func (c *Controller) attach(s Screen) {
	if slices.Contains(c.hierarchy, s) {
		return
	}
	c.hierarchy = append(c.hierarchy, s)
	s.Layer().attached = true
}

func (c *Controller) detach(s Screen) {
	i := slices.Index(c.hierarchy, s)
	if i < 0 {
		return
	}
	c.hierarchy = slices.Delete(c.hierarchy, i, i+1)
	s.Layer().attached = false

	if lc, ok := s.(Lifecycle); ok {
		lc.DidDetach(c)
	}
}

func (c *Controller) notifyWillMove(to Screen) {
	if c.observer != nil {
		c.observer.WillMove(c, to)
	}
}

func (c *Controller) notifyDidMove(to Screen) {
	if c.observer != nil {
		c.observer.DidMove(c, to)
	}
}

func (c *Controller) notifyAlongside(to Screen, progress float64) {
	if ao, ok := c.observer.(AlongsideObserver); ok {
		ao.AlongsideTransition(c, to, progress)
	}
}
