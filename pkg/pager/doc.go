// Package pager provides a page container: a controller that holds an
// ordered set of screens, shows one at a time and animates the switch
// between them.
//
// Screens change by selection (SelectScreen), by discrete swipes (Swipe)
// or by dragging (HandlePan, usually fed by a PanRecognizer). Only one
// transition runs at a time. Animated requests that arrive while one is
// running collapse into a single pending request that is replayed when the
// running transition commits or cancels, so the container always converges
// on the most recent request.
//
// The Controller never blocks and owns no goroutines. The host calls
// Advance once per frame with the elapsed time and composites the layers of
// Hierarchy in order. The sdlpager package is such a host.
//
// # Basic Usage
//
//	c := pager.New()
//	c.SetScreens([]pager.Screen{home, library, settings})
//	c.SetObserver(pager.ObserverFuncs{
//	    OnDidMove: func(c *pager.Controller, to pager.Screen) { ... },
//	})
//	c.Layout(pager.Rect{W: 640, H: 480}, pager.Padding{})
//
//	c.SelectScreen(2, true)
//	for c.IsAnimating() {
//	    c.Advance(16 * time.Millisecond)
//	}
//
// # Animators
//
// Transitions are drawn by an Animator. Slide (the default) and Parallax
// are built in; SetCustomAnimator installs any other implementation.
// Changing the animator affects the next transition only.
package pager
