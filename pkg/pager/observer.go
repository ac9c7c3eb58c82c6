package pager

// Observer receives lifecycle notifications from a Controller.
type Observer interface {
	WillMove(c *Controller, to Screen)
	DidMove(c *Controller, to Screen)
}

// AlongsideObserver is an optional extension of Observer. It is called on
// every progress step of a running transition so the host can update its
// own UI (a page indicator, a title) in lockstep with the animation.
type AlongsideObserver interface {
	AlongsideTransition(c *Controller, to Screen, progress float64)
}

// ObserverFuncs builds an Observer out of plain functions. Nil fields are skipped.
type ObserverFuncs struct {
	OnWillMove  func(c *Controller, to Screen)
	OnDidMove   func(c *Controller, to Screen)
	OnAlongside func(c *Controller, to Screen, progress float64)
}

func (o ObserverFuncs) WillMove(c *Controller, to Screen) {
	if o.OnWillMove != nil {
		o.OnWillMove(c, to)
	}
}

func (o ObserverFuncs) DidMove(c *Controller, to Screen) {
	if o.OnDidMove != nil {
		o.OnDidMove(c, to)
	}
}

func (o ObserverFuncs) AlongsideTransition(c *Controller, to Screen, progress float64) {
	if o.OnAlongside != nil {
		o.OnAlongside(c, to, progress)
	}
}
