package pager

// SwipeDirection is the direction of a discrete swipe.
type SwipeDirection int

const (
	// SwipeLeft pulls the next screen in.
	SwipeLeft SwipeDirection = iota
	// SwipeRight brings the previous screen back.
	SwipeRight
)

func (d SwipeDirection) String() string {
	if d == SwipeLeft {
		return "left"
	}
	return "right"
}

// Swipe requests the neighbour of the screen the container is converging
// on. It reports whether a request was made; swipes past either end and
// swipes while swiping is disabled are ignored.
func (c *Controller) Swipe(dir SwipeDirection) bool {
	if !c.swipeEnabled.Load() || len(c.screens) == 0 {
		return false
	}

	base, ok := c.latestRequest()
	if !ok {
		return false
	}

	target := base + 1
	if dir == SwipeRight {
		target = base - 1
	}
	if target < 0 || target >= len(c.screens) {
		c.log.Debug("Swipe past the last screen ignored", "index", base, "direction", dir.String())
		return false
	}

	c.SelectScreen(target, true)
	return true
}
