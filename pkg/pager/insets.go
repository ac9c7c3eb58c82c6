package pager

// applyInsets forwards the container's content inset to s if it scrolls.
// Explicit container insets win; otherwise screens that opt in get the
// layout guide's top and bottom lengths.
func (c *Controller) applyInsets(s Screen) {
	sc, ok := s.(Scrollable)
	if !ok {
		return
	}

	var inset Padding
	switch {
	case c.insets != nil:
		inset = *c.insets
	case sc.AdjustsContentInset():
		inset = Padding{Top: c.guide.Top, Bottom: c.guide.Bottom}
	default:
		return
	}

	AdjustContentInset(sc, inset)
}

// AdjustContentInset sets the content inset of sc and shifts its content
// offset by the change of the top inset, so the content resting under the
// old inset rests under the new one.
func AdjustContentInset(sc Scrollable, inset Padding) {
	old := sc.ContentInset()
	if old == inset {
		return
	}

	offset := sc.ContentOffset()
	sc.SetContentInset(inset)
	offset.Y -= inset.Top - old.Top
	sc.SetContentOffset(offset)
}
