package pager

// Screen is a displayable content unit managed as a child of the Controller.
// Screens are compared by identity, so implementations are usually pointers.
type Screen interface {
	// Layer returns the layer the container positions and fades.
	// It must return the same pointer for the lifetime of the screen.
	Layer() *Layer
}

// Lifecycle is implemented by screens that want to know when the container
// takes or releases ownership of them.
type Lifecycle interface {
	// DidAttach is called once the screen is the container's visible child.
	DidAttach(c *Controller)
	// DidDetach is called after the screen left the hierarchy and its parent.
	DidDetach(c *Controller)
}

// Scrollable is implemented by screens whose content is a scrollable region.
type Scrollable interface {
	ContentInset() Padding
	SetContentInset(inset Padding)
	ContentOffset() Point
	SetContentOffset(offset Point)
	// AdjustsContentInset reports whether the screen wants the container's
	// layout guide applied when no explicit content insets are configured.
	AdjustsContentInset() bool
}

// LayerScreen is a Screen that is nothing but its layer. Hosts that keep
// their content elsewhere can page through LayerScreens and look the
// content up by pointer.
type LayerScreen struct {
	L Layer
}

// Layer implements Screen.
func (s *LayerScreen) Layer() *Layer { return &s.L }
