package pager

import "testing"

type scrollScreen struct {
	testScreen
	inset   Padding
	offset  Point
	adjusts bool
}

func (s *scrollScreen) ContentInset() Padding         { return s.inset }
func (s *scrollScreen) SetContentInset(inset Padding) { s.inset = inset }
func (s *scrollScreen) ContentOffset() Point          { return s.offset }
func (s *scrollScreen) SetContentOffset(offset Point) { s.offset = offset }
func (s *scrollScreen) AdjustsContentInset() bool     { return s.adjusts }

func TestLayoutGuideInsets(t *testing.T) {
	list := &scrollScreen{testScreen: testScreen{name: "list"}, adjusts: true, offset: Point{Y: 40}}
	plain := &scrollScreen{testScreen: testScreen{name: "plain"}}

	c := New()
	c.SetScreens([]Screen{list, plain})
	c.Layout(testBounds, Padding{Top: 20, Bottom: 10})

	if list.inset != (Padding{Top: 20, Bottom: 10}) {
		t.Fatalf("inset = %+v, want top 20 bottom 10", list.inset)
	}
	if list.offset.Y != 20 {
		t.Fatalf("offset = %v, want 20", list.offset.Y)
	}

	// The guide grows; content keeps resting under it.
	c.Layout(testBounds, Padding{Top: 50, Bottom: 10})
	if list.inset.Top != 50 || list.offset.Y != -10 {
		t.Fatalf("after relayout inset = %+v, offset = %+v", list.inset, list.offset)
	}

	c.SelectScreen(1, false)
	if plain.inset != (Padding{}) {
		t.Fatalf("screen that does not adjust got inset %+v", plain.inset)
	}
}

func TestExplicitContentInsets(t *testing.T) {
	a := &scrollScreen{testScreen: testScreen{name: "a"}}
	b := &scrollScreen{testScreen: testScreen{name: "b"}}

	c := New()
	c.SetScreens([]Screen{a, b})
	c.Layout(testBounds, Padding{Top: 20})

	want := Padding{Top: 64, Bottom: 32}
	c.SetContentInsets(&want)

	if a.inset != want || b.inset != want {
		t.Fatalf("insets = %+v, %+v; want %+v on every screen", a.inset, b.inset, want)
	}

	want.Top = 0
	if a.inset.Top != 64 {
		t.Fatal("controller kept a reference to the caller's insets")
	}
}

func TestAdjustContentInsetUnchanged(t *testing.T) {
	s := &scrollScreen{inset: Padding{Top: 10}, offset: Point{Y: 99}}

	AdjustContentInset(s, Padding{Top: 10})

	if s.offset.Y != 99 {
		t.Fatalf("offset moved to %v for an unchanged inset", s.offset.Y)
	}
}
