package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/BrandonKowalski/pager/pkg/pager"
)

func TestLoadSettingsAnimatorOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pager.toml")
	if err := os.WriteFile(path, []byte("animator = \"slide\"\nslide_delta = 80\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	settings, err := loadSettings(path, "parallax")
	if err != nil {
		t.Fatalf("loadSettings() error = %v", err)
	}
	if settings.Animator != pager.AnimatorParallax {
		t.Fatalf("Animator = %v, want parallax", settings.Animator)
	}
	if settings.SlideDelta != 80 {
		t.Fatalf("SlideDelta = %v, want 80 from the file", settings.SlideDelta)
	}
}

func TestLoadSettingsRejectsUnknownAnimator(t *testing.T) {
	if _, err := loadSettings("", "zoom"); err == nil {
		t.Fatal("loadSettings() accepted an unknown animator")
	}
}

func TestDemoPages(t *testing.T) {
	pages := demoPages(8)
	if len(pages) != 8 {
		t.Fatalf("len(demoPages(8)) = %d", len(pages))
	}

	first, last := pages[0].(*colorPage), pages[7].(*colorPage)
	if first.name != "page-1" || last.bars != 8 {
		t.Fatalf("pages = %q .. %+v", first.name, last)
	}
	if pages[len(palette)].(*colorPage).color != first.color {
		t.Fatal("palette does not wrap")
	}
}

func TestBarRects(t *testing.T) {
	rects := barRects(3, 200, 90)
	if len(rects) != 3 {
		t.Fatalf("len(barRects) = %d", len(rects))
	}
	// 3 bars of 16 with 2 gaps of 12 is 72 wide, centered in 200.
	if rects[0].X != 64 || rects[2].X+rects[2].W != 136 {
		t.Fatalf("bars span %d..%d, want 64..136", rects[0].X, rects[2].X+rects[2].W)
	}
	if rects[0].H != 30 || rects[0].Y != 30 {
		t.Fatalf("bar height %d at %d, want 30 at 30", rects[0].H, rects[0].Y)
	}
}

func TestColorPageView(t *testing.T) {
	p := &colorPage{name: "page-2", bars: 2}

	lines := strings.Split(p.View(20, 6), "\n")
	if len(lines) != 6 {
		t.Fatalf("View() has %d lines, want 6", len(lines))
	}
	if strings.TrimSpace(lines[2]) != "page-2" {
		t.Fatalf("name line = %q", lines[2])
	}
	if strings.TrimSpace(lines[4]) != "█ █" {
		t.Fatalf("bars line = %q", lines[4])
	}
}

func TestCheckPageCount(t *testing.T) {
	for _, n := range []int{0, 1, 12} {
		if err := checkPageCount(n); err != nil {
			t.Fatalf("checkPageCount(%d) error = %v", n, err)
		}
	}
	if err := checkPageCount(-1); err == nil {
		t.Fatal("checkPageCount(-1) accepted a negative count")
	}
}

func TestLanguages(t *testing.T) {
	got := languages()
	for _, want := range []string{"en", "de"} {
		if !strings.Contains(got, want) {
			t.Fatalf("languages() = %q, want %s listed", got, want)
		}
	}
}
