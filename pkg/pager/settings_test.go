package pager

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeSettings(t *testing.T, content string) string {
	t.Helper()
	return writeSettingsFile(t, "pager.toml", content)
}

func writeSettingsFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadSettings(t *testing.T) {
	path := writeSettings(t, `
animator = "parallax"
animation_duration = "400ms"
parallax_opacity = true
completion_threshold = 0.6
interactive_timeout = "5s"
swipe_enabled = false

[padding]
top = 12
bottom = 8
`)

	s, err := LoadSettings(path)
	if err != nil {
		t.Fatal(err)
	}

	if s.Animator != AnimatorParallax {
		t.Errorf("Animator = %v, want parallax", s.Animator)
	}
	if s.AnimationDuration.Duration != 400*time.Millisecond {
		t.Errorf("AnimationDuration = %v, want 400ms", s.AnimationDuration)
	}
	if s.CompletionThreshold != 0.6 {
		t.Errorf("CompletionThreshold = %v, want 0.6", s.CompletionThreshold)
	}
	if s.InteractiveTimeout.Duration != 5*time.Second {
		t.Errorf("InteractiveTimeout = %v, want 5s", s.InteractiveTimeout)
	}
	if s.SwipeEnabled {
		t.Error("SwipeEnabled = true, want false")
	}
	if s.Padding != (Padding{Top: 12, Bottom: 8}) {
		t.Errorf("Padding = %+v", s.Padding)
	}
	// Untouched keys keep their defaults.
	if s.VelocityThreshold != DefaultSettings().VelocityThreshold {
		t.Errorf("VelocityThreshold = %v, want default", s.VelocityThreshold)
	}

	c := NewWithSettings(s)
	p, ok := c.Animator().(*Parallax)
	if !ok {
		t.Fatalf("Animator() = %T, want *Parallax", c.Animator())
	}
	if !p.Opacity || p.Duration() != 400*time.Millisecond {
		t.Errorf("parallax = %+v, want opacity and 400ms", p)
	}
	if c.SwipeEnabled() {
		t.Error("controller swipe enabled, want disabled")
	}
}

func TestLoadSettingsYAML(t *testing.T) {
	path := writeSettingsFile(t, "pager.yaml", `
animator: parallax
animation_duration: 300ms
velocity_threshold: 450
padding:
  left: 4
  right: 4
`)

	s, err := LoadSettings(path)
	if err != nil {
		t.Fatal(err)
	}

	if s.Animator != AnimatorParallax || s.AnimationDuration.Duration != 300*time.Millisecond {
		t.Errorf("animator = %v for %v, want parallax for 300ms", s.Animator, s.AnimationDuration)
	}
	if s.VelocityThreshold != 450 {
		t.Errorf("VelocityThreshold = %v, want 450", s.VelocityThreshold)
	}
	if s.Padding != (Padding{Left: 4, Right: 4}) {
		t.Errorf("Padding = %+v", s.Padding)
	}
	if !s.SwipeEnabled {
		t.Error("SwipeEnabled lost its default")
	}

	_, err = LoadSettings(writeSettingsFile(t, "bad.yml", "animator: [slide"))
	if !IsInfrastructureError(err) {
		t.Fatalf("error = %v, want an infrastructure error", err)
	}
}

func TestLoadSettingsMissingFile(t *testing.T) {
	s, err := LoadSettings(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatal(err)
	}
	if s != DefaultSettings() {
		t.Fatalf("settings = %+v, want defaults", s)
	}
}

func TestLoadSettingsErrors(t *testing.T) {
	tests := map[string]string{
		"syntax":   `animator = `,
		"duration": `animation_duration = "soon"`,
		"animator": `animator = "wobble"`,
	}

	for name, content := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := LoadSettings(writeSettings(t, content))
			if err == nil {
				t.Fatal("expected an error")
			}
			if !IsInfrastructureError(err) {
				t.Fatalf("error %v is not an infrastructure error", err)
			}
		})
	}
}

func TestSettingsNormalize(t *testing.T) {
	s := DefaultSettings()
	s.CompletionThreshold = 3
	s.VelocityThreshold = -1
	s.InteractiveTimeout = Duration{-time.Second}
	s.ParallaxSpeed = 0
	s.InitialIndex = -4

	s.normalize()

	d := DefaultSettings()
	if s.CompletionThreshold != d.CompletionThreshold ||
		s.VelocityThreshold != d.VelocityThreshold ||
		s.ParallaxSpeed != d.ParallaxSpeed {
		t.Fatalf("normalize left invalid values: %+v", s)
	}
	if s.InteractiveTimeout.Duration != 0 || s.InitialIndex != 0 {
		t.Fatalf("normalize = %+v", s)
	}
}
