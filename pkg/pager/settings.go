package pager

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/BrandonKowalski/pager/pkg/pager/internal/logging"
)

// Duration is a time.Duration that reads and writes as a string like "250ms".
type Duration struct {
	time.Duration
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(strings.TrimSpace(string(text)))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

// Settings configures a Controller. The zero value is not useful; start
// from DefaultSettings.
type Settings struct {
	Animator          AnimatorKind `toml:"animator" yaml:"animator"`
	AnimationDuration Duration     `toml:"animation_duration" yaml:"animation_duration"`
	SlideDelta        float64      `toml:"slide_delta" yaml:"slide_delta"`
	ParallaxSpeed     float64      `toml:"parallax_speed" yaml:"parallax_speed"`
	ParallaxOpacity   bool         `toml:"parallax_opacity" yaml:"parallax_opacity"`

	// CompletionThreshold is the progress past which a released drag commits.
	CompletionThreshold float64 `toml:"completion_threshold" yaml:"completion_threshold"`
	// VelocityThreshold is the release speed, in container units per second
	// along the direction of travel, that commits regardless of progress.
	VelocityThreshold float64 `toml:"velocity_threshold" yaml:"velocity_threshold"`
	// InteractiveTimeout releases a drag that stopped reporting samples.
	// Zero disables it.
	InteractiveTimeout Duration `toml:"interactive_timeout" yaml:"interactive_timeout"`
	// PanSlop is the distance a pointer must travel before a drag begins.
	PanSlop float64 `toml:"pan_slop" yaml:"pan_slop"`

	SwipeEnabled     bool `toml:"swipe_enabled" yaml:"swipe_enabled"`
	AnimationEnabled bool `toml:"animation_enabled" yaml:"animation_enabled"`
	InitialIndex     int  `toml:"initial_index" yaml:"initial_index"`

	Padding Padding `toml:"padding" yaml:"padding"`

	// RepeatDelay and RepeatInterval time repeated swipes while a direction is held.
	RepeatDelay    Duration `toml:"repeat_delay" yaml:"repeat_delay"`
	RepeatInterval Duration `toml:"repeat_interval" yaml:"repeat_interval"`

	LogLevel string `toml:"log_level" yaml:"log_level"`
}

// DefaultSettings returns the settings used when nothing is configured.
func DefaultSettings() Settings {
	return Settings{
		Animator:            AnimatorSlide,
		AnimationDuration:   Duration{DefaultAnimationDuration},
		SlideDelta:          150,
		ParallaxSpeed:       DefaultParallaxSpeed,
		CompletionThreshold: 0.5,
		VelocityThreshold:   300,
		InteractiveTimeout:  Duration{3 * time.Second},
		PanSlop:             10,
		SwipeEnabled:        true,
		AnimationEnabled:    true,
		RepeatDelay:         Duration{300 * time.Millisecond},
		RepeatInterval:      Duration{150 * time.Millisecond},
		LogLevel:            "info",
	}
}

// LoadSettings reads settings from path on top of DefaultSettings. Files
// ending in .yaml or .yml are YAML, anything else is TOML. A missing file
// yields the defaults.
func LoadSettings(path string) (Settings, error) {
	settings := DefaultSettings()

	var err error
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = decodeYAML(path, &settings)
	default:
		err = decodeTOML(path, &settings)
	}
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return DefaultSettings(), nil
		}
		return DefaultSettings(), NewInfrastructureError("load_settings", err)
	}

	settings.normalize()
	return settings, nil
}

func decodeTOML(path string, settings *Settings) error {
	md, err := toml.DecodeFile(path, settings)
	if err != nil {
		return err
	}

	for _, key := range md.Undecoded() {
		logging.Internal().Warn("Ignoring unknown settings key", "key", key.String(), "path", path)
	}
	return nil
}

func decodeYAML(path string, settings *Settings) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, settings)
}

// normalize replaces values that would break the state machine with defaults.
func (s *Settings) normalize() {
	d := DefaultSettings()

	if s.AnimationDuration.Duration < 0 {
		s.AnimationDuration = d.AnimationDuration
	}
	if s.CompletionThreshold <= 0 || s.CompletionThreshold >= 1 {
		s.CompletionThreshold = d.CompletionThreshold
	}
	if s.VelocityThreshold < 0 {
		s.VelocityThreshold = d.VelocityThreshold
	}
	if s.InteractiveTimeout.Duration < 0 {
		s.InteractiveTimeout = Duration{}
	}
	if s.PanSlop < 0 {
		s.PanSlop = 0
	}
	if s.ParallaxSpeed <= 0 {
		s.ParallaxSpeed = d.ParallaxSpeed
	}
	if s.InitialIndex < 0 {
		s.InitialIndex = 0
	}
}

// animators builds the built-in animators described by s.
func (s Settings) animators() Animators {
	a := NewAnimators()
	a.Slide.Length = s.AnimationDuration.Duration
	if s.SlideDelta > 0 {
		a.Slide.Delta = s.SlideDelta
	}
	a.Parallax.Length = s.AnimationDuration.Duration
	a.Parallax.Speed = s.ParallaxSpeed
	a.Parallax.Opacity = s.ParallaxOpacity
	return a
}
