// Package config provides configuration loading and access for the viewer.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"image/color"
	"math"
	"os"
	"time"

	colorful "github.com/lucasb-eyer/go-colorful"
	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all viewer configuration parameters.
type Config struct {
	Screen     ScreenConfig     `yaml:"screen"`
	Breakpoint BreakpointConfig `yaml:"breakpoint"`
	Trail      TrailConfig      `yaml:"trail"`
	Marker     MarkerConfig     `yaml:"marker"`
	Chat       ChatConfig       `yaml:"chat"`
	Background BackgroundConfig `yaml:"background"`
	UI         UIConfig         `yaml:"ui"`
	Telemetry  TelemetryConfig  `yaml:"telemetry"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// ScreenConfig holds display settings.
type ScreenConfig struct {
	Width     int    `yaml:"width"`
	Height    int    `yaml:"height"`
	TargetFPS int    `yaml:"target_fps"`
	Title     string `yaml:"title"`
}

// BreakpointConfig controls when pointer effects are switched off.
type BreakpointConfig struct {
	MobileMaxWidth int `yaml:"mobile_max_width"` // Effects disabled at or below this window width
}

// TrailConfig holds the pointer-trail particle parameters.
// Velocities and rotation speeds are per tick, not per second.
type TrailConfig struct {
	MinDistance   float64  `yaml:"min_distance"`   // Pointer movement (px) needed before anything spawns
	StepSpacing   float64  `yaml:"step_spacing"`   // Pixels of movement per interpolation point
	MaxSteps      int      `yaml:"max_steps"`      // Interpolation points per tick, upper bound
	SpawnChance   float64  `yaml:"spawn_chance"`   // Probability of a star per interpolation point
	Jitter        float64  `yaml:"jitter"`         // Spawn offset range (+/- px) on each axis
	DriftX        float64  `yaml:"drift_x"`        // VelX uniform in [-drift_x, drift_x]
	FallMin       float64  `yaml:"fall_min"`       // VelY lower bound (positive = down)
	FallMax       float64  `yaml:"fall_max"`       // VelY upper bound
	Decay         float64  `yaml:"decay"`          // Life lost per tick
	SizeMin       float64  `yaml:"size_min"`       // Outer radius lower bound
	SizeMax       float64  `yaml:"size_max"`       // Outer radius upper bound
	RotationSpeed float64  `yaml:"rotation_speed"` // Spin uniform in [-rotation_speed, rotation_speed] deg/tick
	Glow          float64  `yaml:"glow"`           // Glow radius multiplier (0 = off)
	Palette       []string `yaml:"palette"`        // Hex colours
}

// MarkerConfig holds the smoothed cursor marker parameters.
type MarkerConfig struct {
	Stiffness     float64 `yaml:"stiffness"`
	Damping       float64 `yaml:"damping"`
	Mass          float64 `yaml:"mass"`
	TiltFactor    float64 `yaml:"tilt_factor"`    // Degrees of tilt per px/tick of horizontal velocity
	HoverScale    float64 `yaml:"hover_scale"`    // Glyph scale for the hover hint
	HoverRotation float64 `yaml:"hover_rotation"` // Glyph rotation (deg) for the hover hint
	RingDiameter  float64 `yaml:"ring_diameter"`  // Ring size for the button hint
	HintStiffness float64 `yaml:"hint_stiffness"`
	HintDamping   float64 `yaml:"hint_damping"`
	Accent        string  `yaml:"accent"`
}

// ChatConfig holds the assistant settings.
type ChatConfig struct {
	Model           string        `yaml:"model"`
	APIKeyEnv       string        `yaml:"api_key_env"`
	Timeout         time.Duration `yaml:"timeout"`
	AssistantName   string        `yaml:"assistant_name"`
	Greeting        string        `yaml:"greeting"` // %s is replaced by the profile name
	EmptyReply      string        `yaml:"empty_reply"`
	Unavailable     string        `yaml:"unavailable"`
	MissingKeyReply string        `yaml:"missing_key_reply"`
}

// BackgroundConfig holds aurora background parameters.
type BackgroundConfig struct {
	Blobs      []string `yaml:"blobs"`       // Hex colour per blob
	NoiseScale float64  `yaml:"noise_scale"` // Noise-space distance per second
	Wander     float64  `yaml:"wander"`      // Fraction of the screen a blob may drift
	Alpha      int      `yaml:"alpha"`
	Seed       int64    `yaml:"seed"`
}

// UIConfig holds layout parameters.
type UIConfig struct {
	NavHeight    int     `yaml:"nav_height"`
	ContentWidth int     `yaml:"content_width"`
	ChatWidth    int     `yaml:"chat_width"`
	ChatHeight   int     `yaml:"chat_height"`
	ScrollSpeed  float64 `yaml:"scroll_speed"`
	ScrollEasing float64 `yaml:"scroll_easing"`
	FontSize     int     `yaml:"font_size"`
	HeadingSize  int     `yaml:"heading_size"`
	TitleSize    int     `yaml:"title_size"`
	LineSpacing  int     `yaml:"line_spacing"`
}

// TelemetryConfig holds telemetry parameters.
type TelemetryConfig struct {
	StatsWindow         int `yaml:"stats_window"` // Ticks per trail stats window
	PerfCollectorWindow int `yaml:"perf_collector_window"`
}

// DerivedConfig holds computed values derived from the loaded config.
type DerivedConfig struct {
	Palette       []color.RGBA // trail.palette parsed
	BlobColors    []color.RGBA // background.blobs parsed
	Accent        color.RGBA   // marker.accent parsed
	LifetimeTicks int          // ceil(1 / trail.decay)
	ScreenW32     float32
	ScreenH32     float32
}

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, or uses embedded defaults if path is empty.
// Must be called before Cfg().
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// MustInit is like Init but panics on error.
func MustInit(path string) {
	if err := Init(path); err != nil {
		panic(fmt.Sprintf("config: failed to initialize: %v", err))
	}
}

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Defaults returns a fresh copy of the embedded defaults.
func Defaults() *Config {
	cfg, err := Load("")
	if err != nil {
		panic(fmt.Sprintf("config: embedded defaults are invalid: %v", err))
	}
	return cfg
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Only fields present in the file are overwritten.
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.computeDerived(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects values the simulation cannot run with.
func (c *Config) Validate() error {
	var errs []error
	t := c.Trail
	if t.Decay <= 0 || t.Decay > 1 {
		errs = append(errs, fmt.Errorf("trail.decay must be in (0, 1], got %v", t.Decay))
	}
	if t.SpawnChance < 0 || t.SpawnChance > 1 {
		errs = append(errs, fmt.Errorf("trail.spawn_chance must be in [0, 1], got %v", t.SpawnChance))
	}
	if t.StepSpacing <= 0 {
		errs = append(errs, fmt.Errorf("trail.step_spacing must be positive, got %v", t.StepSpacing))
	}
	if t.MaxSteps < 0 {
		errs = append(errs, fmt.Errorf("trail.max_steps must not be negative, got %d", t.MaxSteps))
	}
	if t.SizeMin <= 0 || t.SizeMax < t.SizeMin {
		errs = append(errs, fmt.Errorf("trail size range [%v, %v] is invalid", t.SizeMin, t.SizeMax))
	}
	if t.FallMax < t.FallMin {
		errs = append(errs, fmt.Errorf("trail fall range [%v, %v] is invalid", t.FallMin, t.FallMax))
	}
	if len(t.Palette) == 0 {
		errs = append(errs, errors.New("trail.palette must not be empty"))
	}
	if c.Marker.Mass <= 0 || c.Marker.Stiffness <= 0 {
		errs = append(errs, fmt.Errorf("marker mass and stiffness must be positive, got %v and %v", c.Marker.Mass, c.Marker.Stiffness))
	}
	if c.Marker.Damping < 0 || c.Marker.HintDamping < 0 || c.Marker.HintStiffness <= 0 {
		errs = append(errs, errors.New("marker damping must not be negative and hint_stiffness must be positive"))
	}
	if c.Screen.TargetFPS <= 0 {
		errs = append(errs, fmt.Errorf("screen.target_fps must be positive, got %d", c.Screen.TargetFPS))
	}
	if len(errs) > 0 {
		return fmt.Errorf("invalid config: %w", errors.Join(errs...))
	}
	return nil
}

// computeDerived calculates values derived from loaded config.
func (c *Config) computeDerived() error {
	palette, err := parseColors(c.Trail.Palette)
	if err != nil {
		return fmt.Errorf("trail.palette: %w", err)
	}
	blobs, err := parseColors(c.Background.Blobs)
	if err != nil {
		return fmt.Errorf("background.blobs: %w", err)
	}
	c.Derived.Palette = palette
	c.Derived.BlobColors = blobs

	c.Derived.Accent = color.RGBA{R: 56, G: 189, B: 248, A: 255}
	if c.Marker.Accent != "" {
		accent, err := parseColors([]string{c.Marker.Accent})
		if err != nil {
			return fmt.Errorf("marker.accent: %w", err)
		}
		c.Derived.Accent = accent[0]
	}

	c.Derived.LifetimeTicks = int(math.Ceil(1/c.Trail.Decay - 1e-9))
	c.Derived.ScreenW32 = float32(c.Screen.Width)
	c.Derived.ScreenH32 = float32(c.Screen.Height)
	return nil
}

// parseColors converts "#rrggbb" strings to opaque RGBA colours.
func parseColors(hexes []string) ([]color.RGBA, error) {
	out := make([]color.RGBA, 0, len(hexes))
	for _, h := range hexes {
		c, err := colorful.Hex(h)
		if err != nil {
			return nil, fmt.Errorf("parsing colour %q: %w", h, err)
		}
		r, g, b := c.RGB255()
		out = append(out, color.RGBA{R: r, G: g, B: b, A: 255})
	}
	return out, nil
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
