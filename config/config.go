// Package config provides configuration loading and access for the simulator.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all simulator configuration parameters.
type Config struct {
	Screen    ScreenConfig    `yaml:"screen"`
	Physics   PhysicsConfig   `yaml:"physics"`
	Render    RenderConfig    `yaml:"render"`
	Controls  ControlsConfig  `yaml:"controls"`
	Telemetry TelemetryConfig `yaml:"telemetry"`
	UI        UIConfig        `yaml:"ui"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// ScreenConfig holds window settings.
type ScreenConfig struct {
	Width     int    `yaml:"width"`
	Height    int    `yaml:"height"`
	TargetFPS int    `yaml:"target_fps"`
	Title     string `yaml:"title"`
}

// PhysicsConfig holds integrator and interaction constants.
type PhysicsConfig struct {
	GravityDivisor  float64   `yaml:"gravity_divisor"`  // pull = (1 - c) / this
	VelocityDivisor float64   `yaml:"velocity_divisor"` // velocity = drag / this
	SpeedPresets    []float64 `yaml:"speed_presets"`    // multipliers for speed_1..speed_4
}

// RenderConfig holds rendering settings.
type RenderConfig struct {
	ClearColor [3]uint8 `yaml:"clear_color"`
}

// ControlsConfig maps commands to key names (A-Z, ONE-FOUR, F1-F12, SPACE, ...).
type ControlsConfig struct {
	Reset      string `yaml:"reset"`
	Gravity    string `yaml:"gravity"`
	Pause      string `yaml:"pause"`
	RenderMode string `yaml:"render_mode"`
	Speed1     string `yaml:"speed_1"`
	Speed2     string `yaml:"speed_2"`
	Speed3     string `yaml:"speed_3"`
	Speed4     string `yaml:"speed_4"`
	HUD        string `yaml:"hud"`
}

// Bindings returns the key name bound to each command name.
func (c ControlsConfig) Bindings() map[string]string {
	return map[string]string{
		"reset":       c.Reset,
		"gravity":     c.Gravity,
		"pause":       c.Pause,
		"render_mode": c.RenderMode,
		"speed_1":     c.Speed1,
		"speed_2":     c.Speed2,
		"speed_3":     c.Speed3,
		"speed_4":     c.Speed4,
		"hud":         c.HUD,
	}
}

// TelemetryConfig holds telemetry parameters.
type TelemetryConfig struct {
	StatsWindow         int `yaml:"stats_window"`    // frames per stats window
	SampleInterval      int `yaml:"sample_interval"` // frames between slot samples
	PerfCollectorWindow int `yaml:"perf_collector_window"`
}

// UIConfig holds HUD panel settings.
type UIConfig struct {
	ShowHUD    bool `yaml:"show_hud"`
	PanelX     int  `yaml:"panel_x"`
	PanelY     int  `yaml:"panel_y"`
	PanelWidth int  `yaml:"panel_width"`
}

// DerivedConfig holds computed values derived from the loaded config.
type DerivedConfig struct {
	ScreenW32       float32    // Screen.Width as float32
	ScreenH32       float32    // Screen.Height as float32
	GravityDivisor  float32    // Physics.GravityDivisor as float32
	VelocityDivisor float32    // Physics.VelocityDivisor as float32
	SpeedPresets    [4]float32 // Physics.SpeedPresets as a fixed array
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

// Defaults returns the embedded default configuration.
func Defaults() *Config {
	cfg, err := Load("")
	if err != nil {
		panic(fmt.Sprintf("config: embedded defaults invalid: %v", err))
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
		if err := Merge(cfg, data); err != nil {
			return nil, err
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	cfg.computeDerived()

	return cfg, nil
}

// Merge unmarshals data over cfg; only fields present in data are overwritten.
func Merge(cfg *Config, data []byte) error {
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parsing config file: %w", err)
	}
	return nil
}

// Validate checks values the simulator cannot run with.
func (c *Config) Validate() error {
	var errs []error
	if c.Screen.Width <= 0 || c.Screen.Height <= 0 {
		errs = append(errs, fmt.Errorf("screen size %dx%d must be positive", c.Screen.Width, c.Screen.Height))
	}
	if c.Physics.GravityDivisor <= 0 {
		errs = append(errs, fmt.Errorf("physics.gravity_divisor %v must be positive", c.Physics.GravityDivisor))
	}
	if c.Physics.VelocityDivisor <= 0 {
		errs = append(errs, fmt.Errorf("physics.velocity_divisor %v must be positive", c.Physics.VelocityDivisor))
	}
	if len(c.Physics.SpeedPresets) != 4 {
		errs = append(errs, fmt.Errorf("physics.speed_presets has %d values, want 4", len(c.Physics.SpeedPresets)))
	}
	for i, p := range c.Physics.SpeedPresets {
		if p <= 0 {
			errs = append(errs, fmt.Errorf("physics.speed_presets[%d] %v must be positive", i, p))
		}
	}
	if c.Telemetry.StatsWindow < 1 || c.Telemetry.SampleInterval < 1 {
		errs = append(errs, errors.New("telemetry windows must be at least one frame"))
	}
	return errors.Join(errs...)
}

// computeDerived calculates values derived from loaded config.
func (c *Config) computeDerived() {
	c.Derived.ScreenW32 = float32(c.Screen.Width)
	c.Derived.ScreenH32 = float32(c.Screen.Height)
	c.Derived.GravityDivisor = float32(c.Physics.GravityDivisor)
	c.Derived.VelocityDivisor = float32(c.Physics.VelocityDivisor)
	for i := range c.Derived.SpeedPresets {
		c.Derived.SpeedPresets[i] = float32(c.Physics.SpeedPresets[i])
	}
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
