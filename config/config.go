// Package config provides configuration loading and access for the simulator.
package config

import (
	_ "embed"
	"fmt"
	"image/color"
	"os"

	colorful "github.com/lucasb-eyer/go-colorful"
	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Sensor source names.
const (
	SourceKeyboard = "keyboard"
	SourceMouse    = "mouse"
	SourceMock     = "mock"
	SourceReplay   = "replay"
)

// Config holds all configuration parameters.
// Ball radius, displacement coefficient and bounce damping are fixed in
// package sim and deliberately absent here.
type Config struct {
	Screen    ScreenConfig    `yaml:"screen"`
	Colors    ColorsConfig    `yaml:"colors"`
	Sensor    SensorConfig    `yaml:"sensor"`
	Sim       SimConfig       `yaml:"sim"`
	Telemetry TelemetryConfig `yaml:"telemetry"`

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

// ColorsConfig holds hex colors (#rrggbb).
type ColorsConfig struct {
	Background string `yaml:"background"`
	Ball       string `yaml:"ball"`
}

// SensorConfig selects and tunes the sample source.
type SensorConfig struct {
	Source          string  `yaml:"source"`
	MaxAccel        float64 `yaml:"max_accel"`        // acceleration at full tilt
	SpringFrequency float64 `yaml:"spring_frequency"` // tilt smoothing
	SpringDamping   float64 `yaml:"spring_damping"`
	MockAmplitude   float64 `yaml:"mock_amplitude"`
	MockPeriod      float64 `yaml:"mock_period"`
	RateHz          int     `yaml:"rate_hz"` // synthetic clock rate
	ReplayPath      string  `yaml:"replay_path"`
}

// SimConfig holds simulator behavior switches.
type SimConfig struct {
	LegacyQuirks bool `yaml:"legacy_quirks"`
}

// TelemetryConfig holds telemetry parameters.
type TelemetryConfig struct {
	StatsWindow float64 `yaml:"stats_window"` // seconds
}

// DerivedConfig holds computed values derived from the loaded config.
type DerivedConfig struct {
	Background    color.RGBA
	Ball          color.RGBA
	StepMs        int64 // synthetic clock step, from Sensor.RateHz
	StatsWindowMs int64
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

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
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
		// Unmarshal into same struct - only overwrites fields present in file
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := cfg.computeDerived(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// computeDerived validates the config and fills Derived.
func (c *Config) computeDerived() error {
	if c.Screen.Width <= 0 || c.Screen.Height <= 0 {
		return fmt.Errorf("screen: invalid size %dx%d", c.Screen.Width, c.Screen.Height)
	}
	if c.Screen.TargetFPS <= 0 {
		c.Screen.TargetFPS = 60
	}

	switch c.Sensor.Source {
	case SourceKeyboard, SourceMouse, SourceMock, SourceReplay:
	default:
		return fmt.Errorf("sensor: unknown source %q", c.Sensor.Source)
	}
	if c.Sensor.RateHz <= 0 {
		return fmt.Errorf("sensor: rate_hz must be positive, got %d", c.Sensor.RateHz)
	}
	c.Derived.StepMs = int64(1000 / c.Sensor.RateHz)
	if c.Derived.StepMs == 0 {
		c.Derived.StepMs = 1
	}

	var err error
	if c.Derived.Background, err = parseColor(c.Colors.Background); err != nil {
		return fmt.Errorf("colors.background: %w", err)
	}
	if c.Derived.Ball, err = parseColor(c.Colors.Ball); err != nil {
		return fmt.Errorf("colors.ball: %w", err)
	}

	c.Derived.StatsWindowMs = int64(c.Telemetry.StatsWindow * 1000)
	return nil
}

func parseColor(hex string) (color.RGBA, error) {
	col, err := colorful.Hex(hex)
	if err != nil {
		return color.RGBA{}, err
	}
	r, g, b := col.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}, nil
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
