package config

import (
	"fmt"
	"os"

	"github.com/san-kum/orrery/internal/integrators"
	"github.com/san-kum/orrery/internal/physics"
	"gopkg.in/yaml.v3"
)

const (
	DefaultFPS       = 60
	DefaultWidth     = 700
	DefaultHeight    = 700
	DefaultZoom      = 1.0
	DefaultPanStep   = 50.0
	DefaultZoomRatio = 1.1
	DefaultTheme     = "cyberpunk"
	DefaultLogLevel  = "info"
)

type Config struct {
	FPS            int        `yaml:"fps"`
	UpdateOrder    string     `yaml:"update_order"`
	DistancePolicy string     `yaml:"distance_policy"`
	Epsilon        float64    `yaml:"epsilon"`
	View           ViewConfig `yaml:"view"`
	Theme          string     `yaml:"theme"`
	Log            LogConfig  `yaml:"log"`
}

type ViewConfig struct {
	Width     int     `yaml:"width"`
	Height    int     `yaml:"height"`
	Zoom      float64 `yaml:"zoom"`
	PanStep   float64 `yaml:"pan_step"`
	ZoomRatio float64 `yaml:"zoom_ratio"`
	Smooth    bool    `yaml:"smooth"`
}

type LogConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

func DefaultConfig() *Config {
	return &Config{
		FPS:            DefaultFPS,
		UpdateOrder:    integrators.Simultaneous.String(),
		DistancePolicy: physics.PolicySkip.String(),
		Epsilon:        physics.DefaultEpsilon,
		View: ViewConfig{
			Width:     DefaultWidth,
			Height:    DefaultHeight,
			Zoom:      DefaultZoom,
			PanStep:   DefaultPanStep,
			ZoomRatio: DefaultZoomRatio,
			Smooth:    true,
		},
		Theme: DefaultTheme,
		Log:   LogConfig{Level: DefaultLogLevel},
	}
}

// Load reads a YAML file on top of the defaults.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	if err := cfg.Merge(path); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Merge overlays the YAML file at path onto c. Keys absent from the file
// keep their current values.
func (c *Config) Merge(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return c.Validate()
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate checks ranges and enum values.
func (c *Config) Validate() error {
	if c.FPS <= 0 {
		return fmt.Errorf("fps must be positive, got %d", c.FPS)
	}
	if c.Epsilon <= 0 {
		return fmt.Errorf("epsilon must be positive, got %g", c.Epsilon)
	}
	if c.View.Width <= 0 || c.View.Height <= 0 {
		return fmt.Errorf("view size must be positive, got %dx%d", c.View.Width, c.View.Height)
	}
	if c.View.Zoom <= 0 {
		return fmt.Errorf("zoom must be positive, got %g", c.View.Zoom)
	}
	if c.View.ZoomRatio <= 1 {
		return fmt.Errorf("zoom ratio must be greater than 1, got %g", c.View.ZoomRatio)
	}
	if _, err := c.Order(); err != nil {
		return err
	}
	if _, err := c.Policy(); err != nil {
		return err
	}
	return nil
}

func (c *Config) Order() (integrators.UpdateOrder, error) {
	return integrators.ParseUpdateOrder(c.UpdateOrder)
}

func (c *Config) Policy() (physics.DistancePolicy, error) {
	return physics.ParsePolicy(c.DistancePolicy)
}
