package config

import (
	"fmt"

	"github.com/san-kum/orrery/internal/integrators"
	"github.com/san-kum/orrery/internal/physics"
	"github.com/spf13/pflag"
)

// RegisterFlags adds the settings shared by every simulating command.
func RegisterFlags(fs *pflag.FlagSet) {
	fs.String("config", "", "config file path (yaml)")
	fs.String("preset", "", "use preset configuration")
	fs.String("log-level", DefaultLogLevel, "log level (debug, info, warn, error)")
	fs.String("log-file", "", "write logs to this file")
	fs.Int("fps", DefaultFPS, "frames (and ticks) per second")
	fs.String("order", integrators.Simultaneous.String(), "update order (simultaneous, sequential)")
	fs.String("policy", physics.PolicySkip.String(), "degenerate distance policy (skip, clamp, abort)")
	fs.Float64("epsilon", physics.DefaultEpsilon, "degenerate distance threshold in meters")
	fs.Float64("zoom", DefaultZoom, "initial zoom")
	fs.String("theme", DefaultTheme, "terminal color theme")
}

// Resolve layers defaults, the preset, the config file and the flags the
// user set explicitly, in that order. Flags left at their defaults never
// override the file or the preset.
func Resolve(fs *pflag.FlagSet) (*Config, error) {
	cfg := DefaultConfig()

	if name, _ := fs.GetString("preset"); name != "" {
		p, ok := GetPreset(name)
		if !ok {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", name, ListPresets())
		}
		p.Apply(cfg)
	}

	if path, _ := fs.GetString("config"); path != "" {
		if err := cfg.Merge(path); err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
	}

	var err error
	fs.Visit(func(f *pflag.Flag) {
		if err != nil {
			return
		}
		switch f.Name {
		case "fps":
			cfg.FPS, err = fs.GetInt(f.Name)
		case "order":
			cfg.UpdateOrder = f.Value.String()
		case "policy":
			cfg.DistancePolicy = f.Value.String()
		case "epsilon":
			cfg.Epsilon, err = fs.GetFloat64(f.Name)
		case "zoom":
			cfg.View.Zoom, err = fs.GetFloat64(f.Name)
		case "theme":
			cfg.Theme = f.Value.String()
		case "log-level":
			cfg.Log.Level = f.Value.String()
		case "log-file":
			cfg.Log.File = f.Value.String()
		}
	})
	if err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
