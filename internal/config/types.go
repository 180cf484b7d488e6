package config

import (
	"github.com/rileyhilliard/thermo/internal/gauge"
)

// CurrentConfigVersion is the schema version this build writes and reads.
const CurrentConfigVersion = 1

// Config represents the complete .thermo.yaml configuration file.
type Config struct {
	Version   int             `yaml:"version" mapstructure:"version"`
	Gauge     gauge.Config    `yaml:"gauge" mapstructure:"gauge"`
	Render    RenderConfig    `yaml:"render" mapstructure:"render"`
	Animation AnimationConfig `yaml:"animation" mapstructure:"animation"`
	Output    OutputConfig    `yaml:"output" mapstructure:"output"`
}

// RenderConfig controls how layout units map onto terminal cells.
type RenderConfig struct {
	ScaleX               float64 `yaml:"scale_x" mapstructure:"scale_x"`
	ScaleY               float64 `yaml:"scale_y" mapstructure:"scale_y"`
	InnerBoundAdjustment float64 `yaml:"inner_bound_adjustment" mapstructure:"inner_bound_adjustment"`
}

// AnimationConfig tunes the spring behind fill transitions.
type AnimationConfig struct {
	FPS       int     `yaml:"fps" mapstructure:"fps"`
	Frequency float64 `yaml:"frequency" mapstructure:"frequency"`
	Damping   float64 `yaml:"damping" mapstructure:"damping"`
}

// OutputConfig controls terminal output.
type OutputConfig struct {
	Color string `yaml:"color" mapstructure:"color"` // auto, always, never
}

// DefaultConfig returns a config with the stock gauge and renderer settings.
func DefaultConfig() *Config {
	return &Config{
		Version: CurrentConfigVersion,
		Gauge:   gauge.DefaultConfig(),
		Render: RenderConfig{
			ScaleX: 2,
			ScaleY: 10,
		},
		Animation: AnimationConfig{
			FPS:       60,
			Frequency: 6,
			Damping:   1,
		},
		Output: OutputConfig{
			Color: "auto",
		},
	}
}
