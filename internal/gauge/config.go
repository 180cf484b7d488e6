package gauge

import (
	"strings"

	"github.com/rileyhilliard/thermo/internal/surface"
)

// ValueType selects how hatch labels and the value label express a level.
type ValueType string

const (
	Percent  ValueType = "percent"
	Quantity ValueType = "quantity"
)

// Normalize maps the short forms "pct" and "qty" to their full names.
func (t ValueType) Normalize() ValueType {
	switch ValueType(strings.ToLower(string(t))) {
	case "pct", Percent:
		return Percent
	case "qty", Quantity:
		return Quantity
	}
	return t
}

// Valid reports whether t (after normalization) is a known value type.
func (t ValueType) Valid() bool {
	n := t.Normalize()
	return n == Percent || n == Quantity
}

// Config is the gauge appearance and scale. Lengths are layout units.
type Config struct {
	LineColor  string  `yaml:"line_color,omitempty" mapstructure:"line_color"`
	LineWidth  float64 `yaml:"line_width,omitempty" mapstructure:"line_width"`
	LineType   string  `yaml:"line_type,omitempty" mapstructure:"line_type"`
	Background string  `yaml:"background,omitempty" mapstructure:"background"`
	FillColor  string  `yaml:"fill_color,omitempty" mapstructure:"fill_color"`
	FillImage  string  `yaml:"fill_image,omitempty" mapstructure:"fill_image"`

	ShowHatches     bool      `yaml:"show_hatches,omitempty" mapstructure:"show_hatches"`
	HatchLength     float64   `yaml:"hatch_length,omitempty" mapstructure:"hatch_length"`
	HatchValue      float64   `yaml:"hatch_value,omitempty" mapstructure:"hatch_value"`
	HatchType       ValueType `yaml:"hatch_type,omitempty" mapstructure:"hatch_type"`
	HatchTotalValue float64   `yaml:"hatch_total_value,omitempty" mapstructure:"hatch_total_value"`
	ShowHatchLabels bool      `yaml:"show_hatch_labels,omitempty" mapstructure:"show_hatch_labels"`
	HatchLabelFont  string    `yaml:"hatch_label_font,omitempty" mapstructure:"hatch_label_font"`
	HatchLabelSize  float64   `yaml:"hatch_label_size,omitempty" mapstructure:"hatch_label_size"`

	ShowValue      bool      `yaml:"show_value,omitempty" mapstructure:"show_value"`
	ShowValueType  ValueType `yaml:"show_value_type,omitempty" mapstructure:"show_value_type"`
	ShowValueColor string    `yaml:"show_value_color,omitempty" mapstructure:"show_value_color"`

	Width  float64 `yaml:"width,omitempty" mapstructure:"width"`
	Height float64 `yaml:"height,omitempty" mapstructure:"height"`
}

// DefaultConfig returns the stock gauge: a 100x20 black-bordered white box
// filling in blue, with no hatches and no value label.
func DefaultConfig() Config {
	return Config{
		LineColor:       "#000",
		LineWidth:       1,
		LineType:        "solid",
		Background:      "#fff",
		FillColor:       "#44A0FC",
		HatchLength:     10,
		HatchValue:      10,
		HatchType:       Percent,
		HatchTotalValue: 100,
		HatchLabelFont:  "Arial, Verdana, Helvetica, sans-serif",
		HatchLabelSize:  9,
		ShowValueType:   Percent,
		ShowValueColor:  "#000",
		Width:           100,
		Height:          20,
	}
}

// Merge lays overrides on top of c. A zero field in overrides counts as
// unset and keeps c's value, so zero widths or totals cannot be requested.
func (c Config) Merge(o Config) Config {
	out := c
	if o.LineColor != "" {
		out.LineColor = o.LineColor
	}
	if o.LineWidth != 0 {
		out.LineWidth = o.LineWidth
	}
	if o.LineType != "" {
		out.LineType = o.LineType
	}
	if o.Background != "" {
		out.Background = o.Background
	}
	if o.FillColor != "" {
		out.FillColor = o.FillColor
	}
	if o.FillImage != "" {
		out.FillImage = o.FillImage
	}
	if o.ShowHatches {
		out.ShowHatches = true
	}
	if o.HatchLength != 0 {
		out.HatchLength = o.HatchLength
	}
	if o.HatchValue != 0 {
		out.HatchValue = o.HatchValue
	}
	if o.HatchType != "" {
		out.HatchType = o.HatchType
	}
	if o.HatchTotalValue != 0 {
		out.HatchTotalValue = o.HatchTotalValue
	}
	if o.ShowHatchLabels {
		out.ShowHatchLabels = true
	}
	if o.HatchLabelFont != "" {
		out.HatchLabelFont = o.HatchLabelFont
	}
	if o.HatchLabelSize != 0 {
		out.HatchLabelSize = o.HatchLabelSize
	}
	if o.ShowValue {
		out.ShowValue = true
	}
	if o.ShowValueType != "" {
		out.ShowValueType = o.ShowValueType
	}
	if o.ShowValueColor != "" {
		out.ShowValueColor = o.ShowValueColor
	}
	if o.Width != 0 {
		out.Width = o.Width
	}
	if o.Height != 0 {
		out.Height = o.Height
	}
	out.HatchType = out.HatchType.Normalize()
	out.ShowValueType = out.ShowValueType.Normalize()
	return out
}

// lineBorder is the border drawn around the container and left of each tick.
func (c Config) lineBorder() surface.Border {
	return surface.Border{Width: c.LineWidth, Type: c.LineType, Color: c.LineColor}
}
