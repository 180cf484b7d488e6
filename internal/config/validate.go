package config

import (
	"fmt"
	"math"
	"slices"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/rileyhilliard/thermo/internal/errors"
	"github.com/rileyhilliard/thermo/internal/gauge"
	"github.com/rileyhilliard/thermo/internal/surface"
)

// ColorModes are the accepted values of output.color.
var ColorModes = []string{"auto", "always", "never"}

// MinHatchValue is the finest hatch step, giving at most 1000 ticks.
const MinHatchValue = 0.1

// Validate checks the config for errors and returns a structured error for
// the first problem found.
func Validate(cfg *Config) error {
	if cfg == nil {
		return errors.New(errors.ErrConfig,
			"Config is nil",
			"This is unexpected - try reloading the configuration.")
	}

	if cfg.Version > CurrentConfigVersion {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("This config is from the future (version %d, but thermo only knows up to %d)", cfg.Version, CurrentConfigVersion),
			"Upgrade thermo or lower the version field.")
	}

	if err := validateGauge(cfg.Gauge); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig, err.Error(), "Check the 'gauge' section in your .thermo.yaml.")
	}

	if err := validateRender(cfg.Render); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig, err.Error(), "Check the 'render' section in your .thermo.yaml.")
	}

	if err := validateSize(cfg.Gauge, cfg.Render); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig, err.Error(), "Shrink the gauge or raise render.scale_x / render.scale_y.")
	}

	if err := validateAnimation(cfg.Animation); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig, err.Error(), "Check the 'animation' section in your .thermo.yaml.")
	}

	if !slices.Contains(ColorModes, cfg.Output.Color) {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("output.color must be one of %s, got %q", strings.Join(ColorModes, ", "), cfg.Output.Color),
			"Check the 'output' section in your .thermo.yaml.")
	}

	return nil
}

func validateGauge(g gauge.Config) error {
	if !slices.Contains(surface.LineTypes, g.LineType) {
		return fmt.Errorf("gauge.line_type %q is not one of %s", g.LineType, strings.Join(surface.LineTypes, ", "))
	}

	colors := []struct {
		key, value string
	}{
		{"gauge.line_color", g.LineColor},
		{"gauge.background", g.Background},
		{"gauge.fill_color", g.FillColor},
		{"gauge.show_value_color", g.ShowValueColor},
	}
	for _, c := range colors {
		if err := validateColor(c.key, c.value); err != nil {
			return err
		}
	}

	if !g.HatchType.Valid() {
		return fmt.Errorf("gauge.hatch_type %q must be percent or quantity", g.HatchType)
	}
	if !g.ShowValueType.Valid() {
		return fmt.Errorf("gauge.show_value_type %q must be percent or quantity", g.ShowValueType)
	}

	if !(g.HatchValue >= MinHatchValue && g.HatchValue <= 100) {
		return fmt.Errorf("gauge.hatch_value must be between %v and 100, got %v", MinHatchValue, g.HatchValue)
	}
	if !(g.HatchTotalValue > 0) || math.IsInf(g.HatchTotalValue, 0) {
		return fmt.Errorf("gauge.hatch_total_value must be a positive number, got %v", g.HatchTotalValue)
	}

	lengths := []struct {
		key   string
		value float64
	}{
		{"gauge.width", g.Width},
		{"gauge.height", g.Height},
		{"gauge.line_width", g.LineWidth},
		{"gauge.hatch_length", g.HatchLength},
		{"gauge.hatch_label_size", g.HatchLabelSize},
	}
	for _, l := range lengths {
		if math.IsNaN(l.value) || math.IsInf(l.value, 0) {
			return fmt.Errorf("%s must be a finite number, got %v", l.key, l.value)
		}
		if l.value < 0 {
			return fmt.Errorf("%s can't be negative, got %v", l.key, l.value)
		}
	}

	return nil
}

// validateColor accepts empty values (the gauge default applies) and hex
// colors in #rgb or #rrggbb form.
func validateColor(key, value string) error {
	if value == "" {
		return nil
	}
	if _, err := colorful.Hex(value); err != nil {
		return fmt.Errorf("%s %q is not a hex color like #44A0FC", key, value)
	}
	return nil
}

func validateRender(r RenderConfig) error {
	if !(r.ScaleX >= 0) || !(r.ScaleY >= 0) || math.IsInf(r.ScaleX, 0) || math.IsInf(r.ScaleY, 0) {
		return fmt.Errorf("render scale must be zero or a positive number (scale_x %v, scale_y %v)", r.ScaleX, r.ScaleY)
	}
	if !(r.InnerBoundAdjustment >= 0) {
		return fmt.Errorf("render.inner_bound_adjustment can't be negative, got %v", r.InnerBoundAdjustment)
	}
	return nil
}

// validateSize keeps the rendered gauge inside the terminal canvas. Zero
// scales mean the renderer defaults.
func validateSize(g gauge.Config, r RenderConfig) error {
	scaleX, scaleY := r.ScaleX, r.ScaleY
	if scaleX == 0 {
		scaleX = surface.DefaultScaleX
	}
	if scaleY == 0 {
		scaleY = surface.DefaultScaleY
	}

	if cols := g.Width / scaleX; cols > surface.MaxColumns {
		return fmt.Errorf("gauge.width %v at render.scale_x %v is %.0f columns, more than %d",
			g.Width, scaleX, cols, surface.MaxColumns)
	}
	if rows := (g.Height + g.HatchLength) / scaleY; rows > surface.MaxRows {
		return fmt.Errorf("gauge.height %v plus gauge.hatch_length %v at render.scale_y %v is %.0f rows, more than %d",
			g.Height, g.HatchLength, scaleY, rows, surface.MaxRows)
	}
	return nil
}

func validateAnimation(a AnimationConfig) error {
	if a.FPS < 0 || a.FPS > 240 {
		return fmt.Errorf("animation.fps must be between 0 and 240, got %d", a.FPS)
	}
	if a.Frequency < 0 {
		return fmt.Errorf("animation.frequency can't be negative, got %v", a.Frequency)
	}
	if a.Damping < 0 {
		return fmt.Errorf("animation.damping can't be negative, got %v", a.Damping)
	}
	return nil
}
