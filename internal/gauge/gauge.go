// Package gauge implements a thermometer gauge: a bordered bar that fills
// according to a quantity or a percentage, with optional tick marks and
// labels underneath.
//
// A gauge is attached to a surface.Host, builds its regions once, and
// afterwards only changes the fill width and the value label text:
//
//	host := surface.NewTree()
//	g := gauge.Attach(host, gauge.Config{HatchTotalValue: 50, ShowValue: true})
//	g.FillByQuantity(25) // half full, label "50%"
//
// Inputs are clamped, never rejected. HatchTotalValue must be positive;
// with zero the computed widths and labels become NaN or Infinity.
//
// A Gauge is not safe for concurrent use.
package gauge

import (
	"github.com/rileyhilliard/thermo/internal/logger"
	"github.com/rileyhilliard/thermo/internal/surface"
)

// Region classes, in the order setupUI appends them.
const (
	ClassContainer  = "thermo-container"
	ClassFill       = "thermo-fill"
	ClassValue      = "thermo-value"
	ClassHatches    = "thermo-hatches"
	ClassHatch      = "thermo-hatch"
	ClassHatchLabel = "thermo-hatch-label"
)

// markerKey tags a host that already carries a gauge.
const markerKey = "thermo.gauge"

// valuePadding is the padding around the value label.
const valuePadding = 3

// hatchLabelIndent is the gap between a tick and its label.
const hatchLabelIndent = 2

// State is the last level pushed into the gauge. Each fill call writes
// only the field it is named after.
type State struct {
	Quantity float64
	Percent  float64
}

// Gauge is an attached thermometer.
type Gauge struct {
	cfg    Config
	state  State
	adjust float64
	log    logger.Logger

	container surface.Region
	bar       surface.Region
	label     surface.Region
	hatches   []surface.Region
}

// Option configures a gauge at attach time.
type Option func(*Gauge)

// WithLogger sets the logger used for debug output.
func WithLogger(l logger.Logger) Option {
	return func(g *Gauge) {
		g.log = l
	}
}

// WithInnerBoundAdjustment caps fill widths at Width-px. Use it on hosts
// whose box model draws the container border inside Width.
func WithInnerBoundAdjustment(px float64) Option {
	return func(g *Gauge) {
		g.adjust = px
	}
}

// Attach builds a gauge on host from overrides merged onto DefaultConfig.
// If host already carries a gauge, that gauge is returned and nothing is
// built.
func Attach(host surface.Host, overrides Config, opts ...Option) *Gauge {
	if g, ok := From(host); ok {
		g.log.Debug("host already has a gauge, skipping attach")
		return g
	}

	g := &Gauge{
		cfg: DefaultConfig().Merge(overrides),
		log: logger.NewEnvLogger("[gauge]"),
	}
	for _, opt := range opts {
		opt(g)
	}

	g.setupUI(host)
	host.SetMarker(markerKey, g)
	g.log.Debug("attached %sx%s, %d hatches",
		formatNumber(g.cfg.Width), formatNumber(g.cfg.Height), len(g.hatches))
	return g
}

// From returns the gauge attached to host, if any.
func From(host surface.Host) (*Gauge, bool) {
	v, ok := host.Marker(markerKey)
	if !ok {
		return nil, false
	}
	g, ok := v.(*Gauge)
	return g, ok
}

// Config returns the merged configuration.
func (g *Gauge) Config() Config {
	return g.cfg
}

// State returns the last quantity and percent set.
func (g *Gauge) State() State {
	return g.state
}

// Hatches returns the tick layout, whether or not ticks are shown.
func (g *Gauge) Hatches() []Hatch {
	return HatchLayout(g.cfg)
}

// setupUI appends the container, the fill bar, the optional value label and
// the optional tick strip.
func (g *Gauge) setupUI(host surface.Host) {
	cfg := g.cfg
	line := cfg.lineBorder()

	g.container = host.Append(ClassContainer, surface.Style{
		Position:   surface.PositionRelative,
		Width:      cfg.Width,
		Height:     cfg.Height,
		Border:     line,
		Background: cfg.Background,
	})

	bar := surface.Style{
		Position:   surface.PositionAbsolute,
		Top:        0,
		Left:       0,
		Width:      0,
		Height:     cfg.Height,
		Background: cfg.FillColor,
	}
	if cfg.FillImage != "" {
		bar.Background = ""
		bar.BackgroundImage = cfg.FillImage
	}
	g.bar = g.container.Append(ClassFill, bar)

	if cfg.ShowValue {
		g.label = g.container.Append(ClassValue, surface.Style{
			Position: surface.PositionAbsolute,
			Top:      0,
			Padding:  surface.Uniform(valuePadding),
			Bold:     true,
			Color:    cfg.ShowValueColor,
		})
	}

	if cfg.ShowHatches {
		g.setupHatches(host, line)
	}
}

func (g *Gauge) setupHatches(host surface.Host, line surface.Border) {
	cfg := g.cfg
	strip := host.Append(ClassHatches, surface.Style{
		Position: surface.PositionRelative,
		Height:   cfg.HatchLength,
	})

	for _, h := range HatchLayout(cfg) {
		style := surface.Style{
			Position:   surface.PositionAbsolute,
			Left:       h.Left,
			Width:      h.Width,
			Height:     cfg.HatchLength,
			BorderLeft: line,
		}
		if h.Last {
			style.BorderRight = line
		}
		tick := strip.Append(ClassHatch, style)

		if cfg.ShowHatchLabels {
			tick.Append(ClassHatchLabel, surface.Style{
				Padding:    surface.Edges{Left: hatchLabelIndent},
				FontFamily: cfg.HatchLabelFont,
				FontSize:   cfg.HatchLabelSize,
			}).SetText(h.Label)
		}
		g.hatches = append(g.hatches, tick)
	}
}

// FillByQuantity fills the gauge to num out of HatchTotalValue. num is
// clamped to [0, HatchTotalValue].
func (g *Gauge) FillByQuantity(num float64) {
	if num < 0 {
		num = 0
	} else if num > g.cfg.HatchTotalValue {
		num = g.cfg.HatchTotalValue
	}

	g.setQuantity(num)
	g.fill(g.cfg.Width * (num / g.cfg.HatchTotalValue))
}

// FillByPercent fills the gauge to pct percent. pct is clamped to [0, 100].
func (g *Gauge) FillByPercent(pct float64) {
	if pct > 100 {
		pct = 100
	} else if pct < 0 {
		pct = 0
	}

	g.setPercent(pct)
	g.fill(g.cfg.Width * (pct / 100))
}

// fill starts the bar's width transition. Later calls redirect it.
func (g *Gauge) fill(width float64) {
	if g.adjust > 0 {
		if limit := g.cfg.Width - g.adjust; width > limit {
			width = limit
		}
	}
	g.log.Debug("fill to %s", formatNumber(width))
	g.bar.AnimateWidth(width)
}

// setQuantity records num and, with ShowValue, labels it as a quantity or
// as a rounded percentage.
func (g *Gauge) setQuantity(num float64) {
	g.state.Quantity = num
	if !g.cfg.ShowValue {
		return
	}
	if g.cfg.ShowValueType == Quantity {
		g.showValue(formatNumber(num))
		return
	}
	pct := roundHalfUp((num / g.cfg.HatchTotalValue) * 100)
	g.showValue(formatNumber(pct) + "%")
}

// setPercent records pct and, with ShowValue, labels it as a percentage or
// as the unrounded quantity.
func (g *Gauge) setPercent(pct float64) {
	g.state.Percent = pct
	if !g.cfg.ShowValue {
		return
	}
	if g.cfg.ShowValueType == Percent {
		g.showValue(formatNumber(pct) + "%")
		return
	}
	g.showValue(formatNumber(g.cfg.HatchTotalValue * (pct / 100)))
}

func (g *Gauge) showValue(val string) {
	if g.label == nil {
		return
	}
	g.label.SetText(val)
}
