package display

import (
	"time"

	"github.com/rileyhilliard/thermo/internal/feed"
	"github.com/rileyhilliard/thermo/internal/gauge"
	"github.com/rileyhilliard/thermo/internal/logger"
	"github.com/rileyhilliard/thermo/internal/surface"
)

// Options configures a Scene.
type Options struct {
	Gauge                gauge.Config
	InnerBoundAdjustment float64

	// Layout units per terminal column and row. Zero keeps the renderer
	// defaults.
	ScaleX float64
	ScaleY float64

	// Animate binds the tree to a spring animator. Without it fills apply
	// immediately.
	Animate   bool
	FPS       int
	Frequency float64
	Damping   float64

	Monochrome bool
	Logger     logger.Logger
}

// Scene is one gauge on its own surface, plus the animator and renderer
// that drive and draw it.
type Scene struct {
	host     *surface.Node
	gauge    *gauge.Gauge
	anim     *surface.Animator
	renderer *surface.Renderer
}

// NewScene attaches a gauge to a fresh surface tree.
func NewScene(opts Options) *Scene {
	s := &Scene{}

	var treeOpts []surface.TreeOption
	if opts.Animate {
		s.anim = surface.NewAnimator(opts.FPS, opts.Frequency, opts.Damping)
		treeOpts = append(treeOpts, surface.WithAnimator(s.anim))
	}
	s.host = surface.NewTree(treeOpts...)

	gaugeOpts := []gauge.Option{gauge.WithInnerBoundAdjustment(opts.InnerBoundAdjustment)}
	if opts.Logger != nil {
		gaugeOpts = append(gaugeOpts, gauge.WithLogger(opts.Logger))
	}
	s.gauge = gauge.Attach(s.host, opts.Gauge, gaugeOpts...)

	s.renderer = surface.NewRenderer(
		surface.WithScale(opts.ScaleX, opts.ScaleY),
		surface.WithMonochrome(opts.Monochrome),
	)
	return s
}

// Gauge returns the attached gauge.
func (s *Scene) Gauge() *gauge.Gauge {
	return s.gauge
}

// Apply pushes a reading into the gauge.
func (s *Scene) Apply(r feed.Reading) {
	r.Apply(s.gauge)
}

// Level is the fill target as a percentage of the gauge width.
func (s *Scene) Level() float64 {
	bar := s.host.Find(gauge.ClassFill)
	width := s.gauge.Config().Width
	if bar == nil || width == 0 {
		return 0
	}
	return bar.Target() / width * 100
}

// Animating reports whether a fill transition is in flight.
func (s *Scene) Animating() bool {
	return s.anim != nil && s.anim.Active()
}

// Step advances the fill transition by one frame.
func (s *Scene) Step() bool {
	if s.anim == nil {
		return false
	}
	return s.anim.Step()
}

// Settle finishes any transition at once.
func (s *Scene) Settle() {
	if s.anim != nil {
		s.anim.Settle()
	}
}

// Interval is the time between animation frames.
func (s *Scene) Interval() time.Duration {
	if s.anim == nil {
		return time.Second / surface.DefaultFPS
	}
	return s.anim.Interval()
}

// Render draws the gauge as it currently stands.
func (s *Scene) Render() string {
	return s.renderer.Render(s.host)
}

// Columns is the rendered width of the gauge in cells.
func (s *Scene) Columns() int {
	w, _ := s.renderer.Size(s.host)
	return w
}
