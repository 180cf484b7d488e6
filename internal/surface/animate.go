package surface

import (
	"math"
	"time"

	"github.com/charmbracelet/harmonica"
)

// Spring defaults. A damping ratio of 1 is critically damped, so a fill
// never overshoots its target.
const (
	DefaultFPS       = 60
	DefaultFrequency = 6.0
	DefaultDamping   = 1.0
)

// settleEpsilon is how close (in layout units) a transition must be to its
// target, with near-zero velocity, before it snaps and stops.
const settleEpsilon = 0.05

// Animator moves node widths toward their targets with a spring. It is
// advanced explicitly by Step, normally once per frame tick.
type Animator struct {
	spring harmonica.Spring
	fps    int
	active []*transition
}

type transition struct {
	node     *Node
	from     float64
	pos, vel float64
	target   float64
}

// NewAnimator creates an animator stepping at fps frames per second.
// Non-positive arguments fall back to the package defaults.
func NewAnimator(fps int, frequency, damping float64) *Animator {
	if fps <= 0 {
		fps = DefaultFPS
	}
	if frequency <= 0 {
		frequency = DefaultFrequency
	}
	if damping <= 0 {
		damping = DefaultDamping
	}
	return &Animator{
		spring: harmonica.NewSpring(harmonica.FPS(fps), frequency, damping),
		fps:    fps,
	}
}

// Interval is the wall-clock time between frames.
func (a *Animator) Interval() time.Duration {
	return time.Second / time.Duration(a.fps)
}

// Active reports whether any transition is still running.
func (a *Animator) Active() bool {
	return len(a.active) > 0
}

// track starts a transition for n or redirects the one in flight.
func (a *Animator) track(n *Node, target float64) {
	if math.IsNaN(target) || math.IsInf(target, 0) {
		a.drop(n)
		n.setWidth(target)
		return
	}
	for _, t := range a.active {
		if t.node == n {
			t.from = t.pos
			t.target = target
			return
		}
	}
	from := n.style.Width
	if math.IsNaN(from) || math.IsInf(from, 0) {
		from = 0
	}
	a.active = append(a.active, &transition{
		node:   n,
		from:   from,
		pos:    from,
		target: target,
	})
}

func (a *Animator) drop(n *Node) {
	for i, t := range a.active {
		if t.node == n {
			a.active = append(a.active[:i], a.active[i+1:]...)
			return
		}
	}
}

// Step advances every transition by one frame and reports whether any is
// still moving.
func (a *Animator) Step() bool {
	remaining := a.active[:0]
	for _, t := range a.active {
		t.pos, t.vel = a.spring.Update(t.pos, t.vel, t.target)
		t.pos = clampBetween(t.pos, t.from, t.target)

		if math.Abs(t.pos-t.target) < settleEpsilon && math.Abs(t.vel) < settleEpsilon {
			t.node.setWidth(t.target)
			continue
		}
		t.node.setWidth(t.pos)
		remaining = append(remaining, t)
	}
	a.active = remaining
	return a.Active()
}

// Settle jumps every transition to its target.
func (a *Animator) Settle() {
	for _, t := range a.active {
		t.node.setWidth(t.target)
	}
	a.active = nil
}

func clampBetween(v, a, b float64) float64 {
	lo, hi := math.Min(a, b), math.Max(a, b)
	return math.Max(lo, math.Min(hi, v))
}
