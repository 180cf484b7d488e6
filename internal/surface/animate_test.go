package surface

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func runUntilIdle(a *Animator) int {
	frames := 0
	for frames < 10000 && a.Step() {
		frames++
	}
	return frames
}

func TestNewAnimator_Defaults(t *testing.T) {
	a := NewAnimator(0, 0, 0)
	assert.Equal(t, time.Second/DefaultFPS, a.Interval())
	assert.False(t, a.Active())

	a = NewAnimator(30, 8, 0.5)
	assert.Equal(t, time.Second/30, a.Interval())
}

func TestAnimator_ConvergesToTarget(t *testing.T) {
	a := NewAnimator(60, DefaultFrequency, DefaultDamping)
	root := NewTree(WithAnimator(a))
	bar := root.Append("bar", Style{})
	n := root.Find("bar")

	bar.AnimateWidth(100)
	assert.True(t, a.Active())
	assert.Equal(t, 0.0, n.Width())

	prev := 0.0
	for a.Step() {
		assert.GreaterOrEqual(t, n.Width(), prev, "critically damped fill should not move backwards")
		assert.LessOrEqual(t, n.Width(), 100.0)
		prev = n.Width()
	}

	assert.Equal(t, 100.0, n.Width())
	assert.False(t, a.Active())
}

func TestAnimator_RedirectsInFlight(t *testing.T) {
	a := NewAnimator(60, DefaultFrequency, DefaultDamping)
	root := NewTree(WithAnimator(a))
	bar := root.Append("bar", Style{})
	n := root.Find("bar")

	bar.AnimateWidth(100)
	for i := 0; i < 10; i++ {
		a.Step()
	}
	mid := n.Width()
	assert.Greater(t, mid, 0.0)

	bar.AnimateWidth(10)
	assert.Len(t, a.active, 1, "a redirect should not queue a second transition")

	runUntilIdle(a)
	assert.Equal(t, 10.0, n.Width())
}

func TestAnimator_UnderdampedStaysInRange(t *testing.T) {
	a := NewAnimator(60, 12, 0.2)
	root := NewTree(WithAnimator(a))
	bar := root.Append("bar", Style{})
	n := root.Find("bar")

	bar.AnimateWidth(50)
	for a.Step() {
		assert.LessOrEqual(t, n.Width(), 50.0)
		assert.GreaterOrEqual(t, n.Width(), 0.0)
	}
	assert.Equal(t, 50.0, n.Width())
}

func TestAnimator_Settle(t *testing.T) {
	a := NewAnimator(60, DefaultFrequency, DefaultDamping)
	root := NewTree(WithAnimator(a))
	root.Append("a", Style{}).AnimateWidth(30)
	root.Append("b", Style{Width: 80}).AnimateWidth(20)

	a.Settle()

	assert.False(t, a.Active())
	assert.Equal(t, 30.0, root.Find("a").Width())
	assert.Equal(t, 20.0, root.Find("b").Width())
}

func TestAnimator_NonFiniteTargetSnaps(t *testing.T) {
	a := NewAnimator(60, DefaultFrequency, DefaultDamping)
	root := NewTree(WithAnimator(a))
	bar := root.Append("bar", Style{})

	bar.AnimateWidth(40)
	bar.AnimateWidth(math.NaN())

	assert.False(t, a.Active())
	assert.True(t, math.IsNaN(root.Find("bar").Width()))
}
