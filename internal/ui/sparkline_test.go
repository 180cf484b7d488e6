package ui

import (
	"math"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

func plainSparkline(t *testing.T, levels []float64, width int) string {
	t.Helper()
	original := lipgloss.ColorProfile()
	t.Cleanup(func() { lipgloss.SetColorProfile(original) })
	DisableColors()
	return RenderSparkline(levels, width)
}

func TestRenderSparkline(t *testing.T) {
	tests := []struct {
		name   string
		levels []float64
		width  int
		want   string
	}{
		{"nil data", nil, 10, ""},
		{"empty data", []float64{}, 10, ""},
		{"zero width", []float64{50, 60}, 0, ""},
		{"negative width", []float64{50, 60}, -5, ""},
		{"fixed scale", []float64{0, 50, 100}, 10, "▁▅█"},
		{"steady level keeps its height", []float64{50, 50, 50}, 10, "▅▅▅"},
		{"keeps most recent points", []float64{0, 0, 100, 100}, 2, "██"},
		{"clamps out of range", []float64{-20, 150}, 10, "▁█"},
		{"NaN draws the floor", []float64{math.NaN()}, 10, "▁"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, plainSparkline(t, tt.levels, tt.width))
		})
	}
}

func TestSparklineBlocksConstant(t *testing.T) {
	assert.Len(t, sparklineBlockRunes, 8)
	assert.Equal(t, '▁', sparklineBlockRunes[0])
	assert.Equal(t, '█', sparklineBlockRunes[7])
}

func TestGetThresholdColor(t *testing.T) {
	tests := []struct {
		percent float64
		want    lipgloss.Color
	}{
		{0, ColorSuccess},
		{59.9, ColorSuccess},
		{60, ColorWarning},
		{79.9, ColorWarning},
		{80, ColorError},
		{100, ColorError},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, getThresholdColor(tt.percent), "percent %v", tt.percent)
	}
}
