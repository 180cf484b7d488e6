package ui

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Sparkline block characters representing 8 vertical levels (lowest to highest).
const sparklineBlocks = "▁▂▃▄▅▆▇█"

// sparklineBlockRunes provides indexed access to block characters.
var sparklineBlockRunes = []rune(sparklineBlocks)

// RenderSparkline draws the most recent width fill levels as block
// characters. Levels are percentages on a fixed 0-100 scale, so a steady
// half-full gauge draws mid-height blocks rather than a flat floor. Values
// outside the range are clamped.
//
// The color follows the last level:
//   - 0-60%: green (success)
//   - 60-80%: amber (warning)
//   - 80-100%: red (error)
func RenderSparkline(levels []float64, width int) string {
	if len(levels) == 0 || width <= 0 {
		return ""
	}

	if len(levels) > width {
		levels = levels[len(levels)-width:]
	}

	var sb strings.Builder
	sb.Grow(len(levels) * 3)

	top := float64(len(sparklineBlockRunes) - 1)
	for _, v := range levels {
		sb.WriteRune(sparklineBlockRunes[int(math.Round(clampPercent(v)/100*top))])
	}

	color := getThresholdColor(clampPercent(levels[len(levels)-1]))
	return lipgloss.NewStyle().Foreground(color).Render(sb.String())
}

func clampPercent(v float64) float64 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

// getThresholdColor returns a color based on percentage thresholds.
func getThresholdColor(percent float64) lipgloss.Color {
	switch {
	case percent >= 80:
		return ColorError
	case percent >= 60:
		return ColorWarning
	default:
		return ColorSuccess
	}
}
