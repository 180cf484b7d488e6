package gauge

import (
	"math"
	"strconv"
)

// formatNumber prints v the way labels show numbers: shortest decimal form,
// with NaN and Infinity spelled out.
func formatNumber(v float64) string {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "Infinity"
	case math.IsInf(v, -1):
		return "-Infinity"
	case v == 0:
		return "0"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// roundHalfUp rounds to the nearest integer with halves going up (-2.5 -> -2).
func roundHalfUp(v float64) float64 {
	return math.Floor(v + 0.5)
}
