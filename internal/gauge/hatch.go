package gauge

import "math"

// Hatch is one tick mark under the gauge.
type Hatch struct {
	Index int
	Left  float64
	Width float64
	Label string
	Last  bool // the last tick also closes the strip on the right
}

// HatchLayout computes the ticks for cfg: floor(100/HatchValue) of them,
// each round(Width*HatchValue/100) wide, laid out left to right. A
// non-positive HatchValue yields no ticks.
func HatchLayout(cfg Config) []Hatch {
	if !(cfg.HatchValue > 0) {
		return nil
	}
	count := int(math.Floor(100 / cfg.HatchValue))
	width := roundHalfUp(cfg.Width * (cfg.HatchValue / 100))

	hatches := make([]Hatch, count)
	for i := range hatches {
		hatches[i] = Hatch{
			Index: i,
			Left:  float64(i) * width,
			Width: width,
			Label: hatchLabel(cfg, i),
			Last:  i == count-1,
		}
	}
	return hatches
}

// hatchLabel is the quantity or percentage at the tick's left edge.
func hatchLabel(cfg Config, i int) string {
	step := float64(i) * cfg.HatchValue
	if cfg.HatchType == Quantity {
		return formatNumber(step / 100 * cfg.HatchTotalValue)
	}
	return formatNumber(step) + "%"
}
