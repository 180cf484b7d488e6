package gauge

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "#000", cfg.LineColor)
	assert.Equal(t, 1.0, cfg.LineWidth)
	assert.Equal(t, "solid", cfg.LineType)
	assert.Equal(t, "#fff", cfg.Background)
	assert.Equal(t, "#44A0FC", cfg.FillColor)
	assert.Empty(t, cfg.FillImage)
	assert.False(t, cfg.ShowHatches)
	assert.Equal(t, 10.0, cfg.HatchLength)
	assert.Equal(t, 10.0, cfg.HatchValue)
	assert.Equal(t, Percent, cfg.HatchType)
	assert.Equal(t, 100.0, cfg.HatchTotalValue)
	assert.False(t, cfg.ShowHatchLabels)
	assert.Equal(t, "Arial, Verdana, Helvetica, sans-serif", cfg.HatchLabelFont)
	assert.Equal(t, 9.0, cfg.HatchLabelSize)
	assert.False(t, cfg.ShowValue)
	assert.Equal(t, Percent, cfg.ShowValueType)
	assert.Equal(t, "#000", cfg.ShowValueColor)
	assert.Equal(t, 100.0, cfg.Width)
	assert.Equal(t, 20.0, cfg.Height)
}

func TestConfigMerge(t *testing.T) {
	t.Run("empty overrides keep defaults", func(t *testing.T) {
		assert.Equal(t, DefaultConfig(), DefaultConfig().Merge(Config{}))
	})

	t.Run("set fields win", func(t *testing.T) {
		got := DefaultConfig().Merge(Config{
			LineColor:       "#333",
			LineType:        "dashed",
			Width:           240,
			HatchTotalValue: 50,
			ShowValue:       true,
			ShowValueType:   Quantity,
		})

		assert.Equal(t, "#333", got.LineColor)
		assert.Equal(t, "dashed", got.LineType)
		assert.Equal(t, 240.0, got.Width)
		assert.Equal(t, 50.0, got.HatchTotalValue)
		assert.True(t, got.ShowValue)
		assert.Equal(t, Quantity, got.ShowValueType)
		assert.Equal(t, 20.0, got.Height, "unset fields keep defaults")
		assert.Equal(t, "#44A0FC", got.FillColor)
	})

	t.Run("zero values count as unset", func(t *testing.T) {
		got := DefaultConfig().Merge(Config{Width: 0, HatchTotalValue: 0, LineWidth: 0})

		assert.Equal(t, 100.0, got.Width)
		assert.Equal(t, 100.0, got.HatchTotalValue)
		assert.Equal(t, 1.0, got.LineWidth)
	})

	t.Run("short type names are normalized", func(t *testing.T) {
		got := DefaultConfig().Merge(Config{HatchType: "qty", ShowValueType: "PCT"})

		assert.Equal(t, Quantity, got.HatchType)
		assert.Equal(t, Percent, got.ShowValueType)
	})
}

func TestValueType(t *testing.T) {
	tests := []struct {
		in        ValueType
		want      ValueType
		wantValid bool
	}{
		{"percent", Percent, true},
		{"pct", Percent, true},
		{"quantity", Quantity, true},
		{"qty", Quantity, true},
		{"Qty", Quantity, true},
		{"ratio", "ratio", false},
		{"", "", false},
	}

	for _, tt := range tests {
		t.Run(string(tt.in), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.in.Normalize())
			assert.Equal(t, tt.wantValid, tt.in.Valid())
		})
	}
}

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want string
	}{
		{"integer", 42, "42"},
		{"fraction", 1.5, "1.5"},
		{"negative zero", negZero(), "0"},
		{"negative", -3.25, "-3.25"},
		{"nan", nan(), "NaN"},
		{"inf", inf(1), "Infinity"},
		{"neg inf", inf(-1), "-Infinity"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, formatNumber(tt.in))
		})
	}
}

func negZero() float64 { return math.Copysign(0, -1) }
func nan() float64     { return math.NaN() }
func inf(sign int) float64 {
	return math.Inf(sign)
}
