package gauge

import (
	"strings"
	"testing"

	"github.com/rileyhilliard/thermo/internal/surface"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender_DefaultGaugeHalfFull(t *testing.T) {
	host, g := attach(t, Config{FillColor: "#000"})
	g.FillByPercent(50)

	out := surface.NewRenderer(surface.WithMonochrome(true)).Render(host)

	fill := strings.Repeat("█", 25) + strings.Repeat(" ", 25)
	want := strings.Join([]string{
		"┌" + strings.Repeat("─", 50) + "┐",
		"│" + fill + "│",
		"│" + fill + "│",
		"└" + strings.Repeat("─", 50) + "┘",
	}, "\n")
	assert.Equal(t, want, out)
}

func TestRender_ValueAndHatches(t *testing.T) {
	host, g := attach(t, Config{
		FillColor:       "#000",
		ShowValue:       true,
		ShowHatches:     true,
		ShowHatchLabels: true,
	})
	g.FillByPercent(50)

	out := strings.Split(surface.NewRenderer(surface.WithMonochrome(true)).Render(host), "\n")
	require.Len(t, out, 5)

	assert.Equal(t, "│██50%"+strings.Repeat("█", 20)+strings.Repeat(" ", 25)+"│", out[1])
	assert.Equal(t, "│ 0% │ 10%│ 20%│ 30%│ 40%│ 50%│ 60%│ 70%│ 80%│ 90% │", out[4])
}

func TestRender_FullGaugeStaysInsideBorder(t *testing.T) {
	host, g := attach(t, Config{FillColor: "#000", HatchTotalValue: 50})
	g.FillByQuantity(60)

	out := strings.Split(surface.NewRenderer(surface.WithMonochrome(true)).Render(host), "\n")
	assert.Equal(t, "│"+strings.Repeat("█", 50)+"│", out[1])
}
