package ui

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Semantic colors for status indication
const (
	ColorSuccess lipgloss.Color = "#39FF14" // Green
	ColorError   lipgloss.Color = "#FF3860" // Red
	ColorWarning lipgloss.Color = "#FFB000" // Amber
	ColorInfo    lipgloss.Color = "#00F0FF" // Cyan
)

// Text colors for content hierarchy
const (
	ColorPrimary   lipgloss.Color = "#E6E6F0" // Near white
	ColorSecondary lipgloss.Color = "#7AA2F7" // Blue
	ColorMuted     lipgloss.Color = "#6B6B80" // Gray
)

// Accent colors for headers and borders
const (
	ColorNeonPink    lipgloss.Color = "#FF2E97"
	ColorNeonCyan    lipgloss.Color = "#00F0FF"
	ColorGlassBorder lipgloss.Color = "#3A3A4F"
)

// Color modes accepted by --color and output.color.
const (
	ColorModeAuto   = "auto"
	ColorModeAlways = "always"
	ColorModeNever  = "never"
)

// SuccessStyle renders success text.
func SuccessStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(ColorSuccess)
}

// ErrorStyle renders error text.
func ErrorStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(ColorError)
}

// WarningStyle renders warnings.
func WarningStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(ColorWarning)
}

// MutedStyle renders secondary text.
func MutedStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(ColorMuted)
}

// DisableColors switches lipgloss to plain output for the whole process.
func DisableColors() {
	lipgloss.SetColorProfile(termenv.Ascii)
}

// ApplyColorMode sets the lipgloss color profile from a color mode. "auto"
// leaves terminal detection alone. It reports whether colors end up enabled.
func ApplyColorMode(mode string) (bool, error) {
	switch mode {
	case "", ColorModeAuto:
		return lipgloss.ColorProfile() != termenv.Ascii, nil
	case ColorModeAlways:
		lipgloss.SetColorProfile(termenv.TrueColor)
		return true, nil
	case ColorModeNever:
		DisableColors()
		return false, nil
	}
	return false, fmt.Errorf("unknown color mode %q (want auto, always or never)", mode)
}

// PrintWarning prints a warning line to stderr.
func PrintWarning(msg string) {
	fmt.Fprintln(os.Stderr, WarningStyle().Render(SymbolWarning+" "+msg))
}
