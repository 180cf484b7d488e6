package display

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/rileyhilliard/thermo/internal/ui"
)

var (
	levelStyle = lipgloss.NewStyle().
			Foreground(ui.ColorPrimary).
			Bold(true)

	statusStyle = lipgloss.NewStyle().
			Foreground(ui.ColorMuted)

	doneStyle = lipgloss.NewStyle().
			Foreground(ui.ColorSuccess)

	errorStyle = lipgloss.NewStyle().
			Foreground(ui.ColorError)

	gaugeStyle = lipgloss.NewStyle().
			MarginTop(1).
			MarginBottom(1)
)
