package tui

import "github.com/charmbracelet/lipgloss"

// Catppuccin Mocha.
const (
	colorText     lipgloss.Color = "#cdd6f4"
	colorSubtext0 lipgloss.Color = "#a6adc8"
	colorOverlay0 lipgloss.Color = "#6c7086"
	colorSurface1 lipgloss.Color = "#45475a"
	colorLavender lipgloss.Color = "#b4befe"
	colorGreen    lipgloss.Color = "#a6e3a1"
	colorYellow   lipgloss.Color = "#f9e2af"
	colorPink     lipgloss.Color = "#f5c2e7"
)

type styles struct {
	title    lipgloss.Style
	label    lipgloss.Style
	disabled lipgloss.Style
	focused  lipgloss.Style
	button   lipgloss.Style
	hint     lipgloss.Style
	barFull  lipgloss.Style
	barEmpty lipgloss.Style
	alert    lipgloss.Style
	toast    lipgloss.Style
	help     lipgloss.Style
}

func newStyles() styles {
	return styles{
		title:    lipgloss.NewStyle().Bold(true).Foreground(colorPink).MarginBottom(1),
		label:    lipgloss.NewStyle().Foreground(colorText),
		disabled: lipgloss.NewStyle().Foreground(colorOverlay0),
		focused:  lipgloss.NewStyle().Foreground(colorLavender).Bold(true),
		button:   lipgloss.NewStyle().Foreground(colorText).Background(colorSurface1).Padding(0, 1),
		hint:     lipgloss.NewStyle().Foreground(colorSubtext0).Italic(true),
		barFull:  lipgloss.NewStyle().Foreground(colorGreen),
		barEmpty: lipgloss.NewStyle().Foreground(colorSurface1),
		alert: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorYellow).
			Padding(0, 2),
		toast: lipgloss.NewStyle().Foreground(colorGreen).MarginTop(1),
		help:  lipgloss.NewStyle().Foreground(colorOverlay0).MarginTop(1),
	}
}
