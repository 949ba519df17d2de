// Package style renders strings with lipgloss.
package style

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/radiodl-cli/radiodl/color"
)

func New() lipgloss.Style {
	return lipgloss.NewStyle()
}

// Fg returns a renderer for the foreground color c.
func Fg(c lipgloss.Color) func(string) string {
	return func(s string) string { return New().Foreground(c).Render(s) }
}

var (
	Faint = func(s string) string { return New().Faint(true).Render(s) }
	Bold  = func(s string) string { return New().Bold(true).Render(s) }
)

// Title renders a padded banner, used for the program list and run headers.
var Title = func(s string) string {
	return New().Foreground(color.Light).Background(color.Banner).Padding(0, 1).Render(s)
}

// Status renders the enabled state of a program the way the list shows it.
func Status(enabled bool) string {
	if enabled {
		return Fg(color.Green)("✓ Habilitado")
	}
	return Fg(color.Red)("✗ Deshabilitado")
}

// Box frames a block of text for warnings that should not scroll past unnoticed.
func Box(s string) string {
	return New().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(color.Alert).
		Padding(1, 2).
		Margin(1, 0).
		Render(s)
}
