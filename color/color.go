// Package color holds the terminal colors used for output.
package color

import "github.com/charmbracelet/lipgloss"

// New wraps an ANSI index or hex value.
func New(value string) lipgloss.Color {
	return lipgloss.Color(value)
}

// ANSI colors, so the output follows the terminal theme.
var (
	Red    = New("1")
	Green  = New("2")
	Yellow = New("3")
	Blue   = New("4")
	Purple = New("5")
	Cyan   = New("6")
	White  = New("7")
)

var (
	HiRed    = New("9")
	HiBlue   = New("12")
	HiPurple = New("13")
)

// Theme colors for boxes and banners.
var (
	Text   = New("#cdd6f4")
	Accent = New("#cba6f7")
	Alert  = New("#f38ba8")
	Banner = New("62")
	Light  = New("230")
)
