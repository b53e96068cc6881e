// Package style composes lipgloss styles into plain string renderers.
package style

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/movieflix-cli/movieflix/color"
)

func New() lipgloss.Style {
	return lipgloss.NewStyle()
}

func Colored(fg, bg lipgloss.Color) lipgloss.Style {
	return New().Foreground(fg).Background(bg)
}

// Fg returns a renderer with the given foreground.
func Fg(c lipgloss.Color) func(string) string {
	return func(s string) string { return Colored(c, "").Render(s) }
}

var (
	Faint = func(s string) string { return New().Faint(true).Render(s) }
	Bold  = func(s string) string { return New().Bold(true).Render(s) }
)

// Title renders the brand banner.
var Title = func(s string) string {
	return Colored(color.Foreground, color.Accent).Bold(true).Padding(0, 1).Render(s)
}

var ErrorTitle = func(s string) string {
	return Colored(color.Foreground, color.Danger).Padding(0, 1).Render(s)
}

// Tag renders a padded colored chip, used for genres and category tabs.
func Tag(fg, bg lipgloss.Color) func(string) string {
	return func(s string) string { return Colored(fg, bg).Padding(0, 1).Render(s) }
}
