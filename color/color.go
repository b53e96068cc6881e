// Package color names the terminal colors used by the CLI and the TUI.
package color

import "github.com/charmbracelet/lipgloss"

func New(value string) lipgloss.Color {
	return lipgloss.Color(value)
}

// ANSI colors follow the user's terminal theme.
var (
	Red    = New("1")
	Green  = New("2")
	Yellow = New("3")
	Blue   = New("4")
	Purple = New("5")
	Cyan   = New("6")
	White  = New("7")
	Black  = New("8")
)

// Brand colors. Hex values so they can be blended.
var (
	Accent     = New("#0077ff")
	Background = New("#000000")
	Surface    = New("#141414")
	Foreground = New("#ffffff")
	Muted      = New("#9e9e9e")
	Danger     = New("#e50914")
)
