package style

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/movieflix-cli/movieflix/color"
	"github.com/movieflix-cli/movieflix/util"
)

// Semantic mappings.
var (
	AccentColor  = color.Accent
	TextColor    = color.Foreground
	FaintColor   = color.Muted
	ErrorColor   = color.Danger
	SuccessColor = color.Green
	BorderColor  = lipgloss.Color("#333333")
)

// Fade blends fg towards bg. level 1 yields fg, level 0 yields bg.
// Colors that are not hex codes are returned unchanged at level > 0 and as bg at level 0.
func Fade(fg, bg lipgloss.Color, level float64) lipgloss.Color {
	level = util.Clamp(level, 0, 1)

	from, errFrom := colorful.Hex(string(fg))
	to, errTo := colorful.Hex(string(bg))
	if errFrom != nil || errTo != nil {
		if level == 0 {
			return bg
		}
		return fg
	}

	return lipgloss.Color(to.BlendRgb(from, level).Clamped().Hex())
}
