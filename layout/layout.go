// Package layout derives grid and player dimensions from the terminal size.
package layout

import "github.com/movieflix-cli/movieflix/util"

const (
	// MinPlayerHeight is the smallest player panel that still fits the transport overlay.
	MinPlayerHeight = 5

	// Gutter is the horizontal space between cards.
	Gutter = 2
)

// Viewport is the terminal size in cells.
type Viewport struct {
	Width, Height int
}

// Landscape reports whether the viewport is wider than tall once cell aspect is accounted for.
// A cell is roughly twice as tall as it is wide.
func (v Viewport) Landscape() bool {
	return v.Width > 2*v.Height
}

// Columns is the number of cards per grid row.
func (v Viewport) Columns(tv bool) int {
	switch {
	case tv && v.Landscape():
		return 6
	case tv:
		return 3
	case v.Landscape():
		return 3
	default:
		return 2
	}
}

// CardWidth is the width available to one card.
func (v Viewport) CardWidth(tv bool) int {
	return util.Max(1, v.Width/v.Columns(tv)-Gutter)
}

// SideBySide reports whether the detail screen puts the info panel next to the player.
func (v Viewport) SideBySide(tv bool) bool {
	return tv && v.Landscape()
}

// PlayerWidth is the player panel width. Side by side it takes three fifths of the row.
func (v Viewport) PlayerWidth(tv bool) int {
	if v.SideBySide(tv) {
		return v.Width * 3 / 5
	}
	return v.Width
}

// PlayerHeight is the player panel height: 90% of the screen in landscape,
// otherwise a 16:9 frame across the full width.
func (v Viewport) PlayerHeight() int {
	if v.Height <= MinPlayerHeight {
		return util.Max(0, v.Height)
	}

	var height int
	if v.Landscape() {
		height = v.Height * 9 / 10
	} else {
		height = v.Width * 9 / 16 / 2
	}

	return util.Clamp(height, MinPlayerHeight, v.Height)
}
