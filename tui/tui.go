// Package tui is the interactive catalog browser and player screen.
package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/movieflix-cli/movieflix/playback"
	"github.com/samber/mo"
)

// Options configures a TUI run.
type Options struct {
	Engine playback.Engine
	TVMode bool

	// MovieID opens the detail screen of that movie instead of home.
	MovieID mo.Option[string]
}

// Run shows the TUI until the user quits. Any open playback session is closed before it returns.
func Run(options *Options) error {
	bubble := newBubble(options)
	if id, ok := options.MovieID.Get(); ok {
		bubble.initCmd = bubble.openByID(id)
	}

	_, err := tea.NewProgram(bubble, tea.WithAltScreen()).Run()
	bubble.shutdown()
	return err
}
