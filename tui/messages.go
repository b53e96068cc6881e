package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/movieflix-cli/movieflix/playback"
)

// fadeFrameInterval paces redraws while the overlay fades, about 30 frames a second.
const fadeFrameInterval = 33 * time.Millisecond

// sessionChangedMsg means some session mutated and the screen should be redrawn.
type sessionChangedMsg struct{}

// sessionFailedMsg carries an engine command failure.
type sessionFailedMsg struct {
	session *playback.Session
	err     error
}

type attachedMsg struct {
	session *playback.Session
	done    <-chan struct{}
	err     error
}

// engineExitedMsg is sent when the engine process of session goes away.
type engineExitedMsg struct {
	session *playback.Session
}

type fadeFrameMsg struct{}

func (b *statefulBubble) waitForChange() tea.Cmd {
	return func() tea.Msg {
		<-b.changes
		return sessionChangedMsg{}
	}
}

func (b *statefulBubble) waitForFailure() tea.Cmd {
	return func() tea.Msg {
		return <-b.failures
	}
}

func waitForExit(session *playback.Session, done <-chan struct{}) tea.Cmd {
	return func() tea.Msg {
		<-done
		return engineExitedMsg{session: session}
	}
}

func fadeFrame() tea.Cmd {
	return tea.Tick(fadeFrameInterval, func(time.Time) tea.Msg {
		return fadeFrameMsg{}
	})
}
