// Package ui renders short-lived notifications below the active screen.
package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/movieflix-cli/movieflix/icon"
	"github.com/movieflix-cli/movieflix/style"
)

// Lifetime is how long a notification stays on screen.
const Lifetime = 3 * time.Second

// Model holds the notification currently shown, if any.
type Model struct {
	notification string
	failure      bool
	generation   int
}

// Notification is a message that replaces the shown notification.
type Notification struct {
	Text    string
	Failure bool
}

// ClearNotificationMsg removes the notification it was scheduled for.
type ClearNotificationMsg struct {
	generation int
}

// Notify shows text for Lifetime.
func Notify(text string) tea.Cmd {
	return func() tea.Msg {
		return Notification{Text: text}
	}
}

// NotifyFailure shows err with the fail icon.
func NotifyFailure(err error) tea.Cmd {
	return func() tea.Msg {
		return Notification{Text: err.Error(), Failure: true}
	}
}

// Update consumes notification messages. Plain strings are accepted as informational notifications.
func (m *Model) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case string:
		return m.show(Notification{Text: msg})
	case Notification:
		return m.show(msg)
	case ClearNotificationMsg:
		// a newer notification owns the screen
		if msg.generation == m.generation {
			m.notification = ""
			m.failure = false
		}
	}
	return nil
}

func (m *Model) show(n Notification) tea.Cmd {
	m.generation++
	m.notification = n.Text
	m.failure = n.Failure

	generation := m.generation
	return tea.Tick(Lifetime, func(time.Time) tea.Msg {
		return ClearNotificationMsg{generation: generation}
	})
}

// Text is the shown notification, empty when there is none.
func (m *Model) Text() string {
	return m.notification
}

// View appends the notification to the last line of mainContent.
func (m *Model) View(mainContent string) string {
	if m.notification == "" {
		return mainContent
	}

	var notifier string
	if m.failure {
		notifier = style.Fg(style.ErrorColor)(fmt.Sprintf("%s %s", icon.Get(icon.Fail), m.notification))
	} else {
		notifier = style.Faint(m.notification)
	}

	lines := strings.Split(mainContent, "\n")
	lines[len(lines)-1] = lines[len(lines)-1] + "  " + notifier
	return strings.Join(lines, "\n")
}
