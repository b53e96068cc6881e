package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/movieflix-cli/movieflix/icon"
	"github.com/movieflix-cli/movieflix/query"
	"github.com/movieflix-cli/movieflix/style"
	"github.com/movieflix-cli/movieflix/util"
	"github.com/muesli/reflow/wrap"
)

var paddingStyle = lipgloss.NewStyle().Padding(1, 2)

func (b *statefulBubble) View() string {
	var output string

	switch b.state {
	case homeState:
		output = b.viewHome()
	case searchState:
		output = b.viewSearch()
	case detailState:
		output = b.viewDetail()
	case errorState:
		output = b.viewError()
	default:
		output = "Unknown state"
	}

	return b.notifier.View(output)
}

func (b *statefulBubble) viewSearch() string {
	lines := []string{
		style.Title("Search"),
		"",
		b.inputC.View(),
	}

	if recent := query.SuggestMany(""); len(recent) > 0 && b.inputC.Value() == "" {
		recent = recent[:util.Min(len(recent), 5)]
		lines = append(lines, style.Faint("Recent: "+strings.Join(recent, ", ")))
	}

	lines = append(lines, "", b.resultsC.View())
	return b.renderLines(true, lines)
}

func (b *statefulBubble) viewError() string {
	title := "Error"
	if errors.Is(b.lastError, errMovieNotFound) {
		title = "Movie not found"
	}

	body := style.Fg(style.ErrorColor)(fmt.Sprintf("%v", b.lastError))
	return b.renderLines(
		true,
		[]string{
			style.ErrorTitle(title),
			"",
			icon.Get(icon.Fail) + " " + wrap.String(body, b.width),
		},
	)
}

// renderLines pads lines to the screen height and appends the help bar.
func (b *statefulBubble) renderLines(addHelp bool, lines []string) string {
	l := strings.Join(lines, "\n")
	if addHelp {
		helpView := b.helpC.View(b.keymap)
		if h := lipgloss.Height(l) + lipgloss.Height(helpView); b.height > h {
			l += strings.Repeat("\n", b.height-h)
		}
		l += "\n" + helpView
	}

	return paddingStyle.Render(l)
}
