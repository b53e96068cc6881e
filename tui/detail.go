package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/movieflix-cli/movieflix/catalog"
	"github.com/movieflix-cli/movieflix/color"
	"github.com/movieflix-cli/movieflix/icon"
	"github.com/movieflix-cli/movieflix/internal/ui"
	"github.com/movieflix-cli/movieflix/layout"
	"github.com/movieflix-cli/movieflix/open"
	"github.com/movieflix-cli/movieflix/playback"
	"github.com/movieflix-cli/movieflix/style"
	"github.com/movieflix-cli/movieflix/util"
	"github.com/muesli/reflow/truncate"
	"github.com/muesli/reflow/wrap"
)

// minSimilarHeight keeps a few rows of the similar list on screen below the player.
const minSimilarHeight = 4

func (b *statefulBubble) viewDetail() string {
	if b.movie == nil || b.session == nil {
		return b.renderLines(true, []string{style.Faint("Nothing is playing.")})
	}

	vp := b.viewport()
	helpView := b.helpC.View(b.keymap)
	available := util.Max(layout.MinPlayerHeight, b.height-lipgloss.Height(helpView)-1)

	var body string
	if vp.SideBySide(b.tvMode) {
		playerWidth := vp.PlayerWidth(b.tvMode)
		playerHeight := util.Min(vp.PlayerHeight(), available)
		sideWidth := util.Max(1, b.width-playerWidth-layout.Gutter)

		info := b.renderInfo(sideWidth)
		b.similarC.SetSize(sideWidth, util.Max(minSimilarHeight, playerHeight-lipgloss.Height(info)-1))
		side := lipgloss.JoinVertical(lipgloss.Left, info, "", b.similarC.View())

		body = lipgloss.JoinHorizontal(
			lipgloss.Top,
			b.renderPlayer(playerWidth, playerHeight),
			strings.Repeat(" ", layout.Gutter),
			side,
		)
	} else {
		// the similar list keeps a minimum share of short terminals
		playerHeight := util.Clamp(vp.PlayerHeight(), layout.MinPlayerHeight, util.Max(layout.MinPlayerHeight, available*3/5))
		info := b.renderInfo(b.width)
		b.similarC.SetSize(b.width, util.Max(minSimilarHeight, available-playerHeight-lipgloss.Height(info)-2))

		body = lipgloss.JoinVertical(
			lipgloss.Left,
			b.renderPlayer(b.width, playerHeight),
			"",
			info,
			"",
			b.similarC.View(),
		)
	}

	return b.renderLines(true, []string{body})
}

// renderPlayer draws the player panel: the poster placeholder until media is ready,
// the buffering spinner, and the header and transport overlays while controls are visible.
func (b *statefulBubble) renderPlayer(width, height int) string {
	state := b.session.State()

	innerWidth := util.Max(1, width-2)
	innerHeight := util.Max(1, height-2)
	lines := make([]string, innerHeight)

	center := func(s string) string {
		return lipgloss.PlaceHorizontal(innerWidth, lipgloss.Center, truncate.StringWithTail(s, uint(innerWidth), "…"))
	}

	var middle []string
	switch {
	case state.ShowPlaceholder:
		poster, _ := state.PosterURI.Get()
		middle = []string{
			style.Fg(style.FaintColor)(icon.Get(icon.Poster)),
			style.Faint(poster),
			b.spinnerC.View() + " Loading",
		}
	case state.Buffering:
		middle = []string{b.spinnerC.View() + " Buffering"}
	case state.Status.IsPlaying:
		middle = []string{style.Fg(style.TextColor)(icon.Get(icon.Play) + " Playing")}
	default:
		middle = []string{style.Fg(style.FaintColor)(icon.Get(icon.Pause) + " Paused")}
	}

	top := util.Max(0, (innerHeight-len(middle))/2)
	for i, line := range middle {
		if top+i < innerHeight {
			lines[top+i] = center(line)
		}
	}

	if state.ControlsVisible {
		fg := style.Fade(style.TextColor, color.Background, state.FadeLevel)
		lines[0] = style.Fg(fg)(style.Bold(truncate.StringWithTail(state.Title.OrElse(b.movie.Title), uint(innerWidth), "…")))

		transport := b.renderTransport(state, innerWidth)
		for i, line := range transport {
			at := innerHeight - len(transport) + i
			if at > 0 {
				lines[at] = line
			}
		}
	}

	border := style.BorderColor
	if state.VideoReady {
		border = style.AccentColor
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Width(innerWidth).
		Height(innerHeight).
		Render(strings.Join(lines, "\n"))
}

// renderTransport draws the bottom overlay. TV mode defers controls to the engine and only shows the clock.
func (b *statefulBubble) renderTransport(state playback.State, width int) []string {
	fg := style.Fade(style.TextColor, color.Background, state.FadeLevel)
	clock := fmt.Sprintf(
		"%s / %s",
		playback.FormatTime(state.Status.PositionMillis),
		playback.FormatTime(state.Status.DurationMillis),
	)

	if state.TVMode {
		return []string{style.Fg(fg)(clock)}
	}

	toggle := icon.Get(icon.Play)
	if state.Status.IsPlaying {
		toggle = icon.Get(icon.Pause)
	}
	hints := fmt.Sprintf("%s  %s  %s   %s", icon.Get(icon.Rewind), toggle, icon.Get(icon.Forward), clock)

	b.progressC.Width = util.Max(1, width)
	b.progressC.FullColor = string(style.Fade(style.AccentColor, color.Background, state.FadeLevel))
	b.progressC.EmptyColor = string(style.Fade(style.BorderColor, color.Background, state.FadeLevel))

	return []string{
		b.progressC.ViewAs(state.Progress),
		style.Fg(fg)(truncate.StringWithTail(hints, uint(width), "…")),
	}
}

func (b *statefulBubble) renderInfo(width int) string {
	m := b.movie

	tags := make([]string, 0, len(m.Genre))
	for _, genre := range m.Genre {
		tags = append(tags, style.Tag(color.Foreground, color.Surface)(genre))
	}

	lines := []string{
		style.Bold(truncate.StringWithTail(m.Title, uint(util.Max(1, width)), "…")),
		style.Faint(fmt.Sprintf("%s %s", icon.Get(icon.Time), m.Duration)),
	}
	if len(tags) > 0 {
		lines = append(lines, strings.Join(tags, " "))
	}
	lines = append(lines, "", wrap.String(m.Description, util.Max(1, width)))

	return strings.Join(lines, "\n")
}

// openSimilar leaves the current movie for m. esc comes back to the current one.
func (b *statefulBubble) openSimilar(m *catalog.Movie) tea.Cmd {
	b.movieHistory.Push(b.movie)
	b.closeSession()
	return b.openMovie(m)
}

// leaveDetail closes the session and returns to the previous movie, or to the screen before the first one.
func (b *statefulBubble) leaveDetail() tea.Cmd {
	b.closeSession()
	if b.movieHistory.Len() > 0 {
		return b.openMovie(b.movieHistory.Pop())
	}
	b.previousState()
	if b.state == searchState {
		return b.inputC.Focus()
	}
	return nil
}

func (b *statefulBubble) openPoster() tea.Cmd {
	poster, ok := b.session.State().PosterURI.Get()
	if !ok {
		return nil
	}

	return func() tea.Msg {
		if err := open.Start(poster); err != nil {
			return ui.Notification{Text: fmt.Sprintf("could not open poster: %v", err), Failure: true}
		}
		return "Poster opened"
	}
}

// sessionCmd runs a transport command off the update loop, as engines may block on IPC.
func sessionCmd(session *playback.Session, command func(*playback.Session)) tea.Cmd {
	return func() tea.Msg {
		command(session)
		return nil
	}
}
