package tui

import (
	"errors"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/movieflix-cli/movieflix/catalog"
	"github.com/movieflix-cli/movieflix/log"
	"github.com/movieflix-cli/movieflix/playback"
	"github.com/movieflix-cli/movieflix/query"
)

var errEngineExited = errors.New("the player window was closed")

func (b *statefulBubble) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmds := []tea.Cmd{b.notifier.Update(msg)}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		b.resize(msg.Width, msg.Height)
	case spinner.TickMsg:
		var cmd tea.Cmd
		b.spinnerC, cmd = b.spinnerC.Update(msg)
		cmds = append(cmds, cmd)
	case sessionChangedMsg:
		cmds = append(cmds, b.waitForChange(), b.startFade())
	case fadeFrameMsg:
		cmds = append(cmds, b.nextFadeFrame())
	case sessionFailedMsg:
		if msg.session == b.session {
			cmds = append(cmds, b.notifyFailure(msg.err))
		}
		cmds = append(cmds, b.waitForFailure())
	case attachedMsg:
		cmds = append(cmds, b.handleAttached(msg))
	case engineExitedMsg:
		if msg.session == b.session {
			cmds = append(cmds, b.notifyFailure(errEngineExited))
		}
	case error:
		b.raiseError(msg)
	case tea.KeyMsg:
		cmds = append(cmds, b.handleKey(msg))
	default:
		if b.state == searchState {
			var cmd tea.Cmd
			b.inputC, cmd = b.inputC.Update(msg)
			cmds = append(cmds, cmd)
		}
	}

	return b, tea.Batch(cmds...)
}

func (b *statefulBubble) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, b.keymap.forceQuit):
		return tea.Quit
	case b.state == searchState:
		return b.handleSearchKey(msg)
	case key.Matches(msg, b.keymap.quit):
		return tea.Quit
	case key.Matches(msg, b.keymap.showHelp):
		b.helpC.ShowAll = !b.helpC.ShowAll
		return nil
	}

	switch b.state {
	case homeState:
		return b.handleHomeKey(msg)
	case detailState:
		return b.handleDetailKey(msg)
	case errorState:
		if key.Matches(msg, b.keymap.back) {
			b.previousState()
		}
	}
	return nil
}

func (b *statefulBubble) handleHomeKey(msg tea.KeyMsg) tea.Cmd {
	columns := b.viewport().Columns(b.tvMode)

	switch {
	case key.Matches(msg, b.keymap.confirm):
		if movie, ok := b.selectedHomeMovie().Get(); ok {
			return b.openMovie(movie)
		}
	case key.Matches(msg, b.keymap.search):
		b.newState(searchState)
		b.inputC.SetSuggestions(query.SuggestMany(""))
		return b.inputC.Focus()
	case key.Matches(msg, b.keymap.top):
		b.backToTop()
	case key.Matches(msg, b.keymap.nextTab):
		if !b.tvMode {
			b.switchCategory(1)
		}
	case key.Matches(msg, b.keymap.prevTab):
		if !b.tvMode {
			b.switchCategory(-1)
		}
	case key.Matches(msg, b.keymap.left):
		b.moveFlat(-1, columns)
	case key.Matches(msg, b.keymap.right):
		b.moveFlat(1, columns)
	case key.Matches(msg, b.keymap.up):
		b.moveHome(-1, 0)
	case key.Matches(msg, b.keymap.down):
		b.moveHome(1, 0)
	}
	return nil
}

// moveFlat moves left or right. The mobile grid wraps between rows, TV rows do not.
func (b *statefulBubble) moveFlat(delta, columns int) {
	if b.tvMode {
		b.moveHome(0, delta)
		return
	}

	movies := catalog.Filter(b.category)
	if len(movies) == 0 {
		return
	}
	index := b.row*columns + b.cursor + delta
	if index < 0 || index >= len(movies) {
		return
	}
	b.row, b.cursor = index/columns, index%columns
}

func (b *statefulBubble) handleSearchKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case msg.Type == tea.KeyEsc:
		b.inputC.Blur()
		b.previousState()
		return nil
	case key.Matches(msg, b.keymap.confirm):
		if movie, ok := selectedMovie(b.resultsC); ok {
			if err := query.Remember(b.inputC.Value(), 1); err != nil {
				log.Warnf("tui: remember query: %v", err)
			}
			b.inputC.Blur()
			return b.openMovie(movie)
		}
		return nil
	case msg.Type == tea.KeyUp:
		b.resultsC.CursorUp()
		return nil
	case msg.Type == tea.KeyDown:
		b.resultsC.CursorDown()
		return nil
	}

	var cmd tea.Cmd
	before := b.inputC.Value()
	b.inputC, cmd = b.inputC.Update(msg)
	if value := b.inputC.Value(); value != before {
		b.resultsC.ResetSelected()
		return tea.Batch(cmd, b.resultsC.SetItems(movieItems(catalog.Search(value))))
	}
	return cmd
}

func (b *statefulBubble) handleDetailKey(msg tea.KeyMsg) tea.Cmd {
	session := b.session
	if session == nil {
		b.previousState()
		return nil
	}

	if key.Matches(msg, b.keymap.toggleControls) {
		session.ToggleControls()
		return nil
	}
	session.ShowControls()

	switch {
	case key.Matches(msg, b.keymap.back):
		return b.leaveDetail()
	case key.Matches(msg, b.keymap.playPause):
		return sessionCmd(session, (*playback.Session).TogglePlayPause)
	case key.Matches(msg, b.keymap.seekBackward):
		return sessionCmd(session, (*playback.Session).SeekBackward)
	case key.Matches(msg, b.keymap.seekForward):
		return sessionCmd(session, (*playback.Session).SeekForward)
	case key.Matches(msg, b.keymap.openPoster):
		return b.openPoster()
	case key.Matches(msg, b.keymap.up):
		b.similarC.CursorUp()
	case key.Matches(msg, b.keymap.down):
		b.similarC.CursorDown()
	case key.Matches(msg, b.keymap.confirm):
		if movie, ok := selectedMovie(b.similarC); ok {
			return b.openSimilar(movie)
		}
	}
	return nil
}
