package tui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/movieflix-cli/movieflix/color"
	"github.com/movieflix-cli/movieflix/style"
)

// statefulKeymap holds every binding; help() picks the ones relevant to the current state.
type statefulKeymap struct {
	state  state
	tvMode bool

	quit, forceQuit,
	confirm,
	back,
	search,
	up, down, left, right,
	top,
	nextTab, prevTab,
	playPause, seekBackward, seekForward,
	toggleControls,
	openPoster,
	showHelp key.Binding
}

func (k *statefulKeymap) setState(newState state) {
	k.state = newState
}

func newStatefulKeymap(tvMode bool) *statefulKeymap {
	return &statefulKeymap{
		tvMode: tvMode,
		quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
		forceQuit: key.NewBinding(
			key.WithKeys("ctrl+c", "ctrl+d"),
			key.WithHelp("ctrl+c", "quit"),
		),
		confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "open"),
		),
		back: key.NewBinding(
			key.WithKeys("esc", "backspace"),
			key.WithHelp("esc", "back"),
		),
		search: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "search"),
		),
		up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "left"),
		),
		right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "right"),
		),
		top: key.NewBinding(
			key.WithKeys("g", "home"),
			key.WithHelp("g", "back to top"),
		),
		nextTab: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next category"),
		),
		prevTab: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "prev category"),
		),
		playPause: key.NewBinding(
			key.WithKeys(" ", "space"),
			key.WithHelp(style.Fg(color.Accent)("space"), style.Fg(color.Accent)("play/pause")),
		),
		seekBackward: key.NewBinding(
			key.WithKeys("left"),
			key.WithHelp("←", "-10s"),
		),
		seekForward: key.NewBinding(
			key.WithKeys("right"),
			key.WithHelp("→", "+10s"),
		),
		toggleControls: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "controls"),
		),
		openPoster: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp("o", "open poster"),
		),
		showHelp: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
	}
}

func (k *statefulKeymap) help() ([]key.Binding, []key.Binding) {
	h := func(bindings ...key.Binding) []key.Binding {
		return bindings
	}

	to2 := func(a []key.Binding) ([]key.Binding, []key.Binding) {
		return a, a
	}

	switch k.state {
	case homeState:
		if k.tvMode {
			return h(k.confirm, k.search, k.top, k.showHelp), h(k.confirm, k.up, k.down, k.left, k.right, k.search, k.top, k.quit)
		}
		return h(k.confirm, k.search, k.nextTab, k.showHelp), h(k.confirm, k.up, k.down, k.left, k.right, k.nextTab, k.prevTab, k.search, k.top, k.quit)
	case searchState:
		return to2(h(withDescription(k.confirm, "watch"), k.up, k.down, k.back))
	case detailState:
		return h(k.playPause, k.seekBackward, k.seekForward, k.back, k.showHelp),
			h(k.playPause, k.seekBackward, k.seekForward, k.toggleControls, k.openPoster, withDescription(k.confirm, "watch similar"), k.back, k.quit)
	case errorState:
		return to2(h(k.back, k.quit))
	default:
		return to2(h())
	}
}

func (k *statefulKeymap) ShortHelp() []key.Binding {
	short, _ := k.help()
	return short
}

func (k *statefulKeymap) FullHelp() [][]key.Binding {
	_, full := k.help()
	return [][]key.Binding{full}
}

func withDescription(k key.Binding, description string) key.Binding {
	return key.NewBinding(
		key.WithKeys(k.Keys()...),
		key.WithHelp(k.Help().Key, description),
	)
}
