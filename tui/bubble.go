package tui

import (
	"errors"
	"fmt"
	"sync"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/movieflix-cli/movieflix/catalog"
	"github.com/movieflix-cli/movieflix/icon"
	"github.com/movieflix-cli/movieflix/internal/ui"
	"github.com/movieflix-cli/movieflix/key"
	"github.com/movieflix-cli/movieflix/layout"
	"github.com/movieflix-cli/movieflix/log"
	"github.com/movieflix-cli/movieflix/playback"
	"github.com/movieflix-cli/movieflix/style"
	"github.com/movieflix-cli/movieflix/util"
	"github.com/samber/mo"
	"github.com/spf13/viper"
)

var errMovieNotFound = errors.New("movie not found")

type statefulBubble struct {
	state         state
	statesHistory util.Stack[state]
	keymap        *statefulKeymap

	engine       playback.Engine
	tvMode       bool
	featured     int
	similarLimit int

	width, height int

	// home
	category catalog.Category
	cursor   int
	row      int

	// components
	inputC    textinput.Model
	resultsC  list.Model
	similarC  list.Model
	spinnerC  spinner.Model
	progressC progress.Model
	helpC     help.Model
	notifier  *ui.Model

	// detail
	movie        *catalog.Movie
	movieHistory util.Stack[*catalog.Movie]
	session      *playback.Session

	changes     chan struct{}
	failures    chan sessionFailedMsg
	fadeTicking bool
	closing     sync.WaitGroup

	initCmd   tea.Cmd
	lastError error
}

func newBubble(options *Options) *statefulBubble {
	bubble := statefulBubble{
		statesHistory: util.Stack[state]{},
		keymap:        newStatefulKeymap(options.TVMode),

		engine:       options.Engine,
		tvMode:       options.TVMode,
		featured:     viper.GetInt(key.HomeFeaturedCount),
		similarLimit: viper.GetInt(key.DetailSimilarLimit),

		category: catalog.CategoryAll,

		changes:  make(chan struct{}, 1),
		failures: make(chan sessionFailedMsg, 8),
		notifier: &ui.Model{},
	}

	if bubble.similarLimit <= 0 {
		bubble.similarLimit = catalog.DefaultSimilarLimit
	}

	makeList := func(title string) list.Model {
		delegate := list.NewDefaultDelegate()
		delegate.Styles.SelectedTitle = lipgloss.NewStyle().
			Border(lipgloss.ThickBorder(), false, false, false, true).
			BorderForeground(style.AccentColor).
			Foreground(style.AccentColor).
			Padding(0, 0, 0, 1)
		delegate.Styles.NormalTitle = delegate.Styles.NormalTitle.Foreground(style.TextColor)
		delegate.Styles.SelectedDesc = delegate.Styles.SelectedTitle.Foreground(style.FaintColor)

		listC := list.New([]list.Item{}, delegate, 0, 0)
		listC.Title = title
		listC.Styles.Title = lipgloss.NewStyle().Bold(true).Foreground(style.TextColor)
		listC.Styles.NoItems = lipgloss.NewStyle().Foreground(style.FaintColor)
		listC.SetFilteringEnabled(false)
		listC.SetShowHelp(false)
		listC.SetShowStatusBar(false)
		listC.SetShowPagination(false)
		return listC
	}

	bubble.resultsC = makeList("Results")
	bubble.resultsC.SetItems(movieItems(catalog.Search("")))
	bubble.similarC = makeList("You May Also Like")

	bubble.inputC = textinput.New()
	bubble.inputC.Placeholder = "Search movies, genres..."
	bubble.inputC.Prompt = icon.Get(icon.Search) + " "
	bubble.inputC.PromptStyle = lipgloss.NewStyle().Foreground(style.AccentColor)
	bubble.inputC.CharLimit = 80
	bubble.inputC.ShowSuggestions = true

	bubble.spinnerC = spinner.New(
		spinner.WithSpinner(spinner.Dot),
		spinner.WithStyle(lipgloss.NewStyle().Foreground(style.AccentColor)),
	)

	bubble.progressC = progress.New(
		progress.WithSolidFill(string(style.AccentColor)),
		progress.WithoutPercentage(),
	)

	bubble.helpC = help.New()

	return &bubble
}

func (b *statefulBubble) Init() tea.Cmd {
	return tea.Batch(
		b.spinnerC.Tick,
		b.waitForChange(),
		b.waitForFailure(),
		b.initCmd,
	)
}

func (b *statefulBubble) raiseError(err error) {
	b.lastError = err
	b.newState(errorState)
}

func (b *statefulBubble) setState(s state) {
	b.state = s
	b.keymap.setState(s)
}

// newState switches to s, remembering the current state unless it is the error screen.
func (b *statefulBubble) newState(s state) {
	if b.state == s {
		return
	}

	if b.state != errorState {
		b.statesHistory.Push(b.state)
	}

	b.setState(s)
}

func (b *statefulBubble) previousState() {
	if b.statesHistory.Len() > 0 {
		b.setState(b.statesHistory.Pop())
		return
	}
	b.setState(homeState)
}

func (b *statefulBubble) resize(width, height int) {
	x, y := paddingStyle.GetFrameSize()

	b.width = util.Max(0, width-x)
	b.height = util.Max(0, height-y)

	b.helpC.Width = b.width
	b.inputC.Width = util.Max(1, b.width-4)
	b.resultsC.SetSize(b.width, util.Max(1, b.height-4))
}

func (b *statefulBubble) viewport() layout.Viewport {
	return layout.Viewport{Width: b.width, Height: b.height}
}

// openByID opens the detail screen of the movie with id, or the error screen when there is none.
func (b *statefulBubble) openByID(id string) tea.Cmd {
	movie, ok := catalog.Find(id).Get()
	if !ok {
		b.raiseError(fmt.Errorf("%w: %q", errMovieNotFound, id))
		return nil
	}
	return b.openMovie(movie)
}

// openMovie starts a playback session for m and shows its detail screen.
// The previous session, if any, must be closed by the caller.
func (b *statefulBubble) openMovie(m *catalog.Movie) tea.Cmd {
	var session *playback.Session
	session = playback.New(playback.Options{
		MediaURI:  m.VideoURL,
		PosterURI: posterOf(m),
		Title:     mo.Some(m.Title),
		TVMode:    b.tvMode,
		OnChange:  b.sessionChanged,
		OnError: func(err error) {
			b.sessionFailed(session, err)
		},
	})

	b.movie = m
	b.session = session
	b.similarC.SetItems(movieItems(catalog.Similar(m, b.similarLimit)))
	b.similarC.Select(0)
	b.newState(detailState)

	log.Infof("tui: opened %s", m)
	return b.attach(session)
}

// attach runs the potentially slow engine start off the update loop.
func (b *statefulBubble) attach(session *playback.Session) tea.Cmd {
	engine := b.engine
	if engine == nil {
		return ui.NotifyFailure(errors.New("no playback engine configured"))
	}

	return func() tea.Msg {
		var done <-chan struct{}
		err := session.Attach(playback.EngineFunc(func(uri string) (playback.Handle, error) {
			handle, err := engine.Attach(uri)
			if exiter, ok := handle.(interface{ Done() <-chan struct{} }); ok && err == nil {
				done = exiter.Done()
			}
			return handle, err
		}))
		return attachedMsg{session: session, done: done, err: err}
	}
}

func (b *statefulBubble) handleAttached(msg attachedMsg) tea.Cmd {
	if msg.err != nil {
		if errors.Is(msg.err, playback.ErrClosed) {
			return nil
		}
		log.Errorf("tui: %v", msg.err)
		if msg.session != b.session {
			return nil
		}
		return b.notifyFailure(fmt.Errorf("playback unavailable: %w", msg.err))
	}

	if msg.done == nil {
		return nil
	}
	return waitForExit(msg.session, msg.done)
}

// closeSession closes the current session in the background. shutdown waits for it.
func (b *statefulBubble) closeSession() {
	session := b.session
	b.session = nil
	b.movie = nil
	if session == nil {
		return
	}

	b.closing.Add(1)
	go func() {
		defer b.closing.Done()
		if err := session.Close(); err != nil {
			log.Warnf("tui: %v", err)
		}
	}()
}

func (b *statefulBubble) shutdown() {
	b.closeSession()
	b.closing.Wait()
}

// sessionChanged runs on whatever goroutine mutated the session. Pending wake-ups are coalesced.
func (b *statefulBubble) sessionChanged() {
	select {
	case b.changes <- struct{}{}:
	default:
	}
}

func (b *statefulBubble) sessionFailed(session *playback.Session, err error) {
	select {
	case b.failures <- sessionFailedMsg{session: session, err: err}:
	default:
		log.Warnf("tui: dropped engine failure: %v", err)
	}
}

// startFade schedules fade frames while the overlay of the current session fades out.
func (b *statefulBubble) startFade() tea.Cmd {
	if b.fadeTicking || b.session == nil || !b.session.State().Fading {
		return nil
	}
	b.fadeTicking = true
	return fadeFrame()
}

func (b *statefulBubble) nextFadeFrame() tea.Cmd {
	if b.session == nil || !b.session.State().Fading {
		b.fadeTicking = false
		return nil
	}
	return fadeFrame()
}

func (b *statefulBubble) notifyFailure(err error) tea.Cmd {
	return b.notifier.Update(ui.Notification{Text: err.Error(), Failure: true})
}

func posterOf(m *catalog.Movie) mo.Option[string] {
	if m.Thumbnail == "" {
		return mo.Some(catalog.FallbackPoster)
	}
	return mo.Some(m.Thumbnail)
}
