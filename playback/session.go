package playback

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/movieflix-cli/movieflix/log"
	"github.com/movieflix-cli/movieflix/util"
	"github.com/samber/mo"
)

const (
	// HideDelay is the inactivity window after which the transport overlay hides while playing.
	HideDelay = 3000 * time.Millisecond
	// FadeDuration is the length of the overlay fade-out.
	FadeDuration = 300 * time.Millisecond
	// SeekStep is the distance covered by a relative seek.
	SeekStep = 10 * time.Second
)

var (
	ErrNoMedia  = errors.New("playback: media uri is empty")
	ErrAttached = errors.New("playback: session already attached")
	ErrClosed   = errors.New("playback: session closed")
)

// Options configures a playback session.
type Options struct {
	MediaURI  string
	PosterURI mo.Option[string]
	Title     mo.Option[string]

	// TVMode defers transport controls to the engine's native control surface: the overlay never auto-hides.
	TVMode bool

	// Clock defaults to WallClock.
	Clock Clock

	// OnChange is invoked after every state mutation, outside the session lock.
	OnChange func()

	// OnError receives failed engine commands. Failures are logged either way.
	OnError func(error)
}

// State is a point-in-time snapshot of a session, suitable for rendering.
type State struct {
	Status          Status
	Phase           Phase
	VideoReady      bool
	Buffering       bool
	ShowPlaceholder bool
	ControlsVisible bool
	FadeLevel       float64
	Fading          bool
	Progress        float64
	TVMode          bool
	Title           mo.Option[string]
	PosterURI       mo.Option[string]
}

type fade struct {
	startedAt  time.Time
	from       float64
	done       Stopper
	generation uint64
}

// Session owns the state of one playback attempt for one media item.
// All mutations are serialized under a single lock. Timer and status callbacks may arrive from any goroutine.
type Session struct {
	opts  Options
	clock Clock
	timer *VisibilityTimer

	mu              sync.Mutex
	handle          Handle
	closed          bool
	status          Status
	phase           Phase
	videoReady      bool
	buffering       bool
	controlsVisible bool
	fadeLevel       float64
	fading          *fade
	fadeGeneration  uint64
}

// New creates an idle session. Controls start visible and the placeholder is shown until media is ready.
func New(opts Options) *Session {
	clock := opts.Clock
	if clock == nil {
		clock = WallClock()
	}

	return &Session{
		opts:            opts,
		clock:           clock,
		timer:           NewVisibilityTimer(clock, HideDelay),
		phase:           Idle,
		buffering:       true,
		controlsVisible: true,
		fadeLevel:       1,
	}
}

// Attach starts loading the session media on the engine and subscribes to its status ticks.
// The engine call runs without holding the session lock, so snapshots stay available while it blocks.
func (s *Session) Attach(engine Engine) error {
	s.mu.Lock()
	switch {
	case s.closed:
		s.mu.Unlock()
		return ErrClosed
	case s.phase != Idle || s.handle != nil:
		s.mu.Unlock()
		return ErrAttached
	case s.opts.MediaURI == "":
		s.mu.Unlock()
		return ErrNoMedia
	}
	s.phase = Loading
	s.mu.Unlock()
	s.notify()

	handle, err := engine.Attach(s.opts.MediaURI)
	if err != nil {
		s.mu.Lock()
		if s.phase == Loading {
			s.phase = Idle
		}
		s.mu.Unlock()
		s.notify()
		return fmt.Errorf("attach %s: %w", s.opts.MediaURI, err)
	}

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		_ = handle.Close()
		return ErrClosed
	}
	s.handle = handle
	s.mu.Unlock()

	handle.OnStatus(s.Apply)
	log.Debugf("playback: attached %s", s.opts.MediaURI)
	return nil
}

// Apply folds a status tick into the session. The last tick wins; ticks after Close are dropped.
func (s *Session) Apply(status Status) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}

	status = status.Normalize()
	wasPlaying := s.status.IsPlaying
	s.status = status

	if status.IsLoaded && !s.videoReady {
		s.videoReady = true
		s.phase = Ready
	}

	if status.IsBuffering {
		s.buffering = true
	} else if status.IsLoaded && status.IsPlaying {
		s.buffering = false
	}

	// playback (re)started with the overlay up: begin the inactivity countdown
	if !wasPlaying && status.IsPlaying && s.controlsVisible && s.fading == nil && !s.opts.TVMode {
		s.timer.Arm(s.onHideTimer)
	}
	s.mu.Unlock()

	s.notify()
}

// ShowControls makes the overlay fully visible immediately and, while playing, restarts the inactivity countdown.
func (s *Session) ShowControls() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.showLocked()
	s.mu.Unlock()

	s.notify()
}

// HideControls fades the overlay out. It is a no-op when the overlay is already hidden or fading, and in TV mode.
func (s *Session) HideControls() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	changed := s.hideLocked()
	s.mu.Unlock()

	if changed {
		s.notify()
	}
}

// ToggleControls hides a visible overlay and shows a hidden one.
// An overlay that is fading out still counts as visible, so its fade runs on.
func (s *Session) ToggleControls() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	if s.controlsVisible {
		s.hideLocked()
	} else {
		s.showLocked()
	}
	s.mu.Unlock()

	s.notify()
}

// TogglePlayPause pauses a playing session and plays a paused one.
func (s *Session) TogglePlayPause() {
	s.mu.Lock()
	handle, playing := s.handle, s.status.IsPlaying
	s.mu.Unlock()

	if handle == nil {
		log.Debug("playback: play/pause ignored, no media handle")
		return
	}

	var err error
	if playing {
		err = handle.Pause()
	} else {
		err = handle.Play()
	}
	if err != nil {
		log.Warnf("playback: play/pause: %v", err)
		s.fail(fmt.Errorf("play/pause: %w", err))
		return
	}

	s.ShowControls()
}

// SeekBackward moves the play head back by SeekStep, never before 0.
func (s *Session) SeekBackward() {
	s.mu.Lock()
	handle, status := s.handle, s.status
	s.mu.Unlock()

	if handle == nil || !status.IsLoaded {
		log.Debug("playback: seek backward ignored, session not loaded")
		return
	}

	s.seek(handle, util.Max(0, status.PositionMillis-SeekStep.Milliseconds()))
}

// SeekForward moves the play head forward by SeekStep, never past the duration.
// Streams of unknown length are not seekable.
func (s *Session) SeekForward() {
	s.mu.Lock()
	handle, status := s.handle, s.status
	s.mu.Unlock()

	if handle == nil || status.DurationMillis <= 0 {
		log.Debug("playback: seek forward ignored, duration unknown")
		return
	}

	s.seek(handle, util.Min(status.DurationMillis, status.PositionMillis+SeekStep.Milliseconds()))
}

func (s *Session) seek(handle Handle, target int64) {
	if err := handle.Seek(target); err != nil {
		log.Warnf("playback: seek to %d: %v", target, err)
		s.fail(fmt.Errorf("seek to %s: %w", FormatTime(target), err))
		return
	}
	s.ShowControls()
}

// ProgressFraction returns position/duration in [0,1], or 0 while the duration is unknown.
func (s *Session) ProgressFraction() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return progressOf(s.status)
}

// State returns a snapshot of the session.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()

	return State{
		Status:          s.status,
		Phase:           s.phase,
		VideoReady:      s.videoReady,
		Buffering:       s.buffering,
		ShowPlaceholder: s.buffering && !s.videoReady,
		ControlsVisible: s.controlsVisible,
		FadeLevel:       s.fadeLevelLocked(),
		Fading:          s.fading != nil,
		Progress:        progressOf(s.status),
		TVMode:          s.opts.TVMode,
		Title:           s.opts.Title,
		PosterURI:       s.opts.PosterURI,
	}
}

// Close releases the timer, any in-flight fade and the media handle. It is safe to call more than once.
func (s *Session) Close() error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil
	}
	s.closed = true
	s.timer.Cancel()
	s.cancelFadeLocked()
	handle := s.handle
	s.handle = nil
	s.mu.Unlock()

	if handle == nil {
		return nil
	}
	if err := handle.Close(); err != nil {
		return fmt.Errorf("close media handle: %w", err)
	}
	return nil
}

func (s *Session) showLocked() {
	s.cancelFadeLocked()
	s.controlsVisible = true
	s.fadeLevel = 1

	if !s.opts.TVMode && s.status.IsPlaying {
		s.timer.Arm(s.onHideTimer)
	}
}

func (s *Session) hideLocked() bool {
	if s.opts.TVMode || !s.controlsVisible || s.fading != nil {
		return false
	}

	s.timer.Cancel()
	s.fadeGeneration++
	generation := s.fadeGeneration
	s.fading = &fade{
		startedAt:  s.clock.Now(),
		from:       s.fadeLevel,
		generation: generation,
		done: s.clock.AfterFunc(FadeDuration, func() {
			s.finishFade(generation)
		}),
	}
	return true
}

func (s *Session) finishFade(generation uint64) {
	s.mu.Lock()
	if s.closed || s.fading == nil || s.fading.generation != generation {
		s.mu.Unlock()
		return
	}
	s.fading = nil
	s.fadeLevel = 0
	s.controlsVisible = false
	s.mu.Unlock()

	s.notify()
}

func (s *Session) cancelFadeLocked() {
	if s.fading == nil {
		return
	}
	s.fading.done.Stop()
	s.fading = nil
	s.fadeGeneration++
}

func (s *Session) fadeLevelLocked() float64 {
	if s.fading == nil {
		return s.fadeLevel
	}
	elapsed := s.clock.Now().Sub(s.fading.startedAt)
	remaining := 1 - float64(elapsed)/float64(FadeDuration)
	return util.Clamp(s.fading.from*remaining, 0, s.fading.from)
}

// onHideTimer runs when the inactivity countdown elapses.
func (s *Session) onHideTimer() {
	s.mu.Lock()
	// a newer arm superseded this countdown between firing and taking the lock
	if s.closed || s.timer.Armed() {
		s.mu.Unlock()
		return
	}
	changed := s.hideLocked()
	s.mu.Unlock()

	if changed {
		s.notify()
	}
}

func (s *Session) fail(err error) {
	if s.opts.OnError != nil {
		s.opts.OnError(err)
	}
}

func (s *Session) notify() {
	if s.opts.OnChange != nil {
		s.opts.OnChange()
	}
}

func progressOf(status Status) float64 {
	if status.DurationMillis <= 0 {
		return 0
	}
	return util.Clamp(float64(status.PositionMillis)/float64(status.DurationMillis), 0, 1)
}
