package player

import (
	"strings"
	"sync"
	"time"

	"github.com/movieflix-cli/movieflix/log"
	"github.com/movieflix-cli/movieflix/playback"
	"github.com/movieflix-cli/movieflix/util"
)

// DefaultSimulatedLength is used when the duration hook is unset or knows nothing about the media.
const DefaultSimulatedLength = time.Minute

// Simulated plays media in-process on a virtual play head. It needs no external program,
// which makes it the engine of choice for tests, demos and terminals without mpv.
type Simulated struct {
	opts Options
	now  func() time.Time
}

func NewSimulated(opts Options) *Simulated {
	return &Simulated{opts: opts, now: time.Now}
}

// Attach starts a virtual playback of uri. The media reports buffering until the load delay elapses,
// then starts playing on its own.
func (s *Simulated) Attach(uri string) (playback.Handle, error) {
	if _, err := sanitizeMediaTarget(uri); err != nil {
		return nil, err
	}

	length := DefaultSimulatedLength
	if s.opts.DurationOf != nil {
		if d := s.opts.DurationOf(uri); d > 0 {
			length = d
		}
	}

	now := s.now()
	h := &simulatedHandle{
		title:      strings.TrimSpace(s.opts.title(uri)),
		pump:       newPump(),
		now:        s.now,
		duration:   length,
		loadAt:     now.Add(util.Max(0, s.opts.LoadDelay)),
		playing:    true,
		advancedAt: now,
	}
	h.pump.start(s.opts.interval(), nil, h.tick)

	log.Debugf("simulated: attached %q (%s)", h.title, length)
	return h, nil
}

type simulatedHandle struct {
	title string
	pump  *pump
	now   func() time.Time

	mu         sync.Mutex
	duration   time.Duration
	position   time.Duration
	loadAt     time.Time
	loaded     bool
	playing    bool
	closed     bool
	advancedAt time.Time
}

// tick advances the play head to the current time and returns the resulting status.
func (h *simulatedHandle) tick(time.Time) playback.Status {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.advanceLocked(h.now())
	return h.statusLocked()
}

func (h *simulatedHandle) advanceLocked(now time.Time) {
	if now.Before(h.advancedAt) {
		return
	}
	if !h.loaded {
		if now.Before(h.loadAt) {
			h.advancedAt = now
			return
		}
		h.loaded = true
		h.advancedAt = h.loadAt
	}

	if h.playing {
		h.position += now.Sub(h.advancedAt)
		if h.position >= h.duration {
			h.position = h.duration
			h.playing = false
		}
	}
	h.advancedAt = now
}

func (h *simulatedHandle) statusLocked() playback.Status {
	return playback.Status{
		PositionMillis: h.position.Milliseconds(),
		DurationMillis: h.duration.Milliseconds(),
		IsLoaded:       h.loaded,
		IsPlaying:      h.loaded && h.playing,
		IsBuffering:    !h.loaded,
	}
}

// Play resumes playback. At the end of the media it restarts from the beginning.
func (h *simulatedHandle) Play() error {
	return h.command(func(now time.Time) {
		h.advanceLocked(now)
		if h.position >= h.duration {
			h.position = 0
		}
		h.playing = true
	})
}

func (h *simulatedHandle) Pause() error {
	return h.command(func(now time.Time) {
		h.advanceLocked(now)
		h.playing = false
	})
}

// Seek moves the play head, clamped to the media bounds.
func (h *simulatedHandle) Seek(positionMillis int64) error {
	return h.command(func(now time.Time) {
		h.advanceLocked(now)
		h.position = util.Clamp(time.Duration(positionMillis)*time.Millisecond, 0, h.duration)
	})
}

func (h *simulatedHandle) command(apply func(now time.Time)) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return ErrHandleClosed
	}
	apply(h.now())
	return nil
}

func (h *simulatedHandle) OnStatus(callback func(playback.Status)) {
	h.pump.subscribe(callback)
}

func (h *simulatedHandle) Close() error {
	h.mu.Lock()
	h.closed = true
	h.mu.Unlock()

	h.pump.shutdown()
	return nil
}
