package playback

import (
	"sync"
	"time"
)

// VisibilityTimer is a restartable single-shot countdown. At most one countdown is pending at a time:
// Arm cancels any pending one before scheduling, and a superseded countdown never fires.
type VisibilityTimer struct {
	clock Clock
	delay time.Duration

	mu         sync.Mutex
	pending    Stopper
	generation uint64
}

// NewVisibilityTimer creates a disarmed timer with the given delay.
func NewVisibilityTimer(clock Clock, delay time.Duration) *VisibilityTimer {
	if clock == nil {
		clock = WallClock()
	}
	return &VisibilityTimer{clock: clock, delay: delay}
}

// Delay returns the countdown length.
func (t *VisibilityTimer) Delay() time.Duration {
	return t.delay
}

// Arm (re)starts the countdown. fire runs once the delay elapses, unless the timer is re-armed or cancelled first.
func (t *VisibilityTimer) Arm(fire func()) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.stopLocked()
	t.generation++
	armed := t.generation

	t.pending = t.clock.AfterFunc(t.delay, func() {
		t.mu.Lock()
		if t.generation != armed || t.pending == nil {
			t.mu.Unlock()
			return
		}
		t.pending = nil
		t.mu.Unlock()

		fire()
	})
}

// Cancel disarms the timer. It is safe to call on a disarmed timer.
func (t *VisibilityTimer) Cancel() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.stopLocked()
}

// Armed reports whether a countdown is pending.
func (t *VisibilityTimer) Armed() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.pending != nil
}

func (t *VisibilityTimer) stopLocked() {
	if t.pending == nil {
		return
	}
	t.pending.Stop()
	t.pending = nil
	// invalidates a callback that already started but has not taken the lock yet
	t.generation++
}
