package playback

import (
	"errors"
	"sort"
	"sync"
	"time"
)

// manualClock is a Clock whose time only moves when advance is called.
type manualClock struct {
	mu     sync.Mutex
	now    time.Time
	nextID int
	timers map[int]*manualTimer
}

type manualTimer struct {
	clock *manualClock
	id    int
	at    time.Time
	fn    func()
}

func (t *manualTimer) Stop() bool {
	t.clock.mu.Lock()
	defer t.clock.mu.Unlock()
	if _, ok := t.clock.timers[t.id]; !ok {
		return false
	}
	delete(t.clock.timers, t.id)
	return true
}

func newManualClock() *manualClock {
	return &manualClock{
		now:    time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		timers: make(map[int]*manualTimer),
	}
}

func (c *manualClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *manualClock) AfterFunc(d time.Duration, f func()) Stopper {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.nextID++
	t := &manualTimer{clock: c, id: c.nextID, at: c.now.Add(d), fn: f}
	c.timers[t.id] = t
	return t
}

// pending returns the number of scheduled callbacks.
func (c *manualClock) pending() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.timers)
}

// advance moves time forward, running due callbacks in order without holding the clock lock.
func (c *manualClock) advance(d time.Duration) {
	c.mu.Lock()
	target := c.now.Add(d)
	c.mu.Unlock()

	for {
		c.mu.Lock()
		due := make([]*manualTimer, 0)
		for _, t := range c.timers {
			if !t.at.After(target) {
				due = append(due, t)
			}
		}
		if len(due) == 0 {
			c.now = target
			c.mu.Unlock()
			return
		}
		sort.Slice(due, func(i, j int) bool {
			if due[i].at.Equal(due[j].at) {
				return due[i].id < due[j].id
			}
			return due[i].at.Before(due[j].at)
		})
		next := due[0]
		delete(c.timers, next.id)
		c.now = next.at
		c.mu.Unlock()

		next.fn()
	}
}

// fakeHandle records the commands it receives.
type fakeHandle struct {
	mu       sync.Mutex
	commands []string
	seeks    []int64
	callback func(Status)
	closed   int
	failWith error
}

func (h *fakeHandle) record(command string) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.failWith != nil {
		return h.failWith
	}
	h.commands = append(h.commands, command)
	return nil
}

func (h *fakeHandle) Play() error  { return h.record("play") }
func (h *fakeHandle) Pause() error { return h.record("pause") }

func (h *fakeHandle) Seek(positionMillis int64) error {
	if err := h.record("seek"); err != nil {
		return err
	}
	h.mu.Lock()
	h.seeks = append(h.seeks, positionMillis)
	h.mu.Unlock()
	return nil
}

func (h *fakeHandle) OnStatus(callback func(Status)) {
	h.mu.Lock()
	h.callback = callback
	h.mu.Unlock()
}

func (h *fakeHandle) Close() error {
	h.mu.Lock()
	h.closed++
	h.mu.Unlock()
	return nil
}

// push delivers a status tick through the registered channel.
func (h *fakeHandle) push(status Status) {
	h.mu.Lock()
	cb := h.callback
	h.mu.Unlock()
	if cb != nil {
		cb(status)
	}
}

func (h *fakeHandle) history() []string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]string(nil), h.commands...)
}

func (h *fakeHandle) seekHistory() []int64 {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]int64(nil), h.seeks...)
}

type fakeEngine struct {
	handle   *fakeHandle
	attached []string
	err      error
}

func (e *fakeEngine) Attach(uri string) (Handle, error) {
	if e.err != nil {
		return nil, e.err
	}
	e.attached = append(e.attached, uri)
	return e.handle, nil
}

var errEngine = errors.New("engine unavailable")
