package player

import (
	"sync"
	"time"

	"github.com/movieflix-cli/movieflix/playback"
)

// pump delivers a status snapshot to the registered callback on every tick until stopped.
type pump struct {
	mu       sync.Mutex
	callback func(playback.Status)
	started  bool

	stop     chan struct{}
	done     chan struct{}
	stopOnce sync.Once
}

func newPump() *pump {
	return &pump{stop: make(chan struct{}), done: make(chan struct{})}
}

func (p *pump) subscribe(callback func(playback.Status)) {
	p.mu.Lock()
	p.callback = callback
	p.mu.Unlock()
}

// start launches the loop. snapshot is called on every tick. A close of exit ends the loop; nil never does.
func (p *pump) start(interval time.Duration, exit <-chan struct{}, snapshot func(now time.Time) playback.Status) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.started {
		return
	}
	p.started = true
	go p.run(interval, exit, snapshot)
}

func (p *pump) run(interval time.Duration, exit <-chan struct{}, snapshot func(now time.Time) playback.Status) {
	defer close(p.done)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-p.stop:
			return
		case <-exit:
			return
		case now := <-ticker.C:
			status := snapshot(now)

			p.mu.Lock()
			callback := p.callback
			p.mu.Unlock()

			if callback != nil {
				callback(status)
			}
		}
	}
}

// shutdown stops the loop and waits for it to return. It must not be called from a status callback.
func (p *pump) shutdown() {
	p.stopOnce.Do(func() { close(p.stop) })

	p.mu.Lock()
	started := p.started
	p.mu.Unlock()
	if started {
		<-p.done
	}
}
