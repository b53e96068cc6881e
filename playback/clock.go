package playback

import "time"

// Stopper cancels a scheduled callback. Stop reports whether the call prevented the callback from running.
type Stopper interface {
	Stop() bool
}

// Clock is the time source used by the session for its visibility timer and fade animation.
type Clock interface {
	Now() time.Time
	AfterFunc(d time.Duration, f func()) Stopper
}

type wallClock struct{}

func (wallClock) Now() time.Time { return time.Now() }

func (wallClock) AfterFunc(d time.Duration, f func()) Stopper {
	return time.AfterFunc(d, f)
}

// WallClock returns a Clock backed by the runtime timers.
func WallClock() Clock {
	return wallClock{}
}
