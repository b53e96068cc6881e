// Package playback implements the playback session controller: session state, the control visibility timer,
// transport operations and the readiness gate that decides between the poster placeholder and the live video.
package playback

import "fmt"

// Status is a single status tick pushed by the media handle.
type Status struct {
	PositionMillis int64 `json:"positionMillis"`
	// DurationMillis is 0 while the length of the media is unknown.
	DurationMillis int64 `json:"durationMillis"`
	IsLoaded       bool  `json:"isLoaded"`
	IsPlaying      bool  `json:"isPlaying"`
	IsBuffering    bool  `json:"isBuffering"`
}

// Normalize clamps the tick into a consistent shape: no negative values, and the position never past a known duration.
func (s Status) Normalize() Status {
	if s.PositionMillis < 0 {
		s.PositionMillis = 0
	}
	if s.DurationMillis < 0 {
		s.DurationMillis = 0
	}
	if s.DurationMillis > 0 && s.PositionMillis > s.DurationMillis {
		s.PositionMillis = s.DurationMillis
	}
	return s
}

func (s Status) String() string {
	return fmt.Sprintf(
		"pos=%d dur=%d loaded=%t playing=%t buffering=%t",
		s.PositionMillis, s.DurationMillis, s.IsLoaded, s.IsPlaying, s.IsBuffering,
	)
}

// Phase is the readiness phase of a session.
type Phase int

const (
	// Idle means no media handle is attached yet.
	Idle Phase = iota
	// Loading means a handle is attached but no loaded tick has arrived.
	Loading
	// Ready means at least one tick reported loaded media. A session never leaves Ready.
	Ready
)

func (p Phase) String() string {
	switch p {
	case Idle:
		return "idle"
	case Loading:
		return "loading"
	case Ready:
		return "ready"
	default:
		return fmt.Sprintf("phase(%d)", int(p))
	}
}
