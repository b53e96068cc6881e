package playback

import (
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/samber/mo"
	. "github.com/smartystreets/goconvey/convey"
)

func newAttachedSession(opts Options) (*Session, *fakeHandle, *manualClock) {
	clock := newManualClock()
	handle := &fakeHandle{}
	opts.Clock = clock
	if opts.MediaURI == "" {
		opts.MediaURI = "https://example.com/movie.mp4"
	}
	s := New(opts)
	if err := s.Attach(&fakeEngine{handle: handle}); err != nil {
		panic(err)
	}
	return s, handle, clock
}

func playingAt(pos, dur int64) Status {
	return Status{PositionMillis: pos, DurationMillis: dur, IsLoaded: true, IsPlaying: true}
}

func TestSessionLifecycle(t *testing.T) {
	Convey("Given a new session", t, func() {
		s := New(Options{MediaURI: "movie.mp4", Clock: newManualClock()})

		Convey("It starts idle with the placeholder and controls visible", func() {
			st := s.State()
			So(st.Phase, ShouldEqual, Idle)
			So(st.VideoReady, ShouldBeFalse)
			So(st.ShowPlaceholder, ShouldBeTrue)
			So(st.ControlsVisible, ShouldBeTrue)
			So(st.FadeLevel, ShouldEqual, 1)
		})

		Convey("Transport commands before attach are silent no-ops", func() {
			s.TogglePlayPause()
			s.SeekBackward()
			s.SeekForward()
			So(s.State().Phase, ShouldEqual, Idle)
		})

		Convey("Attach moves it to loading and subscribes to status", func() {
			handle := &fakeHandle{}
			engine := &fakeEngine{handle: handle}
			So(s.Attach(engine), ShouldBeNil)
			So(engine.attached, ShouldResemble, []string{"movie.mp4"})
			So(s.State().Phase, ShouldEqual, Loading)

			handle.push(Status{IsLoaded: true})
			So(s.State().Phase, ShouldEqual, Ready)

			Convey("A second attach is rejected", func() {
				So(s.Attach(engine), ShouldEqual, ErrAttached)
			})
		})

		Convey("A failing engine leaves the session idle", func() {
			err := s.Attach(&fakeEngine{err: errEngine})
			So(errors.Is(err, errEngine), ShouldBeTrue)
			So(s.State().Phase, ShouldEqual, Idle)
		})
	})

	Convey("A session without media refuses to attach", t, func() {
		s := New(Options{})
		So(s.Attach(&fakeEngine{handle: &fakeHandle{}}), ShouldEqual, ErrNoMedia)
	})

	Convey("Options surface in the snapshot", t, func() {
		s := New(Options{
			MediaURI:  "movie.mp4",
			PosterURI: mo.Some("poster.jpg"),
			Title:     mo.Some("Sintel"),
			TVMode:    true,
		})
		st := s.State()
		So(st.Title.OrEmpty(), ShouldEqual, "Sintel")
		So(st.PosterURI.OrEmpty(), ShouldEqual, "poster.jpg")
		So(st.TVMode, ShouldBeTrue)
	})
}

func TestReadinessGate(t *testing.T) {
	Convey("Given the loading sequence buffering → loaded+buffering → playing", t, func() {
		s, handle, _ := newAttachedSession(Options{})

		handle.push(Status{IsLoaded: false, IsBuffering: true})
		first := s.State()
		handle.push(Status{IsLoaded: true, IsBuffering: true})
		second := s.State()
		handle.push(Status{IsLoaded: true, IsPlaying: true, IsBuffering: false})
		third := s.State()

		Convey("The placeholder shows only for the first tick", func() {
			So(first.ShowPlaceholder, ShouldBeTrue)
			So(second.ShowPlaceholder, ShouldBeFalse)
			So(third.ShowPlaceholder, ShouldBeFalse)
		})

		Convey("Video readiness flips at the second tick and stays", func() {
			So(first.VideoReady, ShouldBeFalse)
			So(second.VideoReady, ShouldBeTrue)
			So(third.VideoReady, ShouldBeTrue)
		})

		Convey("Buffering clears once loaded and playing", func() {
			So(second.Buffering, ShouldBeTrue)
			So(third.Buffering, ShouldBeFalse)
		})

		Convey("Later buffering never reverts readiness or brings the placeholder back", func() {
			handle.push(Status{IsBuffering: true})
			handle.push(Status{IsLoaded: false, IsBuffering: true})
			st := s.State()
			So(st.Buffering, ShouldBeTrue)
			So(st.VideoReady, ShouldBeTrue)
			So(st.Phase, ShouldEqual, Ready)
			So(st.ShowPlaceholder, ShouldBeFalse)
		})

		Convey("A loaded paused tick keeps buffering as it was", func() {
			handle.push(Status{IsLoaded: true, IsBuffering: true})
			handle.push(Status{IsLoaded: true, IsPlaying: false})
			So(s.State().Buffering, ShouldBeTrue)
		})
	})

	Convey("Readiness is monotonic for arbitrary sequences", t, func() {
		sequences := [][]Status{
			{{IsLoaded: true}, {IsBuffering: true}, {}},
			{{}, {IsBuffering: true}, {IsLoaded: true, IsBuffering: true}, {IsBuffering: true}, {}},
			{{IsLoaded: true, IsPlaying: true}, {IsLoaded: false, IsPlaying: false, IsBuffering: true}},
		}
		for _, seq := range sequences {
			s, handle, _ := newAttachedSession(Options{})
			seen := false
			for _, status := range seq {
				handle.push(status)
				seen = seen || status.IsLoaded
				if seen {
					So(s.State().VideoReady, ShouldBeTrue)
				}
			}
		}
	})
}

func TestTransport(t *testing.T) {
	Convey("Given an attached session", t, func() {
		s, handle, _ := newAttachedSession(Options{})

		Convey("TogglePlayPause plays when paused and pauses after a playing tick", func() {
			handle.push(Status{IsLoaded: true, IsPlaying: false, DurationMillis: 60000})
			s.TogglePlayPause()
			So(handle.history(), ShouldResemble, []string{"play"})

			handle.push(playingAt(1000, 60000))
			s.TogglePlayPause()
			So(handle.history(), ShouldResemble, []string{"play", "pause"})
		})

		Convey("SeekBackward clamps at zero", func() {
			handle.push(playingAt(5000, 60000))
			s.SeekBackward()
			So(handle.seekHistory(), ShouldResemble, []int64{0})
		})

		Convey("SeekBackward steps back ten seconds", func() {
			handle.push(playingAt(25000, 60000))
			s.SeekBackward()
			So(handle.seekHistory(), ShouldResemble, []int64{15000})
		})

		Convey("SeekForward clamps at the duration", func() {
			handle.push(playingAt(55000, 60000))
			s.SeekForward()
			So(handle.seekHistory(), ShouldResemble, []int64{60000})
		})

		Convey("SeekForward never exceeds the duration from any position", func() {
			for pos := int64(0); pos <= 60000; pos += 3500 {
				handle.push(playingAt(pos, 60000))
				s.SeekForward()
			}
			for _, target := range handle.seekHistory() {
				So(target, ShouldBeLessThanOrEqualTo, 60000)
				So(target, ShouldBeGreaterThanOrEqualTo, 0)
			}
		})

		Convey("Seeks are no-ops before metadata arrives", func() {
			handle.push(Status{IsBuffering: true})
			s.SeekBackward()
			s.SeekForward()
			So(handle.seekHistory(), ShouldBeEmpty)
		})

		Convey("SeekForward is a no-op on a stream of unknown length", func() {
			handle.push(Status{IsLoaded: true, IsPlaying: true, PositionMillis: 4000})
			s.SeekForward()
			So(handle.seekHistory(), ShouldBeEmpty)
		})

		Convey("Failed commands are reported through OnError", func() {
			var reported []error
			s, handle, _ := newAttachedSession(Options{OnError: func(err error) { reported = append(reported, err) }})
			handle.push(playingAt(20000, 60000))
			handle.failWith = errEngine

			s.TogglePlayPause()
			s.SeekForward()
			So(len(reported), ShouldEqual, 2)
			So(errors.Is(reported[0], errEngine), ShouldBeTrue)
			So(reported[1].Error(), ShouldContainSubstring, "0:30")
		})

		Convey("Failed commands do not bring the controls back", func() {
			handle.push(playingAt(1000, 60000))
			s.HideControls()
			handle.failWith = errEngine
			s.TogglePlayPause()
			So(s.State().Fading, ShouldBeTrue)
		})
	})
}

func TestProgressFraction(t *testing.T) {
	Convey("Given an attached session", t, func() {
		s, handle, _ := newAttachedSession(Options{})

		Convey("It is zero while the duration is unknown", func() {
			So(s.ProgressFraction(), ShouldEqual, 0)
			handle.push(Status{IsLoaded: true, PositionMillis: 5000})
			So(s.ProgressFraction(), ShouldEqual, 0)
		})

		Convey("It divides position by duration", func() {
			handle.push(playingAt(15000, 60000))
			So(s.ProgressFraction(), ShouldEqual, 0.25)
			So(s.State().Progress, ShouldEqual, 0.25)
		})

		Convey("It stays within [0,1] for out-of-range ticks", func() {
			handle.push(Status{IsLoaded: true, PositionMillis: 90000, DurationMillis: 60000})
			So(s.ProgressFraction(), ShouldEqual, 1)
			handle.push(Status{IsLoaded: true, PositionMillis: -10, DurationMillis: 60000})
			So(s.ProgressFraction(), ShouldEqual, 0)
		})
	})
}

func TestControlVisibility(t *testing.T) {
	Convey("Given a playing session", t, func() {
		var changes atomic.Int32
		s, handle, clock := newAttachedSession(Options{OnChange: func() { changes.Add(1) }})
		handle.push(playingAt(0, 600000))

		Convey("Controls hide after the inactivity window and a 300ms fade", func() {
			clock.advance(HideDelay - time.Millisecond)
			So(s.State().ControlsVisible, ShouldBeTrue)
			So(s.State().Fading, ShouldBeFalse)

			clock.advance(time.Millisecond)
			st := s.State()
			So(st.Fading, ShouldBeTrue)
			So(st.ControlsVisible, ShouldBeTrue)

			clock.advance(FadeDuration / 2)
			So(s.State().FadeLevel, ShouldAlmostEqual, 0.5, 0.001)

			clock.advance(FadeDuration / 2)
			st = s.State()
			So(st.ControlsVisible, ShouldBeFalse)
			So(st.FadeLevel, ShouldEqual, 0)
			So(st.Fading, ShouldBeFalse)
		})

		Convey("Showing again restarts the countdown from the second arm", func() {
			clock.advance(2 * time.Second)
			s.ShowControls()
			clock.advance(2 * time.Second)
			So(s.State().Fading, ShouldBeFalse)
			clock.advance(time.Second)
			So(s.State().Fading, ShouldBeTrue)
		})

		Convey("A successful transport command resets the inactivity clock", func() {
			clock.advance(2500 * time.Millisecond)
			s.SeekForward()
			clock.advance(2500 * time.Millisecond)
			So(s.State().ControlsVisible, ShouldBeTrue)
			So(s.State().Fading, ShouldBeFalse)
		})

		Convey("Showing during a fade cancels it at full opacity", func() {
			clock.advance(HideDelay + FadeDuration/3)
			So(s.State().Fading, ShouldBeTrue)
			s.ShowControls()
			st := s.State()
			So(st.Fading, ShouldBeFalse)
			So(st.FadeLevel, ShouldEqual, 1)
			clock.advance(FadeDuration)
			So(s.State().ControlsVisible, ShouldBeTrue)
		})

		Convey("Toggle hides visible controls and shows hidden ones", func() {
			s.ToggleControls()
			So(s.State().Fading, ShouldBeTrue)
			clock.advance(FadeDuration)
			So(s.State().ControlsVisible, ShouldBeFalse)

			s.ToggleControls()
			st := s.State()
			So(st.ControlsVisible, ShouldBeTrue)
			So(st.FadeLevel, ShouldEqual, 1)
		})

		Convey("Toggling while the overlay fades lets the fade finish", func() {
			s.HideControls()
			clock.advance(FadeDuration / 2)

			s.ToggleControls()
			st := s.State()
			So(st.ControlsVisible, ShouldBeTrue)
			So(st.Fading, ShouldBeTrue)
			So(st.FadeLevel, ShouldBeLessThan, 1)

			clock.advance(FadeDuration / 2)
			st = s.State()
			So(st.ControlsVisible, ShouldBeFalse)
			So(st.FadeLevel, ShouldEqual, 0)
		})

		Convey("Hiding hidden controls is a no-op", func() {
			s.HideControls()
			clock.advance(FadeDuration)
			before := changes.Load()
			s.HideControls()
			So(changes.Load(), ShouldEqual, before)
			So(clock.pending(), ShouldEqual, 0)
		})

		Convey("Pausing leaves the armed countdown to fire", func() {
			clock.advance(time.Second)
			handle.push(Status{IsLoaded: true, IsPlaying: false, PositionMillis: 1000, DurationMillis: 600000})
			clock.advance(2 * time.Second)
			So(s.State().Fading, ShouldBeTrue)
			clock.advance(FadeDuration)
			So(s.State().ControlsVisible, ShouldBeFalse)
		})

		Convey("Close cancels the countdown and releases the handle", func() {
			So(s.Close(), ShouldBeNil)
			So(clock.pending(), ShouldEqual, 0)
			So(handle.closed, ShouldEqual, 1)
			clock.advance(HideDelay * 2)
			So(s.State().ControlsVisible, ShouldBeTrue)

			Convey("Close is idempotent and later ticks are dropped", func() {
				So(s.Close(), ShouldBeNil)
				So(handle.closed, ShouldEqual, 1)
				handle.push(Status{IsLoaded: true, PositionMillis: 99})
				So(s.State().Status.PositionMillis, ShouldEqual, 0)
			})
		})

		Convey("Close during a fade cancels the fade", func() {
			s.HideControls()
			So(s.Close(), ShouldBeNil)
			So(clock.pending(), ShouldEqual, 0)
		})
	})

	Convey("Given a paused session", t, func() {
		s, handle, clock := newAttachedSession(Options{})
		handle.push(Status{IsLoaded: true, DurationMillis: 60000})

		Convey("Showing controls does not arm the countdown", func() {
			s.ShowControls()
			clock.advance(HideDelay * 2)
			So(s.State().ControlsVisible, ShouldBeTrue)
			So(clock.pending(), ShouldEqual, 0)
		})

		Convey("Playback starting with visible controls arms the countdown", func() {
			handle.push(playingAt(0, 60000))
			clock.advance(HideDelay)
			So(s.State().Fading, ShouldBeTrue)
		})
	})

	Convey("Given a TV-mode session", t, func() {
		s, handle, clock := newAttachedSession(Options{TVMode: true})
		handle.push(playingAt(0, 60000))

		Convey("The countdown is never armed and controls stay visible", func() {
			s.ShowControls()
			s.SeekForward()
			clock.advance(HideDelay * 3)
			So(clock.pending(), ShouldEqual, 0)
			So(s.State().ControlsVisible, ShouldBeTrue)
		})

		Convey("Hide and toggle do not hide the controls", func() {
			s.HideControls()
			s.ToggleControls()
			clock.advance(FadeDuration)
			So(s.State().ControlsVisible, ShouldBeTrue)
		})
	})
}

func TestVisibilityTimer(t *testing.T) {
	Convey("Given a visibility timer", t, func() {
		clock := newManualClock()
		timer := NewVisibilityTimer(clock, HideDelay)
		var fired []time.Time
		fire := func() { fired = append(fired, clock.Now()) }
		start := clock.Now()

		Convey("Re-arming within the window fires exactly once, timed from the second arm", func() {
			timer.Arm(fire)
			clock.advance(time.Second)
			timer.Arm(fire)
			So(clock.pending(), ShouldEqual, 1)

			clock.advance(10 * time.Second)
			So(len(fired), ShouldEqual, 1)
			So(fired[0].Equal(start.Add(time.Second+HideDelay)), ShouldBeTrue)
			So(timer.Armed(), ShouldBeFalse)
		})

		Convey("Cancel prevents the fire", func() {
			timer.Arm(fire)
			So(timer.Armed(), ShouldBeTrue)
			timer.Cancel()
			timer.Cancel()
			clock.advance(10 * time.Second)
			So(fired, ShouldBeEmpty)
		})

		Convey("It reports its delay", func() {
			So(timer.Delay(), ShouldEqual, 3*time.Second)
		})
	})
}

func TestFormatTime(t *testing.T) {
	Convey("FormatTime", t, func() {
		So(FormatTime(0), ShouldEqual, "0:00")
		So(FormatTime(-5), ShouldEqual, "0:00")
		So(FormatTime(999), ShouldEqual, "0:00")
		So(FormatTime(9000), ShouldEqual, "0:09")
		So(FormatTime(65000), ShouldEqual, "1:05")
		So(FormatTime(600000), ShouldEqual, "10:00")
		So(FormatDuration(14*time.Minute+48*time.Second), ShouldEqual, "14:48")
	})
}

func TestStatus(t *testing.T) {
	Convey("Normalize", t, func() {
		So(Status{PositionMillis: -1}.Normalize().PositionMillis, ShouldEqual, 0)
		So(Status{PositionMillis: 70, DurationMillis: 50}.Normalize().PositionMillis, ShouldEqual, 50)
		So(Status{PositionMillis: 70}.Normalize().PositionMillis, ShouldEqual, 70)
		So(Status{DurationMillis: -3}.Normalize().DurationMillis, ShouldEqual, 0)
	})

	Convey("Phase names", t, func() {
		So(Idle.String(), ShouldEqual, "idle")
		So(Loading.String(), ShouldEqual, "loading")
		So(Ready.String(), ShouldEqual, "ready")
	})
}

func TestEngineFunc(t *testing.T) {
	Convey("Given a function engine", t, func() {
		handle := &fakeHandle{}
		var attached string
		engine := EngineFunc(func(uri string) (Handle, error) {
			attached = uri
			return handle, nil
		})

		s := New(Options{MediaURI: "https://example.com/a.mp4", Clock: newManualClock()})
		So(s.Attach(engine), ShouldBeNil)
		So(attached, ShouldEqual, "https://example.com/a.mp4")
		So(s.State().Phase, ShouldEqual, Loading)
	})
}
