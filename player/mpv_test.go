package player

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestBuildArgs(t *testing.T) {
	Convey("Given an mpv launch", t, func() {
		args := buildArgs("/tmp/movieflix/mpv.sock", "Sintel", "https://example.com/sintel.mp4", false)

		Convey("The IPC socket and title are passed", func() {
			So(args, ShouldContain, "--input-ipc-server=/tmp/movieflix/mpv.sock")
			So(args, ShouldContain, "--force-media-title=Sintel")
		})

		Convey("Playback starts immediately and stops at the end", func() {
			So(args, ShouldContain, "--pause=no")
			So(args, ShouldContain, "--keep-open=yes")
		})

		Convey("The target follows the end of options", func() {
			So(args[len(args)-2], ShouldEqual, "--")
			So(args[len(args)-1], ShouldEqual, "https://example.com/sintel.mp4")
		})

		Convey("The on-screen controller is enabled only in TV mode", func() {
			So(args, ShouldContain, "--osc=no")
			So(buildArgs("s", "t", "u", true), ShouldContain, "--osc=yes")
		})
	})
}

func TestSanitize(t *testing.T) {
	Convey("Given media targets", t, func() {
		Convey("http and https URLs pass through", func() {
			for _, target := range []string{"https://example.com/a.mp4", "http://example.com/b.mp4"} {
				got, err := sanitizeMediaTarget("  " + target + " ")
				So(err, ShouldBeNil)
				So(got, ShouldEqual, target)
			}
		})

		Convey("Local paths are cleaned", func() {
			got, err := sanitizeMediaTarget("movies/../movies/a.mp4")
			So(err, ShouldBeNil)
			So(got, ShouldEqual, "movies/a.mp4")
		})

		Convey("Flags, control characters and other schemes are rejected", func() {
			for _, target := range []string{"", "--script=evil.lua", "https://a\n.mp4", "file:///etc/passwd", "ftp://example.com/a.mp4"} {
				_, err := sanitizeMediaTarget(target)
				So(err, ShouldNotBeNil)
			}
		})
	})

	Convey("Titles lose control characters", t, func() {
		So(sanitizeTitle(" Big\tBuck\nBunny\x00 "), ShouldEqual, "Big Buck Bunny")
	})
}

func TestPropertyState(t *testing.T) {
	Convey("Given a fresh mpv property state", t, func() {
		var state propertyState

		Convey("Nothing is loaded and the engine buffers", func() {
			status := state.status()
			So(status.IsLoaded, ShouldBeFalse)
			So(status.IsPlaying, ShouldBeFalse)
			So(status.IsBuffering, ShouldBeTrue)
		})

		Convey("Property values alone mark the media loaded", func() {
			state.apply("time-pos", 1.5)
			state.apply("duration", 60.0)
			state.apply("pause", false)
			state.apply("eof-reached", false)

			status := state.status()
			So(status.IsLoaded, ShouldBeTrue)
			So(status.IsPlaying, ShouldBeTrue)
			So(status.IsBuffering, ShouldBeFalse)
			So(status.PositionMillis, ShouldEqual, 1500)
			So(status.DurationMillis, ShouldEqual, 60000)
		})

		Convey("Unavailable values do not mark the media loaded", func() {
			state.apply("time-pos", nil)
			state.apply("duration", nil)
			So(state.status().IsLoaded, ShouldBeFalse)
		})

		Convey("After file-loaded and progress it plays", func() {
			state.apply("file-loaded", nil)
			state.apply("duration", 596.0)
			state.apply("time-pos", 12.5)
			state.apply("pause", false)

			status := state.status()
			So(status.IsLoaded, ShouldBeTrue)
			So(status.IsPlaying, ShouldBeTrue)
			So(status.IsBuffering, ShouldBeFalse)
			So(status.PositionMillis, ShouldEqual, 12500)
			So(status.DurationMillis, ShouldEqual, 596000)

			Convey("Pausing stops playing", func() {
				state.apply("pause", true)
				So(state.status().IsPlaying, ShouldBeFalse)
			})

			Convey("Cache stalls and seeks buffer", func() {
				state.apply("paused-for-cache", true)
				So(state.status().IsBuffering, ShouldBeTrue)
				state.apply("paused-for-cache", false)
				state.apply("seeking", true)
				So(state.status().IsBuffering, ShouldBeTrue)
			})

			Convey("Reaching the end stops playing", func() {
				state.apply("eof-reached", true)
				So(state.status().IsPlaying, ShouldBeFalse)
				So(state.status().IsLoaded, ShouldBeTrue)
			})

			Convey("Unavailable values keep the last position", func() {
				state.apply("time-pos", nil)
				So(state.status().PositionMillis, ShouldEqual, 12500)
			})

			Convey("Positions past the end are clamped", func() {
				state.apply("time-pos", 600.0)
				So(state.status().PositionMillis, ShouldEqual, 596000)
			})

			Convey("end-file unloads", func() {
				state.apply("end-file", nil)
				So(state.status().IsLoaded, ShouldBeFalse)
			})
		})
	})
}
