package style

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	. "github.com/smartystreets/goconvey/convey"
)

func TestFade(t *testing.T) {
	white, black := lipgloss.Color("#ffffff"), lipgloss.Color("#000000")

	Convey("Given hex colors", t, func() {
		Convey("Full level keeps the foreground", func() {
			So(Fade(white, black, 1), ShouldEqual, lipgloss.Color("#ffffff"))
		})

		Convey("Zero level yields the background", func() {
			So(Fade(white, black, 0), ShouldEqual, lipgloss.Color("#000000"))
		})

		Convey("Out of range levels are clamped", func() {
			So(Fade(white, black, 2), ShouldEqual, lipgloss.Color("#ffffff"))
			So(Fade(white, black, -1), ShouldEqual, lipgloss.Color("#000000"))
		})

		Convey("Intermediate levels land between the two", func() {
			mid := string(Fade(white, black, 0.5))
			So(mid, ShouldNotEqual, "#ffffff")
			So(mid, ShouldNotEqual, "#000000")
		})
	})

	Convey("Given ANSI colors", t, func() {
		So(Fade("7", black, 0.4), ShouldEqual, lipgloss.Color("7"))
		So(Fade("7", black, 0), ShouldEqual, black)
	})
}
