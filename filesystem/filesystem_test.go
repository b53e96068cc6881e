package filesystem

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestBackend(t *testing.T) {
	Convey("Given the OS backend", t, func() {
		SetOsFs()
		So(API().Name(), ShouldEqual, "OsFs")

		Convey("Switching to memory gives an empty filesystem", func() {
			SetMemMapFs()
			So(API().Name(), ShouldEqual, "MemMapFS")
			So(Exists("/movieflix/poster.jpg"), ShouldBeFalse)

			So(API().WriteFile("/movieflix/poster.jpg", []byte("jpg"), 0o644), ShouldBeNil)
			So(Exists("/movieflix/poster.jpg"), ShouldBeTrue)
		})
	})
}
