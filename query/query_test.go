package query

import (
	"testing"

	"github.com/movieflix-cli/movieflix/filesystem"
	"github.com/movieflix-cli/movieflix/key"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestQuery(t *testing.T) {
	Convey("Given query history", t, func() {
		viper.Set(key.SearchQuerySuggestions, true)

		So(Remember("bunny", 1), ShouldBeNil)
		So(Remember("  BIGGER  ", 10), ShouldBeNil)
		So(Remember("", 5), ShouldBeNil)

		Convey("Suggestions are sorted by rank", func() {
			s := SuggestMany("b")
			So(len(s), ShouldBeGreaterThanOrEqualTo, 2)
			So(s[0], ShouldEqual, "bigger")
			So(s, ShouldNotContain, "")
		})

		Convey("Remembering again invalidates earlier answers", func() {
			_ = SuggestMany("bun")
			So(Remember("bunny", 100), ShouldBeNil)
			So(SuggestMany("b")[0], ShouldEqual, "bunny")
		})

		Convey("Disabled suggestions yield nothing", func() {
			viper.Set(key.SearchQuerySuggestions, false)
			So(SuggestMany("b"), ShouldBeEmpty)
		})

		Convey("Input is sanitized", func() {
			So(sanitize("  SINTEL  "), ShouldEqual, "sintel")
		})
	})
}
