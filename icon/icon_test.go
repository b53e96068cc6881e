package icon

import (
	"testing"

	"github.com/movieflix-cli/movieflix/key"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func TestGet(t *testing.T) {
	Convey("Given every registered icon", t, func() {
		all := []Icon{Play, Pause, Back, Forward, Rewind, Time, Film, Search, TV, Fail, Success, Cross, Check, Question, Poster}

		Convey("Each renders in every variant", func() {
			for _, variant := range AvailableVariants() {
				viper.Set(key.IconsVariant, variant)
				for _, i := range all {
					So(Get(i), ShouldNotBeEmpty)
				}
			}
		})

		Convey("An unknown variant renders nothing", func() {
			viper.Set(key.IconsVariant, "")
			So(Get(Play), ShouldBeEmpty)
		})
	})
}
