package cmd

import (
	"testing"

	"github.com/movieflix-cli/movieflix/key"
	"github.com/movieflix-cli/movieflix/where"
	. "github.com/smartystreets/goconvey/convey"
)

func TestConfigHelpers(t *testing.T) {
	Convey("Given a mistyped key", t, func() {
		err := errUnknownKey("player.engin")

		Convey("The closest key is suggested", func() {
			So(err.Error(), ShouldContainSubstring, key.PlayerEngine)
		})
	})

	Convey("Values are parsed into the type of the default", t, func() {
		v, err := parseValue(key.PlayerStatusIntervalMs, "250")
		So(err, ShouldBeNil)
		So(v, ShouldEqual, 250)

		v, err = parseValue(key.TVMode, "true")
		So(err, ShouldBeNil)
		So(v, ShouldEqual, true)

		v, err = parseValue(key.PlayerEngine, "simulated")
		So(err, ShouldBeNil)
		So(v, ShouldEqual, "simulated")

		_, err = parseValue(key.HomeFeaturedCount, "six")
		So(err, ShouldNotBeNil)
	})
}

func TestEnvNames(t *testing.T) {
	Convey("Every setting has a MOVIEFLIX_ variable", t, func() {
		names := envNames()
		So(names, ShouldContain, "MOVIEFLIX_PLAYER_ENGINE")
		So(names, ShouldContain, "MOVIEFLIX_TV_MODE")
		So(names, ShouldContain, where.EnvConfigPath)
	})
}

func TestCommands(t *testing.T) {
	Convey("The documented commands are registered", t, func() {
		for _, name := range []string{"play", "inline", "config", "env", "where", "version", "check", "clear"} {
			found, _, err := rootCmd.Find([]string{name})
			So(err, ShouldBeNil)
			So(found.Name(), ShouldEqual, name)
		}
	})

	Convey("Root exposes the TUI flags", t, func() {
		So(rootCmd.PersistentFlags().Lookup("tv"), ShouldNotBeNil)
		So(rootCmd.PersistentFlags().Lookup("engine"), ShouldNotBeNil)
		So(rootCmd.Flags().Lookup("movie"), ShouldNotBeNil)
	})
}
