// Package config registers every setting with viper and loads the user's toml file.
package config

import (
	"errors"
	"strings"

	"github.com/movieflix-cli/movieflix/constant"
	"github.com/movieflix-cli/movieflix/filesystem"
	"github.com/movieflix-cli/movieflix/where"
	"github.com/spf13/viper"
)

// EnvKeyReplacer maps "player.engine" to "player_engine" for env lookups.
var EnvKeyReplacer = strings.NewReplacer(".", "_")

// Setup applies defaults, binds MOVIEFLIX_* env vars and reads the config file if one exists.
func Setup() error {
	viper.SetConfigName(constant.App)
	viper.SetConfigType("toml")
	viper.SetFs(filesystem.API())
	viper.AddConfigPath(where.Config())

	viper.SetEnvPrefix(constant.App)
	viper.SetEnvKeyReplacer(EnvKeyReplacer)
	for _, env := range EnvExposed {
		viper.MustBindEnv(env)
	}

	viper.SetTypeByDefaultValue(true)
	for name, field := range Default {
		viper.SetDefault(name, field.Value)
	}

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return err
	}

	return nil
}
