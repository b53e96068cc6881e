// Package where resolves the directories movieflix reads from and writes to.
package where

import (
	"os"
	"path/filepath"

	"github.com/movieflix-cli/movieflix/constant"
	"github.com/movieflix-cli/movieflix/filesystem"
	"github.com/samber/lo"
)

// EnvConfigPath overrides the configuration directory.
const EnvConfigPath = "MOVIEFLIX_CONFIG_PATH"

func mkdir(path string) string {
	lo.Must0(filesystem.API().MkdirAll(path, os.ModePerm))
	return path
}

// Config returns the configuration directory, creating it on first use.
// MOVIEFLIX_CONFIG_PATH takes precedence over the user config dir.
func Config() string {
	if custom, ok := os.LookupEnv(EnvConfigPath); ok {
		return mkdir(custom)
	}

	return mkdir(filepath.Join(lo.Must(os.UserConfigDir()), constant.App))
}

// ConfigFile is the path of the toml file written by `config write`.
func ConfigFile() string {
	return filepath.Join(Config(), constant.App+".toml")
}

// Logs returns the directory holding dated log files.
func Logs() string {
	return mkdir(filepath.Join(Config(), "logs"))
}

// Queries is the file holding the search query history.
func Queries() string {
	return filepath.Join(Config(), "queries.json")
}

// Temp returns a scratch directory for engine IPC sockets.
func Temp() string {
	return mkdir(filepath.Join(os.TempDir(), constant.App))
}
