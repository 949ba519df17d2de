// Package where resolves the filesystem locations the application reads and writes.
package where

import (
	"os"
	"path/filepath"

	"github.com/radiodl-cli/radiodl/constant"
	"github.com/radiodl-cli/radiodl/filesystem"
	"github.com/radiodl-cli/radiodl/key"
	"github.com/samber/lo"
	"github.com/spf13/viper"
)

// EnvConfigPath overrides the configuration directory.
const EnvConfigPath = "RADIODL_CONFIG_PATH"

// ProgramsFilename is the name of the programs file inside the config directory.
const ProgramsFilename = "radio_programs.json"

func ensureDir(path string) string {
	lo.Must0(filesystem.API().MkdirAll(path, os.ModePerm))
	return path
}

// Config resolves the configuration directory.
// It follows os.UserConfigDir unless RADIODL_CONFIG_PATH is set.
func Config() string {
	if custom, ok := os.LookupEnv(EnvConfigPath); ok {
		return ensureDir(custom)
	}

	base := lo.Must(os.UserConfigDir())
	return ensureDir(filepath.Join(base, constant.Radiodl))
}

// Cache resolves the persistent cache directory.
func Cache() string {
	base, err := os.UserCacheDir()
	if err != nil {
		base = filepath.Join(".", "cache")
	}
	return ensureDir(filepath.Join(base, constant.Radiodl))
}

// Logs resolves the directory for log files.
func Logs() string {
	return ensureDir(filepath.Join(Config(), "logs"))
}

// Sources resolves the directory holding custom Lua sources.
func Sources() string {
	return ensureDir(filepath.Join(Config(), "sources"))
}

// Programs resolves the programs file, honouring the programs.file key.
func Programs() string {
	if custom := viper.GetString(key.ProgramsFile); custom != "" {
		return custom
	}
	return filepath.Join(Config(), ProgramsFilename)
}

// History resolves the download ledger file.
func History() string {
	return filepath.Join(Config(), "history.json")
}

// Temp resolves a scratch directory for partial downloads.
func Temp() string {
	return ensureDir(filepath.Join(os.TempDir(), constant.Radiodl))
}
