// Package config provides centralized management for application settings, defaults, and the Viper-based configuration engine.
package config

import (
	"strings"

	"github.com/radiodl-cli/radiodl/constant"
	"github.com/radiodl-cli/radiodl/filesystem"
	"github.com/radiodl-cli/radiodl/key"
	"github.com/radiodl-cli/radiodl/where"
	"github.com/spf13/viper"
)

// EnvKeyReplacer is a strings.Replacer used to normalize configuration keys into environment variable naming conventions.
var EnvKeyReplacer = strings.NewReplacer(".", "_")

// Legacy environment variable names that are still honoured next to the prefixed ones.
const (
	EnvDirectory    = "DIRECTORIO"
	EnvProgramsURLs = "PROGRAMAS_URL"
)

// Setup initializes the global configuration state, including defaults, environment bindings, and localized file resolution.
func Setup() error {
	viper.SetConfigName(constant.Radiodl)
	viper.SetConfigType("toml")
	viper.SetFs(filesystem.API())
	viper.AddConfigPath(where.Config())

	viper.SetEnvPrefix(constant.Radiodl)
	viper.SetEnvKeyReplacer(EnvKeyReplacer)
	for _, env := range EnvExposed {
		viper.MustBindEnv(env)
	}

	viper.MustBindEnv(key.DownloadDirectory, envName(key.DownloadDirectory), EnvDirectory)
	viper.MustBindEnv(key.ProgramsFallbackURLs, envName(key.ProgramsFallbackURLs), EnvProgramsURLs)

	viper.SetTypeByDefaultValue(true)
	for name, field := range Default {
		viper.SetDefault(name, field.Value)
	}

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return nil
		}
		return err
	}

	return nil
}

func envName(k string) string {
	return strings.ToUpper(constant.Radiodl + "_" + EnvKeyReplacer.Replace(k))
}
