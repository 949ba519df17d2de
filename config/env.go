package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/radiodl-cli/radiodl/key"
	"github.com/samber/lo"
	"github.com/spf13/viper"
)

// DotEnvPaths are tried in order; the first existing one is loaded.
var DotEnvPaths = []string{
	".env",
	".env.local",
	"../.env",
}

// LoadDotEnv loads variables from the first .env file found.
// Variables already present in the environment are not overwritten.
func LoadDotEnv() (loaded string, err error) {
	for _, path := range DotEnvPaths {
		if _, err := os.Stat(path); err != nil {
			continue
		}

		if err := godotenv.Load(path); err != nil {
			return "", fmt.Errorf("load %s: %w", path, err)
		}

		return path, nil
	}

	return "", nil
}

// FallbackURLs returns the program URLs to run when no program is enabled.
// A single string value is split on semicolons, so that
// PROGRAMAS_URL="https://a;https://b" yields two URLs.
func FallbackURLs() []string {
	var raw []string

	switch v := viper.Get(key.ProgramsFallbackURLs).(type) {
	case string:
		raw = strings.Split(v, ";")
	case []string:
		for _, s := range v {
			raw = append(raw, strings.Split(s, ";")...)
		}
	case []any:
		for _, s := range v {
			raw = append(raw, strings.Split(fmt.Sprint(s), ";")...)
		}
	}

	return lo.Compact(lo.Map(raw, func(s string, _ int) string {
		return strings.TrimSpace(s)
	}))
}
