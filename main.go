// Package main is the entry point for the radiodl application.
package main

import (
	"github.com/radiodl-cli/radiodl/cmd"
	"github.com/radiodl-cli/radiodl/config"
	"github.com/radiodl-cli/radiodl/internal/cache"
	"github.com/radiodl-cli/radiodl/log"
	"github.com/samber/lo"
)

func main() {
	// .env must be loaded before viper binds the environment.
	lo.Must(config.LoadDotEnv())
	lo.Must0(config.Setup())
	lo.Must0(log.Setup())

	go cache.CollectGarbage()

	cmd.Execute()
}
