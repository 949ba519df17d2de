package runner

import (
	"github.com/radiodl-cli/radiodl/key"
	"github.com/radiodl-cli/radiodl/programs"
	"github.com/spf13/viper"
)

// Directory is the download root: the config override, else the programs file setting.
func Directory(manager *programs.Manager) string {
	if dir := viper.GetString(key.DownloadDirectory); dir != "" {
		return dir
	}
	return manager.Settings().DownloadDirectory
}
