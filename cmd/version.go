package cmd

import (
	"fmt"
	"os"
	"os/exec"
	"runtime"
	"strings"

	"github.com/radiodl-cli/radiodl/color"
	"github.com/radiodl-cli/radiodl/constant"
	"github.com/radiodl-cli/radiodl/key"
	"github.com/radiodl-cli/radiodl/style"
	"github.com/radiodl-cli/radiodl/version"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.AddCommand(versionCmd)
	versionCmd.SetOut(os.Stdout)
	versionCmd.Flags().BoolP("short", "s", false, "Display only the version string without metadata")
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Display version and build metadata",
	Run: func(cmd *cobra.Command, args []string) {
		if lo.Must(cmd.Flags().GetBool("short")) {
			cmd.Println(constant.Version)
			return
		}

		defer version.Notify()

		ytdlp := style.Fg(color.Red)("not found")
		if path, err := exec.LookPath(viper.GetString(key.DownloaderYtdlpPath)); err == nil {
			ytdlp = path
		}

		rows := []lo.Tuple2[string, string]{
			{A: "Version", B: style.Bold(constant.Version)},
			{A: "Git Commit", B: style.Bold(constant.Revision)},
			{A: "Build Date", B: style.Bold(strings.TrimSpace(constant.BuiltAt))},
			{A: "Built By", B: style.Bold(constant.BuiltBy)},
			{A: "Platform", B: style.Bold(runtime.GOOS + "/" + runtime.GOARCH)},
			{A: "yt-dlp", B: ytdlp},
		}

		cmd.Printf("%s %s\n\n", style.Fg(color.Purple)("▇▇▇"), style.Fg(color.Purple)(constant.Radiodl))
		for _, row := range rows {
			cmd.Printf("  %s %s\n", style.Faint(fmt.Sprintf("%-12s", row.A)), row.B)
		}
	},
}
