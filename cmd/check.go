package cmd

import (
	"fmt"
	"os/exec"
	"runtime"

	"github.com/charmbracelet/lipgloss"
	"github.com/radiodl-cli/radiodl/color"
	"github.com/radiodl-cli/radiodl/constant"
	"github.com/radiodl-cli/radiodl/icon"
	"github.com/radiodl-cli/radiodl/key"
	"github.com/radiodl-cli/radiodl/style"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.AddCommand(checkCmd)
}

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check that external tools are installed",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		path, err := exec.LookPath(viper.GetString(key.DownloaderYtdlpPath))
		if err != nil {
			printMissingDependencyError("yt-dlp")
			return
		}

		fmt.Printf("%s yt-dlp found at %s\n", icon.Get(icon.Success), path)
	},
}

// warnMissingYtdlp prints the install hint when video programs are about to run without yt-dlp.
func warnMissingYtdlp() {
	if _, err := exec.LookPath(viper.GetString(key.DownloaderYtdlpPath)); err != nil {
		printMissingDependencyError("yt-dlp")
	}
}

func printMissingDependencyError(dep string) {
	var installCmd string
	switch runtime.GOOS {
	case constant.Darwin:
		installCmd = "brew install " + dep
	case constant.Linux:
		installCmd = "python3 -m pip install -U " + dep
	case constant.Windows:
		installCmd = "winget install " + dep
	}

	title := style.New().Bold(true).Foreground(color.Alert).Render(fmt.Sprintf("%s Missing dependency", icon.Get(icon.Warn)))
	body := style.New().Foreground(color.Text).Render(fmt.Sprintf("'%s' was not found in your PATH. Video episodes will be skipped.", dep))

	suggestion := ""
	if installCmd != "" {
		suggestion = fmt.Sprintf("\n\nTo install it, try running:\n  %s", style.New().Foreground(color.Accent).Bold(true).Render(installCmd))
	}

	fmt.Println(style.Box(
		lipgloss.JoinVertical(lipgloss.Left,
			title,
			"\n",
			body,
			suggestion,
		),
	))
}
