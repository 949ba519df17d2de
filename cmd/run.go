package cmd

import (
	"fmt"
	"strings"

	"github.com/radiodl-cli/radiodl/config"
	"github.com/radiodl-cli/radiodl/downloader"
	"github.com/radiodl-cli/radiodl/history"
	"github.com/radiodl-cli/radiodl/icon"
	"github.com/radiodl-cli/radiodl/key"
	"github.com/radiodl-cli/radiodl/log"
	"github.com/radiodl-cli/radiodl/programs"
	"github.com/radiodl-cli/radiodl/provider"
	"github.com/radiodl-cli/radiodl/runner"
	"github.com/radiodl-cli/radiodl/source"
	"github.com/radiodl-cli/radiodl/style"
	"github.com/radiodl-cli/radiodl/where"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func addRunFlags(cmd *cobra.Command) {
	cmd.Flags().StringSliceP("program", "p", []string{}, "Only run the named programs")
	cmd.Flags().Bool("no-cleanup", false, "Do not delete old downloads")
	cmd.Flags().StringP("dir", "d", "", "Download directory")

	lo.Must0(cmd.RegisterFlagCompletionFunc("program", completionProgramNames))
}

func init() {
	rootCmd.AddCommand(runCmd)
	addRunFlags(runCmd)
}

var runCmd = &cobra.Command{
	Use:     "run",
	Short:   "Download the latest episodes of every enabled program",
	Args:    cobra.NoArgs,
	Example: "  radiodl run -p \"Gracia a Vosotros\" --no-cleanup",
	Run: func(cmd *cobra.Command, args []string) {
		runBatch(cmd)
	},
}

func runBatch(cmd *cobra.Command) {
	manager, err := programs.Open(where.Programs())
	if err != nil {
		log.Error(err)
		fmt.Printf("%s %v, using defaults\n", icon.Get(icon.Warn), err)
		manager = programs.Defaults(where.Programs())
	}

	r := runner.New(manager, runner.Directory(manager))
	r.FallbackURLs = config.FallbackURLs()
	r.Only = lo.Must(cmd.Flags().GetStringSlice("program"))

	if dir := lo.Must(cmd.Flags().GetString("dir")); dir != "" {
		r.Directory = dir
	}

	if lo.Must(cmd.Flags().GetBool("no-cleanup")) {
		r.Cleanup = false
	}

	if viper.GetBool(key.HistorySaveOnDownload) {
		r.Record = func(ep *source.Episode, audioURL string, result downloader.Result) error {
			return history.Save(ep, audioURL, result.Path, result.Kind.String(), result.Size)
		}
	}

	if lo.SomeBy(r.Targets(), func(p *programs.Program) bool { return downloader.IsVideo(p.URL) }) {
		warnMissingYtdlp()
	}

	ctx, cancel := interruptible()
	defer cancel()

	fmt.Printf("%s %s %s\n", icon.Get(icon.Download), style.Bold("Downloading into"), r.Directory)
	summary := r.Run(ctx)

	status := icon.Success
	if summary.Failed > 0 {
		status = icon.Warn
	}
	fmt.Printf("\n%s %s\n", icon.Get(status), summary)

	if ctx.Err() != nil {
		fmt.Printf("%s %s\n", icon.Get(icon.Warn), "interrupted")
	}
}

func completionProgramNames(_ *cobra.Command, _ []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	manager, err := programs.Open(where.Programs())
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}

	return lo.Filter(manager.Names(), func(name string, _ int) bool {
		return strings.HasPrefix(strings.ToLower(name), strings.ToLower(toComplete))
	}), cobra.ShellCompDirectiveNoFileComp
}

// supported formats the list of domains for error messages.
func supported() string {
	return strings.Join(provider.Domains(), ", ")
}
