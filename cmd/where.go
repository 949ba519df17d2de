package cmd

import (
	"os"

	"github.com/radiodl-cli/radiodl/color"
	"github.com/radiodl-cli/radiodl/programs"
	"github.com/radiodl-cli/radiodl/runner"
	"github.com/radiodl-cli/radiodl/style"
	"github.com/radiodl-cli/radiodl/where"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

type location struct {
	name, flag, short string
	path              func() string
	hidden            bool
}

// downloads resolves the effective download directory, which depends on the programs file.
func downloads() string {
	manager, err := programs.Open(where.Programs())
	if err != nil {
		manager = programs.Defaults(where.Programs())
	}
	return runner.Directory(manager)
}

var locations = []location{
	{name: "Config", flag: "config", short: "c", path: where.Config},
	{name: "Programs", flag: "programs", short: "p", path: where.Programs},
	{name: "Downloads", flag: "downloads", short: "d", path: downloads},
	{name: "Sources", flag: "sources", short: "s", path: where.Sources},
	{name: "Logs", flag: "logs", short: "l", path: where.Logs},
	{name: "History", flag: "history", path: where.History, hidden: true},
	{name: "Cache", flag: "cache", path: where.Cache, hidden: true},
	{name: "Temp", flag: "temp", path: where.Temp, hidden: true},
}

func init() {
	rootCmd.AddCommand(whereCmd)

	for _, l := range locations {
		whereCmd.Flags().BoolP(l.flag, l.short, false, l.name+" path")
		if l.hidden {
			lo.Must0(whereCmd.Flags().MarkHidden(l.flag))
		}
	}

	whereCmd.MarkFlagsMutuallyExclusive(lo.Map(locations, func(l location, _ int) string {
		return l.flag
	})...)

	whereCmd.SetOut(os.Stdout)
}

var whereCmd = &cobra.Command{
	Use:   "where",
	Short: "Show where radiodl keeps its files",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		if l, ok := lo.Find(locations, func(l location) bool {
			return lo.Must(cmd.Flags().GetBool(l.flag))
		}); ok {
			cmd.Println(l.path())
			return
		}

		header := style.New().Bold(true).Foreground(color.HiPurple).Render
		visible := lo.Reject(locations, func(l location, _ int) bool { return l.hidden })

		for i, l := range visible {
			cmd.Printf("%s %s\n", header(l.name+"?"), style.Fg(color.Yellow)("--"+l.flag))
			cmd.Println(l.path())

			if i < len(visible)-1 {
				cmd.Println()
			}
		}
	},
}
