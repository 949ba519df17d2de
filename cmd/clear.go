package cmd

import (
	"fmt"

	"github.com/radiodl-cli/radiodl/filesystem"
	"github.com/radiodl-cli/radiodl/icon"
	"github.com/radiodl-cli/radiodl/util"
	"github.com/radiodl-cli/radiodl/where"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

// clearable is app state that can be thrown away without touching downloads or programs.
type clearable struct {
	flag, short, name string
	path              func() string
}

var clearables = []clearable{
	{"cache", "c", "cache directory", where.Cache},
	{"history", "s", "download history", where.History},
	{"temp", "t", "temp directory", where.Temp},
	{"logs", "l", "logs directory", where.Logs},
}

func init() {
	rootCmd.AddCommand(clearCmd)

	for _, c := range clearables {
		clearCmd.Flags().BoolP(c.flag, c.short, false, "clear "+c.name)
	}
	clearCmd.Flags().BoolP("all", "a", false, "clear everything above")
}

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Clear cached and temporary application files",
	Long:  "Clear cached and temporary application files. Downloaded episodes and the programs file are never touched.",
	Run: func(cmd *cobra.Command, args []string) {
		all := lo.Must(cmd.Flags().GetBool("all"))

		selected := lo.Filter(clearables, func(c clearable, _ int) bool {
			return all || lo.Must(cmd.Flags().GetBool(c.flag))
		})

		if len(selected) == 0 {
			handleErr(cmd.Help())
			return
		}

		for _, c := range selected {
			erase := util.PrintErasable(fmt.Sprintf("%s Clearing %s...", icon.Get(icon.Progress), c.name))
			err := filesystem.API().RemoveAll(c.path())
			erase()
			handleErr(err)

			fmt.Printf("%s %s cleared\n", icon.Get(icon.Success), util.Capitalize(c.name))
		}
	},
}
