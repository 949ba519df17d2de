package cmd

import (
	"fmt"

	"github.com/radiodl-cli/radiodl/color"
	"github.com/radiodl-cli/radiodl/icon"
	"github.com/radiodl-cli/radiodl/style"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(enableCmd)
	rootCmd.AddCommand(disableCmd)
}

var enableCmd = &cobra.Command{
	Use:               "enable <name>",
	Short:             "Enable a radio program",
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: completionProgramNames,
	Run: func(cmd *cobra.Command, args []string) {
		manager := openPrograms()
		handleErr(notFound(manager, manager.Enable(args[0])))
		fmt.Printf("%s enabled %s\n", icon.Get(icon.Success), style.Fg(color.Green)(args[0]))
	},
}

var disableCmd = &cobra.Command{
	Use:               "disable <name>",
	Short:             "Disable a radio program",
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: completionProgramNames,
	Run: func(cmd *cobra.Command, args []string) {
		manager := openPrograms()
		handleErr(notFound(manager, manager.Disable(args[0])))
		fmt.Printf("%s disabled %s\n", icon.Get(icon.Success), style.Fg(color.Red)(args[0]))
	},
}
