package cmd

import (
	"fmt"

	"github.com/muesli/reflow/indent"
	"github.com/muesli/reflow/wordwrap"
	"github.com/radiodl-cli/radiodl/color"
	"github.com/radiodl-cli/radiodl/icon"
	"github.com/radiodl-cli/radiodl/style"
	"github.com/radiodl-cli/radiodl/util"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().BoolP("enabled", "e", false, "Only show enabled programs")
}

var listCmd = &cobra.Command{
	Use:     "list",
	Short:   "List the configured radio programs",
	Aliases: []string{"ls"},
	Args:    cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		manager := openPrograms()

		all := manager.All()
		if lo.Must(cmd.Flags().GetBool("enabled")) {
			all = manager.Enabled()
		}

		if len(all) == 0 {
			fmt.Printf("%s no programs configured in %s\n", icon.Get(icon.Info), manager.Path())
			return
		}

		width := 80
		if w, _, err := util.TerminalSize(); err == nil && w > 10 {
			width = util.Min(w, 100)
		}

		fmt.Println(style.Title("Programas"))
		fmt.Println()

		for i, p := range all {
			fmt.Printf("%2d. %s\n", i+1, style.Bold(p.Name))
			fmt.Printf("    URL: %s\n", style.Fg(color.Blue)(p.URL))
			fmt.Printf("    Estado: %s\n", style.Status(p.IsEnabled()))

			if p.Description != "" {
				fmt.Println(indent.String(wordwrap.String(style.Faint(p.Description), width-4), 4))
			}

			fmt.Println()
		}

		fmt.Printf(
			"%s, %d enabled\n",
			util.Quantify(len(manager.All()), "program", "programs"),
			len(manager.Enabled()),
		)
	},
}
