package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/radiodl-cli/radiodl/filesystem"
	"github.com/radiodl-cli/radiodl/icon"
	"github.com/radiodl-cli/radiodl/open"
	"github.com/radiodl-cli/radiodl/programs"
	"github.com/radiodl-cli/radiodl/runner"
	"github.com/radiodl-cli/radiodl/util"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(openCmd)
	openCmd.Flags().BoolP("web", "w", false, "Open the program page instead of its folder")
}

var openCmd = &cobra.Command{
	Use:               "open [program]",
	Short:             "Open the download folder of a program, or the download directory",
	Args:              cobra.MaximumNArgs(1),
	ValidArgsFunction: completionProgramNames,
	Run: func(cmd *cobra.Command, args []string) {
		manager := openPrograms()
		target := runner.Directory(manager)

		if len(args) == 1 {
			p, ok := manager.Find(args[0]).Get()
			if !ok {
				handleErr(notFound(manager, &programs.NotFoundError{Name: args[0], Suggestion: manager.Suggest(args[0])}))
			}

			if lo.Must(cmd.Flags().GetBool("web")) {
				target = p.URL
			} else {
				target = filepath.Join(target, util.SanitizeFilename(p.Name))
			}
		}

		if exists, _ := filesystem.API().Exists(target); !exists && !lo.Must(cmd.Flags().GetBool("web")) {
			handleErr(fmt.Errorf("%s does not exist yet", target))
		}

		handleErr(open.Start(target))
		fmt.Printf("%s opened %s\n", icon.Get(icon.Success), target)
	},
}
