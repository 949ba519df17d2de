package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/radiodl-cli/radiodl/color"
	"github.com/radiodl-cli/radiodl/icon"
	"github.com/radiodl-cli/radiodl/programs"
	"github.com/radiodl-cli/radiodl/style"
	"github.com/radiodl-cli/radiodl/util"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(removeCmd)
	removeCmd.Flags().BoolP("yes", "y", false, "Do not ask for confirmation")
}

var removeCmd = &cobra.Command{
	Use:               "remove <name>",
	Short:             "Remove a radio program",
	Aliases:           []string{"rm"},
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: completionProgramNames,
	Run: func(cmd *cobra.Command, args []string) {
		manager := openPrograms()
		name := args[0]

		if manager.Find(name).IsAbsent() {
			handleErr(notFound(manager, &programs.NotFoundError{Name: name, Suggestion: manager.Suggest(name)}))
		}

		if util.IsTerminal() && !lo.Must(cmd.Flags().GetBool("yes")) {
			var confirm bool
			handleErr(survey.AskOne(&survey.Confirm{
				Message: fmt.Sprintf("Remove %s?", name),
				Default: true,
			}, &confirm))

			if !confirm {
				return
			}
		}

		handleErr(manager.Remove(name))
		fmt.Printf("%s removed %s\n", icon.Get(icon.Success), style.Fg(color.Yellow)(name))
	},
}

// notFound decorates a program lookup failure with the configured names.
func notFound(manager *programs.Manager, err error) error {
	if !errors.Is(err, programs.ErrNotFound) {
		return err
	}

	names := manager.Names()
	if len(names) == 0 {
		return fmt.Errorf("%w\nno programs configured", err)
	}

	return fmt.Errorf("%w\navailable programs: %s", err, strings.Join(names, ", "))
}
