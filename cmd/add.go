package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/radiodl-cli/radiodl/color"
	"github.com/radiodl-cli/radiodl/icon"
	"github.com/radiodl-cli/radiodl/programs"
	"github.com/radiodl-cli/radiodl/provider"
	"github.com/radiodl-cli/radiodl/style"
	"github.com/radiodl-cli/radiodl/util"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(addCmd)
	addCmd.Flags().StringP("description", "d", "", "Program description")
	addCmd.Flags().Bool("disabled", false, "Add the program disabled")
}

var addCmd = &cobra.Command{
	Use:     "add <name> <url>",
	Short:   "Add a radio program",
	Args:    cobra.RangeArgs(0, 2),
	Example: "  radiodl add \"Gracia a Vosotros\" https://gracia.org/programas -d \"John MacArthur\"",
	Run: func(cmd *cobra.Command, args []string) {
		name, _ := lo.Nth(args, 0)
		url, _ := lo.Nth(args, 1)

		if len(args) < 2 {
			if !util.IsTerminal() {
				handleErr(errors.New("usage: add <name> <url>"))
			}

			handleErr(askProgram(&name, &url))
		}

		name = strings.TrimSpace(name)
		url = strings.TrimSpace(url)
		if name == "" || url == "" {
			handleErr(errors.New("name and url are required"))
		}

		if !provider.IsSupported(url) {
			handleErr(fmt.Errorf(
				"domain not supported: %s\nsupported domains: %s",
				style.Fg(color.Red)(provider.Host(url)),
				supported(),
			))
		}

		manager := openPrograms()
		enabled := !lo.Must(cmd.Flags().GetBool("disabled"))

		handleErr(manager.Add(programs.Program{
			Name:        name,
			URL:         url,
			Enabled:     &enabled,
			Description: lo.Must(cmd.Flags().GetString("description")),
		}))

		fmt.Printf("%s added %s\n", icon.Get(icon.Success), style.Fg(color.Yellow)(name))
	},
}

func askProgram(name, url *string) error {
	var questions []*survey.Question

	if *name == "" {
		questions = append(questions, &survey.Question{
			Name:     "name",
			Prompt:   &survey.Input{Message: "Program name"},
			Validate: survey.Required,
		})
	}

	questions = append(questions, &survey.Question{
		Name:   "url",
		Prompt: &survey.Input{Message: "Program URL", Help: "Supported domains: " + supported()},
		Validate: func(ans any) error {
			s, _ := ans.(string)
			if !provider.IsSupported(s) {
				return fmt.Errorf("domain not supported: %s", provider.Host(s))
			}
			return nil
		},
	})

	answers := struct {
		Name string
		URL  string `survey:"url"`
	}{Name: *name}

	if err := survey.Ask(questions, &answers); err != nil {
		return err
	}

	*name, *url = answers.Name, answers.URL
	return nil
}
