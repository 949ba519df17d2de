package cmd

import (
	"os"
	"strings"

	"github.com/radiodl-cli/radiodl/color"
	"github.com/radiodl-cli/radiodl/config"
	"github.com/radiodl-cli/radiodl/constant"
	"github.com/radiodl-cli/radiodl/style"
	"github.com/radiodl-cli/radiodl/where"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"golang.org/x/exp/slices"
)

func init() {
	rootCmd.AddCommand(envCmd)
	envCmd.Flags().BoolP("set-only", "s", false, "Display only environment variables that are currently defined")
	envCmd.Flags().BoolP("unset-only", "u", false, "Display only environment variables that are currently undefined")

	envCmd.MarkFlagsMutuallyExclusive("set-only", "unset-only")
}

// envCmd displays the current process values for all supported environment variables.
var envCmd = &cobra.Command{
	Use:   "env",
	Short: "Display the collection of supported environment variables",
	Long: `Display the collection of supported environment variables and their current process values.
DIRECTORIO and PROGRAMAS_URL are accepted next to their prefixed names.`,
	Run: func(cmd *cobra.Command, args []string) {
		setOnly := lo.Must(cmd.Flags().GetBool("set-only"))
		unsetOnly := lo.Must(cmd.Flags().GetBool("unset-only"))

		names := lo.Map(config.EnvExposed, func(k string, _ int) string {
			return strings.ToUpper(constant.Radiodl + "_" + config.EnvKeyReplacer.Replace(k))
		})
		names = append(names, where.EnvConfigPath, config.EnvDirectory, config.EnvProgramsURLs)
		slices.Sort(names)

		for _, env := range names {
			value := os.Getenv(env)
			present := value != ""

			if (!present && setOnly) || (present && unsetOnly) {
				continue
			}

			cmd.Print(style.New().Bold(true).Foreground(color.Purple).Render(env))
			cmd.Print("=")

			if present {
				cmd.Println(style.Fg(color.Green)(value))
			} else {
				cmd.Println(style.Fg(color.Red)("unset"))
			}
		}
	},
}
