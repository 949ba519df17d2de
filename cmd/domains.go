package cmd

import (
	"os"
	"strings"

	"github.com/radiodl-cli/radiodl/color"
	"github.com/radiodl-cli/radiodl/provider"
	"github.com/radiodl-cli/radiodl/style"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(domainsCmd)
	domainsCmd.Flags().BoolP("raw", "r", false, "Only print the domains")
	domainsCmd.SetOut(os.Stdout)
}

var domainsCmd = &cobra.Command{
	Use:   "domains",
	Short: "List the supported domains",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		raw := lo.Must(cmd.Flags().GetBool("raw"))
		header := style.New().Foreground(color.HiBlue).Bold(true).Render

		if !raw {
			cmd.Println(header("Supported domains:"))
		}

		for _, domain := range provider.Domains() {
			p, ok := provider.Get(strings.TrimPrefix(domain, "www."))
			if raw || !ok || p.Program == "" {
				cmd.Println(domain)
				continue
			}

			cmd.Printf("%s %s\n", domain, style.Faint(p.Program))
		}

		customs := provider.Customs()
		if len(customs) == 0 {
			return
		}

		if !raw {
			cmd.Println()
			cmd.Println(header("Custom (lua):"))
		}

		for _, domain := range customs {
			cmd.Println(domain)
		}
	},
}
