package cmd

import (
	"fmt"
	"os"
	"os/user"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/radiodl-cli/radiodl/color"
	"github.com/radiodl-cli/radiodl/constant"
	"github.com/radiodl-cli/radiodl/filesystem"
	"github.com/radiodl-cli/radiodl/icon"
	"github.com/radiodl-cli/radiodl/inline"
	"github.com/radiodl-cli/radiodl/internal/scraper"
	"github.com/radiodl-cli/radiodl/provider"
	"github.com/radiodl-cli/radiodl/provider/custom"
	"github.com/radiodl-cli/radiodl/style"
	"github.com/radiodl-cli/radiodl/util"
	"github.com/radiodl-cli/radiodl/where"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

const luaExtension = ".lua"

func init() {
	rootCmd.AddCommand(sourcesCmd)
}

// sourcesCmd provides a parent command for managing scraping providers.
var sourcesCmd = &cobra.Command{
	Use:   "sources",
	Short: "Manage built-in and custom scraping providers",
}

func init() {
	sourcesCmd.AddCommand(sourcesListCmd)

	sourcesListCmd.Flags().BoolP("raw", "r", false, "Suppress header and metadata descriptions in the output")
	sourcesListCmd.Flags().BoolP("custom", "c", false, "Display only user-installed custom Lua sources")
	sourcesListCmd.Flags().BoolP("builtin", "b", false, "Display only pre-compiled built-in sources")

	sourcesListCmd.MarkFlagsMutuallyExclusive("custom", "builtin")
	sourcesListCmd.SetOut(os.Stdout)
}

// sourcesListCmd displays a summary of all registered scraping providers.
var sourcesListCmd = &cobra.Command{
	Use:   "list",
	Short: "Display a collection of all registered scraping providers",
	Run: func(cmd *cobra.Command, args []string) {
		printHeader := !lo.Must(cmd.Flags().GetBool("raw"))
		headerStyle := style.New().Foreground(color.HiBlue).Bold(true).Render
		h := func(s string) {
			if printHeader {
				cmd.Println(headerStyle(s))
			}
		}

		printBuiltin := func() {
			h("Builtin:")
			for _, p := range provider.Builtins() {
				if printHeader && p.Program != "" {
					cmd.Printf("%s %s\n", p.Domain, style.Faint(p.Program))
				} else {
					cmd.Println(p.Domain)
				}
			}
		}

		printCustom := func() {
			h("Custom:")
			for _, domain := range provider.Customs() {
				cmd.Println(domain)
			}
		}

		switch {
		case lo.Must(cmd.Flags().GetBool("builtin")):
			printBuiltin()
		case lo.Must(cmd.Flags().GetBool("custom")):
			printCustom()
		default:
			printBuiltin()
			if printHeader {
				cmd.Println()
			}
			printCustom()
		}
	},
}

func init() {
	sourcesCmd.AddCommand(sourcesRemoveCmd)

	sourcesRemoveCmd.Flags().StringArrayP("name", "n", []string{}, "Specify the domain of the custom source(s) to uninstall")
	lo.Must0(sourcesRemoveCmd.RegisterFlagCompletionFunc("name", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return provider.Customs(), cobra.ShellCompDirectiveNoFileComp
	}))
}

// sourcesRemoveCmd facilitates the uninstallation of custom Lua sources.
var sourcesRemoveCmd = &cobra.Command{
	Use:   "remove",
	Short: "Permanently uninstall specified custom Lua sources from the system",
	Run: func(cmd *cobra.Command, args []string) {
		for _, name := range lo.Must(cmd.Flags().GetStringArray("name")) {
			path := filepath.Join(where.Sources(), name+luaExtension)
			handleErr(filesystem.API().Remove(path))
			scraper.Forget(path)
			fmt.Printf("%s successfully removed %s\n", icon.Get(icon.Success), style.Fg(color.Yellow)(name))
		}
	},
}

func init() {
	sourcesCmd.AddCommand(sourcesInstallCmd)
}

// sourcesInstallCmd downloads a Lua source into the sources directory.
var sourcesInstallCmd = &cobra.Command{
	Use:   "install <url>",
	Short: "Install a custom Lua source from a URL",
	Long: `Download a custom Lua source into the sources directory.
The script must be named after the domain it serves, e.g. radio.example.lua.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := interruptible()
		defer cancel()

		path, changed, err := provider.Install(ctx, nil, args[0])
		handleErr(err)

		if !changed {
			fmt.Printf("%s %s is up to date\n", icon.Get(icon.Info), path)
			return
		}

		fmt.Printf("%s installed %s\n", icon.Get(icon.Success), style.Fg(color.Yellow)(path))
	},
}

func init() {
	sourcesCmd.AddCommand(sourcesGenCmd)

	sourcesGenCmd.Flags().StringP("name", "n", "", "The display name of the program served by the source")
	sourcesGenCmd.Flags().StringP("url", "u", "", "The listing URL of the target website")

	lo.Must0(sourcesGenCmd.MarkFlagRequired("name"))
	lo.Must0(sourcesGenCmd.MarkFlagRequired("url"))
}

// sourcesGenCmd scaffolds a boilerplate Lua provider script named after the URL's domain.
var sourcesGenCmd = &cobra.Command{
	Use:   "gen",
	Short: "Scaffold a new Lua provider script using a predefined template",
	Long:  `Generate a boilerplate Lua provider script with core functions and metadata.`,
	Run: func(cmd *cobra.Command, args []string) {
		cmd.SetOut(os.Stdout)

		var author string
		usr, err := user.Current()
		if err == nil {
			author = usr.Username
		} else {
			author = "Anonymous"
		}

		s := struct {
			Name       string
			URL        string
			EpisodesFn string
			AudioURLFn string
			Author     string
		}{
			Name:       lo.Must(cmd.Flags().GetString("name")),
			URL:        lo.Must(cmd.Flags().GetString("url")),
			EpisodesFn: constant.EpisodesFn,
			AudioURLFn: constant.AudioURLFn,
			Author:     author,
		}

		domain := provider.Host(s.URL)
		if domain == "" {
			handleErr(fmt.Errorf("invalid url: %s", s.URL))
		}

		funcMap := template.FuncMap{
			"repeat": strings.Repeat,
			"plus":   func(a, b int) int { return a + b },
			"max":    util.Max[int],
		}

		tmpl, err := template.New("source").Funcs(funcMap).Parse(constant.SourceTemplate)
		handleErr(err)

		target := filepath.Join(where.Sources(), util.SanitizeFilename(domain)+luaExtension)
		f, err := filesystem.API().Create(target)
		handleErr(err)

		defer util.Ignore(f.Close)

		err = tmpl.Execute(f, s)
		handleErr(err)

		cmd.Println(target)
	},
}

func init() {
	sourcesCmd.AddCommand(sourcesRunCmd)

	sourcesRunCmd.Flags().StringP("program", "p", "", "Program name to stamp on the episodes")
	sourcesRunCmd.Flags().BoolP("resolve", "r", false, "Resolve the audio URL of every episode")
}

// sourcesRunCmd loads a Lua source file and prints the episodes it yields for a URL.
var sourcesRunCmd = &cobra.Command{
	Use:     "run <file> <url>",
	Short:   "Run a Lua source against a URL without installing it",
	Args:    cobra.ExactArgs(2),
	Example: "  radiodl sources run ./radio.example.lua https://radio.example/programa",
	Run: func(cmd *cobra.Command, args []string) {
		path, err := filepath.Abs(args[0])
		handleErr(err)

		src, err := custom.LoadSource(path, args[1], lo.Must(cmd.Flags().GetString("program")))
		handleErr(err)

		ctx, cancel := interruptible()
		defer cancel()

		handleErr(inline.Run(&inline.Options{
			Context: ctx,
			Out:     os.Stdout,
			Source:  src,
			Resolve: lo.Must(cmd.Flags().GetBool("resolve")),
		}))
	},
}
