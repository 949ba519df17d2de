// Package cmd implements the radiodl command line.
package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	cc "github.com/ivanpirog/coloredcobra"
	"github.com/radiodl-cli/radiodl/color"
	"github.com/radiodl-cli/radiodl/constant"
	"github.com/radiodl-cli/radiodl/icon"
	"github.com/radiodl-cli/radiodl/key"
	"github.com/radiodl-cli/radiodl/log"
	"github.com/radiodl-cli/radiodl/programs"
	"github.com/radiodl-cli/radiodl/style"
	"github.com/radiodl-cli/radiodl/util"
	"github.com/radiodl-cli/radiodl/version"
	"github.com/radiodl-cli/radiodl/where"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.Flags().BoolP("version", "v", false, "Print the application version")

	rootCmd.PersistentFlags().StringP("icons", "I", "", "Set the visual icon variant (e.g., nerd, emoji, squares)")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("icons", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return icon.AvailableVariants(), cobra.ShellCompDirectiveDefault
	}))
	lo.Must0(viper.BindPFlag(key.IconsVariant, rootCmd.PersistentFlags().Lookup("icons")))

	rootCmd.PersistentFlags().StringP("programs-file", "P", "", "Path to the programs file")
	lo.Must0(viper.BindPFlag(key.ProgramsFile, rootCmd.PersistentFlags().Lookup("programs-file")))

	addRunFlags(rootCmd)

	helpFunc := rootCmd.HelpFunc()
	rootCmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		helpFunc(cmd, args)
		version.Notify()
	})

	go func() {
		_ = util.Delete(where.Temp())
	}()
}

// rootCmd runs the batch download when called without a subcommand.
var rootCmd = &cobra.Command{
	Use:   constant.Radiodl,
	Short: "Download the latest episodes of Spanish Christian radio programs",
	Long: constant.AsciiArtLogo + "\n" +
		style.New().Italic(true).Foreground(color.HiRed).Render("    - Download the latest episodes of Spanish Christian radio programs"),
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		if cmd.Flags().Changed("version") {
			versionCmd.Run(versionCmd, args)
			return
		}

		runBatch(cmd)
	},
}

// Execute initializes child command routing and processes the CLI entry point.
func Execute() {
	if viper.GetBool(key.CliColored) {
		cc.Init(&cc.Config{
			RootCmd:       rootCmd,
			Headings:      cc.HiCyan + cc.Bold + cc.Underline,
			Commands:      cc.HiYellow + cc.Bold,
			Example:       cc.Italic,
			ExecName:      cc.Bold,
			Flags:         cc.Bold,
			FlagsDataType: cc.Italic + cc.HiBlue,
		})
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func handleErr(err error) {
	if err != nil {
		log.Error(err)
		_, _ = fmt.Fprintf(os.Stderr, "%s %s\n", icon.Get(icon.Fail), strings.Trim(err.Error(), " \n"))
		os.Exit(1)
	}
}

// openPrograms loads the programs file; errors are fatal for admin commands.
func openPrograms() *programs.Manager {
	manager, err := programs.Open(where.Programs())
	handleErr(err)
	return manager
}

// interruptible is cancelled on Ctrl-C or SIGTERM.
func interruptible() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
}
