package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/radiodl-cli/radiodl/color"
	"github.com/radiodl-cli/radiodl/config"
	"github.com/radiodl-cli/radiodl/constant"
	"github.com/radiodl-cli/radiodl/filesystem"
	"github.com/radiodl-cli/radiodl/icon"
	"github.com/radiodl-cli/radiodl/style"
	"github.com/radiodl-cli/radiodl/where"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// field looks up a registered key, failing with a suggestion.
func field(k string) config.Field {
	f, ok := config.Default[k]
	if !ok {
		handleErr(fmt.Errorf(
			"unknown key %s, did you mean %s?",
			style.Fg(color.Red)(k),
			style.Fg(color.Yellow)(config.Closest(k)),
		))
	}
	return f
}

func configFile() string {
	return filepath.Join(where.Config(), constant.Radiodl+".toml")
}

// persist writes the in-memory config, creating the file on first use.
func persist() {
	switch err := viper.WriteConfig(); err.(type) {
	case viper.ConfigFileNotFoundError:
		handleErr(viper.SafeWriteConfig())
	default:
		handleErr(err)
	}
}

func completionConfigKeys(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
	return lo.Keys(config.Default), cobra.ShellCompDirectiveNoFileComp
}

func init() {
	rootCmd.AddCommand(configCmd)
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage application configuration settings and defaults",
	Long: `Manage application configuration settings and defaults.
Programs and their settings live in the programs file, see "radiodl programs path".`,
}

func init() {
	configCmd.AddCommand(configInfoCmd)
	configInfoCmd.Flags().StringSliceP("key", "k", []string{}, "Only describe these keys")
	configInfoCmd.Flags().BoolP("json", "j", false, "Format the output as JSON")
	lo.Must0(configInfoCmd.RegisterFlagCompletionFunc("key", completionConfigKeys))

	configInfoCmd.SetOut(os.Stdout)
}

var configInfoCmd = &cobra.Command{
	Use:   "info",
	Short: "Describe configuration fields with their current values",
	Run: func(cmd *cobra.Command, args []string) {
		fields := lo.Values(config.Default)
		if keys := lo.Must(cmd.Flags().GetStringSlice("key")); len(keys) > 0 {
			fields = lo.Map(keys, func(k string, _ int) config.Field { return field(k) })
		}

		sort.Slice(fields, func(i, j int) bool {
			return fields[i].Key < fields[j].Key
		})

		if lo.Must(cmd.Flags().GetBool("json")) {
			handleErr(json.NewEncoder(cmd.OutOrStdout()).Encode(lo.ToSlicePtr(fields)))
			return
		}

		for i := range fields {
			if i > 0 {
				cmd.Println()
			}
			cmd.Println(fields[i].Pretty())
		}
	},
}

func init() {
	configCmd.AddCommand(configSetCmd)
}

var configSetCmd = &cobra.Command{
	Use:               "set <key> <value>...",
	Short:             "Set a configuration key",
	Example:           "  radiodl config set downloader.large_hosts podbean.com libsyn.com",
	Args:              cobra.MinimumNArgs(2),
	ValidArgsFunction: completionConfigKeys,
	Run: func(cmd *cobra.Command, args []string) {
		f := field(args[0])

		value, err := f.Parse(args[1:])
		handleErr(err)

		viper.Set(f.Key, value)
		persist()

		fmt.Printf(
			"%s set %s to %s\n",
			icon.Get(icon.Success),
			style.Fg(color.Purple)(f.Key),
			style.Fg(color.Yellow)(fmt.Sprint(value)),
		)
	},
}

func init() {
	configCmd.AddCommand(configGetCmd)
}

var configGetCmd = &cobra.Command{
	Use:               "get <key>",
	Short:             "Print the current value of a configuration key",
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: completionConfigKeys,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(viper.Get(field(args[0]).Key))
	},
}

func init() {
	configCmd.AddCommand(configWriteCmd)
	configWriteCmd.Flags().BoolP("force", "f", false, "Overwrite the existing configuration file")
}

var configWriteCmd = &cobra.Command{
	Use:   "write",
	Short: "Write the current configuration to the config file",
	Run: func(cmd *cobra.Command, args []string) {
		if lo.Must(cmd.Flags().GetBool("force")) {
			handleErr(filesystem.API().Remove(configFile()))
		}

		handleErr(viper.SafeWriteConfig())
		fmt.Printf("%s wrote config to %s\n", icon.Get(icon.Success), configFile())
	},
}

func init() {
	configCmd.AddCommand(configDeleteCmd)
}

var configDeleteCmd = &cobra.Command{
	Use:     "delete",
	Short:   "Delete the config file",
	Aliases: []string{"remove"},
	Run: func(cmd *cobra.Command, args []string) {
		handleErr(filesystem.API().Remove(configFile()))
		fmt.Printf("%s deleted config\n", icon.Get(icon.Success))
	},
}

func init() {
	configCmd.AddCommand(configResetCmd)
	configResetCmd.Flags().BoolP("all", "a", false, "Reset every key")
}

var configResetCmd = &cobra.Command{
	Use:               "reset [key]",
	Short:             "Restore a key, or every key, to its default",
	Args:              cobra.MaximumNArgs(1),
	ValidArgsFunction: completionConfigKeys,
	Run: func(cmd *cobra.Command, args []string) {
		all := lo.Must(cmd.Flags().GetBool("all"))

		switch {
		case all:
			for k, f := range config.Default {
				viper.Set(k, f.Value)
			}
		case len(args) == 1:
			f := field(args[0])
			viper.Set(f.Key, f.Value)
		default:
			handleErr(fmt.Errorf("either a key or --all must be given"))
		}

		persist()

		if all {
			fmt.Printf("%s reset all config values\n", icon.Get(icon.Success))
			return
		}

		fmt.Printf(
			"%s reset %s to %s\n",
			icon.Get(icon.Success),
			style.Fg(color.Purple)(args[0]),
			style.Fg(color.Yellow)(fmt.Sprint(config.Default[args[0]].Value)),
		)
	},
}
