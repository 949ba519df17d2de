package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/radiodl-cli/radiodl/programs"
	"github.com/radiodl-cli/radiodl/where"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(programsCmd)
}

var programsCmd = &cobra.Command{
	Use:   "programs",
	Short: "Programs file utilities",
}

func init() {
	programsCmd.AddCommand(programsSchemaCmd)
	programsSchemaCmd.SetOut(os.Stdout)
}

var programsSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON schema of the programs file",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent("", "  ")
		lo.Must0(encoder.Encode(programs.Schema()))
	},
}

func init() {
	programsCmd.AddCommand(programsPathCmd)
}

var programsPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the path of the programs file",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(where.Programs())
	},
}

func init() {
	programsCmd.AddCommand(programsInitCmd)
	programsInitCmd.Flags().BoolP("force", "f", false, "Overwrite an existing file")
}

var programsInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a programs file with the default settings",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		path := where.Programs()

		manager := openPrograms()
		if len(manager.All()) > 0 && !lo.Must(cmd.Flags().GetBool("force")) {
			handleErr(fmt.Errorf("%s already has programs, use --force to reset it", path))
		}

		handleErr(programs.Defaults(path).Save())
		fmt.Println(path)
	},
}
