package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/radiodl-cli/radiodl/history"
	"github.com/radiodl-cli/radiodl/icon"
	"github.com/radiodl-cli/radiodl/style"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(historyCmd)

	historyCmd.Flags().BoolP("json", "j", false, "Print the entries as JSON")
	historyCmd.Flags().IntP("limit", "n", 0, "Show at most n entries")
	historyCmd.Flags().StringP("program", "p", "", "Only show entries of this program")
	historyCmd.Flags().Bool("clear", false, "Delete the download history")

	lo.Must0(historyCmd.RegisterFlagCompletionFunc("program", completionProgramNames))
	historyCmd.SetOut(os.Stdout)
}

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show the most recent downloads",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		if lo.Must(cmd.Flags().GetBool("clear")) {
			handleErr(history.Clear())
			fmt.Printf("%s history cleared\n", icon.Get(icon.Success))
			return
		}

		entries, err := history.Sorted()
		handleErr(err)

		if program := lo.Must(cmd.Flags().GetString("program")); program != "" {
			entries = lo.Filter(entries, func(e *history.Entry, _ int) bool {
				return e.Program == program
			})
		}

		if limit := lo.Must(cmd.Flags().GetInt("limit")); limit > 0 && limit < len(entries) {
			entries = entries[:limit]
		}

		if lo.Must(cmd.Flags().GetBool("json")) {
			encoder := json.NewEncoder(cmd.OutOrStdout())
			encoder.SetEscapeHTML(false)
			handleErr(encoder.Encode(entries))
			return
		}

		if len(entries) == 0 {
			fmt.Printf("%s no downloads recorded\n", icon.Get(icon.Info))
			return
		}

		for _, entry := range entries {
			cmd.Printf("%s %s\n", icon.Get(icon.Download), entry)
			cmd.Println(style.Faint("  " + entry.Path))
		}
	},
}
