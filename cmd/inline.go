package cmd

import (
	"encoding/json"
	"io"
	"os"

	"github.com/invopop/jsonschema"
	"github.com/radiodl-cli/radiodl/filesystem"
	"github.com/radiodl-cli/radiodl/inline"
	"github.com/radiodl-cli/radiodl/programs"
	"github.com/radiodl-cli/radiodl/provider"
	"github.com/radiodl-cli/radiodl/source"
	"github.com/radiodl-cli/radiodl/util"
	"github.com/radiodl-cli/radiodl/where"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(inlineCmd)

	inlineCmd.Flags().StringP("episodes", "e", "", "Criteria for selecting specific episodes")
	inlineCmd.Flags().BoolP("json", "j", false, "Format the command output as a JSON object")
	inlineCmd.Flags().BoolP("resolve", "r", false, "Resolve the audio URL of every selected episode")
	inlineCmd.Flags().StringP("output", "o", "", "Specify a file path to write the command output")
}

// inlineCmd lists what a scraper finds for a URL or configured program, without downloading.
var inlineCmd = &cobra.Command{
	Use:   "inline <url|program>",
	Short: "List the episodes a program URL yields without downloading them",
	Long: `List the episodes a program URL yields without downloading them.
The argument is either a URL or the name of a configured program.

Episode selectors:
  first - first episode in the list
  last - last episode in the list
  all - all episodes in the list
  [number] - select episode by index (starting from 0)
  [from]-[to] - select episodes by range
  @[substring]@ - select episodes by title substring`,
	Example:           "  radiodl inline https://www.twr360.org/ministry/101/programs --json --resolve -e first",
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: completionProgramNames,
	Run: func(cmd *cobra.Command, args []string) {
		src, err := inlineSource(args[0])
		handleErr(err)

		var writer io.Writer = os.Stdout
		if output := lo.Must(cmd.Flags().GetString("output")); output != "" {
			f, err := filesystem.API().Create(output)
			handleErr(err)
			defer util.Ignore(f.Close)
			writer = f
		}

		filter := mo.None[inline.EpisodesFilter]()
		if flag := lo.Must(cmd.Flags().GetString("episodes")); flag != "" {
			fn, err := inline.ParseEpisodesFilter(flag)
			handleErr(err)
			filter = mo.Some(fn)
		}

		ctx, cancel := interruptible()
		defer cancel()

		handleErr(inline.Run(&inline.Options{
			Context: ctx,
			Out:     writer,
			Source:  src,
			Json:    lo.Must(cmd.Flags().GetBool("json")),
			Resolve: lo.Must(cmd.Flags().GetBool("resolve")),
			Filter:  filter,
		}))
	},
}

// inlineSource prefers a configured program of that name over treating arg as a URL.
func inlineSource(arg string) (source.Source, error) {
	if manager, err := programs.Open(where.Programs()); err == nil {
		if p, ok := manager.Find(arg).Get(); ok {
			return provider.CreateNamed(p.URL, p.Name)
		}
	}

	return provider.Create(arg)
}

func init() {
	inlineCmd.AddCommand(inlineSchemaCmd)
}

var inlineSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Generate the JSON schema of the inline output",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		reflector := new(jsonschema.Reflector)
		reflector.Anonymous = true
		reflector.DoNotReference = true

		handleErr(json.NewEncoder(os.Stdout).Encode(reflector.Reflect(&inline.Output{})))
	},
}
