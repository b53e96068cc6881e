package cmd

import (
	"encoding/json"
	"io"
	"os"
	"strings"

	"github.com/movieflix-cli/movieflix/catalog"
	"github.com/movieflix-cli/movieflix/filesystem"
	"github.com/movieflix-cli/movieflix/inline"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(inlineCmd)

	categories := lo.Map(catalog.Categories(), func(c catalog.Category, _ int) string { return string(c) })

	inlineCmd.Flags().StringP("query", "q", "", "Fuzzy search over titles, descriptions and genres")
	inlineCmd.Flags().StringP("category", "c", string(catalog.CategoryAll), "Only list this category: "+strings.Join(categories, ", "))
	inlineCmd.Flags().StringP("similar-to", "s", "", "List the movies similar to this id")
	inlineCmd.Flags().IntP("limit", "n", 0, "Print at most this many movies")
	inlineCmd.Flags().BoolP("json", "j", false, "Print a JSON document")
	inlineCmd.Flags().Bool("schema", false, "Print the JSON schema of the JSON output and exit")
	inlineCmd.Flags().StringP("output", "o", "", "Write to this file instead of stdout")

	inlineCmd.MarkFlagsMutuallyExclusive("query", "similar-to")

	lo.Must0(inlineCmd.RegisterFlagCompletionFunc("category", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return categories, cobra.ShellCompDirectiveNoFileComp
	}))
	lo.Must0(inlineCmd.RegisterFlagCompletionFunc("similar-to", completionMovieIDs))
}

var inlineCmd = &cobra.Command{
	Use:   "inline",
	Short: "Query the catalog without the interactive screens",
	Long: `Print catalog results for scripts.

Text output is one movie per line: id, title, duration and comma separated genres, separated by tabs.
With --json a document {"query", "category", "result"} is printed instead.`,
	Example: "  movieflix inline --category animation --json\n  movieflix inline --similar-to 1 --limit 3",
	Run: func(cmd *cobra.Command, args []string) {
		writer := io.Writer(os.Stdout)
		if output := lo.Must(cmd.Flags().GetString("output")); output != "" {
			file, err := filesystem.API().Create(output)
			handleErr(err)
			defer file.Close()
			writer = file
		}

		if lo.Must(cmd.Flags().GetBool("schema")) {
			handleErr(json.NewEncoder(writer).Encode(inline.Schema()))
			return
		}

		category, err := catalog.ParseCategory(lo.Must(cmd.Flags().GetString("category")))
		handleErr(err)

		similarTo := mo.None[string]()
		if id := lo.Must(cmd.Flags().GetString("similar-to")); id != "" {
			similarTo = mo.Some(id)
		}

		handleErr(inline.Run(&inline.Options{
			Out:       writer,
			Json:      lo.Must(cmd.Flags().GetBool("json")),
			Query:     lo.Must(cmd.Flags().GetString("query")),
			Category:  category,
			SimilarTo: similarTo,
			Limit:     lo.Must(cmd.Flags().GetInt("limit")),
		}))
	},
}
