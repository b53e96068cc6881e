package cmd

import (
	"fmt"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/movieflix-cli/movieflix/catalog"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(playCmd)
}

var playCmd = &cobra.Command{
	Use:               "play [id]",
	Short:             "Open a movie's player screen, picking one interactively without an id",
	Args:              cobra.MaximumNArgs(1),
	ValidArgsFunction: completionMovieIDs,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 1 {
			runTUI(mo.Some(args[0]))
			return
		}

		id, err := pickMovie()
		handleErr(err)
		runTUI(mo.Some(id))
	},
}

func pickMovie() (string, error) {
	movies := catalog.All()
	labels := lo.Map(movies, func(m *catalog.Movie, _ int) string {
		return fmt.Sprintf("%s (%s)", m.Title, m.Duration)
	})

	var index int
	prompt := &survey.Select{
		Message:  "Pick a movie:",
		Options:  labels,
		PageSize: 12,
		Description: func(_ string, i int) string {
			return strings.Join(movies[i].Genre, ", ")
		},
	}
	if err := survey.AskOne(prompt, &index); err != nil {
		return "", err
	}
	return movies[index].ID, nil
}
