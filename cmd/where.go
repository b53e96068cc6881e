package cmd

import (
	"fmt"
	"os"

	"github.com/movieflix-cli/movieflix/color"
	"github.com/movieflix-cli/movieflix/filesystem"
	"github.com/movieflix-cli/movieflix/style"
	"github.com/movieflix-cli/movieflix/where"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

// location is a path `where` can print on its own with a flag.
type location struct {
	flag    string
	short   string
	title   string
	resolve func() string
	hidden  bool
}

var locations = []location{
	{flag: "config", short: "c", title: "Config", resolve: where.Config},
	{flag: "logs", short: "l", title: "Logs", resolve: where.Logs},
	{flag: "queries", short: "q", title: "Search history", resolve: where.Queries},
	{flag: "temp", title: "Player sockets", resolve: where.Temp, hidden: true},
}

func init() {
	rootCmd.AddCommand(whereCmd)

	flags := whereCmd.Flags()
	for _, l := range locations {
		usage := fmt.Sprintf("print only the %s path", l.flag)
		if l.short == "" {
			flags.Bool(l.flag, false, usage)
		} else {
			flags.BoolP(l.flag, l.short, false, usage)
		}

		if l.hidden {
			lo.Must0(flags.MarkHidden(l.flag))
		}
	}

	whereCmd.MarkFlagsMutuallyExclusive(lo.Map(locations, func(l location, _ int) string {
		return l.flag
	})...)
	whereCmd.SetOut(os.Stdout)
}

var whereCmd = &cobra.Command{
	Use:   "where",
	Short: "Show where the config, logs and search history live",
	Run: func(cmd *cobra.Command, args []string) {
		if l, ok := lo.Find(locations, func(l location) bool {
			return lo.Must(cmd.Flags().GetBool(l.flag))
		}); ok {
			cmd.Println(l.resolve())
			return
		}

		title := style.New().Bold(true).Foreground(color.Accent).Render
		for _, l := range lo.Reject(locations, func(l location, _ int) bool { return l.hidden }) {
			path := l.resolve()
			state := style.Faint("missing")
			if filesystem.Exists(path) {
				state = style.Fg(color.Green)("exists")
			}

			cmd.Printf("%s %s %s\n", title(l.title), style.Fg(color.Yellow)("--"+l.flag), state)
			cmd.Printf("  %s\n", path)
		}
	},
}
