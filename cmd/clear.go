package cmd

import (
	"fmt"

	"github.com/movieflix-cli/movieflix/icon"
	"github.com/movieflix-cli/movieflix/util"
	"github.com/movieflix-cli/movieflix/where"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/cobra"
)

type clearTarget struct {
	name     string
	argLong  string
	argShort mo.Option[string]
	location func() string
}

var clearTargets = []clearTarget{
	{"log files", "logs", mo.Some("l"), where.Logs},
	{"player sockets", "temp", mo.Some("t"), where.Temp},
}

func init() {
	rootCmd.AddCommand(clearCmd)

	for _, target := range clearTargets {
		help := fmt.Sprintf("clear %s", target.name)
		if short, ok := target.argShort.Get(); ok {
			clearCmd.Flags().BoolP(target.argLong, short, false, help)
		} else {
			clearCmd.Flags().Bool(target.argLong, false, help)
		}
	}
}

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove log files and leftover player sockets",
	Run: func(cmd *cobra.Command, args []string) {
		cleared := lo.Filter(clearTargets, func(target clearTarget, _ int) bool {
			return lo.Must(cmd.Flags().GetBool(target.argLong))
		})

		if len(cleared) == 0 {
			handleErr(cmd.Help())
			return
		}

		for _, target := range cleared {
			handleErr(util.Delete(target.location()))
			fmt.Printf("%s %s cleared\n", icon.Get(icon.Success), util.Capitalize(target.name))
		}
	},
}
