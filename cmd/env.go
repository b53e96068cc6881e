package cmd

import (
	"os"

	"github.com/movieflix-cli/movieflix/color"
	"github.com/movieflix-cli/movieflix/config"
	"github.com/movieflix-cli/movieflix/style"
	"github.com/movieflix-cli/movieflix/where"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"golang.org/x/exp/slices"
)

func init() {
	rootCmd.AddCommand(envCmd)
	envCmd.Flags().BoolP("set-only", "s", false, "Only show variables that are set")
	envCmd.Flags().BoolP("unset-only", "u", false, "Only show variables that are not set")

	envCmd.MarkFlagsMutuallyExclusive("set-only", "unset-only")
}

// envNames lists every supported variable: one per setting plus the config path override.
func envNames() []string {
	names := lo.MapToSlice(config.Default, func(_ string, field config.Field) string {
		return field.Env()
	})
	names = append(names, where.EnvConfigPath)
	slices.Sort(names)
	return names
}

var envCmd = &cobra.Command{
	Use:   "env",
	Short: "List the supported environment variables",
	Long:  `List the supported MOVIEFLIX_* environment variables and their values in this process.`,
	Run: func(cmd *cobra.Command, args []string) {
		setOnly := lo.Must(cmd.Flags().GetBool("set-only"))
		unsetOnly := lo.Must(cmd.Flags().GetBool("unset-only"))

		for _, env := range envNames() {
			value, present := os.LookupEnv(env)
			if (setOnly && !present) || (unsetOnly && present) {
				continue
			}

			cmd.Print(style.New().Bold(true).Foreground(color.Accent).Render(env))
			cmd.Print("=")

			if present {
				cmd.Println(style.Fg(color.Green)(value))
			} else {
				cmd.Println(style.Fg(color.Red)("unset"))
			}
		}
	},
}
