// Package cmd is the movieflix command line.
package cmd

import (
	"fmt"
	"os"
	"strings"
	"time"

	cc "github.com/ivanpirog/coloredcobra"
	"github.com/movieflix-cli/movieflix/catalog"
	"github.com/movieflix-cli/movieflix/color"
	"github.com/movieflix-cli/movieflix/constant"
	"github.com/movieflix-cli/movieflix/icon"
	"github.com/movieflix-cli/movieflix/key"
	"github.com/movieflix-cli/movieflix/log"
	"github.com/movieflix-cli/movieflix/player"
	"github.com/movieflix-cli/movieflix/style"
	"github.com/movieflix-cli/movieflix/tui"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.Flags().BoolP("version", "v", false, "Print the application version")

	rootCmd.PersistentFlags().StringP("icons", "I", "", "Icon variant: "+strings.Join(icon.AvailableVariants(), ", "))
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("icons", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return icon.AvailableVariants(), cobra.ShellCompDirectiveDefault
	}))
	lo.Must0(viper.BindPFlag(key.IconsVariant, rootCmd.PersistentFlags().Lookup("icons")))

	rootCmd.PersistentFlags().BoolP("tv", "t", false, "Use the TV layout and the player's own on-screen controls")
	lo.Must0(viper.BindPFlag(key.TVMode, rootCmd.PersistentFlags().Lookup("tv")))

	rootCmd.PersistentFlags().StringP("engine", "e", "", "Playback engine: "+strings.Join(player.Names(), ", "))
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("engine", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return player.Names(), cobra.ShellCompDirectiveNoFileComp
	}))
	lo.Must0(viper.BindPFlag(key.PlayerEngine, rootCmd.PersistentFlags().Lookup("engine")))

	rootCmd.Flags().StringP("movie", "m", "", "Open the detail screen of a movie by id")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("movie", completionMovieIDs))
}

var rootCmd = &cobra.Command{
	Use:   constant.App,
	Short: "Browse and watch the sample movie catalog from the terminal",
	Long: constant.AsciiArtLogo + "\n" +
		style.New().Italic(true).Foreground(color.Danger).Render("    - Browse and watch the sample movie catalog from the terminal"),
	Run: func(cmd *cobra.Command, args []string) {
		if cmd.Flags().Changed("version") {
			versionCmd.Run(versionCmd, args)
			return
		}

		movie := mo.None[string]()
		if id := lo.Must(cmd.Flags().GetString("movie")); id != "" {
			movie = mo.Some(id)
		}

		runTUI(movie)
	},
}

// runTUI starts the interactive screens with the configured engine.
func runTUI(movie mo.Option[string]) {
	engineName := viper.GetString(key.PlayerEngine)
	if err := player.CheckDependencies(engineName); err != nil {
		printMissingDependency(player.MPVName)
		handleErr(err)
	}

	opts := player.OptionsFromConfig()
	opts.TitleOf = func(uri string) string {
		if m, ok := catalog.FindByVideoURL(uri).Get(); ok {
			return m.Title
		}
		return uri
	}
	opts.DurationOf = func(uri string) time.Duration {
		if m, ok := catalog.FindByVideoURL(uri).Get(); ok {
			return m.Length()
		}
		return 0
	}

	engine, err := player.New(engineName, opts)
	handleErr(err)

	handleErr(tui.Run(&tui.Options{
		Engine:  engine,
		TVMode:  viper.GetBool(key.TVMode),
		MovieID: movie,
	}))
}

func completionMovieIDs(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
	return lo.Map(catalog.All(), func(m *catalog.Movie, _ int) string {
		return m.ID + "\t" + m.Title
	}), cobra.ShellCompDirectiveNoFileComp
}

// Execute runs the command line.
func Execute() {
	if viper.GetBool(key.CliColored) {
		cc.Init(&cc.Config{
			RootCmd:       rootCmd,
			Headings:      cc.HiRed + cc.Bold + cc.Underline,
			Commands:      cc.HiBlue + cc.Bold,
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
