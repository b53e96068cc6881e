package cmd

import (
	"fmt"
	"runtime"

	"github.com/charmbracelet/lipgloss"
	"github.com/movieflix-cli/movieflix/constant"
	"github.com/movieflix-cli/movieflix/icon"
	"github.com/movieflix-cli/movieflix/key"
	"github.com/movieflix-cli/movieflix/player"
	"github.com/movieflix-cli/movieflix/style"
	"github.com/movieflix-cli/movieflix/util"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.AddCommand(checkCmd)
}

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Verify that the configured playback engine can run",
	Run: func(cmd *cobra.Command, args []string) {
		engine := viper.GetString(key.PlayerEngine)
		if _, err := player.New(engine, player.Options{}); err != nil {
			handleErr(err)
		}

		if err := player.CheckDependencies(engine); err != nil {
			printMissingDependency(player.MPVName)
			handleErr(err)
		}

		fmt.Printf("%s engine %s is ready\n", style.Fg(style.SuccessColor)(icon.Get(icon.Success)), style.Bold(engine))
	},
}

func installHint(dep string) string {
	switch runtime.GOOS {
	case constant.Darwin:
		return "brew install " + dep
	case constant.Linux:
		return "sudo apt install " + dep
	case constant.Windows:
		return "scoop install " + dep
	case constant.Android:
		return "pkg install " + dep
	default:
		return ""
	}
}

func printMissingDependency(dep string) {
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(style.ErrorColor).
		Padding(1, 2).
		Margin(1, 0)
	if width, _, err := util.TerminalSize(); err == nil && width > 8 {
		box = box.MaxWidth(width)
	}

	title := style.New().Bold(true).Foreground(style.ErrorColor).Render(fmt.Sprintf("%s Missing dependency", icon.Get(icon.Fail)))
	body := style.New().Foreground(style.TextColor).Render(fmt.Sprintf("'%s' was not found in your PATH.", dep))

	suggestion := fmt.Sprintf("\n\nOr browse without it:\n  %s", style.New().Foreground(style.AccentColor).Bold(true).Render(
		fmt.Sprintf("%s --engine %s", constant.App, player.SimulatedName),
	))
	if hint := installHint(dep); hint != "" {
		suggestion = fmt.Sprintf("\n\nTo install it, try:\n  %s", style.New().Foreground(style.AccentColor).Bold(true).Render(hint)) + suggestion
	}

	fmt.Println(box.Render(lipgloss.JoinVertical(lipgloss.Left, title, "", body, suggestion)))
}
