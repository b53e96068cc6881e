package cmd

import (
	"os"
	"runtime"
	"strings"
	"text/template"

	"github.com/movieflix-cli/movieflix/color"
	"github.com/movieflix-cli/movieflix/constant"
	"github.com/movieflix-cli/movieflix/style"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(versionCmd)
	versionCmd.SetOut(os.Stdout)
	versionCmd.Flags().BoolP("short", "s", false, "Only print the version number")
}

var versionTemplate = `{{ accent "▇▇▇" }} {{ accent .App }}

  {{ faint "Version" }}     {{ bold .Version }}
  {{ faint "Git Commit" }}  {{ bold .Revision }}
  {{ faint "Build Date" }}  {{ bold .BuiltAt }}
  {{ faint "Built By" }}    {{ bold .BuiltBy }}
  {{ faint "Platform" }}    {{ bold .OS }}/{{ bold .Arch }}
`

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version and build information",
	Run: func(cmd *cobra.Command, args []string) {
		if lo.Must(cmd.Flags().GetBool("short")) {
			cmd.Println(constant.Version)
			return
		}

		versionInfo := struct {
			App      string
			Version  string
			OS       string
			Arch     string
			BuiltAt  string
			BuiltBy  string
			Revision string
		}{
			App:      constant.Brand,
			Version:  constant.Version,
			OS:       runtime.GOOS,
			Arch:     runtime.GOARCH,
			BuiltAt:  strings.TrimSpace(constant.BuiltAt),
			BuiltBy:  constant.BuiltBy,
			Revision: constant.Revision,
		}

		t, err := template.New("version").Funcs(map[string]any{
			"faint":  style.Faint,
			"bold":   style.Bold,
			"accent": style.Fg(color.Accent),
		}).Parse(versionTemplate)
		handleErr(err)
		handleErr(t.Execute(cmd.OutOrStdout(), versionInfo))
	},
}
