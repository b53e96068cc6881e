package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"
	"strconv"

	levenshtein "github.com/ka-weihe/fast-levenshtein"
	"github.com/movieflix-cli/movieflix/color"
	"github.com/movieflix-cli/movieflix/config"
	"github.com/movieflix-cli/movieflix/filesystem"
	"github.com/movieflix-cli/movieflix/icon"
	"github.com/movieflix-cli/movieflix/style"
	"github.com/movieflix-cli/movieflix/where"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func errUnknownKey(key string) error {
	closest := lo.MinBy(lo.Keys(config.Default), func(a string, b string) bool {
		return levenshtein.Distance(key, a) < levenshtein.Distance(key, b)
	})

	return fmt.Errorf(
		"unknown key %s, did you mean %s?",
		style.Fg(color.Red)(key),
		style.Fg(color.Yellow)(closest),
	)
}

func completionConfigKeys(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
	return lo.Keys(config.Default), cobra.ShellCompDirectiveNoFileComp
}

// keyArg resolves the key from the first argument or the --key flag.
func keyArg(cmd *cobra.Command, args []string) string {
	key := lo.Must(cmd.Flags().GetString("key"))
	if len(args) > 0 {
		key = args[0]
	}
	if key == "" {
		handleErr(errors.New("key is required as an argument or --key flag"))
	}
	if _, ok := config.Default[key]; !ok {
		handleErr(errUnknownKey(key))
	}
	return key
}

// parseValue converts raw to the type of the key's default.
func parseValue(key, raw string) (any, error) {
	switch config.Default[key].Value.(type) {
	case int:
		v, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid integer value for %s: %q", key, raw)
		}
		return v, nil
	case bool:
		v, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid boolean value for %s: %q", key, raw)
		}
		return v, nil
	default:
		return raw, nil
	}
}

func writeConfig() {
	err := viper.WriteConfig()
	var notFound viper.ConfigFileNotFoundError
	if errors.As(err, &notFound) {
		err = viper.SafeWriteConfigAs(where.ConfigFile())
	}
	handleErr(err)
}

func init() {
	rootCmd.AddCommand(configCmd)
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect and change settings",
}

func init() {
	configCmd.AddCommand(configInfoCmd)
	configInfoCmd.Flags().StringSliceP("key", "k", []string{}, "Only describe these keys")
	configInfoCmd.Flags().BoolP("json", "j", false, "Print JSON")
	_ = configInfoCmd.RegisterFlagCompletionFunc("key", completionConfigKeys)

	configInfoCmd.SetOut(os.Stdout)
}

var configInfoCmd = &cobra.Command{
	Use:   "info",
	Short: "Describe settings, their defaults and current values",
	Run: func(cmd *cobra.Command, args []string) {
		var (
			keys   = lo.Must(cmd.Flags().GetStringSlice("key"))
			asJson = lo.Must(cmd.Flags().GetBool("json"))
			fields = lo.Values(config.Default)
		)

		if len(keys) > 0 {
			fields = make([]config.Field, 0, len(keys))
			for _, key := range keys {
				field, ok := config.Default[key]
				if !ok {
					handleErr(errUnknownKey(key))
				}
				fields = append(fields, field)
			}
		}

		sort.Slice(fields, func(i, j int) bool {
			return fields[i].Key < fields[j].Key
		})

		if asJson {
			encoder := json.NewEncoder(cmd.OutOrStdout())
			// elements are addressed so the pointer MarshalJSON applies
			handleErr(encoder.Encode(lo.Map(fields, func(f config.Field, _ int) *config.Field {
				return &f
			})))
			return
		}

		for i := range fields {
			cmd.Print(fields[i].Pretty())
			if i < len(fields)-1 {
				cmd.Println()
				cmd.Println()
			}
		}
		cmd.Println()
	},
}

func init() {
	configCmd.AddCommand(configGetCmd)
	configGetCmd.Flags().StringP("key", "k", "", "The key to print")
	_ = configGetCmd.RegisterFlagCompletionFunc("key", completionConfigKeys)
}

var configGetCmd = &cobra.Command{
	Use:               "get [key]",
	Short:             "Print the current value of a setting",
	Args:              cobra.MaximumNArgs(1),
	ValidArgsFunction: completionConfigKeys,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(viper.Get(keyArg(cmd, args)))
	},
}

func init() {
	configCmd.AddCommand(configSetCmd)
	configSetCmd.Flags().StringP("key", "k", "", "The key to change")
	configSetCmd.Flags().StringP("value", "v", "", "The new value")
	_ = configSetCmd.RegisterFlagCompletionFunc("key", completionConfigKeys)
}

var configSetCmd = &cobra.Command{
	Use:               "set [key] [value]",
	Short:             "Change a setting and save it to the config file",
	Args:              cobra.MaximumNArgs(2),
	ValidArgsFunction: completionConfigKeys,
	Run: func(cmd *cobra.Command, args []string) {
		key := keyArg(cmd, args)

		raw := lo.Must(cmd.Flags().GetString("value"))
		if len(args) == 2 {
			raw = args[1]
		} else if !cmd.Flags().Changed("value") {
			handleErr(errors.New("value is required as an argument or --value flag"))
		}

		value, err := parseValue(key, raw)
		handleErr(err)

		viper.Set(key, value)
		writeConfig()

		fmt.Printf(
			"%s set %s to %s\n",
			style.Fg(color.Green)(icon.Get(icon.Success)),
			style.Fg(color.Accent)(key),
			style.Fg(color.Yellow)(fmt.Sprintf("%v", value)),
		)
	},
}

func init() {
	configCmd.AddCommand(configWriteCmd)
	configWriteCmd.Flags().BoolP("force", "f", false, "Overwrite an existing config file")
}

var configWriteCmd = &cobra.Command{
	Use:   "write",
	Short: "Write the current settings to the config file",
	Run: func(cmd *cobra.Command, args []string) {
		path := where.ConfigFile()

		if lo.Must(cmd.Flags().GetBool("force")) && filesystem.Exists(path) {
			handleErr(filesystem.API().Remove(path))
		}

		handleErr(viper.SafeWriteConfigAs(path))
		fmt.Printf(
			"%s wrote config to %s\n",
			style.Fg(color.Green)(icon.Get(icon.Success)),
			path,
		)
	},
}

func init() {
	configCmd.AddCommand(configDeleteCmd)
}

var configDeleteCmd = &cobra.Command{
	Use:     "delete",
	Short:   "Delete the config file",
	Aliases: []string{"remove"},
	Run: func(cmd *cobra.Command, args []string) {
		handleErr(filesystem.API().Remove(where.ConfigFile()))
		fmt.Printf(
			"%s deleted config\n",
			style.Fg(color.Green)(icon.Get(icon.Success)),
		)
	},
}

func init() {
	configCmd.AddCommand(configResetCmd)

	configResetCmd.Flags().StringP("key", "k", "", "The key to restore")
	configResetCmd.Flags().BoolP("all", "a", false, "Restore every setting")
	configResetCmd.MarkFlagsMutuallyExclusive("key", "all")
	_ = configResetCmd.RegisterFlagCompletionFunc("key", completionConfigKeys)
}

var configResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Restore settings to their defaults",
	PreRun: func(cmd *cobra.Command, args []string) {
		if !cmd.Flags().Changed("key") && !cmd.Flags().Changed("all") {
			handleErr(errors.New("either --key or --all must be set"))
		}
	},
	Run: func(cmd *cobra.Command, args []string) {
		if lo.Must(cmd.Flags().GetBool("all")) {
			for key, field := range config.Default {
				viper.Set(key, field.Value)
			}
			writeConfig()
			fmt.Printf("%s reset all config values\n", style.Fg(color.Green)(icon.Get(icon.Success)))
			return
		}

		key := keyArg(cmd, nil)
		viper.Set(key, config.Default[key].Value)
		writeConfig()

		fmt.Printf(
			"%s reset %s to default value %s\n",
			style.Fg(color.Green)(icon.Get(icon.Success)),
			style.Fg(color.Accent)(key),
			style.Fg(color.Yellow)(fmt.Sprintf("%v", config.Default[key].Value)),
		)
	},
}
