package config

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"text/template"

	"github.com/movieflix-cli/movieflix/color"
	"github.com/movieflix-cli/movieflix/constant"
	"github.com/movieflix-cli/movieflix/key"
	"github.com/movieflix-cli/movieflix/style"
	"github.com/samber/lo"
	"github.com/spf13/viper"
)

// Field is a registered setting and its default.
type Field struct {
	Key         string
	Value       any
	Description string
}

// Pretty renders the field for `config info`.
func (f *Field) Pretty() string {
	var b strings.Builder
	lo.Must0(prettyTemplate.Execute(&b, f))
	return b.String()
}

// Env is the environment variable that overrides the field, e.g. MOVIEFLIX_PLAYER_ENGINE.
func (f *Field) Env() string {
	return strings.ToUpper(constant.App + "_" + EnvKeyReplacer.Replace(f.Key))
}

func (f *Field) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Key         string `json:"key"`
		Value       any    `json:"value"`
		Default     any    `json:"default"`
		Description string `json:"description"`
		Type        string `json:"type"`
		Env         string `json:"env"`
	}{
		Key:         f.Key,
		Value:       viper.Get(f.Key),
		Default:     f.Value,
		Description: f.Description,
		Type:        f.typeName(),
		Env:         f.Env(),
	})
}

func (f *Field) typeName() string {
	switch f.Value.(type) {
	case string:
		return "string"
	case int:
		return "int"
	case bool:
		return "bool"
	case []string:
		return "[]string"
	default:
		return "unknown"
	}
}

// Default holds every registered field by key.
var Default = make(map[string]Field)

// EnvExposed lists the keys bound to environment variables.
var EnvExposed []string

func register(k string, v any, desc string) {
	if _, exists := Default[k]; exists {
		panic("duplicate config key: " + k)
	}
	Default[k] = Field{Key: k, Value: v, Description: desc}
	EnvExposed = append(EnvExposed, k)
}

func init() {
	register(key.PlayerEngine, "mpv", "Playback engine.\nAvailable options are: mpv, simulated")
	register(key.PlayerStatusIntervalMs, 200, "Interval between playback status updates, in milliseconds")
	register(key.PlayerSimulatedLoadMs, 800, "How long the simulated engine takes to load media, in milliseconds")
	register(key.TVMode, false, "TV mode: sectioned home rows and the engine's native transport controls")
	register(key.HomeFeaturedCount, 6, "Number of movies in the featured section")
	register(key.DetailSimilarLimit, 6, "Maximum number of suggestions under \"You May Also Like\"")
	register(key.SearchQuerySuggestions, false, "Remember search queries and suggest them while typing. Only the query text is stored")
	register(key.IconsVariant, "plain", "Icons variant.\nAvailable options are: emoji, kaomoji, plain, squares, nerd (nerd-font required)")
	register(key.LogsWrite, false, "Write logs")
	register(key.LogsLevel, "info", "Available options are: (from less to most verbose)\npanic, fatal, error, warn, info, debug, trace")
	register(key.LogsJson, false, "Use json format for logs")
	register(key.CliColored, true, "Enable colored CLI output")

	if len(Default) != key.DefinedFieldsCount {
		panic(fmt.Sprintf("registered %d config fields, expected %d", len(Default), key.DefinedFieldsCount))
	}
}

var prettyTemplate = lo.Must(template.New("pretty").Funcs(template.FuncMap{
	"faint":    style.Faint,
	"purple":   style.Fg(color.Purple),
	"blue":     style.Fg(color.Blue),
	"value":    func(k string) any { return viper.Get(k) },
	"typename": func(v any) string { return reflect.TypeOf(v).String() },
	"hl": func(v any) string {
		switch value := v.(type) {
		case bool:
			b := strconv.FormatBool(value)
			if value {
				return style.Fg(color.Green)(b)
			}
			return style.Fg(color.Red)(b)
		case string:
			return style.Fg(color.Yellow)(value)
		default:
			return fmt.Sprint(value)
		}
	},
}).Parse(`{{ faint .Description }}
{{ blue "Key:" }}     {{ purple .Key }}
{{ blue "Env:" }}     {{ .Env }}
{{ blue "Value:" }}   {{ hl (value .Key) }}
{{ blue "Default:" }} {{ hl (.Value) }}
{{ blue "Type:" }}    {{ typename .Value }}`))
