// Package icon renders UI symbols in the variant picked by icons.variant.
package icon

import (
	"github.com/movieflix-cli/movieflix/key"
	"github.com/spf13/viper"
)

const (
	emoji   = "emoji"
	nerd    = "nerd"
	plain   = "plain"
	kaomoji = "kaomoji"
	squares = "squares"
)

// AvailableVariants lists the accepted icons.variant values.
func AvailableVariants() []string {
	return []string{emoji, nerd, plain, kaomoji, squares}
}

type Icon int

const (
	Play Icon = iota
	Pause
	Back
	Forward
	Rewind
	Time
	Film
	Search
	TV
	Fail
	Success
	Cross
	Check
	Question
	Poster
)

type iconDef struct {
	emoji   string
	nerd    string
	plain   string
	kaomoji string
	squares string
}

func (d iconDef) get() string {
	switch viper.GetString(key.IconsVariant) {
	case emoji:
		return d.emoji
	case nerd:
		return d.nerd
	case plain:
		return d.plain
	case kaomoji:
		return d.kaomoji
	case squares:
		return d.squares
	default:
		return ""
	}
}

var icons = map[Icon]iconDef{
	Play:     {emoji: "▶️", nerd: "\uf04b", plain: ">", kaomoji: "(>ᴗ<)", squares: "▶"},
	Pause:    {emoji: "⏸️", nerd: "\uf04c", plain: "||", kaomoji: "(－_－)", squares: "⏸"},
	Back:     {emoji: "⬅️", nerd: "\uf060", plain: "<-", kaomoji: "(＜_＜)", squares: "◀"},
	Forward:  {emoji: "⏩", nerd: "\uf04e", plain: ">>", kaomoji: "(＞_＞)", squares: "⏵⏵"},
	Rewind:   {emoji: "⏪", nerd: "\uf04a", plain: "<<", kaomoji: "(＜_＜)", squares: "⏴⏴"},
	Time:     {emoji: "⏱️", nerd: "\uf017", plain: "@", kaomoji: "(・_・)", squares: "◷"},
	Film:     {emoji: "🎬", nerd: "\uf008", plain: "#", kaomoji: "(☆▽☆)", squares: "▣"},
	Search:   {emoji: "🔍", nerd: "\uf002", plain: "?", kaomoji: "(°_°)", squares: "◎"},
	TV:       {emoji: "📺", nerd: "\uf26c", plain: "[tv]", kaomoji: "(⌐■_■)", squares: "▭"},
	Fail:     {emoji: "💀", nerd: "\uf00d", plain: "X", kaomoji: "(×_×)", squares: "▨"},
	Success:  {emoji: "🎉", nerd: "\uf00c", plain: "✓", kaomoji: "(ᵔᴥᵔ)", squares: "▩"},
	Cross:    {emoji: "❌", nerd: "\uf057", plain: "x", kaomoji: "(>_<)", squares: "▪"},
	Check:    {emoji: "✅", nerd: "\uf058", plain: "v", kaomoji: "(^_^)", squares: "▫"},
	Question: {emoji: "❓", nerd: "\uf128", plain: "?", kaomoji: "(・・?)", squares: "◇"},
	Poster:   {emoji: "🖼️", nerd: "\uf03e", plain: "[img]", kaomoji: "(◕‿◕)", squares: "▤"},
}

// Get renders i in the configured variant, or "" for an unknown variant.
func Get(i Icon) string {
	return icons[i].get()
}
