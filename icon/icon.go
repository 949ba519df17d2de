// Package icon renders status glyphs in the variant chosen by icons.variant.
//
// Icons can be displayed as emoji, nerd-font glyphs, plain ASCII, kaomoji,
// or Unicode squares depending on user preference.
package icon

import (
	"github.com/radiodl-cli/radiodl/color"
	"github.com/radiodl-cli/radiodl/key"
	"github.com/radiodl-cli/radiodl/style"
	"github.com/spf13/viper"
)

const (
	emoji   = "emoji"
	nerd    = "nerd"
	plain   = "plain"
	kaomoji = "kaomoji"
	squares = "squares"
)

// AvailableVariants returns the names accepted by icons.variant.
func AvailableVariants() []string {
	return []string{emoji, nerd, plain, kaomoji, squares}
}

// Icon identifies a glyph in the registry.
type Icon int

const (
	Fail Icon = iota
	Success
	Progress
	Info
	Warn
	Download
	Skip
	Lua
)

type iconDef struct {
	emoji   string
	nerd    string
	plain   string
	kaomoji string
	squares string
}

func (d *iconDef) Get() string {
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

var icons = map[Icon]*iconDef{
	Fail: {
		emoji:   "💀",
		nerd:    style.Fg(color.Red)(""),
		plain:   style.Fg(color.Red)("✗"),
		kaomoji: style.Fg(color.Red)("(×_×)"),
		squares: style.Fg(color.Red)("▇"),
	},
	Success: {
		emoji:   "🎉",
		nerd:    style.Fg(color.Green)(""),
		plain:   style.Fg(color.Green)("✓"),
		kaomoji: style.Fg(color.Green)("(ᵔ◡ᵔ)"),
		squares: style.Fg(color.Green)("▇"),
	},
	Progress: {
		emoji:   "⏳",
		nerd:    style.Fg(color.Blue)(""),
		plain:   style.Fg(color.Blue)("…"),
		kaomoji: style.Fg(color.Blue)("(・_・ヾ"),
		squares: style.Fg(color.Blue)("▇"),
	},
	Info: {
		emoji:   "📻",
		nerd:    style.Fg(color.Cyan)(""),
		plain:   style.Fg(color.Cyan)("i"),
		kaomoji: style.Fg(color.Cyan)("(o_o)"),
		squares: style.Fg(color.Cyan)("▇"),
	},
	Warn: {
		emoji:   "⚠️",
		nerd:    style.Fg(color.Yellow)(""),
		plain:   style.Fg(color.Yellow)("!"),
		kaomoji: style.Fg(color.Yellow)("(°ロ°)"),
		squares: style.Fg(color.Yellow)("▇"),
	},
	Download: {
		emoji:   "📥",
		nerd:    style.Fg(color.Purple)(""),
		plain:   style.Fg(color.Purple)("↓"),
		kaomoji: style.Fg(color.Purple)("(っ˘ڡ˘ς)"),
		squares: style.Fg(color.Purple)("▇"),
	},
	Skip: {
		emoji:   "⏭️",
		nerd:    style.Fg(color.White)(""),
		plain:   style.Faint("-"),
		kaomoji: style.Faint("(¬_¬)"),
		squares: style.Faint("▇"),
	},
	Lua: {
		emoji:   "🌙",
		nerd:    style.Fg(color.Blue)(""),
		plain:   style.Fg(color.Blue)("Lua"),
		kaomoji: style.Fg(color.Blue)("(◕‿◕)"),
		squares: style.Fg(color.Blue)("▇"),
	},
}

// Get renders i in the configured variant, or "" for an unknown variant.
func Get(i Icon) string {
	return icons[i].Get()
}
