package palette

import (
	"fmt"

	"github.com/tokyo-night-lod/tnl/internal/hexcolor"
)

type ThemeType string

const (
	TypeDark     ThemeType = "dark"
	TypeLight    ThemeType = "light"
	TypeStorm    ThemeType = "storm"
	TypeMoon     ThemeType = "moon"
	TypeContrast ThemeType = "contrast"
	TypePastel   ThemeType = "pastel"
)

var ThemeTypes = []ThemeType{TypeDark, TypeLight, TypeStorm, TypeMoon, TypeContrast, TypePastel}

func (t ThemeType) IsLight() bool { return t == TypeLight }

// Base is the set of hand-authored root colors of a variant. Every other
// color is derived from it.
type Base struct {
	Bg            string
	BgDark        string
	BgHighlight   string
	Fg            string
	FgDark        string
	FgGutter      string
	Comment       string
	Dark5         string
	TerminalBlack string
	Blue0         string
	Blue          string
	Cyan          string
	Blue1         string
	Blue5         string
	Magenta       string
	Magenta2      string
	Purple        string
	Orange        string
	Yellow        string
	Green         string
	Green1        string
	Teal          string
	Red           string
	Red1          string
}

type colorRole int

const (
	roleSurface colorRole = iota
	roleText
	roleAccent
)

type baseField struct {
	name string
	role colorRole
	ptr  *string
}

func (b *Base) fields() []baseField {
	return []baseField{
		{"bg", roleSurface, &b.Bg},
		{"bg_dark", roleSurface, &b.BgDark},
		{"bg_highlight", roleSurface, &b.BgHighlight},
		{"fg", roleText, &b.Fg},
		{"fg_dark", roleText, &b.FgDark},
		{"fg_gutter", roleSurface, &b.FgGutter},
		{"comment", roleText, &b.Comment},
		{"dark5", roleText, &b.Dark5},
		{"terminal_black", roleSurface, &b.TerminalBlack},
		{"blue0", roleAccent, &b.Blue0},
		{"blue", roleAccent, &b.Blue},
		{"cyan", roleAccent, &b.Cyan},
		{"blue1", roleAccent, &b.Blue1},
		{"blue5", roleAccent, &b.Blue5},
		{"magenta", roleAccent, &b.Magenta},
		{"magenta2", roleAccent, &b.Magenta2},
		{"purple", roleAccent, &b.Purple},
		{"orange", roleAccent, &b.Orange},
		{"yellow", roleAccent, &b.Yellow},
		{"green", roleAccent, &b.Green},
		{"green1", roleAccent, &b.Green1},
		{"teal", roleAccent, &b.Teal},
		{"red", roleAccent, &b.Red},
		{"red1", roleAccent, &b.Red1},
	}
}

// Colors returns the base colors keyed by their snake_case names.
func (b Base) Colors() map[string]string {
	out := make(map[string]string, 24)
	for _, f := range b.fields() {
		out[f.name] = *f.ptr
	}
	return out
}

// Names lists base color names in declaration order.
func (b Base) Names() []string {
	fields := b.fields()
	names := make([]string, len(fields))
	for i, f := range fields {
		names[i] = f.name
	}
	return names
}

func (b Base) Validate() error {
	for _, f := range b.fields() {
		if !hexcolor.IsHex(*f.ptr) || len(*f.ptr) != 7 {
			return fmt.Errorf("base color %s = %q: %w", f.name, *f.ptr, hexcolor.ErrInvalidColorFormat)
		}
	}
	return nil
}

func nightBase() Base {
	return Base{
		Bg:            "#1a1b26",
		BgDark:        "#16161e",
		BgHighlight:   "#292e42",
		Fg:            "#c0caf5",
		FgDark:        "#a9b1d6",
		FgGutter:      "#3b4261",
		Comment:       "#565f89",
		Dark5:         "#737aa2",
		TerminalBlack: "#414868",
		Blue0:         "#3d59a1",
		Blue:          "#7aa2f7",
		Cyan:          "#7dcfff",
		Blue1:         "#2ac3de",
		Blue5:         "#89ddff",
		Magenta:       "#bb9af7",
		Magenta2:      "#ff007c",
		Purple:        "#9d7cd8",
		Orange:        "#ff9e64",
		Yellow:        "#e0af68",
		Green:         "#9ece6a",
		Green1:        "#73daca",
		Teal:          "#1abc9c",
		Red:           "#f7768e",
		Red1:          "#db4b4b",
	}
}

func stormBase() Base {
	b := nightBase()
	b.Bg = "#24283b"
	b.BgDark = "#1f2335"
	b.BgHighlight = "#292e42"
	return b
}

func moonBase() Base {
	return Base{
		Bg:            "#222436",
		BgDark:        "#1e2030",
		BgHighlight:   "#2f334d",
		Fg:            "#c8d3f5",
		FgDark:        "#828bb8",
		FgGutter:      "#3b4261",
		Comment:       "#636da6",
		Dark5:         "#737aa2",
		TerminalBlack: "#444a73",
		Blue0:         "#3e68d7",
		Blue:          "#82aaff",
		Cyan:          "#86e1fc",
		Blue1:         "#65bcff",
		Blue5:         "#89ddff",
		Magenta:       "#c099ff",
		Magenta2:      "#ff007c",
		Purple:        "#fca7ea",
		Orange:        "#ff966c",
		Yellow:        "#ffc777",
		Green:         "#c3e88d",
		Green1:        "#4fd6be",
		Teal:          "#4fd6be",
		Red:           "#ff757f",
		Red1:          "#c53b53",
	}
}

func lightBase() Base {
	return Base{
		Bg:            "#e1e2e7",
		BgDark:        "#d0d5e3",
		BgHighlight:   "#c4c8da",
		Fg:            "#3760bf",
		FgDark:        "#6172b0",
		FgGutter:      "#a8aecb",
		Comment:       "#848cb5",
		Dark5:         "#68709a",
		TerminalBlack: "#a1a6c5",
		Blue0:         "#7890dd",
		Blue:          "#2e7de9",
		Cyan:          "#007197",
		Blue1:         "#188092",
		Blue5:         "#006a83",
		Magenta:       "#9854f1",
		Magenta2:      "#d20065",
		Purple:        "#7847bd",
		Orange:        "#b15c00",
		Yellow:        "#8c6c3e",
		Green:         "#587539",
		Green1:        "#387068",
		Teal:          "#118c74",
		Red:           "#f52a65",
		Red1:          "#c64343",
	}
}

func contrastBase() Base {
	b := nightBase()
	b.Bg = "#0f1017"
	b.BgDark = "#0a0a10"
	b.BgHighlight = "#1f2233"
	b.Fg = "#dde3ff"
	b.FgDark = "#c0c8ee"
	b.FgGutter = "#4c5478"
	b.Comment = "#7a84b8"
	b.Dark5 = "#8d94bb"
	b.TerminalBlack = "#565f89"
	b.Blue0 = "#4467c4"
	return b
}
