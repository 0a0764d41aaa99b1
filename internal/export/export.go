// Package export renders a palette's terminal colors in the config formats
// of common terminal emulators.
package export

import (
	"errors"
	"fmt"
	"strings"

	"github.com/tokyo-night-lod/tnl/internal/hexcolor"
	"github.com/tokyo-night-lod/tnl/internal/palette"
)

var ErrUnknownFormat = errors.New("unknown terminal format")

type Format string

const (
	FormatKitty     Format = "kitty"
	FormatAlacritty Format = "alacritty"
	FormatFoot      Format = "foot"
	FormatGhostty   Format = "ghostty"
)

func Formats() []Format {
	return []Format{FormatKitty, FormatAlacritty, FormatFoot, FormatGhostty}
}

func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Formats() {
		if f == known {
			return f, nil
		}
	}
	return "", fmt.Errorf("%q: %w", s, ErrUnknownFormat)
}

// Scheme is the opaque terminal color set of a palette.
type Scheme struct {
	Name                string
	Foreground          string
	Background          string
	Cursor              string
	CursorText          string
	SelectionForeground string
	SelectionBackground string
	ANSI                [16]string
}

var ansiNames = [8]string{"black", "red", "green", "yellow", "blue", "magenta", "cyan", "white"}

// FromPalette extracts the terminal scheme. Terminals have no alpha, so the
// selection color is flattened over the terminal background.
func FromPalette(p *palette.Palette) (Scheme, error) {
	bg := p.Background(palette.ComponentTerminal)
	sel, err := hexcolor.Composite(p.Selection.Background, bg)
	if err != nil {
		return Scheme{}, fmt.Errorf("selection: %w", err)
	}
	return Scheme{
		Name:                p.Name,
		Foreground:          p.Text.Secondary,
		Background:          bg,
		Cursor:              p.Text.Primary,
		CursorText:          bg,
		SelectionForeground: p.Text.Primary,
		SelectionBackground: sel,
		ANSI:                p.Terminal,
	}, nil
}

var renderers = map[Format]func(Scheme) string{
	FormatKitty:     Kitty,
	FormatAlacritty: Alacritty,
	FormatFoot:      Foot,
	FormatGhostty:   Ghostty,
}

// Render formats the scheme of p.
func Render(f Format, p *palette.Palette) (string, error) {
	render, ok := renderers[f]
	if !ok {
		return "", fmt.Errorf("%q: %w", f, ErrUnknownFormat)
	}
	s, err := FromPalette(p)
	if err != nil {
		return "", err
	}
	return render(s), nil
}

func Kitty(s Scheme) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n", s.Name)
	fmt.Fprintf(&b, "foreground   %s\n", s.Foreground)
	fmt.Fprintf(&b, "background   %s\n", s.Background)
	fmt.Fprintf(&b, "cursor   %s\n", s.Cursor)
	fmt.Fprintf(&b, "cursor_text_color   %s\n", s.CursorText)
	fmt.Fprintf(&b, "selection_foreground   %s\n", s.SelectionForeground)
	fmt.Fprintf(&b, "selection_background   %s\n", s.SelectionBackground)
	for i, c := range s.ANSI {
		fmt.Fprintf(&b, "color%d   %s\n", i, c)
	}
	return b.String()
}

func Alacritty(s Scheme) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n", s.Name)
	b.WriteString("[colors.primary]\n")
	fmt.Fprintf(&b, "foreground = '%s'\n", s.Foreground)
	fmt.Fprintf(&b, "background = '%s'\n", s.Background)
	b.WriteString("\n[colors.cursor]\n")
	fmt.Fprintf(&b, "text   = '%s'\n", s.CursorText)
	fmt.Fprintf(&b, "cursor = '%s'\n", s.Cursor)
	b.WriteString("\n[colors.selection]\n")
	fmt.Fprintf(&b, "text       = '%s'\n", s.SelectionForeground)
	fmt.Fprintf(&b, "background = '%s'\n", s.SelectionBackground)
	for _, group := range []struct {
		name   string
		offset int
	}{{"normal", 0}, {"bright", 8}} {
		fmt.Fprintf(&b, "\n[colors.%s]\n", group.name)
		for i, name := range ansiNames {
			fmt.Fprintf(&b, "%-7s = '%s'\n", name, s.ANSI[group.offset+i])
		}
	}
	return b.String()
}

// Foot writes colors without the leading '#'.
func Foot(s Scheme) string {
	bare := func(c string) string { return strings.TrimPrefix(c, "#") }
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n", s.Name)
	b.WriteString("[colors]\n")
	fmt.Fprintf(&b, "foreground=%s\n", bare(s.Foreground))
	fmt.Fprintf(&b, "background=%s\n", bare(s.Background))
	fmt.Fprintf(&b, "selection-foreground=%s\n", bare(s.SelectionForeground))
	fmt.Fprintf(&b, "selection-background=%s\n", bare(s.SelectionBackground))
	for i := 0; i < 8; i++ {
		fmt.Fprintf(&b, "regular%d=%s\n", i, bare(s.ANSI[i]))
	}
	for i := 0; i < 8; i++ {
		fmt.Fprintf(&b, "bright%d=%s\n", i, bare(s.ANSI[i+8]))
	}
	fmt.Fprintf(&b, "\n[cursor]\ncolor=%s %s\n", bare(s.CursorText), bare(s.Cursor))
	return b.String()
}

func Ghostty(s Scheme) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n", s.Name)
	fmt.Fprintf(&b, "background = %s\n", s.Background)
	fmt.Fprintf(&b, "foreground = %s\n", s.Foreground)
	fmt.Fprintf(&b, "cursor-color = %s\n", s.Cursor)
	fmt.Fprintf(&b, "cursor-text = %s\n", s.CursorText)
	fmt.Fprintf(&b, "selection-background = %s\n", s.SelectionBackground)
	fmt.Fprintf(&b, "selection-foreground = %s\n", s.SelectionForeground)
	for i, c := range s.ANSI {
		fmt.Fprintf(&b, "palette = %d=%s\n", i, c)
	}
	return b.String()
}
