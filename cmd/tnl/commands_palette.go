package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tokyo-night-lod/tnl/internal/log"
	"github.com/tokyo-night-lod/tnl/internal/palette"
)

var paletteCmd = &cobra.Command{
	Use:   "palette",
	Short: "Show the assembled palette of a variant",
	Long:  "Print the palette groups of a variant as color swatches, or every generated token with --tokens",
	Args:  cobra.NoArgs,
	Run:   runPalette,
}

func init() {
	paletteCmd.Flags().String("variant", string(palette.VariantNight), "Variant to show")
	paletteCmd.Flags().Bool("tokens", false, "List every generated token")
}

type swatchRow struct {
	label string
	color string
}

func paletteGroups(p *palette.Palette) []struct {
	name string
	rows []swatchRow
} {
	var terminal []swatchRow
	for i, c := range p.Terminal {
		terminal = append(terminal, swatchRow{fmt.Sprintf("color%d", i), c})
	}
	var brackets []swatchRow
	for i, c := range p.Brackets.Colors {
		brackets = append(brackets, swatchRow{fmt.Sprintf("bracket%d", i+1), c})
	}

	return []struct {
		name string
		rows []swatchRow
	}{
		{"Backgrounds", []swatchRow{
			{"base", p.Bg.Base}, {"dark", p.Bg.Dark}, {"highlight", p.Bg.Highlight},
			{"sunken", p.Bg.Sunken}, {"raised", p.Bg.Raised}, {"float", p.Bg.Float},
		}},
		{"Text", []swatchRow{
			{"primary", p.Text.Primary}, {"secondary", p.Text.Secondary}, {"muted", p.Text.Muted},
			{"subtle", p.Text.Subtle}, {"faint", p.Text.Faint}, {"gutter", p.Text.Gutter},
		}},
		{"Accents", []swatchRow{
			{"primary", p.Accent.Primary}, {"secondary", p.Accent.Secondary}, {"tertiary", p.Accent.Tertiary},
			{"link", p.Accent.Link}, {"button", p.Accent.Button}, {"badge", p.Accent.Badge},
		}},
		{"Status", []swatchRow{
			{"error", p.Status.Error}, {"warning", p.Status.Warning}, {"info", p.Status.Info},
			{"hint", p.Status.Hint}, {"success", p.Status.Success},
		}},
		{"Git", []swatchRow{
			{"added", p.Git.Added}, {"modified", p.Git.Modified}, {"deleted", p.Git.Deleted},
			{"untracked", p.Git.Untracked}, {"ignored", p.Git.Ignored}, {"conflict", p.Git.Conflict},
		}},
		{"Syntax", []swatchRow{
			{"keyword", p.Syntax.Keyword}, {"function", p.Syntax.Function}, {"string", p.Syntax.String},
			{"number", p.Syntax.Number}, {"type", p.Syntax.Type}, {"variable", p.Syntax.Variable},
			{"property", p.Syntax.Property}, {"comment", p.Syntax.Comment},
		}},
		{"Brackets", brackets},
		{"Terminal", terminal},
	}
}

func runPalette(cmd *cobra.Command, args []string) {
	cfg := loadConfig(cmd)

	name, _ := cmd.Flags().GetString("variant")
	showTokens, _ := cmd.Flags().GetBool("tokens")

	v, err := palette.ParseVariant(name)
	if err != nil {
		log.Fatalf("Invalid variant: %v", err)
	}
	p, err := palette.Adapt(v, cfg.PaletteOptions(v)...)
	if err != nil {
		log.Fatalf("Error adapting palette: %v", err)
	}

	fmt.Printf("%s %s\n\n", titleStyle.Render(p.Name), mutedStyle.Render(string(p.Type)))

	if showTokens {
		for _, n := range p.Tokens.Names() {
			c, _ := p.Tokens.Get(n)
			fmt.Printf("%s %-32s %s\n", swatch(c, p.Bg.Base), n, mutedStyle.Render(c))
		}
		return
	}

	for _, g := range paletteGroups(p) {
		fmt.Println(titleStyle.Render(g.name))
		for _, r := range g.rows {
			fmt.Printf("  %s %-10s %s\n", swatch(r.color, p.Bg.Base), r.label, mutedStyle.Render(r.color))
		}
		fmt.Println()
	}
}
