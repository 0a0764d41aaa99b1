package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tokyo-night-lod/tnl/internal/export"
	"github.com/tokyo-night-lod/tnl/internal/log"
	"github.com/tokyo-night-lod/tnl/internal/palette"
)

var terminalCmd = &cobra.Command{
	Use:   "terminal",
	Short: "Export terminal colors",
	Long:  "Print the ANSI colors of a variant in a terminal emulator's config format",
	Args:  cobra.NoArgs,
	Run:   runTerminal,
}

func init() {
	formats := make([]string, 0, len(export.Formats()))
	for _, f := range export.Formats() {
		formats = append(formats, string(f))
	}
	terminalCmd.Flags().String("format", string(export.FormatKitty), "Output format: "+strings.Join(formats, ", "))
	terminalCmd.Flags().String("variant", string(palette.VariantNight), "Variant to export")
}

func runTerminal(cmd *cobra.Command, args []string) {
	cfg := loadConfig(cmd)

	formatName, _ := cmd.Flags().GetString("format")
	variantName, _ := cmd.Flags().GetString("variant")

	format, err := export.ParseFormat(formatName)
	if err != nil {
		log.Fatalf("Invalid format: %v", err)
	}
	v, err := palette.ParseVariant(variantName)
	if err != nil {
		log.Fatalf("Invalid variant: %v", err)
	}
	p, err := palette.Adapt(v, cfg.PaletteOptions(v)...)
	if err != nil {
		log.Fatalf("Error adapting palette: %v", err)
	}

	out, err := export.Render(format, p)
	if err != nil {
		log.Fatalf("Error exporting terminal colors: %v", err)
	}
	fmt.Print(out)
}
