package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tokyo-night-lod/tnl/internal/palette"
)

var variantsCmd = &cobra.Command{
	Use:   "variants",
	Short: "List theme variants",
	Args:  cobra.NoArgs,
	Run:   runVariants,
}

func runVariants(cmd *cobra.Command, args []string) {
	for _, v := range append(palette.Variants(), palette.VariantCustom) {
		fmt.Printf("%-16s %-10s %s %s\n",
			v,
			v.Type(),
			titleStyle.Render(v.DisplayName()),
			mutedStyle.Render(v.Slug()+"-color-theme.json"),
		)
	}
}
