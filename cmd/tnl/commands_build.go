package main

import (
	"github.com/spf13/cobra"

	"github.com/tokyo-night-lod/tnl/internal/log"
	"github.com/tokyo-night-lod/tnl/internal/palette"
	"github.com/tokyo-night-lod/tnl/internal/theme"
	"github.com/tokyo-night-lod/tnl/internal/validation"
	"github.com/tokyo-night-lod/tnl/internal/writer"
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build theme files",
	Long:  "Build the selected variants concurrently, validate them and write <output>/<name>-color-theme.json",
	Args:  cobra.NoArgs,
	Run:   runBuild,
}

func init() {
	buildCmd.Flags().StringSlice("variant", nil, "Variant to build (repeatable, default from config)")
	buildCmd.Flags().StringP("output", "o", "", "Output directory (default from config)")
	buildCmd.Flags().Bool("fix", false, "Repair deprecated keys and disallowed values before writing")
	buildCmd.Flags().Bool("strict", false, "Treat validation warnings as failures")
	buildCmd.Flags().Bool("check-overlap", false, "Report color keys written by more than one section")
	buildCmd.Flags().Bool("show-info", false, "Include informational contrast notes")
}

func runBuild(cmd *cobra.Command, args []string) {
	cfg := loadConfig(cmd)

	names, _ := cmd.Flags().GetStringSlice("variant")
	output, _ := cmd.Flags().GetString("output")
	fix, _ := cmd.Flags().GetBool("fix")
	strict, _ := cmd.Flags().GetBool("strict")
	checkOverlap, _ := cmd.Flags().GetBool("check-overlap")
	showInfo, _ := cmd.Flags().GetBool("show-info")

	variants := cfg.SelectedVariants()
	if len(names) > 0 {
		variants = variants[:0]
		for _, name := range names {
			v, err := palette.ParseVariant(name)
			if err != nil {
				log.Fatalf("Invalid variant: %v", err)
			}
			variants = append(variants, v)
		}
	}
	if output == "" {
		output = cfg.Output
	}
	fix = fix || cfg.Validation.Fix
	strict = strict || cfg.Validation.Strict
	skipInfo := cfg.Validation.SkipInfo && !showInfo

	log.Debugf("Building %d variants into %s", len(variants), output)
	results, err := theme.BuildAll(cmd.Context(), variants, theme.BuildOptions{
		CheckOverlap: checkOverlap,
		Palette:      cfg.PaletteOptions,
	})
	if err != nil {
		log.Fatalf("Error building themes: %v", err)
	}

	w := writer.New(output)
	failed := 0
	for _, r := range results {
		for _, o := range r.Overlaps {
			log.Warnf("%s: %s set by section %d and overridden by section %d", r.Context.Variant, o.Key, o.FromIndex, o.ToIndex)
		}

		doc := r.Document
		if fix {
			var fixes []validation.Fix
			doc, fixes = validation.FixProperties(doc)
			for _, f := range fixes {
				log.Infof("%s: %s", r.Context.Variant, f)
			}
		}

		res := validation.Validate(doc, validation.QualityOptions{SkipInfo: skipInfo})
		printReport(r.Context.DisplayName, res)
		if !res.Passed || (strict && res.Count(validation.SeverityWarning) > 0) {
			failed++
			continue
		}

		if _, err := w.Write(r.Slug(), doc); err != nil {
			log.Fatalf("Error writing theme: %v", err)
		}
	}

	if failed > 0 {
		log.Fatalf("%d of %d themes failed validation", failed, len(results))
	}
}
