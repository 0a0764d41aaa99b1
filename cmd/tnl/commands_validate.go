package main

import (
	"github.com/spf13/cobra"

	"github.com/tokyo-night-lod/tnl/internal/log"
	"github.com/tokyo-night-lod/tnl/internal/validation"
	"github.com/tokyo-night-lod/tnl/internal/writer"
)

var validateCmd = &cobra.Command{
	Use:   "validate <theme.json>...",
	Short: "Validate theme files",
	Long:  "Check existing theme files for unknown or deprecated keys, invalid colors and low contrast",
	Args:  cobra.MinimumNArgs(1),
	Run:   runValidate,
}

func init() {
	validateCmd.Flags().Bool("fix", false, "Apply automatic repairs before validating")
	validateCmd.Flags().Bool("write", false, "Write repaired files back (requires --fix)")
	validateCmd.Flags().Bool("strict", false, "Treat validation warnings as failures")
	validateCmd.Flags().Bool("show-info", false, "Include informational contrast notes")
}

func runValidate(cmd *cobra.Command, args []string) {
	cfg := loadConfig(cmd)

	fix, _ := cmd.Flags().GetBool("fix")
	write, _ := cmd.Flags().GetBool("write")
	strict, _ := cmd.Flags().GetBool("strict")
	showInfo, _ := cmd.Flags().GetBool("show-info")

	if write && !fix {
		log.Fatal("--write requires --fix")
	}
	strict = strict || cfg.Validation.Strict
	opts := validation.QualityOptions{SkipInfo: cfg.Validation.SkipInfo && !showInfo}

	w := writer.New("")
	failed := 0
	for _, path := range args {
		doc, err := w.Read(path)
		if err != nil {
			log.Errorf("Error reading theme: %v", err)
			failed++
			continue
		}

		if fix {
			fixed, fixes := validation.FixProperties(doc)
			for _, f := range fixes {
				log.Infof("%s: %s", path, f)
			}
			if write && len(fixes) > 0 {
				if err := w.WriteFile(path, fixed); err != nil {
					log.Fatalf("Error writing theme: %v", err)
				}
			}
			doc = fixed
		}

		res := validation.Validate(doc, opts)
		printReport(path, res)
		if !res.Passed || (strict && res.Count(validation.SeverityWarning) > 0) {
			failed++
		}
	}

	if failed > 0 {
		log.Fatalf("%d of %d files failed validation", failed, len(args))
	}
}
