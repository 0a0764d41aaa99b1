package main

import (
	"context"
	"os"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/tokyo-night-lod/tnl/internal/config"
	"github.com/tokyo-night-lod/tnl/internal/log"
)

var Version = "dev"

var rootCmd = &cobra.Command{
	Use:              "tnl",
	Short:            "Tokyo Night Lod theme generator",
	Long:             "Generate, validate and export the Tokyo Night Lod VS Code color themes",
	PersistentPreRun: setupLogging,
	SilenceUsage:     true,
	Version:          Version,
}

func setupLogging(cmd *cobra.Command, args []string) {
	verbose, _ := cmd.Flags().GetBool("verbose")
	log.SetVerbose(verbose)
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().String("config", "", "Config file (default ./tnl.yaml)")

	rootCmd.AddCommand(buildCmd, validateCmd, paletteCmd, terminalCmd, variantsCmd)
}

// loadConfig reads the config selected by --config and exits on failure.
func loadConfig(cmd *cobra.Command) *config.Config {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(afero.NewOsFs(), path)
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}
	if verbose, _ := cmd.Flags().GetBool("verbose"); !verbose {
		if err := log.SetLevel(cfg.LogLevel); err != nil {
			log.Warnf("Ignoring log_level %q: %v", cfg.LogLevel, err)
		}
	}
	return cfg
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}
