// Package cli implements the cobra command tree for the Propound CLI.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/propoundhq/propound-cli/internal/adapters/driven/config/file"
	"github.com/propoundhq/propound-cli/internal/core/ports/driven"
	"github.com/propoundhq/propound-cli/internal/core/ports/driving"
	"github.com/propoundhq/propound-cli/internal/core/services"
	"github.com/propoundhq/propound-cli/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

var (
	verboseFlag bool
	tablesDir   string
)

// generationService is the driving port used by all commands.
// Tests swap it for a mock.
var generationService driving.GenerationService

var rootCmd = &cobra.Command{
	Use:   "propound",
	Short: "Generate discovery propounding manifests from case intake",
	Long: `Propound converts a validated legal-intake case submission into
generation manifests for three discovery document types: special
interrogatories (SROGs), requests for production (PODs), and requests
for admission. Manifests are handed to a template-rendering service;
propound itself renders no documents.`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verboseFlag)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "enable verbose logging to stderr")
	rootCmd.PersistentFlags().StringVar(&tablesDir, "tables", "",
		"directory containing taxonomy and profile tables (defaults to the embedded tables)")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// buildService constructs the generation service from the configured
// tables directory, unless a service was already injected (tests).
func buildService(tracer driven.Tracer) (driving.GenerationService, error) {
	if generationService != nil {
		return generationService, nil
	}
	return services.NewGenerationService(file.NewTableStore(tablesDir), tracer)
}
