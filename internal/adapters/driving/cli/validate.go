package cli

import (
	"errors"

	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate the taxonomy and profile tables",
	Long: `Loads the rule tables and cross-checks them: every profile flag must
exist in the flag universe, counts must be non-negative, and the
first-set-only bundle of each profile must fit under its cap. Surfaces
configuration defects before they become generation failures.`,
	Args: cobra.NoArgs,
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, _ []string) error {
	svc, err := buildService(nil)
	if err != nil {
		// Load-time defects are validation findings too.
		cmd.Printf("Tables failed to load: %v\n", err)
		return err
	}

	findings := svc.ValidateTables()
	if len(findings) == 0 {
		cmd.Println("Tables OK.")
		return nil
	}

	cmd.Printf("%d finding(s):\n", len(findings))
	for _, finding := range findings {
		cmd.Printf("  - %s\n", finding)
	}
	return errors.New("table validation failed")
}
