package cli

import (
	"github.com/spf13/cobra"
)

var profilesCmd = &cobra.Command{
	Use:   "profiles",
	Short: "List the loaded document profiles",
	Args:  cobra.NoArgs,
	RunE:  runProfiles,
}

func init() {
	rootCmd.AddCommand(profilesCmd)
}

func runProfiles(cmd *cobra.Command, _ []string) error {
	svc, err := buildService(nil)
	if err != nil {
		return err
	}

	for _, summary := range svc.ProfileSummaries() {
		cmd.Printf("%s: %d flags, %d question pool, cap %d\n",
			summary.DocType, summary.FlagCount, summary.QuestionPool, summary.Cap)
		if len(summary.FirstSetOnly) > 0 {
			cmd.Printf("  first-set-only:")
			for _, flag := range summary.FirstSetOnly {
				cmd.Printf(" %s", flag)
			}
			cmd.Println()
		}
	}
	return nil
}
