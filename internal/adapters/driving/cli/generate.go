package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	audit "github.com/propoundhq/propound-cli/internal/adapters/driven/audit/file"
	"github.com/propoundhq/propound-cli/internal/adapters/driven/storage/sqlite"
	"github.com/propoundhq/propound-cli/internal/core/domain"
	"github.com/propoundhq/propound-cli/internal/core/ports/driven"
)

var (
	generateJSON     bool
	generateAuditDir string
	generateAuditDB  string
)

var generateCmd = &cobra.Command{
	Use:   "generate [intake.json]",
	Short: "Generate discovery manifests for an intake submission",
	Long: `Runs the five-phase pipeline for one intake submission: normalisation,
dataset construction, flag processing, profile filtering, and set
splitting. One manifest is produced per (dataset, document type) pair;
failed pairs are reported without discarding successful ones.`,
	Args: cobra.ExactArgs(1),
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().BoolVar(&generateJSON, "json", false, "output the manifest as JSON")
	generateCmd.Flags().StringVar(&generateAuditDir, "audit-dir", "", "write numbered per-phase JSON dumps into this directory")
	generateCmd.Flags().StringVar(&generateAuditDB, "audit-db", "", "persist run and phase records into this SQLite database")
	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("reading intake file: %w", err)
	}

	var raw domain.RawIntake
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("parsing intake file: %w", err)
	}

	ctx := context.Background()

	tracer, auditStore, err := buildTracer()
	if err != nil {
		return err
	}
	if auditStore != nil {
		defer auditStore.Close()
	}

	svc, err := buildService(tracer)
	if err != nil {
		return err
	}

	manifest, err := svc.Generate(ctx, raw)
	if err != nil {
		return fmt.Errorf("generation failed: %w", err)
	}
	if auditStore != nil {
		if err := auditStore.BeginRun(ctx, manifest.RunID, manifest.CaseName); err != nil {
			cmd.PrintErrf("warning: recording run: %v\n", err)
		}
	}

	if generateJSON {
		return outputManifestJSON(cmd, manifest)
	}
	return outputManifestSummary(cmd, manifest)
}

// buildTracer assembles the optional audit side-channel from flags.
func buildTracer() (driven.Tracer, driven.AuditStore, error) {
	var tracers []driven.Tracer
	var store driven.AuditStore

	if generateAuditDir != "" {
		t, err := audit.NewTracer(generateAuditDir)
		if err != nil {
			return nil, nil, err
		}
		tracers = append(tracers, t)
	}
	if generateAuditDB != "" {
		s, err := sqlite.NewStore(generateAuditDB)
		if err != nil {
			return nil, nil, err
		}
		store = s
		tracers = append(tracers, s)
	}

	switch len(tracers) {
	case 0:
		return nil, store, nil
	case 1:
		return tracers[0], store, nil
	default:
		return multiTracer(tracers), store, nil
	}
}

// multiTracer fans one trace out to several sinks.
type multiTracer []driven.Tracer

func (m multiTracer) TracePhase(ctx context.Context, trace driven.PhaseTrace) error {
	for _, t := range m {
		if err := t.TracePhase(ctx, trace); err != nil {
			return err
		}
	}
	return nil
}

func outputManifestJSON(cmd *cobra.Command, manifest *domain.CaseManifest) error {
	data, err := json.MarshalIndent(manifest, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal manifest: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

func outputManifestSummary(cmd *cobra.Command, manifest *domain.CaseManifest) error {
	cmd.Printf("Case: %s\n", manifest.CaseName)
	cmd.Printf("Datasets: %d\n", manifest.DatasetCount)
	cmd.Println()

	for _, pair := range manifest.Pairs {
		cmd.Printf("  [%d] %s - %s vs %s (%d questions, %d set(s))\n",
			pair.DatasetIndex, pair.DocType, pair.PlaintiffName, pair.DefendantName,
			pair.TotalCount, len(pair.Sets))
		for _, set := range pair.Sets {
			cmd.Printf("      Set %d of %d: %d questions - %s\n",
				set.SetIndex, set.TotalSets, set.TotalCount, set.Filename)
		}
	}

	if len(manifest.Failures) > 0 {
		cmd.Println()
		cmd.Println("Failed pairs:")
		for _, failure := range manifest.Failures {
			cmd.Printf("  [%d] %s: %s\n", failure.DatasetIndex, failure.DocType, failure.Reason)
		}
	}
	if len(manifest.Warnings) > 0 {
		cmd.Println()
		cmd.Printf("Warnings: %d (run with --verbose for details)\n", len(manifest.Warnings))
	}
	return nil
}
