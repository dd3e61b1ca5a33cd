package cli

import (
	"bytes"
	"context"
	"testing"

	"github.com/propoundhq/propound-cli/internal/core/domain"
	"github.com/propoundhq/propound-cli/internal/core/ports/driving"
)

// mockGenerationService is swapped in for the real service so command
// tests exercise wiring and output, not the pipeline.
type mockGenerationService struct {
	manifest  *domain.CaseManifest
	err       error
	findings  []string
	summaries []driving.ProfileSummary

	lastRaw domain.RawIntake
}

func (m *mockGenerationService) Generate(_ context.Context, raw domain.RawIntake) (*domain.CaseManifest, error) {
	m.lastRaw = raw
	return m.manifest, m.err
}

func (m *mockGenerationService) ValidateTables() []string {
	return m.findings
}

func (m *mockGenerationService) ProfileSummaries() []driving.ProfileSummary {
	return m.summaries
}

// withMockService injects a mock for the duration of one test.
func withMockService(t *testing.T, svc driving.GenerationService) {
	t.Helper()
	generationService = svc
	t.Cleanup(func() { generationService = nil })
}

// executeCommand runs the root command with args, capturing output.
func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return buf.String(), err
}
