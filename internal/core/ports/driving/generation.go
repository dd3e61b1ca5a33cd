package driving

import (
	"context"

	"github.com/propoundhq/propound-cli/internal/core/domain"
)

// ProfileSummary describes one loaded document profile for display.
type ProfileSummary struct {
	// DocType is the document type.
	DocType domain.DocType

	// Cap is the per-set question cap.
	Cap int

	// FlagCount is the number of flag entries in the profile.
	FlagCount int

	// QuestionPool is the sum of all counts (the maximum a case could draw).
	QuestionPool int

	// FirstSetOnly lists the flags pinned to Set 1.
	FirstSetOnly []domain.FlagName
}

// GenerationService runs the normalisation-to-manifest pipeline.
type GenerationService interface {
	// Generate runs all five phases for one intake submission and
	// returns the case manifest. A malformed intake fails the whole
	// record; per-pair failures are scoped to their (dataset, docType)
	// pair and reported in the manifest.
	Generate(ctx context.Context, raw domain.RawIntake) (*domain.CaseManifest, error)

	// ValidateTables cross-checks the loaded taxonomy and profiles and
	// returns human-readable findings. An empty slice means the tables
	// are internally consistent.
	ValidateTables() []string

	// ProfileSummaries describes the loaded document profiles in
	// generation order.
	ProfileSummaries() []ProfileSummary
}
