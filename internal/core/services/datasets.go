package services

import "github.com/propoundhq/propound-cli/internal/core/domain"

// BuildDatasets is Phase 2: it cross-products Head-of-Household
// plaintiffs with defendants into independent datasets.
//
// Ordering is plaintiff-major, defendant-minor, following submission
// order; indices are 1-based. The ordering must be stable and
// deterministic because filenames and set numbering depend on it.
// Each dataset receives a deep copy of its plaintiff's selections.
func BuildDatasets(record *domain.IntakeRecord) []domain.Dataset {
	heads := record.HeadsOfHousehold()

	datasets := make([]domain.Dataset, 0, len(heads)*len(record.Defendants))
	index := 0
	for _, plaintiff := range heads {
		for _, defendant := range record.Defendants {
			index++
			datasets = append(datasets, domain.Dataset{
				Index:      index,
				Plaintiff:  plaintiff,
				Defendant:  defendant,
				Selections: plaintiff.Selections.Clone(),
			})
		}
	}
	return datasets
}
