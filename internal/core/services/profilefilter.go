package services

import "github.com/propoundhq/propound-cli/internal/core/domain"

// FilterProfile is Phase 4: it filters a FlagMap against a document
// profile, keeping only flags that are true in the map and present in
// the profile with a positive count.
//
// The filter only selects and sums; counts are static policy constants
// per flag per document type and are never computed here. Excluded flags
// are absent from the result, not zero. Output preserves profile
// declaration order, which is the packing order for Phase 5.
func FilterProfile(flags domain.FlagMap, profile *domain.DocumentProfile) domain.ProfileResult {
	result := domain.ProfileResult{
		DocType: profile.DocType,
		Cap:     profile.Cap,
	}
	for _, entry := range profile.Flags {
		if entry.Count <= 0 || !flags.True(entry.Flag) {
			continue
		}
		result.Flags = append(result.Flags, entry)
		result.TotalCount += entry.Count
	}
	return result
}
