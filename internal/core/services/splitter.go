package services

import (
	"fmt"

	"github.com/propoundhq/propound-cli/internal/core/domain"
)

// SplitIntoSets is Phase 5: it packs a profile result into capped,
// ordered document sets.
//
// First-set-only flags seed Set 1; by definition they can never move to
// a later set, so a first-set bundle that alone exceeds the cap is a
// fatal profile defect. Regular flags are packed greedily in profile
// declaration order, never map iteration order, opening a new set when
// the next flag would overflow the current one. A flag's count is never
// split across sets, so a single regular flag above the cap is equally
// fatal. Both cases return an error wrapping
// domain.ErrSetCapacityExceeded.
//
// The resulting set count can undercut the naive ceil(total/cap)
// estimate when bundling is efficient; that is expected emergent
// behaviour of the packing, not a defect.
func SplitIntoSets(result domain.ProfileResult, plaintiff domain.Plaintiff, defendant domain.Defendant) ([]domain.DocumentSet, error) {
	capacity := result.Cap
	if capacity <= 0 {
		capacity = domain.DefaultSetCap
	}

	var firstSetOnly, regular []domain.ProfileFlag
	for _, entry := range result.Flags {
		if entry.FirstSetOnly {
			firstSetOnly = append(firstSetOnly, entry)
		} else {
			regular = append(regular, entry)
		}
	}

	firstTotal := 0
	for _, entry := range firstSetOnly {
		firstTotal += entry.Count
	}
	if firstTotal > capacity {
		return nil, fmt.Errorf("%w: %s first-set-only bundle needs %d questions, cap is %d",
			domain.ErrSetCapacityExceeded, result.DocType, firstTotal, capacity)
	}
	for _, entry := range regular {
		if entry.Count > capacity {
			return nil, fmt.Errorf("%w: %s flag %s needs %d questions, cap is %d",
				domain.ErrSetCapacityExceeded, result.DocType, entry.Flag, entry.Count, capacity)
		}
	}

	if len(result.Flags) == 0 {
		return nil, nil
	}

	sets := []domain.DocumentSet{{SetIndex: 1}}
	for _, entry := range firstSetOnly {
		appendFlag(&sets[0], entry)
	}

	current := 0
	for _, entry := range regular {
		if sets[current].TotalCount+entry.Count > capacity {
			sets = append(sets, domain.DocumentSet{SetIndex: len(sets) + 1})
			current = len(sets) - 1
		}
		appendFlag(&sets[current], entry)
	}

	total := len(sets)
	for i := range sets {
		sets[i].TotalSets = total
		sets[i].Filename = domain.SetFilename(plaintiff, defendant, result.DocType, sets[i].SetIndex, total)
	}
	return sets, nil
}

// appendFlag adds one flag's questions to a set.
func appendFlag(set *domain.DocumentSet, entry domain.ProfileFlag) {
	set.Flags = append(set.Flags, domain.FlagCount{Flag: entry.Flag, Count: entry.Count})
	set.TotalCount += entry.Count
}
