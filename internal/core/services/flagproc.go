package services

import (
	"github.com/propoundhq/propound-cli/internal/core/domain"
	"github.com/propoundhq/propound-cli/internal/taxonomy"
)

// ComputeFlags is Phase 3: it derives the dataset's FlagMap from its
// selections, the taxonomy rules, and the defendant's role.
//
// The output is total over the full flag universe: every known flag is
// explicitly true or false, never absent, so Phase 4 can distinguish
// "irrelevant" from "not yet computed". Aggregate flags are true exactly
// when at least one of their category's item flags is true. General
// flags are always true: they carry the boilerplate questions present in
// every case. Pure function; no side effects beyond returned warnings.
func ComputeFlags(reg *taxonomy.Registry, ds domain.Dataset) (domain.FlagMap, []domain.Warning) {
	flags := domain.NewFlagMap(reg.Universe())
	var warnings []domain.Warning

	// Walking categories in declaration order keeps warning order
	// deterministic regardless of selection-map iteration.
	for _, cat := range reg.Categories() {
		selected, ok := ds.Selections[cat.Key]
		if !ok || len(selected) == 0 {
			continue
		}

		itemFlags, w := reg.ItemFlags(cat.Key, selected)
		warnings = append(warnings, w...)
		for _, f := range itemFlags {
			flags.Set(f)
		}
		if cat.Aggregate != "" && len(itemFlags) > 0 {
			flags.Set(cat.Aggregate)
		}
	}

	for _, f := range reg.RoleFlags(ds.Defendant.Role) {
		flags.Set(f)
	}
	for _, f := range reg.GeneralFlags() {
		flags.Set(f)
	}
	return flags, warnings
}
