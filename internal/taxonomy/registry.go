// Package taxonomy builds the immutable issue-taxonomy registry from
// loaded rule tables. The registry is pure data plus pure functions:
// after construction it performs no I/O and is safe for concurrent
// readers without locking.
package taxonomy

import (
	"fmt"

	"github.com/propoundhq/propound-cli/internal/core/domain"
)

// SchemaVersion is the taxonomy table revision this pipeline understands.
const SchemaVersion = 1

// Registry resolves categories, options, and roles to canonical flags.
// It also fixes the deterministic flag universe ordering: item flags in
// category/option declaration order with each category's aggregate flag
// first, then party-role flags, then general flags.
type Registry struct {
	table       domain.TaxonomyTable
	byKey       map[string]int
	aliases     map[string]string
	universe    []domain.FlagName
	universeSet map[domain.FlagName]struct{}
}

// NewRegistry validates the table and builds a registry.
// Validation enforces the closed-world property: every (category, option)
// pair must resolve to at least one flag.
func NewRegistry(table *domain.TaxonomyTable) (*Registry, error) {
	if table == nil {
		return nil, fmt.Errorf("%w: nil taxonomy table", domain.ErrInvalidTables)
	}
	if table.SchemaVersion != SchemaVersion {
		return nil, fmt.Errorf("%w: schema version %d, want %d",
			domain.ErrInvalidTables, table.SchemaVersion, SchemaVersion)
	}
	if len(table.Categories) == 0 {
		return nil, fmt.Errorf("%w: no categories", domain.ErrInvalidTables)
	}

	r := &Registry{
		table:       *table,
		byKey:       make(map[string]int, len(table.Categories)),
		aliases:     make(map[string]string, len(table.Aliases)),
		universeSet: make(map[domain.FlagName]struct{}),
	}

	for i, cat := range table.Categories {
		if cat.Key == "" {
			return nil, fmt.Errorf("%w: category %d has no key", domain.ErrInvalidTables, i)
		}
		if _, dup := r.byKey[cat.Key]; dup {
			return nil, fmt.Errorf("%w: duplicate category key %q", domain.ErrInvalidTables, cat.Key)
		}
		r.byKey[cat.Key] = i

		if cat.Aggregate != "" {
			r.addFlag(cat.Aggregate)
		}
		if len(cat.Options) == 0 {
			return nil, fmt.Errorf("%w: category %q has no options", domain.ErrInvalidTables, cat.Key)
		}
		for _, opt := range cat.Options {
			if len(opt.Flags) == 0 {
				return nil, fmt.Errorf("%w: option %q in category %q resolves to no flags",
					domain.ErrInvalidTables, opt.Label, cat.Key)
			}
			for _, f := range opt.Flags {
				r.addFlag(f)
			}
		}
	}

	r.addFlag(domain.FlagIsOwner)
	r.addFlag(domain.FlagIsManager)
	for _, f := range table.GeneralFlags {
		if f == "" {
			return nil, fmt.Errorf("%w: empty general flag", domain.ErrInvalidTables)
		}
		r.addFlag(f)
	}

	for alias, target := range table.Aliases {
		if _, ok := r.byKey[target]; !ok {
			return nil, fmt.Errorf("%w: alias %q points to unknown category %q",
				domain.ErrInvalidTables, alias, target)
		}
		r.aliases[alias] = target
	}

	return r, nil
}

// addFlag appends a flag to the universe if not already present.
// Duplicate declarations collapse to the first occurrence.
func (r *Registry) addFlag(f domain.FlagName) {
	if _, ok := r.universeSet[f]; ok {
		return
	}
	r.universeSet[f] = struct{}{}
	r.universe = append(r.universe, f)
}

// CanonicalCategory resolves a submission key to a canonical category
// key. The second return reports whether the key matched at all; the
// third reports whether it matched through a drift alias.
func (r *Registry) CanonicalCategory(key string) (canonical string, ok, drifted bool) {
	if _, exists := r.byKey[key]; exists {
		return key, true, false
	}
	if target, exists := r.aliases[key]; exists {
		return target, true, true
	}
	return "", false, false
}

// Category returns the category spec for a canonical key.
func (r *Registry) Category(key string) (domain.CategorySpec, bool) {
	i, ok := r.byKey[key]
	if !ok {
		return domain.CategorySpec{}, false
	}
	return r.table.Categories[i], true
}

// Categories returns all category specs in declaration order.
func (r *Registry) Categories() []domain.CategorySpec {
	out := make([]domain.CategorySpec, len(r.table.Categories))
	copy(out, r.table.Categories)
	return out
}

// ItemFlags resolves selected option labels within a category to their
// item flags, in option declaration order. Unmapped labels produce an
// UnknownOptionWarning and contribute no flag.
func (r *Registry) ItemFlags(category string, selected []string) ([]domain.FlagName, []domain.Warning) {
	cat, ok := r.Category(category)
	if !ok {
		return nil, []domain.Warning{{Kind: domain.WarnUnknownCategory, Category: category}}
	}

	want := make(map[string]bool, len(selected))
	for _, label := range selected {
		want[label] = true
	}

	var flags []domain.FlagName
	seen := make(map[domain.FlagName]bool)
	for _, opt := range cat.Options {
		if !want[opt.Label] {
			continue
		}
		delete(want, opt.Label)
		for _, f := range opt.Flags {
			if !seen[f] {
				seen[f] = true
				flags = append(flags, f)
			}
		}
	}

	var warnings []domain.Warning
	for _, label := range selected {
		if want[label] {
			warnings = append(warnings, domain.Warning{
				Kind:     domain.WarnUnknownOption,
				Category: category,
				Label:    label,
			})
			delete(want, label)
		}
	}
	return flags, warnings
}

// ToggleFlags returns every item flag of a toggle category, activated
// together when the toggle is on.
func (r *Registry) ToggleFlags(category string) []domain.FlagName {
	cat, ok := r.Category(category)
	if !ok || !cat.Toggle {
		return nil
	}
	var flags []domain.FlagName
	for _, opt := range cat.Options {
		flags = append(flags, opt.Flags...)
	}
	return flags
}

// AggregateFlag returns the category's aggregate flag if one is defined.
func (r *Registry) AggregateFlag(category string) (domain.FlagName, bool) {
	cat, ok := r.Category(category)
	if !ok || cat.Aggregate == "" {
		return "", false
	}
	return cat.Aggregate, true
}

// RoleFlags returns the party-role flags for a defendant role:
// Owner activates IsOwner, Manager activates IsManager, Both activates both.
func (r *Registry) RoleFlags(role domain.DefendantRole) []domain.FlagName {
	switch role {
	case domain.RoleOwner:
		return []domain.FlagName{domain.FlagIsOwner}
	case domain.RoleManager:
		return []domain.FlagName{domain.FlagIsManager}
	case domain.RoleBoth:
		return []domain.FlagName{domain.FlagIsOwner, domain.FlagIsManager}
	default:
		return nil
	}
}

// GeneralFlags returns the always-on flags in declaration order.
func (r *Registry) GeneralFlags() []domain.FlagName {
	out := make([]domain.FlagName, len(r.table.GeneralFlags))
	copy(out, r.table.GeneralFlags)
	return out
}

// Universe returns the full flag universe in its deterministic order.
func (r *Registry) Universe() []domain.FlagName {
	out := make([]domain.FlagName, len(r.universe))
	copy(out, r.universe)
	return out
}

// Contains reports whether a flag belongs to the universe.
func (r *Registry) Contains(f domain.FlagName) bool {
	_, ok := r.universeSet[f]
	return ok
}
