package services

import (
	"fmt"
	"sort"

	"github.com/propoundhq/propound-cli/internal/core/domain"
	"github.com/propoundhq/propound-cli/internal/logger"
	"github.com/propoundhq/propound-cli/internal/taxonomy"
)

// Normalizer is Phase 1: it flattens the nested per-plaintiff intake
// submission into a canonical, typed IntakeRecord. All "missing key"
// and wrong-type risk is resolved here so downstream phases operate on
// known shapes.
type Normalizer struct {
	reg *taxonomy.Registry
}

// NewNormalizer creates a normalizer over the given registry.
func NewNormalizer(reg *taxonomy.Registry) *Normalizer {
	return &Normalizer{reg: reg}
}

// Normalize validates and flattens a raw submission.
//
// Fatal conditions return an error wrapping domain.ErrMalformedIntake:
// empty plaintiffs or defendants, no Head-of-Household plaintiff, or an
// unrecognised defendant role. Historically drifted category keys are
// forwarded through taxonomy aliases with a warning; unknown keys and
// malformed selection values warn and contribute nothing. The record as
// a whole is never aborted for key drift alone.
func (n *Normalizer) Normalize(raw domain.RawIntake) (*domain.IntakeRecord, []domain.Warning, error) {
	if len(raw.Plaintiffs) == 0 {
		return nil, nil, fmt.Errorf("%w: no plaintiffs", domain.ErrMalformedIntake)
	}
	if len(raw.Defendants) == 0 {
		return nil, nil, fmt.Errorf("%w: no defendants", domain.ErrMalformedIntake)
	}

	record := &domain.IntakeRecord{CaseName: raw.CaseName}
	var warnings []domain.Warning

	hasHead := false
	for _, rp := range raw.Plaintiffs {
		selections, w := n.normalizeSelections(rp.Discovery)
		warnings = append(warnings, w...)

		record.Plaintiffs = append(record.Plaintiffs, domain.Plaintiff{
			Name:            rp.Name,
			PartyType:       rp.PartyType,
			AgeCategory:     rp.AgeCategory,
			HeadOfHousehold: rp.HeadOfHousehold,
			Selections:      selections,
		})
		if rp.HeadOfHousehold {
			hasHead = true
		}
	}
	if !hasHead {
		return nil, nil, fmt.Errorf("%w: no head-of-household plaintiff", domain.ErrMalformedIntake)
	}

	for _, rd := range raw.Defendants {
		role := domain.DefendantRole(rd.Role)
		if !role.IsValid() {
			return nil, nil, fmt.Errorf("%w: defendant %q has unrecognised role %q",
				domain.ErrMalformedIntake, rd.Name, rd.Role)
		}
		record.Defendants = append(record.Defendants, domain.Defendant{
			Name:       rd.Name,
			EntityType: rd.EntityType,
			Role:       role,
		})
	}

	for _, w := range warnings {
		logger.Warn("normalize: %s", w)
	}
	return record, warnings, nil
}

// normalizeSelections flattens one plaintiff's discovery object into a
// canonical SelectionSet.
func (n *Normalizer) normalizeSelections(discovery map[string]any) (domain.SelectionSet, []domain.Warning) {
	selections := make(domain.SelectionSet)
	var warnings []domain.Warning

	// Sorted key order keeps warning order, and therefore manifests,
	// byte-identical across runs.
	keys := make([]string, 0, len(discovery))
	for key := range discovery {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		value := discovery[key]
		canonical, ok, drifted := n.reg.CanonicalCategory(key)
		if !ok {
			warnings = append(warnings, domain.Warning{
				Kind:     domain.WarnUnknownCategory,
				Category: key,
			})
			continue
		}
		if drifted {
			warnings = append(warnings, domain.Warning{
				Kind:     domain.WarnCategoryDrift,
				Category: key,
				Detail:   "forwarded as " + canonical,
			})
		}

		labels, w := n.normalizeValue(canonical, value)
		warnings = append(warnings, w...)
		if len(labels) > 0 {
			selections[canonical] = append(selections[canonical], labels...)
		}
	}
	return selections, warnings
}

// normalizeValue converts one selection value into option labels.
// Lists carry option labels; booleans drive toggle categories; a bare
// string is tolerated as a single-label list.
func (n *Normalizer) normalizeValue(category string, value any) ([]string, []domain.Warning) {
	switch v := value.(type) {
	case []any:
		var labels []string
		var warnings []domain.Warning
		for _, item := range v {
			label, ok := item.(string)
			if !ok {
				warnings = append(warnings, domain.Warning{
					Kind:     domain.WarnMalformedSelection,
					Category: category,
					Detail:   fmt.Sprintf("non-string option entry %v", item),
				})
				continue
			}
			labels = append(labels, label)
		}
		return labels, warnings

	case []string:
		return v, nil

	case string:
		return []string{v}, nil

	case bool:
		if !v {
			return nil, nil
		}
		flags := n.reg.ToggleFlags(category)
		if len(flags) == 0 {
			return nil, []domain.Warning{{
				Kind:     domain.WarnMalformedSelection,
				Category: category,
				Detail:   "boolean selection for a non-toggle category",
			}}
		}
		cat, _ := n.reg.Category(category)
		labels := make([]string, 0, len(cat.Options))
		for _, opt := range cat.Options {
			labels = append(labels, opt.Label)
		}
		return labels, nil

	case nil:
		return nil, nil

	default:
		return nil, []domain.Warning{{
			Kind:     domain.WarnMalformedSelection,
			Category: category,
			Detail:   fmt.Sprintf("unsupported selection type %T", value),
		}}
	}
}
