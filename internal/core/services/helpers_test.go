package services

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/propoundhq/propound-cli/internal/core/domain"
	"github.com/propoundhq/propound-cli/internal/taxonomy"
)

// buildTable returns a compact taxonomy exercising every category shape:
// multi-option, single-option, aliased, and boolean toggle.
func buildTable() *domain.TaxonomyTable {
	return &domain.TaxonomyTable{
		SchemaVersion: taxonomy.SchemaVersion,
		Aliases: map[string]string{
			"trashProblems": "trash",
		},
		GeneralFlags: []domain.FlagName{"SROGsGeneral", "PODsGeneral", "AdmissionsGeneral"},
		Categories: []domain.CategorySpec{
			{
				Key:       "vermin",
				Name:      "Vermin Infestation",
				Aggregate: "Vermin",
				Options: []domain.OptionSpec{
					{Label: "Cockroaches", Flags: []domain.FlagName{"VerminCockroaches"}},
					{Label: "Rodents", Flags: []domain.FlagName{"VerminRodents"}},
				},
			},
			{
				Key:       "trash",
				Name:      "Trash and Debris",
				Aggregate: "TrashProblems",
				Options: []domain.OptionSpec{
					{Label: "No trash bins", Flags: []domain.FlagName{"TrashNoBins"}},
				},
			},
			{
				Key:    "asbestos",
				Name:   "Asbestos",
				Toggle: true,
				Options: []domain.OptionSpec{
					{Label: "Asbestos present", Flags: []domain.FlagName{"AsbestosPresent"}},
				},
			},
		},
	}
}

func buildRegistry(t *testing.T) *taxonomy.Registry {
	t.Helper()
	reg, err := taxonomy.NewRegistry(buildTable())
	require.NoError(t, err)
	return reg
}

// buildRecord is a minimal valid normalised record for dataset tests.
func buildRecord() *domain.IntakeRecord {
	return &domain.IntakeRecord{
		CaseName: "Lopez v Oakwood",
		Plaintiffs: []domain.Plaintiff{
			{
				Name:            "Maria Lopez",
				HeadOfHousehold: true,
				Selections: domain.SelectionSet{
					"vermin": {"Cockroaches"},
				},
			},
			{
				Name:            "Sofia Lopez",
				HeadOfHousehold: false,
			},
			{
				Name:            "Carlos Reyes",
				HeadOfHousehold: true,
				Selections: domain.SelectionSet{
					"trash": {"No trash bins"},
				},
			},
		},
		Defendants: []domain.Defendant{
			{Name: "Oakwood Property Management LLC", EntityType: "llc", Role: domain.RoleManager},
			{Name: "John Smith", EntityType: "individual", Role: domain.RoleOwner},
		},
	}
}
