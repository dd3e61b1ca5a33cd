package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/propoundhq/propound-cli/internal/core/domain"
)

func filterFixture() (*domain.DocumentProfile, domain.FlagMap) {
	profile := &domain.DocumentProfile{
		DocType: domain.DocTypeSROGs,
		Cap:     domain.DefaultSetCap,
		Flags: []domain.ProfileFlag{
			{Flag: "SROGsGeneral", Count: 30, FirstSetOnly: true},
			{Flag: "Vermin", Count: 5},
			{Flag: "VerminCockroaches", Count: 12},
			{Flag: "Mold", Count: 0},
			{Flag: "Plumbing", Count: 8},
		},
	}

	flags := domain.NewFlagMap([]domain.FlagName{
		"SROGsGeneral", "Vermin", "VerminCockroaches", "Mold", "Plumbing", "Electrical",
	})
	flags.Set("SROGsGeneral")
	flags.Set("Vermin")
	flags.Set("VerminCockroaches")
	flags.Set("Mold")
	return profile, flags
}

func TestFilterProfile_KeepsTrueFlagsWithPositiveCounts(t *testing.T) {
	profile, flags := filterFixture()

	result := FilterProfile(flags, profile)
	assert.Equal(t, domain.DocTypeSROGs, result.DocType)
	assert.Equal(t, domain.DefaultSetCap, result.Cap)

	require.Len(t, result.Flags, 3)
	assert.Equal(t, domain.FlagName("SROGsGeneral"), result.Flags[0].Flag)
	assert.Equal(t, domain.FlagName("Vermin"), result.Flags[1].Flag)
	assert.Equal(t, domain.FlagName("VerminCockroaches"), result.Flags[2].Flag)
	assert.Equal(t, 47, result.TotalCount)
}

func TestFilterProfile_ZeroCountIsExcludedEvenWhenTrue(t *testing.T) {
	profile, flags := filterFixture()

	result := FilterProfile(flags, profile)
	for _, entry := range result.Flags {
		assert.NotEqual(t, domain.FlagName("Mold"), entry.Flag)
	}
}

func TestFilterProfile_FalseFlagIsExcludedEvenWithCount(t *testing.T) {
	profile, flags := filterFixture()

	result := FilterProfile(flags, profile)
	for _, entry := range result.Flags {
		assert.NotEqual(t, domain.FlagName("Plumbing"), entry.Flag)
	}
}

func TestFilterProfile_PreservesFirstSetOnly(t *testing.T) {
	profile, flags := filterFixture()

	result := FilterProfile(flags, profile)
	require.NotEmpty(t, result.Flags)
	assert.True(t, result.Flags[0].FirstSetOnly)
}

func TestFilterProfile_TotalIsSumOfIncludedCounts(t *testing.T) {
	profile, flags := filterFixture()

	result := FilterProfile(flags, profile)
	sum := 0
	for _, entry := range result.Flags {
		sum += entry.Count
	}
	assert.Equal(t, sum, result.TotalCount)
}

func TestFilterProfile_EmptyWhenNothingMatches(t *testing.T) {
	profile, _ := filterFixture()
	flags := domain.NewFlagMap([]domain.FlagName{"SROGsGeneral", "Vermin"})

	result := FilterProfile(flags, profile)
	assert.Empty(t, result.Flags)
	assert.Zero(t, result.TotalCount)
}
