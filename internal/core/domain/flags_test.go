package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewFlagMap_SeedsEveryFlagFalse(t *testing.T) {
	universe := []FlagName{"Mold", "MoldBathroom", FlagIsOwner}

	m := NewFlagMap(universe)
	assert.Len(t, m, len(universe))
	for _, f := range universe {
		v, ok := m[f]
		assert.True(t, ok, "flag %s must be present", f)
		assert.False(t, v)
	}
}

func TestFlagMap_SetAndTrue(t *testing.T) {
	m := NewFlagMap([]FlagName{"Mold", "Vermin"})

	assert.False(t, m.True("Mold"))
	m.Set("Mold")
	assert.True(t, m.True("Mold"))
	assert.False(t, m.True("Vermin"))
	assert.False(t, m.True("NeverSeeded"))
}

func TestFlagMap_ActiveCount(t *testing.T) {
	m := NewFlagMap([]FlagName{"A", "B", "C"})
	assert.Equal(t, 0, m.ActiveCount())

	m.Set("A")
	m.Set("C")
	assert.Equal(t, 2, m.ActiveCount())

	// Setting twice is idempotent.
	m.Set("A")
	assert.Equal(t, 2, m.ActiveCount())
}

func TestFlagMap_Clone(t *testing.T) {
	m := NewFlagMap([]FlagName{"A", "B"})
	m.Set("A")

	clone := m.Clone()
	clone.Set("B")

	assert.True(t, clone.True("B"))
	assert.False(t, m.True("B"))
}

func TestWarning_String(t *testing.T) {
	w := Warning{Kind: WarnUnknownOption, Category: "vermin", Label: "Dragons"}
	assert.Equal(t, "unknown_option category=vermin label=Dragons", w.String())

	drift := Warning{Kind: WarnCategoryDrift, Category: "trashProblems", Detail: "forwarded to trash"}
	assert.Equal(t, "category_drift category=trashProblems (forwarded to trash)", drift.String())
}
