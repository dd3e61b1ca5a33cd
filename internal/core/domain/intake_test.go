package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefendantRole_IsValid(t *testing.T) {
	assert.True(t, RoleOwner.IsValid())
	assert.True(t, RoleManager.IsValid())
	assert.True(t, RoleBoth.IsValid())
	assert.False(t, DefendantRole("Tenant").IsValid())
	assert.False(t, DefendantRole("").IsValid())
	assert.False(t, DefendantRole("owner").IsValid(), "roles are case sensitive")
}

func TestSelectionSet_Clone(t *testing.T) {
	original := SelectionSet{
		"vermin": {"Cockroaches", "Rodents"},
		"mold":   {"Bathroom mold"},
	}

	clone := original.Clone()
	assert.Equal(t, original, clone)

	clone["vermin"][0] = "changed"
	clone["new"] = []string{"entry"}

	assert.Equal(t, "Cockroaches", original["vermin"][0])
	assert.NotContains(t, original, "new")
}

func TestSelectionSet_CloneNil(t *testing.T) {
	var s SelectionSet
	assert.Nil(t, s.Clone())
}

func TestPlaintiff_LastName(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"Maria Lopez", "Lopez"},
		{"Jean-Claude Van Damme", "Damme"},
		{"Cher", "Cher"},
		{"", ""},
		{"  Maria   Lopez  ", "Lopez"},
	}

	for _, tt := range tests {
		p := Plaintiff{Name: tt.name}
		assert.Equal(t, tt.want, p.LastName(), "name %q", tt.name)
	}
}

func TestDefendant_FilenameName(t *testing.T) {
	individual := Defendant{Name: "John Smith", EntityType: "individual"}
	assert.Equal(t, "Smith", individual.FilenameName())

	// Missing entity type is treated as an individual.
	unknown := Defendant{Name: "John Smith"}
	assert.Equal(t, "Smith", unknown.FilenameName())

	llc := Defendant{Name: "Oakwood Property Management LLC", EntityType: "llc"}
	assert.Equal(t, "Oakwood Property Management LLC", llc.FilenameName())

	corp := Defendant{Name: "Acme Holdings Inc", EntityType: "corporation"}
	assert.Equal(t, "Acme Holdings Inc", corp.FilenameName())
}

func TestIntakeRecord_HeadsOfHousehold(t *testing.T) {
	record := IntakeRecord{
		Plaintiffs: []Plaintiff{
			{Name: "Maria Lopez", HeadOfHousehold: true},
			{Name: "Sofia Lopez", HeadOfHousehold: false},
			{Name: "Carlos Reyes", HeadOfHousehold: true},
		},
	}

	heads := record.HeadsOfHousehold()
	assert.Len(t, heads, 2)
	assert.Equal(t, "Maria Lopez", heads[0].Name, "submission order preserved")
	assert.Equal(t, "Carlos Reyes", heads[1].Name)
}
