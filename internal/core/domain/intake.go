package domain

// RawIntake is the JSON shape submitted by the intake-form collaborator.
// Field naming is owned by the form; per-plaintiff discovery values are
// untyped because the form sends either option-label lists or booleans
// depending on the category. The Normalizer is the single boundary that
// converts this into the typed IntakeRecord.
type RawIntake struct {
	// CaseName is a human-readable case caption.
	CaseName string `json:"caseName"`

	// Plaintiffs lists the requesting parties in submission order.
	Plaintiffs []RawPlaintiff `json:"plaintiffs"`

	// Defendants lists the responding parties in submission order.
	Defendants []RawDefendant `json:"defendants"`
}

// RawPlaintiff is one plaintiff as submitted by the intake form.
type RawPlaintiff struct {
	Name            string `json:"name"`
	PartyType       string `json:"partyType"`
	AgeCategory     string `json:"ageCategory"`
	HeadOfHousehold bool   `json:"isHeadOfHousehold"`

	// Discovery maps a submission category key to either a list of
	// selected option labels or a boolean for simple toggle categories.
	Discovery map[string]any `json:"discovery"`
}

// RawDefendant is one defendant as submitted by the intake form.
type RawDefendant struct {
	Name       string `json:"name"`
	EntityType string `json:"entityType"`
	Role       string `json:"role"`
}

// DefendantRole describes a defendant's relationship to the property.
// The role drives party-role flags during flag processing.
type DefendantRole string

// Recognised defendant roles.
const (
	RoleOwner   DefendantRole = "Owner"
	RoleManager DefendantRole = "Manager"
	RoleBoth    DefendantRole = "Both"
)

// IsValid returns true if the role is recognised.
func (r DefendantRole) IsValid() bool {
	switch r {
	case RoleOwner, RoleManager, RoleBoth:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (r DefendantRole) String() string {
	return string(r)
}

// SelectionSet is the canonical per-plaintiff discovery selection map:
// category key to selected option labels. Boolean toggle categories are
// normalised to their option labels when toggled on and omitted when off.
type SelectionSet map[string][]string

// Clone returns a deep copy. Datasets must never share selection state,
// so every dataset receives its own clone.
func (s SelectionSet) Clone() SelectionSet {
	if s == nil {
		return nil
	}
	out := make(SelectionSet, len(s))
	for category, labels := range s {
		copied := make([]string, len(labels))
		copy(copied, labels)
		out[category] = copied
	}
	return out
}

// Plaintiff is a validated requesting party.
type Plaintiff struct {
	// Name is the plaintiff's full name.
	Name string

	// PartyType is the submission's party classification (e.g. "individual").
	PartyType string

	// AgeCategory is the submission's age classification (e.g. "adult", "minor").
	AgeCategory string

	// HeadOfHousehold marks the plaintiff as a primary requesting party.
	// Only Head-of-Household plaintiffs seed dataset construction.
	HeadOfHousehold bool

	// Selections holds the plaintiff's normalised discovery selections.
	Selections SelectionSet
}

// LastName returns the final whitespace-separated token of the name,
// used for manifest filenames.
func (p Plaintiff) LastName() string {
	return lastNameOf(p.Name)
}

// Defendant is a validated responding party.
type Defendant struct {
	// Name is the defendant's full name or entity name.
	Name string

	// EntityType is the submission's entity classification
	// (e.g. "individual", "llc", "corporation").
	EntityType string

	// Role is the defendant's relationship to the property.
	Role DefendantRole
}

// FilenameName returns the name used in manifest filenames. Individuals
// contribute their last name; business entities keep their full name.
func (d Defendant) FilenameName() string {
	if d.EntityType == "" || d.EntityType == "individual" {
		return lastNameOf(d.Name)
	}
	return d.Name
}

// IntakeRecord is an immutable validated case submission. It is created
// once by the Normalizer; every downstream entity is recomputed from it
// on each run.
type IntakeRecord struct {
	// CaseName is the human-readable case caption.
	CaseName string

	// Plaintiffs preserves submission order.
	Plaintiffs []Plaintiff

	// Defendants preserves submission order.
	Defendants []Defendant
}

// HeadsOfHousehold returns the Head-of-Household plaintiffs in
// submission order.
func (r *IntakeRecord) HeadsOfHousehold() []Plaintiff {
	var heads []Plaintiff
	for _, p := range r.Plaintiffs {
		if p.HeadOfHousehold {
			heads = append(heads, p)
		}
	}
	return heads
}
