package domain

// FlagName identifies a boolean fact about a case used to select
// applicable discovery questions.
type FlagName string

// String returns the string representation.
func (f FlagName) String() string {
	return string(f)
}

// Party-role flags derived from the defendant's role. These are fixed by
// the pipeline rather than the taxonomy tables because role semantics
// are procedural, not legal content.
const (
	// FlagIsOwner is set when the defendant owns the property.
	FlagIsOwner FlagName = "IsOwner"

	// FlagIsManager is set when the defendant manages the property.
	FlagIsManager FlagName = "IsManager"
)

// FlagMap is a total mapping from flag name to boolean over the entire
// flag universe. Every known flag is explicitly true or false; absent
// flags are forbidden so later phases can distinguish "irrelevant" from
// "not yet computed".
type FlagMap map[FlagName]bool

// NewFlagMap returns a FlagMap with every flag in the universe
// explicitly false.
func NewFlagMap(universe []FlagName) FlagMap {
	m := make(FlagMap, len(universe))
	for _, f := range universe {
		m[f] = false
	}
	return m
}

// Set marks a flag true. Unknown flags are added; callers seeding from
// a universe should only set flags within it.
func (m FlagMap) Set(f FlagName) {
	m[f] = true
}

// True reports whether the flag is present and set.
func (m FlagMap) True(f FlagName) bool {
	return m[f]
}

// ActiveCount returns the number of flags set true.
func (m FlagMap) ActiveCount() int {
	n := 0
	for _, v := range m {
		if v {
			n++
		}
	}
	return n
}

// Clone returns an independent copy.
func (m FlagMap) Clone() FlagMap {
	out := make(FlagMap, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// WarningKind classifies recoverable pipeline warnings.
type WarningKind string

// Recognised warning kinds.
const (
	// WarnUnknownOption is an option label with no flag mapping.
	WarnUnknownOption WarningKind = "unknown_option"

	// WarnUnknownCategory is a category key with no taxonomy entry or alias.
	WarnUnknownCategory WarningKind = "unknown_category"

	// WarnCategoryDrift is a historically mismatched category key that was
	// forwarded through an alias.
	WarnCategoryDrift WarningKind = "category_drift"

	// WarnMalformedSelection is a selection value of an unexpected type.
	WarnMalformedSelection WarningKind = "malformed_selection"
)

// Warning is a recoverable, logged condition. Processing continues;
// the affected entry simply contributes nothing.
type Warning struct {
	Kind     WarningKind `json:"kind"`
	Category string      `json:"category,omitempty"`
	Label    string      `json:"label,omitempty"`
	Detail   string      `json:"detail,omitempty"`
}

// String renders the warning for logs.
func (w Warning) String() string {
	s := string(w.Kind)
	if w.Category != "" {
		s += " category=" + w.Category
	}
	if w.Label != "" {
		s += " label=" + w.Label
	}
	if w.Detail != "" {
		s += " (" + w.Detail + ")"
	}
	return s
}
