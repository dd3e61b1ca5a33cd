package domain

// DocType identifies a discovery document type.
type DocType string

// The three discovery document types.
const (
	// DocTypeSROGs is special interrogatories.
	DocTypeSROGs DocType = "SROGs"

	// DocTypePODs is requests for production of documents.
	DocTypePODs DocType = "PODs"

	// DocTypeAdmissions is requests for admission.
	DocTypeAdmissions DocType = "Admissions"
)

// AllDocTypes returns the document types in their fixed generation order.
func AllDocTypes() []DocType {
	return []DocType{DocTypeSROGs, DocTypePODs, DocTypeAdmissions}
}

// IsValid returns true if the document type is recognised.
func (d DocType) IsValid() bool {
	switch d {
	case DocTypeSROGs, DocTypePODs, DocTypeAdmissions:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (d DocType) String() string {
	return string(d)
}

// DefaultSetCap is the procedural maximum number of questions per
// discovery set under California civil procedure. Profiles may override
// it, but the default stands unless the rules change.
const DefaultSetCap = 120

// ProfileFlag is one flag's static policy entry in a document profile:
// how many questions the flag contributes and whether those questions
// must stay in the first set.
type ProfileFlag struct {
	// Flag is the flag this entry applies to.
	Flag FlagName `json:"flag"`

	// Count is the non-negative number of questions contributed.
	Count int `json:"count"`

	// FirstSetOnly pins the flag's questions to Set 1 by procedural
	// convention. First-set-only questions can never move to a later set.
	FirstSetOnly bool `json:"firstSetOnly,omitempty"`
}

// DocumentProfile is the static per-document-type policy table mapping
// flags to question counts. Declaration order is the packing order used
// by the set splitter. Loaded once; immutable at runtime.
type DocumentProfile struct {
	// DocType is the document type this profile generates.
	DocType DocType

	// Cap is the maximum questions permitted per set.
	Cap int

	// Flags preserves declaration order.
	Flags []ProfileFlag
}

// ProfileResult is the outcome of filtering a FlagMap against a
// DocumentProfile: the relevant flags in profile order with their
// counts, and the total question count.
type ProfileResult struct {
	// DocType is the document type the result applies to.
	DocType DocType `json:"documentType"`

	// Cap carries the profile's per-set cap forward to the splitter.
	Cap int `json:"cap"`

	// Flags holds only flags true in the FlagMap and present in the
	// profile with count > 0, in profile declaration order.
	Flags []ProfileFlag `json:"flags"`

	// TotalCount is the sum of all counts.
	TotalCount int `json:"totalCount"`
}
