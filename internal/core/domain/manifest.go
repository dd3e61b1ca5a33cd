package domain

import (
	"fmt"
	"strings"
)

// FlagCount is one flag's question contribution within a document set.
type FlagCount struct {
	Flag  FlagName `json:"flag"`
	Count int      `json:"count"`
}

// DocumentSet is one procedurally compliant set within a document type:
// at most Cap questions, 1-based index, with the flags whose questions
// it carries. A flag's count is never split across sets.
type DocumentSet struct {
	// SetIndex is the 1-based set number.
	SetIndex int `json:"setIndex"`

	// TotalSets is the number of sets for this (dataset, docType) pair.
	TotalSets int `json:"totalSets"`

	// Flags lists the flags packed into this set, in packing order.
	Flags []FlagCount `json:"flags"`

	// TotalCount is the sum of counts in this set.
	TotalCount int `json:"totalCount"`

	// Filename is the rendering collaborator's output filename.
	Filename string `json:"filename"`
}

// PairManifest is the generation manifest for one
// (dataset, document type) pair.
type PairManifest struct {
	DatasetIndex  int           `json:"datasetIndex"`
	DocType       DocType       `json:"documentType"`
	PlaintiffName string        `json:"plaintiffName"`
	DefendantName string        `json:"defendantName"`
	TotalCount    int           `json:"totalCount"`
	Sets          []DocumentSet `json:"sets"`
}

// PairFailure records a (dataset, document type) pair that could not be
// generated. Other pairs in the same case continue independently.
type PairFailure struct {
	DatasetIndex int     `json:"datasetIndex"`
	DocType      DocType `json:"documentType"`
	Reason       string  `json:"reason"`
}

// CaseManifest is the full output for one intake record: every
// successfully generated pair, every failed pair, and the recoverable
// warnings raised along the way.
type CaseManifest struct {
	RunID        string         `json:"runId"`
	CaseName     string         `json:"caseName"`
	DatasetCount int            `json:"datasetCount"`
	Pairs        []PairManifest `json:"pairs"`
	Failures     []PairFailure  `json:"failures,omitempty"`
	Warnings     []Warning      `json:"warnings,omitempty"`
}

// SetFilename builds the rendering filename for one set:
// "{PlaintiffLastName} vs {DefendantName} - Discovery Propounded {DocType} Set {i} of {N}.docx".
func SetFilename(plaintiff Plaintiff, defendant Defendant, docType DocType, index, total int) string {
	return fmt.Sprintf("%s vs %s - Discovery Propounded %s Set %d of %d.docx",
		plaintiff.LastName(), defendant.FilenameName(), docType, index, total)
}

// lastNameOf returns the final whitespace-separated token of a name.
// Single-token names pass through unchanged.
func lastNameOf(name string) string {
	fields := strings.Fields(name)
	if len(fields) == 0 {
		return name
	}
	return fields[len(fields)-1]
}
