package driven

import "github.com/propoundhq/propound-cli/internal/core/domain"

// TableStore loads the versioned rule tables: the issue taxonomy and the
// per-document-type profiles. Legal content and procedural rules change
// independently of the pipeline, so tables are external data, never
// embedded in algorithm code. Implementations load once; the returned
// structures are treated as immutable.
type TableStore interface {
	// LoadTaxonomy reads the issue taxonomy table.
	LoadTaxonomy() (*domain.TaxonomyTable, error)

	// LoadProfile reads the document profile for one document type.
	// Returns domain.ErrProfileNotFound if no table exists for it.
	LoadProfile(docType domain.DocType) (*domain.DocumentProfile, error)
}
