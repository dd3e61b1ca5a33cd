package driven

import (
	"context"

	"github.com/propoundhq/propound-cli/internal/core/domain"
)

// PhaseTrace is one intermediate phase output offered to the audit
// side-channel after a pipeline phase completes.
type PhaseTrace struct {
	// RunID identifies the generation run.
	RunID string

	// Seq is the 1-based trace sequence number within the run.
	Seq int

	// Phase names the pipeline phase that produced the payload.
	Phase string

	// DatasetIndex is the dataset the payload belongs to, or 0 for
	// record-level phases (normalisation, dataset construction).
	DatasetIndex int

	// DocType is the document type the payload belongs to, or empty for
	// phases that are not per-document-type.
	DocType domain.DocType

	// Payload is the JSON-serialisable phase output.
	Payload any
}

// Tracer receives intermediate phase outputs for audit and debugging.
// Tracing is an optional side-channel: the pipeline is pure and purely
// in-memory without it, and tracer failures never abort generation.
type Tracer interface {
	// TracePhase records one phase output.
	TracePhase(ctx context.Context, trace PhaseTrace) error
}
