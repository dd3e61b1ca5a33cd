package driven

import "context"

// AuditStore persists generation runs for later inspection. It extends
// Tracer with run lifecycle records so phase traces can be grouped.
type AuditStore interface {
	Tracer

	// BeginRun records the start of a generation run.
	BeginRun(ctx context.Context, runID, caseName string) error

	// Close releases the underlying storage.
	Close() error
}
