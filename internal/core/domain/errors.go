package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrMalformedIntake indicates the intake record cannot seed generation:
	// no plaintiffs, no defendants, or no Head-of-Household plaintiff.
	// Fatal for the whole record; no partial output is produced.
	ErrMalformedIntake = errors.New("malformed intake")

	// ErrSetCapacityExceeded indicates a single flag or the mandatory
	// first-set-only bundle alone exceeds the per-set question cap.
	// This is a profile configuration defect, not a data problem.
	ErrSetCapacityExceeded = errors.New("set capacity exceeded")

	// ErrInvalidTables indicates the taxonomy or profile tables failed
	// validation at load time.
	ErrInvalidTables = errors.New("invalid rule tables")

	// ErrUnknownDocType indicates an unrecognised document type.
	ErrUnknownDocType = errors.New("unknown document type")

	// ErrProfileNotFound indicates no profile table exists for a document type.
	ErrProfileNotFound = errors.New("document profile not found")
)
