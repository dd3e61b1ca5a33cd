// Package services implements the driving port interfaces.
// It contains the five pipeline phases (normalisation, dataset
// construction, flag processing, profile filtering, and set splitting)
// and the generation service that orchestrates them. Every phase is a
// pure function over well-formed input; the whole pipeline is
// synchronous and recomputed from scratch on each run.
package services
