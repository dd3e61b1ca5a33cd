// Package domain defines the core business entities for Propound.
//
// These are pure data structures with no dependencies on
// infrastructure. They represent the vocabulary of the discovery
// generation pipeline: intake records, datasets, flag maps, document
// profiles, and set manifests.
package domain
