// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" ports in hexagonal architecture: rule-table
// loading, phase tracing, and audit persistence. Adapters implement
// them; the core never imports an adapter.
package driven
