// Package driving defines interfaces that external actors (CLI, embedding
// services) use to interact with core services. These are the "driving"
// ports in hexagonal architecture.
package driving
