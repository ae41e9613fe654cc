// Package services defines the shared error taxonomy and context annotations
// used across the filmlens pipeline.
//
// Sentinel errors classify failures by propagation policy: malformed records
// and unresolved identifiers are skip-and-report during ingestion, while
// validation and training-data errors are fail-fast at the classifier
// boundary. Wrap attaches component/operation context while preserving the
// sentinel for errors.Is classification.
package services
