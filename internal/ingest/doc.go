// Package ingest runs the batch refresh pipeline: it reads the configured
// CSV sources, validates every row, reconciles country and language
// identifiers, and replaces the entity store's content in one transaction.
//
// Failure handling is per-row. A malformed record is rejected and counted in
// the run report while the rest of the batch proceeds; an unresolved country
// keeps its row out of code-dependent joins without zero-filling anything.
// Only a structurally unreadable source (bad header, permission error)
// aborts the run, since continuing would silently drop an entire table.
package ingest
