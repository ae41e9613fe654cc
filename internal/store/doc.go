// Package store persists the film entity schema in SQLite and exposes the
// read queries the aggregation engine and classifier run against it.
//
// The Store manages database connections, schema initialization, and the
// single write path: ReplaceAll, which swaps the entire content for one
// refresh snapshot inside a transaction. Readers therefore never observe a
// partially-ingested store, and re-running a refresh over the same sources
// yields identical content.
//
// Schema changes bump the version in schema.go; the database is rebuilt from
// sources on the next refresh rather than migrated.
package store
