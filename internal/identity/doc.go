// Package identity provides unified country and language identifier
// reconciliation.
//
// Three independent data sources (film metadata, language-market statistics,
// world-bank economics) spell countries and languages differently. All
// conversions to the canonical identifier space (ISO 3166-1 alpha-3 for
// countries, ISO 639-1 for languages) are consolidated here so ingest and
// aggregation never duplicate alias handling.
//
// Lookup tables are immutable package state built at init. Resolution is
// exact-plus-alias only: an input outside the tables stays unresolved and is
// excluded from code-dependent joins rather than matched by guesswork.
package identity
