// Package aggregate derives read-only analytics from the entity store:
// revenue rollups by genre, release month, and language, speaker-population
// reach, and world-bank economic context.
//
// Every function is a pure read; results are deterministic for fixed store
// content. Metrics whose denominator is zero or missing come back as
// NotComputable with a reason instead of a fabricated zero.
package aggregate
