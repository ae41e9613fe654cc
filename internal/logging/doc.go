// Package logging builds slog loggers for the filmlens CLI and pipeline.
//
// Two output formats are supported: a compact console handler for interactive
// runs and a JSON handler for machine consumption, both honouring the level
// configured in [logging]. Attr helpers and standardized field names keep
// structured keys consistent across components; WithContext lifts run and
// component annotations out of a context into logger fields.
package logging
