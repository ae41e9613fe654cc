// Package config loads, normalizes, and validates filmlens configuration.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, and honours environment fallbacks such as
// FILMLENS_DATA_DIR. The Config type centralizes every knob the CLI and
// pipeline need: source CSV locations, the entity-store directory, classifier
// training parameters, and log output settings.
//
// Always obtain settings through this package so downstream code receives
// sanitized paths, canonical log formats, and clear validation errors.
package config
