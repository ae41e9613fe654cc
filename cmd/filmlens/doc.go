// Package main hosts the filmlens CLI entrypoint and command graph.
//
// The Cobra-based command tree drives the batch pipeline: refreshing the
// entity store from CSV sources, rendering derived aggregates, training the
// hit classifier, and scoring hypotheticals against the persisted model. It
// centralizes configuration resolution and output-mode selection so
// subcommands stay declarative; the heavy lifting lives in the internal
// packages.
package main
